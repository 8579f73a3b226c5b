// Package interrupt implements the fixed-priority interrupt controller the
// CPU core consults through cpu.Interrupts.
package interrupt

import "github.com/nostalgiza/lr35902/internal/cpu"

// Controller tracks which of the five interrupt lines are currently
// pending and reports them back to the CPU in fixed priority order:
// VBlank, LCDStat, TimerOverflow, Serial, Joypad.
type Controller struct {
	pending [5]bool
}

// New returns a Controller with no lines pending.
func New() *Controller {
	return &Controller{}
}

// Request marks line as pending. Called by the PPU, timer, serial port, or
// joypad when their respective condition fires; never by the CPU itself.
func (c *Controller) Request(line cpu.Interrupt) {
	c.pending[line] = true
}

// HighestPriority reports the highest-priority pending line, if any.
func (c *Controller) HighestPriority() (cpu.Interrupt, bool) {
	for line := cpu.InterruptVBlank; line <= cpu.InterruptJoypad; line++ {
		if c.pending[line] {
			return line, true
		}
	}
	return 0, false
}

// Clear marks line as no longer pending. Called by the CPU once it has
// begun servicing that line.
func (c *Controller) Clear(line cpu.Interrupt) {
	c.pending[line] = false
}

// Pending reports whether line is currently pending, for callers (e.g. the
// HALT wake check) that need to read a single line's state directly.
func (c *Controller) Pending(line cpu.Interrupt) bool {
	return c.pending[line]
}

// AnyPending reports whether any line is pending, independent of priority
// or of the CPU's IME flag. The CPU's HALT wake check does not use it; it
// reads IE and IF off the bus.
func (c *Controller) AnyPending() bool {
	_, ok := c.HighestPriority()
	return ok
}
