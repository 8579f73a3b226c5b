// Package membus implements the flat memory bus the CPU core is exercised
// against: ROM/RAM backed by a byte array, with the fixed 0xFF04 (DIV),
// 0xFF0F (IF), and 0xFFFF (IE) wiring the CPU's HALT wake check and the
// timer depend on.
package membus

import (
	"github.com/nostalgiza/lr35902/internal/cpu"
	"github.com/nostalgiza/lr35902/internal/timer"
)

// Register addresses the bus special-cases.
const (
	addrIF = 0xFF0F
	addrSB = 0xFF01
	addrSC = 0xFF02
)

// interruptLines is implemented by interrupt.Controller; declared here
// rather than imported to avoid membus depending on the concrete
// controller type it is otherwise independent of.
type interruptLines interface {
	Pending(line cpu.Interrupt) bool
	Request(line cpu.Interrupt)
	Clear(line cpu.Interrupt)
}

// Bus is a flat 64 KiB address space with timer registers routed to a
// timer.Timer, IF (0xFF0F) routed to an interrupt controller, and a
// minimal serial port for test-ROM output capture.
type Bus struct {
	ram   [0x10000]uint8
	timer *timer.Timer
	ints  interruptLines

	onSerialByte func(b uint8)
}

// New returns a Bus with a zeroed address space and no timer or interrupt
// controller attached.
func New() *Bus {
	return &Bus{}
}

// AttachTimer routes DIV/TIMA/TMA/TAC (0xFF04-0xFF07) reads and writes to t
// instead of backing storage.
func (b *Bus) AttachTimer(t *timer.Timer) {
	b.timer = t
}

// AttachInterrupts routes IF (0xFF0F) reads and writes through ic, so the
// bit pattern the CPU's HALT wake check reads always agrees with what
// DispatchInterrupts sees via the Interrupts interface.
func (b *Bus) AttachInterrupts(ic interruptLines) {
	b.ints = ic
}

// OnSerialByte registers a callback invoked whenever the CPU completes a
// serial transfer (SC bit 7 set then cleared), with the byte that was in
// SB at the time. Used by the harness to capture test-ROM output.
func (b *Bus) OnSerialByte(fn func(b uint8)) {
	b.onSerialByte = fn
}

// LoadROM copies data into the bus starting at address 0, as if it were
// mapped at the start of the address space.
func (b *Bus) LoadROM(data []byte) {
	copy(b.ram[:], data)
}

// Read reads a byte off the bus.
func (b *Bus) Read(addr uint16) uint8 {
	switch {
	case b.timer != nil && addr >= timer.DIV && addr <= timer.TAC:
		return b.timer.Read(addr)
	case b.ints != nil && addr == addrIF:
		return b.ifByte()
	default:
		return b.ram[addr]
	}
}

// Write writes a byte to the bus. A write to SC with bit 7 set is treated
// as completing a serial transfer: the callback registered with
// OnSerialByte fires with the current SB value, and bit 7 is cleared back
// off, mirroring how real hardware reports transfer completion.
func (b *Bus) Write(addr uint16, value uint8) {
	switch {
	case b.timer != nil && addr >= timer.DIV && addr <= timer.TAC:
		b.timer.Write(addr, value)
		return
	case b.ints != nil && addr == addrIF:
		b.setIFByte(value)
		return
	}

	b.ram[addr] = value

	if addr == addrSC && value&0x80 != 0 {
		if b.onSerialByte != nil {
			b.onSerialByte(b.ram[addrSB])
		}
		b.ram[addrSC] = value &^ 0x80
	}
}

// ifByte reassembles the IF register's low 5 bits from the attached
// interrupt controller's pending lines; the upper 3 bits read as set.
func (b *Bus) ifByte() uint8 {
	var v uint8
	for line := cpu.InterruptVBlank; line <= cpu.InterruptJoypad; line++ {
		if b.ints.Pending(line) {
			v |= 1 << line
		}
	}
	return v | 0xE0
}

// setIFByte replays a raw write to IF back onto the interrupt controller,
// requesting lines whose bit is set and clearing lines whose bit is not.
func (b *Bus) setIFByte(value uint8) {
	for line := cpu.InterruptVBlank; line <= cpu.InterruptJoypad; line++ {
		if value&(1<<line) != 0 {
			b.ints.Request(line)
		} else {
			b.ints.Clear(line)
		}
	}
}

// RequestInterrupt flags line as pending on the attached interrupt
// controller, if one is attached; otherwise it does nothing.
func (b *Bus) RequestInterrupt(line cpu.Interrupt) {
	if b.ints != nil {
		b.ints.Request(line)
	}
}

// Reset zeroes the address space, leaving any attached timer untouched
// (the caller is responsible for resetting it separately).
func (b *Bus) Reset() {
	for i := range b.ram {
		b.ram[i] = 0
	}
}
