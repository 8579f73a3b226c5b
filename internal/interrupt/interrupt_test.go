package interrupt

import (
	"testing"

	"github.com/nostalgiza/lr35902/internal/cpu"
)

func TestHighestPriorityOrdering(t *testing.T) {
	c := New()
	c.Request(cpu.InterruptJoypad)
	c.Request(cpu.InterruptTimerOverflow)
	c.Request(cpu.InterruptVBlank)

	line, ok := c.HighestPriority()
	if !ok || line != cpu.InterruptVBlank {
		t.Fatalf("HighestPriority() = %v,%v, want VBlank,true", line, ok)
	}
}

func TestClearRemovesOnlyThatLine(t *testing.T) {
	c := New()
	c.Request(cpu.InterruptVBlank)
	c.Request(cpu.InterruptSerial)

	c.Clear(cpu.InterruptVBlank)

	if c.Pending(cpu.InterruptVBlank) {
		t.Error("VBlank should be cleared")
	}
	if !c.Pending(cpu.InterruptSerial) {
		t.Error("Serial should remain pending")
	}
}

func TestAnyPending(t *testing.T) {
	c := New()
	if c.AnyPending() {
		t.Error("AnyPending should be false with nothing requested")
	}
	c.Request(cpu.InterruptLCDStat)
	if !c.AnyPending() {
		t.Error("AnyPending should be true once a line is requested")
	}
}

func TestNoLinesPendingReturnsFalse(t *testing.T) {
	c := New()
	if _, ok := c.HighestPriority(); ok {
		t.Error("HighestPriority should report false with nothing pending")
	}
}
