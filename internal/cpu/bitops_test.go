package cpu

import "testing"

// S6: RLCA on A=0x80 with all flags set.
func TestRLCScenario(t *testing.T) {
	r := NewRegisters()
	r.SetFlags(true, true, true, true)
	got := rlc(r, 0x80)
	if got != 0x01 || r.SubtractFlag() || r.HalfCarryFlag() || !r.CarryFlag() {
		t.Errorf("S6: got %#x N=%v H=%v C=%v", got, r.SubtractFlag(), r.HalfCarryFlag(), r.CarryFlag())
	}
}

func TestSwapTwiceIsIdentity(t *testing.T) {
	r := NewRegisters()
	got := swap(r, 0x3C)
	got = swap(r, got)
	if got != 0x3C {
		t.Errorf("SWAP;SWAP changed value to %#x, want 0x3C", got)
	}
}

func TestRLCRRCIsIdentity(t *testing.T) {
	r := NewRegisters()
	got := rlc(r, 0xA5)
	got = rrc(r, got)
	if got != 0xA5 {
		t.Errorf("RLC;RRC changed value to %#x, want 0xA5", got)
	}
}

func TestRLRRIdentityWhenCarryPreserved(t *testing.T) {
	r := NewRegisters()
	r.ClearFlag(FlagC)
	got := rl(r, 0x01)
	got = rr(r, got)
	if got != 0x01 {
		t.Errorf("RL;RR changed value to %#x, want 0x01", got)
	}
}

func TestBitSetRes(t *testing.T) {
	r := NewRegisters()
	bit(r, 0x00, 3)
	if !r.ZeroFlag() || r.SubtractFlag() || !r.HalfCarryFlag() {
		t.Errorf("bit(0,3): Z=%v N=%v H=%v", r.ZeroFlag(), r.SubtractFlag(), r.HalfCarryFlag())
	}
	if got := set(0x00, 3); got != 0x08 {
		t.Errorf("set(0, 3) = %#x, want 0x08", got)
	}
	if got := res(0xFF, 3); got != 0xF7 {
		t.Errorf("res(0xFF, 3) = %#x, want 0xF7", got)
	}
}

func TestSRASignPreserved(t *testing.T) {
	r := NewRegisters()
	got := sra(r, 0x81)
	if got != 0xC0 || !r.CarryFlag() {
		t.Errorf("sra(0x81) = %#x C=%v, want 0xC0 true", got, r.CarryFlag())
	}
}

func TestSRLClearsMSB(t *testing.T) {
	r := NewRegisters()
	got := srl(r, 0x81)
	if got != 0x40 || !r.CarryFlag() {
		t.Errorf("srl(0x81) = %#x C=%v, want 0x40 true", got, r.CarryFlag())
	}
}
