// Package harness drives a cpu.CPU against a membus.Bus for test-ROM
// execution: a plain step loop plus serial-output capture and Blargg-style
// PASSED/FAILED detection, the shape the teacher's emulator package ran
// full Game Boy cartridges with, narrowed to just what exercising the CPU
// core requires.
package harness

import (
	"bytes"
	"errors"
	"time"

	"github.com/nostalgiza/lr35902/internal/cpu"
	"github.com/nostalgiza/lr35902/internal/interrupt"
	"github.com/nostalgiza/lr35902/internal/membus"
	"github.com/nostalgiza/lr35902/internal/timer"
)

const (
	// cyclesPerIteration bounds how much we run between output checks.
	cyclesPerIteration = 10000

	// maxSerialBufferSize limits serial output capture to prevent an
	// unbounded ROM from growing the buffer without limit.
	maxSerialBufferSize = 64 * 1024

	initialSerialBufferCapacity = 1024

	// stableOutputDuration is how long to wait with no new serial output
	// before treating a ROM without a completion marker as done.
	stableOutputDuration = 3 * time.Second
)

// ErrTimeout indicates RunUntilOutput hit its deadline with no completion
// marker and no stable output.
var ErrTimeout = errors.New("harness: timeout waiting for serial output")

var (
	passedBytes = []byte("Passed")
	failedBytes = []byte("Failed")
)

// Harness ties a CPU core to a flat bus, a timer, and an interrupt
// controller, and drives them together one instruction at a time.
type Harness struct {
	CPU        *cpu.CPU
	Bus        *membus.Bus
	Timer      *timer.Timer
	Interrupts *interrupt.Controller

	serialOutput []byte
}

// New wires a fresh CPU, bus, timer, and interrupt controller together and
// loads rom at the start of the address space.
func New(rom []byte) *Harness {
	h := &Harness{
		CPU:          cpu.New(),
		Bus:          membus.New(),
		Interrupts:   interrupt.New(),
		serialOutput: make([]byte, 0, initialSerialBufferCapacity),
	}
	h.Timer = timer.New(func() {
		h.Interrupts.Request(cpu.InterruptTimerOverflow)
	})
	h.Bus.AttachTimer(h.Timer)
	h.Bus.AttachInterrupts(h.Interrupts)
	h.Bus.OnSerialByte(h.captureSerialByte)
	h.Bus.LoadROM(rom)
	h.CPU.ResetPostBoot()
	return h
}

func (h *Harness) captureSerialByte(b uint8) {
	if len(h.serialOutput) < maxSerialBufferSize {
		h.serialOutput = append(h.serialOutput, b)
	}
}

// stepFn is the callback the CPU invokes once per machine cycle of bus
// traffic; it advances the timer in lockstep.
func (h *Harness) stepFn() {
	h.Timer.StepMCycle()
}

// Step either dispatches a pending interrupt or, when none is dispatched,
// executes one instruction, and returns the cycles it cost. A step that
// dispatches an interrupt does not execute an instruction.
func (h *Harness) Step() uint8 {
	if cycles := h.CPU.DispatchInterrupts(h.Bus, h.Interrupts, h.stepFn); cycles != 0 {
		return cycles
	}
	return h.CPU.Step(h.Bus, h.stepFn)
}

// RunCycles runs the harness until CPU.Cycles has advanced by at least
// cycles clock cycles.
func (h *Harness) RunCycles(cycles uint64) {
	target := h.CPU.Cycles + cycles
	for h.CPU.Cycles < target {
		h.Step()
	}
}

// RunUntilOutput runs the harness until serial output contains a
// completion marker, output goes quiet for stableOutputDuration, or
// timeout elapses.
func (h *Harness) RunUntilOutput(timeout time.Duration) (string, error) {
	deadline := time.Now().Add(timeout)
	lastLen := 0
	lastChange := time.Now()

	for {
		if time.Now().After(deadline) {
			if len(h.serialOutput) > 0 {
				return string(h.serialOutput), nil
			}
			return "", ErrTimeout
		}

		h.RunCycles(cyclesPerIteration)

		if len(h.serialOutput) > lastLen {
			lastLen = len(h.serialOutput)
			lastChange = time.Now()
			if bytes.Contains(h.serialOutput, passedBytes) || bytes.Contains(h.serialOutput, failedBytes) {
				return string(h.serialOutput), nil
			}
		}

		if len(h.serialOutput) > 0 && time.Since(lastChange) > stableOutputDuration {
			return string(h.serialOutput), nil
		}
	}
}

// SerialOutput returns the serial bytes captured so far.
func (h *Harness) SerialOutput() string {
	return string(h.serialOutput)
}
