// Package main provides the lr35902 CLI application.
package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/alecthomas/kong"
	"github.com/nostalgiza/lr35902/internal/cpu"
	"github.com/nostalgiza/lr35902/internal/harness"
	"github.com/nostalgiza/lr35902/internal/testrom"
)

var (
	// ErrTestFailed indicates a test ROM failed.
	ErrTestFailed = errors.New("test failed")
)

// CLI represents the command-line interface structure.
type CLI struct {
	Test  TestCmd  `cmd:"" help:"Run a test ROM and report results."`
	Trace TraceCmd `cmd:"" help:"Execute a ROM for a fixed number of instructions, printing a trace of each."`
}

// TestCmd runs a test ROM against the CPU core and reports results.
type TestCmd struct {
	ROM     string `arg:"" type:"existingfile" help:"Path to test ROM file."`
	Timeout int    `default:"30" help:"Timeout in seconds."`
	Verbose bool   `short:"v" help:"Show detailed output."`
}

// Run executes the test command.
func (c *TestCmd) Run() error {
	fmt.Printf("Running test ROM: %s\n", c.ROM)

	timeout := time.Duration(c.Timeout) * time.Second
	result := testrom.Run(c.ROM, timeout)

	fmt.Printf("Result: %s\n", result.String())

	if c.Verbose || !result.IsSuccess() {
		fmt.Printf("\nOutput:\n%s\n", result.Output)
	}

	if !result.IsSuccess() {
		return ErrTestFailed
	}

	return nil
}

// TraceCmd loads a ROM, attaches a cpu.Trace, and prints one line per
// harness step. A step that dispatches an interrupt or idles in HALT does
// not refresh the trace, so its line repeats the previous instruction's.
type TraceCmd struct {
	ROM   string `arg:"" type:"existingfile" help:"Path to ROM file."`
	Count int    `default:"100" help:"Number of instructions to execute."`
}

// Run executes the trace command.
func (c *TraceCmd) Run() error {
	// #nosec G304 - ROM path is provided by the user via CLI argument
	data, err := os.ReadFile(c.ROM)
	if err != nil {
		return fmt.Errorf("failed to read ROM: %w", err)
	}

	h := harness.New(data)
	tr := cpu.NewTrace()
	h.CPU.Trace = tr

	for i := 0; i < c.Count; i++ {
		h.Step()
		fmt.Printf("%04d  PC=%04X OP=%02X AF=%02X%02X BC=%02X%02X DE=%02X%02X HL=%02X%02X SP=%04X cyc=%d\n",
			i, tr.PC, tr.Opcode, tr.A, tr.F, tr.B, tr.C, tr.D, tr.E, tr.H, tr.L, tr.SP, tr.CPUCycles)
	}

	return nil
}

func main() {
	cli := &CLI{}
	ctx := kong.Parse(cli,
		kong.Name("lr35902"),
		kong.Description("A standalone Sharp LR35902 CPU core."),
		kong.UsageOnError(),
	)

	err := ctx.Run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
