// Package config handles application configuration and setup
package config

import (
	"math/rand/v2"

	"github.com/retroenv/retrochip8/internal/chip8"
	"github.com/retroenv/retrochip8/internal/disasm"
	"github.com/retroenv/retrochip8/internal/options"
	"github.com/retroenv/retrochip8/internal/runner"
	"github.com/retroenv/retrogolib/log"
)

// CreateLogger creates a logger with appropriate settings
func CreateLogger(debug, quiet bool) *log.Logger {
	cfg := log.DefaultConfig()
	if debug {
		cfg.Level = log.DebugLevel
	} else if quiet {
		cfg.Level = log.ErrorLevel
	}
	return log.NewWithConfig(cfg)
}

// Interpreter returns the interpreter configuration for the program options.
// A nonzero seed makes the random number sequence reproducible.
func Interpreter(opts options.Program) chip8.Config {
	cfg := chip8.Config{
		Quirks: chip8.Quirks{
			ShiftUsesVY:              opts.ShiftUsesVY,
			LoadStoreIncrementsIndex: opts.LoadStoreIncrementsIndex,
			WaitForKeyRelease:        opts.WaitForKeyRelease,
		},
	}
	if opts.Seed != 0 {
		cfg.Random = rand.New(rand.NewPCG(opts.Seed, opts.Seed))
	}
	return cfg
}

// Runner returns the host loop configuration for the program options.
func Runner(opts options.Program) runner.Config {
	cycles := opts.Speed / runner.FramesPerSecond
	if cycles < 1 {
		cycles = 1
	}

	return runner.Config{
		CyclesPerFrame: cycles,
		Frames:         opts.Frames,
		Breakpoints:    opts.Breakpoints,
		Trace:          opts.Debug,
	}
}

// Disassembler returns the listing options for the program options.
func Disassembler(opts options.Program) disasm.Options {
	return disasm.Options{
		HexComments:    !opts.NoHexComments,
		OffsetComments: !opts.NoOffsets,
	}
}
