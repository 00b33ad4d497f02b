// Package app provides the main application helpers that connect the
// program options to the emulator components.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/retroenv/retrochip8/internal/chip8"
	"github.com/retroenv/retrochip8/internal/config"
	"github.com/retroenv/retrochip8/internal/disasm"
	"github.com/retroenv/retrochip8/internal/frontend"
	"github.com/retroenv/retrochip8/internal/options"
	"github.com/retroenv/retrochip8/internal/runner"
	"github.com/retroenv/retrogolib/log"
)

// PrintBanner prints the program name and version.
func PrintBanner(logger *log.Logger, opts options.Program, version, commit, date string) {
	if opts.Quiet {
		return
	}

	versionString := version
	if commit != "" {
		if len(commit) > 7 {
			commit = commit[:7]
		}
		versionString += fmt.Sprintf(" (%s)", commit)
	}

	logger.Info("retrochip8", log.String("version", versionString))

	if date != "" && !strings.Contains(date, "unknown") {
		logger.Info("Build", log.String("date", date))
	}
}

// PrintInfo prints the information about the ROM and the active options.
func PrintInfo(logger *log.Logger, opts options.Program, rom []byte) {
	if opts.Quiet {
		return
	}

	logger.Info("Running CHIP-8 ROM",
		log.String("file", opts.ROM),
		log.Int("size", len(rom)),
		log.Int("speed", opts.Speed))

	if opts.ShiftUsesVY || opts.LoadStoreIncrementsIndex || opts.WaitForKeyRelease {
		logger.Info("Quirks enabled",
			log.String("shift", shiftQuirkName(opts.ShiftUsesVY)),
			log.String("load_store", loadStoreQuirkName(opts.LoadStoreIncrementsIndex)),
			log.String("key_wait", keyWaitQuirkName(opts.WaitForKeyRelease)))
	}
}

// Run executes the ROM with the front end selected by the options, or
// writes a disassembly listing of it. The headless front end writes the
// final screen to output.
func Run(ctx context.Context, logger *log.Logger, opts options.Program, rom []byte, output io.Writer) error {
	if opts.Disasm {
		return Disassemble(ctx, logger, opts, rom, output)
	}

	interpreter := chip8.New(config.Interpreter(opts))
	if err := interpreter.LoadROM(rom); err != nil {
		return fmt.Errorf("initializing interpreter: %w", err)
	}
	PrintInfo(logger, opts, rom)

	runnerConfig := config.Runner(opts)

	if opts.Headless {
		headless := frontend.NewHeadless()
		runnerConfig.NoPacing = true

		err := runner.New(logger, interpreter, headless, runnerConfig).Run(ctx)
		if _, writeErr := io.WriteString(output, headless.String()); writeErr != nil {
			return fmt.Errorf("writing screen: %w", writeErr)
		}
		return ignoreBreakpoint(err)
	}

	terminal := frontend.NewTerminal(logger)
	if err := terminal.Start(); err != nil {
		return fmt.Errorf("starting terminal: %w", err)
	}
	defer func() {
		if err := terminal.Close(); err != nil {
			logger.Error("Restoring terminal failed", log.Err(err))
		}
	}()

	return ignoreBreakpoint(runner.New(logger, interpreter, terminal, runnerConfig).Run(ctx))
}

// Disassemble writes the assembly listing of the ROM to output.
func Disassemble(ctx context.Context, logger *log.Logger, opts options.Program, rom []byte, output io.Writer) error {
	dis, err := disasm.New(logger, rom, config.Disassembler(opts))
	if err != nil {
		return fmt.Errorf("creating disassembler: %w", err)
	}

	lines, err := dis.Process(ctx)
	if err != nil {
		return fmt.Errorf("disassembling: %w", err)
	}

	for _, line := range lines {
		if _, err := fmt.Fprintln(output, line); err != nil {
			return fmt.Errorf("writing listing: %w", err)
		}
	}
	return nil
}

// ignoreBreakpoint treats a hit breakpoint as a regular end of execution,
// the runner already logged the machine state.
func ignoreBreakpoint(err error) error {
	if errors.Is(err, runner.ErrBreakpoint) {
		return nil
	}
	return err
}

func shiftQuirkName(enabled bool) string {
	if enabled {
		return "vy"
	}
	return "vx"
}

func loadStoreQuirkName(enabled bool) string {
	if enabled {
		return "increment"
	}
	return "keep"
}

func keyWaitQuirkName(enabled bool) string {
	if enabled {
		return "release"
	}
	return "press"
}
