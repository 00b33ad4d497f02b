// Package cli handles command line interface logic
package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/retroenv/retrochip8/internal/options"
)

// ParseFlags parses the command line arguments, excluding the program name,
// and returns the program options.
func ParseFlags(args []string) (options.Program, error) {
	flags := flag.NewFlagSet("retrochip8", flag.ContinueOnError)
	flags.SetOutput(io.Discard)

	opts := options.New()
	var breakpoints string
	readOptionFlags(flags, &opts, &breakpoints)
	readQuirkFlags(flags, &opts.Quirks)
	readOutputFlags(flags, &opts.OutputFlags)

	if err := flags.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return opts, &UsageError{flags: flags}
		}
		return opts, &UsageError{flags: flags, msg: err.Error()}
	}
	if opts.Version {
		return opts, nil
	}

	positional := flags.Args()
	if err := validateArgs(positional); err != nil {
		err.flags = flags
		return opts, err
	}
	opts.ROM = positional[0]

	if err := normalizeOptions(&opts, breakpoints); err != nil {
		err.flags = flags
		return opts, err
	}
	return opts, nil
}

// UsageError represents an error that should show usage information
type UsageError struct {
	flags *flag.FlagSet
	msg   string
}

func (e *UsageError) Error() string {
	if e.msg == "" {
		return "invalid usage"
	}
	return e.msg
}

// ShowUsage prints the error message and the flag defaults to w.
func (e *UsageError) ShowUsage(w io.Writer) {
	if e.msg != "" {
		_, _ = fmt.Fprintf(w, "%s\n\n", e.msg)
	}
	_, _ = fmt.Fprintf(w, "usage: retrochip8 [options] <rom file>\n\n")
	if e.flags != nil {
		e.flags.SetOutput(w)
		e.flags.PrintDefaults()
	}
	_, _ = fmt.Fprintln(w)
}

// validateArgs checks that exactly one ROM file was passed after the flags.
func validateArgs(args []string) *UsageError {
	switch len(args) {
	case 0:
		return &UsageError{msg: "no ROM file given"}
	case 1:
		return nil
	}

	for _, arg := range args[1:] {
		if strings.HasPrefix(arg, "-") {
			return &UsageError{
				msg: fmt.Sprintf("Potential argument %s found after ROM file, please pass the ROM file as last argument", arg),
			}
		}
	}
	return &UsageError{msg: fmt.Sprintf("only one ROM file can be run, got %d", len(args))}
}

// normalizeOptions validates option values and fills in derived defaults.
func normalizeOptions(opts *options.Program, breakpoints string) *UsageError {
	if opts.Speed <= 0 {
		return &UsageError{msg: fmt.Sprintf("invalid speed %d, must be positive", opts.Speed)}
	}
	if opts.Frames < 0 {
		return &UsageError{msg: fmt.Sprintf("invalid frame count %d", opts.Frames)}
	}
	if opts.Headless && opts.Frames == 0 {
		opts.Frames = options.DefaultHeadlessFrames
	}

	addresses, err := parseBreakpoints(breakpoints)
	if err != nil {
		return &UsageError{msg: err.Error()}
	}
	opts.Breakpoints = addresses
	return nil
}

// parseBreakpoints parses a comma separated list of hex addresses. The
// addresses can be prefixed with $ or 0x.
func parseBreakpoints(s string) ([]uint16, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}

	var addresses []uint16
	for _, field := range strings.Split(s, ",") {
		field = strings.TrimSpace(field)
		field = strings.TrimPrefix(field, "$")
		field = strings.TrimPrefix(strings.ToLower(field), "0x")

		address, err := strconv.ParseUint(field, 16, 12)
		if err != nil {
			return nil, fmt.Errorf("invalid breakpoint address '%s': %w", field, err)
		}
		addresses = append(addresses, uint16(address))
	}
	return addresses, nil
}

func readOptionFlags(flags *flag.FlagSet, opts *options.Program, breakpoints *string) {
	flags.IntVar(&opts.Speed, "speed", options.DefaultSpeed, "number of instructions executed per second")
	flags.Uint64Var(&opts.Seed, "seed", 0, "seed of the random number generator, 0 uses a random seed")
	flags.StringVar(breakpoints, "break", "", "comma separated list of hex addresses to pause execution at, for example 200,2a4")
	flags.BoolVar(&opts.Headless, "headless", false, "run without terminal output and print the final screen")
	flags.IntVar(&opts.Frames, "frames", 0, fmt.Sprintf("number of frames to run, 0 runs until quit (headless default %d)", options.DefaultHeadlessFrames))
	flags.BoolVar(&opts.Disasm, "disasm", false, "print a disassembly listing of the ROM and exit")
	flags.BoolVar(&opts.Debug, "debug", false, "enable debugging options for extended logging")
	flags.BoolVar(&opts.Quiet, "q", false, "perform operations quietly")
	flags.BoolVar(&opts.Version, "version", false, "print the version and exit")
}

func readQuirkFlags(flags *flag.FlagSet, quirks *options.Quirks) {
	flags.BoolVar(&quirks.ShiftUsesVY, "shift-vy", false, "8xy6 and 8xyE shift VY into VX")
	flags.BoolVar(&quirks.LoadStoreIncrementsIndex, "load-store-inc", false, "Fx55 and Fx65 increment I")
	flags.BoolVar(&quirks.WaitForKeyRelease, "key-release", false, "Fx0A completes when the pressed key is released")
}

func readOutputFlags(flags *flag.FlagSet, opts *options.OutputFlags) {
	flags.BoolVar(&opts.NoHexComments, "nohexcomments", false, "do not output opcode bytes as hex values in comments")
	flags.BoolVar(&opts.NoOffsets, "nooffsets", false, "do not output addresses in comments")
}
