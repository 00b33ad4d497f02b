package app

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/retroenv/retrochip8/internal/chip8"
	"github.com/retroenv/retrochip8/internal/options"
	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
)

// drawZero draws the font glyph 0 at the top left corner and loops.
var drawZero = []byte{
	0xF0, 0x29, // LD F, V0
	0xD0, 0x05, // DRW V0, V0, 5
	0x12, 0x04, // JP $204
}

func TestRunHeadless(t *testing.T) {
	opts := options.New()
	opts.Headless = true
	opts.Frames = 2
	opts.Quiet = true

	var output bytes.Buffer
	err := Run(context.Background(), log.NewTestLogger(t), opts, drawZero, &output)
	assert.NoError(t, err)

	lines := strings.Split(output.String(), "\n")
	assert.Equal(t, "####"+strings.Repeat(".", 60), lines[0])
	assert.Equal(t, "#..#"+strings.Repeat(".", 60), lines[1])
	assert.Equal(t, "####"+strings.Repeat(".", 60), lines[4])
	assert.Equal(t, strings.Repeat(".", 64), lines[5])
}

func TestRunHeadlessBreakpoint(t *testing.T) {
	opts := options.New()
	opts.Headless = true
	opts.Frames = 10
	opts.Breakpoints = []uint16{0x204}

	var output bytes.Buffer
	err := Run(context.Background(), log.NewTestLogger(t), opts, drawZero, &output)
	assert.NoError(t, err)
	assert.True(t, strings.HasPrefix(output.String(), "####"))
}

func TestRunHeadlessError(t *testing.T) {
	opts := options.New()
	opts.Headless = true
	opts.Frames = 10

	var output bytes.Buffer
	err := Run(context.Background(), log.NewTestLogger(t), opts, []byte{0xFF, 0xFF}, &output)
	assert.True(t, errors.Is(err, chip8.ErrUnknownOpcode))
	assert.NotEmpty(t, output.String())
}

func TestRunROMTooLarge(t *testing.T) {
	opts := options.New()
	opts.Headless = true

	err := Run(context.Background(), log.NewTestLogger(t), opts, make([]byte, chip8.MaxROMSize+1), &bytes.Buffer{})
	assert.True(t, errors.Is(err, chip8.ErrROMTooLarge))
}

func TestDisassemble(t *testing.T) {
	opts := options.New()
	opts.Disasm = true
	opts.NoHexComments = true
	opts.NoOffsets = true

	var output bytes.Buffer
	err := Run(context.Background(), log.NewTestLogger(t), opts, drawZero, &output)
	assert.NoError(t, err)

	expected := "Start:\n" +
		"  LD F, V0\n" +
		"  DRW V0, V0, $5\n" +
		"_label_0204:\n" +
		"  JP _label_0204\n"
	assert.Equal(t, expected, output.String())
}

func TestPrintBanner(t *testing.T) {
	opts := options.New()
	PrintBanner(log.NewTestLogger(t), opts, "1.0.0", "0123456789abcdef", "2024-01-01")

	opts.Quiet = true
	PrintBanner(log.NewTestLogger(t), opts, "1.0.0", "", "")
}
