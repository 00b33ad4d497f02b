package disasm

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/retroenv/retrochip8/internal/chip8"
	chip8cpu "github.com/retroenv/retrogolib/arch/cpu/chip8"
	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
)

func runDisasm(t *testing.T, rom []byte, options Options) []string {
	t.Helper()

	dis, err := New(log.NewTestLogger(t), rom, options)
	assert.NoError(t, err)

	lines, err := dis.Process(context.Background())
	assert.NoError(t, err)
	return lines
}

func TestProcess(t *testing.T) {
	rom := []byte{
		0x00, 0xE0, // CLS
		0xA2, 0x0A, // LD I, $20A
		0x22, 0x08, // CALL $208
		0x12, 0x06, // JP $206
		0x00, 0xEE, // RET
		0xF0, 0x90, // sprite data
	}

	expected := []string{
		"Start:",
		"  CLS",
		"  LD I, _data_020a",
		"  CALL _func_0208",
		"_label_0206:",
		"  JP _label_0206",
		"_func_0208:",
		"  RET",
		"_data_020a:",
		"  .byte $F0, $90",
	}

	lines := runDisasm(t, rom, Options{})
	if diff := cmp.Diff(expected, lines); diff != "" {
		t.Errorf("listing mismatch (-want +got):\n%s", diff)
	}
}

func TestProcessSkipFollowsBothPaths(t *testing.T) {
	rom := []byte{
		0x30, 0x01, // SE V0, $01
		0x00, 0xEE, // RET
		0x00, 0xEE, // RET
	}

	expected := []string{
		"Start:",
		"  SE V0, $01",
		"  RET",
		"  RET",
	}

	lines := runDisasm(t, rom, Options{})
	if diff := cmp.Diff(expected, lines); diff != "" {
		t.Errorf("listing mismatch (-want +got):\n%s", diff)
	}
}

func TestProcessUnknownOpcodeIsData(t *testing.T) {
	rom := []byte{
		0x12, 0x04, // JP $204
		0xFF, 0xFF, // not reachable, not decodable
		0x00, 0xEE, // RET
		0x01, // trailing byte
	}

	expected := []string{
		"Start:",
		"  JP _label_0204",
		"  .byte $FF, $FF",
		"_label_0204:",
		"  RET",
		"  .byte $01",
	}

	lines := runDisasm(t, rom, Options{})
	if diff := cmp.Diff(expected, lines); diff != "" {
		t.Errorf("listing mismatch (-want +got):\n%s", diff)
	}
}

func TestProcessJumpOffsetIsNotFollowed(t *testing.T) {
	rom := []byte{
		0xB2, 0x04, // JP V0, $204
		0x00, 0xE0,
		0x00, 0xEE,
	}

	lines := runDisasm(t, rom, Options{})
	assert.Len(t, lines, 3)
	assert.Equal(t, "  JP V0, $204", lines[1])
	assert.Equal(t, "  .byte $00, $E0, $00, $EE", lines[2])
}

func TestProcessDataLineLength(t *testing.T) {
	rom := []byte{0x00, 0xEE}
	for i := range 10 {
		rom = append(rom, byte(i))
	}

	expected := []string{
		"Start:",
		"  RET",
		"  .byte $00, $01, $02, $03, $04, $05, $06, $07",
		"  .byte $08, $09",
	}

	lines := runDisasm(t, rom, Options{})
	if diff := cmp.Diff(expected, lines); diff != "" {
		t.Errorf("listing mismatch (-want +got):\n%s", diff)
	}
}

func TestProcessComments(t *testing.T) {
	rom := []byte{0x00, 0xE0, 0x00, 0xEE}

	lines := runDisasm(t, rom, Options{HexComments: true, OffsetComments: true})
	assert.Len(t, lines, 3)
	assert.Equal(t, "  CLS                    ; $0200 00 E0", lines[1])
	assert.Equal(t, "  RET                    ; $0202 00 EE", lines[2])
}

func TestProcessEmptyROM(t *testing.T) {
	lines := runDisasm(t, nil, Options{})
	assert.Empty(t, lines)
}

func TestProcessCancelled(t *testing.T) {
	dis, err := New(log.NewTestLogger(t), []byte{0x00, 0xE0}, Options{})
	assert.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = dis.Process(ctx)
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestNewROMTooLarge(t *testing.T) {
	_, err := New(log.NewTestLogger(t), make([]byte, chip8.MaxROMSize+1), Options{})
	assert.True(t, errors.Is(err, chip8.ErrROMTooLarge))
}

func TestFormat(t *testing.T) {
	tests := []struct {
		opcode   uint16
		expected string
	}{
		{0x00E0, "CLS"},
		{0x00EE, "RET"},
		{0x1234, "JP $234"},
		{0x2ABC, "CALL $ABC"},
		{0x6A12, "LD VA, $12"},
		{0x7105, "ADD V1, $05"},
		{0x8124, "ADD V1, V2"},
		{0xA300, "LD I, $300"},
		{0xB300, "JP V0, $300"},
		{0xD125, "DRW V1, V2, $5"},
		{0xE39E, "SKP V3"},
		{0xF20A, "LD V2, K"},
		{0xF255, "LD [I], V2"},
		{0xF265, "LD V2, [I]"},
		{0xFFFF, ".word $FFFF"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, Format(tt.opcode))
		})
	}
}

func TestInstructionClassification(t *testing.T) {
	tests := []struct {
		name     string
		instr    *chip8cpu.Instruction
		isJump   bool
		isCall   bool
		isReturn bool
		isSkip   bool
	}{
		{"jump", chip8cpu.Jp, true, false, false, false},
		{"call", chip8cpu.Call, false, true, false, false},
		{"return", chip8cpu.Ret, false, false, true, false},
		{"SE", chip8cpu.Se, false, false, false, true},
		{"SNE", chip8cpu.Sne, false, false, false, true},
		{"SKP", chip8cpu.Skp, false, false, false, true},
		{"SKNP", chip8cpu.Sknp, false, false, false, true},
		{"load", chip8cpu.Ld, false, false, false, false},
		{"nil", nil, false, false, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ins := instruction{ins: tt.instr}
			assert.Equal(t, tt.isJump, ins.IsJump())
			assert.Equal(t, tt.isCall, ins.IsCall())
			assert.Equal(t, tt.isReturn, ins.IsReturn())
			assert.Equal(t, tt.isSkip, ins.IsSkip())
		})
	}
}

func TestInstructionIsDataReference(t *testing.T) {
	ld := instruction{ins: chip8cpu.Ld}
	assert.True(t, ld.IsDataReference(0xA200))
	assert.False(t, ld.IsDataReference(0x6200))

	jp := instruction{ins: chip8cpu.Jp}
	assert.False(t, jp.IsDataReference(0xA200))
}

func TestLookupMatchesDecoder(t *testing.T) {
	opcodes := []uint16{0x00E0, 0x00EE, 0x1200, 0x2200, 0x3100, 0xA200, 0xD125, 0xF133}
	for _, opcode := range opcodes {
		_, err := chip8.Decode(opcode)
		assert.NoError(t, err)
		assert.False(t, lookup(opcode).IsNil(), "opcode", opcode)
	}
}
