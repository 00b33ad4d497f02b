package chip8

import (
	"errors"
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestDecode(t *testing.T) {
	tests := []struct {
		name     string
		opcode   uint16
		expected Instruction
	}{
		{"CLS", 0x00E0, Clear{}},
		{"RET", 0x00EE, Return{}},
		{"SYS", 0x0123, Sys{Address: 0x123}},
		{"JP addr", 0x1ABC, Jump{Address: 0xABC}},
		{"CALL addr", 0x2ABC, Call{Address: 0xABC}},
		{"SE Vx, byte", 0x3A12, SkipEqual{X: 0xA, Value: 0x12}},
		{"SNE Vx, byte", 0x4B34, SkipNotEqual{X: 0xB, Value: 0x34}},
		{"SE Vx, Vy", 0x5120, SkipEqualRegister{X: 1, Y: 2}},
		{"LD Vx, byte", 0x6A12, Load{X: 0xA, Value: 0x12}},
		{"ADD Vx, byte", 0x7C01, Add{X: 0xC, Value: 0x01}},
		{"LD Vx, Vy", 0x8120, LoadRegister{X: 1, Y: 2}},
		{"OR Vx, Vy", 0x8121, Or{X: 1, Y: 2}},
		{"AND Vx, Vy", 0x8122, And{X: 1, Y: 2}},
		{"XOR Vx, Vy", 0x8123, Xor{X: 1, Y: 2}},
		{"ADD Vx, Vy", 0x8124, AddRegister{X: 1, Y: 2}},
		{"SUB Vx, Vy", 0x8125, Sub{X: 1, Y: 2}},
		{"SHR Vx", 0x8126, ShiftRight{X: 1, Y: 2}},
		{"SUBN Vx, Vy", 0x8127, SubN{X: 1, Y: 2}},
		{"SHL Vx", 0x812E, ShiftLeft{X: 1, Y: 2}},
		{"SNE Vx, Vy", 0x9AB0, SkipNotEqualRegister{X: 0xA, Y: 0xB}},
		{"LD I, addr", 0xA123, LoadIndex{Address: 0x123}},
		{"JP V0, addr", 0xB300, JumpOffset{Address: 0x300}},
		{"RND Vx, byte", 0xC30F, Random{X: 3, Mask: 0x0F}},
		{"DRW Vx, Vy, nibble", 0xD125, Draw{X: 1, Y: 2, Height: 5}},
		{"SKP Vx", 0xE59E, SkipKeyPressed{X: 5}},
		{"SKNP Vx", 0xE5A1, SkipKeyNotPressed{X: 5}},
		{"LD Vx, DT", 0xF207, LoadDelayTimer{X: 2}},
		{"LD Vx, K", 0xF20A, WaitKey{X: 2}},
		{"LD DT, Vx", 0xF215, SetDelayTimer{X: 2}},
		{"LD ST, Vx", 0xF218, SetSoundTimer{X: 2}},
		{"ADD I, Vx", 0xF21E, AddIndex{X: 2}},
		{"LD F, Vx", 0xF229, LoadFont{X: 2}},
		{"LD B, Vx", 0xF233, StoreBCD{X: 2}},
		{"LD [I], Vx", 0xF255, StoreRegisters{X: 2}},
		{"LD Vx, [I]", 0xF265, LoadRegisters{X: 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ins, err := Decode(tt.opcode)
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, ins)
			assert.Equal(t, tt.opcode, ins.Encode())
		})
	}
}

func TestDecodeUnknownOpcode(t *testing.T) {
	opcodes := []uint16{
		0x5121, 0x512F, // SE Vx, Vy with non zero low nibble
		0x9AB1, 0x9ABF, // SNE Vx, Vy with non zero low nibble
		0x8128, 0x8129, 0x812A, 0x812B, 0x812C, 0x812D, 0x812F,
		0xE000, 0xE19F, 0xE1A2, 0xEFFF,
		0xF000, 0xF108, 0xF130, 0xF166, 0xFFFF,
	}

	for _, opcode := range opcodes {
		ins, err := Decode(opcode)
		assert.Nil(t, ins)
		assert.True(t, errors.Is(err, ErrUnknownOpcode), "opcode %04X", opcode)
	}
}

// TestDecodeTotal checks that every 16-bit word either decodes to an
// instruction that encodes back to the same word, or reports an unknown opcode.
func TestDecodeTotal(t *testing.T) {
	var valid int
	for word := range 0x10000 {
		opcode := uint16(word)
		ins, err := Decode(opcode)
		if err != nil {
			assert.True(t, errors.Is(err, ErrUnknownOpcode), "opcode %04X", opcode)
			continue
		}
		valid++
		if ins.Encode() != opcode {
			t.Fatalf("opcode %04X encodes back to %04X", opcode, ins.Encode())
		}
	}
	assert.True(t, valid > 0xC000)
}

func TestDecodeOperandPositions(t *testing.T) {
	for word := range 0x1000 {
		nnn := uint16(word)
		x := RegisterIndex(nnn >> 8)
		kk := byte(nnn)

		ins, err := Decode(0x1000 | nnn)
		assert.NoError(t, err)
		assert.Equal(t, Instruction(Jump{Address: nnn}), ins)

		ins, err = Decode(0x2000 | nnn)
		assert.NoError(t, err)
		assert.Equal(t, Instruction(Call{Address: nnn}), ins)

		ins, err = Decode(0x6000 | nnn)
		assert.NoError(t, err)
		assert.Equal(t, Instruction(Load{X: x, Value: kk}), ins)

		ins, err = Decode(0x7000 | nnn)
		assert.NoError(t, err)
		assert.Equal(t, Instruction(Add{X: x, Value: kk}), ins)

		ins, err = Decode(0xA000 | nnn)
		assert.NoError(t, err)
		assert.Equal(t, Instruction(LoadIndex{Address: nnn}), ins)
	}
}
