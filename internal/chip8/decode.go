package chip8

import "fmt"

// Decode decodes a 16-bit opcode into an instruction. Decoding is total:
// every word either results in an instruction or in an error wrapping
// ErrUnknownOpcode.
func Decode(opcode uint16) (Instruction, error) {
	x := extractRegisterX(opcode)
	y := extractRegisterY(opcode)
	kk := byte(opcode & 0x00FF)
	nnn := opcode & 0x0FFF

	switch opcode & 0xF000 {
	case 0x0000:
		switch opcode {
		case 0x00E0:
			return Clear{}, nil
		case 0x00EE:
			return Return{}, nil
		}
		return Sys{Address: nnn}, nil

	case 0x1000:
		return Jump{Address: nnn}, nil

	case 0x2000:
		return Call{Address: nnn}, nil

	case 0x3000:
		return SkipEqual{X: x, Value: kk}, nil

	case 0x4000:
		return SkipNotEqual{X: x, Value: kk}, nil

	case 0x5000:
		if opcode&0x000F == 0 {
			return SkipEqualRegister{X: x, Y: y}, nil
		}

	case 0x6000:
		return Load{X: x, Value: kk}, nil

	case 0x7000:
		return Add{X: x, Value: kk}, nil

	case 0x8000:
		if ins := decodeArithmetic(opcode, x, y); ins != nil {
			return ins, nil
		}

	case 0x9000:
		if opcode&0x000F == 0 {
			return SkipNotEqualRegister{X: x, Y: y}, nil
		}

	case 0xA000:
		return LoadIndex{Address: nnn}, nil

	case 0xB000:
		return JumpOffset{Address: nnn}, nil

	case 0xC000:
		return Random{X: x, Mask: kk}, nil

	case 0xD000:
		return Draw{X: x, Y: y, Height: extractNibble(opcode)}, nil

	case 0xE000:
		switch kk {
		case 0x9E:
			return SkipKeyPressed{X: x}, nil
		case 0xA1:
			return SkipKeyNotPressed{X: x}, nil
		}

	case 0xF000:
		if ins := decodeMisc(kk, x); ins != nil {
			return ins, nil
		}
	}

	return nil, fmt.Errorf("%w: $%04X", ErrUnknownOpcode, opcode)
}

// decodeArithmetic decodes the 8xyN register operations selected by the low nibble.
func decodeArithmetic(opcode uint16, x, y RegisterIndex) Instruction {
	switch opcode & 0x000F {
	case 0x0:
		return LoadRegister{X: x, Y: y}
	case 0x1:
		return Or{X: x, Y: y}
	case 0x2:
		return And{X: x, Y: y}
	case 0x3:
		return Xor{X: x, Y: y}
	case 0x4:
		return AddRegister{X: x, Y: y}
	case 0x5:
		return Sub{X: x, Y: y}
	case 0x6:
		return ShiftRight{X: x, Y: y}
	case 0x7:
		return SubN{X: x, Y: y}
	case 0xE:
		return ShiftLeft{X: x, Y: y}
	default:
		return nil
	}
}

// decodeMisc decodes the FxKK timer, keypad and memory operations selected by the low byte.
func decodeMisc(kk byte, x RegisterIndex) Instruction {
	switch kk {
	case 0x07:
		return LoadDelayTimer{X: x}
	case 0x0A:
		return WaitKey{X: x}
	case 0x15:
		return SetDelayTimer{X: x}
	case 0x18:
		return SetSoundTimer{X: x}
	case 0x1E:
		return AddIndex{X: x}
	case 0x29:
		return LoadFont{X: x}
	case 0x33:
		return StoreBCD{X: x}
	case 0x55:
		return StoreRegisters{X: x}
	case 0x65:
		return LoadRegisters{X: x}
	default:
		return nil
	}
}

// extractRegisterX extracts the X register nibble from bits 8-11.
// A 4-bit field is always a valid register index.
func extractRegisterX(opcode uint16) RegisterIndex {
	return RegisterIndex((opcode & 0x0F00) >> 8)
}

// extractRegisterY extracts the Y register nibble from bits 4-7.
func extractRegisterY(opcode uint16) RegisterIndex {
	return RegisterIndex((opcode & 0x00F0) >> 4)
}

// extractNibble extracts the n operand from bits 0-3.
func extractNibble(opcode uint16) Nibble {
	return Nibble(opcode & 0x000F)
}
