package disasm

import (
	"fmt"

	"github.com/retroenv/retrochip8/internal/chip8"
)

// Format returns the assembly representation of a single opcode, for example
// "LD VA, $12". Words that do not decode are returned as a .word directive.
func Format(opcode uint16) string {
	ins, err := chip8.Decode(opcode)
	if err != nil {
		return fmt.Sprintf(".word $%04X", opcode)
	}
	return formatInstruction(opcode, ins, addressParam)
}

// addressParam formats an address operand without label resolution.
func addressParam(address uint16) string {
	return fmt.Sprintf("$%03X", address)
}

// formatInstruction formats an instruction with its parameters. The name is
// taken from the retrogolib opcode table when it knows the opcode.
func formatInstruction(opcode uint16, ins chip8.Instruction, address func(uint16) string) string {
	name, params := formatParams(ins, address)
	if def := lookup(opcode); !def.IsNil() {
		name = def.Name()
	}
	if params == "" {
		return name
	}
	return fmt.Sprintf("%s %s", name, params)
}

// formatParams returns the fallback mnemonic and the formatted parameters.
//
//nolint:funlen,cyclop // one case per opcode
func formatParams(ins chip8.Instruction, address func(uint16) string) (string, string) {
	switch i := ins.(type) {
	case chip8.Clear:
		return "CLS", ""
	case chip8.Return:
		return "RET", ""
	case chip8.Sys:
		return "SYS", address(i.Address)
	case chip8.Jump:
		return "JP", address(i.Address)
	case chip8.Call:
		return "CALL", address(i.Address)
	case chip8.JumpOffset:
		return "JP", "V0, " + address(i.Address)
	case chip8.SkipEqual:
		return "SE", formatRegisterByte(i.X, i.Value)
	case chip8.SkipNotEqual:
		return "SNE", formatRegisterByte(i.X, i.Value)
	case chip8.SkipEqualRegister:
		return "SE", formatRegisters(i.X, i.Y)
	case chip8.SkipNotEqualRegister:
		return "SNE", formatRegisters(i.X, i.Y)
	case chip8.Load:
		return "LD", formatRegisterByte(i.X, i.Value)
	case chip8.Add:
		return "ADD", formatRegisterByte(i.X, i.Value)
	case chip8.LoadRegister:
		return "LD", formatRegisters(i.X, i.Y)
	case chip8.Or:
		return "OR", formatRegisters(i.X, i.Y)
	case chip8.And:
		return "AND", formatRegisters(i.X, i.Y)
	case chip8.Xor:
		return "XOR", formatRegisters(i.X, i.Y)
	case chip8.AddRegister:
		return "ADD", formatRegisters(i.X, i.Y)
	case chip8.Sub:
		return "SUB", formatRegisters(i.X, i.Y)
	case chip8.SubN:
		return "SUBN", formatRegisters(i.X, i.Y)
	case chip8.ShiftRight:
		return "SHR", i.X.String()
	case chip8.ShiftLeft:
		return "SHL", i.X.String()
	case chip8.LoadIndex:
		return "LD", "I, " + address(i.Address)
	case chip8.Random:
		return "RND", formatRegisterByte(i.X, i.Mask)
	case chip8.Draw:
		return "DRW", fmt.Sprintf("%s, %s, $%X", i.X, i.Y, uint8(i.Height))
	case chip8.SkipKeyPressed:
		return "SKP", i.X.String()
	case chip8.SkipKeyNotPressed:
		return "SKNP", i.X.String()
	case chip8.LoadDelayTimer:
		return "LD", i.X.String() + ", DT"
	case chip8.WaitKey:
		return "LD", i.X.String() + ", K"
	case chip8.SetDelayTimer:
		return "LD", "DT, " + i.X.String()
	case chip8.SetSoundTimer:
		return "LD", "ST, " + i.X.String()
	case chip8.AddIndex:
		return "ADD", "I, " + i.X.String()
	case chip8.LoadFont:
		return "LD", "F, " + i.X.String()
	case chip8.StoreBCD:
		return "LD", "B, " + i.X.String()
	case chip8.StoreRegisters:
		return "LD", "[I], " + i.X.String()
	case chip8.LoadRegisters:
		return "LD", i.X.String() + ", [I]"
	default:
		return fmt.Sprintf(".word $%04X", ins.Encode()), ""
	}
}

// formatRegisterByte formats the Vx, byte parameters.
func formatRegisterByte(x chip8.RegisterIndex, value byte) string {
	return fmt.Sprintf("%s, $%02X", x, value)
}

// formatRegisters formats the Vx, Vy parameters.
func formatRegisters(x, y chip8.RegisterIndex) string {
	return fmt.Sprintf("%s, %s", x, y)
}
