package disasm

import (
	"strings"

	"github.com/retroenv/retrogolib/arch/cpu/chip8"
)

// instruction wraps the retrogolib CHIP-8 instruction definition that matches
// an opcode and answers the control flow questions of the tracer.
type instruction struct {
	ins *chip8.Instruction
}

// lookup finds the instruction definition of an opcode in the retrogolib
// opcode table, indexed by the first nibble and matched by mask and value.
func lookup(opcode uint16) instruction {
	firstNibble := (opcode & 0xF000) >> 12
	for _, op := range chip8.Opcodes[int(firstNibble)] {
		if op.Info.Mask&opcode == op.Info.Value {
			return instruction{ins: op.Instruction}
		}
	}
	return instruction{}
}

// IsNil returns true if no instruction definition matched.
func (i instruction) IsNil() bool {
	return i.ins == nil
}

// Name returns the upper case instruction name.
func (i instruction) Name() string {
	if i.ins == nil {
		return ""
	}
	return strings.ToUpper(i.ins.Name)
}

// IsCall returns true if the instruction is a call instruction.
func (i instruction) IsCall() bool {
	return i.ins == chip8.Call
}

// IsJump returns true if the instruction is a jump instruction.
func (i instruction) IsJump() bool {
	return i.ins == chip8.Jp
}

// IsReturn returns true if the instruction is a return instruction.
func (i instruction) IsReturn() bool {
	return i.ins == chip8.Ret
}

// IsSkip returns true if the instruction is a conditional skip instruction.
func (i instruction) IsSkip() bool {
	if i.ins == nil {
		return false
	}
	return chip8.SkipInstructions.Contains(i.ins.Name)
}

// IsDataReference returns true if the instruction loads an address into I.
func (i instruction) IsDataReference(opcode uint16) bool {
	return i.ins == chip8.Ld && opcode&0xF000 == 0xA000
}
