package chip8

import "fmt"

// NumRegisters is the number of general-purpose registers.
const NumRegisters = 16

// VF is the register that instructions use as carry, borrow and collision flag.
const VF RegisterIndex = 0xF

// RegisterIndex references one of the registers V0-VF.
// Values are validated once on construction and never again on access.
type RegisterIndex uint8

// NewRegisterIndex returns a validated register index.
func NewRegisterIndex(value uint8) (RegisterIndex, error) {
	if value >= NumRegisters {
		return 0, fmt.Errorf("%w: %d", ErrInvalidRegister, value)
	}
	return RegisterIndex(value), nil
}

// String returns the assembler name of the register, for example VA.
func (r RegisterIndex) String() string {
	return fmt.Sprintf("V%X", uint8(r))
}

// Nibble is a validated 4-bit operand, used as sprite height by the draw instruction.
type Nibble uint8

// NewNibble returns a validated nibble.
func NewNibble(value uint8) (Nibble, error) {
	if value > 0xF {
		return 0, fmt.Errorf("%w: %d", ErrInvalidNibble, value)
	}
	return Nibble(value), nil
}

// RegisterFile contains the 16 general-purpose 8-bit registers.
type RegisterFile struct {
	v [NumRegisters]byte
}

// Get returns the value of a register.
func (f *RegisterFile) Get(r RegisterIndex) byte {
	return f.v[r]
}

// Set sets the value of a register.
func (f *RegisterFile) Set(r RegisterIndex, value byte) {
	f.v[r] = value
}

// Values returns a copy of all register values.
func (f *RegisterFile) Values() [NumRegisters]byte {
	return f.v
}
