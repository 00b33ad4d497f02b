package chip8

import "errors"

var (
	// ErrUnknownOpcode is returned when a word does not decode to any instruction.
	ErrUnknownOpcode = errors.New("unknown opcode")
	// ErrROMTooLarge is returned when a ROM does not fit into memory after the program start.
	ErrROMTooLarge = errors.New("rom too large")
	// ErrStackOverflow is returned when a call exceeds the maximum stack depth.
	ErrStackOverflow = errors.New("stack overflow")
	// ErrStackUnderflow is returned on a return without a matching call.
	ErrStackUnderflow = errors.New("stack underflow")
	// ErrAddressOutOfRange is returned when an instruction accesses memory outside of the address space.
	ErrAddressOutOfRange = errors.New("address out of range")
	// ErrInvalidRegister is returned for a register index outside of 0-15.
	ErrInvalidRegister = errors.New("invalid register index")
	// ErrInvalidNibble is returned for a nibble value outside of 0-15.
	ErrInvalidNibble = errors.New("invalid nibble")
)
