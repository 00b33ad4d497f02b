package chip8

import "fmt"

// CHIP-8 memory layout constants.
const (
	// MemorySize is the size of the addressable memory in bytes.
	MemorySize = 4096

	// ProgramStart is the address where ROMs are loaded and execution begins.
	ProgramStart = 0x200

	// MaxROMSize is the largest ROM that fits between ProgramStart and the end of memory.
	MaxROMSize = MemorySize - ProgramStart

	// FontStart is the address of the built-in hexadecimal font.
	FontStart = 0x050

	// FontGlyphSize is the number of bytes of a single font glyph.
	FontGlyphSize = 5
)

// fontSet contains the glyphs for the hexadecimal digits 0-F, 4 pixels wide and 5 rows high.
var fontSet = [16 * FontGlyphSize]byte{
	0xF0, 0x90, 0x90, 0x90, 0xF0, // 0
	0x20, 0x60, 0x20, 0x20, 0x70, // 1
	0xF0, 0x10, 0xF0, 0x80, 0xF0, // 2
	0xF0, 0x10, 0xF0, 0x10, 0xF0, // 3
	0x90, 0x90, 0xF0, 0x10, 0x10, // 4
	0xF0, 0x80, 0xF0, 0x10, 0xF0, // 5
	0xF0, 0x80, 0xF0, 0x90, 0xF0, // 6
	0xF0, 0x10, 0x20, 0x40, 0x40, // 7
	0xF0, 0x90, 0xF0, 0x90, 0xF0, // 8
	0xF0, 0x90, 0xF0, 0x10, 0xF0, // 9
	0xF0, 0x90, 0xF0, 0x90, 0x90, // A
	0xE0, 0x90, 0xE0, 0x90, 0xE0, // B
	0xF0, 0x80, 0x80, 0x80, 0xF0, // C
	0xE0, 0x90, 0x90, 0x90, 0xE0, // D
	0xF0, 0x80, 0xF0, 0x80, 0xF0, // E
	0xF0, 0x80, 0xF0, 0x80, 0x80, // F
}

// Memory is the flat 4KB address space of the machine.
// The font is installed at construction, the ROM is copied in by LoadROM.
type Memory struct {
	ram [MemorySize]byte
}

// NewMemory returns a memory with the font installed at FontStart.
func NewMemory() *Memory {
	m := &Memory{}
	copy(m.ram[FontStart:], fontSet[:])
	return m
}

// LoadROM copies the ROM image verbatim to ProgramStart.
// ROMs that do not fit are rejected, they are never truncated.
func (m *Memory) LoadROM(rom []byte) error {
	if len(rom) > MaxROMSize {
		return fmt.Errorf("%w: %d bytes exceed the available %d bytes", ErrROMTooLarge, len(rom), MaxROMSize)
	}
	copy(m.ram[ProgramStart:], rom)
	return nil
}

// ReadByte returns the byte at the given address. The caller has to ensure
// that the address is inside the address space.
func (m *Memory) ReadByte(address uint16) byte {
	return m.ram[address]
}

// ReadInstruction returns the big-endian opcode stored at address and address+1.
func (m *Memory) ReadInstruction(address uint16) uint16 {
	return uint16(m.ram[address])<<8 | uint16(m.ram[address+1])
}

// WriteByte stores a byte at the given address. The caller has to ensure
// that the address is inside the address space.
func (m *Memory) WriteByte(address uint16, value byte) {
	m.ram[address] = value
}

// checkRange returns an error if the n bytes starting at address are not
// all inside the address space.
func checkRange(address uint16, n int) error {
	if int(address)+n > MemorySize {
		return fmt.Errorf("%w: %d bytes at $%04X", ErrAddressOutOfRange, n, address)
	}
	return nil
}
