package chip8

// Instruction is a decoded CHIP-8 instruction. The set of implementations is
// closed, every opcode has its own type carrying its typed operands.
//
//sumtype:decl
type Instruction interface {
	// Encode returns the 16-bit opcode of the instruction.
	Encode() uint16

	sealed()
}

// Clear clears the display. 00E0 - CLS
type Clear struct{}

// Return returns from a subroutine. 00EE - RET
type Return struct{}

// Sys calls a machine code routine of the original host computer.
// It is ignored by the interpreter. 0nnn - SYS addr
type Sys struct{ Address uint16 }

// Jump jumps to an address. 1nnn - JP addr
type Jump struct{ Address uint16 }

// Call calls a subroutine. 2nnn - CALL addr
type Call struct{ Address uint16 }

// SkipEqual skips the next instruction if Vx == kk. 3xkk - SE Vx, byte
type SkipEqual struct {
	X     RegisterIndex
	Value byte
}

// SkipNotEqual skips the next instruction if Vx != kk. 4xkk - SNE Vx, byte
type SkipNotEqual struct {
	X     RegisterIndex
	Value byte
}

// SkipEqualRegister skips the next instruction if Vx == Vy. 5xy0 - SE Vx, Vy
type SkipEqualRegister struct{ X, Y RegisterIndex }

// Load sets Vx = kk. 6xkk - LD Vx, byte
type Load struct {
	X     RegisterIndex
	Value byte
}

// Add sets Vx = Vx + kk without touching VF. 7xkk - ADD Vx, byte
type Add struct {
	X     RegisterIndex
	Value byte
}

// LoadRegister sets Vx = Vy. 8xy0 - LD Vx, Vy
type LoadRegister struct{ X, Y RegisterIndex }

// Or sets Vx = Vx | Vy. 8xy1 - OR Vx, Vy
type Or struct{ X, Y RegisterIndex }

// And sets Vx = Vx & Vy. 8xy2 - AND Vx, Vy
type And struct{ X, Y RegisterIndex }

// Xor sets Vx = Vx ^ Vy. 8xy3 - XOR Vx, Vy
type Xor struct{ X, Y RegisterIndex }

// AddRegister sets Vx = Vx + Vy, VF = carry. 8xy4 - ADD Vx, Vy
type AddRegister struct{ X, Y RegisterIndex }

// Sub sets Vx = Vx - Vy, VF = not borrow. 8xy5 - SUB Vx, Vy
type Sub struct{ X, Y RegisterIndex }

// ShiftRight sets Vx = Vx >> 1, VF = shifted out bit. 8xy6 - SHR Vx {, Vy}
type ShiftRight struct{ X, Y RegisterIndex }

// SubN sets Vx = Vy - Vx, VF = not borrow. 8xy7 - SUBN Vx, Vy
type SubN struct{ X, Y RegisterIndex }

// ShiftLeft sets Vx = Vx << 1, VF = shifted out bit. 8xyE - SHL Vx {, Vy}
type ShiftLeft struct{ X, Y RegisterIndex }

// SkipNotEqualRegister skips the next instruction if Vx != Vy. 9xy0 - SNE Vx, Vy
type SkipNotEqualRegister struct{ X, Y RegisterIndex }

// LoadIndex sets I = nnn. Annn - LD I, addr
type LoadIndex struct{ Address uint16 }

// JumpOffset jumps to nnn + V0. Bnnn - JP V0, addr
type JumpOffset struct{ Address uint16 }

// Random sets Vx = random byte & kk. Cxkk - RND Vx, byte
type Random struct {
	X    RegisterIndex
	Mask byte
}

// Draw draws an n rows high sprite from memory at I to (Vx, Vy),
// VF = collision. Dxyn - DRW Vx, Vy, nibble
type Draw struct {
	X, Y   RegisterIndex
	Height Nibble
}

// SkipKeyPressed skips the next instruction if the key in Vx is pressed. Ex9E - SKP Vx
type SkipKeyPressed struct{ X RegisterIndex }

// SkipKeyNotPressed skips the next instruction if the key in Vx is not pressed. ExA1 - SKNP Vx
type SkipKeyNotPressed struct{ X RegisterIndex }

// LoadDelayTimer sets Vx = delay timer. Fx07 - LD Vx, DT
type LoadDelayTimer struct{ X RegisterIndex }

// WaitKey waits for a key press and stores the key in Vx. Fx0A - LD Vx, K
type WaitKey struct{ X RegisterIndex }

// SetDelayTimer sets delay timer = Vx. Fx15 - LD DT, Vx
type SetDelayTimer struct{ X RegisterIndex }

// SetSoundTimer sets sound timer = Vx. Fx18 - LD ST, Vx
type SetSoundTimer struct{ X RegisterIndex }

// AddIndex sets I = I + Vx. Fx1E - ADD I, Vx
type AddIndex struct{ X RegisterIndex }

// LoadFont sets I to the font glyph of the digit in Vx. Fx29 - LD F, Vx
type LoadFont struct{ X RegisterIndex }

// StoreBCD stores the decimal digits of Vx at I, I+1 and I+2. Fx33 - LD B, Vx
type StoreBCD struct{ X RegisterIndex }

// StoreRegisters stores V0 to Vx inclusive at I. Fx55 - LD [I], Vx
type StoreRegisters struct{ X RegisterIndex }

// LoadRegisters loads V0 to Vx inclusive from I. Fx65 - LD Vx, [I]
type LoadRegisters struct{ X RegisterIndex }

func (Clear) Encode() uint16                  { return 0x00E0 }
func (Return) Encode() uint16                 { return 0x00EE }
func (i Sys) Encode() uint16                  { return i.Address & 0x0FFF }
func (i Jump) Encode() uint16                 { return 0x1000 | i.Address&0x0FFF }
func (i Call) Encode() uint16                 { return 0x2000 | i.Address&0x0FFF }
func (i SkipEqual) Encode() uint16            { return encodeXKK(0x3000, i.X, i.Value) }
func (i SkipNotEqual) Encode() uint16         { return encodeXKK(0x4000, i.X, i.Value) }
func (i SkipEqualRegister) Encode() uint16    { return encodeXY(0x5000, i.X, i.Y) }
func (i Load) Encode() uint16                 { return encodeXKK(0x6000, i.X, i.Value) }
func (i Add) Encode() uint16                  { return encodeXKK(0x7000, i.X, i.Value) }
func (i LoadRegister) Encode() uint16         { return encodeXY(0x8000, i.X, i.Y) }
func (i Or) Encode() uint16                   { return encodeXY(0x8001, i.X, i.Y) }
func (i And) Encode() uint16                  { return encodeXY(0x8002, i.X, i.Y) }
func (i Xor) Encode() uint16                  { return encodeXY(0x8003, i.X, i.Y) }
func (i AddRegister) Encode() uint16          { return encodeXY(0x8004, i.X, i.Y) }
func (i Sub) Encode() uint16                  { return encodeXY(0x8005, i.X, i.Y) }
func (i ShiftRight) Encode() uint16           { return encodeXY(0x8006, i.X, i.Y) }
func (i SubN) Encode() uint16                 { return encodeXY(0x8007, i.X, i.Y) }
func (i ShiftLeft) Encode() uint16            { return encodeXY(0x800E, i.X, i.Y) }
func (i SkipNotEqualRegister) Encode() uint16 { return encodeXY(0x9000, i.X, i.Y) }
func (i LoadIndex) Encode() uint16            { return 0xA000 | i.Address&0x0FFF }
func (i JumpOffset) Encode() uint16           { return 0xB000 | i.Address&0x0FFF }
func (i Random) Encode() uint16               { return encodeXKK(0xC000, i.X, i.Mask) }
func (i Draw) Encode() uint16                 { return encodeXY(0xD000, i.X, i.Y) | uint16(i.Height&0xF) }
func (i SkipKeyPressed) Encode() uint16       { return encodeX(0xE09E, i.X) }
func (i SkipKeyNotPressed) Encode() uint16    { return encodeX(0xE0A1, i.X) }
func (i LoadDelayTimer) Encode() uint16       { return encodeX(0xF007, i.X) }
func (i WaitKey) Encode() uint16              { return encodeX(0xF00A, i.X) }
func (i SetDelayTimer) Encode() uint16        { return encodeX(0xF015, i.X) }
func (i SetSoundTimer) Encode() uint16        { return encodeX(0xF018, i.X) }
func (i AddIndex) Encode() uint16             { return encodeX(0xF01E, i.X) }
func (i LoadFont) Encode() uint16             { return encodeX(0xF029, i.X) }
func (i StoreBCD) Encode() uint16             { return encodeX(0xF033, i.X) }
func (i StoreRegisters) Encode() uint16       { return encodeX(0xF055, i.X) }
func (i LoadRegisters) Encode() uint16        { return encodeX(0xF065, i.X) }

func (Clear) sealed()                {}
func (Return) sealed()               {}
func (Sys) sealed()                  {}
func (Jump) sealed()                 {}
func (Call) sealed()                 {}
func (SkipEqual) sealed()            {}
func (SkipNotEqual) sealed()         {}
func (SkipEqualRegister) sealed()    {}
func (Load) sealed()                 {}
func (Add) sealed()                  {}
func (LoadRegister) sealed()         {}
func (Or) sealed()                   {}
func (And) sealed()                  {}
func (Xor) sealed()                  {}
func (AddRegister) sealed()          {}
func (Sub) sealed()                  {}
func (ShiftRight) sealed()           {}
func (SubN) sealed()                 {}
func (ShiftLeft) sealed()            {}
func (SkipNotEqualRegister) sealed() {}
func (LoadIndex) sealed()            {}
func (JumpOffset) sealed()           {}
func (Random) sealed()               {}
func (Draw) sealed()                 {}
func (SkipKeyPressed) sealed()       {}
func (SkipKeyNotPressed) sealed()    {}
func (LoadDelayTimer) sealed()       {}
func (WaitKey) sealed()              {}
func (SetDelayTimer) sealed()        {}
func (SetSoundTimer) sealed()        {}
func (AddIndex) sealed()             {}
func (LoadFont) sealed()             {}
func (StoreBCD) sealed()             {}
func (StoreRegisters) sealed()       {}
func (LoadRegisters) sealed()        {}

func encodeX(base uint16, x RegisterIndex) uint16 {
	return base | uint16(x&0xF)<<8
}

func encodeXY(base uint16, x, y RegisterIndex) uint16 {
	return base | uint16(x&0xF)<<8 | uint16(y&0xF)<<4
}

func encodeXKK(base uint16, x RegisterIndex, kk byte) uint16 {
	return base | uint16(x&0xF)<<8 | uint16(kk)
}
