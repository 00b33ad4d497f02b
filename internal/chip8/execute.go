package chip8

import "fmt"

// execute applies the semantics of a decoded instruction. The program counter
// already points to the following instruction.
//
//nolint:funlen,cyclop // one case per opcode
func (c *Interpreter) execute(ins Instruction) error {
	switch i := ins.(type) {
	case Clear:
		c.display.Clear()
	case Return:
		return c.ret()
	case Sys:
		// machine code routines of the original host are not supported
	case Jump:
		c.pc = i.Address
	case Call:
		return c.call(i.Address)
	case JumpOffset:
		c.pc = i.Address + uint16(c.registers.Get(0))

	case SkipEqual:
		c.skipIf(c.registers.Get(i.X) == i.Value)
	case SkipNotEqual:
		c.skipIf(c.registers.Get(i.X) != i.Value)
	case SkipEqualRegister:
		c.skipIf(c.registers.Get(i.X) == c.registers.Get(i.Y))
	case SkipNotEqualRegister:
		c.skipIf(c.registers.Get(i.X) != c.registers.Get(i.Y))
	case SkipKeyPressed:
		c.skipIf(c.keypad.IsPressed(c.registers.Get(i.X)))
	case SkipKeyNotPressed:
		c.skipIf(!c.keypad.IsPressed(c.registers.Get(i.X)))

	case Load:
		c.registers.Set(i.X, i.Value)
	case Add:
		c.registers.Set(i.X, c.registers.Get(i.X)+i.Value)
	case LoadRegister:
		c.registers.Set(i.X, c.registers.Get(i.Y))
	case Or:
		c.registers.Set(i.X, c.registers.Get(i.X)|c.registers.Get(i.Y))
	case And:
		c.registers.Set(i.X, c.registers.Get(i.X)&c.registers.Get(i.Y))
	case Xor:
		c.registers.Set(i.X, c.registers.Get(i.X)^c.registers.Get(i.Y))
	case AddRegister:
		c.addRegister(i.X, i.Y)
	case Sub:
		c.subtract(i.X, i.X, i.Y)
	case SubN:
		c.subtract(i.X, i.Y, i.X)
	case ShiftRight:
		value := c.shiftSource(i.X, i.Y)
		c.registers.Set(i.X, value>>1)
		c.registers.Set(VF, value&0x01)
	case ShiftLeft:
		value := c.shiftSource(i.X, i.Y)
		c.registers.Set(i.X, value<<1)
		c.registers.Set(VF, value>>7)
	case Random:
		c.registers.Set(i.X, byte(c.random.Uint32())&i.Mask)

	case LoadIndex:
		c.index = i.Address
	case AddIndex:
		c.index += uint16(c.registers.Get(i.X))
	case LoadFont:
		c.index = FontStart + uint16(c.registers.Get(i.X))*FontGlyphSize
	case Draw:
		return c.draw(i)
	case StoreBCD:
		return c.storeBCD(i.X)
	case StoreRegisters:
		return c.storeRegisters(i.X)
	case LoadRegisters:
		return c.loadRegisters(i.X)

	case LoadDelayTimer:
		c.registers.Set(i.X, c.delayTimer)
	case SetDelayTimer:
		c.delayTimer = c.registers.Get(i.X)
	case SetSoundTimer:
		c.soundTimer = c.registers.Get(i.X)
	case WaitKey:
		c.waitTarget = i.X
		c.state = WaitingForKey

	default:
		return fmt.Errorf("%w: unsupported instruction type %T", ErrUnknownOpcode, ins)
	}
	return nil
}

func (c *Interpreter) skipIf(condition bool) {
	if condition {
		c.pc += 2
	}
}

func (c *Interpreter) call(address uint16) error {
	if int(c.sp) >= StackDepth {
		return fmt.Errorf("%w: calling $%03X with %d nested calls", ErrStackOverflow, address, c.sp)
	}
	c.stack[c.sp] = c.pc
	c.sp++
	c.pc = address
	return nil
}

func (c *Interpreter) ret() error {
	if c.sp == 0 {
		return ErrStackUnderflow
	}
	c.sp--
	c.pc = c.stack[c.sp]
	return nil
}

// addRegister sets Vx = Vx + Vy and VF to 1 on unsigned overflow.
// The flag is written last, so it wins if x is VF.
func (c *Interpreter) addRegister(x, y RegisterIndex) {
	sum := uint16(c.registers.Get(x)) + uint16(c.registers.Get(y))
	c.registers.Set(x, byte(sum))
	c.registers.Set(VF, byte(sum>>8))
}

// subtract sets dst = a - b and VF to 1 if no borrow occurred.
func (c *Interpreter) subtract(dst, a, b RegisterIndex) {
	va := c.registers.Get(a)
	vb := c.registers.Get(b)
	c.registers.Set(dst, va-vb)
	if va >= vb {
		c.registers.Set(VF, 1)
	} else {
		c.registers.Set(VF, 0)
	}
}

func (c *Interpreter) shiftSource(x, y RegisterIndex) byte {
	if c.quirks.ShiftUsesVY {
		return c.registers.Get(y)
	}
	return c.registers.Get(x)
}

// draw XORs an 8 pixel wide sprite read from I onto the display.
// VF is cleared first and set once if any pixel was turned off.
func (c *Interpreter) draw(i Draw) error {
	height := int(i.Height)
	if err := checkRange(c.index, height); err != nil {
		return fmt.Errorf("reading sprite: %w", err)
	}

	x := int(c.registers.Get(i.X))
	y := int(c.registers.Get(i.Y))
	c.registers.Set(VF, 0)

	collision := false
	for row := range height {
		sprite := c.memory.ReadByte(c.index + uint16(row))
		for col := range 8 {
			if sprite&(0x80>>col) == 0 {
				continue
			}
			if c.display.TogglePixel(x+col, y+row) {
				collision = true
			}
		}
	}

	if collision {
		c.registers.Set(VF, 1)
	}
	return nil
}

// storeBCD stores the hundreds, tens and units of Vx at I, I+1 and I+2.
func (c *Interpreter) storeBCD(x RegisterIndex) error {
	if err := checkRange(c.index, 3); err != nil {
		return fmt.Errorf("storing bcd: %w", err)
	}
	value := c.registers.Get(x)
	c.memory.WriteByte(c.index, value/100)
	c.memory.WriteByte(c.index+1, value/10%10)
	c.memory.WriteByte(c.index+2, value%10)
	return nil
}

// storeRegisters stores V0 to Vx inclusive to memory starting at I.
func (c *Interpreter) storeRegisters(x RegisterIndex) error {
	count := int(x) + 1
	if err := checkRange(c.index, count); err != nil {
		return fmt.Errorf("storing registers: %w", err)
	}
	for r := range count {
		c.memory.WriteByte(c.index+uint16(r), c.registers.Get(RegisterIndex(r)))
	}
	if c.quirks.LoadStoreIncrementsIndex {
		c.index += uint16(count)
	}
	return nil
}

// loadRegisters loads V0 to Vx inclusive from memory starting at I.
func (c *Interpreter) loadRegisters(x RegisterIndex) error {
	count := int(x) + 1
	if err := checkRange(c.index, count); err != nil {
		return fmt.Errorf("loading registers: %w", err)
	}
	for r := range count {
		c.registers.Set(RegisterIndex(r), c.memory.ReadByte(c.index+uint16(r)))
	}
	if c.quirks.LoadStoreIncrementsIndex {
		c.index += uint16(count)
	}
	return nil
}
