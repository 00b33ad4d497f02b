package chip8

import (
	"fmt"
	"math/rand/v2"
)

// StackDepth is the maximum number of nested subroutine calls.
const StackDepth = 16

// State is the execution state of the interpreter.
type State int

const (
	// Running fetches and executes one instruction per step.
	Running State = iota
	// WaitingForKey polls the keypad on every step until a key is pressed.
	WaitingForKey
	// WaitingForKeyRelease polls the keypad until the pressed key is released.
	// Only entered with the WaitForKeyRelease quirk.
	WaitingForKeyRelease
)

func (s State) String() string {
	switch s {
	case Running:
		return "running"
	case WaitingForKey:
		return "waiting for key"
	case WaitingForKeyRelease:
		return "waiting for key release"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Quirks selects behavior variants of historical CHIP-8 interpreters.
// The zero value selects the default behavior.
type Quirks struct {
	// ShiftUsesVY shifts Vy into Vx for 8xy6 and 8xyE instead of shifting Vx in place.
	ShiftUsesVY bool
	// LoadStoreIncrementsIndex leaves I = I + x + 1 after Fx55 and Fx65.
	LoadStoreIncrementsIndex bool
	// WaitForKeyRelease completes Fx0A only once the pressed key is released again.
	WaitForKeyRelease bool
}

// RandomSource provides the random numbers for the Cxkk instruction.
// *rand.Rand of math/rand/v2 implements it.
type RandomSource interface {
	Uint32() uint32
}

// Config contains the interpreter options.
type Config struct {
	Quirks Quirks
	Random RandomSource // defaults to a randomly seeded PCG source
}

// Interpreter is the CHIP-8 machine core. It owns all machine state.
type Interpreter struct {
	memory    *Memory
	registers RegisterFile
	display   Display
	keypad    Keypad

	index uint16 // index register I
	pc    uint16 // program counter

	stack [StackDepth]uint16
	sp    uint8 // number of used stack entries

	delayTimer byte
	soundTimer byte

	state       State
	waitTarget  RegisterIndex // destination register of a pending key wait
	waitingFor  byte          // pressed key of a pending key release wait
	quirks      Quirks
	random      RandomSource
	instruction uint16 // opcode of the last executed instruction
}

// New returns a new interpreter with the font loaded and the program counter
// pointing to ProgramStart.
func New(cfg Config) *Interpreter {
	random := cfg.Random
	if random == nil {
		random = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	return &Interpreter{
		memory: NewMemory(),
		pc:     ProgramStart,
		state:  Running,
		quirks: cfg.Quirks,
		random: random,
	}
}

// LoadROM loads a ROM image into memory at ProgramStart.
func (c *Interpreter) LoadROM(rom []byte) error {
	if err := c.memory.LoadROM(rom); err != nil {
		return fmt.Errorf("loading rom: %w", err)
	}
	return nil
}

// Step executes a single instruction, or polls the keypad if the interpreter
// is waiting for a key. It returns the state after the step.
// On error the program counter is left pointing at the failing instruction
// and the machine state is unchanged.
func (c *Interpreter) Step() (State, error) {
	switch c.state {
	case WaitingForKey:
		c.pollKeyPress()
		return c.state, nil
	case WaitingForKeyRelease:
		c.pollKeyRelease()
		return c.state, nil
	}

	address := c.pc
	opcode, err := c.fetch(address)
	if err != nil {
		return c.state, err
	}
	c.pc += 2
	c.instruction = opcode

	ins, err := Decode(opcode)
	if err != nil {
		c.pc = address
		return c.state, fmt.Errorf("decoding instruction at $%04X: %w", address, err)
	}

	if err := c.execute(ins); err != nil {
		c.pc = address
		return c.state, fmt.Errorf("executing $%04X at $%04X: %w", opcode, address, err)
	}
	return c.state, nil
}

// TickTimers decrements the delay and sound timers if they are not zero.
// It has to be called at 60Hz. The returned value is true exactly when the
// sound timer reached zero with this tick and the sound should stop.
func (c *Interpreter) TickTimers() bool {
	if c.delayTimer > 0 {
		c.delayTimer--
	}
	if c.soundTimer > 0 {
		c.soundTimer--
		return c.soundTimer == 0
	}
	return false
}

// PeekOpcode returns the opcode at the program counter without executing it.
func (c *Interpreter) PeekOpcode() (uint16, bool) {
	opcode, err := c.fetch(c.pc)
	return opcode, err == nil
}

// PC returns the program counter.
func (c *Interpreter) PC() uint16 { return c.pc }

// Index returns the index register I.
func (c *Interpreter) Index() uint16 { return c.index }

// Register returns the value of a register.
func (c *Interpreter) Register(r RegisterIndex) byte { return c.registers.Get(r) }

// Registers returns a copy of all register values.
func (c *Interpreter) Registers() [NumRegisters]byte { return c.registers.Values() }

// DelayTimer returns the delay timer value.
func (c *Interpreter) DelayTimer() byte { return c.delayTimer }

// SoundTimer returns the sound timer value.
func (c *Interpreter) SoundTimer() byte { return c.soundTimer }

// SoundActive returns whether a tone should currently be played.
func (c *Interpreter) SoundActive() bool { return c.soundTimer > 0 }

// StackDepth returns the number of return addresses on the stack.
func (c *Interpreter) StackDepth() int { return int(c.sp) }

// State returns the execution state.
func (c *Interpreter) State() State { return c.state }

// LastOpcode returns the opcode of the last fetched instruction.
func (c *Interpreter) LastOpcode() uint16 { return c.instruction }

// Display returns the display for reading the framebuffer between steps.
func (c *Interpreter) Display() *Display { return &c.display }

// Keypad returns the keypad for the host to update key states between steps.
func (c *Interpreter) Keypad() *Keypad { return &c.keypad }

// Memory returns the machine memory.
func (c *Interpreter) Memory() *Memory { return c.memory }

func (c *Interpreter) fetch(address uint16) (uint16, error) {
	if err := checkRange(address, 2); err != nil {
		return 0, fmt.Errorf("fetching instruction: %w", err)
	}
	return c.memory.ReadInstruction(address), nil
}

// pollKeyPress completes a pending key wait if any key is pressed.
// The lowest pressed key wins.
func (c *Interpreter) pollKeyPress() {
	key, ok := c.keypad.FirstPressed()
	if !ok {
		return
	}

	if c.quirks.WaitForKeyRelease {
		c.waitingFor = key
		c.state = WaitingForKeyRelease
		return
	}

	c.registers.Set(c.waitTarget, key)
	c.state = Running
}

func (c *Interpreter) pollKeyRelease() {
	if c.keypad.IsPressed(c.waitingFor) {
		return
	}
	c.registers.Set(c.waitTarget, c.waitingFor)
	c.state = Running
}
