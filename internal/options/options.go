// Package options contains the program options.
package options

// Parameters contains file and address options.
type Parameters struct {
	ROM         string   // path of the ROM file to run
	Breakpoints []uint16 // addresses that pause execution
}

// Flags contains behavior options.
type Flags struct {
	Speed    int    // instructions per second
	Seed     uint64 // random seed, 0 uses a random seed
	Frames   int    // number of frames to run, 0 runs until quit
	Headless bool
	Disasm   bool
	Debug    bool
	Quiet    bool
	Version  bool
}

// Quirks contains the interpreter compatibility toggles.
type Quirks struct {
	ShiftUsesVY              bool
	LoadStoreIncrementsIndex bool
	WaitForKeyRelease        bool
}

// OutputFlags contains disassembly listing options.
type OutputFlags struct {
	NoHexComments bool
	NoOffsets     bool
}

// Program options of the emulator.
type Program struct {
	Parameters
	Flags
	Quirks
	OutputFlags
}

const (
	// DefaultSpeed is the default number of instructions executed per second.
	DefaultSpeed = 5400
	// DefaultHeadlessFrames is the number of frames a headless run executes
	// when no frame limit was given.
	DefaultHeadlessFrames = 60
)

// New returns program options with default values.
func New() Program {
	return Program{
		Flags: Flags{
			Speed: DefaultSpeed,
		},
	}
}
