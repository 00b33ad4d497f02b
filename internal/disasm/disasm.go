// Package disasm implements a tracing disassembler for CHIP-8 ROMs.
// It follows the execution flow from the program start to separate code from
// data and outputs an assembly listing.
package disasm

import (
	"context"
	"fmt"

	"github.com/retroenv/retrochip8/internal/chip8"
	"github.com/retroenv/retrogolib/log"
	"github.com/retroenv/retrogolib/set"
)

const (
	funcNaming  = "_func_%04x"
	labelNaming = "_label_%04x"
	dataNaming  = "_data_%04x"
	startLabel  = "Start"
)

// offsetType describes what a ROM byte was classified as.
type offsetType uint8

const (
	unknownOffset offsetType = iota
	codeOffset               // first byte of an instruction
	codeOperand              // second byte of an instruction
	dataOffset               // referenced or unreachable data
)

// offset contains the disassembly information of a single ROM byte.
type offset struct {
	typ    offsetType
	label  string
	opcode uint16
	ins    chip8.Instruction
	called bool // destination of a call
	data   bool // destination of a data reference
}

// Options controls the listing output.
type Options struct {
	HexComments    bool // output opcode bytes as hex values in comments
	OffsetComments bool // output addresses in comments
}

// Disasm implements a CHIP-8 disassembler.
type Disasm struct {
	logger  *log.Logger
	options Options
	rom     []byte
	offsets []offset

	offsetsToParse      []uint16
	offsetsToParseAdded set.Set[uint16]
	branchDestinations  set.Set[uint16]
}

// New creates a new disassembler for the given ROM image.
func New(logger *log.Logger, rom []byte, options Options) (*Disasm, error) {
	if len(rom) > chip8.MaxROMSize {
		return nil, fmt.Errorf("%w: %d bytes", chip8.ErrROMTooLarge, len(rom))
	}

	return &Disasm{
		logger:              logger,
		options:             options,
		rom:                 rom,
		offsets:             make([]offset, len(rom)),
		offsetsToParseAdded: set.New[uint16](),
		branchDestinations:  set.New[uint16](),
	}, nil
}

// Process traces the ROM starting at the program start address and returns
// the assembly listing lines.
func (dis *Disasm) Process(ctx context.Context) ([]string, error) {
	if len(dis.rom) == 0 {
		return nil, nil
	}

	dis.offsets[0].label = startLabel
	dis.addAddressToParse(chip8.ProgramStart, false)

	if err := dis.followExecutionFlow(ctx); err != nil {
		return nil, err
	}
	dis.processJumpDestinations()

	return dis.listing(), nil
}

// followExecutionFlow parses all reachable instructions.
func (dis *Disasm) followExecutionFlow(ctx context.Context) error {
	for len(dis.offsetsToParse) > 0 {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("following execution flow: %w", err)
		}

		address := dis.offsetsToParse[0]
		dis.offsetsToParse = dis.offsetsToParse[1:]
		dis.processOffset(address)
	}
	return nil
}

// addAddressToParse queues an address for parsing if it is inside the ROM
// and was not queued before.
func (dis *Disasm) addAddressToParse(address uint16, isABranchDestination bool) {
	if !dis.inROM(address) {
		return
	}
	if isABranchDestination {
		dis.branchDestinations.Add(address)
	}
	if dis.offsetsToParseAdded.Contains(address) {
		return
	}
	dis.offsetsToParseAdded.Add(address)
	dis.offsetsToParse = append(dis.offsetsToParse, address)
}

// processOffset decodes the instruction at the address and queues the
// addresses that execution can continue at.
func (dis *Disasm) processOffset(address uint16) {
	index := int(address) - chip8.ProgramStart
	if index+1 >= len(dis.rom) {
		return // trailing single byte can not contain an instruction
	}

	offsetInfo := &dis.offsets[index]
	if offsetInfo.typ == codeOperand {
		dis.logger.Debug("Execution flow into instruction operand", log.Hex("address", address))
		return
	}

	opcode := uint16(dis.rom[index])<<8 | uint16(dis.rom[index+1])
	ins, err := chip8.Decode(opcode)
	if err != nil {
		// consider an unknown instruction as start of data
		dis.logger.Debug("Unknown opcode, treating as data",
			log.Hex("address", address),
			log.Hex("opcode", opcode))
		return
	}

	offsetInfo.typ = codeOffset
	offsetInfo.opcode = opcode
	offsetInfo.ins = ins
	if next := &dis.offsets[index+1]; next.typ == unknownOffset {
		next.typ = codeOperand
	}

	dis.handleControlFlow(address, opcode, ins)
}

// handleControlFlow queues the follow up addresses of an instruction.
func (dis *Disasm) handleControlFlow(address, opcode uint16, ins chip8.Instruction) {
	next := address + 2
	def := lookup(opcode)

	switch {
	case def.IsJump():
		// the target of JP V0, addr depends on the register value at runtime
		if jump, ok := ins.(chip8.Jump); ok {
			dis.addAddressToParse(jump.Address, true)
		}

	case def.IsCall():
		if call, ok := ins.(chip8.Call); ok {
			dis.addAddressToParse(call.Address, true)
			if dis.inROM(call.Address) {
				dis.offsets[call.Address-chip8.ProgramStart].called = true
			}
		}
		dis.addAddressToParse(next, false)

	case def.IsSkip():
		dis.addAddressToParse(next, false)
		dis.addAddressToParse(next+2, false)

	case def.IsDataReference(opcode):
		if load, ok := ins.(chip8.LoadIndex); ok {
			dis.handleDataReference(load.Address)
		}
		dis.addAddressToParse(next, false)

	case !def.IsReturn():
		dis.addAddressToParse(next, false)
	}
}

// handleDataReference marks the target of a LD I, addr instruction as data.
func (dis *Disasm) handleDataReference(target uint16) {
	if !dis.inROM(target) {
		return
	}
	dis.offsets[target-chip8.ProgramStart].data = true
	dis.branchDestinations.Add(target)
}

// processJumpDestinations assigns the label names to all referenced addresses.
func (dis *Disasm) processJumpDestinations() {
	for address := range dis.branchDestinations {
		offsetInfo := &dis.offsets[address-chip8.ProgramStart]
		if offsetInfo.label != "" {
			continue
		}

		switch {
		case offsetInfo.called:
			offsetInfo.label = fmt.Sprintf(funcNaming, address)
		case offsetInfo.data && offsetInfo.typ != codeOffset:
			offsetInfo.label = fmt.Sprintf(dataNaming, address)
		default:
			offsetInfo.label = fmt.Sprintf(labelNaming, address)
		}
	}
}

// labelFor returns the label of an address if it has one, or the formatted address.
func (dis *Disasm) labelFor(address uint16) string {
	if dis.inROM(address) {
		if label := dis.offsets[address-chip8.ProgramStart].label; label != "" {
			return label
		}
	}
	return addressParam(address)
}

func (dis *Disasm) inROM(address uint16) bool {
	return address >= chip8.ProgramStart && int(address-chip8.ProgramStart) < len(dis.rom)
}
