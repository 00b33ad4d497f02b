// Package runner implements the frame paced host loop that drives the
// interpreter and connects it to a front end.
package runner

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/retroenv/retrochip8/internal/chip8"
	"github.com/retroenv/retrochip8/internal/disasm"
	"github.com/retroenv/retrogolib/log"
	"github.com/retroenv/retrogolib/set"
)

// FramesPerSecond is the rate of the timers and the display refresh.
const FramesPerSecond = 60

// ErrBreakpoint is returned when execution reaches a breakpoint address.
var ErrBreakpoint = errors.New("breakpoint hit")

// Frontend presents the machine state to the user and collects input.
type Frontend interface {
	// Render outputs the current framebuffer.
	Render(buffer chip8.Framebuffer) error
	// PollInput updates the keypad state and reports whether the user
	// requested to quit.
	PollInput(keypad *chip8.Keypad) (quit bool, err error)
	// Sound starts or stops the buzzer.
	Sound(active bool)
}

// Config contains the host loop options.
type Config struct {
	CyclesPerFrame int      // instructions executed per frame
	Frames         int      // frame limit, 0 runs until quit
	Breakpoints    []uint16 // addresses that stop execution before the instruction runs
	Trace          bool     // log every executed instruction
	NoPacing       bool     // run frames back to back instead of at 60Hz
}

// Runner drives an interpreter frame by frame.
type Runner struct {
	logger      *log.Logger
	interpreter *chip8.Interpreter
	frontend    Frontend
	config      Config

	breakpoints set.Set[uint16]
	resume      bool // skip the breakpoint check for the next step
	sound       bool
	frames      int
}

// New returns a new runner for the interpreter and front end.
func New(logger *log.Logger, interpreter *chip8.Interpreter, frontend Frontend, cfg Config) *Runner {
	if cfg.CyclesPerFrame < 1 {
		cfg.CyclesPerFrame = 1
	}

	breakpoints := set.New[uint16]()
	for _, address := range cfg.Breakpoints {
		breakpoints.Add(address)
	}

	return &Runner{
		logger:      logger,
		interpreter: interpreter,
		frontend:    frontend,
		config:      cfg,
		breakpoints: breakpoints,
	}
}

// Frames returns the number of completed frames.
func (r *Runner) Frames() int {
	return r.frames
}

// Continue resumes execution after a breakpoint was hit. The instruction at
// the breakpoint address is executed on the next frame.
func (r *Runner) Continue() {
	r.resume = true
}

// Run executes frames until the context is cancelled, the front end requests
// to quit, the frame limit is reached or execution stops with an error.
func (r *Runner) Run(ctx context.Context) error {
	ticker := time.NewTicker(time.Second / FramesPerSecond)
	defer ticker.Stop()

	for {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("running: %w", err)
		}

		quit, err := r.RunFrame()
		if err != nil {
			r.logFailure(err)
			return err
		}
		if quit {
			r.logger.Debug("Quit requested", log.Int("frames", r.frames))
			return nil
		}
		if r.config.Frames > 0 && r.frames >= r.config.Frames {
			return nil
		}

		if r.config.NoPacing {
			continue
		}
		select {
		case <-ctx.Done():
			return fmt.Errorf("running: %w", ctx.Err())
		case <-ticker.C:
		}
	}
}

// RunFrame polls the input, executes the instructions of one frame, ticks
// the timers and renders the display. Execution of the frame ends early while
// the interpreter waits for a key.
func (r *Runner) RunFrame() (bool, error) {
	quit, err := r.frontend.PollInput(r.interpreter.Keypad())
	if err != nil {
		return false, fmt.Errorf("polling input: %w", err)
	}
	if quit {
		return true, nil
	}

	if err := r.executeCycles(); err != nil {
		if errors.Is(err, ErrBreakpoint) {
			if renderErr := r.render(); renderErr != nil {
				return false, renderErr
			}
		}
		return false, err
	}

	r.interpreter.TickTimers()
	r.updateSound()

	if err := r.render(); err != nil {
		return false, err
	}
	r.frames++
	return false, nil
}

func (r *Runner) executeCycles() error {
	for range r.config.CyclesPerFrame {
		if r.interpreter.State() == chip8.Running {
			pc := r.interpreter.PC()
			if r.breakpoints.Contains(pc) && !r.resume {
				return fmt.Errorf("%w at $%04X", ErrBreakpoint, pc)
			}
			if r.config.Trace {
				r.trace(pc)
			}
		}
		r.resume = false

		state, err := r.interpreter.Step()
		if err != nil {
			return fmt.Errorf("frame %d: %w", r.frames, err)
		}
		if state != chip8.Running {
			return nil
		}
	}
	return nil
}

// updateSound signals changes of the sound timer state to the front end.
func (r *Runner) updateSound() {
	active := r.interpreter.SoundActive()
	if active == r.sound {
		return
	}
	r.sound = active
	r.frontend.Sound(active)
}

func (r *Runner) render() error {
	if err := r.frontend.Render(r.interpreter.Display().Buffer()); err != nil {
		return fmt.Errorf("rendering: %w", err)
	}
	return nil
}

func (r *Runner) trace(pc uint16) {
	opcode, ok := r.interpreter.PeekOpcode()
	if !ok {
		return
	}
	r.logger.Debug("Step",
		log.Hex("pc", pc),
		log.Hex("opcode", opcode),
		log.String("instruction", disasm.Format(opcode)))
}

// logFailure logs the machine state for an error that stopped execution.
func (r *Runner) logFailure(err error) {
	opcode, _ := r.interpreter.PeekOpcode()
	registers := r.interpreter.Registers()

	if errors.Is(err, ErrBreakpoint) {
		r.logger.Info("Breakpoint hit",
			log.Hex("pc", r.interpreter.PC()),
			log.String("instruction", disasm.Format(opcode)),
			log.Hex("index", r.interpreter.Index()),
			log.String("registers", fmt.Sprintf("% X", registers[:])))
		return
	}

	r.logger.Error("Execution failed",
		log.Hex("pc", r.interpreter.PC()),
		log.Hex("opcode", opcode),
		log.Hex("index", r.interpreter.Index()),
		log.Int("stack_depth", r.interpreter.StackDepth()),
		log.String("registers", fmt.Sprintf("% X", registers[:])),
		log.Err(err))
}
