package frontend

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/retroenv/retrochip8/internal/chip8"
	"github.com/retroenv/retrogolib/log"
	"golang.org/x/term"
)

// DefaultKeyHoldTime is the time a key stays pressed after its last key
// event. Terminals only report key presses, the repeat rate of a held key
// keeps it pressed.
const DefaultKeyHoldTime = 150 * time.Millisecond

const (
	keyEscape = 0x1b
	keyCtrlC  = 0x03

	clearScreen = "\x1b[2J"
	cursorHome  = "\x1b[H"
	hideCursor  = "\x1b[?25l"
	showCursor  = "\x1b[?25h"
)

// ErrNotTerminal is returned when the input is not an interactive terminal.
var ErrNotTerminal = errors.New("input is not a terminal")

// keyMapping maps the keyboard layout to the CHIP-8 keypad:
//
//	1 2 3 4      1 2 3 C
//	q w e r  ->  4 5 6 D
//	a s d f      7 8 9 E
//	z x c v      A 0 B F
var keyMapping = map[byte]byte{
	'1': 0x1, '2': 0x2, '3': 0x3, '4': 0xC,
	'q': 0x4, 'w': 0x5, 'e': 0x6, 'r': 0xD,
	'a': 0x7, 's': 0x8, 'd': 0x9, 'f': 0xE,
	'z': 0xA, 'x': 0x0, 'c': 0xB, 'v': 0xF,
}

// Terminal renders the display into a terminal in raw mode and reads the
// keypad state from the keyboard.
type Terminal struct {
	logger   *log.Logger
	input    io.Reader
	output   io.Writer
	fd       int
	oldState *term.State

	holdTime time.Duration
	now      func() time.Time
	held     [chip8.NumKeys]time.Time // release time per key
	chunks   chan []byte
	once     sync.Once

	frame bytes.Buffer
}

// NewTerminal returns a terminal front end for the standard input and output.
func NewTerminal(logger *log.Logger) *Terminal {
	return newTerminal(logger, os.Stdin, os.Stdout, int(os.Stdin.Fd()))
}

func newTerminal(logger *log.Logger, input io.Reader, output io.Writer, fd int) *Terminal {
	return &Terminal{
		logger:   logger,
		input:    input,
		output:   output,
		fd:       fd,
		holdTime: DefaultKeyHoldTime,
		now:      time.Now,
		chunks:   make(chan []byte, 64),
	}
}

// Start switches the terminal into raw mode and starts reading key presses.
func (t *Terminal) Start() error {
	if !term.IsTerminal(t.fd) {
		return ErrNotTerminal
	}

	width, height, err := term.GetSize(t.fd)
	if err == nil && (width < chip8.DisplayWidth || height < chip8.DisplayHeight/2) {
		t.logger.Warn("Terminal is smaller than the display",
			log.Int("width", width),
			log.Int("height", height))
	}

	state, err := term.MakeRaw(t.fd)
	if err != nil {
		return fmt.Errorf("setting terminal raw mode: %w", err)
	}
	t.oldState = state

	go t.readInput()

	if _, err := io.WriteString(t.output, clearScreen+hideCursor); err != nil {
		return fmt.Errorf("writing to terminal: %w", err)
	}
	return nil
}

// Close restores the terminal state.
func (t *Terminal) Close() error {
	if t.oldState == nil {
		return nil
	}

	_, _ = io.WriteString(t.output, showCursor+"\r\n")
	if err := term.Restore(t.fd, t.oldState); err != nil {
		return fmt.Errorf("restoring terminal: %w", err)
	}
	t.oldState = nil
	return nil
}

// readInput forwards the read key chunks until the input is closed.
func (t *Terminal) readInput() {
	defer t.once.Do(func() { close(t.chunks) })

	buf := make([]byte, 32)
	for {
		n, err := t.input.Read(buf)
		if n > 0 {
			chunk := make([]byte, n)
			copy(chunk, buf[:n])
			t.chunks <- chunk
		}
		if err != nil {
			if !errors.Is(err, io.EOF) {
				t.logger.Error("Reading terminal input failed", log.Err(err))
			}
			return
		}
	}
}

// PollInput processes all pending key presses and updates the keypad.
func (t *Terminal) PollInput(keypad *chip8.Keypad) (bool, error) {
	now := t.now()

	for pending := true; pending; {
		select {
		case chunk, ok := <-t.chunks:
			if !ok || t.handleChunk(chunk, now) {
				return true, nil
			}
		default:
			pending = false
		}
	}

	for key := range chip8.NumKeys {
		keypad.SetPressed(byte(key), now.Before(t.held[key]))
	}
	return false, nil
}

// handleChunk marks the keys of a read chunk as held and returns whether
// the chunk requests to quit. A single escape byte quits, escape sequences
// of special keys are ignored.
func (t *Terminal) handleChunk(chunk []byte, now time.Time) bool {
	if len(chunk) == 1 && chunk[0] == keyEscape {
		return true
	}
	if len(chunk) > 0 && chunk[0] == keyEscape {
		return false
	}

	for _, b := range chunk {
		if b == keyCtrlC {
			return true
		}
		if b >= 'A' && b <= 'Z' {
			b += 'a' - 'A'
		}
		if key, ok := keyMapping[b]; ok {
			t.held[key] = now.Add(t.holdTime)
		}
	}
	return false
}

// Render draws the framebuffer using half block characters, every text row
// shows two pixel rows.
func (t *Terminal) Render(buffer chip8.Framebuffer) error {
	t.frame.Reset()
	t.frame.WriteString(cursorHome)
	renderHalfBlocks(&t.frame, buffer)

	if _, err := t.output.Write(t.frame.Bytes()); err != nil {
		return fmt.Errorf("writing to terminal: %w", err)
	}
	return nil
}

// Sound rings the terminal bell when the buzzer starts.
func (t *Terminal) Sound(active bool) {
	if !active {
		return
	}
	_, _ = io.WriteString(t.output, "\a")
}

func renderHalfBlocks(buf *bytes.Buffer, buffer chip8.Framebuffer) {
	for y := 0; y < chip8.DisplayHeight; y += 2 {
		for x := range chip8.DisplayWidth {
			top := buffer[y][x]
			bottom := buffer[y+1][x]

			switch {
			case top && bottom:
				buf.WriteRune('█')
			case top:
				buf.WriteRune('▀')
			case bottom:
				buf.WriteRune('▄')
			default:
				buf.WriteByte(' ')
			}
		}
		buf.WriteString("\r\n")
	}
}
