// Package frontend contains the front ends that present the emulated
// machine to the user.
package frontend

import (
	"strings"

	"github.com/retroenv/retrochip8/internal/chip8"
)

// Headless is a front end without input and output. It keeps the last
// rendered framebuffer so it can be inspected after a run.
type Headless struct {
	frames int
	last   chip8.Framebuffer
	sound  bool
}

// NewHeadless returns a new headless front end.
func NewHeadless() *Headless {
	return &Headless{}
}

// Render stores the framebuffer.
func (h *Headless) Render(buffer chip8.Framebuffer) error {
	h.frames++
	h.last = buffer
	return nil
}

// PollInput never presses a key and never quits.
func (h *Headless) PollInput(*chip8.Keypad) (bool, error) {
	return false, nil
}

// Sound records the buzzer state.
func (h *Headless) Sound(active bool) {
	h.sound = active
}

// Frames returns the number of rendered frames.
func (h *Headless) Frames() int {
	return h.frames
}

// Framebuffer returns the last rendered framebuffer.
func (h *Headless) Framebuffer() chip8.Framebuffer {
	return h.last
}

// SoundActive returns whether the buzzer is currently on.
func (h *Headless) SoundActive() bool {
	return h.sound
}

// String renders the last framebuffer as text, # for set and . for unset pixels.
func (h *Headless) String() string {
	var sb strings.Builder
	sb.Grow(chip8.DisplayHeight * (chip8.DisplayWidth + 1))

	for y := range chip8.DisplayHeight {
		for x := range chip8.DisplayWidth {
			if h.last[y][x] {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
