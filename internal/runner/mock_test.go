package runner

import (
	"github.com/retroenv/retrochip8/internal/chip8"
)

// mockFrontend records the calls of the runner.
type mockFrontend struct {
	renders   int
	last      chip8.Framebuffer
	sounds    []bool
	polls     int
	quitAfter int // request quit on this poll, 0 never quits

	onPoll    func(poll int, keypad *chip8.Keypad)
	renderErr error
}

func (m *mockFrontend) Render(buffer chip8.Framebuffer) error {
	if m.renderErr != nil {
		return m.renderErr
	}
	m.renders++
	m.last = buffer
	return nil
}

func (m *mockFrontend) PollInput(keypad *chip8.Keypad) (bool, error) {
	m.polls++
	if m.onPoll != nil {
		m.onPoll(m.polls, keypad)
	}
	return m.quitAfter > 0 && m.polls >= m.quitAfter, nil
}

func (m *mockFrontend) Sound(active bool) {
	m.sounds = append(m.sounds, active)
}
