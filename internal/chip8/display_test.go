package chip8

import (
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestDisplayTogglePixel(t *testing.T) {
	var d Display

	assert.False(t, d.TogglePixel(3, 4))
	assert.True(t, d.Pixel(3, 4))
	assert.True(t, d.TogglePixel(3, 4))
	assert.False(t, d.Pixel(3, 4))
}

func TestDisplayWrap(t *testing.T) {
	var d Display

	assert.False(t, d.TogglePixel(DisplayWidth+1, DisplayHeight+2))
	assert.True(t, d.Pixel(1, 2))

	buf := d.Buffer()
	assert.True(t, buf[2][1])
}

func TestDisplayClear(t *testing.T) {
	var d Display
	d.TogglePixel(0, 0)
	d.TogglePixel(63, 31)

	d.Clear()
	assert.Equal(t, Framebuffer{}, d.Buffer())
}

func TestKeypad(t *testing.T) {
	var k Keypad

	_, ok := k.FirstPressed()
	assert.False(t, ok)

	k.SetPressed(0xC, true)
	k.SetPressed(0x5, true)
	k.SetPressed(0x10, true) // ignored

	assert.True(t, k.IsPressed(0xC))
	assert.False(t, k.IsPressed(0x0))
	assert.False(t, k.IsPressed(0x10))

	key, ok := k.FirstPressed()
	assert.True(t, ok)
	assert.Equal(t, byte(0x5), key)

	k.SetPressed(0x5, false)
	key, ok = k.FirstPressed()
	assert.True(t, ok)
	assert.Equal(t, byte(0xC), key)

	k.Release()
	_, ok = k.FirstPressed()
	assert.False(t, ok)
}
