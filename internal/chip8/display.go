package chip8

// Display dimensions in pixels.
const (
	DisplayWidth  = 64
	DisplayHeight = 32
)

// Framebuffer is a snapshot of the display, addressed as [y][x].
type Framebuffer [DisplayHeight][DisplayWidth]bool

// Display is the monochrome framebuffer. Pixels are toggled, not set,
// by the draw instruction.
type Display struct {
	buffer Framebuffer
}

// Clear turns all pixels off.
func (d *Display) Clear() {
	d.buffer = Framebuffer{}
}

// TogglePixel flips the pixel at the given coordinates, which wrap around the
// display edges. It returns whether the pixel was on before, which means it
// got turned off.
func (d *Display) TogglePixel(x, y int) bool {
	x %= DisplayWidth
	y %= DisplayHeight
	wasOn := d.buffer[y][x]
	d.buffer[y][x] = !wasOn
	return wasOn
}

// Pixel returns whether the pixel at the given coordinates is on.
func (d *Display) Pixel(x, y int) bool {
	return d.buffer[y%DisplayHeight][x%DisplayWidth]
}

// Buffer returns a copy of the current framebuffer.
func (d *Display) Buffer() Framebuffer {
	return d.buffer
}
