package chip8

import (
	"errors"
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestNewRegisterIndex(t *testing.T) {
	for value := range uint8(NumRegisters) {
		r, err := NewRegisterIndex(value)
		assert.NoError(t, err)
		assert.Equal(t, RegisterIndex(value), r)
	}

	_, err := NewRegisterIndex(NumRegisters)
	assert.True(t, errors.Is(err, ErrInvalidRegister))
	_, err = NewRegisterIndex(0xFF)
	assert.True(t, errors.Is(err, ErrInvalidRegister))
}

func TestNewNibble(t *testing.T) {
	n, err := NewNibble(0xF)
	assert.NoError(t, err)
	assert.Equal(t, Nibble(0xF), n)

	_, err = NewNibble(0x10)
	assert.True(t, errors.Is(err, ErrInvalidNibble))
}

func TestRegisterIndexString(t *testing.T) {
	assert.Equal(t, "V0", RegisterIndex(0).String())
	assert.Equal(t, "VF", VF.String())
}

func TestRegisterFile(t *testing.T) {
	var f RegisterFile
	f.Set(3, 0x42)
	f.Set(VF, 1)

	assert.Equal(t, byte(0x42), f.Get(3))
	assert.Equal(t, byte(1), f.Get(VF))

	values := f.Values()
	assert.Equal(t, byte(0x42), values[3])
	values[3] = 0
	assert.Equal(t, byte(0x42), f.Get(3))
}
