package loader

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/retroenv/retrochip8/internal/chip8"
	"github.com/retroenv/retrogolib/assert"
)

func TestLoad(t *testing.T) {
	t.Run("load ROM file", func(t *testing.T) {
		tmpFile := createTempFile(t, []byte{0x00, 0xE0, 0x12, 0x00})
		defer os.Remove(tmpFile) //nolint:errcheck // test cleanup

		data, err := New().Load(tmpFile)
		assert.NoError(t, err)
		assert.True(t, bytes.Equal([]byte{0x00, 0xE0, 0x12, 0x00}, data))
	})

	t.Run("load ROM of maximum size", func(t *testing.T) {
		tmpFile := createTempFile(t, make([]byte, chip8.MaxROMSize))
		defer os.Remove(tmpFile) //nolint:errcheck // test cleanup

		data, err := New().Load(tmpFile)
		assert.NoError(t, err)
		assert.Len(t, data, chip8.MaxROMSize)
	})

	t.Run("error on too large file", func(t *testing.T) {
		tmpFile := createTempFile(t, make([]byte, chip8.MaxROMSize+1))
		defer os.Remove(tmpFile) //nolint:errcheck // test cleanup

		_, err := New().Load(tmpFile)
		assert.True(t, errors.Is(err, chip8.ErrROMTooLarge))
	})

	t.Run("error on empty file", func(t *testing.T) {
		tmpFile := createTempFile(t, nil)
		defer os.Remove(tmpFile) //nolint:errcheck // test cleanup

		_, err := New().Load(tmpFile)
		assert.True(t, errors.Is(err, ErrEmptyROM))
	})

	t.Run("error on non-existent file", func(t *testing.T) {
		_, err := New().Load("/nonexistent/file.ch8")
		assert.ErrorContains(t, err, "/nonexistent/file.ch8")
	})
}

func TestLoadFromReader(t *testing.T) {
	data, err := New().LoadFromReader(bytes.NewReader([]byte{0x60, 0x01}))
	assert.NoError(t, err)
	assert.True(t, bytes.Equal([]byte{0x60, 0x01}, data))
}

func createTempFile(t *testing.T, data []byte) string {
	t.Helper()
	tmpDir := t.TempDir()
	tmpFile := filepath.Join(tmpDir, "test.ch8")
	if err := os.WriteFile(tmpFile, data, 0600); err != nil {
		t.Fatalf("Failed to create temp file: %v", err)
	}
	return tmpFile
}
