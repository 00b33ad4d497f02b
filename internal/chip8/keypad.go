package chip8

// NumKeys is the number of keys of the hexadecimal keypad.
const NumKeys = 16

// Keypad holds the pressed state of the keys 0x0-0xF.
// The host maps physical input to key indices, the core never sees key codes.
type Keypad struct {
	keys [NumKeys]bool
}

// SetPressed sets the state of a key. Indices outside of 0x0-0xF are ignored.
func (k *Keypad) SetPressed(key byte, pressed bool) {
	if int(key) < NumKeys {
		k.keys[key] = pressed
	}
}

// IsPressed returns whether a key is pressed. Indices outside of 0x0-0xF
// report not pressed.
func (k *Keypad) IsPressed(key byte) bool {
	if int(key) >= NumKeys {
		return false
	}
	return k.keys[key]
}

// FirstPressed returns the lowest pressed key index.
func (k *Keypad) FirstPressed() (byte, bool) {
	for i, pressed := range k.keys {
		if pressed {
			return byte(i), true
		}
	}
	return 0, false
}

// Release marks all keys as not pressed.
func (k *Keypad) Release() {
	k.keys = [NumKeys]bool{}
}
