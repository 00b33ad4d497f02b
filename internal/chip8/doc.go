// Package chip8 implements the CHIP-8 virtual machine core.
//
// # Machine Overview
//
// CHIP-8 is an interpreted language from the 1970s. The machine consists of:
//   - 4KB of memory (0x000-0xFFF)
//   - 16 general-purpose 8-bit registers V0-VF, VF doubles as flag register
//   - a 16-bit index register I
//   - a 16 level call stack
//   - delay and sound timers, decremented at 60Hz by the host
//   - a 64x32 monochrome framebuffer
//   - a 16 key hexadecimal keypad
//
// # Memory Layout
//
//	0x000-0x04F: unused interpreter area
//	0x050-0x09F: built-in font, 16 glyphs of 5 bytes each
//	0x0A0-0x1FF: unused interpreter area
//	0x200-0xFFF: ROM image and free program memory
//
// # Execution Model
//
// The Interpreter executes exactly one instruction per Step call. It is not
// safe for concurrent use; the host owns the cadence. Timers are ticked
// separately by calling TickTimers at 60Hz, independent of how many
// instructions are executed per frame.
//
// Waiting for a key press (Fx0A) is an explicit interpreter state. While in
// it, Step does not fetch any instruction and only polls the keypad.
//
// # Usage Example
//
//	machine := chip8.New(chip8.Config{})
//	if err := machine.LoadROM(rom); err != nil {
//		return fmt.Errorf("loading rom: %w", err)
//	}
//	for frame := range frames {
//		for range cyclesPerFrame {
//			if _, err := machine.Step(); err != nil {
//				return err
//			}
//		}
//		machine.TickTimers()
//		render(machine.Display().Buffer())
//	}
package chip8
