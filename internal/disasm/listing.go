package disasm

import (
	"fmt"
	"strings"

	"github.com/retroenv/retrochip8/internal/chip8"
)

const (
	dataBytesPerLine = 8
	commentColumn    = 24
)

// listing converts the processed offsets to assembly lines.
func (dis *Disasm) listing() []string {
	var lines []string

	for index := 0; index < len(dis.offsets); {
		offsetInfo := dis.offsets[index]
		address := uint16(chip8.ProgramStart + index)

		if offsetInfo.label != "" {
			lines = append(lines, offsetInfo.label+":")
		}

		if offsetInfo.typ == codeOffset && !dis.hasLabel(index+1) {
			code := formatInstruction(offsetInfo.opcode, offsetInfo.ins, dis.labelFor)
			lines = append(lines, dis.line(code, address, dis.rom[index:index+2]))
			index += 2
			continue
		}

		end := dis.dataEnd(index)
		data := dis.rom[index:end]
		values := make([]string, len(data))
		for i, b := range data {
			values[i] = fmt.Sprintf("$%02X", b)
		}
		code := ".byte " + strings.Join(values, ", ")
		lines = append(lines, dis.line(code, address, data))
		index = end
	}

	return lines
}

// dataEnd returns the end index of a data line starting at index. A line ends
// at the next instruction or label, or after dataBytesPerLine bytes.
func (dis *Disasm) dataEnd(index int) int {
	end := index + 1
	for ; end < len(dis.offsets) && end-index < dataBytesPerLine; end++ {
		if dis.offsets[end].typ == codeOffset || dis.offsets[end].label != "" {
			break
		}
	}
	return end
}

func (dis *Disasm) hasLabel(index int) bool {
	return index < len(dis.offsets) && dis.offsets[index].label != ""
}

// line formats a single listing line with the optional comments.
func (dis *Disasm) line(code string, address uint16, data []byte) string {
	var comment []string
	if dis.options.OffsetComments {
		comment = append(comment, fmt.Sprintf("$%04X", address))
	}
	if dis.options.HexComments {
		hex := make([]string, len(data))
		for i, b := range data {
			hex[i] = fmt.Sprintf("%02X", b)
		}
		comment = append(comment, strings.Join(hex, " "))
	}

	code = "  " + code
	if len(comment) == 0 {
		return code
	}
	if len(code) < commentColumn {
		code += strings.Repeat(" ", commentColumn-len(code))
	}
	return fmt.Sprintf("%s ; %s", code, strings.Join(comment, " "))
}
