// Package dump renders a machine's memory and instruction listing in a
// human-readable form. It is pure presentation over state the core already
// exposes.
package dump

import (
	"bufio"
	"fmt"
	"io"

	"gobf/pkg/machine"
)

// bytesPerLine is the number of memory cells shown on one dump line.
const bytesPerLine = 12

// Memory writes a hex-plus-ASCII listing of the tape. Each line carries the
// cell address, the cell values in hex, and the printable ASCII rendering of
// the same cells (non-graphic bytes show as '.').
func Memory(w io.Writer, tape []byte, pointer int) error {
	buf := bufio.NewWriter(w)

	fmt.Fprintf(buf, "Pointer pointing at address 0x%04X\n\n", pointer)

	for i := 0; i < len(tape); i += bytesPerLine {
		fmt.Fprintf(buf, "0x%04X: \t", i)

		end := i + bytesPerLine
		if end > len(tape) {
			end = len(tape)
		}
		for _, v := range tape[i:end] {
			fmt.Fprintf(buf, "0x%02X \t", v)
		}

		// Keep the ASCII column aligned on a short last line.
		if i+bytesPerLine > len(tape) {
			for j := 0; j < bytesPerLine-(len(tape)%bytesPerLine); j++ {
				buf.WriteByte('\t')
			}
		}

		for _, v := range tape[i:end] {
			if v > 0x20 && v < 0x7F {
				buf.WriteByte(v)
			} else {
				buf.WriteByte('.')
			}
		}

		buf.WriteByte('\n')
	}

	return buf.Flush()
}

// Instructions writes the translated program, one instruction per line.
func Instructions(w io.Writer, prog machine.Program) error {
	buf := bufio.NewWriter(w)
	for i, op := range prog {
		fmt.Fprintf(buf, "%4d: %s\n", i, op)
	}
	return buf.Flush()
}
