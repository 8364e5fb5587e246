package dump

import (
	"bytes"
	"strings"
	"testing"

	"gobf/pkg/machine"
)

func TestMemoryShortTape(t *testing.T) {
	var buf bytes.Buffer
	tape := []byte{'H', 'e', 'l', 'l', 'o', 0}
	if err := Memory(&buf, tape, 4); err != nil {
		t.Fatalf("Memory: %v", err)
	}

	want := "Pointer pointing at address 0x0004\n\n" +
		"0x0000: \t0x48 \t0x65 \t0x6C \t0x6C \t0x6F \t0x00 \t" +
		"\t\t\t\t\t\tHello.\n"
	if buf.String() != want {
		t.Errorf("expected %q, got %q", want, buf.String())
	}
}

func TestMemoryLineBreaks(t *testing.T) {
	var buf bytes.Buffer
	tape := make([]byte, 30)
	if err := Memory(&buf, tape, 0); err != nil {
		t.Fatalf("Memory: %v", err)
	}

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	// Header, blank line, then 12+12+6 cells over three lines.
	if len(lines) != 5 {
		t.Fatalf("expected 5 lines, got %d: %q", len(lines), buf.String())
	}
	if !strings.HasPrefix(lines[2], "0x0000: ") {
		t.Errorf("first data line: expected address 0x0000, got %q", lines[2])
	}
	if !strings.HasPrefix(lines[3], "0x000C: ") {
		t.Errorf("second data line: expected address 0x000C, got %q", lines[3])
	}
	if !strings.HasPrefix(lines[4], "0x0018: ") {
		t.Errorf("third data line: expected address 0x0018, got %q", lines[4])
	}
	// A zero byte is not graphic ASCII and renders as a dot.
	if !strings.HasSuffix(lines[2], strings.Repeat(".", 12)) {
		t.Errorf("expected 12 dots at end of line, got %q", lines[2])
	}
}

func TestMemoryFullLastLine(t *testing.T) {
	var buf bytes.Buffer
	if err := Memory(&buf, make([]byte, 12), 0); err != nil {
		t.Fatalf("Memory: %v", err)
	}
	// An exact multiple of the line width needs no tab padding before the
	// ASCII column.
	if strings.Contains(buf.String(), "\t\t") {
		t.Errorf("unexpected padding in %q", buf.String())
	}
}

func TestInstructions(t *testing.T) {
	var buf bytes.Buffer
	prog := machine.Program{
		{Kind: machine.OpIncVal, Count: 4},
		{Kind: machine.OpSetZero},
		{Kind: machine.OpPrintChar},
	}
	if err := Instructions(&buf, prog); err != nil {
		t.Fatalf("Instructions: %v", err)
	}

	want := "   0: IncVal(4)\n   1: SetZero\n   2: PrintChar\n"
	if buf.String() != want {
		t.Errorf("expected %q, got %q", want, buf.String())
	}
}
