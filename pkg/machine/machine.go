package machine

import (
	"errors"
	"io"
	"os"
)

// ErrEmptyTape is returned by Run when the machine was built with no memory
// cells. Every other condition during execution is defined behavior.
var ErrEmptyTape = errors.New("tape must have at least one cell")

// Machine executes a translated Program against a fixed-size circular tape
// of byte cells. A Machine is exclusively owned by one run at a time; it has
// no internal locking.
type Machine struct {
	Tape    []byte
	Pointer int
	PC      int
	Actions int

	// Input supplies bytes for ReadChar. When it is nil or reports an error
	// (including io.EOF) the current cell is left unchanged.
	Input io.ByteReader
	// Output receives bytes from PrintChar. If nil, os.Stdout is used.
	Output io.ByteWriter

	prog  Program
	jumps JumpTable
}

// New creates a machine with a zeroed tape of the given size and the pointer
// at cell 0.
func New(tapeSize int) *Machine {
	return &Machine{Tape: make([]byte, tapeSize)}
}

// Load installs a program and resolves its loop brackets. The instruction
// cursor and action counter are reset; the tape is left as-is so a host can
// preload memory.
func (m *Machine) Load(prog Program) error {
	jumps, err := BuildJumpTable(prog)
	if err != nil {
		return err
	}
	m.prog = prog
	m.jumps = jumps
	m.PC = 0
	m.Actions = 0
	return nil
}

// Program returns the loaded program for listings and dumps.
func (m *Machine) Program() Program {
	return m.prog
}

// Done reports whether the instruction cursor has run off the end of the
// program.
func (m *Machine) Done() bool {
	return m.PC >= len(m.prog)
}

// Step dispatches a single instruction. Every dispatched instruction,
// including a loop bracket whose jump is not taken, counts as one action.
func (m *Machine) Step() {
	if m.Done() {
		return
	}

	op := m.prog[m.PC]
	switch op.Kind {
	case OpIncPtr:
		m.Pointer = (m.Pointer + op.Count) % len(m.Tape)

	case OpDecPtr:
		// Reduce first so a merged run longer than the tape still lands on
		// a valid cell.
		back := op.Count % len(m.Tape)
		if back > m.Pointer {
			m.Pointer = len(m.Tape) - (back - m.Pointer)
		} else {
			m.Pointer -= back
		}

	case OpIncVal:
		// Only the low 8 bits of the count survive the wrap.
		m.Tape[m.Pointer] += byte(op.Count)

	case OpDecVal:
		m.Tape[m.Pointer] -= byte(op.Count)

	case OpBeginLoop:
		if m.Tape[m.Pointer] == 0 {
			m.PC = m.jumps[m.PC]
		}

	case OpEndLoop:
		if m.Tape[m.Pointer] != 0 {
			m.PC = m.jumps[m.PC]
		}

	case OpReadChar:
		if m.Input != nil {
			if ch, err := m.Input.ReadByte(); err == nil {
				m.Tape[m.Pointer] = ch
			}
		}

	case OpPrintChar:
		m.writeOut(m.Tape[m.Pointer])

	case OpSetZero:
		m.Tape[m.Pointer] = 0
	}

	m.Actions++
	m.PC++
}

func (m *Machine) writeOut(ch byte) {
	if m.Output != nil {
		_ = m.Output.WriteByte(ch)
		return
	}
	_, _ = os.Stdout.Write([]byte{ch})
}

// Run executes the loaded program to completion and returns the number of
// actions performed and the final pointer position. The only failure is a
// zero-length tape, checked before the dispatch loop starts.
func (m *Machine) Run() (int, int, error) {
	if len(m.Tape) == 0 {
		return 0, 0, ErrEmptyTape
	}
	for !m.Done() {
		m.Step()
	}
	return m.Actions, m.Pointer, nil
}
