package machine

import (
	"encoding/gob"
	"fmt"
	"io"
)

// snapshot is the gob-serializable image of a machine mid-run. The jump
// table is not stored; it is rebuilt from the program on restore.
type snapshot struct {
	Prog    Program
	Tape    []byte
	Pointer int
	PC      int
	Actions int
}

// SaveState serialises the program and the full execution state so that a
// long-running program can be parked and resumed later.
func (m *Machine) SaveState(w io.Writer) error {
	enc := gob.NewEncoder(w)
	return enc.Encode(snapshot{
		Prog:    m.prog,
		Tape:    m.Tape,
		Pointer: m.Pointer,
		PC:      m.PC,
		Actions: m.Actions,
	})
}

// RestoreState replaces the machine's program and execution state with a
// previously saved snapshot. Execution continues from the saved instruction
// cursor.
func (m *Machine) RestoreState(r io.Reader) error {
	var s snapshot
	dec := gob.NewDecoder(r)
	if err := dec.Decode(&s); err != nil {
		return fmt.Errorf("decode snapshot: %w", err)
	}

	jumps, err := BuildJumpTable(s.Prog)
	if err != nil {
		return fmt.Errorf("snapshot holds an invalid program: %w", err)
	}

	m.prog = s.Prog
	m.jumps = jumps
	m.Tape = s.Tape
	m.Pointer = s.Pointer
	m.PC = s.PC
	m.Actions = s.Actions
	return nil
}
