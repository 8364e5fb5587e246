package machine

import (
	"bytes"
	"testing"
)

func TestSnapshotRoundTrip(t *testing.T) {
	prog := Program{
		{OpIncVal, 5},
		{Kind: OpBeginLoop},
		{OpIncPtr, 1},
		{OpIncVal, 1},
		{OpDecPtr, 1},
		{OpDecVal, 1},
		{Kind: OpEndLoop},
	}

	// Reference: run straight through.
	ref := New(4)
	if err := ref.Load(prog); err != nil {
		t.Fatalf("Load: %v", err)
	}
	refActions, refPointer, err := ref.Run()
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	// Interrupted: run part way, save, restore into a fresh machine and
	// finish there.
	first := New(4)
	if err := first.Load(prog); err != nil {
		t.Fatalf("Load: %v", err)
	}
	for i := 0; i < 7; i++ {
		first.Step()
	}

	var buf bytes.Buffer
	if err := first.SaveState(&buf); err != nil {
		t.Fatalf("SaveState: %v", err)
	}

	second := New(1) // deliberately wrong size; restore must replace it
	if err := second.RestoreState(&buf); err != nil {
		t.Fatalf("RestoreState: %v", err)
	}
	if second.Actions != 7 {
		t.Errorf("restored Actions: expected 7, got %d", second.Actions)
	}

	actions, pointer, err := second.Run()
	if err != nil {
		t.Fatalf("Run after restore: %v", err)
	}

	if actions != refActions {
		t.Errorf("actions: expected %d, got %d", refActions, actions)
	}
	if pointer != refPointer {
		t.Errorf("pointer: expected %d, got %d", refPointer, pointer)
	}
	if !bytes.Equal(second.Tape, ref.Tape) {
		t.Errorf("tape: expected %v, got %v", ref.Tape, second.Tape)
	}
}

func TestRestoreRejectsGarbage(t *testing.T) {
	m := New(1)
	if err := m.RestoreState(bytes.NewReader([]byte("not a snapshot"))); err == nil {
		t.Errorf("expected an error restoring from garbage, got none")
	}
}
