package machine

import "fmt"

// JumpTable maps the index of each loop bracket to the index of its partner.
// Entries at non-bracket positions are zero and never consulted.
type JumpTable []int

// BracketError reports an unbalanced loop bracket found while resolving
// jumps. Pos is the instruction index, not the source column; comment
// characters are already gone by the time brackets are matched.
type BracketError struct {
	Open bool // true for an unmatched '[', false for an unmatched ']'
	Pos  int
}

func (e *BracketError) Error() string {
	if e.Open {
		return fmt.Sprintf("unmatched '[' at instruction %d", e.Pos)
	}
	return fmt.Sprintf("unmatched ']' at instruction %d", e.Pos)
}

// BuildJumpTable resolves loop brackets in a single pass. For every matched
// pair (b, e) the table holds jump[b] = e and jump[e] = b. An unbalanced
// bracket is fatal: execution never starts on a program whose control flow
// is undefined.
func BuildJumpTable(prog Program) (JumpTable, error) {
	jump := make(JumpTable, len(prog))
	var stack []int

	for i, op := range prog {
		switch op.Kind {
		case OpBeginLoop:
			stack = append(stack, i)
		case OpEndLoop:
			if len(stack) == 0 {
				return nil, &BracketError{Open: false, Pos: i}
			}
			begin := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			jump[i] = begin
			jump[begin] = i
		}
	}

	if len(stack) > 0 {
		// Report the innermost pending bracket; it is the first one a
		// reader would need to close.
		return nil, &BracketError{Open: true, Pos: stack[len(stack)-1]}
	}
	return jump, nil
}
