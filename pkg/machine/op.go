package machine

import "fmt"

// Kind identifies one of the nine primitive instructions. The four
// pointer/value kinds carry a repeat count so that a run of identical
// source characters executes as a single instruction.
type Kind uint8

const (
	OpIncPtr Kind = iota
	OpDecPtr
	OpIncVal
	OpDecVal
	OpBeginLoop
	OpEndLoop
	OpReadChar
	OpPrintChar
	// OpSetZero never appears in source; the lexer synthesizes it from the
	// [-] and [+] idioms.
	OpSetZero
)

// Op is a single translated instruction. Count is meaningful only for the
// pointer and value kinds and is always >= 1 there.
type Op struct {
	Kind  Kind
	Count int
}

// Program is an ordered instruction sequence. Order is execution order.
// Programs are not mutated after translation.
type Program []Op

func (k Kind) String() string {
	switch k {
	case OpIncPtr:
		return "IncPtr"
	case OpDecPtr:
		return "DecPtr"
	case OpIncVal:
		return "IncVal"
	case OpDecVal:
		return "DecVal"
	case OpBeginLoop:
		return "BeginLoop"
	case OpEndLoop:
		return "EndLoop"
	case OpReadChar:
		return "ReadChar"
	case OpPrintChar:
		return "PrintChar"
	case OpSetZero:
		return "SetZero"
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

func (o Op) String() string {
	switch o.Kind {
	case OpIncPtr, OpDecPtr, OpIncVal, OpDecVal:
		return fmt.Sprintf("%s(%d)", o.Kind, o.Count)
	default:
		return o.Kind.String()
	}
}

// Counted reports whether the kind carries a repeat count, which also makes
// it a candidate for run-length merging in the lexer.
func (k Kind) Counted() bool {
	switch k {
	case OpIncPtr, OpDecPtr, OpIncVal, OpDecVal:
		return true
	}
	return false
}
