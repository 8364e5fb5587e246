package lexer

import "gobf/pkg/machine"

// Parse translates source text into a program. Each of the eight command
// characters becomes one unit instruction; every other character is a
// comment and is dropped, so Parse never fails. With optimize set, the unit
// instructions are rewritten by a single peephole pass before being
// returned.
func Parse(source string, optimize bool) machine.Program {
	prog := lex(source)
	if optimize {
		return optimizePass(prog)
	}
	return prog
}

func lex(source string) machine.Program {
	prog := make(machine.Program, 0, len(source))
	for _, ch := range source {
		switch ch {
		case '>':
			prog = append(prog, machine.Op{Kind: machine.OpIncPtr, Count: 1})
		case '<':
			prog = append(prog, machine.Op{Kind: machine.OpDecPtr, Count: 1})
		case '+':
			prog = append(prog, machine.Op{Kind: machine.OpIncVal, Count: 1})
		case '-':
			prog = append(prog, machine.Op{Kind: machine.OpDecVal, Count: 1})
		case '[':
			prog = append(prog, machine.Op{Kind: machine.OpBeginLoop})
		case ']':
			prog = append(prog, machine.Op{Kind: machine.OpEndLoop})
		case ',':
			prog = append(prog, machine.Op{Kind: machine.OpReadChar})
		case '.':
			prog = append(prog, machine.Op{Kind: machine.OpPrintChar})
		}
	}
	return prog
}

// optimizePass rewrites the unit instruction stream in one greedy
// left-to-right sweep. The [-] / [+] idiom is checked before run-length
// merging because it spans exactly three unit instructions; once a span is
// consumed, scanning resumes immediately after it. The rewrite is purely
// local, so the optimized program is observationally identical to the raw
// one apart from the action count.
func optimizePass(raw machine.Program) machine.Program {
	optimized := make(machine.Program, 0, len(raw))

	i := 0
	for i < len(raw) {
		if isZeroIdiom(raw, i) {
			optimized = append(optimized, machine.Op{Kind: machine.OpSetZero})
			i += 3
			continue
		}

		op := raw[i]
		i++
		if op.Kind.Counted() {
			for i < len(raw) && raw[i].Kind == op.Kind {
				op.Count += raw[i].Count
				i++
			}
		}
		optimized = append(optimized, op)
	}

	return optimized
}

// isZeroIdiom reports whether a self-zeroing loop starts at position i: a
// BeginLoop, a single unit IncVal or DecVal, and an EndLoop.
func isZeroIdiom(prog machine.Program, i int) bool {
	if i+2 >= len(prog) {
		return false
	}
	if prog[i].Kind != machine.OpBeginLoop || prog[i+2].Kind != machine.OpEndLoop {
		return false
	}
	body := prog[i+1]
	return (body.Kind == machine.OpIncVal || body.Kind == machine.OpDecVal) && body.Count == 1
}
