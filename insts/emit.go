package insts

import (
	"github.com/reusee/tapec/sources"
)

var symbolKinds = map[byte]Kind{
	'+': KindIncrement,
	'-': KindDecrement,
	'>': KindMoveRight,
	'<': KindMoveLeft,
	'.': KindOutput,
	',': KindInput,
	'[': KindLoopOpen,
	']': KindLoopClose,
}

// KindOf maps an instruction symbol to its statement kind.
func KindOf(symbol byte) Kind {
	return symbolKinds[symbol]
}

// Emit walks the unit once, in source order. The unit must already have
// passed sources.Validate.
func Emit(unit *sources.Unit, debug bool) *Program {
	program := &Program{
		File:  unit.Name,
		Debug: debug,
	}
	hasOutput := false
	for c, pos := range unit.All() {
		kind := KindOf(c)
		if kind == KindInvalid {
			continue
		}
		stmt := Stmt{
			Kind: kind,
		}
		if kind.Checked() {
			stmt.Pos = pos
		}
		if kind == KindOutput {
			hasOutput = true
		}
		program.Stmts = append(program.Stmts, stmt)
	}
	if hasOutput {
		program.Stmts = append(program.Stmts, Stmt{
			Kind: KindTrailingNewline,
		})
	}
	return program
}
