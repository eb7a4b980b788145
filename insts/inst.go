package insts

import (
	"github.com/reusee/tapec/sources"
)

// TapeSize is the number of cells of the generated program's tape.
const TapeSize = 1000

type Kind uint8

const (
	KindInvalid Kind = iota
	KindIncrement
	KindDecrement
	KindMoveRight
	KindMoveLeft
	KindOutput
	KindInput
	KindLoopOpen
	KindLoopClose
	KindTrailingNewline
)

var kindNames = [...]string{
	KindInvalid:         "invalid",
	KindIncrement:       "increment",
	KindDecrement:       "decrement",
	KindMoveRight:       "move_right",
	KindMoveLeft:        "move_left",
	KindOutput:          "output",
	KindInput:           "input",
	KindLoopOpen:        "loop_open",
	KindLoopClose:       "loop_close",
	KindTrailingNewline: "trailing_newline",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "invalid"
}

// Checked reports whether statements of this kind carry a runtime check
// and therefore a source position.
func (k Kind) Checked() bool {
	switch k {
	case KindMoveRight, KindMoveLeft, KindInput:
		return true
	}
	return false
}

// Stmt is one statement of the generated program body.
// Pos is only meaningful for checked kinds.
type Stmt struct {
	Kind Kind
	Pos  sources.Pos
}

// Program is the statement sequence emitted for one source unit.
type Program struct {
	File  string
	Debug bool
	Stmts []Stmt
}

// Counts returns the number of statements per kind.
func (p *Program) Counts() map[Kind]int {
	ret := make(map[Kind]int)
	for _, stmt := range p.Stmts {
		ret[stmt.Kind]++
	}
	return ret
}
