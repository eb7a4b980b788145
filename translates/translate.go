package translates

import (
	"github.com/reusee/tapec/cgens"
	"github.com/reusee/tapec/insts"
	"github.com/reusee/tapec/sources"
)

type Options struct {
	// Debug adds the max-index tracker and the tape dump at exit.
	Debug bool
	// Strict rejects brackets that close before they open.
	Strict bool
}

// Result holds every stage's output of one translation.
type Result struct {
	Unit    *sources.Unit
	Program *insts.Program
	C       string
}

// Translate runs the whole pipeline on text. name is the file name embedded
// in diagnostics. No C text is produced when validation fails.
func Translate(name string, text string, opts Options) (*Result, error) {
	unit := sources.Normalize(name, text)
	if err := sources.Validate(unit, opts.Strict); err != nil {
		return nil, err
	}
	program := insts.Emit(unit, opts.Debug)
	return &Result{
		Unit:    unit,
		Program: program,
		C:       cgens.Assemble(program),
	}, nil
}
