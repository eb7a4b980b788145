package debugs

import (
	"strings"

	"github.com/reusee/tapec/cgens"
	"github.com/reusee/tapec/insts"
	"github.com/reusee/tapec/sources"
	"github.com/reusee/tapec/translates"
)

// TranslationGlobals exposes one translation to the tap:
//
//	file, source    the diagnostic name and the filtered stream
//	stmts, counts   the statement list and per-kind counts
//	debug           whether the debug tracker is emitted
//	c_source        the assembled C text
//	render(kind, line, column)
//	                C lines for one statement
func TranslationGlobals(result *translates.Result) map[string]any {
	program := result.Program
	return map[string]any{
		"file":     program.File,
		"source":   result.Unit.Text,
		"stmts":    program.Stmts,
		"counts":   program.Counts(),
		"debug":    program.Debug,
		"c_source": result.C,
		"render": func(kind string, line int, column int) string {
			for k := insts.KindIncrement; k <= insts.KindTrailingNewline; k++ {
				if k.String() == kind {
					return strings.Join(cgens.Render(insts.Stmt{
						Kind: k,
						Pos: sources.Pos{
							Line:   line,
							Column: column,
						},
					}, program.File, program.Debug), "\n")
				}
			}
			return ""
		},
	}
}
