package cgens

import (
	"fmt"
	"strings"

	"github.com/reusee/tapec/insts"
	"github.com/reusee/tapec/sources"
)

const (
	msgTooHigh  = "Current index cannot be greater than %d"
	msgTooLow   = "Current index cannot be lower than 0"
	msgEOF      = "Unexpected EOF"
	msgNoValue  = "No value assigned"
	lastIndex   = insts.TapeSize - 1
	cellExpr    = "data[current_index]"
	debugUpdate = "if (current_index > biggest_index) { biggest_index = current_index; }"
)

// Render translates one statement into C lines, without indentation.
// file is the name embedded in runtime diagnostics.
func Render(stmt insts.Stmt, file string, debug bool) []string {
	switch stmt.Kind {

	case insts.KindIncrement:
		return []string{cellExpr + "++;"}

	case insts.KindDecrement:
		return []string{cellExpr + "--;"}

	case insts.KindMoveRight:
		lines := []string{
			fmt.Sprintf("if (current_index == %d) { %s return 1; }",
				lastIndex, diagnostic(file, stmt.Pos, fmt.Sprintf(msgTooHigh, lastIndex))),
			"current_index += 1;",
		}
		if debug {
			lines = append(lines, debugUpdate)
		}
		return lines

	case insts.KindMoveLeft:
		return []string{
			fmt.Sprintf("if (current_index == 0) { %s return 1; }",
				diagnostic(file, stmt.Pos, msgTooLow)),
			"current_index -= 1;",
		}

	case insts.KindOutput:
		return []string{`printf("%c", (char)` + cellExpr + `);`}

	case insts.KindInput:
		return []string{
			`{ unsigned char c; int ret = scanf("%c", &c);`,
			fmt.Sprintf("  if (ret < 0) { %s return 1; }", diagnostic(file, stmt.Pos, msgEOF)),
			fmt.Sprintf("  if (ret == 0) { %s return 1; }", diagnostic(file, stmt.Pos, msgNoValue)),
			"  " + cellExpr + " = c; }",
		}

	case insts.KindLoopOpen:
		return []string{"while (" + cellExpr + " != 0) {"}

	case insts.KindLoopClose:
		return []string{"}"}

	case insts.KindTrailingNewline:
		return []string{`printf("\n");`}

	}

	panic(fmt.Errorf("bad statement kind: %v", stmt.Kind))
}

// diagnostic prints "[ERR] At file:line:col" and the message, highlighted.
func diagnostic(file string, pos sources.Pos, msg string) string {
	return fmt.Sprintf(`printf(highlight "[ERR] At %s:%d:%d\n%s\n" reset);`,
		formatLiteral(file), pos.Line, pos.Column, formatLiteral(msg))
}

// formatLiteral escapes s for use inside a C string literal that is also a printf format.
func formatLiteral(s string) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '"' || c == '\\':
			b.WriteByte('\\')
			b.WriteByte(c)
		case c == '%':
			b.WriteString("%%")
		case c == '?':
			// no trigraphs
			b.WriteString(`\?`)
		case c < 0x20 || c >= 0x7f:
			fmt.Fprintf(&b, "\\%03o", c)
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}
