package cgens

import (
	"fmt"
	"strings"

	"github.com/reusee/tapec/insts"
)

const preamble = `#include <stdio.h>
#define highlight "\x1b[31m"
#define reset "\x1b[0m"

int main() {
`

// Assemble renders the whole translation unit for program.
func Assemble(program *insts.Program) string {
	var b strings.Builder
	b.WriteString(preamble)

	writeLine := func(depth int, line string) {
		b.WriteString(strings.Repeat("\t", depth+1))
		b.WriteString(line)
		b.WriteByte('\n')
	}

	writeLine(0, fmt.Sprintf("long data[%d] = {0};", insts.TapeSize))
	writeLine(0, "unsigned int current_index = 0;")
	if program.Debug {
		writeLine(0, "unsigned int biggest_index = 0;")
	}

	depth := 0
	for _, stmt := range program.Stmts {
		if stmt.Kind == insts.KindLoopClose && depth > 0 {
			depth--
		}
		for _, line := range Render(stmt, program.File, program.Debug) {
			writeLine(depth, line)
		}
		if stmt.Kind == insts.KindLoopOpen {
			depth++
		}
	}

	if program.Debug {
		writeLine(0, `printf("[");`)
		writeLine(0, `for (unsigned int i = 0; i < biggest_index; i++) { printf("%ld, ", data[i]); }`)
		writeLine(0, `printf("%ld]\n", data[biggest_index]);`)
	}
	writeLine(0, "return 0;")
	b.WriteString("}\n")

	return b.String()
}
