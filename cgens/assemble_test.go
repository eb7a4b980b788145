package cgens

import (
	"strings"
	"testing"

	"github.com/reusee/tapec/insts"
	"github.com/reusee/tapec/sources"
)

func assemble(name, input string, debug bool) string {
	return Assemble(insts.Emit(sources.Normalize(name, input), debug))
}

func TestAssembleSkeleton(t *testing.T) {
	out := assemble("empty.bf", "", false)
	want := `#include <stdio.h>
#define highlight "\x1b[31m"
#define reset "\x1b[0m"

int main() {
	long data[1000] = {0};
	unsigned int current_index = 0;
	return 0;
}
`
	if out != want {
		t.Fatalf("got\n%s", out)
	}
}

func TestAssembleDebugSkeleton(t *testing.T) {
	out := assemble("empty.bf", "", true)
	for _, want := range []string{
		"unsigned int biggest_index = 0;",
		`printf("[");`,
		`for (unsigned int i = 0; i < biggest_index; i++) { printf("%ld, ", data[i]); }`,
		`printf("%ld]\n", data[biggest_index]);`,
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("missing %q in\n%s", want, out)
		}
	}
	if strings.Index(out, `printf("[");`) > strings.Index(out, "return 0;") {
		t.Fatal("dump after return")
	}
}

func TestAssembleIndentsLoops(t *testing.T) {
	out := assemble("loop.bf", "[[-]]", false)
	for _, want := range []string{
		"\twhile (data[current_index] != 0) {\n\t\twhile (data[current_index] != 0) {\n\t\t\tdata[current_index]--;\n\t\t}\n\t}\n",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("got\n%s", out)
		}
	}
}

func TestAssembleCloseBeforeOpen(t *testing.T) {
	// accepted by the count-only check; emitted as written
	out := assemble("odd.bf", "][", false)
	closeAt := strings.Index(out, "\t}\n")
	openAt := strings.Index(out, "while (")
	if closeAt < 0 || openAt < 0 || closeAt > openAt {
		t.Fatalf("got\n%s", out)
	}
}

func TestAssembleIdempotent(t *testing.T) {
	input := "# cat\n,[.,]\n>>+<<-"
	for _, debug := range []bool{false, true} {
		a := assemble("cat.bf", input, debug)
		b := assemble("cat.bf", input, debug)
		if a != b {
			t.Fatal("output differs")
		}
	}
}

func TestAssembleTrailingNewline(t *testing.T) {
	for input, n := range map[string]int{
		"+":       0,
		"+.":      1,
		".\n.\n.": 1,
		"# .\n+":  0,
		",[.,]":   1,
	} {
		out := assemble("x", input, false)
		if got := strings.Count(out, `printf("\n");`); got != n {
			t.Fatalf("%q: got %d", input, got)
		}
		if n == 1 && strings.Index(out, `printf("\n");`) > strings.Index(out, "return 0;") {
			t.Fatalf("%q: newline after return", input)
		}
	}
}

func TestDebugOnlyAddsTracking(t *testing.T) {
	input := "+[>+>++<<-]>.<,>>"
	plain := assemble("x.bf", input, false)
	debug := assemble("x.bf", input, true)

	debugOnly := map[string]bool{
		"unsigned int biggest_index = 0;": true,
		debugUpdate:                       true,
		`printf("[");`:                    true,
		`for (unsigned int i = 0; i < biggest_index; i++) { printf("%ld, ", data[i]); }`: true,
		`printf("%ld]\n", data[biggest_index]);`:                                         true,
	}
	var stripped []string
	updates := 0
	for _, line := range strings.Split(debug, "\n") {
		trimmed := strings.TrimSpace(line)
		if debugOnly[trimmed] {
			if trimmed == debugUpdate {
				updates++
			}
			continue
		}
		stripped = append(stripped, line)
	}
	if strings.Join(stripped, "\n") != plain {
		t.Fatalf("got\n%s\nwant\n%s", strings.Join(stripped, "\n"), plain)
	}
	if updates != strings.Count(input, ">") {
		t.Fatalf("got %d updates", updates)
	}
}

func TestAssembleEmbeddedPositions(t *testing.T) {
	input := "+\n# skip >\n  >x<\n\n,"
	unit := sources.Normalize("pos.bf", input)
	out := Assemble(insts.Emit(unit, false))
	// filtered stream is "+\n><\n\n," so positions refer to it
	for _, want := range []string{
		"At pos.bf:2:1\\nCurrent index cannot be greater than 999",
		"At pos.bf:2:2\\nCurrent index cannot be lower than 0",
		"At pos.bf:4:1\\nUnexpected EOF",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("missing %q in\n%s", want, out)
		}
	}
}
