package logs

import (
	"io"
	"os"
	"testing"
)

// Writer receives terminal log output. Stdout is left to the generated C text.
type Writer io.Writer

// Under go test, records go to the test's output and show only for failing
// or verbose runs.
func (Module) Writer(
	t *testing.T,
) Writer {
	if t != nil {
		return t.Output()
	}
	return os.Stderr
}
