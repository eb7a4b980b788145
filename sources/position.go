package sources

import "fmt"

type Pos struct {
	Line   int
	Column int
}

func (p Pos) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Tracker computes positions incrementally over a stream it is walked along.
// The zero value is at line 1 with the line starting at offset 0.
type Tracker struct {
	newlines  int
	lineStart int
}

// At returns the position of stream offset i, which must not precede the last newline.
func (t *Tracker) At(i int) Pos {
	return Pos{
		Line:   t.newlines + 1,
		Column: i - t.lineStart + 1,
	}
}

// Newline records a newline at stream offset i.
func (t *Tracker) Newline(i int) {
	t.newlines++
	t.lineStart = i + 1
}
