package sources

import (
	"iter"
	"strings"
)

// Alphabet is every byte that survives normalization.
const Alphabet = "><+-.,[]\n"

// Unit is a normalized tape-machine source: the file name used in
// diagnostics and the filtered instruction stream.
type Unit struct {
	Name string
	Text string
}

// All yields every instruction with its position in the filtered stream.
// Newlines advance the tracker and are not yielded.
func (u *Unit) All() iter.Seq2[byte, Pos] {
	return func(yield func(byte, Pos) bool) {
		var tracker Tracker
		for i := 0; i < len(u.Text); i++ {
			c := u.Text[i]
			pos := tracker.At(i)
			if c == '\n' {
				tracker.Newline(i)
				continue
			}
			if !yield(c, pos) {
				return
			}
		}
	}
}

func (u *Unit) Count(c byte) int {
	return strings.Count(u.Text, string(c))
}

func (u *Unit) Contains(c byte) bool {
	return strings.IndexByte(u.Text, c) >= 0
}
