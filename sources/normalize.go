package sources

import (
	"strings"
)

// Normalize drops comment lines, those starting with '#', and then every
// byte outside Alphabet. It never fails.
func Normalize(name string, text string) *Unit {
	var kept []string
	for line := range strings.SplitSeq(text, "\n") {
		if strings.HasPrefix(line, "#") {
			continue
		}
		kept = append(kept, line)
	}

	var b strings.Builder
	for i, line := range kept {
		if i > 0 {
			b.WriteByte('\n')
		}
		for j := 0; j < len(line); j++ {
			if strings.IndexByte(Alphabet, line[j]) >= 0 {
				b.WriteByte(line[j])
			}
		}
	}

	return &Unit{
		Name: name,
		Text: b.String(),
	}
}
