package sources

import "fmt"

// StructuralError aborts translation before any code is emitted.
// Pos and Bracket are only set by strict validation.
type StructuralError struct {
	File    string
	Pos     Pos
	Bracket byte
}

func (s *StructuralError) Error() string {
	if s.Bracket == 0 {
		return fmt.Sprintf("At %s: Mismatched brackets []", s.File)
	}
	return fmt.Sprintf("At %s:%s: Unmatched bracket %c", s.File, s.Pos, s.Bracket)
}

// Validate compares the counts of '[' and ']'. Ordering is not checked unless
// strict is set, so "][" passes the default check.
func Validate(unit *Unit, strict bool) error {
	if unit.Count('[') != unit.Count(']') {
		return &StructuralError{
			File: unit.Name,
		}
	}
	if strict {
		return validateNesting(unit)
	}
	return nil
}

func validateNesting(unit *Unit) error {
	var opens []Pos
	for c, pos := range unit.All() {
		switch c {
		case '[':
			opens = append(opens, pos)
		case ']':
			if len(opens) == 0 {
				return &StructuralError{
					File:    unit.Name,
					Pos:     pos,
					Bracket: ']',
				}
			}
			opens = opens[:len(opens)-1]
		}
	}
	if len(opens) > 0 {
		return &StructuralError{
			File:    unit.Name,
			Pos:     opens[len(opens)-1],
			Bracket: '[',
		}
	}
	return nil
}
