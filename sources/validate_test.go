package sources

import (
	"errors"
	"strings"
	"testing"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		input string
		ok    bool
	}{
		{"", true},
		{"[]", true},
		{"++[>[-]<-]", true},
		{"][", true},
		{"]", false},
		{"[", false},
		{"[[]", false},
		{"# [\n]", false},
		{"# ]\n[]", true},
	}
	for _, test := range tests {
		unit := Normalize("prog.bf", test.input)
		err := Validate(unit, false)
		if test.ok && err != nil {
			t.Fatalf("%q: %v", test.input, err)
		}
		if !test.ok {
			var structural *StructuralError
			if !errors.As(err, &structural) {
				t.Fatalf("%q: got %v", test.input, err)
			}
			if structural.File != "prog.bf" {
				t.Fatalf("got %v", structural.File)
			}
			if err.Error() != "At prog.bf: Mismatched brackets []" {
				t.Fatalf("got %v", err)
			}
		}
	}
}

func TestValidateCountsIff(t *testing.T) {
	inputs := []string{"[", "]", "[]", "[[]]", "][", "[]]", "x[y]z", "[[[", "]]]"}
	for _, input := range inputs {
		unit := Normalize("x", input)
		balanced := strings.Count(unit.Text, "[") == strings.Count(unit.Text, "]")
		if err := Validate(unit, false); (err == nil) != balanced {
			t.Fatalf("%q: got %v", input, err)
		}
	}
}

func TestValidateStrict(t *testing.T) {
	unit := Normalize("prog.bf", "+\n][")
	err := Validate(unit, true)
	var structural *StructuralError
	if !errors.As(err, &structural) {
		t.Fatalf("got %v", err)
	}
	if structural.Bracket != ']' || structural.Pos != (Pos{2, 1}) {
		t.Fatalf("got %+v", structural)
	}
	if err.Error() != "At prog.bf:2:1: Unmatched bracket ]" {
		t.Fatalf("got %v", err)
	}

	unit = Normalize("prog.bf", "[[]")
	if err := Validate(unit, true); err == nil {
		t.Fatal("should error")
	}

	unit = Normalize("prog.bf", "[[]\n]]")
	if err := Validate(unit, true); err == nil {
		// counts differ, reported by the count check
		t.Fatal("should error")
	}

	unit = Normalize("prog.bf", "[[-]>[-]]")
	if err := Validate(unit, true); err != nil {
		t.Fatal(err)
	}
}
