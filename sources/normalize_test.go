package sources

import (
	"strings"
	"testing"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		input string
		text  string
	}{
		{"", ""},
		{"++++[>++++<-]>.", "++++[>++++<-]>."},
		{"hello, world.", ",."},
		{"# this is ignored >>><<<\n+.", "+."},
		{"+\n# comment\n-", "+\n-"},
		{"+ # not a comment line >\n", "+>\n"},
		{" # indented is not a comment <", "<"},
		{"#\n#\n", ""},
		{"a\r\nb.\r\n", "\n.\n"},
		{"#only", ""},
	}
	for _, test := range tests {
		unit := Normalize("test.bf", test.input)
		if unit.Text != test.text {
			t.Fatalf("%q: got %q, want %q", test.input, unit.Text, test.text)
		}
		if unit.Name != "test.bf" {
			t.Fatalf("got %q", unit.Name)
		}
	}
}

func TestNormalizeAlphabetOnly(t *testing.T) {
	var b strings.Builder
	for c := range 256 {
		b.WriteByte(byte(c))
	}
	unit := Normalize("all", b.String())
	for i := 0; i < len(unit.Text); i++ {
		if strings.IndexByte(Alphabet, unit.Text[i]) < 0 {
			t.Fatalf("unexpected byte %q", unit.Text[i])
		}
	}
	if len(unit.Text) != len(Alphabet) {
		t.Fatalf("got %q", unit.Text)
	}
}

func TestNormalizeLineGranular(t *testing.T) {
	input := "+#>\n#>>\n-#<\n"
	unit := Normalize("x", input)
	// the first and third lines keep their instructions after the marker
	if unit.Text != "+>\n-<\n" {
		t.Fatalf("got %q", unit.Text)
	}
}
