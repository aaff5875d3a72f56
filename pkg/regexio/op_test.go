package regexio

import (
	"errors"
	"testing"
)

func TestOperationFragments(t *testing.T) {
	tests := []struct {
		name    string
		pattern *Pattern
		want    string
	}{
		{"any character", New().AnyCharacter(), "."},
		{"literal character", New().Char('c'), "c"},
		{"any digit", New().AnyDigit(), `\d`},
		{"any letter", New().AnyLetter(), `\w`},
		{"whitespace", New().Whitespace(), `\s`},
		{"tabulator", New().Tab(), `\t`},
		{"one or more", New().OneOrMore(New().AnyDigit()), `(\d)+`},
		{"repeat exact", New().Repeat(New().AnyDigit(), 3), `(\d){3}`},
		{"repeat range", New().RepeatRange(New().AnyDigit(), 2, 5), `(\d){2,5}`},
		{"repeat at least", New().AtLeast(New().AnyDigit(), 3), `(\d){3,}`},
		{"multiple or none", New().MultipleOrNone(New().AnyDigit()), `(\d)*`},
		{"once or none", New().OnceOrNone(New().AnyDigit()), `(\d)?`},
		{"alternation of two", New().Or(New().Char('a'), New().Char('b')), "(a|b)"},
		{"alternation of three", New().Or(New().Char('a'), New().Char('b'), New().Char('c')), "(a|b|c)"},
		{"equal range bounds", New().RepeatRange(New().AnyDigit(), 3, 3), `(\d){3,3}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.pattern.Build()
			if err != nil {
				t.Fatalf("Build() returned error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Build() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestLiteralNotEscaped(t *testing.T) {
	// Metacharacters pass through verbatim; escaping is the caller's job.
	for _, c := range []rune{'.', '+', '*', '?', '(', ')', '|', '\\'} {
		got, err := New().Char(c).Build()
		if err != nil {
			t.Fatalf("Build() returned error for %q: %v", c, err)
		}
		if got != string(c) {
			t.Errorf("Char(%q) rendered %q, want %q", c, got, string(c))
		}
	}
}

func TestRenderUnknownKind(t *testing.T) {
	p := &Pattern{ops: []operation{{kind: opKind(99)}}}

	_, err := p.Build()
	var renderErr *RenderError
	if !errors.As(err, &renderErr) {
		t.Fatalf("Build() = %v, want *RenderError", err)
	}
}

func TestRenderMissingOperand(t *testing.T) {
	p := &Pattern{ops: []operation{{kind: opOneOrMore}}}

	_, err := p.Build()
	var renderErr *RenderError
	if !errors.As(err, &renderErr) {
		t.Fatalf("Build() = %v, want *RenderError", err)
	}
}
