package main

import "github.com/regexio/regexio/pkg/regexio"

// samplePattern builds the showcase pattern .c\s((\d){3,}|G): any
// character, a literal 'c', a whitespace, then either three or more digits
// or a literal 'G'.
func samplePattern() *regexio.Pattern {
	return regexio.New().
		AnyCharacter().
		Char('c').
		Whitespace().
		Or(
			regexio.New().AtLeast(regexio.New().AnyDigit(), 3),
			regexio.New().Char('G'),
		)
}

type namedPattern struct {
	name    string
	pattern *regexio.Pattern
}

// showcasePatterns returns the patterns the generate subcommand embeds.
func showcasePatterns() []namedPattern {
	return []namedPattern{
		{"Sample", samplePattern()},
		{"Integer", regexio.New().OneOrMore(regexio.New().AnyDigit())},
		{"Word", regexio.New().OneOrMore(regexio.New().AnyLetter())},
	}
}
