// Package regexio builds regular expression pattern strings through a
// fluent, composable API. A Pattern is an ordered sequence of matching
// operations; chaining methods append operations and return the same
// Pattern, and Build concatenates every operation's regex fragment in
// insertion order.
//
// The produced string is plain regex source for the standard regexp package
// (or any compatible engine); regexio never compiles or executes patterns
// itself. Literal characters are emitted verbatim without escaping, so
// passing a metacharacter to Char is the caller's responsibility.
package regexio

import "strings"

// Pattern is a fluent builder for one regular expression. Create it with
// New, chain operation methods, then call Build for the pattern string.
//
// A Pattern passed as an operand to a quantifier or Or is borrowed
// read-only at build time; it must not be appended to concurrently while
// another goroutine builds a pattern that references it.
type Pattern struct {
	ops []operation

	// err holds the first contract violation. Once set, further chaining
	// methods are no-ops and Build fails with it.
	err error
}

// New returns an empty pattern.
func New() *Pattern {
	return &Pattern{}
}

// AnyCharacter matches any character.
func (p *Pattern) AnyCharacter() *Pattern {
	return p.push(operation{kind: opAnyCharacter})
}

// Char matches the given character. The character is emitted verbatim:
// regex metacharacters such as '.' or '+' are not escaped.
func (p *Pattern) Char(c rune) *Pattern {
	return p.push(operation{kind: opChar, char: c})
}

// AnyDigit matches any digit: 0, 1, 2, ...
func (p *Pattern) AnyDigit() *Pattern {
	return p.push(operation{kind: opAnyDigit})
}

// AnyLetter matches any word character, which includes uppercase and
// lowercase letters, digits and underscores.
func (p *Pattern) AnyLetter() *Pattern {
	return p.push(operation{kind: opAnyLetter})
}

// Whitespace matches a whitespace character.
func (p *Pattern) Whitespace() *Pattern {
	return p.push(operation{kind: opWhitespace})
}

// Tab matches a tabulator character.
func (p *Pattern) Tab() *Pattern {
	return p.push(operation{kind: opTabulator})
}

// OneOrMore matches operand once or multiple times.
func (p *Pattern) OneOrMore(operand *Pattern) *Pattern {
	if operand == nil {
		return p.fail("OneOrMore", "operand must not be nil")
	}
	return p.adopt(operand).push(operation{kind: opOneOrMore, operand: operand})
}

// Repeat matches operand exactly count times. count must be greater than
// zero.
func (p *Pattern) Repeat(operand *Pattern, count int) *Pattern {
	if operand == nil {
		return p.fail("Repeat", "operand must not be nil")
	}
	if count <= 0 {
		return p.fail("Repeat", "count must be greater than zero")
	}
	return p.adopt(operand).push(operation{kind: opRepeatExact, operand: operand, lower: count})
}

// RepeatRange matches operand between lower and upper times. lower must not
// exceed upper.
func (p *Pattern) RepeatRange(operand *Pattern, lower, upper int) *Pattern {
	if operand == nil {
		return p.fail("RepeatRange", "operand must not be nil")
	}
	if lower > upper {
		return p.fail("RepeatRange", "lower bound must not exceed upper bound")
	}
	return p.adopt(operand).push(operation{kind: opRepeatRange, operand: operand, lower: lower, upper: upper})
}

// AtLeast matches operand at least count times. count must be greater than
// zero.
func (p *Pattern) AtLeast(operand *Pattern, count int) *Pattern {
	if operand == nil {
		return p.fail("AtLeast", "operand must not be nil")
	}
	if count <= 0 {
		return p.fail("AtLeast", "count must be greater than zero")
	}
	return p.adopt(operand).push(operation{kind: opRepeatAtLeast, operand: operand, lower: count})
}

// MultipleOrNone matches operand multiple times or never.
func (p *Pattern) MultipleOrNone(operand *Pattern) *Pattern {
	if operand == nil {
		return p.fail("MultipleOrNone", "operand must not be nil")
	}
	return p.adopt(operand).push(operation{kind: opMultipleOrNone, operand: operand})
}

// OnceOrNone matches operand once or never.
func (p *Pattern) OnceOrNone(operand *Pattern) *Pattern {
	if operand == nil {
		return p.fail("OnceOrNone", "operand must not be nil")
	}
	return p.adopt(operand).push(operation{kind: opOnceOrNone, operand: operand})
}

// Or matches one of the given alternatives, tried in the given order. At
// least two alternatives are required.
func (p *Pattern) Or(alternatives ...*Pattern) *Pattern {
	if len(alternatives) < 2 {
		return p.fail("Or", "at least two alternatives are required")
	}
	for _, alt := range alternatives {
		if alt == nil {
			return p.fail("Or", "alternatives must not be nil")
		}
		p.adopt(alt)
	}
	return p.push(operation{kind: opAlternation, alternatives: alternatives})
}

// Err returns the first contract violation recorded by a chaining method,
// or nil if every call so far was valid.
func (p *Pattern) Err() error {
	return p.err
}

// Build renders the pattern by concatenating every operation's regex
// fragment in insertion order. Build does not mutate the pattern; calling
// it repeatedly on an unchanged pattern returns the same string. It fails
// if a chaining method recorded a contract violation or the pattern
// references itself, directly or through a nested operand.
func (p *Pattern) Build() (string, error) {
	if p.err != nil {
		return "", p.err
	}
	var sb strings.Builder
	if err := p.render(&sb, make(map[*Pattern]bool)); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// MustBuild is like Build but panics on error. It simplifies declaring
// package-level patterns known to be valid.
func (p *Pattern) MustBuild() string {
	s, err := p.Build()
	if err != nil {
		panic(err)
	}
	return s
}

// push appends one operation unless an earlier call already failed.
func (p *Pattern) push(op operation) *Pattern {
	if p.err != nil {
		return p
	}
	p.ops = append(p.ops, op)
	return p
}

// fail records the first contract violation.
func (p *Pattern) fail(method, reason string) *Pattern {
	if p.err == nil {
		p.err = &ContractError{Method: method, Reason: reason}
	}
	return p
}

// adopt carries a nested operand's contract violation into this pattern so
// the error surfaces at the call that referenced the broken operand.
func (p *Pattern) adopt(operand *Pattern) *Pattern {
	if p.err == nil && operand.err != nil {
		p.err = operand.err
	}
	return p
}

// render walks the operation sequence. active holds the patterns currently
// on the render stack so that cyclic references fail instead of recursing
// forever.
func (p *Pattern) render(sb *strings.Builder, active map[*Pattern]bool) error {
	if p.err != nil {
		return p.err
	}
	if active[p] {
		return &RenderError{Reason: "pattern references itself"}
	}
	active[p] = true
	defer delete(active, p)

	for i := range p.ops {
		if err := p.ops[i].render(sb, active); err != nil {
			return err
		}
	}
	return nil
}
