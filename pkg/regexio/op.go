package regexio

import (
	"strconv"
	"strings"
)

// opKind enumerates the operation types a pattern can contain. The set is
// closed; rendering dispatches over it exhaustively.
type opKind int

const (
	opAnyCharacter opKind = iota
	opChar
	opAnyDigit
	opAnyLetter
	opWhitespace
	opTabulator
	opOneOrMore
	opRepeatExact
	opRepeatRange
	opRepeatAtLeast
	opMultipleOrNone
	opOnceOrNone
	opAlternation
)

// operation is a single matching element of a pattern. Each kind uses a
// fixed subset of the payload fields: character kinds use char, quantifier
// kinds use operand with lower/upper, alternation uses alternatives.
type operation struct {
	kind         opKind
	char         rune
	operand      *Pattern
	alternatives []*Pattern
	lower        int
	upper        int
}

// render appends the regex fragment for this operation to sb. The fragment
// depends only on the operation's kind and payload, never on sibling
// operations.
func (op *operation) render(sb *strings.Builder, active map[*Pattern]bool) error {
	switch op.kind {
	case opAnyCharacter:
		sb.WriteByte('.')
	case opChar:
		// Verbatim: metacharacters are not escaped.
		sb.WriteRune(op.char)
	case opAnyDigit:
		sb.WriteString(`\d`)
	case opAnyLetter:
		sb.WriteString(`\w`)
	case opWhitespace:
		sb.WriteString(`\s`)
	case opTabulator:
		sb.WriteString(`\t`)
	case opOneOrMore:
		return op.renderQuantifier(sb, active, "+")
	case opRepeatExact:
		return op.renderQuantifier(sb, active, "{"+strconv.Itoa(op.lower)+"}")
	case opRepeatRange:
		return op.renderQuantifier(sb, active, "{"+strconv.Itoa(op.lower)+","+strconv.Itoa(op.upper)+"}")
	case opRepeatAtLeast:
		return op.renderQuantifier(sb, active, "{"+strconv.Itoa(op.lower)+",}")
	case opMultipleOrNone:
		return op.renderQuantifier(sb, active, "*")
	case opOnceOrNone:
		return op.renderQuantifier(sb, active, "?")
	case opAlternation:
		if len(op.alternatives) < 2 {
			return &RenderError{Reason: "alternation with fewer than two alternatives"}
		}
		sb.WriteByte('(')
		for i, alt := range op.alternatives {
			if i > 0 {
				sb.WriteByte('|')
			}
			if alt == nil {
				return &RenderError{Reason: "alternation with nil alternative"}
			}
			if err := alt.render(sb, active); err != nil {
				return err
			}
		}
		sb.WriteByte(')')
	default:
		return &RenderError{Reason: "unknown operation kind"}
	}
	return nil
}

// renderQuantifier renders the operand in a group followed by the
// quantifier suffix: "(" + operand + ")" + suffix.
func (op *operation) renderQuantifier(sb *strings.Builder, active map[*Pattern]bool, suffix string) error {
	if op.operand == nil {
		return &RenderError{Reason: "quantifier without operand"}
	}
	sb.WriteByte('(')
	if err := op.operand.render(sb, active); err != nil {
		return err
	}
	sb.WriteByte(')')
	sb.WriteString(suffix)
	return nil
}
