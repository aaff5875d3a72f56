package regexio

// ContractError reports invalid arguments passed to a chaining method, such
// as a non-positive repeat count or an alternation with a single operand.
// These are programmer errors; the builder fails fast instead of clamping
// or coercing.
type ContractError struct {
	Method string
	Reason string
}

func (e *ContractError) Error() string {
	return "regexio: " + e.Method + ": " + e.Reason
}

// RenderError reports a pattern that cannot be rendered, such as one that
// references itself. Call-time contract checks make this unreachable for
// well-formed callers; it exists as a safety net.
type RenderError struct {
	Reason string
}

func (e *RenderError) Error() string {
	return "regexio: cannot render pattern: " + e.Reason
}
