package cst

import "github.com/dhamidi/cstea/syntax"

// Diagnostic wraps one syntax error reported by the parser.
type Diagnostic struct {
	err syntax.SyntaxError
}

func (d Diagnostic) Range() Range {
	return NewRange(d.err.Range.Start, d.err.Range.End)
}

// Message returns the parser's description verbatim.
func (d Diagnostic) Message() string {
	return d.err.Message
}

func (d Diagnostic) String() string {
	return d.Range().String() + ": " + d.err.Message
}
