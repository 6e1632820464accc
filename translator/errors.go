package translator

import (
	"errors"
	"fmt"
)

var (
	ErrArityMismatch      = errors.New("arity mismatch")
	ErrMalformedForm      = errors.New("malformed form")
	ErrUnsupportedNumeral = errors.New("unsupported numeral")
	ErrNestingTooDeep     = errors.New("nesting too deep")
)

// Error is returned by Translate. Err holds one of the sentinel errors of
// this package. Line and Col are zero when the offending node has no source
// position.
type Error struct {
	Err    error
	Form   string
	Detail string

	Line int
	Col  int
}

func (e *Error) Error() string {
	msg := e.Err.Error()
	if e.Form != "" {
		msg = fmt.Sprintf("%s: %s", msg, e.Form)
	}
	if e.Detail != "" {
		msg = fmt.Sprintf("%s: %s", msg, e.Detail)
	}
	if e.Line > 0 {
		msg = fmt.Sprintf("%d:%d: %s", e.Line, e.Col, msg)
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Err
}
