package parser

import (
	"errors"
	"fmt"
)

var (
	ErrUnexpectedEOF   = errors.New("unexpected end of input")
	ErrUnexpectedToken = errors.New("unexpected token")
	ErrNestingTooDeep  = errors.New("nesting too deep")
)

// Error is returned by the parser. Err holds one of the sentinel errors of
// this package; Line and Col point to the offending token.
type Error struct {
	Err  error
	Text string
	Line int
	Col  int
}

func (e *Error) Error() string {
	if e.Text != "" {
		return fmt.Sprintf("%d:%d: %v %q", e.Line, e.Col, e.Err, e.Text)
	}
	return fmt.Sprintf("%d:%d: %v", e.Line, e.Col, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}
