package sax

import (
	"errors"
	"fmt"
)

// Error kinds returned by Parse, match them with errors.Is.
var (
	// ErrBadStream is returned when no source is bound or the source fails with an error other than io.EOF.
	ErrBadStream = errors.New("bad input stream")

	// ErrParsing is returned when the automaton has no transition for the current character.
	ErrParsing = errors.New("parsing error")

	// ErrCloseStyleTag is returned when a definition tag is self-closed or used as a closing tag, or when a normal tag is closed with '?>'.
	ErrCloseStyleTag = errors.New("closing style-tag")

	// ErrClosingTagWithNoBody is returned for end tags that are also self-closing, eg. </a/>.
	ErrClosingTagWithNoBody = errors.New("closing tag without body")

	// ErrClosingTagWithAttributes is returned for end tags that carry attributes.
	ErrClosingTagWithAttributes = errors.New("closing tag with attributes")
)

// Error is a parsing error returned by Parser. It contains the error kind, a message and the position at which the error occurred.
type Error struct {
	Kind    error // one of the Err* kinds
	Err     error // underlying read error, if any
	Message string

	Offset  int
	Line    int
	Column  int
	Context string
}

func newError(kind error, msg string, pos *position) *Error {
	e := &Error{
		Kind:    kind,
		Message: kind.Error(),
	}
	if msg != "" {
		e.Message += ": " + msg
	}
	if pos != nil && pos.offset > 0 {
		e.Offset = pos.offset
		e.Line = pos.line
		e.Column = pos.col
		e.Context = pos.context()
	}
	return e
}

// Position returns the line, column, and context of the error.
// Context is the current line up to and including the offending character.
func (e *Error) Position() (int, int, string) {
	return e.Line, e.Column, e.Context
}

// Error returns the error string, containing the context and line + column number.
func (e *Error) Error() string {
	if e.Line == 0 {
		return e.Message
	}
	return fmt.Sprintf("%s on line %d and column %d\n%s", e.Message, e.Line, e.Column, e.Context)
}

// Is reports whether target is the kind of this error.
func (e *Error) Is(target error) bool {
	return target == e.Kind
}

// Unwrap returns the underlying read error.
func (e *Error) Unwrap() error {
	return e.Err
}
