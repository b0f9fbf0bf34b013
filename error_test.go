package sax

import (
	"errors"
	"io"
	"testing"

	"github.com/tdewolff/test"
)

func TestError(t *testing.T) {
	z := position{}
	z.reset()
	for _, c := range []byte("buffer") {
		z.advance(c)
	}
	err := newError(ErrParsing, "message", &z)

	line, column, context := err.Position()
	test.T(t, line, 1, "line")
	test.T(t, column, 6, "column")
	test.T(t, "\n"+context, "\n    1: buffer\n            ^", "context")

	test.T(t, err.Error(), "parsing error: message on line 1 and column 6\n    1: buffer\n            ^", "error")
	test.That(t, errors.Is(err, ErrParsing), "must match its kind")
	test.That(t, !errors.Is(err, ErrBadStream), "must not match another kind")
}

func TestErrorNoPosition(t *testing.T) {
	err := newError(ErrBadStream, "", nil)
	test.T(t, err.Error(), "bad input stream")
	test.T(t, err.Line, 0, "line")
	test.That(t, err.Unwrap() == nil)
}

func TestErrorUnwrap(t *testing.T) {
	err := newError(ErrBadStream, io.ErrUnexpectedEOF.Error(), nil)
	err.Err = io.ErrUnexpectedEOF
	test.That(t, errors.Is(err, ErrBadStream), "must match its kind")
	test.That(t, errors.Is(err, io.ErrUnexpectedEOF), "must match the read error")
	test.T(t, err.Error(), "bad input stream: unexpected EOF")
}
