package sax

import (
	"fmt"
	"strings"
)

// contextWidth is the maximum number of bytes of the current line shown in an error context.
const contextWidth = 60

// position tracks the line and column of the last consumed byte.
// It only treats \n as a newline, the same byte the classifier treats as a delimiter.
type position struct {
	offset int
	line   int
	col    int

	buf     []byte // tail of the current line, ending with the last consumed byte
	skipped int    // bytes of the current line dropped from buf
	newline bool
}

func (z *position) reset() {
	buf := z.buf[:0]
	*z = position{line: 1, buf: buf}
}

func (z *position) advance(c byte) {
	if z.newline {
		z.line++
		z.col = 0
		z.buf = z.buf[:0]
		z.skipped = 0
		z.newline = false
	}
	z.offset++
	z.col++
	if len(z.buf) == 2*contextWidth {
		n := copy(z.buf, z.buf[contextWidth:])
		z.buf = z.buf[:n]
		z.skipped += contextWidth
	}
	z.buf = append(z.buf, c)
	if c == '\n' {
		z.newline = true
	}
}

// context returns the current line with a caret under the last consumed byte.
func (z *position) context() string {
	b := z.buf
	prefix := ""
	if z.skipped > 0 || len(b) > contextWidth {
		if len(b) > contextWidth {
			b = b[len(b)-contextWidth:]
		}
		prefix = "..."
	}
	col := len(prefix) + len(b)

	line := make([]byte, len(b))
	for i, c := range b {
		if c == '\n' || c == '\r' {
			c = ' ' // keep the caret line aligned
		}
		line[i] = c
	}
	return fmt.Sprintf("%5d: %s%s\n%s^", z.line, prefix, line, strings.Repeat(" ", col+6))
}
