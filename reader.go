package sax

import (
	"io"
)

// maxEmptyReads is the number of consecutive empty reads after which io.ErrNoProgress is returned.
const maxEmptyReads = 100

// Reader is an io.ByteReader taking an io.Reader. It requests a single byte per read so that the underlying reader is never consumed past the returned byte.
// A byte returned together with an error is delivered before the error.
type Reader struct {
	r       io.Reader
	readErr error

	b     [1]byte
	empty int
}

// NewReader returns an io.ByteReader for r. Readers that already implement io.ByteReader are returned as is.
// Wrap slow readers in a bufio.Reader when read-ahead is acceptable.
func NewReader(r io.Reader) io.ByteReader {
	if br, ok := r.(io.ByteReader); ok {
		return br
	}
	return &Reader{r: r}
}

// ReadByte returns the next byte. It returns io.EOF at the clean end of the data and the read error otherwise.
func (z *Reader) ReadByte() (byte, error) {
	for z.readErr == nil {
		var n int
		n, z.readErr = z.r.Read(z.b[:])
		if 0 < n {
			z.empty = 0
			return z.b[0], nil
		}
		if z.readErr == nil {
			z.empty++
			if maxEmptyReads <= z.empty {
				z.readErr = io.ErrNoProgress
			}
		}
	}
	return 0, z.readErr
}
