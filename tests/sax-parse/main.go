// +build gofuzz

package fuzz

import (
	"bytes"

	"github.com/tdewolff/sax"
)

// Fuzz is a fuzz test.
func Fuzz(data []byte) int {
	r := &sax.Recorder{}
	p := sax.NewParser(r, bytes.NewReader(data))
	if err := p.Parse(); err != nil {
		if _, ok := err.(*sax.Error); !ok {
			panic(err)
		}
		return 0
	}
	if len(r.Events) < 2 || r.Events[len(r.Events)-1].Type != sax.DocumentEndEvent {
		panic("missing document end")
	}
	return 1
}
