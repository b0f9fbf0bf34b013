package sax

import (
	"testing"

	"github.com/tdewolff/test"
)

func TestEventString(t *testing.T) {
	var eventTests = []struct {
		e        Event
		expected string
	}{
		{Event{Type: DocumentStartEvent}, "DocumentStart"},
		{Event{Type: DocumentEndEvent}, "DocumentEnd"},
		{Event{Type: ElementStartEvent, Name: "a"}, "ElementStart(a)"},
		{Event{Type: ElementStartEvent, Name: "a", Attrs: Attributes{"y": "2", "x": "\"1\""}}, `ElementStart(a x="\"1\"" y="2")`},
		{Event{Type: ElementEndEvent, Name: "a"}, "ElementEnd(a)"},
		{Event{Type: TextEvent, Text: "a\nb"}, `Text("a\nb")`},
		{Event{Type: DefinitionEvent, Name: "xml", Attrs: Attributes{"version": "1.0"}}, `Definition(xml version="1.0")`},
		{Event{Type: CommentEvent, Text: "c"}, `Comment("c")`},
		{Event{Type: EventType(100)}, "Invalid(100)"},
	}
	for _, tt := range eventTests {
		t.Run(tt.expected, func(t *testing.T) {
			test.String(t, tt.e.String(), tt.expected)
		})
	}
}

func TestRecorderCopies(t *testing.T) {
	r := &Recorder{}
	name := []byte("a")
	attrs := Attributes{"x": "1"}
	r.ElementStart(name, attrs)
	r.Text(name)

	name[0] = 'b'
	delete(attrs, "x")
	test.String(t, r.String(), `ElementStart(a x="1") Text("a")`)
}
