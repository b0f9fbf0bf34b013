package sax

import (
	"sort"
	"strconv"
	"strings"
)

// EventType determines the type of event, eg. an element start or a comment.
type EventType uint32

// EventType values.
const (
	DocumentStartEvent EventType = iota
	DocumentEndEvent
	ElementStartEvent
	ElementEndEvent
	TextEvent
	DefinitionEvent
	CommentEvent
)

// String returns the string representation of an EventType.
func (et EventType) String() string {
	switch et {
	case DocumentStartEvent:
		return "DocumentStart"
	case DocumentEndEvent:
		return "DocumentEnd"
	case ElementStartEvent:
		return "ElementStart"
	case ElementEndEvent:
		return "ElementEnd"
	case TextEvent:
		return "Text"
	case DefinitionEvent:
		return "Definition"
	case CommentEvent:
		return "Comment"
	}
	return "Invalid(" + strconv.Itoa(int(et)) + ")"
}

// Event is a copy of a single Handler call.
type Event struct {
	Type  EventType
	Name  string     // element or definition name
	Text  string     // text or comment content
	Attrs Attributes // element or definition attributes
}

// String returns a compact representation, eg. ElementStart(a x="1").
func (e Event) String() string {
	sb := strings.Builder{}
	sb.WriteString(e.Type.String())
	switch e.Type {
	case ElementStartEvent, DefinitionEvent:
		sb.WriteString("(")
		sb.WriteString(e.Name)
		keys := make([]string, 0, len(e.Attrs))
		for k := range e.Attrs {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			sb.WriteString(" " + k + "=" + strconv.Quote(e.Attrs[k]))
		}
		sb.WriteString(")")
	case ElementEndEvent:
		sb.WriteString("(" + e.Name + ")")
	case TextEvent, CommentEvent:
		sb.WriteString("(" + strconv.Quote(e.Text) + ")")
	}
	return sb.String()
}

////////////////////////////////////////////////////////////////

// Recorder is a Handler that keeps a copy of every event.
type Recorder struct {
	Events []Event
}

// String returns all events separated by spaces.
func (r *Recorder) String() string {
	ss := make([]string, len(r.Events))
	for i, e := range r.Events {
		ss[i] = e.String()
	}
	return strings.Join(ss, " ")
}

func (r *Recorder) DocumentStart() {
	r.Events = append(r.Events, Event{Type: DocumentStartEvent})
}

func (r *Recorder) DocumentEnd() {
	r.Events = append(r.Events, Event{Type: DocumentEndEvent})
}

func (r *Recorder) ElementStart(name []byte, attrs Attributes) {
	r.Events = append(r.Events, Event{Type: ElementStartEvent, Name: string(name), Attrs: copyAttributes(attrs)})
}

func (r *Recorder) ElementEnd(name []byte) {
	r.Events = append(r.Events, Event{Type: ElementEndEvent, Name: string(name)})
}

func (r *Recorder) Text(text []byte) {
	r.Events = append(r.Events, Event{Type: TextEvent, Text: string(text)})
}

func (r *Recorder) Definition(name []byte, attrs Attributes) {
	r.Events = append(r.Events, Event{Type: DefinitionEvent, Name: string(name), Attrs: copyAttributes(attrs)})
}

func (r *Recorder) Comment(comment []byte) {
	r.Events = append(r.Events, Event{Type: CommentEvent, Text: string(comment)})
}
