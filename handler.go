package sax

// Attributes maps attribute names to values. For duplicate names the first occurrence wins.
type Attributes map[string]string

// Handler receives the events of a Parser. Events are delivered synchronously and in input order.
//
// Byte slices passed to a Handler are only valid during the call, the parser reuses them for the next construct. The same holds for Attributes, which is cleared after the event.
type Handler interface {
	DocumentStart()
	DocumentEnd()
	ElementStart(name []byte, attrs Attributes)
	ElementEnd(name []byte)
	Text(text []byte)
	Definition(name []byte, attrs Attributes)
	Comment(comment []byte)
}

// NopHandler ignores all events. Embed it to implement a subset of Handler.
type NopHandler struct{}

func (NopHandler) DocumentStart() {}
func (NopHandler) DocumentEnd() {}
func (NopHandler) ElementStart([]byte, Attributes) {}
func (NopHandler) ElementEnd([]byte) {}
func (NopHandler) Text([]byte) {}
func (NopHandler) Definition([]byte, Attributes) {}
func (NopHandler) Comment([]byte) {}

// Handlers is a Handler built from independent functions. Nil functions ignore their event.
type Handlers struct {
	OnDocumentStart func()
	OnDocumentEnd   func()
	OnElementStart  func(name []byte, attrs Attributes)
	OnElementEnd    func(name []byte)
	OnText          func(text []byte)
	OnDefinition    func(name []byte, attrs Attributes)
	OnComment       func(comment []byte)
}

func (h Handlers) DocumentStart() {
	if h.OnDocumentStart != nil {
		h.OnDocumentStart()
	}
}

func (h Handlers) DocumentEnd() {
	if h.OnDocumentEnd != nil {
		h.OnDocumentEnd()
	}
}

func (h Handlers) ElementStart(name []byte, attrs Attributes) {
	if h.OnElementStart != nil {
		h.OnElementStart(name, attrs)
	}
}

func (h Handlers) ElementEnd(name []byte) {
	if h.OnElementEnd != nil {
		h.OnElementEnd(name)
	}
}

func (h Handlers) Text(text []byte) {
	if h.OnText != nil {
		h.OnText(text)
	}
}

func (h Handlers) Definition(name []byte, attrs Attributes) {
	if h.OnDefinition != nil {
		h.OnDefinition(name, attrs)
	}
}

func (h Handlers) Comment(comment []byte) {
	if h.OnComment != nil {
		h.OnComment(comment)
	}
}
