// Package sax is a streaming, event-driven markup tokenizer. It reads a document byte by byte and reports definitions, elements, attributes, text and comments to a Handler without building a tree.
//
// A document must start with a definition tag such as <?xml version="1.0"?>. Names consist of ASCII letters, digits, underscores and colons, attribute values are always double-quoted and have no escaping.
package sax // import "github.com/tdewolff/sax"

import (
	"fmt"
	"io"
)

// Parser is the state of the tokenizer. A Parser must not be used by more than one goroutine at a time.
type Parser struct {
	h   Handler
	src io.Reader
	r   io.ByteReader

	state State
	stop  bool
	c     byte
	pos   position

	ctx     elementContext
	text    []byte
	comment []byte
}

// NewParser returns a new Parser that sends events to h and reads from r. A nil h ignores all events, a nil r leaves the parser unbound.
func NewParser(h Handler, r io.Reader) *Parser {
	if h == nil {
		h = NopHandler{}
	}
	p := &Parser{
		h:       h,
		ctx:     newElementContext(),
		text:    make([]byte, 0, 1024),
		comment: make([]byte, 0, 128),
	}
	p.Reset()
	p.Bind(r)
	return p
}

// Bind sets the source the parser reads from. The automaton state is untouched, so a document may be split over several sources.
// Readers that do not implement io.ByteReader are wrapped by NewReader, which never reads past the current character, so the unread remainder stays in r.
func (p *Parser) Bind(r io.Reader) *Parser {
	p.src, p.r = r, nil
	if r != nil {
		p.r = NewReader(r)
	}
	return p
}

// Reader returns the bound source as passed to Bind, or nil.
func (p *Parser) Reader() io.Reader {
	return p.src
}

// Stop requests the parser to return from Parse after the current character. It is meant to be called from a Handler.
// The next call to Parse continues with the following character and does not fire DocumentStart again.
func (p *Parser) Stop() {
	p.stop = true
}

// Stopped returns true when the last call to Parse returned because of Stop. A Stop during DocumentEnd has no effect.
func (p *Parser) Stopped() bool {
	return p.stop
}

// Reset returns the parser to its initial state so that a new document can be parsed. The bound source is kept.
func (p *Parser) Reset() {
	p.state = stateStart
	p.stop = false
	p.ctx.clear()
	p.text = p.text[:0]
	p.comment = p.comment[:0]
	p.pos.reset()
}

// Position returns the line and column of the last consumed character.
func (p *Parser) Position() (int, int) {
	return p.pos.line, p.pos.col
}

// Parse reads characters from the bound source until its end, an error or a call to Stop.
// At a clean end of the data DocumentEnd is fired, also when a construct is left unfinished; its data is dropped.
func (p *Parser) Parse() error {
	if p.r == nil {
		return newError(ErrBadStream, "no source bound", nil)
	}
	if !p.stop {
		p.h.DocumentStart()
	}
	p.stop = false
	for !p.stop {
		c, err := p.r.ReadByte()
		if err == io.EOF {
			p.h.DocumentEnd()
			p.stop = false
			return nil
		} else if err != nil {
			e := newError(ErrBadStream, err.Error(), &p.pos)
			e.Err = err
			return e
		}
		p.pos.advance(c)
		if err := p.step(c); err != nil {
			return err
		}
	}
	return nil
}

// step advances the automaton by one character and executes the action of the new state.
func (p *Parser) step(c byte) error {
	next := transition(p.state, Classify(c))
	if next == stateInvalid {
		return newError(ErrParsing, fmt.Sprintf("unexpected %q", c), &p.pos)
	}
	p.state = next
	p.c = c
	return p.act()
}

// act executes the action of the current state. Fictive states redirect the automaton themselves.
func (p *Parser) act() error {
	switch p.state {
	case stateName:
		p.ctx.name = append(p.ctx.name, p.c)
	case stateAttrName:
		p.ctx.attrName = append(p.ctx.attrName, p.c)
	case stateAttrValue:
		p.ctx.attrValue = append(p.ctx.attrValue, p.c)
	case stateAttrEnd:
		p.ctx.storeAttribute()
	case stateDefinitionOpen:
		p.ctx.isDefinition = true
	case stateDefinitionClose:
		if !p.ctx.isDefinition {
			return newError(ErrCloseStyleTag, "'?>' closes a tag that is not a definition", &p.pos)
		}
	case stateEndTagOpen:
		if p.ctx.isDefinition {
			return newError(ErrCloseStyleTag, "definition used as end tag", &p.pos)
		}
		p.ctx.isClosingTag = true
	case stateSelfClose:
		if p.ctx.isDefinition {
			return newError(ErrCloseStyleTag, "self-closing definition", &p.pos)
		} else if p.ctx.isClosingTag {
			return newError(ErrClosingTagWithNoBody, "", &p.pos)
		}
		p.ctx.isSelfClosing = true
	case stateTagEnd:
		return p.tagEnd()
	case stateText:
		p.text = append(p.text, p.c)
	case stateTextEnd:
		p.h.Text(p.text)
		p.text = p.text[:0]
		p.state = stateTagOpen
	case stateComment:
		p.comment = append(p.comment, p.c)
	case stateCommentDashRestore:
		p.comment = append(p.comment, '-', p.c)
		p.state = stateComment
	case stateCommentDashesRestore:
		p.comment = append(p.comment, '-', '-', p.c)
		p.state = stateComment
	case stateCommentDashExtra:
		p.comment = append(p.comment, '-')
		p.state = stateCommentDashDash
	case stateCommentEnd:
		p.h.Comment(p.comment)
		p.comment = p.comment[:0]
		p.state = stateScan
	}
	return nil
}

func (p *Parser) tagEnd() error {
	ctx := &p.ctx
	if ctx.isDefinition {
		p.h.Definition(ctx.name, ctx.attrs)
	} else if ctx.isClosingTag {
		if len(ctx.attrs) != 0 {
			return newError(ErrClosingTagWithAttributes, fmt.Sprintf("</%s>", ctx.name), &p.pos)
		}
		p.h.ElementEnd(ctx.name)
	} else {
		p.h.ElementStart(ctx.name, ctx.attrs)
		if ctx.isSelfClosing {
			p.h.ElementEnd(ctx.name)
		}
	}
	ctx.clear()
	p.state = stateScan
	return nil
}
