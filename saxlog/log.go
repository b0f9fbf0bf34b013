// Package saxlog logs the events of a sax.Parser with go-kit structured logging.
package saxlog // import "github.com/tdewolff/sax/saxlog"

import (
	"errors"
	"sort"

	"github.com/go-kit/kit/log"
	"github.com/go-kit/kit/log/level"
	"github.com/tdewolff/sax"
)

// Handler logs every event at debug level and forwards it to the next handler.
type Handler struct {
	logger log.Logger
	next   sax.Handler
}

// New returns a Handler logging to logger. A nil next ignores the events after logging them.
func New(logger log.Logger, next sax.Handler) *Handler {
	if next == nil {
		next = sax.NopHandler{}
	}
	return &Handler{
		logger: logger,
		next:   next,
	}
}

func (h *Handler) DocumentStart() {
	level.Debug(h.logger).Log("msg", "document start")
	h.next.DocumentStart()
}

func (h *Handler) DocumentEnd() {
	level.Debug(h.logger).Log("msg", "document end")
	h.next.DocumentEnd()
}

func (h *Handler) ElementStart(name []byte, attrs sax.Attributes) {
	level.Debug(h.logger).Log(attrKeyvals([]interface{}{"msg", "element start", "name", string(name)}, attrs)...)
	h.next.ElementStart(name, attrs)
}

func (h *Handler) ElementEnd(name []byte) {
	level.Debug(h.logger).Log("msg", "element end", "name", string(name))
	h.next.ElementEnd(name)
}

func (h *Handler) Text(text []byte) {
	level.Debug(h.logger).Log("msg", "text", "text", string(text))
	h.next.Text(text)
}

func (h *Handler) Definition(name []byte, attrs sax.Attributes) {
	level.Debug(h.logger).Log(attrKeyvals([]interface{}{"msg", "definition", "name", string(name)}, attrs)...)
	h.next.Definition(name, attrs)
}

func (h *Handler) Comment(comment []byte) {
	level.Debug(h.logger).Log("msg", "comment", "text", string(comment))
	h.next.Comment(comment)
}

// attrKeyvals appends the attributes sorted by name as attr.<name> keys.
func attrKeyvals(keyvals []interface{}, attrs sax.Attributes) []interface{} {
	names := make([]string, 0, len(attrs))
	for name := range attrs {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		keyvals = append(keyvals, "attr."+name, attrs[name])
	}
	return keyvals
}

// Parse runs p.Parse and logs its outcome.
func Parse(logger log.Logger, p *sax.Parser) error {
	err := p.Parse()
	if err != nil {
		var perr *sax.Error
		if errors.As(err, &perr) {
			level.Error(logger).Log(
				"msg", "parse failed",
				"err", perr.Message,
				"line", perr.Line,
				"column", perr.Column,
			)
		} else {
			level.Error(logger).Log("msg", "parse failed", "err", err)
		}
		return err
	}

	line, col := p.Position()
	if p.Stopped() {
		level.Info(logger).Log("msg", "parse stopped", "line", line, "column", col)
	} else {
		level.Debug(logger).Log("msg", "parse done", "line", line, "column", col)
	}
	return nil
}
