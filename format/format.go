// Package format renders a cst.Outcome for people and programs: an
// indented text tree, JSON, YAML, or one tab-separated line per element.
package format

import (
	"fmt"
	"io"

	"github.com/dhamidi/cstea/cst"
)

// Encoder writes an outcome together with the source it was parsed from;
// the source is needed to turn offsets into line and column numbers.
type Encoder interface {
	Encode(source string, outcome cst.Outcome) error
}

// Formats lists the names accepted by NewEncoder.
var Formats = []string{"text", "json", "yaml", "line"}

type options struct {
	name      string
	positions bool
	color     bool
}

type Option func(*options)

// WithName sets the file name printed in front of diagnostics.
func WithName(name string) Option {
	return func(o *options) {
		o.name = name
	}
}

// WithPositions adds start and end line:column pairs to every element.
// Each position rescans the source, so this is quadratic in the worst case.
func WithPositions() Option {
	return func(o *options) {
		o.positions = true
	}
}

// WithColor enables terminal colors for the text format.
func WithColor(enabled bool) Option {
	return func(o *options) {
		o.color = enabled
	}
}

func buildOptions(opts []Option) options {
	o := options{name: "<input>"}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

func NewEncoder(format string, w io.Writer, opts ...Option) (Encoder, error) {
	switch format {
	case "text":
		return NewTextEncoder(w, opts...), nil
	case "json":
		return NewJSONEncoder(w, opts...), nil
	case "yaml":
		return NewYAMLEncoder(w, opts...), nil
	case "line":
		return NewLineEncoder(w, opts...), nil
	}
	return nil, fmt.Errorf("unknown format: %s (expected one of %v)", format, Formats)
}

// element is the serializable form of a handle shared by the JSON and
// YAML encoders.
type element struct {
	Kind     string        `json:"kind" yaml:"kind"`
	Start    int           `json:"start" yaml:"start"`
	End      int           `json:"end" yaml:"end"`
	From     *cst.Position `json:"from,omitempty" yaml:"from,omitempty"`
	To       *cst.Position `json:"to,omitempty" yaml:"to,omitempty"`
	Text     string        `json:"text,omitempty" yaml:"text,omitempty"`
	Children []*element    `json:"children,omitempty" yaml:"children,omitempty"`
}

type diagnostic struct {
	Start   int          `json:"start" yaml:"start"`
	End     int          `json:"end" yaml:"end"`
	From    cst.Position `json:"from" yaml:"from"`
	To      cst.Position `json:"to" yaml:"to"`
	Message string       `json:"message" yaml:"message"`
}

type document struct {
	Name   string       `json:"name" yaml:"name"`
	Root   *element     `json:"root,omitempty" yaml:"root,omitempty"`
	Errors []diagnostic `json:"errors,omitempty" yaml:"errors,omitempty"`
}

func buildDocument(source string, outcome cst.Outcome, o options) document {
	doc := document{Name: o.name}
	if root, ok := outcome.Root(); ok {
		doc.Root = buildElement(source, root, o)
		return doc
	}
	for _, d := range outcome.Diagnostics() {
		rng := d.Range()
		doc.Errors = append(doc.Errors, diagnostic{
			Start:   rng.Start(),
			End:     rng.End(),
			From:    rng.StartPosition(source),
			To:      rng.Position(source),
			Message: d.Message(),
		})
	}
	return doc
}

func buildElement(source string, h cst.Handle, o options) *element {
	rng := h.Range()
	el := &element{
		Kind:  h.Kind(),
		Start: rng.Start(),
		End:   rng.End(),
	}
	if o.positions {
		from, to := rng.StartPosition(source), rng.Position(source)
		el.From, el.To = &from, &to
	}
	switch h := h.(type) {
	case cst.Token:
		el.Text = h.Text()
	case cst.Node:
		for _, child := range h.Children() {
			el.Children = append(el.Children, buildElement(source, child, o))
		}
	}
	return el
}

// writeDiagnostics prints one name:line:column: message line per
// diagnostic, using the start of each range.
func writeDiagnostics(w io.Writer, source string, outcome cst.Outcome, o options) error {
	for _, d := range outcome.Diagnostics() {
		pos := d.Range().StartPosition(source)
		if _, err := fmt.Fprintf(w, "%s:%s: %s\n", o.name, pos, d.Message()); err != nil {
			return err
		}
	}
	return nil
}
