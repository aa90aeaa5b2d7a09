package format

import (
	"fmt"
	"io"
	"strings"

	"github.com/dhamidi/cstea/cst"
)

// LineEncoder prints one tab-separated line per element:
//
//	depth	kind	start	end	line:column	text
//
// The position is that of the element's start. Nodes leave text empty;
// token text is quoted. Diagnostics use the text format.
type LineEncoder struct {
	w      io.Writer
	opts   options
	source string
}

func NewLineEncoder(w io.Writer, opts ...Option) *LineEncoder {
	return &LineEncoder{w: w, opts: buildOptions(opts)}
}

func (e *LineEncoder) Encode(source string, outcome cst.Outcome) error {
	root, ok := outcome.Root()
	if !ok {
		return writeDiagnostics(e.w, source, outcome, e.opts)
	}
	e.source = source
	text, err := e.MarshalText(root)
	if err != nil {
		return err
	}
	_, err = e.w.Write(text)
	return err
}

func (e *LineEncoder) MarshalText(root cst.Node) ([]byte, error) {
	var sb strings.Builder
	e.writeHandle(&sb, root, 0)
	return []byte(sb.String()), nil
}

func (e *LineEncoder) writeHandle(sb *strings.Builder, h cst.Handle, depth int) {
	rng := h.Range()
	text := ""
	if h.IsToken() {
		text = fmt.Sprintf("%q", h.Text())
	}
	fmt.Fprintf(sb, "%d\t%s\t%d\t%d\t%s\t%s\n",
		depth,
		h.Kind(),
		rng.Start(),
		rng.End(),
		rng.StartPosition(e.source),
		text,
	)
	for _, child := range h.Children() {
		e.writeHandle(sb, child, depth+1)
	}
}
