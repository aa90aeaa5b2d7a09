package format

import (
	"io"

	"github.com/dhamidi/cstea/cst"
	"github.com/fatih/color"
)

// TextEncoder prints the tree in the indented dump format, or the
// diagnostics as name:line:column: message lines.
type TextEncoder struct {
	w    io.Writer
	opts options
}

func NewTextEncoder(w io.Writer, opts ...Option) *TextEncoder {
	return &TextEncoder{w: w, opts: buildOptions(opts)}
}

func (e *TextEncoder) Encode(source string, outcome cst.Outcome) error {
	root, ok := outcome.Root()
	if !ok {
		return writeDiagnostics(e.w, source, outcome, e.opts)
	}
	style := cst.Style{}
	if e.opts.color {
		style = ColorStyle()
	}
	_, err := io.WriteString(e.w, cst.DumpHandleStyled(root, style))
	return err
}

// ColorStyle colors dump output for terminals: kinds in cyan, ranges
// dimmed, token text in green and errors in red.
func ColorStyle() cst.Style {
	return cst.Style{
		Kind:  sprinter(color.FgCyan, color.Bold),
		Range: sprinter(color.FgHiBlack),
		Text:  sprinter(color.FgGreen),
		Error: sprinter(color.FgRed, color.Bold),
	}
}

func sprinter(attrs ...color.Attribute) func(string) string {
	c := color.New(attrs...)
	c.EnableColor()
	return func(s string) string {
		return c.Sprint(s)
	}
}
