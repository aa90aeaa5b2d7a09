package cst

import (
	"fmt"
	"strings"

	"github.com/dhamidi/cstea/syntax"
)

// Style decorates the parts of a dump, for example with terminal colors.
// Nil functions leave their part unchanged.
type Style struct {
	Kind  func(string) string
	Range func(string) string
	Text  func(string) string
	Error func(string) string
}

func (s Style) apply(fn func(string) string, text string) string {
	if fn == nil {
		return text
	}
	return fn(text)
}

// Dump parses source and renders the whole tree followed by one line per
// error. Unlike Parse, the tree is rendered even when errors exist.
//
//	SOURCE_FILE@0..3
//	  IDENT@0..1 "a"
//	  ERROR@1..2
//	    ERROR_TOKEN@1..2 "+"
//	  IDENT@2..3 "b"
//	error 1..2: unexpected character '+'
func Dump(source string) string {
	return DumpStyled(source, Style{})
}

// DumpStyled is Dump with decorations applied.
func DumpStyled(source string, style Style) string {
	parse := syntax.ParseSourceFile(source)
	var sb strings.Builder
	dumpHandle(&sb, project(parse.Tree(), syntax.Root), 0, style)
	for _, err := range parse.Errors() {
		d := Diagnostic{err: err}
		fmt.Fprintf(&sb, "%s %s: %s\n",
			style.apply(style.Error, "error"),
			style.apply(style.Range, d.Range().String()),
			d.Message())
	}
	return sb.String()
}

// DumpHandle renders h and its descendants in the format of Dump.
func DumpHandle(h Handle) string {
	return DumpHandleStyled(h, Style{})
}

func DumpHandleStyled(h Handle, style Style) string {
	var sb strings.Builder
	dumpHandle(&sb, h, 0, style)
	return sb.String()
}

func dumpHandle(sb *strings.Builder, h Handle, depth int, style Style) {
	sb.WriteString(strings.Repeat("  ", depth))
	sb.WriteString(style.apply(style.Kind, h.Kind()))
	sb.WriteByte('@')
	sb.WriteString(style.apply(style.Range, h.Range().String()))

	switch h := h.(type) {
	case Token:
		sb.WriteByte(' ')
		sb.WriteString(style.apply(style.Text, fmt.Sprintf("%q", h.Text())))
		sb.WriteByte('\n')
	case Node:
		sb.WriteByte('\n')
		for _, child := range h.Children() {
			dumpHandle(sb, child, depth+1, style)
		}
	}
}
