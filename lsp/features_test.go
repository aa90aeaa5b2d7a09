package lsp

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

func span(startLine, startChar, endLine, endChar protocol.UInteger) protocol.Range {
	return protocol.Range{
		Start: protocol.Position{Line: startLine, Character: startChar},
		End:   protocol.Position{Line: endLine, Character: endChar},
	}
}

func TestDiagnostics(t *testing.T) {
	got := Diagnostics("a+b")
	if len(got) != 1 {
		t.Fatalf("expected 1 diagnostic, got %d", len(got))
	}
	d := got[0]
	if d.Message != "unexpected character '+'" {
		t.Errorf("message = %q", d.Message)
	}
	if d.Range != span(0, 1, 0, 2) {
		t.Errorf("range = %+v", d.Range)
	}
	if d.Severity == nil || *d.Severity != protocol.DiagnosticSeverityError {
		t.Errorf("severity = %v", d.Severity)
	}
	if d.Source == nil || *d.Source != "cstea" {
		t.Errorf("source = %v", d.Source)
	}
}

func TestDiagnosticsCleanDocument(t *testing.T) {
	got := Diagnostics("(a b)")
	if got == nil {
		t.Fatal("clean document must yield an empty, non-nil slice")
	}
	if len(got) != 0 {
		t.Errorf("expected no diagnostics, got %+v", got)
	}
}

func TestDiagnosticsMultiline(t *testing.T) {
	got := Diagnostics("(a\n b")
	if len(got) != 1 {
		t.Fatalf("expected 1 diagnostic, got %d", len(got))
	}
	if got[0].Range != span(0, 0, 0, 1) {
		t.Errorf("range = %+v", got[0].Range)
	}
}

func TestHover(t *testing.T) {
	h := Hover("(abc def)", protocol.Position{Line: 0, Character: 2})
	if h == nil {
		t.Fatal("expected hover")
	}
	content, ok := h.Contents.(protocol.MarkupContent)
	if !ok {
		t.Fatalf("unexpected contents %T", h.Contents)
	}
	for _, want := range []string{"IDENT", "1..4", "1:2 to 1:5", "abc"} {
		if !strings.Contains(content.Value, want) {
			t.Errorf("hover %q does not mention %q", content.Value, want)
		}
	}
	if h.Range == nil || *h.Range != span(0, 1, 0, 4) {
		t.Errorf("range = %+v", h.Range)
	}
}

func TestHoverFailsClosed(t *testing.T) {
	if h := Hover("(abc", protocol.Position{Line: 0, Character: 2}); h != nil {
		t.Errorf("expected no hover on a document with errors, got %+v", h)
	}
}

type symbolOutline struct {
	Name     string
	Kind     protocol.SymbolKind
	Children []symbolOutline
}

func outlineSymbols(symbols []protocol.DocumentSymbol) []symbolOutline {
	var out []symbolOutline
	for _, s := range symbols {
		out = append(out, symbolOutline{
			Name:     s.Name,
			Kind:     s.Kind,
			Children: outlineSymbols(s.Children),
		})
	}
	return out
}

func TestSymbols(t *testing.T) {
	got := Symbols("(define x 1)\n[2 3.5] ; tail\n:k '(q)")
	want := []symbolOutline{
		{Name: "define", Kind: protocol.SymbolKindFunction, Children: []symbolOutline{
			{Name: "define", Kind: protocol.SymbolKindVariable},
			{Name: "x", Kind: protocol.SymbolKindVariable},
			{Name: "1", Kind: protocol.SymbolKindNumber},
		}},
		{Name: "2", Kind: protocol.SymbolKindArray, Children: []symbolOutline{
			{Name: "2", Kind: protocol.SymbolKindNumber},
			{Name: "3.5", Kind: protocol.SymbolKindNumber},
		}},
		{Name: ":k", Kind: protocol.SymbolKindKey},
		{Name: "QUOTED", Kind: protocol.SymbolKindNull, Children: []symbolOutline{
			{Name: "q", Kind: protocol.SymbolKindFunction, Children: []symbolOutline{
				{Name: "q", Kind: protocol.SymbolKindVariable},
			}},
		}},
	}
	if diff := cmp.Diff(want, outlineSymbols(got)); diff != "" {
		t.Errorf("symbols mismatch (-want +got):\n%s", diff)
	}

	if got[1].Range != span(1, 0, 1, 7) {
		t.Errorf("vector range = %+v", got[1].Range)
	}
}

func TestSymbolsFailClosed(t *testing.T) {
	if got := Symbols("(define x"); got != nil {
		t.Errorf("expected no symbols, got %+v", got)
	}
}

func TestSelectionRanges(t *testing.T) {
	text := "(a (bee c))"
	got := SelectionRanges(text, []protocol.Position{{Line: 0, Character: 5}})
	if len(got) != 1 {
		t.Fatalf("expected 1 selection range, got %d", len(got))
	}

	var chain []protocol.Range
	for r := &got[0]; r != nil; r = r.Parent {
		chain = append(chain, r.Range)
	}
	want := []protocol.Range{
		span(0, 4, 0, 7),
		span(0, 3, 0, 10),
		span(0, 0, 0, 11),
		span(0, 0, 0, 11),
	}
	if diff := cmp.Diff(want, chain); diff != "" {
		t.Errorf("selection chain mismatch (-want +got):\n%s", diff)
	}
}

func TestSelectionRangesFailClosed(t *testing.T) {
	if got := SelectionRanges("(a", []protocol.Position{{Line: 0, Character: 1}}); got != nil {
		t.Errorf("expected no selection ranges, got %+v", got)
	}
}
