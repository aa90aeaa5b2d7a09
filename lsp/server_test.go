package lsp

import (
	"testing"

	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

type notification struct {
	method string
	params any
}

func newContext(sent *[]notification) *glsp.Context {
	return &glsp.Context{
		Notify: func(method string, params any) {
			*sent = append(*sent, notification{method, params})
		},
	}
}

func lastDiagnostics(t *testing.T, sent []notification) protocol.PublishDiagnosticsParams {
	t.Helper()
	if len(sent) == 0 {
		t.Fatal("no notifications sent")
	}
	last := sent[len(sent)-1]
	if last.method != protocol.ServerTextDocumentPublishDiagnostics {
		t.Fatalf("unexpected notification %q", last.method)
	}
	params, ok := last.params.(protocol.PublishDiagnosticsParams)
	if !ok {
		t.Fatalf("unexpected params %T", last.params)
	}
	return params
}

func TestServerDocumentLifecycle(t *testing.T) {
	const uri = protocol.DocumentUri("file:///tmp/sample.cst")

	var sent []notification
	ctx := newContext(&sent)
	ls := NewServer("test")

	err := ls.textDocumentDidOpen(ctx, &protocol.DidOpenTextDocumentParams{
		TextDocument: protocol.TextDocumentItem{URI: uri, LanguageID: "cstea", Version: 1, Text: "(a b"},
	})
	if err != nil {
		t.Fatal(err)
	}
	if got := lastDiagnostics(t, sent); got.URI != uri || len(got.Diagnostics) != 1 {
		t.Fatalf("after open: %+v", got)
	}

	hover, err := ls.textDocumentHover(ctx, &protocol.HoverParams{
		TextDocumentPositionParams: protocol.TextDocumentPositionParams{
			TextDocument: protocol.TextDocumentIdentifier{URI: uri},
			Position:     protocol.Position{Line: 0, Character: 1},
		},
	})
	if err != nil || hover != nil {
		t.Fatalf("hover on broken document = %+v, %v", hover, err)
	}

	err = ls.textDocumentDidChange(ctx, &protocol.DidChangeTextDocumentParams{
		TextDocument: protocol.VersionedTextDocumentIdentifier{
			TextDocumentIdentifier: protocol.TextDocumentIdentifier{URI: uri},
			Version:                2,
		},
		ContentChanges: []any{protocol.TextDocumentContentChangeEventWhole{Text: "(abc b)"}},
	})
	if err != nil {
		t.Fatal(err)
	}
	if got := lastDiagnostics(t, sent); len(got.Diagnostics) != 0 {
		t.Fatalf("after change: %+v", got)
	}

	hover, err = ls.textDocumentHover(ctx, &protocol.HoverParams{
		TextDocumentPositionParams: protocol.TextDocumentPositionParams{
			TextDocument: protocol.TextDocumentIdentifier{URI: uri},
			Position:     protocol.Position{Line: 0, Character: 2},
		},
	})
	if err != nil || hover == nil {
		t.Fatalf("hover = %+v, %v", hover, err)
	}

	symbols, err := ls.textDocumentDocumentSymbol(ctx, &protocol.DocumentSymbolParams{
		TextDocument: protocol.TextDocumentIdentifier{URI: uri},
	})
	if err != nil {
		t.Fatal(err)
	}
	if list, ok := symbols.([]protocol.DocumentSymbol); !ok || len(list) != 1 || list[0].Name != "abc" {
		t.Errorf("symbols = %+v", symbols)
	}

	if err := ls.textDocumentDidClose(ctx, &protocol.DidCloseTextDocumentParams{
		TextDocument: protocol.TextDocumentIdentifier{URI: uri},
	}); err != nil {
		t.Fatal(err)
	}
	if got := lastDiagnostics(t, sent); len(got.Diagnostics) != 0 {
		t.Errorf("close must clear diagnostics: %+v", got)
	}
	if _, ok := ls.document(uri); ok {
		t.Error("document still tracked after close")
	}
}

func TestServerUnknownDocument(t *testing.T) {
	var sent []notification
	ls := NewServer("test")
	ranges, err := ls.textDocumentSelectionRange(newContext(&sent), &protocol.SelectionRangeParams{
		TextDocument: protocol.TextDocumentIdentifier{URI: "file:///nowhere"},
		Positions:    []protocol.Position{{Line: 0, Character: 0}},
	})
	if err != nil || ranges != nil {
		t.Errorf("selection ranges = %+v, %v", ranges, err)
	}
}
