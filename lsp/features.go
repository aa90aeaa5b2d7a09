package lsp

import (
	"fmt"

	"github.com/dhamidi/cstea/cst"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

var diagnosticSource = lsName

// Diagnostics converts the parse errors of text into LSP diagnostics. A
// clean document yields an empty, non-nil slice so that publishing it
// clears earlier errors.
func Diagnostics(text string) []protocol.Diagnostic {
	outcome := cst.Parse(text)
	diagnostics := []protocol.Diagnostic{}
	severity := protocol.DiagnosticSeverityError
	for _, d := range outcome.Diagnostics() {
		diagnostics = append(diagnostics, protocol.Diagnostic{
			Range:    toProtocolRange(text, d.Range()),
			Severity: &severity,
			Source:   &diagnosticSource,
			Message:  d.Message(),
		})
	}
	return diagnostics
}

// Hover describes the deepest element under pos. Nothing is returned while
// the document has parse errors.
func Hover(text string, pos protocol.Position) *protocol.Hover {
	root, ok := cst.Parse(text).Root()
	if !ok {
		return nil
	}
	h, ok := cst.Covering(root, toOffset(text, pos))
	if !ok {
		return nil
	}

	rng := h.Range()
	value := fmt.Sprintf("**%s** `%s`\n\n%s to %s",
		h.Kind(), rng, rng.StartPosition(text), rng.Position(text))
	if tok, ok := h.(cst.Token); ok && !tok.IsTrivia() {
		value += fmt.Sprintf("\n\n```\n%s\n```", tok.Text())
	}

	protocolRange := toProtocolRange(text, rng)
	return &protocol.Hover{
		Contents: protocol.MarkupContent{
			Kind:  protocol.MarkupKindMarkdown,
			Value: value,
		},
		Range: &protocolRange,
	}
}

// Symbols returns one symbol per top-level form, with nested forms as
// children.
func Symbols(text string) []protocol.DocumentSymbol {
	root, ok := cst.Parse(text).Root()
	if !ok {
		return nil
	}
	return childSymbols(text, root)
}

func childSymbols(text string, node cst.Node) []protocol.DocumentSymbol {
	var symbols []protocol.DocumentSymbol
	for _, child := range node.Children() {
		switch child := child.(type) {
		case cst.Token:
			if child.IsTrivia() || isPunctuation(child.Kind()) {
				continue
			}
			symbols = append(symbols, newSymbol(text, child, child.Text(), nil))
		case cst.Node:
			symbols = append(symbols, newSymbol(text, child, formName(child), childSymbols(text, child)))
		}
	}
	return symbols
}

func newSymbol(text string, h cst.Handle, name string, children []protocol.DocumentSymbol) protocol.DocumentSymbol {
	rng := toProtocolRange(text, h.Range())
	detail := h.Kind()
	return protocol.DocumentSymbol{
		Name:           name,
		Detail:         &detail,
		Kind:           symbolKind(h.Kind()),
		Range:          rng,
		SelectionRange: rng,
		Children:       children,
	}
}

// formName names a compound form after its first non-trivia atom, the way
// (define ...) reads as "define".
func formName(node cst.Node) string {
	for _, child := range node.Children() {
		tok, ok := child.(cst.Token)
		if !ok {
			break
		}
		if tok.IsTrivia() || isPunctuation(tok.Kind()) {
			continue
		}
		return tok.Text()
	}
	return node.Kind()
}

func isPunctuation(kind string) bool {
	switch kind {
	case "QUOTE", "L_PAREN", "R_PAREN", "L_BRACK", "R_BRACK", "L_CURLY", "R_CURLY":
		return true
	}
	return false
}

func symbolKind(kind string) protocol.SymbolKind {
	switch kind {
	case "LIST":
		return protocol.SymbolKindFunction
	case "VECTOR":
		return protocol.SymbolKindArray
	case "MAP":
		return protocol.SymbolKindObject
	case "STRING":
		return protocol.SymbolKindString
	case "INT_NUMBER", "FLOAT_NUMBER":
		return protocol.SymbolKindNumber
	case "KEYWORD":
		return protocol.SymbolKindKey
	case "IDENT":
		return protocol.SymbolKindVariable
	}
	return protocol.SymbolKindNull
}

// SelectionRanges returns, for each position, the chain of ranges from the
// deepest covering element out to the whole document.
func SelectionRanges(text string, positions []protocol.Position) []protocol.SelectionRange {
	root, ok := cst.Parse(text).Root()
	if !ok {
		return nil
	}
	ranges := make([]protocol.SelectionRange, 0, len(positions))
	for _, pos := range positions {
		var current *protocol.SelectionRange
		for _, h := range cst.Ancestors(root, toOffset(text, pos)) {
			current = &protocol.SelectionRange{
				Range:  toProtocolRange(text, h.Range()),
				Parent: current,
			}
		}
		if current == nil {
			current = &protocol.SelectionRange{Range: toProtocolRange(text, root.Range())}
		}
		ranges = append(ranges, *current)
	}
	return ranges
}
