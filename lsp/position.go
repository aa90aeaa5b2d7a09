package lsp

import (
	"strings"
	"unicode/utf16"
	"unicode/utf8"

	"github.com/dhamidi/cstea/cst"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

// toProtocolPosition converts a byte offset to an LSP position: 0-based
// line and 0-based character counted in UTF-16 code units.
func toProtocolPosition(source string, offset int) protocol.Position {
	pos := cst.OffsetPosition(source, offset)
	if offset > len(source) {
		offset = len(source)
	}
	lineStart := offset - (pos.Column - 1)
	character := 0
	for _, r := range source[lineStart:offset] {
		character += utf16RuneLen(r)
	}
	return protocol.Position{
		Line:      protocol.UInteger(pos.Line - 1),
		Character: protocol.UInteger(character),
	}
}

func toProtocolRange(source string, r cst.Range) protocol.Range {
	return protocol.Range{
		Start: toProtocolPosition(source, r.Start()),
		End:   toProtocolPosition(source, r.End()),
	}
}

// toOffset converts an LSP position back to a byte offset, clamping
// positions past the end of a line to the line's end and positions past
// the last line to the end of the source. Position.IndexIn from glsp
// returns 0 for the latter.
func toOffset(source string, pos protocol.Position) int {
	offset := 0
	for line := protocol.UInteger(0); line < pos.Line; line++ {
		next := strings.IndexByte(source[offset:], '\n')
		if next < 0 {
			return len(source)
		}
		offset += next + 1
	}

	units := protocol.UInteger(0)
	for offset < len(source) && units < pos.Character {
		r, size := utf8.DecodeRuneInString(source[offset:])
		if r == '\n' {
			break
		}
		units += protocol.UInteger(utf16RuneLen(r))
		offset += size
	}
	return offset
}

func utf16RuneLen(r rune) int {
	if n := utf16.RuneLen(r); n > 0 {
		return n
	}
	return 1
}
