package cst

import (
	"fmt"
	"strings"
)

// Range is a half-open byte interval [start, end) into the source text a
// tree was parsed from.
type Range struct {
	start int
	end   int
}

// NewRange returns the range [start, end). Negative offsets are raised to
// zero and end is raised to start, so every Range satisfies
// 0 <= Start() <= End().
func NewRange(start, end int) Range {
	if start < 0 {
		start = 0
	}
	if end < start {
		end = start
	}
	return Range{start: start, end: end}
}

func (r Range) Start() int { return r.start }
func (r Range) End() int   { return r.end }
func (r Range) Len() int   { return r.end - r.start }

// Contains reports whether other lies entirely within r.
func (r Range) Contains(other Range) bool {
	return r.start <= other.start && other.end <= r.end
}

// ContainsOffset reports whether offset lies in [start, end]. The end is
// inclusive so that a cursor placed right after the last byte still hits.
func (r Range) ContainsOffset(offset int) bool {
	return r.start <= offset && offset <= r.end
}

func (r Range) String() string {
	return fmt.Sprintf("%d..%d", r.start, r.end)
}

// Line returns the 1-based line of the range's end offset in source.
func (r Range) Line(source string) int {
	return OffsetPosition(source, r.end).Line
}

// Column returns the 1-based column of the range's end offset in source.
func (r Range) Column(source string) int {
	return OffsetPosition(source, r.end).Column
}

// Position returns the line and column of the range's end offset.
func (r Range) Position(source string) Position {
	return OffsetPosition(source, r.end)
}

// StartPosition returns the line and column of the range's start offset.
func (r Range) StartPosition(source string) Position {
	return OffsetPosition(source, r.start)
}

// Position is a 1-based line and column. Columns count bytes.
type Position struct {
	Line   int `json:"line" yaml:"line"`
	Column int `json:"column" yaml:"column"`
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// OffsetPosition converts a byte offset into a 1-based line and column,
// scanning source from the beginning on every call.
//
// The column is that of the byte at offset: the first byte of a line is
// column 1, and an offset sitting on a '\n' belongs to the line that the
// newline terminates. Offsets past the end of source are clamped to
// len(source); the result is only meaningful for the text the offsets
// were computed against.
func OffsetPosition(source string, offset int) Position {
	if offset > len(source) {
		offset = len(source)
	}
	if offset < 0 {
		offset = 0
	}
	before := source[:offset]
	line := strings.Count(before, "\n") + 1
	// LastIndexByte is -1 on the first line, which makes offset 0 column 1.
	column := offset - strings.LastIndexByte(before, '\n')
	return Position{Line: line, Column: column}
}
