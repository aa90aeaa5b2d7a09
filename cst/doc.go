// Package cst exposes a parsed concrete syntax tree through narrow,
// read-only handles that can be handed to consumers outside the parser:
// editors, linters, and the browser front end.
//
// # Overview
//
//	┌─────────────┐     ┌─────────────┐     ┌──────────────────────┐
//	│   source    │────▶│   syntax    │────▶│  cst.Parse           │
//	│   (text)    │     │ (tree+errs) │     │  Outcome: Node | []D │
//	└─────────────┘     └─────────────┘     └──────────────────────┘
//	                                                   │
//	                                                   ▼
//	                                        Handle.Children() on demand
//
// Parse runs the parser once. If the parser reports no errors the Outcome
// holds the root Node; otherwise it holds every Diagnostic and no tree at
// all. Callers branch on Outcome.Root and never see a partial tree.
//
// # Handles
//
// A Handle is either a Node or a Token. Both are small values holding a
// pointer to the shared, immutable tree and an index into it. Children are
// projected one level at a time, so walking a tree costs nothing for the
// parts the consumer never visits.
//
// # Positions
//
// Ranges are byte offsets. Range.Line and Range.Column convert the end of
// a range into a 1-based position by rescanning the source text passed
// in, which must be the text the tree was parsed from. See OffsetPosition
// for the column convention.
package cst
