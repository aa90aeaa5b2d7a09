// Package syntax parses a small s-expression notation into a lossless
// concrete syntax tree.
//
// # Notation
//
//	; a comment runs to the end of the line
//	(define greeting "hello")     ; LIST of IDENT and STRING
//	[1 2.5 -3]                    ; VECTOR of INT_NUMBER and FLOAT_NUMBER
//	{:name "tea" :cups 2}         ; MAP of KEYWORD/value pairs
//	'(quoted form)                ; QUOTED
//
// Identifiers match [A-Za-z_][A-Za-z0-9_-]*, optionally ending in ? or !.
// Any other character is reported as an error.
//
// # Trees
//
// Every byte of the input belongs to exactly one token, and every token,
// trivia included, is a child of some node. Concatenating the token texts
// in document order reproduces the input. The root is always a SOURCE_FILE
// node spanning the whole input.
//
// Parsing never fails outright: malformed input is wrapped in ERROR nodes
// and described by a SyntaxError, so a tree is available even when
// Parse.Errors is not empty.
//
// A Tree is an arena. Elements are addressed by ElementID and the tree is
// never modified after ParseSourceFile returns, so it may be shared freely
// between goroutines.
package syntax
