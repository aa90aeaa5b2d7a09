package syntax

import (
	"fmt"
	"unicode/utf8"
)

// TextRange is a half-open byte interval [Start, End) into the source text.
type TextRange struct {
	Start int
	End   int
}

func (r TextRange) String() string {
	return fmt.Sprintf("%d..%d", r.Start, r.End)
}

// Token is a single lexeme. Err is set when the lexer had to accept
// malformed input to keep the token stream lossless.
type Token struct {
	Kind  Kind
	Range TextRange
	Err   string
}

type Lexer struct {
	input string
	pos   int
}

func NewLexer(input string) *Lexer {
	return &Lexer{input: input}
}

func (l *Lexer) peek() byte {
	if l.pos >= len(l.input) {
		return 0
	}
	return l.input[l.pos]
}

func (l *Lexer) peekN(n int) byte {
	if l.pos+n >= len(l.input) {
		return 0
	}
	return l.input[l.pos+n]
}

func (l *Lexer) token(kind Kind, start int) Token {
	return Token{Kind: kind, Range: TextRange{Start: start, End: l.pos}}
}

// NextToken returns the next token, or an EOF token once the input is
// exhausted. Every byte of the input ends up in exactly one token.
func (l *Lexer) NextToken() Token {
	start := l.pos
	if l.pos >= len(l.input) {
		return l.token(KindEOF, start)
	}

	ch := l.peek()
	switch {
	case isSpace(ch):
		for isSpace(l.peek()) {
			l.pos++
		}
		return l.token(KindWhitespace, start)
	case ch == ';':
		for l.pos < len(l.input) && l.peek() != '\n' {
			l.pos++
		}
		return l.token(KindComment, start)
	case ch == '"':
		return l.scanString(start)
	case ch == ':':
		return l.scanKeyword(start)
	case isDigit(ch), ch == '-' && isDigit(l.peekN(1)):
		return l.scanNumber(start)
	case isIdentStart(ch):
		l.scanIdentTail()
		return l.token(KindIdent, start)
	}

	l.pos++
	switch ch {
	case '\'':
		return l.token(KindQuote, start)
	case '(':
		return l.token(KindLParen, start)
	case ')':
		return l.token(KindRParen, start)
	case '[':
		return l.token(KindLBrack, start)
	case ']':
		return l.token(KindRBrack, start)
	case '{':
		return l.token(KindLCurly, start)
	case '}':
		return l.token(KindRCurly, start)
	}

	l.pos = start
	return l.scanErrorToken(start)
}

func (l *Lexer) scanString(start int) Token {
	l.pos++ // opening quote
	for l.pos < len(l.input) {
		switch l.peek() {
		case '\\':
			l.pos += 2
			if l.pos > len(l.input) {
				l.pos = len(l.input)
			}
		case '"':
			l.pos++
			return l.token(KindString, start)
		default:
			l.pos++
		}
	}
	tok := l.token(KindString, start)
	tok.Err = "unterminated string literal"
	return tok
}

func (l *Lexer) scanKeyword(start int) Token {
	l.pos++ // colon
	if !isIdentStart(l.peek()) {
		tok := l.token(KindErrorToken, start)
		tok.Err = "expected a keyword name after ':'"
		return tok
	}
	l.scanIdentTail()
	return l.token(KindKeyword, start)
}

func (l *Lexer) scanNumber(start int) Token {
	if l.peek() == '-' {
		l.pos++
	}
	for isDigit(l.peek()) {
		l.pos++
	}
	if l.peek() == '.' && isDigit(l.peekN(1)) {
		l.pos++
		for isDigit(l.peek()) {
			l.pos++
		}
		return l.token(KindFloatNumber, start)
	}
	return l.token(KindIntNumber, start)
}

func (l *Lexer) scanIdentTail() {
	l.pos++
	for isIdentPart(l.peek()) {
		l.pos++
	}
	if c := l.peek(); c == '?' || c == '!' {
		l.pos++
	}
}

// scanErrorToken consumes one complete UTF-8 sequence so that error tokens
// never split a character.
func (l *Lexer) scanErrorToken(start int) Token {
	r, size := utf8.DecodeRuneInString(l.input[l.pos:])
	l.pos += size
	tok := l.token(KindErrorToken, start)
	if r == utf8.RuneError && size <= 1 {
		tok.Err = fmt.Sprintf("unexpected byte %q", l.input[start:l.pos])
	} else {
		tok.Err = fmt.Sprintf("unexpected character %q", r)
	}
	return tok
}

func isSpace(ch byte) bool {
	return ch == ' ' || ch == '\t' || ch == '\r' || ch == '\n'
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

func isIdentStart(ch byte) bool {
	return ch == '_' || (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}

func isIdentPart(ch byte) bool {
	return isIdentStart(ch) || isDigit(ch) || ch == '-'
}
