package syntax

import "fmt"

// SyntaxError is a problem found while parsing. Message wording is owned by
// this package.
type SyntaxError struct {
	Range   TextRange
	Message string
}

func (e SyntaxError) Error() string {
	return e.Message
}

// Parse is the result of parsing one source string: a tree, which is always
// built, and the errors found on the way.
type Parse struct {
	tree   *Tree
	errors []SyntaxError
}

func (p *Parse) Tree() *Tree {
	return p.tree
}

func (p *Parse) Errors() []SyntaxError {
	return p.errors
}

// OK reports whether the source parsed without errors.
func (p *Parse) OK() bool {
	return len(p.errors) == 0
}

type parser struct {
	tokens []Token
	pos    int
	b      *builder
	errors []SyntaxError
}

// ParseSourceFile parses text into a lossless tree rooted at a SOURCE_FILE
// node. Malformed input produces ERROR nodes and errors, never a panic.
func ParseSourceFile(text string) *Parse {
	p := &parser{b: newBuilder(text)}
	p.tokenize(text)
	p.parseSourceFile()
	return &Parse{tree: p.b.finish(), errors: p.errors}
}

func (p *parser) tokenize(text string) {
	lexer := NewLexer(text)
	for {
		tok := lexer.NextToken()
		p.tokens = append(p.tokens, tok)
		if tok.Kind == KindEOF {
			break
		}
	}
}

func (p *parser) current() Token {
	return p.tokens[p.pos]
}

func (p *parser) at(kind Kind) bool {
	return p.current().Kind == kind
}

// bump moves the current token into the innermost open node.
func (p *parser) bump() Token {
	tok := p.current()
	if tok.Kind == KindEOF {
		return tok
	}
	if tok.Err != "" {
		p.errors = append(p.errors, SyntaxError{Range: tok.Range, Message: tok.Err})
	}
	p.b.token(tok)
	p.pos++
	return tok
}

func (p *parser) skipTrivia() {
	for p.current().Kind.IsTrivia() {
		p.bump()
	}
}

func (p *parser) errorf(rng TextRange, format string, args ...any) {
	p.errors = append(p.errors, SyntaxError{Range: rng, Message: fmt.Sprintf(format, args...)})
}

func (p *parser) parseSourceFile() {
	p.b.startNode(KindSourceFile)
	for {
		p.skipTrivia()
		tok := p.current()
		if tok.Kind == KindEOF {
			break
		}
		if isCloser(tok.Kind) {
			p.b.startNode(KindError)
			p.errorf(tok.Range, "unexpected closing delimiter `%s`", delimiterText(tok.Kind))
			p.bump()
			p.b.finishNode()
			continue
		}
		p.parseForm()
	}
	p.b.finishNode()
}

// parseForm parses exactly one form starting at the current, non-trivia,
// non-closing token.
func (p *parser) parseForm() {
	switch p.current().Kind {
	case KindIdent, KindKeyword, KindIntNumber, KindFloatNumber, KindString:
		p.bump()
	case KindLParen:
		p.parseSequence(KindList)
	case KindLBrack:
		p.parseSequence(KindVector)
	case KindLCurly:
		p.parseSequence(KindMap)
	case KindQuote:
		p.parseQuoted()
	default:
		p.b.startNode(KindError)
		p.bump()
		p.b.finishNode()
	}
}

func (p *parser) parseSequence(kind Kind) {
	p.b.startNode(kind)
	open := p.bump()
	closer := closerFor(open.Kind)

	forms := 0
	for {
		p.skipTrivia()
		tok := p.current()
		if tok.Kind == KindEOF {
			p.errorf(open.Range, "unclosed delimiter `%s`", delimiterText(open.Kind))
			break
		}
		if tok.Kind == closer {
			p.bump()
			break
		}
		if isCloser(tok.Kind) {
			p.b.startNode(KindError)
			p.errorf(tok.Range, "mismatched closing delimiter: expected `%s`, found `%s`",
				delimiterText(closer), delimiterText(tok.Kind))
			p.bump()
			p.b.finishNode()
			continue
		}
		p.parseForm()
		forms++
	}

	if kind == KindMap && forms%2 != 0 {
		p.errorf(TextRange{Start: open.Range.Start, End: p.b.pos},
			"map literal must contain an even number of forms, found %d", forms)
	}
	p.b.finishNode()
}

func (p *parser) parseQuoted() {
	p.b.startNode(KindQuoted)
	quote := p.bump()
	p.skipTrivia()
	if k := p.current().Kind; k == KindEOF || isCloser(k) {
		p.errorf(quote.Range, "expected a form after quote")
	} else {
		p.parseForm()
	}
	p.b.finishNode()
}
