package syntax

// Kind is the syntactic category of a tree element. Tokens and nodes share
// one enumeration so that a single tag identifies any element.
type Kind uint16

const (
	KindUnknown Kind = iota

	// Trivia
	KindWhitespace
	KindComment

	// Atoms
	KindIdent
	KindKeyword
	KindIntNumber
	KindFloatNumber
	KindString

	// Punctuation
	KindQuote
	KindLParen
	KindRParen
	KindLBrack
	KindRBrack
	KindLCurly
	KindRCurly

	KindErrorToken
	KindEOF

	// Nodes
	KindSourceFile
	KindList
	KindVector
	KindMap
	KindQuoted
	KindError
)

var kindNames = map[Kind]string{
	KindWhitespace:  "WHITESPACE",
	KindComment:     "COMMENT",
	KindIdent:       "IDENT",
	KindKeyword:     "KEYWORD",
	KindIntNumber:   "INT_NUMBER",
	KindFloatNumber: "FLOAT_NUMBER",
	KindString:      "STRING",
	KindQuote:       "QUOTE",
	KindLParen:      "L_PAREN",
	KindRParen:      "R_PAREN",
	KindLBrack:      "L_BRACK",
	KindRBrack:      "R_BRACK",
	KindLCurly:      "L_CURLY",
	KindRCurly:      "R_CURLY",
	KindErrorToken:  "ERROR_TOKEN",
	KindEOF:         "EOF",
	KindSourceFile:  "SOURCE_FILE",
	KindList:        "LIST",
	KindVector:      "VECTOR",
	KindMap:         "MAP",
	KindQuoted:      "QUOTED",
	KindError:       "ERROR",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "UNKNOWN"
}

// IsTrivia reports whether tokens of this kind carry no meaning for the
// grammar.
func (k Kind) IsTrivia() bool {
	return k == KindWhitespace || k == KindComment
}

// IsNode reports whether elements of this kind are interior nodes.
func (k Kind) IsNode() bool {
	return k >= KindSourceFile
}

// closerFor maps an opening delimiter to the closing delimiter that ends it.
func closerFor(open Kind) Kind {
	switch open {
	case KindLParen:
		return KindRParen
	case KindLBrack:
		return KindRBrack
	case KindLCurly:
		return KindRCurly
	}
	return KindUnknown
}

func isCloser(k Kind) bool {
	return k == KindRParen || k == KindRBrack || k == KindRCurly
}

// delimiterText renders a delimiter kind the way it appears in source.
func delimiterText(k Kind) string {
	switch k {
	case KindLParen:
		return "("
	case KindRParen:
		return ")"
	case KindLBrack:
		return "["
	case KindRBrack:
		return "]"
	case KindLCurly:
		return "{"
	case KindRCurly:
		return "}"
	}
	return k.String()
}
