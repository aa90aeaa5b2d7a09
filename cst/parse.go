package cst

import "github.com/dhamidi/cstea/syntax"

// Outcome is the result of Parse: either a root node or the diagnostics
// that prevented one from being exposed, never both.
type Outcome struct {
	root        Node
	hasRoot     bool
	diagnostics []Diagnostic
}

// Parse parses source and projects the result. When the parser reports any
// error, the outcome carries every diagnostic in parser order and no tree,
// even though the parser built a partial one.
func Parse(source string) Outcome {
	parse := syntax.ParseSourceFile(source)
	if errs := parse.Errors(); len(errs) > 0 {
		diagnostics := make([]Diagnostic, len(errs))
		for i, err := range errs {
			diagnostics[i] = Diagnostic{err: err}
		}
		return Outcome{diagnostics: diagnostics}
	}
	return Outcome{
		root:    Node{tree: parse.Tree(), id: syntax.Root},
		hasRoot: true,
	}
}

// Root returns the SOURCE_FILE node, or false when the source had errors.
func (o Outcome) Root() (Node, bool) {
	return o.root, o.hasRoot
}

func (o Outcome) HasRoot() bool {
	return o.hasRoot
}

func (o Outcome) Diagnostics() []Diagnostic {
	return o.diagnostics
}
