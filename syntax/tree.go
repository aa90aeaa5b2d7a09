package syntax

// ElementID identifies a node or token inside one Tree.
type ElementID int32

// Root is the ID of the SOURCE_FILE node of every tree.
const Root ElementID = 0

type element struct {
	kind  Kind
	rng   TextRange
	first int
	count int
}

// Tree is an immutable arena holding every element produced by one parse of
// one source string. Children of a node are stored as a contiguous window
// of the edge list, so listing them never copies.
type Tree struct {
	source   string
	elements []element
	edges    []ElementID
}

// Len returns the number of elements in the tree.
func (t *Tree) Len() int {
	return len(t.elements)
}

// Valid reports whether id names an element of t.
func (t *Tree) Valid(id ElementID) bool {
	return id >= 0 && int(id) < len(t.elements)
}

func (t *Tree) Kind(id ElementID) Kind {
	return t.elements[id].kind
}

func (t *Tree) Range(id ElementID) TextRange {
	return t.elements[id].rng
}

func (t *Tree) IsToken(id ElementID) bool {
	return !t.elements[id].kind.IsNode()
}

// Text returns the literal source text of a token, and "" for a node.
func (t *Tree) Text(id ElementID) string {
	el := t.elements[id]
	if el.kind.IsNode() {
		return ""
	}
	return t.source[el.rng.Start:el.rng.End]
}

// Children returns the direct children of id in document order. The
// returned slice aliases the tree and must not be modified.
func (t *Tree) Children(id ElementID) []ElementID {
	el := t.elements[id]
	end := el.first + el.count
	return t.edges[el.first:end:end]
}

type frame struct {
	id       ElementID
	children []ElementID
}

// builder assembles a Tree from a stream of start/token/finish events.
type builder struct {
	tree  *Tree
	stack []frame
	pos   int
}

func newBuilder(source string) *builder {
	return &builder{tree: &Tree{source: source}}
}

func (b *builder) add(kind Kind, rng TextRange) ElementID {
	id := ElementID(len(b.tree.elements))
	b.tree.elements = append(b.tree.elements, element{kind: kind, rng: rng})
	if n := len(b.stack); n > 0 {
		b.stack[n-1].children = append(b.stack[n-1].children, id)
	}
	return id
}

func (b *builder) startNode(kind Kind) {
	id := b.add(kind, TextRange{Start: b.pos, End: b.pos})
	b.stack = append(b.stack, frame{id: id})
}

func (b *builder) token(tok Token) {
	b.add(tok.Kind, tok.Range)
	b.pos = tok.Range.End
}

func (b *builder) finishNode() {
	f := b.stack[len(b.stack)-1]
	b.stack = b.stack[:len(b.stack)-1]

	el := &b.tree.elements[f.id]
	el.first = len(b.tree.edges)
	el.count = len(f.children)
	el.rng.End = b.pos
	b.tree.edges = append(b.tree.edges, f.children...)
}

func (b *builder) finish() *Tree {
	for len(b.stack) > 0 {
		b.finishNode()
	}
	return b.tree
}
