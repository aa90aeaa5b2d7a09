package cst

import (
	"fmt"

	"github.com/dhamidi/cstea/syntax"
)

// Handle is a read-only view of one element of a parsed tree. It is either
// a Node or a Token; no other implementations exist, so consumers can
// switch over the two:
//
//	switch h := h.(type) {
//	case cst.Node:
//		...
//	case cst.Token:
//		...
//	}
type Handle interface {
	IsToken() bool
	Kind() string
	Text() string
	Range() Range
	Children() []Handle
	String() string

	// ID returns the element's index in its tree. IDs are unique within
	// one tree and stable for as long as the tree lives.
	ID() int

	handle()
}

// Node is an interior element. Its only state is a reference into the
// shared tree, so copying a Node is cheap and keeps the tree alive.
type Node struct {
	tree *syntax.Tree
	id   syntax.ElementID
}

// Token is a leaf element carrying a slice of the source text.
type Token struct {
	tree *syntax.Tree
	id   syntax.ElementID
}

func project(tree *syntax.Tree, id syntax.ElementID) Handle {
	if tree.IsToken(id) {
		return Token{tree: tree, id: id}
	}
	return Node{tree: tree, id: id}
}

func rangeOf(tree *syntax.Tree, id syntax.ElementID) Range {
	r := tree.Range(id)
	return NewRange(r.Start, r.End)
}

func (Node) handle()  {}
func (Token) handle() {}

func (n Node) IsToken() bool { return false }
func (n Node) Kind() string  { return n.tree.Kind(n.id).String() }
func (n Node) Text() string  { return "" }
func (n Node) Range() Range  { return rangeOf(n.tree, n.id) }

// Children projects the direct children of n in document order. Each call
// allocates fresh handles; only the direct children are visited.
func (n Node) Children() []Handle {
	ids := n.tree.Children(n.id)
	children := make([]Handle, len(ids))
	for i, id := range ids {
		children[i] = project(n.tree, id)
	}
	return children
}

func (n Node) ID() int { return int(n.id) }

// Resolve returns the element with the given ID from the tree n belongs
// to.
func (n Node) Resolve(id int) (Handle, bool) {
	eid := syntax.ElementID(id)
	if int(eid) != id || !n.tree.Valid(eid) {
		return nil, false
	}
	return project(n.tree, eid), true
}

func (n Node) ChildCount() int {
	return len(n.tree.Children(n.id))
}

// Child returns the i-th direct child, or false when i is out of range.
func (n Node) Child(i int) (Handle, bool) {
	ids := n.tree.Children(n.id)
	if i < 0 || i >= len(ids) {
		return nil, false
	}
	return project(n.tree, ids[i]), true
}

func (n Node) String() string {
	return fmt.Sprintf("%s@%s", n.Kind(), n.Range())
}

func (t Token) IsToken() bool      { return true }
func (t Token) Kind() string       { return t.tree.Kind(t.id).String() }
func (t Token) Text() string       { return t.tree.Text(t.id) }
func (t Token) Range() Range       { return rangeOf(t.tree, t.id) }
func (t Token) Children() []Handle { return nil }
func (t Token) ID() int            { return int(t.id) }

// IsTrivia reports whether the token is whitespace or a comment.
func (t Token) IsTrivia() bool {
	return t.tree.Kind(t.id).IsTrivia()
}

func (t Token) String() string {
	return fmt.Sprintf("%s@%s %q", t.Kind(), t.Range(), t.Text())
}

// Walk visits h and its descendants in pre-order. Returning false from fn
// skips the descendants of the handle just visited.
func Walk(h Handle, fn func(Handle) bool) {
	if !fn(h) {
		return
	}
	switch h := h.(type) {
	case Node:
		for _, child := range h.Children() {
			Walk(child, fn)
		}
	case Token:
	}
}

// Covering returns the deepest handle under root whose range contains
// offset. When offset sits on the boundary between two tokens the earlier
// one wins.
func Covering(root Handle, offset int) (Handle, bool) {
	chain := Ancestors(root, offset)
	if len(chain) == 0 {
		return nil, false
	}
	return chain[len(chain)-1], true
}

// Ancestors returns the chain of handles from root down to the deepest
// handle covering offset, root first.
func Ancestors(root Handle, offset int) []Handle {
	if !root.Range().ContainsOffset(offset) {
		return nil
	}
	var chain []Handle
	current := root
	for current != nil {
		chain = append(chain, current)
		node, ok := current.(Node)
		if !ok {
			break
		}
		current = nil
		for _, child := range node.Children() {
			if child.Range().ContainsOffset(offset) {
				current = child
				break
			}
		}
	}
	return chain
}
