// Package bridge keeps parsed trees alive behind integer ids for hosts that
// cannot hold Go values, such as JavaScript running the wasm build or a
// browser talking to the web UI.
package bridge

import (
	"errors"
	"fmt"
	"sync"

	"github.com/dhamidi/cstea/cst"
	"github.com/tliron/commonlog"
)

var log = commonlog.GetLogger("cstea.bridge")

var (
	ErrUnknownTree = errors.New("unknown tree")
	ErrUnknownNode = errors.New("unknown node")
)

// DefaultCapacity is the number of trees a Registry keeps before evicting
// the oldest one.
const DefaultCapacity = 64

// HandleInfo is the flat form of a cst.Handle handed across the boundary.
// Children are never included; the host asks for them by (Tree, Node).
type HandleInfo struct {
	Tree    int    `json:"tree"`
	Node    int    `json:"node"`
	IsToken bool   `json:"isToken"`
	Kind    string `json:"kind"`
	Text    string `json:"text"`
	Start   int    `json:"start"`
	End     int    `json:"end"`
}

// ErrorInfo is the flat form of a cst.Diagnostic. Line and Column locate
// the end of the range.
type ErrorInfo struct {
	Start   int    `json:"start"`
	End     int    `json:"end"`
	Message string `json:"message"`
	Line    int    `json:"line"`
	Column  int    `json:"column"`
}

// Result is what Parse returns: Root when the source parsed cleanly,
// Errors otherwise.
type Result struct {
	Root   *HandleInfo `json:"root,omitempty"`
	Errors []ErrorInfo `json:"errors,omitempty"`
}

type Registry struct {
	mu       sync.RWMutex
	trees    map[int]cst.Node
	order    []int
	nextID   int
	capacity int
}

func NewRegistry(capacity int) *Registry {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Registry{
		trees:    make(map[int]cst.Node),
		nextID:   1,
		capacity: capacity,
	}
}

// Parse parses source and, when it is free of errors, registers the tree.
// No id is allocated for sources with errors.
func (r *Registry) Parse(source string) Result {
	outcome := cst.Parse(source)
	root, ok := outcome.Root()
	if !ok {
		diags := outcome.Diagnostics()
		errs := make([]ErrorInfo, len(diags))
		for i, d := range diags {
			pos := d.Range().Position(source)
			errs[i] = ErrorInfo{
				Start:   d.Range().Start(),
				End:     d.Range().End(),
				Message: d.Message(),
				Line:    pos.Line,
				Column:  pos.Column,
			}
		}
		log.Debugf("parse produced %d errors", len(errs))
		return Result{Errors: errs}
	}

	r.mu.Lock()
	id := r.nextID
	r.nextID++
	r.trees[id] = root
	r.order = append(r.order, id)
	r.evictLocked()
	r.mu.Unlock()

	log.Debugf("registered tree %d (%d bytes)", id, len(source))
	info := describe(id, root)
	return Result{Root: &info}
}

func (r *Registry) evictLocked() {
	for len(r.trees) > r.capacity {
		oldest := r.order[0]
		r.order = r.order[1:]
		if _, ok := r.trees[oldest]; ok {
			delete(r.trees, oldest)
			log.Infof("evicted tree %d", oldest)
		}
	}
}

func (r *Registry) lookup(tree, node int) (cst.Handle, error) {
	r.mu.RLock()
	root, ok := r.trees[tree]
	r.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("tree %d: %w", tree, ErrUnknownTree)
	}
	h, ok := root.Resolve(node)
	if !ok {
		return nil, fmt.Errorf("tree %d node %d: %w", tree, node, ErrUnknownNode)
	}
	return h, nil
}

// Handle describes a single element.
func (r *Registry) Handle(tree, node int) (HandleInfo, error) {
	h, err := r.lookup(tree, node)
	if err != nil {
		return HandleInfo{}, err
	}
	return describe(tree, h), nil
}

// Children describes the direct children of an element. Tokens have none.
func (r *Registry) Children(tree, node int) ([]HandleInfo, error) {
	h, err := r.lookup(tree, node)
	if err != nil {
		return nil, err
	}
	children := h.Children()
	infos := make([]HandleInfo, len(children))
	for i, child := range children {
		infos[i] = describe(tree, child)
	}
	return infos, nil
}

// Release drops the registry's reference to a tree.
func (r *Registry) Release(tree int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.trees[tree]; !ok {
		return fmt.Errorf("tree %d: %w", tree, ErrUnknownTree)
	}
	delete(r.trees, tree)
	for i, id := range r.order {
		if id == tree {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	log.Debugf("released tree %d", tree)
	return nil
}

// Len returns the number of trees currently held.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.trees)
}

func describe(tree int, h cst.Handle) HandleInfo {
	rng := h.Range()
	return HandleInfo{
		Tree:    tree,
		Node:    h.ID(),
		IsToken: h.IsToken(),
		Kind:    h.Kind(),
		Text:    h.Text(),
		Start:   rng.Start(),
		End:     rng.End(),
	}
}

// Position locates a byte offset in source as a 1-based line and column.
func Position(source string, offset int) cst.Position {
	return cst.OffsetPosition(source, offset)
}
