package idtree

import (
	"github.com/rs/zerolog"
)

// Tree is an ordered tree of Node values stored in an arena.
type Tree[T any] struct {
	arena  *arena[T]
	logger zerolog.Logger
}

// New creates an empty tree with default capacities.
func New[T any]() *Tree[T] {
	return NewBuilder[T]().Build()
}

// Root returns the root's id, or the zero NodeID if the tree is empty.
func (t *Tree[T]) Root() NodeID {
	return t.arena.root
}

// Len returns the number of nodes in the tree.
func (t *Tree[T]) Len() int {
	return t.arena.live
}

// IsEmpty reports whether the tree has no nodes.
func (t *Tree[T]) IsEmpty() bool {
	return t.arena.live == 0
}

// Contains reports whether id names a node currently in the tree.
func (t *Tree[T]) Contains(id NodeID) bool {
	return t.arena.validate(id) == nil
}

// Get returns the node named by id.
// The returned node may be modified through SetData or DataPtr.
func (t *Tree[T]) Get(id NodeID) (*Node[T], error) {
	return t.arena.get(id)
}

// GetUnchecked returns the node named by id without reporting an error.
// It panics if id does not name a live node; use it only with ids whose
// validity the caller has just established.
func (t *Tree[T]) GetUnchecked(id NodeID) *Node[T] {
	return t.arena.node(id)
}

// Height returns the number of levels in the tree: 0 when empty, 1 for a
// lone root.
func (t *Tree[T]) Height() int {
	root := t.arena.root
	if root.IsZero() {
		return 0
	}

	// Level-by-level walk; each pass drains one generation of the queue.
	height := 0
	level := []NodeID{root}
	for len(level) > 0 {
		height++
		var next []NodeID
		for _, id := range level {
			for c := t.arena.node(id).firstChild; !c.IsZero(); c = t.arena.node(c).nextSibling {
				next = append(next, c)
			}
		}
		level = next
	}
	return height
}

// Depth returns the number of edges between id and the root.
func (t *Tree[T]) Depth(id NodeID) (int, error) {
	n, err := t.arena.get(id)
	if err != nil {
		return 0, err
	}
	depth := 0
	for p := n.parent; !p.IsZero(); p = t.arena.node(p).parent {
		depth++
	}
	return depth, nil
}

// IsAncestor reports whether ancestor lies on the path from id to the root.
// A node is not its own ancestor.
func (t *Tree[T]) IsAncestor(ancestor, id NodeID) (bool, error) {
	if err := t.arena.validate(ancestor); err != nil {
		return false, err
	}
	if err := t.arena.validate(id); err != nil {
		return false, err
	}
	return t.isAncestor(ancestor, id), nil
}

// isAncestor walks up from id looking for ancestor. Both ids must be valid.
func (t *Tree[T]) isAncestor(ancestor, id NodeID) bool {
	for p := t.arena.node(id).parent; !p.IsZero(); p = t.arena.node(p).parent {
		if p == ancestor {
			return true
		}
	}
	return false
}

// reject logs a refused operation and returns err unchanged.
func (t *Tree[T]) reject(op string, id NodeID, err error) error {
	t.logger.Debug().
		Str("op", op).
		Stringer("node", id).
		Err(err).
		Msg("tree operation rejected")
	return err
}

// traceOp records a completed mutation.
func (t *Tree[T]) traceOp(op string, id NodeID) {
	t.logger.Trace().
		Str("op", op).
		Stringer("node", id).
		Int("len", t.arena.live).
		Msg("tree mutated")
}
