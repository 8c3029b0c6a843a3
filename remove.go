package idtree

import "fmt"

// RemoveBehavior says what happens to the children of a removed node.
type RemoveBehavior int

const (
	// DropChildren removes the node's whole subtree.
	DropChildren RemoveBehavior = iota

	// LiftChildren puts the node's children in its place under its parent,
	// keeping their order. The root may only be removed this way when it has
	// at most one child, which then becomes the root.
	LiftChildren
)

// String returns the behavior's name.
func (b RemoveBehavior) String() string {
	switch b {
	case DropChildren:
		return "drop-children"
	case LiftChildren:
		return "lift-children"
	default:
		return fmt.Sprintf("RemoveBehavior(%d)", int(b))
	}
}

// Remove takes the node named by id out of the tree and returns its data.
// Data held by dropped descendants is discarded. Every NodeID of a removed
// node stops resolving.
func (t *Tree[T]) Remove(id NodeID, behavior RemoveBehavior) (T, error) {
	var zero T

	n, err := t.arena.get(id)
	if err != nil {
		return zero, t.reject("remove", id, err)
	}

	switch behavior {
	case DropChildren:
		t.detach(id)
		t.dropSubtree(id)

	case LiftChildren:
		if n.parent.IsZero() && n.firstChild != n.lastChild {
			return zero, t.reject("remove", id,
				fmt.Errorf("%w: lifting the children of a root with several children would leave several roots", ErrInvalidOperation))
		}
		t.liftChildren(id)

	default:
		return zero, t.reject("remove", id, fmt.Errorf("%w: unknown remove behavior %v", ErrInvalidOperation, behavior))
	}

	t.traceOp("remove", id)
	return n.data, nil
}

// dropSubtree frees a detached node and all its descendants.
func (t *Tree[T]) dropSubtree(id NodeID) {
	stack := []NodeID{id}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		n := t.arena.release(top)
		for c := n.firstChild; !c.IsZero(); c = t.arena.node(c).nextSibling {
			stack = append(stack, c)
		}
	}
}

// liftChildren replaces id by its children in its parent's child list and
// frees id. For the root, the caller guarantees at most one child.
func (t *Tree[T]) liftChildren(id NodeID) {
	n := t.arena.node(id)
	first, last := n.firstChild, n.lastChild

	if n.parent.IsZero() {
		t.arena.release(id)
		if !first.IsZero() {
			t.arena.node(first).parent = NodeID{}
			t.arena.root = first
		}
		return
	}

	if first.IsZero() {
		t.detach(id)
		t.arena.release(id)
		return
	}

	for c := first; !c.IsZero(); c = t.arena.node(c).nextSibling {
		t.arena.node(c).parent = n.parent
	}

	if n.prevSibling.IsZero() {
		t.arena.node(n.parent).firstChild = first
	} else {
		t.arena.node(n.prevSibling).nextSibling = first
	}
	t.arena.node(first).prevSibling = n.prevSibling

	if n.nextSibling.IsZero() {
		t.arena.node(n.parent).lastChild = last
	} else {
		t.arena.node(n.nextSibling).prevSibling = last
	}
	t.arena.node(last).nextSibling = n.nextSibling

	t.arena.release(id)
}
