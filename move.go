package idtree

import "fmt"

// MoveBehavior says where MoveNode re-attaches a node.
type MoveBehavior struct {
	parent NodeID
	toRoot bool
}

// ToRoot makes the moved node the root; the old root becomes its last child.
func ToRoot() MoveBehavior {
	return MoveBehavior{toRoot: true}
}

// ToParent makes the moved node the last child of parent.
func ToParent(parent NodeID) MoveBehavior {
	return MoveBehavior{parent: parent}
}

// MoveNode moves the node named by id, together with its subtree.
// Moving a node under itself or one of its descendants fails with
// ErrInvalidOperation.
func (t *Tree[T]) MoveNode(id NodeID, behavior MoveBehavior) error {
	if err := t.arena.validate(id); err != nil {
		return t.reject("move", id, err)
	}

	if behavior.toRoot {
		t.moveToRoot(id)
		t.traceOp("move-root", id)
		return nil
	}

	parent := behavior.parent
	if err := t.arena.validate(parent); err != nil {
		return t.reject("move", parent, err)
	}
	if parent == id || t.isAncestor(id, parent) {
		return t.reject("move", id, fmt.Errorf("%w: moving %v under %v would create a cycle", ErrInvalidOperation, id, parent))
	}

	t.detach(id)
	t.appendChild(parent, id)
	t.traceOp("move", id)
	return nil
}

// moveToRoot detaches id and puts it above the current root.
func (t *Tree[T]) moveToRoot(id NodeID) {
	oldRoot := t.arena.root
	if oldRoot == id {
		return
	}

	t.detach(id)
	t.arena.root = id
	t.appendChild(id, oldRoot)
}
