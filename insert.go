package idtree

// InsertBehavior says where Insert places a new node.
type InsertBehavior struct {
	parent NodeID
	asRoot bool
}

// AsRoot inserts the node as the new root. An existing root becomes its only
// child.
func AsRoot() InsertBehavior {
	return InsertBehavior{asRoot: true}
}

// UnderNode inserts the node as the last child of parent.
func UnderNode(parent NodeID) InsertBehavior {
	return InsertBehavior{parent: parent}
}

// Insert adds a node holding data and returns its id.
// Inserting under a parent that does not resolve fails with ErrHandleInvalid.
func (t *Tree[T]) Insert(data T, behavior InsertBehavior) (NodeID, error) {
	if behavior.asRoot {
		id := t.setRoot(data)
		t.traceOp("insert-root", id)
		return id, nil
	}

	if err := t.arena.validate(behavior.parent); err != nil {
		return NodeID{}, t.reject("insert", behavior.parent, err)
	}

	id := t.arena.allocate(newNode(data))
	t.appendChild(behavior.parent, id)
	t.traceOp("insert", id)
	return id, nil
}

// setRoot allocates a new root; the old root, if any, becomes its child.
func (t *Tree[T]) setRoot(data T) NodeID {
	oldRoot := t.arena.root
	id := t.arena.allocate(newNode(data))
	t.arena.root = id

	if !oldRoot.IsZero() {
		t.appendChild(id, oldRoot)
	}
	return id
}

// appendChild links the detached node child as the last child of parent.
// Both ids must be valid and child must have no parent or siblings.
func (t *Tree[T]) appendChild(parent, child NodeID) {
	p := t.arena.node(parent)
	c := t.arena.node(child)

	c.parent = parent
	if p.lastChild.IsZero() {
		p.firstChild = child
		p.lastChild = child
		return
	}

	last := t.arena.node(p.lastChild)
	last.nextSibling = child
	c.prevSibling = p.lastChild
	p.lastChild = child
}

// detach splices the node out of its parent's child list, leaving its own
// subtree intact. The node keeps no parent or sibling links afterwards.
func (t *Tree[T]) detach(id NodeID) {
	n := t.arena.node(id)

	if !n.prevSibling.IsZero() {
		t.arena.node(n.prevSibling).nextSibling = n.nextSibling
	} else if !n.parent.IsZero() {
		t.arena.node(n.parent).firstChild = n.nextSibling
	}

	if !n.nextSibling.IsZero() {
		t.arena.node(n.nextSibling).prevSibling = n.prevSibling
	} else if !n.parent.IsZero() {
		t.arena.node(n.parent).lastChild = n.prevSibling
	}

	n.parent = NodeID{}
	n.prevSibling = NodeID{}
	n.nextSibling = NodeID{}
}
