package idtree

// Node is a tree node: user data plus the links that place it in the tree.
//
// Links are read through accessors; only the Tree rewrites them. A missing
// link is reported as the zero NodeID.
type Node[T any] struct {
	data T

	parent      NodeID
	firstChild  NodeID
	lastChild   NodeID
	prevSibling NodeID
	nextSibling NodeID
}

// nodeLinks is the structural part of a node, copied out so traversal code
// can walk the tree without holding node pointers.
type nodeLinks struct {
	parent      NodeID
	firstChild  NodeID
	lastChild   NodeID
	prevSibling NodeID
	nextSibling NodeID
}

// newNode creates an unlinked node holding data.
func newNode[T any](data T) *Node[T] {
	return &Node[T]{data: data}
}

// Data returns the node's data.
func (n *Node[T]) Data() T {
	return n.data
}

// DataPtr returns a pointer to the node's data for in-place updates.
func (n *Node[T]) DataPtr() *T {
	return &n.data
}

// SetData replaces the node's data.
func (n *Node[T]) SetData(data T) {
	n.data = data
}

// Parent returns the parent's id, or the zero NodeID for the root.
func (n *Node[T]) Parent() NodeID { return n.parent }

// FirstChild returns the first child's id, or the zero NodeID for a leaf.
func (n *Node[T]) FirstChild() NodeID { return n.firstChild }

// LastChild returns the last child's id, or the zero NodeID for a leaf.
func (n *Node[T]) LastChild() NodeID { return n.lastChild }

// PrevSibling returns the previous sibling's id, or the zero NodeID.
func (n *Node[T]) PrevSibling() NodeID { return n.prevSibling }

// NextSibling returns the next sibling's id, or the zero NodeID.
func (n *Node[T]) NextSibling() NodeID { return n.nextSibling }

// HasChildren reports whether the node has at least one child.
func (n *Node[T]) HasChildren() bool {
	return !n.firstChild.IsZero()
}

func (n *Node[T]) links() nodeLinks {
	return nodeLinks{
		parent:      n.parent,
		firstChild:  n.firstChild,
		lastChild:   n.lastChild,
		prevSibling: n.prevSibling,
		nextSibling: n.nextSibling,
	}
}

// relabel rewrites every link equal to a into b and every link equal to b
// into a. Used by the swap operations.
func (n *Node[T]) relabel(a, b NodeID, withParent bool) {
	swap := func(p *NodeID) {
		switch *p {
		case a:
			*p = b
		case b:
			*p = a
		}
	}
	if withParent {
		swap(&n.parent)
	}
	swap(&n.firstChild)
	swap(&n.lastChild)
	swap(&n.prevSibling)
	swap(&n.nextSibling)
}
