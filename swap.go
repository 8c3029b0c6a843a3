package idtree

import "fmt"

// SwapBehavior says what SwapNodes exchanges.
type SwapBehavior int

const (
	// SwapDataOnly exchanges the two nodes' data. Every link stays put, so
	// each id keeps its position but now holds the other's data.
	SwapDataOnly SwapBehavior = iota

	// SwapSubtrees exchanges the positions of the two nodes together with
	// their subtrees. The nodes must not be ancestor and descendant.
	SwapSubtrees

	// SwapNodesOnly exchanges the positions of the two nodes but leaves
	// their children where they were: each node adopts the other's children.
	SwapNodesOnly
)

// String returns the behavior's name.
func (b SwapBehavior) String() string {
	switch b {
	case SwapDataOnly:
		return "data-only"
	case SwapSubtrees:
		return "subtrees"
	case SwapNodesOnly:
		return "nodes-only"
	default:
		return fmt.Sprintf("SwapBehavior(%d)", int(b))
	}
}

// SwapNodes exchanges the nodes named by first and second as described by
// behavior. Swapping a node with itself does nothing.
func (t *Tree[T]) SwapNodes(first, second NodeID, behavior SwapBehavior) error {
	a, err := t.arena.get(first)
	if err != nil {
		return t.reject("swap", first, err)
	}
	b, err := t.arena.get(second)
	if err != nil {
		return t.reject("swap", second, err)
	}

	switch behavior {
	case SwapDataOnly, SwapSubtrees, SwapNodesOnly:
	default:
		return t.reject("swap", first, fmt.Errorf("%w: unknown swap behavior %v", ErrInvalidOperation, behavior))
	}

	if first == second {
		return nil
	}

	switch behavior {
	case SwapDataOnly:
		a.data, b.data = b.data, a.data

	case SwapSubtrees:
		if t.isAncestor(first, second) || t.isAncestor(second, first) {
			return t.reject("swap", first,
				fmt.Errorf("%w: %v and %v are ancestor and descendant; swapping their subtrees would nest one inside itself", ErrInvalidOperation, first, second))
		}
		t.swapSubtrees(first, second, a, b)

	case SwapNodesOnly:
		t.swapNodesOnly(first, second, a, b)
	}

	t.traceOp("swap", first)
	return nil
}

// swapSubtrees exchanges the parent and sibling links of two unrelated
// nodes. Their child links, and the parent links of their children, stay
// as they are so each subtree travels with its root.
func (t *Tree[T]) swapSubtrees(first, second NodeID, a, b *Node[T]) {
	neighbors := newIDSet(first, second)
	for _, n := range []*Node[T]{a, b} {
		neighbors.add(n.parent)
		neighbors.add(n.prevSibling)
		neighbors.add(n.nextSibling)
	}

	// Neither node can be a neighbor's child here, so neighbor parent links
	// never name first or second.
	for _, id := range neighbors.ids {
		t.arena.node(id).relabel(first, second, false)
	}

	a.parent, b.parent = b.parent, a.parent
	a.prevSibling, b.prevSibling = b.prevSibling, a.prevSibling
	a.nextSibling, b.nextSibling = b.nextSibling, a.nextSibling
	a.relabel(first, second, true)
	b.relabel(first, second, true)
}

// swapNodesOnly exchanges every link of the two nodes, so the tree keeps its
// shape and only the two labels trade places.
func (t *Tree[T]) swapNodesOnly(first, second NodeID, a, b *Node[T]) {
	neighbors := newIDSet(first, second)
	for _, n := range []*Node[T]{a, b} {
		neighbors.add(n.parent)
		neighbors.add(n.prevSibling)
		neighbors.add(n.nextSibling)
		for c := n.firstChild; !c.IsZero(); c = t.arena.node(c).nextSibling {
			neighbors.add(c)
		}
	}

	// relabel is its own inverse, so every neighbor must be visited once.
	for _, id := range neighbors.ids {
		t.arena.node(id).relabel(first, second, true)
	}

	a.parent, b.parent = b.parent, a.parent
	a.firstChild, b.firstChild = b.firstChild, a.firstChild
	a.lastChild, b.lastChild = b.lastChild, a.lastChild
	a.prevSibling, b.prevSibling = b.prevSibling, a.prevSibling
	a.nextSibling, b.nextSibling = b.nextSibling, a.nextSibling
	a.relabel(first, second, true)
	b.relabel(first, second, true)

	switch t.arena.root {
	case first:
		t.arena.root = second
	case second:
		t.arena.root = first
	}
}

// idSet collects distinct non-zero ids in insertion order.
type idSet struct {
	ids  []NodeID
	seen map[NodeID]struct{}
}

// newIDSet creates a set that silently refuses the excluded ids.
func newIDSet(exclude ...NodeID) *idSet {
	s := &idSet{seen: make(map[NodeID]struct{}, len(exclude)+6)}
	for _, id := range exclude {
		s.seen[id] = struct{}{}
	}
	return s
}

func (s *idSet) add(id NodeID) {
	if id.IsZero() {
		return
	}
	if _, ok := s.seen[id]; ok {
		return
	}
	s.seen[id] = struct{}{}
	s.ids = append(s.ids, id)
}
