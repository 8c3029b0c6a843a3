package idtree

import (
	"cmp"
	"slices"
)

// SortChildrenBy reorders the children of the node named by id using compare,
// which returns a negative number, zero, or a positive number like
// cmp.Compare. The sort is stable.
func (t *Tree[T]) SortChildrenBy(id NodeID, compare func(a, b *Node[T]) int) error {
	n, err := t.arena.get(id)
	if err != nil {
		return t.reject("sort", id, err)
	}

	children := t.childSlice(n)
	if len(children) < 2 {
		return nil
	}

	slices.SortStableFunc(children, func(x, y NodeID) int {
		return compare(t.arena.node(x), t.arena.node(y))
	})
	t.relinkChildren(n, children)
	t.traceOp("sort", id)
	return nil
}

// SortChildrenByKey reorders the children of id by the key each one maps to.
// The sort is stable. key is called once per child.
func SortChildrenByKey[T any, K cmp.Ordered](t *Tree[T], id NodeID, key func(*Node[T]) K) error {
	n, err := t.arena.get(id)
	if err != nil {
		return t.reject("sort", id, err)
	}

	children := t.childSlice(n)
	if len(children) < 2 {
		return nil
	}

	type keyed struct {
		id  NodeID
		key K
	}
	entries := make([]keyed, len(children))
	for i, c := range children {
		entries[i] = keyed{id: c, key: key(t.arena.node(c))}
	}
	slices.SortStableFunc(entries, func(x, y keyed) int {
		return cmp.Compare(x.key, y.key)
	})
	for i := range entries {
		children[i] = entries[i].id
	}

	t.relinkChildren(n, children)
	t.traceOp("sort", id)
	return nil
}

// SortChildrenByData reorders the children of id by their data in ascending
// order. The sort is stable.
func SortChildrenByData[T cmp.Ordered](t *Tree[T], id NodeID) error {
	return t.SortChildrenBy(id, func(a, b *Node[T]) int {
		return cmp.Compare(a.data, b.data)
	})
}

// childSlice collects the ids of n's children in sibling order.
func (t *Tree[T]) childSlice(n *Node[T]) []NodeID {
	var children []NodeID
	for c := n.firstChild; !c.IsZero(); c = t.arena.node(c).nextSibling {
		children = append(children, c)
	}
	return children
}

// relinkChildren rewrites the sibling links of n's children to follow order,
// which must hold exactly n's current children.
func (t *Tree[T]) relinkChildren(n *Node[T], order []NodeID) {
	var prev NodeID
	for _, id := range order {
		c := t.arena.node(id)
		c.prevSibling = prev
		c.nextSibling = NodeID{}
		if !prev.IsZero() {
			t.arena.node(prev).nextSibling = id
		}
		prev = id
	}
	n.firstChild = order[0]
	n.lastChild = order[len(order)-1]
}
