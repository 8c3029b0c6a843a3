package idtree

import "iter"

// linkReader is the read-only view traversal needs: the links of a node,
// or ErrHandleInvalid. Any node representation that can answer it can be
// walked by the functions below.
type linkReader interface {
	links(id NodeID) (nodeLinks, error)
}

// Every sequence in this file validates each id before yielding it. When an
// id fails (the start id, or a node removed while the caller was iterating)
// the sequence yields the error once and stops.

// ancestorIDs yields start, its parent, and so on up to the root.
func ancestorIDs(r linkReader, start NodeID) iter.Seq2[NodeID, error] {
	return func(yield func(NodeID, error) bool) {
		for id := start; ; {
			l, err := r.links(id)
			if err != nil {
				yield(NodeID{}, err)
				return
			}
			if !yield(id, nil) || l.parent.IsZero() {
				return
			}
			id = l.parent
		}
	}
}

// childIDs yields the children of parent in sibling order.
func childIDs(r linkReader, parent NodeID) iter.Seq2[NodeID, error] {
	return func(yield func(NodeID, error) bool) {
		p, err := r.links(parent)
		if err != nil {
			yield(NodeID{}, err)
			return
		}
		for id := p.firstChild; !id.IsZero(); {
			l, err := r.links(id)
			if err != nil {
				yield(NodeID{}, err)
				return
			}
			if !yield(id, nil) {
				return
			}
			id = l.nextSibling
		}
	}
}

// preOrderIDs yields start's subtree depth first, each node before its
// children.
func preOrderIDs(r linkReader, start NodeID) iter.Seq2[NodeID, error] {
	return func(yield func(NodeID, error) bool) {
		stack := []NodeID{start}
		for len(stack) > 0 {
			id := stack[len(stack)-1]
			stack = stack[:len(stack)-1]

			l, err := r.links(id)
			if err != nil {
				yield(NodeID{}, err)
				return
			}
			if !yield(id, nil) {
				return
			}

			// Push last child first so the first child is popped next.
			for c := l.lastChild; !c.IsZero(); {
				cl, err := r.links(c)
				if err != nil {
					yield(NodeID{}, err)
					return
				}
				stack = append(stack, c)
				c = cl.prevSibling
			}
		}
	}
}

// postOrderIDs yields start's subtree depth first, each node after its
// children.
func postOrderIDs(r linkReader, start NodeID) iter.Seq2[NodeID, error] {
	type frame struct {
		id       NodeID
		expanded bool
	}

	return func(yield func(NodeID, error) bool) {
		stack := []frame{{id: start}}
		for len(stack) > 0 {
			f := stack[len(stack)-1]
			stack = stack[:len(stack)-1]

			l, err := r.links(f.id)
			if err != nil {
				yield(NodeID{}, err)
				return
			}

			if f.expanded || l.firstChild.IsZero() {
				if !yield(f.id, nil) {
					return
				}
				continue
			}

			stack = append(stack, frame{id: f.id, expanded: true})
			for c := l.lastChild; !c.IsZero(); {
				cl, err := r.links(c)
				if err != nil {
					yield(NodeID{}, err)
					return
				}
				stack = append(stack, frame{id: c})
				c = cl.prevSibling
			}
		}
	}
}

// levelOrderIDs yields start's subtree breadth first.
func levelOrderIDs(r linkReader, start NodeID) iter.Seq2[NodeID, error] {
	return func(yield func(NodeID, error) bool) {
		queue := []NodeID{start}
		for head := 0; head < len(queue); head++ {
			id := queue[head]

			l, err := r.links(id)
			if err != nil {
				yield(NodeID{}, err)
				return
			}
			if !yield(id, nil) {
				return
			}

			for c := l.firstChild; !c.IsZero(); {
				cl, err := r.links(c)
				if err != nil {
					yield(NodeID{}, err)
					return
				}
				queue = append(queue, c)
				c = cl.nextSibling
			}
		}
	}
}

// nodesOf turns a sequence of ids into a sequence of the nodes they name.
func (t *Tree[T]) nodesOf(ids iter.Seq2[NodeID, error]) iter.Seq2[*Node[T], error] {
	return func(yield func(*Node[T], error) bool) {
		for id, err := range ids {
			if err != nil {
				yield(nil, err)
				return
			}
			n, err := t.arena.get(id)
			if err != nil {
				yield(nil, err)
				return
			}
			if !yield(n, nil) {
				return
			}
		}
	}
}

// AncestorIDs yields id, its parent, its grandparent and so on, ending with
// the root.
func (t *Tree[T]) AncestorIDs(id NodeID) iter.Seq2[NodeID, error] {
	return ancestorIDs(t.arena, id)
}

// Ancestors yields the node named by id and then each of its ancestors up to
// and including the root.
func (t *Tree[T]) Ancestors(id NodeID) iter.Seq2[*Node[T], error] {
	return t.nodesOf(ancestorIDs(t.arena, id))
}

// ChildIDs yields the ids of the children of id in sibling order.
func (t *Tree[T]) ChildIDs(id NodeID) iter.Seq2[NodeID, error] {
	return childIDs(t.arena, id)
}

// Children yields the children of id in sibling order.
func (t *Tree[T]) Children(id NodeID) iter.Seq2[*Node[T], error] {
	return t.nodesOf(childIDs(t.arena, id))
}

// PreOrderIDs yields the ids of the subtree rooted at id, parents first.
func (t *Tree[T]) PreOrderIDs(id NodeID) iter.Seq2[NodeID, error] {
	return preOrderIDs(t.arena, id)
}

// PreOrder yields the subtree rooted at id, parents first.
func (t *Tree[T]) PreOrder(id NodeID) iter.Seq2[*Node[T], error] {
	return t.nodesOf(preOrderIDs(t.arena, id))
}

// PostOrderIDs yields the ids of the subtree rooted at id, children first.
func (t *Tree[T]) PostOrderIDs(id NodeID) iter.Seq2[NodeID, error] {
	return postOrderIDs(t.arena, id)
}

// PostOrder yields the subtree rooted at id, children first.
func (t *Tree[T]) PostOrder(id NodeID) iter.Seq2[*Node[T], error] {
	return t.nodesOf(postOrderIDs(t.arena, id))
}

// LevelOrderIDs yields the ids of the subtree rooted at id breadth first.
func (t *Tree[T]) LevelOrderIDs(id NodeID) iter.Seq2[NodeID, error] {
	return levelOrderIDs(t.arena, id)
}

// LevelOrder yields the subtree rooted at id breadth first.
func (t *Tree[T]) LevelOrder(id NodeID) iter.Seq2[*Node[T], error] {
	return t.nodesOf(levelOrderIDs(t.arena, id))
}
