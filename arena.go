package idtree

import "fmt"

// arena owns node storage for one tree.
//
// slots[i] is nil iff slot i is free. generations[i] is the generation the
// next NodeID for slot i will carry (or the one the live node carries), and
// only ever grows, so a NodeID from before a free never matches again.
// free holds the indices of nil slots; allocation pops from it before
// growing the table.
type arena[T any] struct {
	slots       []*Node[T]
	generations []uint32
	free        []uint32
	root        NodeID
	live        int
}

// newArena creates an arena with room for nodeCap nodes and freeCap
// reclaimed slot indices before either table has to grow.
func newArena[T any](nodeCap, freeCap int) *arena[T] {
	return &arena[T]{
		slots:       make([]*Node[T], 0, nodeCap),
		generations: make([]uint32, 0, nodeCap),
		free:        make([]uint32, 0, freeCap),
	}
}

// allocate stores node in a free slot (or a new one) and returns its id.
func (a *arena[T]) allocate(node *Node[T]) NodeID {
	a.live++

	if n := len(a.free); n > 0 {
		index := a.free[n-1]
		a.free = a.free[:n-1]
		a.slots[index] = node
		return NodeID{index: index, generation: a.generations[index]}
	}

	index := uint32(len(a.slots))
	a.slots = append(a.slots, node)
	a.generations = append(a.generations, 1)
	return NodeID{index: index, generation: 1}
}

// release frees the slot named by id and returns the node it held.
// The caller must have validated id.
func (a *arena[T]) release(id NodeID) *Node[T] {
	node := a.slots[id.index]
	a.slots[id.index] = nil
	a.generations[id.index]++
	// A wrapped generation would make 0 (the "no node" value) live again.
	if a.generations[id.index] == 0 {
		a.generations[id.index] = 1
	}
	a.free = append(a.free, id.index)
	a.live--
	if a.root == id {
		a.root = NodeID{}
	}
	return node
}

// validate fails with ErrHandleInvalid unless id names a live node.
func (a *arena[T]) validate(id NodeID) error {
	if id.IsZero() || int(id.index) >= len(a.slots) {
		return ErrHandleInvalid
	}
	if a.slots[id.index] == nil || a.generations[id.index] != id.generation {
		return ErrHandleInvalid
	}
	return nil
}

// get validates id and returns its node.
func (a *arena[T]) get(id NodeID) (*Node[T], error) {
	if err := a.validate(id); err != nil {
		return nil, err
	}
	return a.slots[id.index], nil
}

// node returns the node for an id the caller has already validated.
// A violated precondition is a bug in this package and panics.
func (a *arena[T]) node(id NodeID) *Node[T] {
	if int(id.index) >= len(a.slots) {
		panic(fmt.Sprintf("idtree: unchecked access with invalid NodeID %v", id))
	}
	n := a.slots[id.index]
	if n == nil || a.generations[id.index] != id.generation {
		panic(fmt.Sprintf("idtree: unchecked access with invalid NodeID %v", id))
	}
	return n
}

// links returns a copy of the links of the node named by id.
func (a *arena[T]) links(id NodeID) (nodeLinks, error) {
	n, err := a.get(id)
	if err != nil {
		return nodeLinks{}, err
	}
	return n.links(), nil
}

// capacity reports the size of the slot table (live plus free slots).
func (a *arena[T]) capacity() int {
	return len(a.slots)
}
