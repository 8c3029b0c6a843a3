package idtree

import "fmt"

// CheckInvariants verifies the tree's structure and returns an error wrapping
// ErrCorrupt that describes the first problem found, or nil.
//
// It checks that child lists are well formed in both directions, that every
// child points back at its parent, that exactly the root has no parent, that
// every node is reachable from the root, and that the free list names
// exactly the empty slots. It runs in time linear in the arena size.
func (t *Tree[T]) CheckInvariants() error {
	a := t.arena

	corrupt := func(format string, args ...any) error {
		return fmt.Errorf("%w: %s", ErrCorrupt, fmt.Sprintf(format, args...))
	}

	// Arena bookkeeping.
	free := make(map[uint32]bool, len(a.free))
	for _, index := range a.free {
		if int(index) >= len(a.slots) {
			return corrupt("free slot %d beyond slot table of %d", index, len(a.slots))
		}
		if free[index] {
			return corrupt("free slot %d listed twice", index)
		}
		if a.slots[index] != nil {
			return corrupt("free slot %d is occupied", index)
		}
		free[index] = true
	}
	occupied := 0
	for i, n := range a.slots {
		if n == nil {
			if !free[uint32(i)] {
				return corrupt("empty slot %d missing from free list", i)
			}
			continue
		}
		occupied++
	}
	if occupied != a.live {
		return corrupt("live count %d but %d occupied slots", a.live, occupied)
	}

	// Root.
	if a.root.IsZero() {
		if occupied != 0 {
			return corrupt("no root but %d nodes", occupied)
		}
		return nil
	}
	root, err := a.get(a.root)
	if err != nil {
		return corrupt("root %v does not resolve", a.root)
	}
	if !root.parent.IsZero() || !root.prevSibling.IsZero() || !root.nextSibling.IsZero() {
		return corrupt("root %v has a parent or siblings", a.root)
	}

	// Walk from the root, checking each child list as it is reached.
	visited := make(map[NodeID]bool, occupied)
	visited[a.root] = true
	queue := []NodeID{a.root}
	for head := 0; head < len(queue); head++ {
		pid := queue[head]
		p := a.slots[pid.index]

		if p.firstChild.IsZero() != p.lastChild.IsZero() {
			return corrupt("node %v has only one of first and last child", pid)
		}

		var prev NodeID
		for c := p.firstChild; !c.IsZero(); {
			child, err := a.get(c)
			if err != nil {
				return corrupt("node %v links to missing child %v", pid, c)
			}
			if visited[c] {
				return corrupt("node %v reached twice (cycle or shared child)", c)
			}
			visited[c] = true
			if child.parent != pid {
				return corrupt("child %v of %v names parent %v", c, pid, child.parent)
			}
			if child.prevSibling != prev {
				return corrupt("child %v of %v has previous sibling %v, want %v", c, pid, child.prevSibling, prev)
			}
			queue = append(queue, c)
			prev = c
			c = child.nextSibling
		}
		if prev != p.lastChild {
			return corrupt("node %v last child is %v but its child list ends at %v", pid, p.lastChild, prev)
		}
	}

	if len(visited) != occupied {
		return corrupt("%d of %d nodes unreachable from the root", occupied-len(visited), occupied)
	}
	return nil
}
