// Package idtree provides an ordered tree whose nodes live in an arena and are
// named by NodeID handles instead of pointers.
//
// # Overview
//
// A Tree owns a slot table of nodes. Each node records its parent, its first
// and last child, and its previous and next sibling, so appending a child,
// detaching a subtree and re-attaching it elsewhere are all constant-time
// splices that leave every other node where it is. Callers only ever hold
// NodeIDs; every operation that takes one checks it first and fails with
// ErrHandleInvalid if the node is gone. A NodeID carries the generation of
// its slot, so a handle to a removed node keeps failing after its slot has
// been reused.
//
// # Basic Usage
//
//	t := idtree.New[string]()
//	root, _ := t.Insert("root", idtree.AsRoot())
//	a, _ := t.Insert("a", idtree.UnderNode(root))
//	_, _ = t.Insert("b", idtree.UnderNode(root))
//
//	for n, err := range t.PreOrder(root) {
//		if err != nil {
//			return err
//		}
//		fmt.Println(n.Data())
//	}
//
//	_ = t.MoveNode(a, idtree.ToRoot())
//
// # Errors
//
// Failures are reported as errors wrapping ErrHandleInvalid or
// ErrInvalidOperation; test them with errors.Is. A failed operation leaves
// the tree unchanged. GetUnchecked skips validation and panics on a bad id.
//
// # Concurrency
//
// A Tree is not safe for concurrent use. Any number of readers and iterators
// may share a tree while nothing mutates it; Insert, Remove, MoveNode,
// SwapNodes and the sort functions need exclusive access, and no iterator may
// be resumed across one of them. Iterators re-check each id they step to and
// yield ErrHandleInvalid if a node vanished underneath them.
package idtree
