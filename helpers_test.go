package idtree

import (
	"iter"
	"testing"

	"github.com/stretchr/testify/require"
)

// fixture is the tree most tests start from:
//
//	root(1)
//	├── a(2)
//	│   ├── c(4)
//	│   └── d(5)
//	└── b(3)
//	    └── e(6)
type fixture struct {
	tree                *Tree[int]
	root, a, b, c, d, e NodeID
}

func newFixture(t *testing.T) fixture {
	t.Helper()

	f := fixture{tree: NewBuilder[int]().WithRoot(1).WithNodeCapacity(8).Build()}
	f.root = f.tree.Root()
	f.a = mustInsert(t, f.tree, 2, UnderNode(f.root))
	f.b = mustInsert(t, f.tree, 3, UnderNode(f.root))
	f.c = mustInsert(t, f.tree, 4, UnderNode(f.a))
	f.d = mustInsert(t, f.tree, 5, UnderNode(f.a))
	f.e = mustInsert(t, f.tree, 6, UnderNode(f.b))
	requireValid(t, f.tree)
	return f
}

func mustInsert[T any](t *testing.T, tree *Tree[T], data T, behavior InsertBehavior) NodeID {
	t.Helper()
	id, err := tree.Insert(data, behavior)
	require.NoError(t, err)
	return id
}

func requireValid[T any](t *testing.T, tree *Tree[T]) {
	t.Helper()
	require.NoError(t, tree.CheckInvariants())
}

// collectIDs drains an id sequence, failing the test on any error.
func collectIDs(t *testing.T, seq iter.Seq2[NodeID, error]) []NodeID {
	t.Helper()
	var ids []NodeID
	for id, err := range seq {
		require.NoError(t, err)
		ids = append(ids, id)
	}
	return ids
}

// collectData drains a node sequence into the nodes' data.
func collectData[T any](t *testing.T, seq iter.Seq2[*Node[T], error]) []T {
	t.Helper()
	var out []T
	for n, err := range seq {
		require.NoError(t, err)
		out = append(out, n.Data())
	}
	return out
}

// dataOf renders the children of id as data values.
func dataOf[T any](t *testing.T, tree *Tree[T], id NodeID) []T {
	t.Helper()
	return collectData(t, tree.Children(id))
}

// shape renders a subtree as nested data for isomorphism checks.
type shape[T comparable] struct {
	Data     T
	Children []shape[T]
}

func shapeOf[T comparable](t *testing.T, tree *Tree[T], id NodeID) shape[T] {
	t.Helper()
	n, err := tree.Get(id)
	require.NoError(t, err)
	s := shape[T]{Data: n.Data()}
	for c := range tree.ChildIDs(id) {
		s.Children = append(s.Children, shapeOf(t, tree, c))
	}
	return s
}
