package idtree

import (
	"iter"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTraversalOrders(t *testing.T) {
	f := newFixture(t)

	tests := []struct {
		name string
		got  func() []int
		want []int
	}{
		{"ancestors_of_leaf", func() []int { return collectData(t, f.tree.Ancestors(f.d)) }, []int{5, 2, 1}},
		{"ancestors_of_root", func() []int { return collectData(t, f.tree.Ancestors(f.root)) }, []int{1}},
		{"children_of_root", func() []int { return collectData(t, f.tree.Children(f.root)) }, []int{2, 3}},
		{"children_of_leaf", func() []int { return collectData(t, f.tree.Children(f.c)) }, nil},
		{"pre_order", func() []int { return collectData(t, f.tree.PreOrder(f.root)) }, []int{1, 2, 4, 5, 3, 6}},
		{"pre_order_subtree", func() []int { return collectData(t, f.tree.PreOrder(f.a)) }, []int{2, 4, 5}},
		{"post_order", func() []int { return collectData(t, f.tree.PostOrder(f.root)) }, []int{4, 5, 2, 6, 3, 1}},
		{"post_order_leaf", func() []int { return collectData(t, f.tree.PostOrder(f.e)) }, []int{6}},
		{"level_order", func() []int { return collectData(t, f.tree.LevelOrder(f.root)) }, []int{1, 2, 3, 4, 5, 6}},
		{"level_order_subtree", func() []int { return collectData(t, f.tree.LevelOrder(f.b)) }, []int{3, 6}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, tt.got()); diff != "" {
				t.Errorf("order mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestTraversalIDVariants(t *testing.T) {
	f := newFixture(t)

	assert.Equal(t, []NodeID{f.d, f.a, f.root}, collectIDs(t, f.tree.AncestorIDs(f.d)))
	assert.Equal(t, []NodeID{f.a, f.b}, collectIDs(t, f.tree.ChildIDs(f.root)))
	assert.Equal(t, []NodeID{f.root, f.a, f.c, f.d, f.b, f.e}, collectIDs(t, f.tree.PreOrderIDs(f.root)))
	assert.Equal(t, []NodeID{f.c, f.d, f.a, f.e, f.b, f.root}, collectIDs(t, f.tree.PostOrderIDs(f.root)))
	assert.Equal(t, []NodeID{f.root, f.a, f.b, f.c, f.d, f.e}, collectIDs(t, f.tree.LevelOrderIDs(f.root)))
}

func TestTraversalIsRepeatable(t *testing.T) {
	f := newFixture(t)

	for _, seq := range []func() []NodeID{
		func() []NodeID { return collectIDs(t, f.tree.PreOrderIDs(f.root)) },
		func() []NodeID { return collectIDs(t, f.tree.PostOrderIDs(f.root)) },
		func() []NodeID { return collectIDs(t, f.tree.LevelOrderIDs(f.root)) },
	} {
		first := seq()
		assert.Equal(t, first, seq())
		assert.Len(t, first, f.tree.Len())
	}
}

func TestTraversalStopsEarly(t *testing.T) {
	f := newFixture(t)

	var seen []int
	for n, err := range f.tree.PreOrder(f.root) {
		require.NoError(t, err)
		seen = append(seen, n.Data())
		if len(seen) == 3 {
			break
		}
	}
	assert.Equal(t, []int{1, 2, 4}, seen)
}

func TestTraversalInvalidStart(t *testing.T) {
	f := newFixture(t)
	_, err := f.tree.Remove(f.e, DropChildren)
	require.NoError(t, err)

	starts := map[string]func(NodeID) error{
		"ancestors": func(id NodeID) error { return firstErr(f.tree.Ancestors(id)) },
		"children":  func(id NodeID) error { return firstErr(f.tree.Children(id)) },
		"pre":       func(id NodeID) error { return firstErr(f.tree.PreOrder(id)) },
		"post":      func(id NodeID) error { return firstErr(f.tree.PostOrder(id)) },
		"level":     func(id NodeID) error { return firstErr(f.tree.LevelOrder(id)) },
	}
	for name, run := range starts {
		t.Run(name, func(t *testing.T) {
			assert.ErrorIs(t, run(f.e), ErrHandleInvalid)
			assert.ErrorIs(t, run(NodeID{}), ErrHandleInvalid)
		})
	}
}

func TestAncestorsDetectsRemovalMidWalk(t *testing.T) {
	f := newFixture(t)

	var got []NodeID
	var walkErr error
	for id, err := range f.tree.AncestorIDs(f.c) {
		if err != nil {
			walkErr = err
			break
		}
		got = append(got, id)
		if id == f.c {
			// Removing a (with c lifted into its place) strands the walk,
			// which is about to step to a.
			_, rmErr := f.tree.Remove(f.a, LiftChildren)
			require.NoError(t, rmErr)
		}
	}

	assert.Equal(t, []NodeID{f.c}, got)
	assert.ErrorIs(t, walkErr, ErrHandleInvalid)
}

func TestDeepTraversalDoesNotRecurse(t *testing.T) {
	const depth = 50000

	tree := NewBuilder[int]().WithRoot(0).Build()
	parent := tree.Root()
	for i := 1; i <= depth; i++ {
		parent = mustInsert(t, tree, i, UnderNode(parent))
	}

	assert.Len(t, collectIDs(t, tree.PreOrderIDs(tree.Root())), depth+1)
	assert.Len(t, collectIDs(t, tree.PostOrderIDs(tree.Root())), depth+1)
	assert.Len(t, collectIDs(t, tree.LevelOrderIDs(tree.Root())), depth+1)
	assert.Len(t, collectIDs(t, tree.AncestorIDs(parent)), depth+1)
}

// firstErr drains seq and returns the first error it yields.
func firstErr[V any](seq iter.Seq2[V, error]) error {
	for _, err := range seq {
		if err != nil {
			return err
		}
	}
	return nil
}
