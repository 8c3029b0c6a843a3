package idtree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSwapDataOnly(t *testing.T) {
	f := newFixture(t)

	require.NoError(t, f.tree.SwapNodes(f.a, f.e, SwapDataOnly))

	assert.Equal(t, 6, f.tree.GetUnchecked(f.a).Data())
	assert.Equal(t, 2, f.tree.GetUnchecked(f.e).Data())
	assert.Equal(t, []NodeID{f.c, f.d}, collectIDs(t, f.tree.ChildIDs(f.a)))
	assert.Equal(t, f.b, f.tree.GetUnchecked(f.e).Parent())
	requireValid(t, f.tree)
}

func TestSwapDataOnlyAncestorAllowed(t *testing.T) {
	f := newFixture(t)

	require.NoError(t, f.tree.SwapNodes(f.root, f.d, SwapDataOnly))
	assert.Equal(t, 5, f.tree.GetUnchecked(f.root).Data())
	assert.Equal(t, 1, f.tree.GetUnchecked(f.d).Data())
	requireValid(t, f.tree)
}

func TestSwapSubtrees(t *testing.T) {
	tests := []struct {
		name  string
		pick  func(f fixture) (NodeID, NodeID)
		check func(t *testing.T, f fixture)
	}{
		{
			name: "adjacent_siblings",
			pick: func(f fixture) (NodeID, NodeID) { return f.a, f.b },
			check: func(t *testing.T, f fixture) {
				assert.Equal(t, []NodeID{f.b, f.a}, collectIDs(t, f.tree.ChildIDs(f.root)))
				assert.Equal(t, []NodeID{f.c, f.d}, collectIDs(t, f.tree.ChildIDs(f.a)))
				assert.Equal(t, []NodeID{f.e}, collectIDs(t, f.tree.ChildIDs(f.b)))
			},
		},
		{
			name: "cousins",
			pick: func(f fixture) (NodeID, NodeID) { return f.c, f.e },
			check: func(t *testing.T, f fixture) {
				assert.Equal(t, []NodeID{f.e, f.d}, collectIDs(t, f.tree.ChildIDs(f.a)))
				assert.Equal(t, []NodeID{f.c}, collectIDs(t, f.tree.ChildIDs(f.b)))
				assert.Equal(t, f.a, f.tree.GetUnchecked(f.e).Parent())
				assert.Equal(t, f.b, f.tree.GetUnchecked(f.c).Parent())
			},
		},
		{
			name: "uncle_and_nephew",
			pick: func(f fixture) (NodeID, NodeID) { return f.b, f.c },
			check: func(t *testing.T, f fixture) {
				assert.Equal(t, []NodeID{f.a, f.c}, collectIDs(t, f.tree.ChildIDs(f.root)))
				assert.Equal(t, []NodeID{f.b, f.d}, collectIDs(t, f.tree.ChildIDs(f.a)))
				assert.Equal(t, []NodeID{f.e}, collectIDs(t, f.tree.ChildIDs(f.b)))
			},
		},
		{
			name: "reversed_arguments",
			pick: func(f fixture) (NodeID, NodeID) { return f.d, f.c },
			check: func(t *testing.T, f fixture) {
				assert.Equal(t, []NodeID{f.d, f.c}, collectIDs(t, f.tree.ChildIDs(f.a)))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			first, second := tt.pick(f)

			require.NoError(t, f.tree.SwapNodes(first, second, SwapSubtrees))
			tt.check(t, f)
			assert.Equal(t, f.root, f.tree.Root())
			requireValid(t, f.tree)
		})
	}
}

func TestSwapSubtreesNonAdjacentSiblings(t *testing.T) {
	tree := NewBuilder[string]().WithRoot("p").Build()
	p := tree.Root()
	x := mustInsert(t, tree, "x", UnderNode(p))
	y := mustInsert(t, tree, "y", UnderNode(p))
	z := mustInsert(t, tree, "z", UnderNode(p))

	require.NoError(t, tree.SwapNodes(x, z, SwapSubtrees))

	assert.Equal(t, []NodeID{z, y, x}, collectIDs(t, tree.ChildIDs(p)))
	requireValid(t, tree)
}

func TestSwapSubtreesRejectsAncestors(t *testing.T) {
	f := newFixture(t)
	before := shapeOf(t, f.tree, f.root)

	for _, pair := range [][2]NodeID{{f.a, f.c}, {f.d, f.a}, {f.root, f.e}} {
		err := f.tree.SwapNodes(pair[0], pair[1], SwapSubtrees)
		assert.ErrorIs(t, err, ErrInvalidOperation)
	}

	assert.Equal(t, before, shapeOf(t, f.tree, f.root))
	requireValid(t, f.tree)
}

func TestSwapNodesOnly(t *testing.T) {
	tests := []struct {
		name  string
		pick  func(f fixture) (NodeID, NodeID)
		check func(t *testing.T, f fixture)
	}{
		{
			name: "parent_and_child",
			pick: func(f fixture) (NodeID, NodeID) { return f.a, f.c },
			check: func(t *testing.T, f fixture) {
				assert.Equal(t, []NodeID{f.c, f.b}, collectIDs(t, f.tree.ChildIDs(f.root)))
				assert.Equal(t, []NodeID{f.a, f.d}, collectIDs(t, f.tree.ChildIDs(f.c)))
				assert.False(t, f.tree.GetUnchecked(f.a).HasChildren())
				assert.Equal(t, f.c, f.tree.GetUnchecked(f.d).Parent())
			},
		},
		{
			name: "root_and_child",
			pick: func(f fixture) (NodeID, NodeID) { return f.root, f.b },
			check: func(t *testing.T, f fixture) {
				assert.Equal(t, f.b, f.tree.Root())
				assert.Equal(t, []NodeID{f.a, f.root}, collectIDs(t, f.tree.ChildIDs(f.b)))
				assert.Equal(t, []NodeID{f.e}, collectIDs(t, f.tree.ChildIDs(f.root)))
				assert.True(t, f.tree.GetUnchecked(f.b).Parent().IsZero())
			},
		},
		{
			name: "adjacent_siblings",
			pick: func(f fixture) (NodeID, NodeID) { return f.a, f.b },
			check: func(t *testing.T, f fixture) {
				assert.Equal(t, []NodeID{f.b, f.a}, collectIDs(t, f.tree.ChildIDs(f.root)))
				assert.Equal(t, []NodeID{f.c, f.d}, collectIDs(t, f.tree.ChildIDs(f.b)))
				assert.Equal(t, []NodeID{f.e}, collectIDs(t, f.tree.ChildIDs(f.a)))
			},
		},
		{
			name: "grandparent_and_grandchild",
			pick: func(f fixture) (NodeID, NodeID) { return f.e, f.root },
			check: func(t *testing.T, f fixture) {
				assert.Equal(t, f.e, f.tree.Root())
				assert.Equal(t, []NodeID{f.a, f.b}, collectIDs(t, f.tree.ChildIDs(f.e)))
				assert.Equal(t, []NodeID{f.root}, collectIDs(t, f.tree.ChildIDs(f.b)))
				assert.False(t, f.tree.GetUnchecked(f.root).HasChildren())
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			dataBefore := collectData(t, f.tree.PreOrder(f.root))
			first, second := tt.pick(f)

			require.NoError(t, f.tree.SwapNodes(first, second, SwapNodesOnly))
			tt.check(t, f)
			requireValid(t, f.tree)

			// The shape is kept; only the two data values trade places.
			dataAfter := collectData(t, f.tree.PreOrder(f.tree.Root()))
			assert.ElementsMatch(t, dataBefore, dataAfter)
		})
	}
}

func TestSwapSameNodeIsNoop(t *testing.T) {
	f := newFixture(t)
	before := shapeOf(t, f.tree, f.root)

	for _, behavior := range []SwapBehavior{SwapDataOnly, SwapSubtrees, SwapNodesOnly} {
		require.NoError(t, f.tree.SwapNodes(f.a, f.a, behavior))
	}
	assert.Equal(t, before, shapeOf(t, f.tree, f.root))
	requireValid(t, f.tree)
}

func TestSwapInvalid(t *testing.T) {
	f := newFixture(t)
	_, err := f.tree.Remove(f.e, DropChildren)
	require.NoError(t, err)
	before := shapeOf(t, f.tree, f.root)

	assert.ErrorIs(t, f.tree.SwapNodes(f.e, f.a, SwapDataOnly), ErrHandleInvalid)
	assert.ErrorIs(t, f.tree.SwapNodes(f.a, f.e, SwapSubtrees), ErrHandleInvalid)
	assert.ErrorIs(t, f.tree.SwapNodes(f.a, f.b, SwapBehavior(7)), ErrInvalidOperation)
	assert.Equal(t, before, shapeOf(t, f.tree, f.root))
}

func TestSwapBehaviorString(t *testing.T) {
	assert.Equal(t, "data-only", SwapDataOnly.String())
	assert.Equal(t, "subtrees", SwapSubtrees.String())
	assert.Equal(t, "nodes-only", SwapNodesOnly.String())
}
