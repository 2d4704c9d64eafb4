package gametree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func childIDs(n *Node) []NodeID {
	var ids []NodeID
	for _, c := range n.Children() {
		ids = append(ids, c.ID())
	}
	return ids
}

func TestNew_RejectsBadSize(t *testing.T) {
	for _, size := range [][2]int{{0, 9}, {9, 0}, {53, 9}, {9, 53}} {
		_, err := New(size[0], size[1])
		assert.Error(t, err, "%v", size)
	}
	tree, err := New(52, 1)
	require.NoError(t, err)
	w, h := tree.Size()
	assert.Equal(t, 52, w)
	assert.Equal(t, 1, h)
}

func TestRoot(t *testing.T) {
	tree := newTree(t, 9, 9)
	root := tree.Root()
	assert.True(t, root.IsRoot())
	assert.Nil(t, root.Parent())
	assert.Empty(t, root.Siblings())
	assert.Equal(t, TypeEmpty, root.Type())
	assert.Equal(t, 0, root.Depth())
}

func TestAddChild_OnlyOwnDetachedChild(t *testing.T) {
	tree := newTree(t, 9, 9)
	root := tree.Root()
	a := root.MakeChild()
	assert.False(t, a.Attached())
	require.True(t, root.AddChild(a))
	assert.True(t, a.Attached())
	assert.False(t, root.AddChild(a), "already attached")

	b := a.MakeChild()
	assert.False(t, root.AddChild(b), "made by another parent")

	other := newTree(t, 9, 9)
	assert.False(t, other.Root().AddChild(root.MakeChild()))
}

func TestPromoteDemote(t *testing.T) {
	tree := newTree(t, 9, 9)
	root := tree.Root()
	a := play(t, root, 1, 1, Black)
	b := play(t, root, 2, 2, Black)
	c := play(t, root, 3, 3, Black)

	assert.False(t, root.Promote(a), "first child")
	assert.False(t, root.Demote(c), "last child")
	assert.Equal(t, []NodeID{a.ID(), b.ID(), c.ID()}, childIDs(root))

	require.True(t, root.Promote(c))
	assert.Equal(t, []NodeID{a.ID(), c.ID(), b.ID()}, childIDs(root))
	require.True(t, root.Demote(a))
	assert.Equal(t, []NodeID{c.ID(), a.ID(), b.ID()}, childIDs(root))

	assert.False(t, root.Promote(play(t, a, 4, 4, White)), "not a child of root")
}

func TestRemoveChild_DropsSubtree(t *testing.T) {
	tree := newTree(t, 9, 9)
	root := tree.Root()
	a := play(t, root, 1, 1, Black)
	aa := play(t, a, 2, 2, White)
	play(t, aa, 3, 3, Black)
	b := play(t, root, 5, 5, Black)
	require.Equal(t, 5, tree.Len())

	require.True(t, root.RemoveChild(a))
	assert.Equal(t, 2, tree.Len())
	assert.Equal(t, []NodeID{b.ID()}, childIDs(root))
	assert.False(t, a.Attached())
	assert.Nil(t, a.Parent())
	assert.Nil(t, tree.Node(aa.ID()))
	assert.False(t, root.RemoveChild(a))
}

func TestMarkup_CopiedToNewChild(t *testing.T) {
	tree := newTree(t, 9, 9)
	root := tree.Root()
	require.True(t, root.AddMarkup(4, 4, TriangleMark))
	n := play(t, root, 3, 3, Black)

	assert.Equal(t, TriangleMark, n.Markup(4, 4))
	require.True(t, n.AddMarkup(4, 4, NoMark))
	assert.True(t, n.Markup(4, 4).IsNone())
	assert.Equal(t, TriangleMark, root.Markup(4, 4))

	require.True(t, root.AddMarkup(6, 6, CircleMark))
	assert.True(t, n.Markup(6, 6).IsNone(), "existing children keep their own marks")

	n.ClearMarkup()
	assert.True(t, n.Markup(4, 4).IsNone())

	assert.False(t, n.AddMarkup(0, 4, CircleMark))
	assert.False(t, n.AddMarkup(4, 10, CircleMark))
}

func TestMarkup_RootKeepsSolvedHint(t *testing.T) {
	tree := newTree(t, 9, 9)
	root := tree.Root()
	require.True(t, root.AddMarkup(5, 5, NumberedMark(3)))

	assert.False(t, root.AddMarkup(5, 5, HintPresentMark))
	assert.Equal(t, NumberedMark(3), root.Markup(5, 5))

	// вне корня понижение разрешено
	n := play(t, root, 1, 1, Black)
	assert.True(t, n.AddMarkup(5, 5, HintPresentMark))
}

func TestBestHint(t *testing.T) {
	tree := newTree(t, 9, 9)
	root := tree.Root()
	assert.Equal(t, MarkNone, root.BestHint())
	require.True(t, root.AddMarkup(1, 1, HintMissMark))
	require.True(t, root.AddMarkup(2, 2, CrossMark))
	assert.Equal(t, MarkTriangle, root.BestHint())
	require.True(t, root.AddMarkup(3, 3, HintPresentMark))
	assert.Equal(t, MarkSquare, root.BestHint())
}

func TestNextLabel(t *testing.T) {
	tests := []struct {
		in   string
		want string
		ok   bool
	}{
		{"1", "2", true},
		{"9", "10", true},
		{"-1", "0", true},
		{"a", "b", true},
		{"z", "A", true},
		{"Z", "a", true},
		{"Ab", "Ac", true},
		{"x1", "", false},
		{"?", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := NextLabel(tt.in)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPathAndMoveSequence(t *testing.T) {
	tree := newTree(t, 9, 9)
	a := play(t, tree.Root(), 3, 3, Black)
	b := play(t, a, 4, 4, White)
	c := play(t, b, 5, 5, Black)

	path := c.Path()
	require.Len(t, path, 4)
	assert.Same(t, tree.Root(), path[0])
	assert.Same(t, c, path[3])
	assert.Equal(t, 3, c.Depth())
	assert.Equal(t, []Point{{3, 3}, {4, 4}, {5, 5}}, c.MoveSequence())

	d := play(t, a, 6, 6, White)
	leaves := tree.Leaves(tree.Root())
	require.Len(t, leaves, 2)
	assert.Same(t, c, leaves[0])
	assert.Same(t, d, leaves[1])
}

func TestWalk(t *testing.T) {
	tree := newTree(t, 9, 9)
	a := play(t, tree.Root(), 3, 3, Black)
	b := play(t, a, 4, 4, White)
	play(t, b, 5, 5, Black)
	d := play(t, a, 6, 6, White)
	play(t, d, 7, 7, Black)

	var all []NodeID
	tree.Walk(tree.Root(), func(n *Node) bool {
		all = append(all, n.ID())
		return true
	})
	assert.Len(t, all, tree.Len())
	assert.Equal(t, tree.Root().ID(), all[0])

	// ветка d не раскрывается
	var pruned []*Node
	tree.Walk(tree.Root(), func(n *Node) bool {
		pruned = append(pruned, n)
		return n != d
	})
	assert.Len(t, pruned, tree.Len()-1)
	assert.Same(t, d, pruned[len(pruned)-1])
}
