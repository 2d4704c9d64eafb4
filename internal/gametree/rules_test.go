package gametree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTree(t *testing.T, w, h int) *Tree {
	t.Helper()
	tree, err := New(w, h)
	require.NoError(t, err)
	return tree
}

// play добавляет потомка с ходом и возвращает его; падает, если ход не прошёл.
func play(t *testing.T, n *Node, x, y int, c Color) *Node {
	t.Helper()
	child := n.MakeChild()
	require.True(t, child.PlayMove(x, y, c, false), "move %s at %d,%d", c, x, y)
	require.True(t, n.AddChild(child))
	return child
}

func TestPlayMove_OccupiedPoint(t *testing.T) {
	tree := newTree(t, 9, 9)
	b := play(t, tree.Root(), 3, 3, Black)

	w := b.MakeChild()
	assert.False(t, w.PlayMove(3, 3, White, false))
	assert.Equal(t, TypeEmpty, w.Type())

	w = b.MakeChild()
	require.True(t, w.PlayMove(3, 3, White, true))
	move, ok := w.Move()
	require.True(t, ok)
	assert.True(t, move.Overwrite)
	assert.Equal(t, 0, move.Captures)
	assert.Equal(t, White, w.Stone(3, 3))
	black, white := w.Captures()
	assert.Zero(t, black)
	assert.Zero(t, white)
}

func TestPlayMove_CaptureSingleStone(t *testing.T) {
	tree := newTree(t, 9, 9)
	n := play(t, tree.Root(), 4, 5, Black)
	n = play(t, n, 5, 5, White)
	n = play(t, n, 6, 5, Black)
	n = play(t, n, 1, 1, White)
	n = play(t, n, 5, 4, Black)
	n = play(t, n, 1, 2, White)
	n = play(t, n, 5, 6, Black)

	move, _ := n.Move()
	assert.Equal(t, 1, move.Captures)
	assert.Equal(t, Empty, n.Stone(5, 5))
	black, white := n.Captures()
	assert.Equal(t, 1, black)
	assert.Zero(t, white)

	// у родителя камень остался на месте
	assert.Equal(t, White, n.Parent().Stone(5, 5))
}

func TestPlayMove_CaptureGroup(t *testing.T) {
	tree := newTree(t, 5, 5)
	root := tree.Root()
	require.True(t, root.PlaceSetup(1, 1, White))
	require.True(t, root.PlaceSetup(2, 1, White))
	require.True(t, root.PlaceSetup(1, 2, Black))
	require.True(t, root.PlaceSetup(2, 2, Black))

	n := play(t, root, 3, 1, Black)
	move, _ := n.Move()
	assert.Equal(t, 2, move.Captures)
	assert.Equal(t, Empty, n.Stone(1, 1))
	assert.Equal(t, Empty, n.Stone(2, 1))
	black, _ := n.Captures()
	assert.Equal(t, 2, black)
}

func TestPlayMove_Suicide(t *testing.T) {
	tree := newTree(t, 5, 5)
	root := tree.Root()
	require.True(t, root.PlaceSetup(2, 1, White))
	require.True(t, root.PlaceSetup(1, 2, White))

	n := root.MakeChild()
	assert.False(t, n.PlayMove(1, 1, Black, false))
	assert.Equal(t, TypeEmpty, n.Type())
	assert.Equal(t, Empty, n.Stone(1, 1))

	require.True(t, n.PlayMove(1, 1, Black, true))
	move, _ := n.Move()
	assert.Equal(t, -1, move.Captures)
	assert.Equal(t, Empty, n.Stone(1, 1))
	black, white := n.Captures()
	assert.Zero(t, black)
	assert.Equal(t, 1, white)
}

func TestPlayMove_SuicideOnTinyBoard(t *testing.T) {
	tree := newTree(t, 1, 1)
	n := tree.Root().MakeChild()
	assert.False(t, n.PlayMove(1, 1, Black, false))
	assert.True(t, n.PlayMove(1, 1, Black, true))
}

// koPosition строит классическое ко: белые только что взяли камень в (2,2) ходом (3,2).
func koPosition(t *testing.T) *Node {
	t.Helper()
	tree := newTree(t, 5, 5)
	root := tree.Root()
	for _, p := range []Point{{2, 1}, {1, 2}, {2, 3}} {
		require.True(t, root.PlaceSetup(p.X, p.Y, Black))
	}
	for _, p := range []Point{{3, 1}, {4, 2}, {3, 3}} {
		require.True(t, root.PlaceSetup(p.X, p.Y, White))
	}
	n := play(t, root, 3, 2, Black)
	n = play(t, n, 2, 2, White)
	move, _ := n.Move()
	require.Equal(t, 1, move.Captures)
	require.Equal(t, Empty, n.Stone(3, 2))
	return n
}

func TestPlayMove_KoRecaptureRejected(t *testing.T) {
	n := koPosition(t)

	retake := n.MakeChild()
	assert.False(t, retake.PlayMove(3, 2, Black, false))
	assert.True(t, retake.PlayMove(3, 2, Black, true))
	assert.Equal(t, Empty, retake.Stone(2, 2))
}

func TestPlayMove_KoAfterTenukiAllowed(t *testing.T) {
	n := koPosition(t)
	n = play(t, n, 5, 5, Black)
	n = play(t, n, 5, 4, White)

	retake := n.MakeChild()
	assert.True(t, retake.PlayMove(3, 2, Black, false))
}

func TestPlayMove_MultiStoneCaptureIsNotKo(t *testing.T) {
	tree := newTree(t, 5, 5)
	root := tree.Root()
	// белые (1,1),(2,1) в атари; чёрные уже стоят в (1,2),(2,2)
	for _, p := range []Point{{1, 2}, {2, 2}} {
		require.True(t, root.PlaceSetup(p.X, p.Y, Black))
	}
	for _, p := range []Point{{1, 1}, {2, 1}, {4, 1}, {3, 2}} {
		require.True(t, root.PlaceSetup(p.X, p.Y, White))
	}
	n := play(t, root, 3, 1, Black)
	move, _ := n.Move()
	require.Equal(t, 2, move.Captures)

	// белые сразу отвечают в захваченный пункт: ограничение ко не применяется
	w := n.MakeChild()
	assert.True(t, w.PlayMove(2, 1, White, false))
}

func TestPlayMove_OutOfBoundsIsPass(t *testing.T) {
	tree := newTree(t, 9, 9)
	n := tree.Root().MakeChild()
	require.True(t, n.PlayMove(0, 0, Black, false))
	move, ok := n.Move()
	require.True(t, ok)
	assert.True(t, move.IsPass())
	assert.Equal(t, Black, move.Color)
	assert.True(t, n.Board().Equal(tree.Root().Board()))

	n = tree.Root().MakeChild()
	require.True(t, n.PlayMove(10, 3, White, false))
	move, _ = n.Move()
	assert.True(t, move.IsPass())
}

func TestPlayMove_ImmutableNode(t *testing.T) {
	tree := newTree(t, 9, 9)
	n := play(t, tree.Root(), 3, 3, Black)
	assert.False(t, n.PlayMove(4, 4, White, true))
	assert.False(t, tree.Root().PlayMove(4, 4, White, true), "root has children")
}

func TestPlayMove_AutoColor(t *testing.T) {
	tree := newTree(t, 9, 9)
	root := tree.Root()
	assert.Equal(t, Black, root.NextColor())

	n := play(t, root, 3, 3, Empty)
	move, _ := n.Move()
	assert.Equal(t, Black, move.Color)
	assert.Equal(t, White, n.NextColor())

	n = play(t, n, 4, 4, Empty)
	move, _ = n.Move()
	assert.Equal(t, White, move.Color)
	assert.Equal(t, 2, n.MoveNumber())

	other := newTree(t, 9, 9)
	require.True(t, other.Root().PlaceSetup(1, 1, Black))
	assert.Equal(t, White, other.Root().NextColor())
}

func TestPlaceSetup(t *testing.T) {
	tree := newTree(t, 9, 9)
	root := tree.Root()
	require.True(t, root.PlaceSetup(1, 1, Black))
	n := play(t, root, 5, 5, White)

	s := n.MakeChild()
	assert.False(t, s.PlaceSetup(0, 1, Black))
	assert.False(t, s.PlaceSetup(1, 1, Black), "same color is not a change")
	require.True(t, s.PlaceSetup(1, 1, White))
	require.True(t, s.PlaceSetup(5, 5, Empty))
	assert.Equal(t, TypeSetup, s.Type())

	c, ok := s.Setup(1, 1)
	assert.True(t, ok)
	assert.Equal(t, White, c)
	c, ok = s.Setup(5, 5)
	assert.True(t, ok)
	assert.Equal(t, Empty, c)
	_, ok = s.Setup(2, 2)
	assert.False(t, ok)

	// возврат к цвету родителя убирает изменение
	require.True(t, s.PlaceSetup(1, 1, Black))
	_, ok = s.Setup(1, 1)
	assert.False(t, ok)

	assert.False(t, n.PlaceSetup(2, 2, Black), "move node rejects setup")
	assert.False(t, s.PlayMove(2, 2, Black, false), "setup node rejects move")
}

func TestReplayIsDeterministic(t *testing.T) {
	seq := []Point{{3, 3}, {4, 4}, {4, 3}, {5, 3}, {5, 4}, {3, 4}, {6, 4}, {4, 5}, {4, 4}}

	build := func() *Node {
		tree := newTree(t, 9, 9)
		n := tree.Root()
		for _, p := range seq {
			child := n.MakeChild()
			if child.PlayMove(p.X, p.Y, Empty, false) {
				require.True(t, n.AddChild(child))
				n = child
			}
		}
		return n
	}

	a, b := build(), build()
	assert.True(t, a.Board().Equal(b.Board()))
	ab, aw := a.Captures()
	bb, bw := b.Captures()
	assert.Equal(t, ab, bb)
	assert.Equal(t, aw, bw)
}

func TestCapturesNeverDecreaseAlongPath(t *testing.T) {
	n := koPosition(t)
	n = play(t, n, 5, 5, Black)
	prevB, prevW := 0, 0
	for _, node := range n.Path() {
		b, w := node.Captures()
		assert.GreaterOrEqual(t, b, prevB)
		assert.GreaterOrEqual(t, w, prevW)
		prevB, prevW = b, w
	}
}
