package gametree

import (
	"fmt"

	"josekle/internal/errors"
)

// Tree владеет всеми узлами записи. Узлы лежат в арене, родитель хранится индексом.
type Tree struct {
	width  int
	height int
	nodes  []*Node
}

// New создаёт дерево с пустым корнем.
func New(width, height int) (*Tree, error) {
	if width < 1 || height < 1 || width > MaxSize || height > MaxSize {
		return nil, fmt.Errorf("%w: %dx%d", errors.ErrBoardSize, width, height)
	}
	t := &Tree{width: width, height: height}
	root := newNode(t, NoNode, NewBoard(width, height))
	root.id = 0
	t.nodes = append(t.nodes, root)
	return t, nil
}

func (t *Tree) Size() (width, height int) {
	return t.width, t.height
}

func (t *Tree) Root() *Node {
	return t.nodes[0]
}

// Node возвращает узел по индексу или nil, если узла нет (или он удалён).
func (t *Tree) Node(id NodeID) *Node {
	if id < 0 || int(id) >= len(t.nodes) {
		return nil
	}
	return t.nodes[id]
}

// Len: число живых узлов.
func (t *Tree) Len() int {
	count := 0
	for _, n := range t.nodes {
		if n != nil {
			count++
		}
	}
	return count
}

// Leaves возвращает листья поддерева n в порядке обхода в глубину.
func (t *Tree) Leaves(n *Node) []*Node {
	if n.ChildCount() == 0 {
		return []*Node{n}
	}
	var leaves []*Node
	for _, child := range n.Children() {
		leaves = append(leaves, t.Leaves(child)...)
	}
	return leaves
}

// Walk обходит поддерево n в глубину; обход ветки прекращается, если fn вернула false.
func (t *Tree) Walk(n *Node, fn func(*Node) bool) {
	if !fn(n) {
		return
	}
	for _, child := range n.Children() {
		t.Walk(child, fn)
	}
}

func (t *Tree) free(n *Node) {
	for _, id := range n.children {
		t.free(t.nodes[id])
	}
	t.nodes[n.id] = nil
	n.tree = nil
	n.id = NoNode
	n.parent = NoNode
	n.children = nil
}
