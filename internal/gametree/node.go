package gametree

// NodeID: индекс узла в арене дерева.
type NodeID int

const NoNode NodeID = -1

type NodeType int

const (
	TypeEmpty NodeType = iota
	TypeMove
	TypeSetup
)

func (t NodeType) String() string {
	switch t {
	case TypeMove:
		return "move"
	case TypeSetup:
		return "setup"
	}
	return "empty"
}

// Move: ход в узле. Для паса координаты нулевые.
// Captures отрицательно, если ход был самоубийством (разрешённым).
type Move struct {
	Point
	Color     Color
	Captures  int
	Overwrite bool
}

// Node: одна позиция дерева записи.
type Node struct {
	tree     *Tree
	id       NodeID
	parent   NodeID
	children []NodeID

	move    *Move
	setup   map[Point]int
	markup  map[Point]Markup
	comment string
	board   *Board

	blackCaps  int
	whiteCaps  int
	moveNumber int
	lastMove   Color

	// Submitted отмечает узлы, которые входили в проверенный вариант.
	Submitted bool
}

func newNode(t *Tree, parent NodeID, board *Board) *Node {
	return &Node{
		tree:   t,
		id:     NoNode,
		parent: parent,
		setup:  make(map[Point]int),
		markup: make(map[Point]Markup),
		board:  board,
	}
}

func (n *Node) ID() NodeID {
	return n.id
}

// Attached сообщает, принадлежит ли узел дереву.
func (n *Node) Attached() bool {
	return n.tree != nil && n.id != NoNode
}

func (n *Node) IsRoot() bool {
	return n.tree != nil && n.parent == NoNode
}

// Parent возвращает nil для корня и для удалённых узлов.
func (n *Node) Parent() *Node {
	if n.tree == nil {
		return nil
	}
	return n.tree.Node(n.parent)
}

func (n *Node) Children() []*Node {
	if n.tree == nil {
		return nil
	}
	res := make([]*Node, 0, len(n.children))
	for _, id := range n.children {
		res = append(res, n.tree.nodes[id])
	}
	return res
}

func (n *Node) ChildCount() int {
	return len(n.children)
}

// Child возвращает i-го потомка или nil.
func (n *Node) Child(i int) *Node {
	if n.tree == nil || i < 0 || i >= len(n.children) {
		return nil
	}
	return n.tree.nodes[n.children[i]]
}

// Siblings возвращает потомков родителя (включая сам узел); у корня братьев нет.
func (n *Node) Siblings() []*Node {
	parent := n.Parent()
	if parent == nil {
		return nil
	}
	return parent.Children()
}

func (n *Node) Size() (width, height int) {
	return n.board.Size()
}

func (n *Node) Move() (Move, bool) {
	if n.move == nil {
		return Move{}, false
	}
	return *n.move, true
}

func (n *Node) HasMove() bool {
	return n.move != nil
}

func (n *Node) Stone(x, y int) Color {
	return n.board.Get(x, y)
}

// Board возвращает копию состояния доски в этом узле.
func (n *Node) Board() *Board {
	return n.board.Clone()
}

func (n *Node) Captures() (black, white int) {
	return n.blackCaps, n.whiteCaps
}

func (n *Node) MoveNumber() int {
	return n.moveNumber
}

func (n *Node) Comment() string {
	return n.comment
}

func (n *Node) SetComment(text string) {
	n.comment = text
}

func (n *Node) Type() NodeType {
	if n.move != nil {
		return TypeMove
	}
	if len(n.setup) > 0 {
		return TypeSetup
	}
	return TypeEmpty
}

// IsMutable: ход можно добавить только в пустой узел без потомков,
// установочные камни можно ставить в узел без хода и без потомков.
func (n *Node) IsMutable(kind NodeType) bool {
	if len(n.children) > 0 {
		return false
	}
	switch kind {
	case TypeMove:
		return n.Type() == TypeEmpty
	case TypeSetup:
		return n.Type() != TypeMove
	}
	return false
}

// Setup возвращает итоговый цвет установочного камня в (x, y); false, если изменений в узле нет.
func (n *Node) Setup(x, y int) (Color, bool) {
	if n.setup[Point{x, y}] == 0 {
		return Empty, false
	}
	return n.board.Get(x, y), true
}

func (n *Node) Markup(x, y int) Markup {
	return n.markup[Point{x, y}]
}

// AddMarkup ставит (или снимает NoMark) пометку. В корне решённую подсказку изменить нельзя.
func (n *Node) AddMarkup(x, y int, mark Markup) bool {
	if !n.board.InBounds(x, y) {
		return false
	}
	p := Point{x, y}
	if n.IsRoot() && n.markup[p].Kind == MarkNumbered {
		return false
	}
	if mark.IsNone() {
		delete(n.markup, p)
	} else {
		n.markup[p] = mark
	}
	return true
}

// ClearMarkup снимает все пометки узла, включая скопированные у родителя.
func (n *Node) ClearMarkup() {
	n.markup = make(map[Point]Markup)
}

// BestHint возвращает лучшую из подсказок (круг, квадрат, треугольник) на доске узла.
func (n *Node) BestHint() MarkKind {
	best := 0
	for _, m := range n.markup {
		if r := m.rank(); r > 0 && (best == 0 || r < best) {
			best = r
		}
	}
	return MarkKind(best)
}

// MakeChild создаёт потомка с копией доски и пометок, но не добавляет его в дерево.
func (n *Node) MakeChild() *Node {
	child := newNode(n.tree, n.id, n.board.Clone())
	for p, m := range n.markup {
		child.markup[p] = m
	}
	child.blackCaps = n.blackCaps
	child.whiteCaps = n.whiteCaps
	child.moveNumber = n.moveNumber
	child.lastMove = n.lastMove
	return child
}

// AddChild добавляет в дерево потомка, созданного MakeChild этого узла.
func (n *Node) AddChild(child *Node) bool {
	if !n.Attached() || child.tree != n.tree || child.id != NoNode || child.parent != n.id {
		return false
	}
	child.id = NodeID(len(n.tree.nodes))
	n.tree.nodes = append(n.tree.nodes, child)
	n.children = append(n.children, child.id)
	return true
}

// RemoveChild отрезает ветку вместе со всем поддеревом.
func (n *Node) RemoveChild(child *Node) bool {
	i := n.indexOf(child)
	if i == -1 {
		return false
	}
	n.children = append(n.children[:i], n.children[i+1:]...)
	n.tree.free(child)
	return true
}

// Promote поднимает вариант на одну позицию выше.
func (n *Node) Promote(child *Node) bool {
	i := n.indexOf(child)
	if i <= 0 {
		return false
	}
	n.children[i], n.children[i-1] = n.children[i-1], n.children[i]
	return true
}

// Demote опускает вариант на одну позицию ниже.
func (n *Node) Demote(child *Node) bool {
	i := n.indexOf(child)
	if i == -1 || i == len(n.children)-1 {
		return false
	}
	n.children[i], n.children[i+1] = n.children[i+1], n.children[i]
	return true
}

func (n *Node) indexOf(child *Node) int {
	if child == nil || !child.Attached() || child.tree != n.tree {
		return -1
	}
	for i, id := range n.children {
		if id == child.id {
			return i
		}
	}
	return -1
}

// Depth: число рёбер от корня.
func (n *Node) Depth() int {
	depth := 0
	for node := n.Parent(); node != nil; node = node.Parent() {
		depth++
	}
	return depth
}

// Path возвращает узлы от корня до n включительно.
func (n *Node) Path() []*Node {
	var path []*Node
	for node := n; node != nil; node = node.Parent() {
		path = append(path, node)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// MoveSequence: координаты ходов от ближайшего предка без хода до узла.
func (n *Node) MoveSequence() []Point {
	var moves []Point
	for node := n; node != nil && node.move != nil; node = node.Parent() {
		moves = append(moves, node.move.Point)
	}
	for i, j := 0, len(moves)-1; i < j; i, j = i+1, j-1 {
		moves[i], moves[j] = moves[j], moves[i]
	}
	return moves
}
