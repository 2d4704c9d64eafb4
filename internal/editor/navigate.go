package editor

import (
	"regexp"
	"strconv"

	"josekle/internal/gametree"
)

// NextNode идёт вперёд на n узлов (n = -1: до конца), предпочитая путь из истории.
func (e *Editor) NextNode(n int) bool {
	if e.current.ChildCount() == 0 {
		return false
	}
	for e.current.ChildCount() > 0 && n != 0 {
		if last := len(e.history) - 1; last >= 0 {
			e.current = e.history[last]
			e.history = e.history[:last]
		} else {
			e.current = e.current.Child(0)
		}
		n--
	}
	e.notify(Event{Change: ChangeNav}, true)
	return true
}

// PrevNode идёт назад на n узлов (n = -1: до корня), запоминая пройденное в истории.
func (e *Editor) PrevNode(n int) bool {
	if e.current.Parent() == nil {
		return false
	}
	for e.current.Parent() != nil && n != 0 {
		e.history = append(e.history, e.current)
		e.current = e.current.Parent()
		n--
	}
	e.notify(Event{Change: ChangeNav}, true)
	return true
}

// NextSibling переходит к брату со сдвигом change по кругу.
func (e *Editor) NextSibling(change int) bool {
	siblings := e.current.Siblings()
	if len(siblings) < 2 {
		return false
	}
	i := 0
	for j, s := range siblings {
		if s == e.current {
			i = j
			break
		}
	}
	i = (i + change) % len(siblings)
	if i < 0 {
		i += len(siblings)
	}
	if siblings[i] == e.current {
		return false
	}
	e.current = siblings[i]
	e.notify(Event{Change: ChangeNav}, false)
	return true
}

// PrevBranchPoint возвращается к ближайшему предку, у которого несколько вариантов.
func (e *Editor) PrevBranchPoint() bool {
	node := e.current
	for node.Parent() != nil && node.Parent().ChildCount() == 1 {
		node = node.Parent()
	}
	if node.Parent() == nil {
		return false
	}
	e.current = node.Parent()
	e.notify(Event{Change: ChangeNav}, false)
	return true
}

// SetCurrent ставит курсор на узел этой же записи.
func (e *Editor) SetCurrent(node *gametree.Node) bool {
	if node == nil || node == e.current || !node.Attached() || e.rec.Tree.Node(node.ID()) != node {
		return false
	}
	e.current = node
	e.notify(Event{Change: ChangeNav}, false)
	return true
}

// CutCurrent удаляет текущую ветку и переходит к родителю.
func (e *Editor) CutCurrent() bool {
	parent := e.current.Parent()
	if e.tool == ToolNavOnly || parent == nil {
		return false
	}
	parent.RemoveChild(e.current)
	e.current = parent
	e.notify(Event{Change: ChangeTree | ChangeNav}, false)
	return true
}

func (e *Editor) Promote() bool {
	parent := e.current.Parent()
	if e.tool == ToolNavOnly || parent == nil || !parent.Promote(e.current) {
		return false
	}
	e.notify(Event{Change: ChangeTree}, false)
	return true
}

func (e *Editor) Demote() bool {
	parent := e.current.Parent()
	if e.tool == ToolNavOnly || parent == nil || !parent.Demote(e.current) {
		return false
	}
	e.notify(Event{Change: ChangeTree}, false)
	return true
}

// Navigate ищет ход (x, y) среди потомков текущего узла. С deep поиск идёт в глубину
// по поддеревьям потомков, а затем по всему дереву, кроме поддерева текущего узла.
func (e *Editor) Navigate(x, y int, deep bool) bool {
	for _, child := range e.current.Children() {
		if deep {
			if e.jumpToMove(x, y, child, nil) {
				return true
			}
		} else if hasMoveAt(child, x, y) {
			e.current = child
			e.notify(Event{Change: ChangeNav}, false)
			return true
		}
	}
	return deep && e.jumpToMove(x, y, e.rec.Tree.Root(), e.current)
}

func (e *Editor) jumpToMove(x, y int, start, end *gametree.Node) bool {
	if start == end {
		return false
	}
	if hasMoveAt(start, x, y) {
		e.current = start
		e.notify(Event{Change: ChangeNav}, false)
		return true
	}
	for _, child := range start.Children() {
		if e.jumpToMove(x, y, child, end) {
			return true
		}
	}
	return false
}

func hasMoveAt(node *gametree.Node, x, y int) bool {
	move, ok := node.Move()
	return ok && move.X == x && move.Y == y
}

var (
	nextSplit   = regexp.MustCompile(`[Nn]+`)
	branchSplit = regexp.MustCompile(`[Bb]+`)
	digitSplit  = regexp.MustCompile(`\D+`)
)

// NavigatePath проходит путь вида "3b2n1": числа в режиме next дают шаги вперёд,
// числа после b дают вход в потомка и выбор n-го варианта.
func (e *Editor) NavigatePath(path string) {
	defer e.hold()()
	for _, part := range nextSplit.Split(path, -1) {
		segments := branchSplit.Split(part, -1)
		e.executeSteps(segments[0], false)
		for _, segment := range segments[1:] {
			e.executeSteps(segment, true)
		}
	}
}

func (e *Editor) executeSteps(segment string, branch bool) {
	for _, field := range digitSplit.Split(segment, -1) {
		n, err := strconv.Atoi(field)
		if err != nil {
			continue
		}
		if !branch {
			e.NextNode(n)
			continue
		}
		if e.current.ChildCount() > 0 {
			e.NextNode(1)
			e.NextSibling(n - 1)
		}
	}
}
