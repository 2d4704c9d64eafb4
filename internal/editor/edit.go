package editor

import (
	"josekle/internal/domain/puzzle"
	"josekle/internal/gametree"
)

// Click применяет активный инструмент к пункту (x, y).
// ctrl разрешает недопустимые ходы, shift включает поиск хода по всему дереву.
func (e *Editor) Click(x, y int, ctrl, shift bool) bool {
	switch e.tool {
	case ToolNavOnly:
		return e.Navigate(x, y, shift)
	case ToolAuto:
		if e.Navigate(x, y, shift) {
			return true
		}
		return !shift && e.PlayMove(x, y, gametree.Empty, ctrl)
	case ToolPlayB:
		return e.PlayMove(x, y, gametree.Black, ctrl)
	case ToolPlayW:
		return e.PlayMove(x, y, gametree.White, ctrl)
	case ToolAddB:
		if ctrl {
			return e.PlayMove(x, y, gametree.Black, true)
		}
		return e.PlaceSetup(x, y, gametree.Black)
	case ToolAddW:
		if ctrl {
			return e.PlayMove(x, y, gametree.White, true)
		}
		return e.PlaceSetup(x, y, gametree.White)
	case ToolAddE:
		return e.PlaceSetup(x, y, gametree.Empty)
	case ToolClrMark:
		return e.SetMarkup(x, y, gametree.NoMark)
	case ToolCircle:
		return e.SetMarkup(x, y, gametree.CircleMark)
	case ToolSquare:
		return e.SetMarkup(x, y, gametree.SquareMark)
	case ToolTriangle:
		return e.SetMarkup(x, y, gametree.TriangleMark)
	case ToolCross:
		return e.SetMarkup(x, y, gametree.CrossMark)
	case ToolBlock:
		return e.SetMarkup(x, y, gametree.BlockMark)
	case ToolLabel:
		return e.SetMarkup(x, y, gametree.LabelMark(e.label))
	}
	return false
}

// PlayMove играет ход в текущем узле, если он изменяемый и не корень,
// иначе в новом потомке, который становится текущим.
func (e *Editor) PlayMove(x, y int, color gametree.Color, allow bool) bool {
	if !e.current.IsRoot() && e.current.IsMutable(gametree.TypeMove) {
		if !e.current.PlayMove(x, y, color, allow) {
			return false
		}
		e.notify(Event{Change: ChangeStone}, false)
		return true
	}

	next := e.current.MakeChild()
	if !next.PlayMove(x, y, color, allow) {
		return false
	}
	e.current.AddChild(next)
	e.current = next

	// подсказки, которые этот ход сделал неактуальными
	switch mark := next.Markup(x, y); mark.Kind {
	case gametree.MarkNumbered:
		if mark.Number != next.Depth() {
			next.AddMarkup(x, y, gametree.NoMark)
		}
	case gametree.MarkSquare:
		next.AddMarkup(x, y, gametree.NoMark)
	}
	e.notify(Event{Change: ChangeTree | ChangeNav | ChangeStone}, false)
	return true
}

// PlaceSetup ставит установочный камень. Повтор того же цвета убирает камень.
func (e *Editor) PlaceSetup(x, y int, color gametree.Color) bool {
	if color == e.current.Stone(x, y) {
		if color == gametree.Empty {
			return false
		}
		color = gametree.Empty
	}

	if e.current.IsMutable(gametree.TypeSetup) {
		if !e.current.PlaceSetup(x, y, color) {
			return false
		}
		e.notify(Event{Change: ChangeStone}, false)
		return true
	}

	next := e.current.MakeChild()
	if !next.PlaceSetup(x, y, color) {
		return false
	}
	e.current.AddChild(next)
	e.current = next
	e.notify(Event{Change: ChangeTree | ChangeNav | ChangeStone}, false)
	return true
}

// SetMarkup ставит пометку; та же пометка повторно снимается.
// После метки следующая метка увеличивается.
func (e *Editor) SetMarkup(x, y int, mark gametree.Markup) bool {
	defer e.hold()()
	if mark == e.current.Markup(x, y) {
		if mark.IsNone() {
			return false
		}
		mark = gametree.NoMark
	}
	if !e.current.AddMarkup(x, y, mark) {
		return false
	}
	if mark.Kind == gametree.MarkLabel {
		if next, ok := gametree.NextLabel(mark.Label); ok {
			e.SetLabel(next)
		}
	}
	e.notify(Event{Change: ChangeMarkup}, false)
	return true
}

// Check сверяет ходы пути к текущему узлу с решением, расставляет подсказки
// на пути и в корне и помечает узлы пути как отправленные.
func (e *Editor) Check(solution []gametree.Point) []puzzle.Hint {
	path := e.movePath()
	hints := make([]puzzle.Hint, 0, len(path))
	for i, node := range path {
		node.Submitted = true
		move, _ := node.Move()
		switch {
		case i < len(solution) && move.Point == solution[i]:
			hints = append(hints, puzzle.HintCorrect)
			e.setHints(path, i, gametree.NumberedMark(i+1))
		case containsPoint(solution, move.Point):
			hints = append(hints, puzzle.HintPresent)
			e.setHints(path, i, gametree.HintPresentMark)
		default:
			hints = append(hints, puzzle.HintMiss)
			e.setHints(path, i, gametree.HintMissMark)
		}
	}
	e.notify(Event{Change: ChangeMarkup | ChangeTree}, false)
	return hints
}

// movePath: узлы с ходами от ближайшего предка без хода до текущего узла.
func (e *Editor) movePath() []*gametree.Node {
	var path []*gametree.Node
	for node := e.current; node != nil && node.HasMove(); node = node.Parent() {
		path = append(path, node)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// setHints ставит пометку на пункт хода path[start] во всех узлах пути начиная с него и в корне.
func (e *Editor) setHints(path []*gametree.Node, start int, mark gametree.Markup) {
	move, _ := path[start].Move()
	for _, node := range path[start:] {
		node.AddMarkup(move.X, move.Y, mark)
	}
	e.Root().AddMarkup(move.X, move.Y, mark)
}

func containsPoint(points []gametree.Point, p gametree.Point) bool {
	for _, q := range points {
		if q == p {
			return true
		}
	}
	return false
}
