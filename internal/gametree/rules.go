package gametree

// NextColor возвращает цвет следующего хода: противоположный последнему ходу,
// а без ходов белые, только если чёрных камней строго больше.
func (n *Node) NextColor() Color {
	if n.lastMove != Empty {
		return n.lastMove.Opponent()
	}
	if n.board.Count() < 0 {
		return White
	}
	return Black
}

// PlayMove пытается сыграть ход цветом color (Empty: автоцвет).
// allow разрешает перезапись камня, самоубийство и взятие ко.
// Ход вне доски записывается как пас. Узел меняется только при успехе.
func (n *Node) PlayMove(x, y int, color Color, allow bool) bool {
	if !n.IsMutable(TypeMove) {
		return false
	}
	if color == Empty {
		color = n.NextColor()
	}
	if color != Black && color != White {
		return false
	}

	if !n.board.InBounds(x, y) {
		n.move = &Move{Color: color}
		n.lastMove = color
		n.moveNumber++
		return true
	}

	overwrite := false
	if n.board.Get(x, y) != Empty {
		if !allow {
			return false
		}
		overwrite = true
	}

	test := n.board.Clone()
	test.set(x, y, color)

	var captured []Point
	for _, d := range neighbours {
		nx, ny := x+d.X, y+d.Y
		if test.Get(nx, ny) == color.Opponent() {
			captured = test.removeIfDead(nx, ny, captured)
		}
	}
	captures := len(captured)

	if !allow && captures == 1 && n.retakesKo(test, color) {
		return false
	}

	if captures == 0 {
		captures = -len(test.removeIfDead(x, y, nil))
		if captures < 0 && !allow {
			return false
		}
	}

	if int(color)*captures < 0 {
		n.blackCaps += abs(captures)
	} else {
		n.whiteCaps += abs(captures)
	}

	n.board = test
	n.move = &Move{
		Point:     Point{x, y},
		Color:     color,
		Captures:  captures,
		Overwrite: overwrite,
	}
	n.lastMove = color
	n.moveNumber++
	return true
}

// retakesKo: предыдущий ход соперника (не перезапись) взял ровно один камень,
// и этот ход снимает камень, поставленный тем ходом.
func (n *Node) retakesKo(test *Board, color Color) bool {
	parent := n.Parent()
	if parent == nil || parent.move == nil {
		return false
	}
	prev := parent.move
	return prev.Color == color.Opponent() &&
		!prev.Overwrite &&
		prev.Captures == 1 &&
		test.Get(prev.X, prev.Y) == Empty
}

// PlaceSetup ставит установочный камень без проверок правил
// и запоминает изменение относительно доски родителя.
func (n *Node) PlaceSetup(x, y int, color Color) bool {
	if !n.board.InBounds(x, y) {
		return false
	}
	if color != Black && color != White && color != Empty {
		return false
	}
	if !n.IsMutable(TypeSetup) || n.board.Get(x, y) == color {
		return false
	}

	prev := Empty
	if parent := n.Parent(); parent != nil {
		prev = parent.Stone(x, y)
	}

	n.board.set(x, y, color)
	if delta := int(color) - int(prev); delta != 0 {
		n.setup[Point{x, y}] = delta
	} else {
		delete(n.setup, Point{x, y})
	}
	return true
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
