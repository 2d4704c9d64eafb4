package editor

import (
	"strconv"
	"strings"
)

// Tool определяет действие щелчка по доске.
type Tool int

const (
	ToolNavOnly  Tool = iota // только навигация, дерево не меняется
	ToolAuto                 // навигация или ход автоцветом
	ToolPlayB
	ToolPlayW
	ToolAddB
	ToolAddW
	ToolAddE
	ToolClrMark
	ToolCircle
	ToolSquare
	ToolTriangle
	ToolCross
	ToolBlock
	ToolLabel
)

var toolNames = []string{
	"navOnly", "auto", "playB", "playW", "addB", "addW", "addE",
	"clrMark", "circle", "square", "triangle", "cross", "block", "label",
}

func (t Tool) Valid() bool {
	return t >= ToolNavOnly && t <= ToolLabel
}

func (t Tool) String() string {
	if !t.Valid() {
		return "Tool(" + strconv.Itoa(int(t)) + ")"
	}
	return toolNames[t]
}

func ParseTool(name string) (Tool, bool) {
	for i, n := range toolNames {
		if n == name {
			return Tool(i), true
		}
	}
	return ToolAuto, false
}

// CoordStyle: система подписей координат.
type CoordStyle int

const (
	CoordNone CoordStyle = iota
	CoordNumeric
	CoordWestern
	CoordEastern
	CoordPierre
	CoordCorner
	CoordEastCor
)

var coordNames = []string{"none", "numeric", "western", "eastern", "pierre", "corner", "eastcor"}

func (c CoordStyle) Valid() bool {
	return c >= CoordNone && c <= CoordEastCor
}

func (c CoordStyle) String() string {
	if !c.Valid() {
		return "CoordStyle(" + strconv.Itoa(int(c)) + ")"
	}
	return coordNames[c]
}

func ParseCoordStyle(name string) (CoordStyle, bool) {
	for i, n := range coordNames {
		if n == name {
			return CoordStyle(i), true
		}
	}
	return CoordNone, false
}

// CoordLabels возвращает подписи столбцов и строк (индекс 0: первая линия).
// Для CoordNone подписей нет.
func CoordLabels(style CoordStyle, width, height int) (xs, ys []string) {
	xs, ys = make([]string, width), make([]string, height)
	switch style {
	case CoordNumeric:
		for i := 1; i <= width; i++ {
			xs[i-1] = strconv.Itoa(i)
		}
		for i := 1; i <= height; i++ {
			ys[i-1] = strconv.Itoa(i)
		}
	case CoordWestern:
		for i := 1; i <= width; i++ {
			xs[i-1] = westernLetter(i)
		}
		for i := 1; i <= height; i++ {
			ys[i-1] = strconv.Itoa(height - i + 1)
		}
	case CoordEastern:
		for i := 1; i <= width; i++ {
			xs[i-1] = strconv.Itoa(i)
		}
		for i := 1; i <= height; i++ {
			ys[i-1] = cjkNumber(i)
		}
	case CoordPierre:
		pierreLabels(xs, "a", "b", "a")
		pierreLabels(ys, "a", "d", "d")
	case CoordCorner, CoordEastCor:
		near := westernLetter
		if style == CoordEastCor {
			near = cjkNumber
		}
		for i := 1; i <= width; i++ {
			if 2*i < width+2 {
				xs[i-1] = near(i)
			} else {
				xs[i-1] = strconv.Itoa(width - i + 1)
			}
		}
		for i := 1; i <= height; i++ {
			if 2*i > height {
				ys[i-1] = near(height - i + 1)
			} else {
				ys[i-1] = strconv.Itoa(i)
			}
		}
	default:
		return nil, nil
	}
	return xs, ys
}

// pierreLabels считает линии от ближнего угла: first1, first2… с одной стороны,
// second1, second2… с другой; центральная линия нечётной доски получает middle.
func pierreLabels(labels []string, first, second, middle string) {
	size := len(labels)
	for i := 1; i <= size/2; i++ {
		labels[i-1] = first + strconv.Itoa(i)
		labels[size-i] = second + strconv.Itoa(i)
	}
	if size%2 == 1 {
		labels[size/2] = middle
	}
}

// westernLetter: буква столбца без I, с повтором после Z.
func westernLetter(n int) string {
	const letters = "ABCDEFGHJKLMNOPQRSTUVWXYZ"
	return string(letters[(n-1)%len(letters)])
}

func cjkNumber(n int) string {
	digits := []rune("一二三四五六七八九")
	var builder strings.Builder
	switch {
	case n >= 20:
		builder.WriteRune(digits[n/10-1])
		builder.WriteRune('十')
	case n >= 10:
		builder.WriteRune('十')
	}
	if n%10 != 0 {
		builder.WriteRune(digits[(n-1)%10])
	}
	return builder.String()
}
