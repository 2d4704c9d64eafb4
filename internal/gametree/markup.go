package gametree

import (
	"regexp"
	"strconv"
	"strings"
)

type MarkKind uint8

const (
	MarkNone MarkKind = iota
	MarkCircle
	MarkSquare
	MarkTriangle
	MarkCross
	MarkBlock
	MarkNumbered
	MarkLabel
)

// Markup: пометка на пункте доски.
// Numbered хранит номер хода решённой (зелёной) подсказки, Label хранит текст метки.
type Markup struct {
	Kind   MarkKind
	Number int
	Label  string
}

var (
	NoMark       = Markup{}
	CircleMark   = Markup{Kind: MarkCircle}
	SquareMark   = Markup{Kind: MarkSquare}
	TriangleMark = Markup{Kind: MarkTriangle}
	CrossMark    = Markup{Kind: MarkCross}
	BlockMark    = Markup{Kind: MarkBlock}
)

// Подсказки головоломки переиспользуют фигуры. Круг значит верно, квадрат значит ход есть в решении, треугольник означает промах.
var (
	HintCorrectMark = CircleMark
	HintPresentMark = SquareMark
	HintMissMark    = TriangleMark
)

func NumberedMark(n int) Markup {
	return Markup{Kind: MarkNumbered, Number: n}
}

func LabelMark(text string) Markup {
	return Markup{Kind: MarkLabel, Label: text}
}

func (m Markup) IsNone() bool {
	return m.Kind == MarkNone
}

// rank: порядок фигур для BestHint; у прочих пометок ранга нет.
func (m Markup) rank() int {
	switch m.Kind {
	case MarkCircle, MarkSquare, MarkTriangle:
		return int(m.Kind)
	}
	return 0
}

var (
	integerLabel = regexp.MustCompile(`^-?\d+$`)
	letterSuffix = regexp.MustCompile(`[A-Za-z]$`)
)

// IsIntegerLabel сообщает, является ли метка целым числом.
func IsIntegerLabel(label string) bool {
	return integerLabel.MatchString(label)
}

// NextLabel возвращает метку, следующую за label: число +1 или следующая буква
// с переходом a…z → A…Z → a. Второй результат false, если метка не увеличивается.
func NextLabel(label string) (string, bool) {
	if IsIntegerLabel(label) {
		n, err := strconv.Atoi(label)
		if err != nil {
			return "", false
		}
		return strconv.Itoa(n + 1), true
	}
	if !letterSuffix.MatchString(label) {
		return "", false
	}

	last := label[len(label)-1]
	switch last {
	case 'z':
		last = 'A'
	case 'Z':
		last = 'a'
	default:
		last++
	}
	return label[:len(label)-1] + string(last), true
}

// NormalizeLabel заменяет любые пробельные символы пробелом и обрезает края.
func NormalizeLabel(label string) string {
	label = strings.Map(func(r rune) rune {
		if r == '\n' || r == '\r' || r == '\t' || r == '\f' || r == '\v' {
			return ' '
		}
		return r
	}, label)
	return strings.TrimSpace(label)
}
