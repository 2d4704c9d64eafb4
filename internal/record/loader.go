package record

import (
	"strconv"
	"strings"

	"go.uber.org/zap"

	"josekle/internal/domain/sgf"
	"josekle/internal/errors"
	"josekle/internal/gametree"
)

// Loader строит Record по разобранному дереву свойств, проводя ходы через правила.
type Loader struct {
	log *zap.SugaredLogger
}

func NewLoader(log *zap.SugaredLogger) *Loader {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &Loader{log: log}
}

// Read разбирает текст и загружает первое дерево коллекции.
func Read(text string) (*Record, error) {
	return NewLoader(nil).Read(text)
}

// Load загружает разобранное дерево.
func Load(tree *sgf.GameTree) (*Record, error) {
	return NewLoader(nil).Load(tree)
}

func (l *Loader) Read(text string) (*Record, error) {
	tree, err := Parse(text)
	if err != nil {
		return nil, err
	}
	return l.Load(tree)
}

func (l *Loader) Load(tree *sgf.GameTree) (*Record, error) {
	if tree == nil || len(tree.Nodes) == 0 {
		return nil, errors.ErrEmptyCollection
	}

	width, height := DefaultSize, DefaultSize
	rec := &Record{Info: GameInfo{}}
	for _, prop := range tree.Nodes[0].Properties {
		value := strings.TrimSpace(strings.Join(prop.Values, ","))
		switch {
		case prop.ID == "SZ":
			width, height = ParseSize(value)
		case prop.ID == "ST":
			style, err := strconv.Atoi(value)
			if value == "" {
				style, err = 0, nil
			}
			if err == nil && ValidVariantStyle(style) {
				rec.VariantStyle = style
			}
		case IsGameInfoID(prop.ID):
			if prop.ID != "GC" {
				value = strings.ReplaceAll(value, "\n", " ")
			}
			if value != "" {
				rec.Info[prop.ID] = value
			}
		}
	}

	gameTree, err := gametree.New(width, height)
	if err != nil {
		return nil, err
	}
	rec.Tree = gameTree

	l.loadTree(tree, gameTree.Root())
	l.log.Debugf("loaded record %dx%d with %d nodes", width, height, gameTree.Len())
	return rec, nil
}

// loadTree загружает последовательность узлов в node и его потомков,
// варианты подвешиваются к последнему узлу последовательности.
func (l *Loader) loadTree(tree *sgf.GameTree, node *gametree.Node) {
	for i, sgfNode := range tree.Nodes {
		if i > 0 {
			node = l.attachChild(node)
		}
		for _, prop := range sgfNode.Properties {
			l.loadProp(node, prop)
		}
	}
	for _, variation := range tree.Children {
		l.loadTree(variation, l.attachChild(node))
	}
}

// attachChild добавляет потомка без скопированных пометок: в SGF пометки относятся к одному узлу.
func (l *Loader) attachChild(parent *gametree.Node) *gametree.Node {
	child := parent.MakeChild()
	child.ClearMarkup()
	parent.AddChild(child)
	return child
}

func (l *Loader) loadProp(node *gametree.Node, prop sgf.Property) {
	switch prop.ID {
	case "B":
		l.loadMove(node, prop, gametree.Black)
	case "W":
		l.loadMove(node, prop, gametree.White)
	case "AB":
		applyPointList(prop.Values, func(x, y int) { node.PlaceSetup(x, y, gametree.Black) })
	case "AW":
		applyPointList(prop.Values, func(x, y int) { node.PlaceSetup(x, y, gametree.White) })
	case "AE":
		applyPointList(prop.Values, func(x, y int) { node.PlaceSetup(x, y, gametree.Empty) })
	case "CR":
		applyMarkup(node, prop.Values, gametree.CircleMark)
	case "SQ":
		applyMarkup(node, prop.Values, gametree.SquareMark)
	case "TR":
		applyMarkup(node, prop.Values, gametree.TriangleMark)
	case "M", "MA":
		applyMarkup(node, prop.Values, gametree.CrossMark)
	case "SL":
		applyMarkup(node, prop.Values, gametree.BlockMark)
	case "L", "LB":
		applyLabels(node, prop.Values)
	case "C":
		text := strings.TrimSpace(strings.Join(prop.Values, ","))
		if node.Comment() != "" {
			text = node.Comment() + "\n" + text
		}
		node.SetComment(text)
	case "SZ", "ST", "FF", "GM", "CA", "AP":
	default:
		if !IsGameInfoID(prop.ID) {
			l.log.Debugf("skip sgf property %s", prop.ID)
		}
	}
}

func (l *Loader) loadMove(node *gametree.Node, prop sgf.Property, color gametree.Color) {
	var value string
	if len(prop.Values) > 0 {
		value = prop.Values[0]
	}
	p := PointFromLetters(value)
	if !node.PlayMove(p.X, p.Y, color, true) {
		l.log.Debugf("skip %s[%s]: node already has a move or setup", prop.ID, value)
	}
}

func applyMarkup(node *gametree.Node, values []string, mark gametree.Markup) {
	applyPointList(values, func(x, y int) { node.AddMarkup(x, y, mark) })
}

// applyLabels разбирает значения вида "aa:текст".
func applyLabels(node *gametree.Node, values []string) {
	for _, value := range values {
		p := PointFromLetters(prefix(value, 2))
		label := ""
		if len(value) > 3 {
			label = strings.ReplaceAll(value[3:], "\n", " ")
		}
		mark := gametree.LabelMark(label)
		if label == "" {
			mark = gametree.NoMark
		}
		node.AddMarkup(p.X, p.Y, mark)
	}
}

// applyPointList вызывает fn для каждого пункта списка, раскрывая прямоугольники "aa:cc".
// Если углы прямоугольника переставлены, применяется только к двум углам.
func applyPointList(values []string, fn func(x, y int)) {
	for _, value := range values {
		p := PointFromLetters(prefix(value, 2))
		if len(value) < 3 || value[2] != ':' {
			fn(p.X, p.Y)
			continue
		}

		q := PointFromLetters(value[3:])
		switch {
		case q == p:
			fn(p.X, p.Y)
		case q.X < p.X || q.Y < p.Y:
			fn(p.X, p.Y)
			fn(q.X, q.Y)
		default:
			for x := p.X; x <= q.X; x++ {
				for y := p.Y; y <= q.Y; y++ {
					fn(x, y)
				}
			}
		}
	}
}

func prefix(s string, n int) string {
	if len(s) < n {
		return s
	}
	return s[:n]
}
