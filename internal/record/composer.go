package record

import (
	"strconv"
	"strings"

	"josekle/internal/domain/sgf"
	"josekle/internal/gametree"
)

// Compose записывает запись в SGF. Один потомок продолжает последовательность,
// ноль или несколько закрывают её, каждый вариант в своих скобках.
func Compose(rec *Record) string {
	var builder strings.Builder
	builder.WriteString("(")
	composeNode(&builder, rec, rec.Tree.Root())
	builder.WriteString(")")
	return builder.String()
}

func composeNode(builder *strings.Builder, rec *Record, node *gametree.Node) {
	builder.WriteString(";")
	if node.IsRoot() {
		composeRootProps(builder, rec)
	}
	composeNodeProps(builder, node)

	children := node.Children()
	if len(children) == 1 {
		builder.WriteString("\n")
		composeNode(builder, rec, children[0])
		return
	}
	for _, child := range children {
		builder.WriteString("\n(")
		composeNode(builder, rec, child)
		builder.WriteString(")")
	}
}

func composeRootProps(builder *strings.Builder, rec *Record) {
	builder.WriteString("FF[4]GM[1]CA[UTF-8]AP[josekle:" + Version + "]")

	x, y := rec.Tree.Size()
	if x == y {
		builder.WriteString("SZ[" + strconv.Itoa(x) + "]")
	} else {
		builder.WriteString("SZ[" + strconv.Itoa(x) + ":" + strconv.Itoa(y) + "]")
	}
	builder.WriteString("ST[" + strconv.Itoa(rec.VariantStyle) + "]\n")

	hasInfo := false
	for _, id := range GameInfoIDs {
		if value := rec.Info[id]; value != "" {
			builder.WriteString(id + "[" + EscapeText(value) + "]")
			hasInfo = true
		}
	}
	if hasInfo {
		builder.WriteString("\n")
	}
}

// pointList: пункты одного свойства; labels заполняются только для LB.
type pointList struct {
	id     string
	points []gametree.Point
	labels []string
}

func composeNodeProps(builder *strings.Builder, node *gametree.Node) {
	var props strings.Builder
	w, h := node.Size()

	switch node.Type() {
	case gametree.TypeMove:
		move, _ := node.Move()
		props.WriteString(move.Color.String() + "[" + LettersFromPoint(move.Point) + "]")
	case gametree.TypeSetup:
		setup := []*pointList{{id: "AB"}, {id: "AW"}, {id: "AE"}}
		for x := 1; x <= w; x++ {
			for y := 1; y <= h; y++ {
				color, ok := node.Setup(x, y)
				if !ok {
					continue
				}
				list := setup[2]
				switch color {
				case gametree.Black:
					list = setup[0]
				case gametree.White:
					list = setup[1]
				}
				list.points = append(list.points, gametree.Point{X: x, Y: y})
			}
		}
		composePointLists(&props, setup)
	}

	marks := []*pointList{{id: "CR"}, {id: "SQ"}, {id: "TR"}, {id: "MA"}, {id: "SL"}, {id: "LB"}}
	for x := 1; x <= w; x++ {
		for y := 1; y <= h; y++ {
			mark := node.Markup(x, y)
			p := gametree.Point{X: x, Y: y}
			switch mark.Kind {
			case gametree.MarkCircle, gametree.MarkSquare, gametree.MarkTriangle, gametree.MarkCross, gametree.MarkBlock:
				list := marks[mark.Kind-gametree.MarkCircle]
				list.points = append(list.points, p)
			case gametree.MarkLabel:
				marks[5].points = append(marks[5].points, p)
				marks[5].labels = append(marks[5].labels, mark.Label)
			case gametree.MarkNumbered:
				// решённая подсказка сохраняется как метка с номером хода
				marks[5].points = append(marks[5].points, p)
				marks[5].labels = append(marks[5].labels, strconv.Itoa(mark.Number))
			}
		}
	}
	composePointLists(&props, marks)

	if node.Comment() != "" {
		if props.Len() > 0 {
			props.WriteString("\n")
		}
		props.WriteString("C[" + EscapeText(node.Comment()) + "]")
	}
	builder.WriteString(props.String())
}

func composePointLists(builder *strings.Builder, lists []*pointList) {
	for _, list := range lists {
		if len(list.points) == 0 {
			continue
		}
		builder.WriteString(list.id)
		for i, p := range list.points {
			builder.WriteString("[" + LettersFromPoint(p))
			if list.labels != nil {
				builder.WriteString(":" + EscapeText(list.labels[i]))
			}
			builder.WriteString("]")
		}
	}
}

// EscapeText экранирует обратную косую черту и закрывающую скобку.
func EscapeText(text string) string {
	text = strings.ReplaceAll(text, `\`, `\\`)
	return strings.ReplaceAll(text, "]", `\]`)
}

// SerializeSGF записывает разобранное дерево свойств обратно в текст без интерпретации.
func SerializeSGF(coll *sgf.Collection) string {
	var builder strings.Builder
	for _, tree := range coll.Trees {
		builder.WriteString("(")
		serializeGameTree(&builder, tree)
		builder.WriteString(")")
	}
	return builder.String()
}

func serializeGameTree(builder *strings.Builder, tree *sgf.GameTree) {
	for _, node := range tree.Nodes {
		builder.WriteString(";")
		for _, prop := range node.Properties {
			builder.WriteString(prop.ID)
			for _, v := range prop.Values {
				builder.WriteString("[" + EscapeText(v) + "]")
			}
		}
	}

	for _, child := range tree.Children {
		builder.WriteString("(")
		serializeGameTree(builder, child)
		builder.WriteString(")")
	}
}
