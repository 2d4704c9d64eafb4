package cli

import (
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"josekle/internal/editor"
	"josekle/internal/gametree"
)

var markSymbols = map[gametree.MarkKind]string{
	gametree.MarkCircle:   "○",
	gametree.MarkSquare:   "□",
	gametree.MarkTriangle: "△",
	gametree.MarkCross:    "×",
	gametree.MarkBlock:    "■",
}

// boardCells: текстовые клетки доски, строка за строкой сверху вниз.
func boardCells(node *gametree.Node) [][]string {
	width, height := node.Size()
	rows := make([][]string, height)
	for y := 1; y <= height; y++ {
		row := make([]string, width)
		for x := 1; x <= width; x++ {
			row[x-1] = cellText(node, x, y)
		}
		rows[y-1] = row
	}
	return rows
}

func cellText(node *gametree.Node, x, y int) string {
	switch node.Stone(x, y) {
	case gametree.Black:
		return "X"
	case gametree.White:
		return "O"
	}
	mark := node.Markup(x, y)
	switch mark.Kind {
	case gametree.MarkNone:
		return "."
	case gametree.MarkNumbered:
		return strconv.Itoa(mark.Number)
	case gametree.MarkLabel:
		return mark.Label
	}
	return markSymbols[mark.Kind]
}

// renderBoard печатает доску таблицей без рамок, с подписями линий в заданном стиле.
func renderBoard(node *gametree.Node, style editor.CoordStyle) string {
	width, height := node.Size()
	xs, ys := editor.CoordLabels(style, width, height)

	t := table.NewWriter()
	t.SetStyle(table.StyleLight)
	t.Style().Options = table.OptionsNoBordersAndSeparators
	t.Style().Format.Header = text.FormatDefault
	t.Style().Box.PaddingLeft = ""

	if xs != nil {
		header := make(table.Row, 0, width+1)
		header = append(header, "")
		for _, label := range xs {
			header = append(header, label)
		}
		t.AppendHeader(header)
	}

	for i, cells := range boardCells(node) {
		row := make(table.Row, 0, width+1)
		if ys != nil {
			row = append(row, ys[i])
		}
		for _, c := range cells {
			row = append(row, c)
		}
		t.AppendRow(row)
	}

	configs := make([]table.ColumnConfig, 0, width+1)
	for n := 1; n <= width+1; n++ {
		configs = append(configs, table.ColumnConfig{Number: n, Align: text.AlignCenter, AlignHeader: text.AlignCenter})
	}
	if ys != nil {
		configs[0].Align = text.AlignRight
	}
	t.SetColumnConfigs(configs)

	return t.Render()
}
