// Package sheet печатает позицию записи на лист A4 в PDF.
package sheet

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/jung-kurt/gofpdf"

	"josekle/internal/editor"
	"josekle/internal/gametree"
	"josekle/internal/record"
)

type Options struct {
	Title  string
	Coords editor.CoordStyle
}

const (
	pageWidth  = 210.0
	margin     = 15.0
	boardTop   = 40.0
	boardWidth = pageWidth - 2*margin
)

// Render рисует доску узла node, информацию об игре и комментарий узла.
func Render(w io.Writer, rec *record.Record, node *gametree.Node, opts Options) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetTitle(opts.Title, true)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 14)
	pdf.Cell(0, 8, tr(title(rec, opts)))
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 10)
	pdf.Cell(0, 5, tr(subtitle(rec, node)))

	width, height := node.Size()
	step := boardWidth / float64(max(width, height)+1)
	left := margin + step
	top := boardTop + step
	pos := func(x, y int) (float64, float64) {
		return left + float64(x-1)*step, top + float64(y-1)*step
	}

	drawGrid(pdf, width, height, step, pos)
	drawCoords(pdf, tr, opts.Coords, width, height, step, pos)
	drawStones(pdf, node, step, pos)
	drawMarkup(pdf, tr, node, step, pos)

	if comment := node.Comment(); comment != "" {
		_, bottom := pos(1, height)
		pdf.SetXY(margin, bottom+step)
		pdf.SetFont("Helvetica", "", 10)
		pdf.MultiCell(0, 4.5, tr(comment), "", "L", false)
	}

	if err := pdf.Error(); err != nil {
		return err
	}
	return pdf.Output(w)
}

func title(rec *record.Record, opts Options) string {
	if opts.Title != "" {
		return opts.Title
	}
	pb, pw := rec.Info["PB"], rec.Info["PW"]
	if pb != "" || pw != "" {
		return fmt.Sprintf("%s (B) - %s (W)", orDash(pb), orDash(pw))
	}
	if gn := rec.Info["GN"]; gn != "" {
		return gn
	}
	return "Game record"
}

func subtitle(rec *record.Record, node *gametree.Node) string {
	parts := []string{fmt.Sprintf("Move %d", node.MoveNumber())}
	b, w := node.Captures()
	parts = append(parts, fmt.Sprintf("captures B %d / W %d", b, w))
	for _, id := range []string{"KM", "RE", "DT"} {
		if v := rec.Info[id]; v != "" {
			parts = append(parts, id+" "+v)
		}
	}
	return strings.Join(parts, ", ")
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

type posFunc func(x, y int) (float64, float64)

func drawGrid(pdf *gofpdf.Fpdf, width, height int, step float64, pos posFunc) {
	pdf.SetDrawColor(0, 0, 0)
	pdf.SetLineWidth(0.2)
	for x := 1; x <= width; x++ {
		x1, y1 := pos(x, 1)
		x2, y2 := pos(x, height)
		pdf.Line(x1, y1, x2, y2)
	}
	for y := 1; y <= height; y++ {
		x1, y1 := pos(1, y)
		x2, y2 := pos(width, y)
		pdf.Line(x1, y1, x2, y2)
	}

	pdf.SetFillColor(0, 0, 0)
	for _, p := range starPoints(width, height) {
		cx, cy := pos(p.X, p.Y)
		pdf.Circle(cx, cy, step*0.1, "F")
	}
}

// starPoints: пункты хоси для квадратных досок 9, 13 и 19.
func starPoints(width, height int) []gametree.Point {
	if width != height {
		return nil
	}
	var lines []int
	switch width {
	case 9:
		lines = []int{3, 5, 7}
	case 13:
		lines = []int{4, 7, 10}
	case 19:
		lines = []int{4, 10, 16}
	default:
		return nil
	}
	points := make([]gametree.Point, 0, len(lines)*len(lines))
	for _, x := range lines {
		for _, y := range lines {
			points = append(points, gametree.Point{X: x, Y: y})
		}
	}
	return points
}

// drawCoords подписывает линии. Шрифты PDF без иероглифов, поэтому
// восточные стили печатаются цифрами.
func drawCoords(pdf *gofpdf.Fpdf, tr func(string) string, style editor.CoordStyle, width, height int, step float64, pos posFunc) {
	switch style {
	case editor.CoordEastern:
		style = editor.CoordNumeric
	case editor.CoordEastCor:
		style = editor.CoordCorner
	}
	xs, ys := editor.CoordLabels(style, width, height)
	if xs == nil {
		return
	}

	pdf.SetFont("Helvetica", "", step*1.3)
	pdf.SetTextColor(80, 80, 80)
	for x := 1; x <= width; x++ {
		cx, cy := pos(x, 1)
		centerText(pdf, tr(xs[x-1]), cx, cy-step*0.7)
	}
	for y := 1; y <= height; y++ {
		cx, cy := pos(1, y)
		centerText(pdf, tr(ys[y-1]), cx-step*0.75, cy)
	}
	pdf.SetTextColor(0, 0, 0)
}

func drawStones(pdf *gofpdf.Fpdf, node *gametree.Node, step float64, pos posFunc) {
	width, height := node.Size()
	radius := step * 0.47
	pdf.SetLineWidth(0.25)
	for y := 1; y <= height; y++ {
		for x := 1; x <= width; x++ {
			cx, cy := pos(x, y)
			switch node.Stone(x, y) {
			case gametree.Black:
				pdf.SetFillColor(0, 0, 0)
				pdf.Circle(cx, cy, radius, "FD")
			case gametree.White:
				pdf.SetFillColor(255, 255, 255)
				pdf.Circle(cx, cy, radius, "FD")
			}
		}
	}

	move, ok := node.Move()
	if !ok || move.Point.IsPass() {
		return
	}
	cx, cy := pos(move.Point.X, move.Point.Y)
	pdf.SetFillColor(200, 30, 30)
	pdf.Circle(cx, cy, step*0.15, "F")
}

func drawMarkup(pdf *gofpdf.Fpdf, tr func(string) string, node *gametree.Node, step float64, pos posFunc) {
	width, height := node.Size()
	r := step * 0.3
	pdf.SetLineWidth(0.35)
	pdf.SetFont("Helvetica", "B", step*1.6)
	for y := 1; y <= height; y++ {
		for x := 1; x <= width; x++ {
			mark := node.Markup(x, y)
			if mark.IsNone() {
				continue
			}
			cx, cy := pos(x, y)
			// на чёрном камне пометка белая
			ink := 0
			if node.Stone(x, y) == gametree.Black {
				ink = 255
			}
			pdf.SetDrawColor(ink, ink, ink)
			pdf.SetTextColor(ink, ink, ink)
			pdf.SetFillColor(ink, ink, ink)

			switch mark.Kind {
			case gametree.MarkCircle:
				pdf.Circle(cx, cy, r, "D")
			case gametree.MarkSquare:
				pdf.Rect(cx-r, cy-r, 2*r, 2*r, "D")
			case gametree.MarkTriangle:
				pdf.Polygon([]gofpdf.PointType{
					{X: cx, Y: cy - r},
					{X: cx + r*0.87, Y: cy + r*0.5},
					{X: cx - r*0.87, Y: cy + r*0.5},
				}, "D")
			case gametree.MarkCross:
				pdf.Line(cx-r, cy-r, cx+r, cy+r)
				pdf.Line(cx-r, cy+r, cx+r, cy-r)
			case gametree.MarkBlock:
				pdf.Rect(cx-r*0.6, cy-r*0.6, 1.2*r, 1.2*r, "F")
			case gametree.MarkNumbered:
				labelOnBoard(pdf, node, x, y, strconv.Itoa(mark.Number), cx, cy, step)
			case gametree.MarkLabel:
				labelOnBoard(pdf, node, x, y, tr(mark.Label), cx, cy, step)
			}
		}
	}
	pdf.SetDrawColor(0, 0, 0)
	pdf.SetTextColor(0, 0, 0)
}

// labelOnBoard закрывает линии под меткой на пустом пункте.
func labelOnBoard(pdf *gofpdf.Fpdf, node *gametree.Node, x, y int, text string, cx, cy, step float64) {
	if node.Stone(x, y) == gametree.Empty {
		pdf.SetFillColor(255, 255, 255)
		pdf.Circle(cx, cy, step*0.4, "F")
		pdf.SetFillColor(0, 0, 0)
	}
	centerText(pdf, text, cx, cy)
}

func centerText(pdf *gofpdf.Fpdf, text string, cx, cy float64) {
	w := pdf.GetStringWidth(text)
	_, fontHeight := pdf.GetFontSize()
	pdf.Text(cx-w/2, cy+fontHeight*0.35, text)
}
