package editor

import (
	"strings"

	"go.uber.org/zap"

	"josekle/internal/gametree"
	"josekle/internal/record"
)

// Editor держит курсор по одной записи: текущий узел, история навигации,
// активный инструмент и подписчики на изменения. Не потокобезопасен.
type Editor struct {
	rec     *record.Record
	current *gametree.Node
	history []*gametree.Node

	tool  Tool
	label string
	coord CoordStyle

	listeners   []Listener
	queue       []Event
	depth       int
	dispatching bool

	log *zap.SugaredLogger
}

func New(rec *record.Record, log *zap.SugaredLogger) *Editor {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	if rec.Info == nil {
		rec.Info = record.GameInfo{}
	}
	return &Editor{
		rec:     rec,
		current: rec.Tree.Root(),
		tool:    ToolAuto,
		label:   "1",
		coord:   CoordNone,
		log:     log,
	}
}

func (e *Editor) Record() *record.Record {
	return e.rec
}

func (e *Editor) Root() *gametree.Node {
	return e.rec.Tree.Root()
}

func (e *Editor) Current() *gametree.Node {
	return e.current
}

// LoadRecord заменяет запись целиком и ставит курсор в корень.
func (e *Editor) LoadRecord(rec *record.Record) {
	defer e.hold()()
	if rec.Info == nil {
		rec.Info = record.GameInfo{}
	}
	e.rec = rec
	e.current = rec.Tree.Root()
	e.notify(Event{
		Change:       ChangeTree | ChangeNav | ChangeStone | ChangeGameInfo | ChangeVariantStyle,
		GameInfo:     e.GameInfo(),
		VariantStyle: rec.VariantStyle,
	}, false)
	e.log.Debugf("record loaded, %d nodes", rec.Tree.Len())
}

func (e *Editor) Tool() Tool {
	return e.tool
}

// SetTool выбирает инструмент. Повторный выбор метки переключает числовые и буквенные метки.
func (e *Editor) SetTool(tool Tool) bool {
	defer e.hold()()
	if tool == ToolLabel && e.tool == ToolLabel {
		if gametree.IsIntegerLabel(e.label) {
			e.SetLabel("A")
		} else {
			e.SetLabel("1")
		}
		return true
	}
	if !tool.Valid() || tool == e.tool {
		return false
	}
	e.tool = tool
	e.notify(Event{Change: ChangeTool | ChangeLabel, Tool: tool, Label: e.label}, false)
	return true
}

func (e *Editor) Label() string {
	return e.label
}

// SetLabel задаёт следующую метку (пустая: "1") и включает инструмент метки.
func (e *Editor) SetLabel(label string) {
	label = gametree.NormalizeLabel(label)
	if label == "" {
		label = "1"
	}
	e.label = label
	e.tool = ToolLabel
	e.notify(Event{Change: ChangeTool | ChangeLabel, Tool: e.tool, Label: label}, false)
}

func (e *Editor) CoordStyle() CoordStyle {
	return e.coord
}

func (e *Editor) SetCoordStyle(style CoordStyle) bool {
	if !style.Valid() {
		return false
	}
	e.coord = style
	e.notify(Event{Change: ChangeCoord, Coord: style}, false)
	return true
}

func (e *Editor) ToggleCoordStyle() {
	e.SetCoordStyle((e.coord + 1) % CoordStyle(len(coordNames)))
}

func (e *Editor) VariantStyle() int {
	return e.rec.VariantStyle
}

func (e *Editor) SetVariantStyle(style int) bool {
	if !record.ValidVariantStyle(style) {
		return false
	}
	e.rec.VariantStyle = style
	e.notify(Event{Change: ChangeVariantStyle | ChangeMarkup, VariantStyle: style}, false)
	return true
}

// ToggleVariantStyle переключает показ автопометок (showMarkup) или потомков/братьев.
func (e *Editor) ToggleVariantStyle(showMarkup bool) {
	siblings := e.rec.VariantStyle % 2
	hidden := e.rec.VariantStyle - siblings
	if showMarkup {
		hidden = (hidden + 2) % 4
	} else {
		siblings = (siblings + 1) % 2
	}
	e.SetVariantStyle(siblings + hidden)
}

// Variants возвращает варианты для показа: потомков, братьев или ничего (стиль ≥ 2).
func (e *Editor) Variants() []*gametree.Node {
	switch e.rec.VariantStyle {
	case 0:
		return e.current.Children()
	case 1:
		return e.current.Siblings()
	}
	return nil
}

// GameInfo возвращает копию информации об игре.
func (e *Editor) GameInfo() record.GameInfo {
	info := make(record.GameInfo, len(e.rec.Info))
	for id, value := range e.rec.Info {
		info[id] = value
	}
	return info
}

// SetGameInfo меняет одно свойство; пустое значение удаляет его.
func (e *Editor) SetGameInfo(id, value string) bool {
	if !record.IsGameInfoID(id) {
		return false
	}
	if value = strings.TrimSpace(value); value == "" {
		delete(e.rec.Info, id)
	} else {
		e.rec.Info[id] = value
	}
	e.notify(Event{Change: ChangeGameInfo, GameInfo: e.GameInfo()}, false)
	return true
}

// ReplaceGameInfo заменяет всю информацию об игре; неизвестные свойства отбрасываются.
func (e *Editor) ReplaceGameInfo(info record.GameInfo) {
	e.rec.Info = record.GameInfo{}
	for id, value := range info {
		if value = strings.TrimSpace(value); value != "" && record.IsGameInfoID(id) {
			e.rec.Info[id] = value
		}
	}
	e.notify(Event{Change: ChangeGameInfo, GameInfo: e.GameInfo()}, false)
}

var lineBreaks = strings.NewReplacer("\r\n", "\n", "\n\r", "\n", "\r", "\n")

// SetComment задаёт комментарий текущего узла, обрезая края и приводя переводы строк к '\n'.
func (e *Editor) SetComment(text string) {
	text = lineBreaks.Replace(strings.TrimSpace(text))
	e.current.SetComment(text)
	e.notify(Event{Change: ChangeComment, Comment: text}, false)
}
