package editor

import (
	"strings"

	"josekle/internal/record"
)

// Change: набор флагов, описывающих, что изменилось.
type Change uint16

const (
	ChangeTool Change = 1 << iota
	ChangeLabel
	ChangeCoord
	ChangeVariantStyle
	ChangeGameInfo
	ChangeComment
	ChangeTree   // узлы добавлены или удалены, порядок вариантов изменён
	ChangeNav    // текущий узел сменился
	ChangeStone  // камни текущего узла
	ChangeMarkup // пометки текущего узла
)

var changeNames = []string{
	"tool", "label", "coord", "variantStyle", "gameInfo", "comment",
	"tree", "nav", "stone", "markup",
}

func (c Change) Has(flag Change) bool {
	return c&flag != 0
}

func (c Change) String() string {
	var names []string
	for i, name := range changeNames {
		if c.Has(1 << i) {
			names = append(names, name)
		}
	}
	return strings.Join(names, "|")
}

// Event: одно уведомление. Данные заполнены только для поднятых флагов.
type Event struct {
	Change       Change
	Tool         Tool
	Label        string
	Coord        CoordStyle
	VariantStyle int
	GameInfo     record.GameInfo
	Comment      string
}

type Listener func(Event)

func (e *Editor) AddListener(l Listener) {
	e.listeners = append(e.listeners, l)
}

// hold откладывает рассылку до возврата из самого внешнего изменяющего вызова.
// Использование: defer e.hold()().
func (e *Editor) hold() func() {
	e.depth++
	return func() {
		e.depth--
		if e.depth == 0 {
			e.flush()
		}
	}
}

// notify ставит событие в очередь. Навигация без keepHistory сбрасывает историю.
func (e *Editor) notify(ev Event, keepHistory bool) {
	if ev.Change.Has(ChangeNav) && !keepHistory {
		e.history = nil
	}
	e.queue = append(e.queue, ev)
	if e.depth == 0 {
		e.flush()
	}
}

// flush раздаёт очередь слушателям. Если слушатель сам меняет редактор,
// его события добавляются в конец той же очереди.
func (e *Editor) flush() {
	if e.dispatching {
		return
	}
	e.dispatching = true
	defer func() { e.dispatching = false }()

	for len(e.queue) > 0 {
		ev := e.queue[0]
		e.queue = e.queue[1:]
		for _, l := range e.listeners {
			l(ev)
		}
	}
}
