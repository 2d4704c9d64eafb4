package record

import (
	"josekle/internal/gametree"
)

// Version попадает в свойство AP при записи.
const Version = "0.1.0"

// GameInfoIDs: свойства корня, которые считаются информацией об игре, в порядке записи.
var GameInfoIDs = []string{
	"PB", "BR", "BT", "PW", "WR", "WT", // игроки
	"HA", "KM", "RU", "TM", "OT", // параметры партии
	"DT", "EV", "GN", "PC", "RO", // событие
	"GC", "ON", "RE", // комментарии
	"AN", "CP", "SO", "US", // авторство
}

func IsGameInfoID(id string) bool {
	for _, known := range GameInfoIDs {
		if known == id {
			return true
		}
	}
	return false
}

// GameInfo: свойства информации об игре по идентификатору SGF.
type GameInfo map[string]string

// Record: загруженная запись, то есть дерево позиций и свойства корня.
type Record struct {
	Tree         *gametree.Tree
	Info         GameInfo
	VariantStyle int
}

// New создаёт пустую запись заданного размера.
func New(width, height int) (*Record, error) {
	tree, err := gametree.New(width, height)
	if err != nil {
		return nil, err
	}
	return &Record{Tree: tree, Info: GameInfo{}}, nil
}

// ValidVariantStyle: стиль вариантов 0–3 (чётный: потомки, нечётный: братья, ≥2: без автопометок).
func ValidVariantStyle(style int) bool {
	return style >= 0 && style <= 3
}
