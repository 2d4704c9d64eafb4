package sgf

// Collection: содержимое SGF-файла, одно или несколько деревьев игры.
type Collection struct {
	Trees []*GameTree
}

// GameTree представляет одно дерево в SGF (узел + варианты)
type GameTree struct {
	Nodes    []Node      // Последовательность узлов (основная линия)
	Children []*GameTree // Варианты (вариативные линии)
}

// Node представляет один узел SGF (набор свойств, таких как B[pd], W[dd], C[...])
type Node struct {
	Properties []Property // Порядок свойств сохраняется, id могут повторяться
}

// Property: идентификатор свойства и его значения (AB[aa][bb] даёт два значения)
type Property struct {
	ID     string
	Values []string
}

// Get возвращает значения первого свойства с данным id.
func (n Node) Get(id string) ([]string, bool) {
	for _, p := range n.Properties {
		if p.ID == id {
			return p.Values, true
		}
	}
	return nil, false
}

// Len: число узлов во всём дереве.
func (t *GameTree) Len() int {
	count := len(t.Nodes)
	for _, child := range t.Children {
		count += child.Len()
	}
	return count
}
