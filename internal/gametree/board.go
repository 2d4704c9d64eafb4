package gametree

// Color: состояние пункта доски. Белые равны -Black, пустой пункт равен нулю.
type Color int8

const (
	Black Color = -1
	Empty Color = 0
	White Color = 1
)

// MaxSize: максимальный размер доски по каждой оси (ограничение координат SGF).
const MaxSize = 52

func (c Color) Opponent() Color {
	return -c
}

func (c Color) String() string {
	switch c {
	case Black:
		return "B"
	case White:
		return "W"
	}
	return "E"
}

// Point: координаты пункта, нумерация с 1. Point{0, 0} означает пас.
type Point struct {
	X int `json:"x" bson:"x"`
	Y int `json:"y" bson:"y"`
}

var Pass = Point{}

func (p Point) IsPass() bool {
	return p.X == 0 && p.Y == 0
}

// Board: полное состояние доски (снимок для одного узла дерева).
type Board struct {
	width  int
	height int
	cells  []Color
}

func NewBoard(width, height int) *Board {
	return &Board{
		width:  width,
		height: height,
		cells:  make([]Color, width*height),
	}
}

func (b *Board) Size() (width, height int) {
	return b.width, b.height
}

func (b *Board) InBounds(x, y int) bool {
	return x >= 1 && y >= 1 && x <= b.width && y <= b.height
}

// Get возвращает Empty для пунктов вне доски.
func (b *Board) Get(x, y int) Color {
	if !b.InBounds(x, y) {
		return Empty
	}
	return b.cells[b.index(x, y)]
}

func (b *Board) set(x, y int, c Color) {
	b.cells[b.index(x, y)] = c
}

func (b *Board) Clone() *Board {
	cells := make([]Color, len(b.cells))
	copy(cells, b.cells)
	return &Board{width: b.width, height: b.height, cells: cells}
}

// Equal сравнивает размеры и все пункты двух досок.
func (b *Board) Equal(o *Board) bool {
	if b.width != o.width || b.height != o.height {
		return false
	}
	for i := range b.cells {
		if b.cells[i] != o.cells[i] {
			return false
		}
	}
	return true
}

// Count возвращает разницу белых и чёрных камней (отрицательна, если чёрных больше).
func (b *Board) Count() int {
	sum := 0
	for _, c := range b.cells {
		sum += int(c)
	}
	return sum
}

func (b *Board) index(x, y int) int {
	return (x-1)*b.height + (y - 1)
}

var neighbours = [4]Point{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

// chain собирает цепочку камней того же цвета, что и в (x, y), обходом в ширину.
// Второй результат: есть ли у цепочки хотя бы одно дамэ.
func (b *Board) chain(x, y int) ([]Point, bool) {
	color := b.Get(x, y)
	if color == Empty {
		return nil, true
	}

	seen := make([]bool, len(b.cells))
	seen[b.index(x, y)] = true
	stones := []Point{{x, y}}
	free := false

	for i := 0; i < len(stones); i++ {
		p := stones[i]
		for _, d := range neighbours {
			nx, ny := p.X+d.X, p.Y+d.Y
			if !b.InBounds(nx, ny) {
				continue
			}
			switch c := b.Get(nx, ny); {
			case c == Empty:
				free = true
			case c == color && !seen[b.index(nx, ny)]:
				seen[b.index(nx, ny)] = true
				stones = append(stones, Point{nx, ny})
			}
		}
	}
	return stones, free
}

// removeIfDead снимает цепочку в (x, y), если у неё нет дамэ, и добавляет её камни в captured.
func (b *Board) removeIfDead(x, y int, captured []Point) []Point {
	stones, free := b.chain(x, y)
	if free {
		return captured
	}
	for _, p := range stones {
		b.set(p.X, p.Y, Empty)
	}
	return append(captured, stones...)
}
