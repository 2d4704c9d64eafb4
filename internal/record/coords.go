package record

import (
	"regexp"
	"strconv"
	"strings"

	"josekle/internal/gametree"
)

// PointFromLetters переводит две буквы SGF в координаты: a–z → 1–26, A–Z → 27–52.
// Всё остальное считается пасом (0, 0).
func PointFromLetters(letters string) gametree.Point {
	if len(letters) != 2 || !isLetter(letters[0]) || !isLetter(letters[1]) {
		return gametree.Pass
	}
	return gametree.Point{X: letterToNum(letters[0]), Y: letterToNum(letters[1])}
}

// LettersFromPoint: обратное преобразование; пас кодируется пустой строкой.
func LettersFromPoint(p gametree.Point) string {
	if p.X == 0 || p.Y == 0 {
		return ""
	}
	return string([]byte{numToLetter(p.X), numToLetter(p.Y)})
}

func letterToNum(c byte) int {
	if c >= 'A' && c <= 'Z' {
		return int(c-'A') + 27
	}
	return int(c-'a') + 1
}

func numToLetter(n int) byte {
	if n > 26 {
		return byte('A' + n - 27)
	}
	return byte('a' + n - 1)
}

var (
	sizePair   = regexp.MustCompile(`^(\d+):(\d+)$`)
	sizeSquare = regexp.MustCompile(`^\d+$`)
)

const DefaultSize = 19

// ParseSize разбирает значение SZ: "N" или "N:M". Неверный формат или размер
// вне 1–52 по любой оси дают 19×19.
func ParseSize(value string) (width, height int) {
	value = strings.Join(strings.Fields(value), "")

	var err1, err2 error
	if m := sizePair.FindStringSubmatch(value); m != nil {
		width, err1 = strconv.Atoi(m[1])
		height, err2 = strconv.Atoi(m[2])
	} else if sizeSquare.MatchString(value) {
		width, err1 = strconv.Atoi(value)
		height = width
	} else {
		return DefaultSize, DefaultSize
	}

	if err1 != nil || err2 != nil ||
		width < 1 || height < 1 || width > gametree.MaxSize || height > gametree.MaxSize {
		return DefaultSize, DefaultSize
	}
	return width, height
}
