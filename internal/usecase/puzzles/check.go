package puzzles

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"josekle/internal/domain/puzzle"
	"josekle/internal/errors"
	"josekle/internal/gametree"
)

// Check сравнивает догадку с решением ход за ходом, не дальше более короткой из них.
func Check(moves, solution []gametree.Point) []puzzle.Hint {
	limit := min(len(moves), len(solution))
	hints := make([]puzzle.Hint, 0, limit)
	for i := 0; i < limit; i++ {
		switch {
		case moves[i] == solution[i]:
			hints = append(hints, puzzle.HintCorrect)
		case contains(solution, moves[i]):
			hints = append(hints, puzzle.HintPresent)
		default:
			hints = append(hints, puzzle.HintMiss)
		}
	}
	return hints
}

func contains(points []gametree.Point, p gametree.Point) bool {
	for _, q := range points {
		if q == p {
			return true
		}
	}
	return false
}

// Normalize переносит ходы в один угол доски: координата за серединой отражается.
func Normalize(moves []gametree.Point, size int) []gametree.Point {
	mid := (size + 1) / 2
	res := make([]gametree.Point, len(moves))
	for i, m := range moves {
		if m.X > mid {
			m.X = size - m.X + 1
		}
		if m.Y > mid {
			m.Y = size - m.Y + 1
		}
		res[i] = m
	}
	return res
}

// Reflect отражает ходы относительно главной диагонали.
func Reflect(moves []gametree.Point) []gametree.Point {
	res := make([]gametree.Point, len(moves))
	for i, m := range moves {
		res[i] = gametree.Point{X: m.Y, Y: m.X}
	}
	return res
}

func score(hints []puzzle.Hint) int {
	total := 0
	for _, h := range hints {
		switch h {
		case puzzle.HintCorrect:
			total += 2
		case puzzle.HintPresent:
			total++
		}
	}
	return total
}

// Better: зелёная подсказка стоит двух жёлтых.
func Better(a, b []puzzle.Hint) bool {
	return score(a) > score(b)
}

// WasCorrect: все ходы на своих местах и их столько же, сколько в решении.
func WasCorrect(hints []puzzle.Hint, solutionLen int) bool {
	for _, h := range hints {
		if h != puzzle.HintCorrect {
			return false
		}
	}
	return len(hints) == solutionLen
}

// Judge выносит вердикт по догадке: сравнение идёт в нормализованных координатах,
// отражённая догадка засчитывается, если она лучше. Лишние ходы верной догадки
// не дают решения.
func Judge(moves, solution []gametree.Point, size int) puzzle.Verdict {
	normMoves := Normalize(moves, size)
	normSolution := Normalize(solution, size)

	verdict := puzzle.Verdict{
		Hints:    Check(normMoves, normSolution),
		Moves:    len(moves),
		Expected: len(solution),
	}
	if rotated := Check(Reflect(normMoves), normSolution); Better(rotated, verdict.Hints) {
		verdict.Hints = rotated
		verdict.Rotated = true
	}
	// Rotated не мешает засчитать решение
	verdict.Correct = WasCorrect(verdict.Hints, len(solution)) && len(moves) == len(solution)
	return verdict
}

const day = 24 * time.Hour

// DayNumber считает номер головоломки дня как число суток от epoch, с округлением.
func DayNumber(epoch, now time.Time) int {
	return int(math.Round(math.Abs(now.Sub(epoch).Hours()) / day.Hours()))
}

// ShareText собирает текст «поделиться» из номера дня и строк всех догадок.
func ShareText(number int, guesses []string) string {
	return "Josekle #" + strconv.Itoa(number) + "\n" + strings.Join(guesses, "\n")
}

// ParseMoves разбирает ходы вида "16-4, 4-16". Пустая строка: пустая догадка.
func ParseMoves(text string) ([]gametree.Point, error) {
	var moves []gametree.Point
	for _, field := range strings.FieldsFunc(text, func(r rune) bool {
		return r == ',' || r == ' ' || r == ';'
	}) {
		xs, ys, ok := strings.Cut(field, "-")
		if !ok {
			return nil, fmt.Errorf("%w: %q", errors.ErrInvalidMoves, field)
		}
		x, errX := strconv.Atoi(xs)
		y, errY := strconv.Atoi(ys)
		if errX != nil || errY != nil || x < 1 || y < 1 || x > gametree.MaxSize || y > gametree.MaxSize {
			return nil, fmt.Errorf("%w: %q", errors.ErrInvalidMoves, field)
		}
		moves = append(moves, gametree.Point{X: x, Y: y})
	}
	return moves, nil
}

func FormatMoves(moves []gametree.Point) string {
	parts := make([]string, len(moves))
	for i, m := range moves {
		parts[i] = strconv.Itoa(m.X) + "-" + strconv.Itoa(m.Y)
	}
	return strings.Join(parts, ", ")
}
