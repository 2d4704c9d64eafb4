package puzzle

import (
	"strings"

	"josekle/internal/gametree"
)

type Puzzle struct {
	Number   int              `json:"number" bson:"number"` // порядковый номер в корпусе
	NodeID   string           `json:"node_id,omitempty" bson:"node_id,omitempty"`
	Solution []gametree.Point `json:"solution" bson:"solution"`
}

// Hint: оценка одного хода догадки.
type Hint int

const (
	HintMiss    Hint = iota // хода нет в решении
	HintPresent             // ход есть в решении, но не на этом месте
	HintCorrect             // ход на своём месте
)

func (h Hint) String() string {
	switch h {
	case HintCorrect:
		return "🟢"
	case HintPresent:
		return "🟡"
	}
	return "⚪"
}

// RotateMark дописывается к строке подсказок, если догадка засчитана в отражении.
const RotateMark = "🔄"

type Verdict struct {
	Number   int    `json:"number"`
	Hints    []Hint `json:"hints"`
	Rotated  bool   `json:"rotated"`
	Moves    int    `json:"moves"`
	Expected int    `json:"expected"`
	Correct  bool   `json:"correct"`
}

// Line: строка подсказок для истории и текста «поделиться».
func (v Verdict) Line() string {
	var builder strings.Builder
	for _, h := range v.Hints {
		builder.WriteString(h.String())
	}
	if v.Rotated {
		builder.WriteString(RotateMark)
	}
	return builder.String()
}

func (v Verdict) String() string {
	message := v.Line()
	if v.Moves < v.Expected {
		message += " too few moves"
	} else if v.Moves > v.Expected {
		message += " too many moves"
	}
	if v.Correct {
		message += " correct!"
	}
	return message
}

// Progress: догадки игрока за один день.
type Progress struct {
	PlayerID string   `json:"player_id"`
	Number   int      `json:"number"`
	Guesses  []string `json:"guesses"`
	Solved   bool     `json:"solved"`
}
