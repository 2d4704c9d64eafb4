package puzzles

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math/rand"
	"strconv"

	"josekle/internal/domain/puzzle"
	"josekle/internal/gametree"
	"josekle/internal/utils"
)

type ExportOptions struct {
	MaxMoves int   // 0: без ограничения
	Seed     int64 // порядок перемешивания
}

// ExportPuzzles превращает листья дерева в головоломки. Решение берётся от
// ближайшего предка без хода до листа, поэтому ходы до установочного узла в него
// не входят. Пас остаётся в решении как (0, 0). Листья без ходов пропускаются,
// результат перемешивается.
func ExportPuzzles(tree *gametree.Tree, opts ExportOptions) []puzzle.Puzzle {
	var res []puzzle.Puzzle
	for _, leaf := range tree.Leaves(tree.Root()) {
		solution := leaf.MoveSequence()
		if len(solution) == 0 {
			continue
		}
		if opts.MaxMoves > 0 && len(solution) > opts.MaxMoves {
			continue
		}
		res = append(res, puzzle.Puzzle{
			NodeID:   strconv.Itoa(int(leaf.ID())),
			Solution: solution,
		})
	}

	rnd := rand.New(rand.NewSource(opts.Seed))
	rnd.Shuffle(len(res), func(i, j int) { res[i], res[j] = res[j], res[i] })
	for i := range res {
		res[i].Number = i
	}
	return res
}

// DecodePuzzles читает корпус: массив объектов {node_id, solution} или массив
// последовательностей ходов. Обёртка "const name=[...];" снимается.
func DecodePuzzles(data []byte) ([]puzzle.Puzzle, error) {
	data = bytes.TrimSpace(data)
	if rest, ok := bytes.CutPrefix(data, []byte("const ")); ok {
		if _, value, found := bytes.Cut(rest, []byte("=")); found {
			data = bytes.TrimSpace(value)
		}
	}
	data = bytes.TrimSuffix(data, []byte(";"))

	var list []puzzle.Puzzle
	if err := utils.DecodeJSON(data, &list); err != nil {
		var sequences [][]gametree.Point
		if errSeq := utils.DecodeJSON(data, &sequences); errSeq != nil {
			return nil, err
		}
		list = make([]puzzle.Puzzle, len(sequences))
		for i, seq := range sequences {
			list[i] = puzzle.Puzzle{Solution: seq}
		}
	}

	for i := range list {
		list[i].Number = i
		if len(list[i].Solution) == 0 {
			return nil, fmt.Errorf("puzzle %d has an empty solution", i)
		}
	}
	return list, nil
}

// EncodePuzzles записывает корпус в том же формате, который читает DecodePuzzles.
func EncodePuzzles(list []puzzle.Puzzle) ([]byte, error) {
	return json.MarshalIndent(list, "", "  ")
}
