package puzzles

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"josekle/internal/domain/puzzle"
	"josekle/internal/errors"
	"josekle/internal/record"
)

type PuzzleStore interface {
	InsertPuzzles(ctx context.Context, list []puzzle.Puzzle) (int, error)
	CountPuzzles(ctx context.Context) (int64, error)
	GetPuzzle(ctx context.Context, number int64) (*puzzle.Puzzle, error)
}

type ProgressStore interface {
	GetProgress(ctx context.Context, playerID string, number int) (*puzzle.Progress, error)
	AddGuess(ctx context.Context, playerID string, number int, line string, solved bool) error
}

type PuzzleUseCase struct {
	puzzles  PuzzleStore
	progress ProgressStore
	epoch    time.Time
	now      func() time.Time
	log      *zap.SugaredLogger
}

func NewPuzzleUseCase(puzzles PuzzleStore, progress ProgressStore, epoch time.Time, log *zap.SugaredLogger) *PuzzleUseCase {
	return &PuzzleUseCase{
		puzzles:  puzzles,
		progress: progress,
		epoch:    epoch,
		now:      time.Now,
		log:      log,
	}
}

// Today: номер сегодняшней головоломки.
func (u *PuzzleUseCase) Today() int {
	return DayNumber(u.epoch, u.now())
}

func (u *PuzzleUseCase) ImportPuzzles(ctx context.Context, data []byte) (int, error) {
	list, err := DecodePuzzles(data)
	if err != nil {
		return 0, err
	}
	if len(list) == 0 {
		return 0, errors.ErrNoPuzzles
	}
	return u.puzzles.InsertPuzzles(ctx, list)
}

// PuzzleOfTheDay выбирает головоломку дня по кругу корпуса.
func (u *PuzzleUseCase) PuzzleOfTheDay(ctx context.Context, number int) (*puzzle.Puzzle, error) {
	count, err := u.puzzles.CountPuzzles(ctx)
	if err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, errors.ErrNoPuzzles
	}
	return u.puzzles.GetPuzzle(ctx, int64(number)%count)
}

// Submit проверяет догадку игрока по головоломке дня и сохраняет строку подсказок.
func (u *PuzzleUseCase) Submit(ctx context.Context, playerID string, moves string) (*puzzle.Verdict, error) {
	guess, err := ParseMoves(moves)
	if err != nil {
		return nil, err
	}

	number := u.Today()
	progress, err := u.progress.GetProgress(ctx, playerID, number)
	if err != nil {
		return nil, err
	}
	if progress.Solved {
		return nil, errors.ErrAlreadySolved
	}

	p, err := u.PuzzleOfTheDay(ctx, number)
	if err != nil {
		return nil, fmt.Errorf("puzzle of the day %d: %w", number, err)
	}

	verdict := Judge(guess, p.Solution, record.DefaultSize)
	verdict.Number = number
	if err := u.progress.AddGuess(ctx, playerID, number, verdict.Line(), verdict.Correct); err != nil {
		return nil, err
	}

	u.log.Infof("player %s guess for #%d: %s", playerID, number, verdict.String())
	return &verdict, nil
}

// Share возвращает текст с историей догадок игрока за сегодня.
func (u *PuzzleUseCase) Share(ctx context.Context, playerID string) (string, error) {
	number := u.Today()
	progress, err := u.progress.GetProgress(ctx, playerID, number)
	if err != nil {
		return "", err
	}
	return ShareText(number, progress.Guesses), nil
}
