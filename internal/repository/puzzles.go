package repo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"josekle/internal/bootstrap"
	"josekle/internal/domain/puzzle"
	apperrors "josekle/internal/errors"
)

const puzzlesCollection = "puzzles"

// PuzzleStorage: корпус головоломок в MongoDB.
type PuzzleStorage struct {
	cfg   bootstrap.Config
	log   *zap.SugaredLogger
	mongo *mongo.Database
}

func NewPuzzleStorage(cfg bootstrap.Config, log *zap.SugaredLogger, mongo *mongo.Database) *PuzzleStorage {
	return &PuzzleStorage{
		cfg:   cfg,
		log:   log,
		mongo: mongo,
	}
}

// InsertPuzzles дописывает головоломки в конец корпуса; номера продолжают
// уже сохранённые.
func (s *PuzzleStorage) InsertPuzzles(ctx context.Context, list []puzzle.Puzzle) (int, error) {
	if len(list) == 0 {
		return 0, nil
	}

	offset, err := s.CountPuzzles(ctx)
	if err != nil {
		return 0, err
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	docs := make([]interface{}, len(list))
	for i, p := range list {
		p.Number = int(offset) + i
		docs[i] = p
	}

	res, err := s.mongo.Collection(puzzlesCollection).InsertMany(ctx, docs)
	if err != nil {
		s.log.Errorf("failed to insert puzzles: %v", err)
		return 0, err
	}

	s.log.Infof("inserted %d puzzles starting at #%d", len(res.InsertedIDs), offset)
	return len(res.InsertedIDs), nil
}

func (s *PuzzleStorage) CountPuzzles(ctx context.Context) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	count, err := s.mongo.Collection(puzzlesCollection).CountDocuments(ctx, bson.M{})
	if err != nil {
		s.log.Errorf("failed to count puzzles: %v", err)
		return 0, err
	}
	return count, nil
}

func (s *PuzzleStorage) GetPuzzle(ctx context.Context, number int64) (*puzzle.Puzzle, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var p puzzle.Puzzle
	err := s.mongo.Collection(puzzlesCollection).FindOne(ctx, bson.M{"number": number}).Decode(&p)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, apperrors.ErrPuzzleNotFound
	}
	if err != nil {
		s.log.Errorf("failed to get puzzle #%d: %v", number, err)
		return nil, err
	}
	return &p, nil
}
