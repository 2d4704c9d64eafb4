package repo

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"josekle/internal/bootstrap"
	"josekle/internal/domain/puzzle"
)

// ProgressRepository хранит догадки игроков в Redis: список строк подсказок
// и отдельный ключ-флаг решённой головоломки.
type ProgressRepository struct {
	cfg   bootstrap.Config
	log   *zap.SugaredLogger
	redis *redis.Client
}

func NewProgressRepository(cfg bootstrap.Config, log *zap.SugaredLogger, redis *redis.Client) *ProgressRepository {
	return &ProgressRepository{
		cfg:   cfg,
		log:   log,
		redis: redis,
	}
}

func progressKey(playerID string, number int) string {
	return fmt.Sprintf("progress:%s:%d", playerID, number)
}

func solvedKey(playerID string, number int) string {
	return progressKey(playerID, number) + ":solved"
}

func (r *ProgressRepository) GetProgress(ctx context.Context, playerID string, number int) (*puzzle.Progress, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	lines, err := r.redis.LRange(ctx, progressKey(playerID, number), 0, -1).Result()
	if err != nil {
		r.log.Errorf("failed to read guesses of %s: %v", playerID, err)
		return nil, err
	}

	solved, err := r.redis.Exists(ctx, solvedKey(playerID, number)).Result()
	if err != nil {
		r.log.Errorf("failed to read solved flag of %s: %v", playerID, err)
		return nil, err
	}

	return &puzzle.Progress{
		PlayerID: playerID,
		Number:   number,
		Guesses:  lines,
		Solved:   solved > 0,
	}, nil
}

func (r *ProgressRepository) AddGuess(ctx context.Context, playerID string, number int, line string, solved bool) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	key := progressKey(playerID, number)
	if err := r.redis.RPush(ctx, key, line).Err(); err != nil {
		r.log.Errorf("failed to store guess of %s: %v", playerID, err)
		return err
	}
	ttl := r.cfg.ProgressTTL()
	if ttl > 0 {
		if err := r.redis.Expire(ctx, key, ttl).Err(); err != nil {
			return err
		}
	}
	if solved {
		if err := r.redis.Set(ctx, solvedKey(playerID, number), 1, ttl).Err(); err != nil {
			r.log.Errorf("failed to mark %s solved: %v", playerID, err)
			return err
		}
	}
	return nil
}
