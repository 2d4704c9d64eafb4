package repo

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"josekle/internal/bootstrap"
	apperrors "josekle/internal/errors"
)

const recordKeyPrefix = "record:"

// RecordRepository хранит тексты SGF в Redis под случайными ключами.
type RecordRepository struct {
	cfg   bootstrap.Config
	log   *zap.SugaredLogger
	redis *redis.Client
}

func NewRecordRepository(cfg bootstrap.Config, log *zap.SugaredLogger, redis *redis.Client) *RecordRepository {
	return &RecordRepository{
		cfg:   cfg,
		log:   log,
		redis: redis,
	}
}

func (r *RecordRepository) GenerateRecordKey() string {
	return uuid.New().String()
}

func (r *RecordRepository) SaveRecord(ctx context.Context, key string, sgfText string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	err := r.redis.Set(ctx, recordKeyPrefix+key, sgfText, r.cfg.RecordTTL()).Err()
	if err != nil {
		r.log.Errorf("failed to save record %s: %v", key, err)
		return err
	}
	return nil
}

func (r *RecordRepository) GetRecord(ctx context.Context, key string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	text, err := r.redis.Get(ctx, recordKeyPrefix+key).Result()
	if errors.Is(err, redis.Nil) {
		return "", apperrors.ErrRecordNotFound
	}
	if err != nil {
		r.log.Errorf("failed to get record %s: %v", key, err)
		return "", err
	}
	return text, nil
}

func (r *RecordRepository) DeleteRecord(ctx context.Context, key string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	n, err := r.redis.Del(ctx, recordKeyPrefix+key).Result()
	if err != nil {
		r.log.Errorf("failed to delete record %s: %v", key, err)
		return err
	}
	if n == 0 {
		return apperrors.ErrRecordNotFound
	}
	return nil
}
