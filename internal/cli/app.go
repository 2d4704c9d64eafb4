package cli

import (
	"context"

	"go.uber.org/zap"

	"josekle/internal/adapters"
	"josekle/internal/bootstrap"
	"josekle/internal/errors"
	repo "josekle/internal/repository"
	"josekle/internal/usecase/puzzles"
	"josekle/internal/usecase/records"
)

// app держит конфигурацию и лениво открытые подключения к хранилищам.
type app struct {
	cfgPath  string
	logLevel string
	cfg      *bootstrap.Config
	log      *zap.SugaredLogger
	redis    *adapters.AdapterRedis
	mongo    *adapters.AdapterMongo
}

func (a *app) setup() error {
	if a.cfg != nil {
		return nil
	}
	cfg, err := bootstrap.Setup(a.cfgPath)
	if err != nil {
		return err
	}
	if a.logLevel != "" {
		cfg.LogLevel = a.logLevel
	}
	if a.log == nil {
		log, err := NewLogger(cfg.LogLevel)
		if err != nil {
			return err
		}
		a.log = log
	}
	a.cfg = cfg
	return nil
}

func (a *app) initRedis(ctx context.Context) error {
	if a.redis != nil {
		return nil
	}
	if a.cfg.RedisUrl == "" {
		return errors.ErrStorageNotConfig
	}
	redisAdapter := adapters.NewAdapterRedis(a.cfg, a.log)
	if err := redisAdapter.Init(ctx); err != nil {
		return err
	}
	a.redis = redisAdapter
	return nil
}

func (a *app) initMongo(ctx context.Context) error {
	if a.mongo != nil {
		return nil
	}
	if a.cfg.MongoUri == "" {
		return errors.ErrStorageNotConfig
	}
	mongoAdapter := adapters.NewAdapterMongo(a.cfg, a.log)
	if err := mongoAdapter.Init(ctx); err != nil {
		return err
	}
	a.mongo = mongoAdapter
	return nil
}

func (a *app) recordUseCase(ctx context.Context) (*records.RecordUseCase, error) {
	if err := a.initRedis(ctx); err != nil {
		return nil, err
	}
	store := repo.NewRecordRepository(*a.cfg, a.log, a.redis.GetClient())
	return records.NewRecordUseCase(store, a.log), nil
}

func (a *app) puzzleUseCase(ctx context.Context) (*puzzles.PuzzleUseCase, error) {
	if err := a.initMongo(ctx); err != nil {
		return nil, err
	}
	if err := a.initRedis(ctx); err != nil {
		return nil, err
	}
	epoch, err := a.cfg.Epoch()
	if err != nil {
		return nil, err
	}
	puzzleStorage := repo.NewPuzzleStorage(*a.cfg, a.log, a.mongo.Database)
	progress := repo.NewProgressRepository(*a.cfg, a.log, a.redis.GetClient())
	return puzzles.NewPuzzleUseCase(puzzleStorage, progress, epoch, a.log), nil
}

func (a *app) close(ctx context.Context) {
	if a.mongo != nil {
		if err := a.mongo.Close(ctx); err != nil {
			a.log.Errorf("failed to close mongo: %v", err)
		}
	}
	if a.redis != nil {
		if err := a.redis.Close(ctx); err != nil {
			a.log.Errorf("failed to close redis: %v", err)
		}
	}
	if a.log != nil {
		_ = a.log.Sync()
	}
}
