package records

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"josekle/internal/record"
)

type RecordStore interface {
	GenerateRecordKey() string
	SaveRecord(ctx context.Context, key string, sgfText string) error
	GetRecord(ctx context.Context, key string) (string, error)
	DeleteRecord(ctx context.Context, key string) error
}

type RecordUseCase struct {
	store  RecordStore
	loader *record.Loader
	log    *zap.SugaredLogger
}

func NewRecordUseCase(store RecordStore, log *zap.SugaredLogger) *RecordUseCase {
	return &RecordUseCase{
		store:  store,
		loader: record.NewLoader(log),
		log:    log,
	}
}

// Normalize разбирает и заново записывает текст SGF.
func (u *RecordUseCase) Normalize(text string) (string, error) {
	rec, err := u.loader.Read(text)
	if err != nil {
		return "", err
	}
	return record.Compose(rec), nil
}

// Import проверяет запись и сохраняет её нормализованный текст под новым ключом.
func (u *RecordUseCase) Import(ctx context.Context, text string) (string, error) {
	normalized, err := u.Normalize(text)
	if err != nil {
		return "", fmt.Errorf("import record: %w", err)
	}

	key := u.store.GenerateRecordKey()
	if err := u.store.SaveRecord(ctx, key, normalized); err != nil {
		return "", err
	}
	u.log.Infof("record stored with key %s", key)
	return key, nil
}

// Save записывает запись под существующим ключом.
func (u *RecordUseCase) Save(ctx context.Context, key string, rec *record.Record) error {
	return u.store.SaveRecord(ctx, key, record.Compose(rec))
}

func (u *RecordUseCase) Load(ctx context.Context, key string) (*record.Record, error) {
	text, err := u.store.GetRecord(ctx, key)
	if err != nil {
		return nil, err
	}
	return u.loader.Read(text)
}

func (u *RecordUseCase) Delete(ctx context.Context, key string) error {
	return u.store.DeleteRecord(ctx, key)
}
