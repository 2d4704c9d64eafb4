package repo

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"josekle/internal/bootstrap"
	apperrors "josekle/internal/errors"
)

func TestRecordRepository(t *testing.T) {
	ctx := context.Background()
	db, mock := redismock.NewClientMock()
	repo := NewRecordRepository(bootstrap.Config{RecordTTLHours: 2}, zap.NewNop().Sugar(), db)

	key := repo.GenerateRecordKey()
	assert.Len(t, key, 36)
	assert.NotEqual(t, key, repo.GenerateRecordKey())

	mock.ExpectSet("record:"+key, "(;SZ[9])", 2*time.Hour).SetVal("OK")
	require.NoError(t, repo.SaveRecord(ctx, key, "(;SZ[9])"))

	mock.ExpectGet("record:" + key).SetVal("(;SZ[9])")
	text, err := repo.GetRecord(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, "(;SZ[9])", text)

	mock.ExpectDel("record:" + key).SetVal(1)
	require.NoError(t, repo.DeleteRecord(ctx, key))

	mock.ExpectGet("record:" + key).RedisNil()
	_, err = repo.GetRecord(ctx, key)
	assert.ErrorIs(t, err, apperrors.ErrRecordNotFound)

	mock.ExpectDel("record:" + key).SetVal(0)
	assert.ErrorIs(t, repo.DeleteRecord(ctx, key), apperrors.ErrRecordNotFound)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRecordRepository_RedisError(t *testing.T) {
	db, mock := redismock.NewClientMock()
	repo := NewRecordRepository(bootstrap.Config{}, zap.NewNop().Sugar(), db)

	boom := errors.New("connection refused")
	mock.ExpectSet("record:k", "x", 0).SetErr(boom)
	assert.ErrorIs(t, repo.SaveRecord(context.Background(), "k", "x"), boom)

	mock.ExpectGet("record:k").SetErr(boom)
	_, err := repo.GetRecord(context.Background(), "k")
	assert.ErrorIs(t, err, boom)

	assert.NoError(t, mock.ExpectationsWereMet())
}
