package records

import (
	"context"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"josekle/internal/errors"
	"josekle/internal/gametree"
	"josekle/internal/record"
)

type fakeStore struct {
	data map[string]string
	next int
}

func (f *fakeStore) GenerateRecordKey() string {
	f.next++
	return "key-" + strconv.Itoa(f.next)
}

func (f *fakeStore) SaveRecord(_ context.Context, key string, sgfText string) error {
	f.data[key] = sgfText
	return nil
}

func (f *fakeStore) GetRecord(_ context.Context, key string) (string, error) {
	text, ok := f.data[key]
	if !ok {
		return "", errors.ErrRecordNotFound
	}
	return text, nil
}

func (f *fakeStore) DeleteRecord(_ context.Context, key string) error {
	delete(f.data, key)
	return nil
}

func newUseCase() (*RecordUseCase, *fakeStore) {
	store := &fakeStore{data: map[string]string{}}
	return NewRecordUseCase(store, zap.NewNop().Sugar()), store
}

func TestImportAndLoad(t *testing.T) {
	ctx := context.Background()
	u, store := newUseCase()

	key, err := u.Import(ctx, "(;SZ[9]PB[me];B[ee];W[ce])")
	require.NoError(t, err)
	assert.Equal(t, "key-1", key)
	assert.Contains(t, store.data[key], "AP[josekle:")

	rec, err := u.Load(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, "me", rec.Info["PB"])
	assert.Equal(t, gametree.White, rec.Tree.Root().Child(0).Child(0).Stone(3, 5))

	rec.Info["PW"] = "you"
	require.NoError(t, u.Save(ctx, key, rec))
	rec, err = u.Load(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, "you", rec.Info["PW"])

	require.NoError(t, u.Delete(ctx, key))
	_, err = u.Load(ctx, key)
	assert.ErrorIs(t, err, errors.ErrRecordNotFound)
}

func TestImport_SyntaxError(t *testing.T) {
	u, store := newUseCase()
	_, err := u.Import(context.Background(), "(;B[ee]")

	var syntaxErr *record.SyntaxError
	assert.ErrorAs(t, err, &syntaxErr)
	assert.Empty(t, store.data)
}

func TestNormalize_Idempotent(t *testing.T) {
	u, _ := newUseCase()
	once, err := u.Normalize("(;SZ[9]\n;B[ee]  (;W[ce])(;W[gc]C[x]))")
	require.NoError(t, err)
	twice, err := u.Normalize(once)
	require.NoError(t, err)
	assert.Equal(t, once, twice)
}
