package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryCacheRepositoryGetSet(t *testing.T) {
	repo := NewMemoryCacheRepository()
	ctx := context.Background()

	require.NoError(t, repo.Set(ctx, "greeting", "namaste", time.Minute))

	val, err := repo.Get(ctx, "greeting")
	require.NoError(t, err)
	assert.Equal(t, "namaste", val)

	// Промах не считается ошибкой: возвращается пустая строка.
	val, err = repo.Get(ctx, "missing")
	require.NoError(t, err)
	assert.Equal(t, "", val)
}

func TestMemoryCacheRepositoryJSON(t *testing.T) {
	type payload struct {
		Tithi int    `json:"tithi"`
		Name  string `json:"name"`
	}

	repo := NewMemoryCacheRepository()
	ctx := context.Background()

	require.NoError(t, repo.SetJSON(ctx, "panchang:28.6139:77.2090:2024-11-05:lahiri", payload{Tithi: 11, Name: "Ekadashi"}, time.Hour))

	var got payload
	require.NoError(t, repo.GetJSON(ctx, "panchang:28.6139:77.2090:2024-11-05:lahiri", &got))
	assert.Equal(t, 11, got.Tithi)
	assert.Equal(t, "Ekadashi", got.Name)

	// При промахе приёмник остаётся нетронутым.
	var untouched payload
	require.NoError(t, repo.GetJSON(ctx, "panchang:nope", &untouched))
	assert.Zero(t, untouched)
}

func TestMemoryCacheRepositoryExistsDelete(t *testing.T) {
	repo := NewMemoryCacheRepository()
	ctx := context.Background()

	require.NoError(t, repo.Set(ctx, "key", "value", 0))

	exists, err := repo.Exists(ctx, "key")
	require.NoError(t, err)
	assert.True(t, exists)

	require.NoError(t, repo.Delete(ctx, "key"))

	exists, err = repo.Exists(ctx, "key")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestMemoryCacheRepositoryIncrement(t *testing.T) {
	repo := NewMemoryCacheRepository()
	ctx := context.Background()

	n, err := repo.Increment(ctx, "hits")
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	n, err = repo.Increment(ctx, "hits")
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)
}

func TestMemoryCacheRepositoryKeys(t *testing.T) {
	repo := NewMemoryCacheRepository()
	ctx := context.Background()

	require.NoError(t, repo.Set(ctx, "panchang:a", "1", 0))
	require.NoError(t, repo.Set(ctx, "panchang:b", "2", 0))
	require.NoError(t, repo.Set(ctx, "muhurat:a", "3", 0))

	keys, err := repo.Keys(ctx, "panchang:*")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"panchang:a", "panchang:b"}, keys)

	require.NoError(t, repo.FlushAll(ctx))

	keys, err = repo.Keys(ctx, "*")
	require.NoError(t, err)
	assert.Empty(t, keys)
}
