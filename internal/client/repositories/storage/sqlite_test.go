package storage

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	// :memory: is per connection; pin the pool to one so every query sees the table.
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE storage (
  key   TEXT PRIMARY KEY,
  value TEXT NOT NULL
);`)
	require.NoError(t, err)
	return db
}

func TestSetAndGet(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, r.Set(ctx, "yukam-theme", "dark"))

	v, ok, err := r.Get(ctx, "yukam-theme")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "dark", v)
}

func TestGet_Missing(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))

	v, ok, err := r.Get(context.Background(), "absent")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, v)
}

func TestSet_Overwrites(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, r.Set(ctx, "k", "old"))
	require.NoError(t, r.Set(ctx, "k", "new"))

	v, _, err := r.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "new", v)
}

func TestRemove_IsIdempotent(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, r.Set(ctx, "k", "v"))
	require.NoError(t, r.Remove(ctx, "k"))
	require.NoError(t, r.Remove(ctx, "k"))
	require.NoError(t, r.Remove(ctx, "never-set"))

	_, ok, err := r.Get(ctx, "k")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestCompareAndSwap(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, r.Set(ctx, "k", "legacy"))

	swapped, err := r.CompareAndSwap(ctx, "k", "something else", "migrated")
	require.NoError(t, err)
	assert.False(t, swapped)

	swapped, err = r.CompareAndSwap(ctx, "k", "legacy", "migrated")
	require.NoError(t, err)
	assert.True(t, swapped)

	v, _, err := r.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "migrated", v)

	swapped, err = r.CompareAndSwap(ctx, "missing", "", "x")
	require.NoError(t, err)
	assert.False(t, swapped)
}

func TestKeys(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	keys, err := r.Keys(ctx)
	require.NoError(t, err)
	assert.Empty(t, keys)

	require.NoError(t, r.Set(ctx, "b", "2"))
	require.NoError(t, r.Set(ctx, "a", "1"))

	keys, err = r.Keys(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, keys)
}

func TestErrorsWrapped_WhenDBClosed(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()
	require.NoError(t, db.Close())

	_, _, err := r.Get(ctx, "k")
	require.ErrorContains(t, err, "failed to get storage[k]")

	err = r.Set(ctx, "k", "v")
	require.ErrorContains(t, err, "failed to set storage[k]")

	err = r.Remove(ctx, "k")
	require.ErrorContains(t, err, "failed to remove storage[k]")

	_, err = r.CompareAndSwap(ctx, "k", "a", "b")
	require.ErrorContains(t, err, "failed to swap storage[k]")

	_, err = r.Keys(ctx)
	require.ErrorContains(t, err, "failed to list storage keys")
}
