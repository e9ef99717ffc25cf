package database

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := NewDB(filepath.Join(t.TempDir(), "nested", "test.db"), zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestNewDB_AppliesMigrations(t *testing.T) {
	db := newTestDB(t)

	for _, table := range []string{"users", "individuals", "meal_groups", "recipes", "recipe_steps", "meals", "shopping_items"} {
		var name string
		err := db.SQL.QueryRow(`SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?`, table).Scan(&name)
		require.NoError(t, err, "table %s should exist", table)
	}
}

func TestRunMigrations_Idempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")
	require.NoError(t, RunMigrations(path, zap.NewNop()))
	require.NoError(t, RunMigrations(path, zap.NewNop()))
}

func TestInTx(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)

	t.Run("Commit", func(t *testing.T) {
		err := db.InTx(ctx, func(tx *sql.Tx) error {
			_, err := tx.ExecContext(ctx, `INSERT INTO recipes (id, name) VALUES ('r1', 'Soup')`)
			return err
		})
		require.NoError(t, err)

		var count int
		require.NoError(t, db.SQL.QueryRow(`SELECT COUNT(*) FROM recipes`).Scan(&count))
		assert.Equal(t, 1, count)
	})

	t.Run("Rollback", func(t *testing.T) {
		boom := errors.New("boom")
		err := db.InTx(ctx, func(tx *sql.Tx) error {
			if _, err := tx.ExecContext(ctx, `INSERT INTO recipes (id, name) VALUES ('r2', 'Stew')`); err != nil {
				return err
			}
			return boom
		})
		assert.ErrorIs(t, err, boom)

		var count int
		require.NoError(t, db.SQL.QueryRow(`SELECT COUNT(*) FROM recipes WHERE id = 'r2'`).Scan(&count))
		assert.Zero(t, count)
	})
}

func TestIsUniqueViolation(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)

	_, err := db.SQL.ExecContext(ctx, `INSERT INTO recipes (id, name, url) VALUES ('a', 'A', 'http://x')`)
	require.NoError(t, err)

	_, err = db.SQL.ExecContext(ctx, `INSERT INTO recipes (id, name, url) VALUES ('b', 'B', 'http://x')`)
	require.Error(t, err)
	assert.True(t, IsUniqueViolation(err))

	// Blank URLs may repeat.
	_, err = db.SQL.ExecContext(ctx, `INSERT INTO recipes (id, name) VALUES ('c', 'C')`)
	require.NoError(t, err)
	_, err = db.SQL.ExecContext(ctx, `INSERT INTO recipes (id, name) VALUES ('d', 'D')`)
	require.NoError(t, err)

	assert.False(t, IsUniqueViolation(errors.New("other")))
}
