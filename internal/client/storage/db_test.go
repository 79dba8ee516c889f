package storage

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/require"
)

func TestInitDatabase_CreatesSchemaAndSeeds(t *testing.T) {
	db, err := InitDatabase(context.Background(), "file:storage_init?mode=memory&cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	var n int
	require.NoError(t, db.QueryRow(`SELECT count(*) FROM kv`).Scan(&n))
	require.Equal(t, 0, n)

	require.NoError(t, db.QueryRow(`SELECT count(*) FROM records`).Scan(&n))
	require.Greater(t, n, 0)
}

func TestInitDatabase_IsIdempotent(t *testing.T) {
	dsn := "file:storage_idem?mode=memory&cache=shared"

	db1, err := InitDatabase(context.Background(), dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db1.Close() })

	db2, err := InitDatabase(context.Background(), dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db2.Close() })

	var n int
	require.NoError(t, db2.QueryRow(`SELECT count(*) FROM records`).Scan(&n))
	require.Equal(t, 8, n)
}

func TestInitDatabase_MigrationFailureClosesDB(t *testing.T) {
	orig := gooseUpContext
	gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
		return errors.New("boom")
	}
	t.Cleanup(func() { gooseUpContext = orig })

	_, err := InitDatabase(context.Background(), "file:storage_fail?mode=memory&cache=shared")
	require.Error(t, err)
	require.Contains(t, err.Error(), "boom")
}
