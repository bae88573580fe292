package sqlite_test

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bnema/selsearch/internal/infrastructure/persistence/sqlite"
)

func mustDB(t *testing.T, path string) *sql.DB {
	t.Helper()
	db, err := sqlite.NewConnection(testCtx(), path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}
