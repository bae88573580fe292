package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/ncruces/go-sqlite3/driver" // database/sql driver
	_ "github.com/ncruces/go-sqlite3/embed"  // bundled SQLite build

	"github.com/bnema/selsearch/internal/logging"
)

const dbDirPerm = 0o750

// WAL keeps the main file stable and funnels every commit through the -wal
// file, which is what Watch listens to. busy_timeout covers the daemon and
// an editor writing at the same time.
var pragmas = []string{
	"PRAGMA journal_mode = WAL",
	"PRAGMA synchronous = NORMAL",
	"PRAGMA busy_timeout = 5000",
	"PRAGMA temp_store = MEMORY",
}

// NewConnection opens the storage database at dbPath, creating its directory,
// and migrates it.
func NewConnection(ctx context.Context, dbPath string) (*sql.DB, error) {
	if dbPath == "" {
		return nil, errors.New("database path cannot be empty")
	}
	if err := os.MkdirAll(filepath.Dir(dbPath), dbDirPerm); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// One connection per process: SQLite has a single writer and the store
	// tracks revisions per process.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)
	db.SetConnMaxIdleTime(0)

	if err := prepare(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}

	version, err := Migrate(ctx, db)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	logging.FromContext(ctx).Debug().
		Str("path", dbPath).
		Int64("schema", version).
		Msg("storage database opened")
	return db, nil
}

func prepare(ctx context.Context, db *sql.DB) error {
	if err := db.PingContext(ctx); err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	for _, p := range pragmas {
		if _, err := db.ExecContext(ctx, p); err != nil {
			return fmt.Errorf("failed to apply %q: %w", p, err)
		}
	}
	return nil
}
