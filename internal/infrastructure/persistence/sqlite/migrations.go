package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"

	"github.com/pressly/goose/v3"

	"github.com/bnema/selsearch/internal/logging"
)

//go:embed migrations/*.sql
var embedMigrations embed.FS

func newMigrator(db *sql.DB) (*goose.Provider, error) {
	migrations, err := fs.Sub(embedMigrations, "migrations")
	if err != nil {
		return nil, err
	}
	return goose.NewProvider(goose.DialectSQLite3, db, migrations)
}

// Migrate brings the storage schema up to date and returns its version.
func Migrate(ctx context.Context, db *sql.DB) (int64, error) {
	log := logging.FromContext(ctx)

	migrator, err := newMigrator(db)
	if err != nil {
		return 0, fmt.Errorf("failed to load migrations: %w", err)
	}

	results, err := migrator.Up(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to apply migrations: %w", err)
	}
	for _, r := range results {
		log.Info().
			Int64("version", r.Source.Version).
			Dur("took", r.Duration).
			Msg("storage migration applied")
	}

	version, err := migrator.GetDBVersion(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to read schema version: %w", err)
	}
	if len(results) == 0 {
		log.Debug().Int64("version", version).Msg("storage schema up to date")
	}
	return version, nil
}

// SchemaVersion returns the applied schema version of db.
func SchemaVersion(ctx context.Context, db *sql.DB) (int64, error) {
	migrator, err := newMigrator(db)
	if err != nil {
		return 0, err
	}
	return migrator.GetDBVersion(ctx)
}
