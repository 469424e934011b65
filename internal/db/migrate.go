// Package db applies the embedded goose migrations.
package db

import (
	"context"
	"database/sql"
	"fmt"
	"io/fs"

	"github.com/pressly/goose/v3"
	"go.uber.org/zap"
)

// RunMigrations applies all pending migrations from fsys, which should hold
// goose-annotated SQL files (e.g. "00001_employees.sql").
func RunMigrations(ctx context.Context, sqlDB *sql.DB, fsys fs.FS, logger *zap.Logger) error {
	log := logger.Named("db.migrate")

	provider, err := goose.NewProvider(goose.DialectPostgres, sqlDB, fsys)
	if err != nil {
		return fmt.Errorf("creating goose provider: %w", err)
	}

	results, err := provider.Up(ctx)
	if err != nil {
		return fmt.Errorf("applying migrations: %w", err)
	}

	for _, r := range results {
		if r.Error != nil {
			return fmt.Errorf("migration %d (%s) failed: %w", r.Source.Version, r.Source.Path, r.Error)
		}

		log.Info("migration applied",
			zap.Int64("version", r.Source.Version),
			zap.String("file", r.Source.Path),
			zap.Duration("duration", r.Duration),
		)
	}

	if len(results) == 0 {
		log.Debug("all migrations already applied")
	}

	return nil
}
