package database

import (
	"context"
	"fmt"

	"github.com/pressly/goose/v3"

	"github.com/kshitijrv/mingle/internal/pkg/database/migrations"
)

// RunMigrations applies all pending schema migrations
func (p *PostgresClient) RunMigrations(ctx context.Context) error {
	goose.SetBaseFS(migrations.Migrations)

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	if err := goose.UpContext(ctx, p.db.DB, "."); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	return nil
}
