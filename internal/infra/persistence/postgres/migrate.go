package postgres

import (
	"context"
	"database/sql"

	"account/internal/errors"
	"account/internal/infra/persistence/postgres/migrations"

	"github.com/pressly/goose/v3"
)

const migrationDialect = "postgres"

// gooseUpContext is replaced in tests.
var gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
	return goose.UpContext(ctx, db, dir, opts...)
}

// RunMigrations applies the embedded schema migrations to the database.
func RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect(migrationDialect); err != nil {
		return errors.Wrap(err, "failed to set migration dialect")
	}

	if err := gooseUpContext(ctx, db, "."); err != nil {
		return errors.Wrap(err, "failed to apply migrations")
	}

	return nil
}
