package migrations

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

//go:embed postgres/*.sql sqlite/*.sql
var embedMigrations embed.FS

// MigratePostgres applies the deck store schema to the database at pgurl and
// returns how many migrations ran.
func MigratePostgres(ctx context.Context, pgurl string) (int, error) {
	migrationDB, err := sql.Open("pgx", pgurl)
	if err != nil {
		return 0, fmt.Errorf("open db for migrations: %w", err)
	}
	defer migrationDB.Close()

	return up(ctx, goose.DialectPostgres, migrationDB, "postgres")
}

// MigrateSQLite applies the deck store schema to an open sqlite handle.
func MigrateSQLite(ctx context.Context, db *sql.DB) (int, error) {
	return up(ctx, goose.DialectSQLite3, db, "sqlite")
}

func up(ctx context.Context, dialect goose.Dialect, db *sql.DB, dir string) (int, error) {
	fsys, err := fs.Sub(embedMigrations, dir)
	if err != nil {
		return 0, err
	}
	provider, err := goose.NewProvider(dialect, db, fsys)
	if err != nil {
		return 0, fmt.Errorf("create goose provider: %w", err)
	}
	results, err := provider.Up(ctx)
	if err != nil {
		return 0, fmt.Errorf("run up migrations: %w", err)
	}
	return len(results), nil
}
