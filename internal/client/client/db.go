// Package client initializes the on-device database backing the record
// stores.
package client

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/pressly/goose/v3"

	"github.com/hsaleh/talentdesk/internal/client/kv"
	"github.com/hsaleh/talentdesk/internal/client/migrations"
)

// RunMigrations applies the embedded goose migrations to the sqlite database.
func RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	return goose.UpContext(ctx, db, ".")
}

// InitDatabase opens (creating if needed) the local database at dsn, runs
// migrations, and returns the kv store over it. The caller owns closing db.
func InitDatabase(ctx context.Context, dsn string) (*kv.SQLiteStore, *sql.DB, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, nil, err
	}

	if err := RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, nil, err
	}

	return kv.NewSQLiteStore(db), db, nil
}
