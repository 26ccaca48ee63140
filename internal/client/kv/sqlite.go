package kv

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/hsaleh/talentdesk/internal/dbx"
)

// SQLiteStore keeps slots in a single `slots` table. It is bound to a
// dbx.DBTX so one instance can run either directly on the database or inside
// a transaction opened by Update.
type SQLiteStore struct {
	db   dbx.DBTX
	conn *sql.DB
}

// NewSQLiteStore returns a store over the given database handle.
func NewSQLiteStore(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{db: db, conn: db}
}

func (s *SQLiteStore) Get(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM slots WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to read slot %q: %w", key, err)
	}
	return value, true, nil
}

func (s *SQLiteStore) Set(ctx context.Context, key, value string) error {
	query := `INSERT INTO slots (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value`
	if _, err := s.db.ExecContext(ctx, query, key, value); err != nil {
		return fmt.Errorf("failed to write slot %q: %w", key, err)
	}
	return nil
}

func (s *SQLiteStore) RemoveMany(ctx context.Context, keys ...string) error {
	for _, key := range keys {
		if _, err := s.db.ExecContext(ctx, `DELETE FROM slots WHERE key = ?`, key); err != nil {
			return fmt.Errorf("failed to remove slot %q: %w", key, err)
		}
	}
	return nil
}

// Update runs fn inside one sqlite transaction. Nested Update calls are not
// supported: the store handed to fn applies writes directly on the tx.
func (s *SQLiteStore) Update(ctx context.Context, fn func(ctx context.Context, st Store) error) error {
	if s.conn == nil {
		return errors.New("kv: Update on transactional handle")
	}
	return dbx.WithTx(ctx, s.conn, nil, func(ctx context.Context, tx dbx.DBTX) error {
		return fn(ctx, &SQLiteStore{db: tx})
	})
}
