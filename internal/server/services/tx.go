// Package services contains the server-side business logic: accounts,
// batch sync application, and photo storage.
package services

import (
	"context"
	"database/sql"

	"github.com/hsaleh/talentdesk/internal/dbx"
)

// withTx runs fn inside a transaction when a real database is attached. The
// in-memory repository manager has no connection; its repositories ignore
// the handle, so fn runs directly.
func withTx(ctx context.Context, db *sql.DB, fn func(ctx context.Context, tx dbx.DBTX) error) error {
	if db == nil {
		return fn(ctx, nil)
	}
	return dbx.WithTx(ctx, db, nil, fn)
}
