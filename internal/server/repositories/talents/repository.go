// Package talents persists synced talent rows.
package talents

import (
	"context"

	"github.com/hsaleh/talentdesk/internal/server/models"
)

// Repository describes talent row persistence.
type Repository interface {
	// Upsert inserts or field-level-updates the row identified by
	// (UserID, OdID). The numeric category reference is resolved from
	// CategoryOdID against the user's category rows at write time.
	Upsert(ctx context.Context, t *models.Talent) error

	// ListByUser returns all talent rows owned by userID.
	ListByUser(ctx context.Context, userID string) ([]models.Talent, error)
}
