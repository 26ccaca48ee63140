// Package projects persists synced project rows.
package projects

import (
	"context"

	"github.com/hsaleh/talentdesk/internal/server/models"
)

// Repository describes project row persistence.
type Repository interface {
	// Upsert inserts or field-level-updates the row identified by
	// (UserID, OdID).
	Upsert(ctx context.Context, p *models.Project) error

	// ListByUser returns all project rows owned by userID.
	ListByUser(ctx context.Context, userID string) ([]models.Project, error)
}
