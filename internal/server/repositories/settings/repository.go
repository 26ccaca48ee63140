// Package settings persists the one settings row each user owns.
package settings

import (
	"context"

	"github.com/hsaleh/talentdesk/internal/server/models"
)

// Repository describes settings persistence: a single row per user,
// overwritten whole on every push. No history is kept.
type Repository interface {
	Upsert(ctx context.Context, s *models.Settings) error

	// GetByUser returns the row or common.ErrNotFound.
	GetByUser(ctx context.Context, userID string) (*models.Settings, error)
}
