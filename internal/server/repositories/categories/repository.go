// Package categories persists synced category rows.
//
// Categories are the one entity without per-row upsert: every push replaces
// the user's whole category set. Their od ids carry no cross-device
// stability requirement, so history is not preserved. This asymmetry is a
// deliberate design decision, not an oversight.
package categories

import (
	"context"

	"github.com/hsaleh/talentdesk/internal/server/models"
)

// Repository describes category persistence.
type Repository interface {
	// ReplaceAll deletes every category owned by userID and inserts rows in
	// their place.
	ReplaceAll(ctx context.Context, userID string, rows []models.Category) error

	// ListByUser returns all category rows owned by userID.
	ListByUser(ctx context.Context, userID string) ([]models.Category, error)
}
