// Package bookings persists synced booking rows.
package bookings

import (
	"context"

	"github.com/hsaleh/talentdesk/internal/server/models"
)

// Repository describes booking row persistence.
type Repository interface {
	// Upsert inserts or field-level-updates the row identified by
	// (UserID, OdID). The numeric talent reference is resolved from
	// TalentOdID against the user's talent rows at write time.
	Upsert(ctx context.Context, b *models.Booking) error

	// ListByUser returns all booking rows owned by userID.
	ListByUser(ctx context.Context, userID string) ([]models.Booking, error)
}
