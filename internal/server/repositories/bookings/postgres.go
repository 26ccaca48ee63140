package bookings

import (
	"context"
	"fmt"

	"github.com/hsaleh/talentdesk/internal/dbx"
	"github.com/hsaleh/talentdesk/internal/server/models"
)

// PostgresRepository implements Repository over a dbx.DBTX.
type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Upsert(ctx context.Context, b *models.Booking) error {
	query := `
		INSERT INTO bookings (user_id, od_id, talent_id, talent_od_id, payload, updated_at)
		VALUES ($1, $2,
			(SELECT id FROM talents WHERE user_id = $1 AND od_id = $3),
			$3, $4, now())
		ON CONFLICT (user_id, od_id)
		DO UPDATE SET
			talent_id = EXCLUDED.talent_id,
			talent_od_id = EXCLUDED.talent_od_id,
			payload = EXCLUDED.payload,
			updated_at = now()
	`
	if _, err := r.db.ExecContext(ctx, query, b.UserID, b.OdID, b.TalentOdID, b.Payload); err != nil {
		return fmt.Errorf("failed to upsert booking: %w", err)
	}
	return nil
}

func (r *PostgresRepository) ListByUser(ctx context.Context, userID string) ([]models.Booking, error) {
	query := `SELECT id, user_id, od_id, talent_id, talent_od_id, payload, updated_at
		FROM bookings WHERE user_id = $1 ORDER BY id`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to select bookings: %w", err)
	}
	defer rows.Close()

	var result []models.Booking
	for rows.Next() {
		var b models.Booking
		if err := rows.Scan(&b.ID, &b.UserID, &b.OdID, &b.TalentID, &b.TalentOdID, &b.Payload, &b.UpdatedAt); err != nil {
			return nil, err
		}
		result = append(result, b)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
