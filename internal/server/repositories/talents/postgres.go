package talents

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

// Upsert writes the row keyed by (user_id, od_id). The category reference is
// resolved in the statement itself from the pushed category od id; it stays
// NULL when that category does not exist for the user.
func (r *PostgresRepository) Upsert(ctx context.Context, t *models.Talent) error {
	query := `
		INSERT INTO talents (user_id, od_id, name, category_id, category_od_id, price, payload, updated_at)
		VALUES ($1, $2, $3,
			(SELECT id FROM categories WHERE user_id = $1 AND od_id = $4),
			$4, $5, $6, now())
		ON CONFLICT (user_id, od_id)
		DO UPDATE SET
			name = EXCLUDED.name,
			category_id = EXCLUDED.category_id,
			category_od_id = EXCLUDED.category_od_id,
			price = EXCLUDED.price,
			payload = EXCLUDED.payload,
			updated_at = now()
	`
	_, err := r.db.ExecContext(ctx, query,
		t.UserID, t.OdID, t.Name, t.CategoryOdID, t.Price, t.Payload)
	if err != nil {
		return fmt.Errorf("failed to upsert talent: %w", err)
	}
	return nil
}

func (r *PostgresRepository) ListByUser(ctx context.Context, userID string) ([]models.Talent, error) {
	query := `SELECT id, user_id, od_id, name, category_id, category_od_id, price, payload, updated_at
		FROM talents WHERE user_id = $1 ORDER BY id`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to select talents: %w", err)
	}
	defer rows.Close()

	var result []models.Talent
	for rows.Next() {
		var t models.Talent
		if err := rows.Scan(&t.ID, &t.UserID, &t.OdID, &t.Name, &t.CategoryID,
			&t.CategoryOdID, &t.Price, &t.Payload, &t.UpdatedAt); err != nil {
			return nil, err
		}
		result = append(result, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
