package categories

import (
	"context"
	"fmt"

	"github.com/hsaleh/talentdesk/internal/dbx"
	"github.com/hsaleh/talentdesk/internal/server/models"
)

// PostgresRepository implements Repository over a dbx.DBTX. ReplaceAll is
// only safe inside the batch transaction the sync service opens.
type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) ReplaceAll(ctx context.Context, userID string, rows []models.Category) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM categories WHERE user_id = $1`, userID); err != nil {
		return fmt.Errorf("failed to clear categories: %w", err)
	}
	query := `INSERT INTO categories (user_id, od_id, name, name_ar, sort_order) VALUES ($1, $2, $3, $4, $5)`
	for _, c := range rows {
		if _, err := r.db.ExecContext(ctx, query, userID, c.OdID, c.Name, c.NameAr, c.SortOrder); err != nil {
			return fmt.Errorf("failed to insert category: %w", err)
		}
	}
	return nil
}

func (r *PostgresRepository) ListByUser(ctx context.Context, userID string) ([]models.Category, error) {
	query := `SELECT id, user_id, od_id, name, name_ar, sort_order
		FROM categories WHERE user_id = $1 ORDER BY sort_order, id`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to select categories: %w", err)
	}
	defer rows.Close()

	var result []models.Category
	for rows.Next() {
		var c models.Category
		if err := rows.Scan(&c.ID, &c.UserID, &c.OdID, &c.Name, &c.NameAr, &c.SortOrder); err != nil {
			return nil, err
		}
		result = append(result, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
