package projects

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

func (r *PostgresRepository) Upsert(ctx context.Context, p *models.Project) error {
	query := `
		INSERT INTO projects (user_id, od_id, name, status, payload, updated_at)
		VALUES ($1, $2, $3, $4, $5, now())
		ON CONFLICT (user_id, od_id)
		DO UPDATE SET
			name = EXCLUDED.name,
			status = EXCLUDED.status,
			payload = EXCLUDED.payload,
			updated_at = now()
	`
	if _, err := r.db.ExecContext(ctx, query, p.UserID, p.OdID, p.Name, p.Status, p.Payload); err != nil {
		return fmt.Errorf("failed to upsert project: %w", err)
	}
	return nil
}

func (r *PostgresRepository) ListByUser(ctx context.Context, userID string) ([]models.Project, error) {
	query := `SELECT id, user_id, od_id, name, status, payload, updated_at
		FROM projects WHERE user_id = $1 ORDER BY id`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to select projects: %w", err)
	}
	defer rows.Close()

	var result []models.Project
	for rows.Next() {
		var p models.Project
		if err := rows.Scan(&p.ID, &p.UserID, &p.OdID, &p.Name, &p.Status, &p.Payload, &p.UpdatedAt); err != nil {
			return nil, err
		}
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
