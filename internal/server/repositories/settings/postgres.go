package settings

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/hsaleh/talentdesk/internal/common"
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

func (r *PostgresRepository) Upsert(ctx context.Context, s *models.Settings) error {
	query := `
		INSERT INTO settings (user_id, payload, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (user_id)
		DO UPDATE SET payload = EXCLUDED.payload, updated_at = now()
	`
	if _, err := r.db.ExecContext(ctx, query, s.UserID, s.Payload); err != nil {
		return fmt.Errorf("failed to upsert settings: %w", err)
	}
	return nil
}

func (r *PostgresRepository) GetByUser(ctx context.Context, userID string) (*models.Settings, error) {
	query := `SELECT user_id, payload, updated_at FROM settings WHERE user_id = $1`
	var s models.Settings
	err := r.db.QueryRowContext(ctx, query, userID).Scan(&s.UserID, &s.Payload, &s.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, common.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to select settings: %w", err)
	}
	return &s, nil
}
