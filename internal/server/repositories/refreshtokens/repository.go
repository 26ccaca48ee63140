// Package refreshtokens stores server-side refresh tokens.
package refreshtokens

import (
	"context"

	"github.com/hsaleh/talentdesk/internal/server/models"
)

// Repository describes refresh-token persistence. Rotation is delete+create
// inside the caller's transaction.
type Repository interface {
	Create(ctx context.Context, token *models.RefreshToken) error

	// Find returns the token or common.ErrNotFound.
	Find(ctx context.Context, token string) (*models.RefreshToken, error)

	Delete(ctx context.Context, token string) error
}
