// Package users stores accounts.
package users

import (
	"context"

	"github.com/hsaleh/talentdesk/internal/server/models"
)

// Repository describes account persistence.
type Repository interface {
	// Create inserts a new user. A duplicate username yields
	// common.ErrAlreadyExists.
	Create(ctx context.Context, user *models.User) (*models.User, error)

	// FindByUserName returns the user or common.ErrNotFound.
	FindByUserName(ctx context.Context, username string) (*models.User, error)
}
