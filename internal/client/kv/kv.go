// Package kv implements the persisted key-value slots backing the local
// record stores. Each collection lives whole under a single key as one JSON
// value; writes replace the value atomically.
package kv

import "context"

// Collection slot keys.
const (
	KeyTalents      = "talents"
	KeyProjects     = "projects"
	KeyCategories   = "categories"
	KeyBookings     = "bookings"
	KeySettings     = "settings"
	KeySessionToken = "session_token"
	KeyRefreshToken = "refresh_token"
)

// Store is the persistence collaborator required by the record stores.
type Store interface {
	// Get returns the value under key. The second result is false when the
	// key has never been written.
	Get(ctx context.Context, key string) (string, bool, error)

	// Set replaces the value under key.
	Set(ctx context.Context, key, value string) error

	// RemoveMany deletes the given keys. Missing keys are not an error.
	RemoveMany(ctx context.Context, keys ...string) error

	// Update runs fn against a handle whose writes all apply atomically, or
	// not at all if fn returns an error.
	Update(ctx context.Context, fn func(ctx context.Context, s Store) error) error
}
