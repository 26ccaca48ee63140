// Package models defines the server-side rows. The remote store owns its own
// numeric primary keys; the client's record id only appears as od_id, the
// idempotency key for upsert together with user_id.
package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// User is an account that owns synced records.
type User struct {
	ID           string
	UserName     string
	PasswordHash []byte
	CreatedAt    time.Time
}

// RefreshToken is a server-stored long-lived session credential.
type RefreshToken struct {
	Token   string
	UserID  string
	Expires time.Time
}

// Talent is one synced talent row. CategoryID is resolved server-side from
// the pushed categoryOdId during upsert; it stays NULL when the referenced
// category has not been pushed (the client sends a placeholder, never a real
// numeric id). Payload keeps the full wire record.
type Talent struct {
	ID           int64
	UserID       string
	OdID         string
	Name         string
	CategoryID   *int64
	CategoryOdID string
	Price        decimal.Decimal
	Payload      []byte
	UpdatedAt    time.Time
}

// Project is one synced project row.
type Project struct {
	ID        int64
	UserID    string
	OdID      string
	Name      string
	Status    string
	Payload   []byte
	UpdatedAt time.Time
}

// Category is one synced category row. Unlike the other entities, categories
// are replaced wholesale on every push instead of upserted.
type Category struct {
	ID        int64
	UserID    string
	OdID      string
	Name      string
	NameAr    string
	SortOrder int
}

// Booking is one synced booking row. TalentID follows the same server-side
// resolution contract as Talent.CategoryID.
type Booking struct {
	ID         int64
	UserID     string
	OdID       string
	TalentID   *int64
	TalentOdID string
	Payload    []byte
	UpdatedAt  time.Time
}

// Settings is the single settings row per user; overwrite-on-write, no
// versioning.
type Settings struct {
	UserID    string
	Payload   []byte
	UpdatedAt time.Time
}
