package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Gender classifies a talent.
type Gender string

const (
	GenderFemale Gender = "female"
	GenderMale   Gender = "male"
	GenderOther  Gender = "other"
)

// Talent is a bookable person in the catalog (model, actor, influencer, ...).
//
// ProfilePhoto is conventionally photos[0]. PricePerProject is never
// negative; Rating, when set, is 1..5. CategoryID may dangle after the
// category is deleted.
type Talent struct {
	ID              string            `json:"id"`
	Name            string            `json:"name"`
	CategoryID      string            `json:"categoryId"`
	Gender          Gender            `json:"gender"`
	Photos          []string          `json:"photos"`
	ProfilePhoto    string            `json:"profilePhoto"`
	PhoneNumbers    []string          `json:"phoneNumbers"`
	SocialMedia     map[string]string `json:"socialMedia"`
	PricePerProject decimal.Decimal   `json:"pricePerProject"`
	Currency        string            `json:"currency"`
	Notes           string            `json:"notes"`
	CustomFields    map[string]string `json:"customFields,omitempty"`
	Rating          *int              `json:"rating,omitempty"`
	Tags            []string          `json:"tags,omitempty"`
	IsFavorite      bool              `json:"isFavorite,omitempty"`
	IsArchived      bool              `json:"isArchived,omitempty"`
	CreatedAt       time.Time         `json:"createdAt"`
	UpdatedAt       *time.Time        `json:"updatedAt,omitempty"`
	LastPhotoUpdate time.Time         `json:"lastPhotoUpdate"`
}

// TalentPatch carries updatable Talent fields; nil means "leave as is".
// Nested objects are overwritten whole, not deep-merged.
type TalentPatch struct {
	Name            *string            `json:"name,omitempty"`
	CategoryID      *string            `json:"categoryId,omitempty"`
	Gender          *Gender            `json:"gender,omitempty"`
	Photos          *[]string          `json:"photos,omitempty"`
	ProfilePhoto    *string            `json:"profilePhoto,omitempty"`
	PhoneNumbers    *[]string          `json:"phoneNumbers,omitempty"`
	SocialMedia     *map[string]string `json:"socialMedia,omitempty"`
	PricePerProject *decimal.Decimal   `json:"pricePerProject,omitempty"`
	Currency        *string            `json:"currency,omitempty"`
	Notes           *string            `json:"notes,omitempty"`
	CustomFields    *map[string]string `json:"customFields,omitempty"`
	Rating          *int               `json:"rating,omitempty"`
	Tags            *[]string          `json:"tags,omitempty"`
	IsFavorite      *bool              `json:"isFavorite,omitempty"`
	IsArchived      *bool              `json:"isArchived,omitempty"`
	LastPhotoUpdate *time.Time         `json:"lastPhotoUpdate,omitempty"`
}
