// Package models defines the record types held by the local stores and their
// default seed data.
package models

// Category groups talents for browsing and filtering.
//
// Deleting a category does not cascade to talents referencing it: a dangling
// CategoryID is tolerated and resolved at display time as "Unknown".
type Category struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	NameAr string `json:"nameAr,omitempty"`
	Order  int    `json:"order"`
}

// CategoryPatch carries the fields of Category that may be updated. Nil
// fields are left untouched.
type CategoryPatch struct {
	Name   *string `json:"name,omitempty"`
	NameAr *string `json:"nameAr,omitempty"`
	Order  *int    `json:"order,omitempty"`
}

// DefaultCategories is the seed persisted on first access when no category
// collection exists yet.
func DefaultCategories() []Category {
	return []Category{
		{ID: "cat-models", Name: "Models", NameAr: "عارضات", Order: 1},
		{ID: "cat-actors", Name: "Actors", NameAr: "ممثلين", Order: 2},
		{ID: "cat-influencers", Name: "Influencers", NameAr: "مؤثرين", Order: 3},
		{ID: "cat-photographers", Name: "Photographers", NameAr: "مصورين", Order: 4},
		{ID: "cat-makeup", Name: "Makeup Artists", NameAr: "خبراء تجميل", Order: 5},
	}
}
