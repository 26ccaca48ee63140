package models

import "time"

// TalentBooking is a calendar entry owned by exactly one talent and
// optionally cross-referenced by one project.
//
// StartDate <= EndDate is the caller's responsibility; the store does not
// enforce it.
type TalentBooking struct {
	ID        string    `json:"id"`
	TalentID  string    `json:"talentId"`
	Title     string    `json:"title"`
	Location  string    `json:"location,omitempty"`
	StartDate time.Time `json:"startDate"`
	EndDate   time.Time `json:"endDate"`
	AllDay    bool      `json:"allDay"`
	Notes     string    `json:"notes,omitempty"`
	ProjectID string    `json:"projectId,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// BookingPatch carries updatable TalentBooking fields; nil means "leave as is".
type BookingPatch struct {
	Title     *string    `json:"title,omitempty"`
	Location  *string    `json:"location,omitempty"`
	StartDate *time.Time `json:"startDate,omitempty"`
	EndDate   *time.Time `json:"endDate,omitempty"`
	AllDay    *bool      `json:"allDay,omitempty"`
	Notes     *string    `json:"notes,omitempty"`
	ProjectID *string    `json:"projectId,omitempty"`
}
