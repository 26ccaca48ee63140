package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hsaleh/talentdesk/internal/client/models"
)

func TestBookingListByTalent(t *testing.T) {
	s, ctx := newTestStores(t)

	start := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	a, err := s.Bookings.Create(ctx, models.TalentBooking{TalentID: "t1", Title: "Shoot", StartDate: start, EndDate: start})
	require.NoError(t, err)
	_, err = s.Bookings.Create(ctx, models.TalentBooking{TalentID: "t2", Title: "Other", StartDate: start, EndDate: start})
	require.NoError(t, err)

	got := s.Bookings.ListByTalent(ctx, "t1")
	require.Len(t, got, 1)
	assert.Equal(t, a.ID, got[0].ID)

	assert.Empty(t, s.Bookings.ListByTalent(ctx, "t3"))
}

func TestBookingUpdate_PartialPatch(t *testing.T) {
	s, ctx := newTestStores(t)

	start := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	created, err := s.Bookings.Create(ctx, models.TalentBooking{
		TalentID:  "t1",
		Title:     "Shoot",
		Location:  "Kuwait City",
		StartDate: start,
		EndDate:   start.AddDate(0, 0, 1),
	})
	require.NoError(t, err)

	title := "Shoot, day 2"
	updated, err := s.Bookings.Update(ctx, created.ID, models.BookingPatch{Title: &title})
	require.NoError(t, err)
	require.NotNil(t, updated)

	assert.Equal(t, "Shoot, day 2", updated.Title)
	assert.Equal(t, "Kuwait City", updated.Location)
	assert.Equal(t, created.StartDate, updated.StartDate)
}

func TestBookingProjectCrossReference(t *testing.T) {
	s, ctx := newTestStores(t)

	start := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	created, err := s.Bookings.Create(ctx, models.TalentBooking{
		TalentID:  "t1",
		Title:     "Shoot",
		StartDate: start,
		EndDate:   start,
		ProjectID: "p1",
	})
	require.NoError(t, err)

	got := s.Bookings.GetByID(ctx, created.ID)
	require.NotNil(t, got)
	assert.Equal(t, "p1", got.ProjectID)
}
