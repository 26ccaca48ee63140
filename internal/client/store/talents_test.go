package store

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hsaleh/talentdesk/internal/client/models"
)

func TestTalentCreate_AssignsIDAndTimestamps(t *testing.T) {
	s, ctx := newTestStores(t)

	created, err := s.Talents.Create(ctx, models.Talent{
		Name:            "Amal",
		PricePerProject: decimal.NewFromInt(500),
		Photos:          []string{"a.jpg", "b.jpg"},
	})
	require.NoError(t, err)

	assert.NotEmpty(t, created.ID)
	assert.False(t, created.CreatedAt.IsZero())
	assert.Nil(t, created.UpdatedAt)
	assert.Equal(t, created.CreatedAt, created.LastPhotoUpdate)
	assert.Equal(t, "a.jpg", created.ProfilePhoto)

	got := s.Talents.GetByID(ctx, created.ID)
	require.NotNil(t, got)
	assert.Equal(t, "Amal", got.Name)
}

func TestTalentUpdate_PartialPatchPreservesOtherFields(t *testing.T) {
	s, ctx := newTestStores(t)

	created, err := s.Talents.Create(ctx, models.Talent{
		Name:            "Amal",
		CategoryID:      "cat-models",
		PricePerProject: decimal.NewFromInt(500),
		PhoneNumbers:    []string{"+96550000000"},
	})
	require.NoError(t, err)

	newPrice := decimal.NewFromInt(650)
	updated, err := s.Talents.Update(ctx, created.ID, models.TalentPatch{PricePerProject: &newPrice})
	require.NoError(t, err)
	require.NotNil(t, updated)

	assert.True(t, updated.PricePerProject.Equal(newPrice))
	assert.Equal(t, "Amal", updated.Name)
	assert.Equal(t, "cat-models", updated.CategoryID)
	assert.Equal(t, []string{"+96550000000"}, updated.PhoneNumbers)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)
	require.NotNil(t, updated.UpdatedAt)
	assert.True(t, updated.UpdatedAt.After(created.CreatedAt))
}

func TestTalentUpdate_UnknownIDIsNilNil(t *testing.T) {
	s, ctx := newTestStores(t)

	name := "Nobody"
	updated, err := s.Talents.Update(ctx, "missing", models.TalentPatch{Name: &name})
	assert.NoError(t, err)
	assert.Nil(t, updated)
}

func TestTalentDelete_CascadesToOwnBookingsOnly(t *testing.T) {
	s, ctx := newTestStores(t)

	a, err := s.Talents.Create(ctx, models.Talent{Name: "A"})
	require.NoError(t, err)
	b, err := s.Talents.Create(ctx, models.Talent{Name: "B"})
	require.NoError(t, err)

	start := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	_, err = s.Bookings.Create(ctx, models.TalentBooking{TalentID: a.ID, Title: "Shoot 1", StartDate: start, EndDate: start})
	require.NoError(t, err)
	_, err = s.Bookings.Create(ctx, models.TalentBooking{TalentID: a.ID, Title: "Shoot 2", StartDate: start, EndDate: start})
	require.NoError(t, err)
	keep, err := s.Bookings.Create(ctx, models.TalentBooking{TalentID: b.ID, Title: "Other", StartDate: start, EndDate: start})
	require.NoError(t, err)

	deleted, err := s.Talents.Delete(ctx, a.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	assert.Nil(t, s.Talents.GetByID(ctx, a.ID))
	assert.Empty(t, s.Bookings.ListByTalent(ctx, a.ID))

	remaining := s.Bookings.List(ctx)
	require.Len(t, remaining, 1)
	assert.Equal(t, keep.ID, remaining[0].ID)
}

func TestTalentDelete_UnknownIDIsFalseNil(t *testing.T) {
	s, ctx := newTestStores(t)

	deleted, err := s.Talents.Delete(ctx, "missing")
	assert.NoError(t, err)
	assert.False(t, deleted)
}

func TestTalentAddPhoto_RefreshesLastPhotoUpdate(t *testing.T) {
	s, ctx := newTestStores(t)

	created, err := s.Talents.Create(ctx, models.Talent{Name: "Amal"})
	require.NoError(t, err)

	updated, err := s.Talents.AddPhoto(ctx, created.ID, "photos/u1/key1")
	require.NoError(t, err)
	require.NotNil(t, updated)

	assert.Equal(t, []string{"photos/u1/key1"}, updated.Photos)
	assert.Equal(t, "photos/u1/key1", updated.ProfilePhoto)
	assert.True(t, updated.LastPhotoUpdate.After(created.LastPhotoUpdate))
}

func TestTalentDanglingCategoryIsTolerated(t *testing.T) {
	s, ctx := newTestStores(t)

	created, err := s.Talents.Create(ctx, models.Talent{Name: "Amal", CategoryID: "cat-models"})
	require.NoError(t, err)

	deleted, err := s.Categories.Delete(ctx, "cat-models")
	require.NoError(t, err)
	assert.True(t, deleted)

	got := s.Talents.GetByID(ctx, created.ID)
	require.NotNil(t, got)
	assert.Equal(t, "cat-models", got.CategoryID)
	assert.Nil(t, s.Categories.GetByID(ctx, "cat-models"))
}
