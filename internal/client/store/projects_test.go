package store

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hsaleh/talentdesk/internal/client/models"
)

func TestProjectCreate_DefaultsStatusToDraft(t *testing.T) {
	s, ctx := newTestStores(t)

	created, err := s.Projects.Create(ctx, models.Project{
		Name:                "Summer Campaign",
		ProfitMarginPercent: decimal.NewFromInt(15),
	})
	require.NoError(t, err)

	assert.NotEmpty(t, created.ID)
	assert.Equal(t, models.StatusDraft, created.Status)
	assert.False(t, created.CreatedAt.IsZero())
}

func TestProjectCreate_KeepsExplicitStatus(t *testing.T) {
	s, ctx := newTestStores(t)

	created, err := s.Projects.Create(ctx, models.Project{Name: "Live", Status: models.StatusActive})
	require.NoError(t, err)
	assert.Equal(t, models.StatusActive, created.Status)
}

func TestProjectUpdate_RefreshesUpdatedAtOnly(t *testing.T) {
	s, ctx := newTestStores(t)

	created, err := s.Projects.Create(ctx, models.Project{Name: "Summer Campaign"})
	require.NoError(t, err)

	status := models.StatusCompleted
	updated, err := s.Projects.Update(ctx, created.ID, models.ProjectPatch{Status: &status})
	require.NoError(t, err)
	require.NotNil(t, updated)

	assert.Equal(t, models.StatusCompleted, updated.Status)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)
	assert.True(t, updated.UpdatedAt.After(created.UpdatedAt))
}

func TestProjectTalentLinesSurviveRoundTrip(t *testing.T) {
	s, ctx := newTestStores(t)

	custom := decimal.NewFromInt(450)
	created, err := s.Projects.Create(ctx, models.Project{
		Name: "Campaign",
		Talents: []models.ProjectTalent{
			{TalentID: "t1"},
			{TalentID: "t2", CustomPrice: &custom, Notes: "half day"},
		},
	})
	require.NoError(t, err)

	got := s.Projects.GetByID(ctx, created.ID)
	require.NotNil(t, got)
	require.Len(t, got.Talents, 2)
	assert.Nil(t, got.Talents[0].CustomPrice)
	require.NotNil(t, got.Talents[1].CustomPrice)
	assert.True(t, got.Talents[1].CustomPrice.Equal(custom))
	assert.Equal(t, "half day", got.Talents[1].Notes)
}

func TestProjectDelete(t *testing.T) {
	s, ctx := newTestStores(t)

	created, err := s.Projects.Create(ctx, models.Project{Name: "Old"})
	require.NoError(t, err)

	deleted, err := s.Projects.Delete(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, deleted)
	assert.Nil(t, s.Projects.GetByID(ctx, created.ID))

	deleted, err = s.Projects.Delete(ctx, created.ID)
	require.NoError(t, err)
	assert.False(t, deleted)
}
