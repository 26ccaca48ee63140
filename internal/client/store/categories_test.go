package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hsaleh/talentdesk/internal/client/models"
)

func TestCategoryList_SeedsDefaultsOnFirstAccess(t *testing.T) {
	s, ctx := newTestStores(t)

	first := s.Categories.List(ctx)
	require.Len(t, first, len(models.DefaultCategories()))
	assert.Equal(t, "cat-models", first[0].ID)
	assert.Equal(t, "عارضات", first[0].NameAr)

	// The seed is persisted, not recomputed per call.
	again := s.Categories.List(ctx)
	assert.Equal(t, first, again)
}

func TestCategoryList_ExplicitEmptyListIsNotReseeded(t *testing.T) {
	s, ctx := newTestStores(t)

	for _, c := range s.Categories.List(ctx) {
		deleted, err := s.Categories.Delete(ctx, c.ID)
		require.NoError(t, err)
		require.True(t, deleted)
	}

	assert.Empty(t, s.Categories.List(ctx))
}

func TestCategoryCreateAndUpdate(t *testing.T) {
	s, ctx := newTestStores(t)

	created, err := s.Categories.Create(ctx, models.Category{Name: "Dancers", Order: 6})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)

	name := "Stage Dancers"
	updated, err := s.Categories.Update(ctx, created.ID, models.CategoryPatch{Name: &name})
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, "Stage Dancers", updated.Name)
	assert.Equal(t, 6, updated.Order)
}
