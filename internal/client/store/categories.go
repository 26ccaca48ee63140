package store

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/hsaleh/talentdesk/internal/client/kv"
	"github.com/hsaleh/talentdesk/internal/client/models"
	"github.com/hsaleh/talentdesk/internal/idgen"
	"github.com/hsaleh/talentdesk/internal/logging"
)

// CategoryStore is the record store for categories. It is the one store with
// a lazy-initialization side effect: the first List on a device seeds and
// persists the default categories.
//
// Deleting a category never cascades to talents; their CategoryID simply
// dangles and is resolved at display time.
type CategoryStore struct {
	mu  sync.Mutex
	kv  kv.Store
	ids *idgen.Generator
	log logging.Logger
}

// List returns all categories, seeding the defaults when the collection slot
// has never been written. An explicitly persisted empty list is not re-seeded.
func (s *CategoryStore) List(ctx context.Context) []models.Category {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.list(ctx)
}

func (s *CategoryStore) list(ctx context.Context) []models.Category {
	raw, ok, err := s.kv.Get(ctx, kv.KeyCategories)
	if err != nil {
		s.log.Error(ctx, "failed to read categories, falling back to empty", "error", err)
		return nil
	}
	if !ok {
		seed := models.DefaultCategories()
		if err := saveList(ctx, s.kv, kv.KeyCategories, seed); err != nil {
			s.log.Error(ctx, "failed to persist category seed", "error", err)
		}
		return seed
	}
	var items []models.Category
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		s.log.Error(ctx, "failed to decode categories, falling back to empty", "error", err)
		return nil
	}
	return items
}

func (s *CategoryStore) GetByID(ctx context.Context, id string) *models.Category {
	for _, c := range s.List(ctx) {
		if c.ID == id {
			return &c
		}
	}
	return nil
}

func (s *CategoryStore) Create(ctx context.Context, c models.Category) (*models.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c.ID = s.ids.NewID()
	items := append(s.list(ctx), c)
	if err := saveList(ctx, s.kv, kv.KeyCategories, items); err != nil {
		return nil, fmt.Errorf("failed to persist categories: %w", err)
	}
	return &c, nil
}

func (s *CategoryStore) Update(ctx context.Context, id string, p models.CategoryPatch) (*models.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := s.list(ctx)
	for i := range items {
		if items[i].ID != id {
			continue
		}
		if p.Name != nil {
			items[i].Name = *p.Name
		}
		if p.NameAr != nil {
			items[i].NameAr = *p.NameAr
		}
		if p.Order != nil {
			items[i].Order = *p.Order
		}
		if err := saveList(ctx, s.kv, kv.KeyCategories, items); err != nil {
			return nil, fmt.Errorf("failed to persist categories: %w", err)
		}
		c := items[i]
		return &c, nil
	}
	return nil, nil
}

func (s *CategoryStore) Delete(ctx context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := s.list(ctx)
	remaining := items[:0:0]
	for _, c := range items {
		if c.ID != id {
			remaining = append(remaining, c)
		}
	}
	if len(remaining) == len(items) {
		return false, nil
	}
	if err := saveList(ctx, s.kv, kv.KeyCategories, remaining); err != nil {
		return false, fmt.Errorf("failed to persist categories: %w", err)
	}
	return true, nil
}
