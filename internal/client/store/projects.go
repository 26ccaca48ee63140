package store

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/hsaleh/talentdesk/internal/client/kv"
	"github.com/hsaleh/talentdesk/internal/client/models"
	"github.com/hsaleh/talentdesk/internal/idgen"
	"github.com/hsaleh/talentdesk/internal/logging"
)

// ProjectStore is the record store for projects. Project talent lines may
// reference talents that no longer exist; readers filter those defensively.
type ProjectStore struct {
	mu  sync.Mutex
	kv  kv.Store
	ids *idgen.Generator
	now func() time.Time
	log logging.Logger
}

func (s *ProjectStore) List(ctx context.Context) []models.Project {
	return loadList[models.Project](ctx, s.kv, kv.KeyProjects, s.log)
}

func (s *ProjectStore) GetByID(ctx context.Context, id string) *models.Project {
	for _, p := range s.List(ctx) {
		if p.ID == id {
			return &p
		}
	}
	return nil
}

// Create assigns ID and timestamps and persists. An empty status becomes
// draft.
func (s *ProjectStore) Create(ctx context.Context, p models.Project) (*models.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	p.ID = s.ids.NewID()
	p.CreatedAt = now
	p.UpdatedAt = now
	if p.Status == "" {
		p.Status = models.StatusDraft
	}

	items := append(s.List(ctx), p)
	if err := saveList(ctx, s.kv, kv.KeyProjects, items); err != nil {
		return nil, fmt.Errorf("failed to persist projects: %w", err)
	}
	return &p, nil
}

// Update shallow-merges the patch, refreshes UpdatedAt, persists. ID and
// CreatedAt are immutable. Returns (nil, nil) when the id is unknown.
func (s *ProjectStore) Update(ctx context.Context, id string, patch models.ProjectPatch) (*models.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := s.List(ctx)
	for i := range items {
		if items[i].ID != id {
			continue
		}
		applyProjectPatch(&items[i], patch)
		items[i].UpdatedAt = s.now()
		if err := saveList(ctx, s.kv, kv.KeyProjects, items); err != nil {
			return nil, fmt.Errorf("failed to persist projects: %w", err)
		}
		p := items[i]
		return &p, nil
	}
	return nil, nil
}

func (s *ProjectStore) Delete(ctx context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := s.List(ctx)
	remaining := items[:0:0]
	for _, p := range items {
		if p.ID != id {
			remaining = append(remaining, p)
		}
	}
	if len(remaining) == len(items) {
		return false, nil
	}
	if err := saveList(ctx, s.kv, kv.KeyProjects, remaining); err != nil {
		return false, fmt.Errorf("failed to persist projects: %w", err)
	}
	return true, nil
}

func applyProjectPatch(p *models.Project, patch models.ProjectPatch) {
	if patch.Name != nil {
		p.Name = *patch.Name
	}
	if patch.Description != nil {
		p.Description = *patch.Description
	}
	if patch.StartDate != nil {
		p.StartDate = patch.StartDate
	}
	if patch.EndDate != nil {
		p.EndDate = patch.EndDate
	}
	if patch.Status != nil {
		p.Status = *patch.Status
	}
	if patch.Talents != nil {
		p.Talents = *patch.Talents
	}
	if patch.ProfitMarginPercent != nil {
		p.ProfitMarginPercent = *patch.ProfitMarginPercent
	}
	if patch.Currency != nil {
		p.Currency = *patch.Currency
	}
	if patch.PdfTemplate != nil {
		p.PdfTemplate = *patch.PdfTemplate
	}
	if patch.Phase != nil {
		p.Phase = *patch.Phase
	}
	if patch.ClientName != nil {
		p.ClientName = *patch.ClientName
	}
	if patch.ClientPhone != nil {
		p.ClientPhone = *patch.ClientPhone
	}
	if patch.Payments != nil {
		p.Payments = *patch.Payments
	}
	if patch.TotalPaid != nil {
		p.TotalPaid = *patch.TotalPaid
	}
}
