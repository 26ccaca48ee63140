package projects

import (
	"context"
	"sync"
	"time"

	"github.com/hsaleh/talentdesk/internal/server/models"
)

// MemoryRepository is an in-process Repository for tests.
type MemoryRepository struct {
	mu   sync.Mutex
	seq  int64
	rows map[string]map[string]models.Project
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{rows: make(map[string]map[string]models.Project)}
}

func (r *MemoryRepository) Upsert(ctx context.Context, p *models.Project) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	byOd := r.rows[p.UserID]
	if byOd == nil {
		byOd = make(map[string]models.Project)
		r.rows[p.UserID] = byOd
	}
	if existing, ok := byOd[p.OdID]; ok {
		p.ID = existing.ID
	} else {
		r.seq++
		p.ID = r.seq
	}
	p.UpdatedAt = time.Now()
	byOd[p.OdID] = *p
	return nil
}

func (r *MemoryRepository) ListByUser(ctx context.Context, userID string) ([]models.Project, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var result []models.Project
	for _, p := range r.rows[userID] {
		result = append(result, p)
	}
	return result, nil
}
