package talents

import (
	"context"
	"sync"
	"time"

	"github.com/hsaleh/talentdesk/internal/server/models"
)

// MemoryRepository is an in-process Repository for tests. Numeric ids are
// assigned from a sequence; an upsert on an existing (user, odId) pair keeps
// the row's id, matching the postgres ON CONFLICT behavior.
type MemoryRepository struct {
	mu   sync.Mutex
	seq  int64
	rows map[string]map[string]models.Talent // userID -> odID -> row
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{rows: make(map[string]map[string]models.Talent)}
}

func (r *MemoryRepository) Upsert(ctx context.Context, t *models.Talent) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	byOd := r.rows[t.UserID]
	if byOd == nil {
		byOd = make(map[string]models.Talent)
		r.rows[t.UserID] = byOd
	}
	if existing, ok := byOd[t.OdID]; ok {
		t.ID = existing.ID
	} else {
		r.seq++
		t.ID = r.seq
	}
	t.UpdatedAt = time.Now()
	byOd[t.OdID] = *t
	return nil
}

func (r *MemoryRepository) ListByUser(ctx context.Context, userID string) ([]models.Talent, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var result []models.Talent
	for _, t := range r.rows[userID] {
		result = append(result, t)
	}
	return result, nil
}
