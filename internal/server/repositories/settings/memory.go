package settings

import (
	"context"
	"sync"
	"time"

	"github.com/hsaleh/talentdesk/internal/common"
	"github.com/hsaleh/talentdesk/internal/server/models"
)

// MemoryRepository is an in-process Repository for tests.
type MemoryRepository struct {
	mu   sync.Mutex
	rows map[string]models.Settings
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{rows: make(map[string]models.Settings)}
}

func (r *MemoryRepository) Upsert(ctx context.Context, s *models.Settings) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	s.UpdatedAt = time.Now()
	r.rows[s.UserID] = *s
	return nil
}

func (r *MemoryRepository) GetByUser(ctx context.Context, userID string) (*models.Settings, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.rows[userID]
	if !ok {
		return nil, common.ErrNotFound
	}
	return &s, nil
}
