package categories

import (
	"context"
	"sync"

	"github.com/hsaleh/talentdesk/internal/server/models"
)

// MemoryRepository is an in-process Repository for tests.
type MemoryRepository struct {
	mu   sync.Mutex
	seq  int64
	rows map[string][]models.Category
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{rows: make(map[string][]models.Category)}
}

func (r *MemoryRepository) ReplaceAll(ctx context.Context, userID string, rows []models.Category) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	replaced := make([]models.Category, 0, len(rows))
	for _, c := range rows {
		r.seq++
		c.ID = r.seq
		c.UserID = userID
		replaced = append(replaced, c)
	}
	r.rows[userID] = replaced
	return nil
}

func (r *MemoryRepository) ListByUser(ctx context.Context, userID string) ([]models.Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]models.Category(nil), r.rows[userID]...), nil
}
