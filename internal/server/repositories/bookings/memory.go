package bookings

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
	rows map[string]map[string]models.Booking
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{rows: make(map[string]map[string]models.Booking)}
}

func (r *MemoryRepository) Upsert(ctx context.Context, b *models.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	byOd := r.rows[b.UserID]
	if byOd == nil {
		byOd = make(map[string]models.Booking)
		r.rows[b.UserID] = byOd
	}
	if existing, ok := byOd[b.OdID]; ok {
		b.ID = existing.ID
	} else {
		r.seq++
		b.ID = r.seq
	}
	b.UpdatedAt = time.Now()
	byOd[b.OdID] = *b
	return nil
}

func (r *MemoryRepository) ListByUser(ctx context.Context, userID string) ([]models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var result []models.Booking
	for _, b := range r.rows[userID] {
		result = append(result, b)
	}
	return result, nil
}
