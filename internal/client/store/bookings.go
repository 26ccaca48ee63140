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

// BookingStore is the record store for talent bookings.
type BookingStore struct {
	mu  sync.Mutex
	kv  kv.Store
	ids *idgen.Generator
	now func() time.Time
	log logging.Logger
}

func (s *BookingStore) List(ctx context.Context) []models.TalentBooking {
	return loadList[models.TalentBooking](ctx, s.kv, kv.KeyBookings, s.log)
}

func (s *BookingStore) GetByID(ctx context.Context, id string) *models.TalentBooking {
	for _, b := range s.List(ctx) {
		if b.ID == id {
			return &b
		}
	}
	return nil
}

// ListByTalent returns the bookings owned by one talent.
func (s *BookingStore) ListByTalent(ctx context.Context, talentID string) []models.TalentBooking {
	var result []models.TalentBooking
	for _, b := range s.List(ctx) {
		if b.TalentID == talentID {
			result = append(result, b)
		}
	}
	return result
}

func (s *BookingStore) Create(ctx context.Context, b models.TalentBooking) (*models.TalentBooking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b.ID = s.ids.NewID()
	b.CreatedAt = s.now()

	items := append(s.List(ctx), b)
	if err := saveList(ctx, s.kv, kv.KeyBookings, items); err != nil {
		return nil, fmt.Errorf("failed to persist bookings: %w", err)
	}
	return &b, nil
}

func (s *BookingStore) Update(ctx context.Context, id string, p models.BookingPatch) (*models.TalentBooking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := s.List(ctx)
	for i := range items {
		if items[i].ID != id {
			continue
		}
		applyBookingPatch(&items[i], p)
		if err := saveList(ctx, s.kv, kv.KeyBookings, items); err != nil {
			return nil, fmt.Errorf("failed to persist bookings: %w", err)
		}
		b := items[i]
		return &b, nil
	}
	return nil, nil
}

func (s *BookingStore) Delete(ctx context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := s.List(ctx)
	remaining := items[:0:0]
	for _, b := range items {
		if b.ID != id {
			remaining = append(remaining, b)
		}
	}
	if len(remaining) == len(items) {
		return false, nil
	}
	if err := saveList(ctx, s.kv, kv.KeyBookings, remaining); err != nil {
		return false, fmt.Errorf("failed to persist bookings: %w", err)
	}
	return true, nil
}

func applyBookingPatch(b *models.TalentBooking, p models.BookingPatch) {
	if p.Title != nil {
		b.Title = *p.Title
	}
	if p.Location != nil {
		b.Location = *p.Location
	}
	if p.StartDate != nil {
		b.StartDate = *p.StartDate
	}
	if p.EndDate != nil {
		b.EndDate = *p.EndDate
	}
	if p.AllDay != nil {
		b.AllDay = *p.AllDay
	}
	if p.Notes != nil {
		b.Notes = *p.Notes
	}
	if p.ProjectID != nil {
		b.ProjectID = *p.ProjectID
	}
}
