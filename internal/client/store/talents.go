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

// TalentStore is the record store for talents. Deleting a talent also removes
// every booking owned by it, inside one storage transaction where the backing
// store supports one.
type TalentStore struct {
	mu       sync.Mutex
	kv       kv.Store
	ids      *idgen.Generator
	now      func() time.Time
	log      logging.Logger
	bookings *BookingStore
}

func (s *TalentStore) List(ctx context.Context) []models.Talent {
	return loadList[models.Talent](ctx, s.kv, kv.KeyTalents, s.log)
}

// GetByID returns nil on a miss, never an error.
func (s *TalentStore) GetByID(ctx context.Context, id string) *models.Talent {
	for _, t := range s.List(ctx) {
		if t.ID == id {
			return &t
		}
	}
	return nil
}

// Create assigns ID, CreatedAt and LastPhotoUpdate, fills the profile-photo
// convention (photos[0]) when unset, appends and persists.
func (s *TalentStore) Create(ctx context.Context, t models.Talent) (*models.Talent, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	t.ID = s.ids.NewID()
	t.CreatedAt = now
	t.UpdatedAt = nil
	t.LastPhotoUpdate = now
	if t.ProfilePhoto == "" && len(t.Photos) > 0 {
		t.ProfilePhoto = t.Photos[0]
	}

	items := append(s.List(ctx), t)
	if err := saveList(ctx, s.kv, kv.KeyTalents, items); err != nil {
		return nil, fmt.Errorf("failed to persist talents: %w", err)
	}
	return &t, nil
}

// Update shallow-merges the patch into the stored record, refreshes
// UpdatedAt, and persists. Returns (nil, nil) when the id is unknown.
func (s *TalentStore) Update(ctx context.Context, id string, p models.TalentPatch) (*models.Talent, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := s.List(ctx)
	for i := range items {
		if items[i].ID != id {
			continue
		}
		applyTalentPatch(&items[i], p)
		now := s.now()
		items[i].UpdatedAt = &now
		if err := saveList(ctx, s.kv, kv.KeyTalents, items); err != nil {
			return nil, fmt.Errorf("failed to persist talents: %w", err)
		}
		t := items[i]
		return &t, nil
	}
	return nil, nil
}

// AddPhoto appends a stored photo reference to the talent and refreshes
// LastPhotoUpdate, so staleness tracking restarts from now. The first photo
// becomes the profile photo. Returns (nil, nil) when the id is unknown.
func (s *TalentStore) AddPhoto(ctx context.Context, id, photo string) (*models.Talent, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := s.List(ctx)
	for i := range items {
		if items[i].ID != id {
			continue
		}
		items[i].Photos = append(items[i].Photos, photo)
		if items[i].ProfilePhoto == "" {
			items[i].ProfilePhoto = photo
		}
		now := s.now()
		items[i].LastPhotoUpdate = now
		items[i].UpdatedAt = &now
		if err := saveList(ctx, s.kv, kv.KeyTalents, items); err != nil {
			return nil, fmt.Errorf("failed to persist talents: %w", err)
		}
		t := items[i]
		return &t, nil
	}
	return nil, nil
}

// Delete removes the talent and cascades to its bookings. Bookings are
// cleaned up first so a crash mid-sequence can only leave orphaned bookings,
// never a talent pointing at removed ones.
func (s *TalentStore) Delete(ctx context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.bookings.mu.Lock()
	defer s.bookings.mu.Unlock()

	deleted := false
	err := s.kv.Update(ctx, func(ctx context.Context, tx kv.Store) error {
		bookings := loadList[models.TalentBooking](ctx, tx, kv.KeyBookings, s.log)
		kept := bookings[:0:0]
		for _, b := range bookings {
			if b.TalentID != id {
				kept = append(kept, b)
			}
		}
		if len(kept) != len(bookings) {
			if err := saveList(ctx, tx, kv.KeyBookings, kept); err != nil {
				return fmt.Errorf("failed to persist bookings: %w", err)
			}
		}

		talents := loadList[models.Talent](ctx, tx, kv.KeyTalents, s.log)
		remaining := talents[:0:0]
		for _, t := range talents {
			if t.ID != id {
				remaining = append(remaining, t)
			}
		}
		if len(remaining) == len(talents) {
			return nil
		}
		deleted = true
		return saveList(ctx, tx, kv.KeyTalents, remaining)
	})
	if err != nil {
		return false, err
	}
	return deleted, nil
}

func applyTalentPatch(t *models.Talent, p models.TalentPatch) {
	if p.Name != nil {
		t.Name = *p.Name
	}
	if p.CategoryID != nil {
		t.CategoryID = *p.CategoryID
	}
	if p.Gender != nil {
		t.Gender = *p.Gender
	}
	if p.Photos != nil {
		t.Photos = *p.Photos
	}
	if p.ProfilePhoto != nil {
		t.ProfilePhoto = *p.ProfilePhoto
	}
	if p.PhoneNumbers != nil {
		t.PhoneNumbers = *p.PhoneNumbers
	}
	if p.SocialMedia != nil {
		t.SocialMedia = *p.SocialMedia
	}
	if p.PricePerProject != nil {
		t.PricePerProject = *p.PricePerProject
	}
	if p.Currency != nil {
		t.Currency = *p.Currency
	}
	if p.Notes != nil {
		t.Notes = *p.Notes
	}
	if p.CustomFields != nil {
		t.CustomFields = *p.CustomFields
	}
	if p.Rating != nil {
		t.Rating = p.Rating
	}
	if p.Tags != nil {
		t.Tags = *p.Tags
	}
	if p.IsFavorite != nil {
		t.IsFavorite = *p.IsFavorite
	}
	if p.IsArchived != nil {
		t.IsArchived = *p.IsArchived
	}
	if p.LastPhotoUpdate != nil {
		t.LastPhotoUpdate = *p.LastPhotoUpdate
	}
}
