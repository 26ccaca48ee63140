// Package store implements the per-entity record stores over the persisted
// key-value slots: Talents, Projects, Categories, Bookings, and the Settings
// singleton.
//
// Every mutation follows the same shape: load the whole collection, mutate a
// copy, persist the whole collection back. A per-store mutex serializes
// mutations to a collection so two back-to-back writers cannot silently drop
// each other's change; the public contract (list in, list out) is unchanged
// by that.
package store

import (
	"context"
	"encoding/json"
	"time"

	"github.com/hsaleh/talentdesk/internal/client/kv"
	"github.com/hsaleh/talentdesk/internal/idgen"
	"github.com/hsaleh/talentdesk/internal/logging"
)

// Stores bundles all record stores over one kv.Store.
type Stores struct {
	Talents    *TalentStore
	Projects   *ProjectStore
	Categories *CategoryStore
	Bookings   *BookingStore
	Settings   *SettingsStore
}

// New wires the stores. now is injectable for tests; nil means time.Now.
func New(kvs kv.Store, ids *idgen.Generator, now func() time.Time, log logging.Logger) *Stores {
	if now == nil {
		now = time.Now
	}
	bookings := &BookingStore{kv: kvs, ids: ids, now: now, log: log}
	return &Stores{
		Talents:    &TalentStore{kv: kvs, ids: ids, now: now, log: log, bookings: bookings},
		Projects:   &ProjectStore{kv: kvs, ids: ids, now: now, log: log},
		Categories: &CategoryStore{kv: kvs, ids: ids, log: log},
		Bookings:   bookings,
		Settings:   &SettingsStore{kv: kvs, log: log},
	}
}

// loadList reads a collection slot. A missing slot is an empty collection; a
// storage or decode failure is logged and also yields an empty collection so
// reads never take down the calling flow.
func loadList[T any](ctx context.Context, s kv.Store, key string, log logging.Logger) []T {
	raw, ok, err := s.Get(ctx, key)
	if err != nil {
		log.Error(ctx, "failed to read collection, falling back to empty", "key", key, "error", err)
		return nil
	}
	if !ok {
		return nil
	}
	var items []T
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		log.Error(ctx, "failed to decode collection, falling back to empty", "key", key, "error", err)
		return nil
	}
	return items
}

// saveList persists a whole collection back into its slot.
func saveList[T any](ctx context.Context, s kv.Store, key string, items []T) error {
	if items == nil {
		items = []T{}
	}
	raw, err := json.Marshal(items)
	if err != nil {
		return err
	}
	return s.Set(ctx, key, string(raw))
}
