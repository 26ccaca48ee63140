package services

import (
	"context"

	"github.com/hsaleh/talentdesk/internal/client/store"
	"github.com/hsaleh/talentdesk/internal/common"
	"github.com/hsaleh/talentdesk/internal/logging"
	"github.com/hsaleh/talentdesk/internal/wire"
)

// TokenProvider supplies the current session token, or "" when no session
// exists.
type TokenProvider interface {
	SessionToken(ctx context.Context) string
}

// SyncAPI is the subset of the api client the orchestrator needs.
type SyncAPI interface {
	PushBatch(ctx context.Context, token string, batch wire.Batch) error
}

// Orchestrator pushes the full local snapshot to the remote service.
//
// Sync is opportunistic and best-effort: it never blocks local CRUD, and a
// failed push leaves the app running purely on local data.
type Orchestrator struct {
	stores *store.Stores
	api    SyncAPI
	tokens TokenProvider
	log    logging.Logger
}

func NewOrchestrator(stores *store.Stores, api SyncAPI, tokens TokenProvider, log logging.Logger) *Orchestrator {
	return &Orchestrator{stores: stores, api: api, tokens: tokens, log: log}
}

// PushAll reads every store, transforms the records to their wire shape, and
// submits them as one batch.
//
// Returns:
//   - (true, nil) when the batch was applied, or when no session token exists
//     (nothing to do is not a failure);
//   - (false, nil) on network/server failure, after logging — never raised
//     to the caller;
//   - (false, err) only for a local validation error at the transform
//     boundary, which is a programmer error: it fails fast and nothing is
//     sent.
func (o *Orchestrator) PushAll(ctx context.Context) (bool, error) {
	token := o.tokens.SessionToken(ctx)
	if token == "" {
		o.log.Debug(ctx, "sync skipped: no session")
		return true, nil
	}

	talents := o.stores.Talents.List(ctx)
	projects := o.stores.Projects.List(ctx)
	categories := o.stores.Categories.List(ctx)
	bookings := o.stores.Bookings.List(ctx)
	settings := o.stores.Settings.Get(ctx)

	// Categories are replaced wholesale on the server, so the section must
	// travel even when the local set is empty; a nil slice would read as
	// "section absent" and leave stale remote rows behind.
	batch := wire.Batch{
		Categories: make([]wire.Category, 0, len(categories)),
	}
	for _, t := range talents {
		batch.Talents = append(batch.Talents, TalentToWire(t))
	}
	for _, p := range projects {
		wp, err := ProjectToWire(p)
		if err != nil {
			return false, err
		}
		batch.Projects = append(batch.Projects, wp)
	}
	for _, c := range categories {
		batch.Categories = append(batch.Categories, CategoryToWire(c))
	}
	for _, b := range bookings {
		batch.Bookings = append(batch.Bookings, BookingToWire(b))
	}
	ws := SettingsToWire(settings)
	batch.Settings = &ws

	if err := o.api.PushBatch(ctx, token, batch); err != nil {
		o.log.Error(ctx, "sync push failed",
			"error", err,
			"talents", len(batch.Talents),
			"projects", len(batch.Projects),
			"categories", len(batch.Categories),
			"bookings", len(batch.Bookings))
		return false, nil
	}

	o.log.Info(ctx, "sync push applied",
		"talents", len(batch.Talents),
		"projects", len(batch.Projects),
		"categories", len(batch.Categories),
		"bookings", len(batch.Bookings))
	return true, nil
}

// PullAll is a declared capability without merge-back semantics yet. It logs
// the intent and reports not-supported rather than guessing a
// conflict-resolution policy.
func (o *Orchestrator) PullAll(ctx context.Context) error {
	o.log.Info(ctx, "sync pull requested: not yet supported")
	return common.ErrPullNotSupported
}
