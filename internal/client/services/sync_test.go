package services

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hsaleh/talentdesk/internal/client/kv"
	"github.com/hsaleh/talentdesk/internal/client/models"
	"github.com/hsaleh/talentdesk/internal/client/store"
	"github.com/hsaleh/talentdesk/internal/common"
	"github.com/hsaleh/talentdesk/internal/idgen"
	"github.com/hsaleh/talentdesk/internal/logging"
	"github.com/hsaleh/talentdesk/internal/wire"
)

type stubTokens struct{ token string }

func (s *stubTokens) SessionToken(ctx context.Context) string { return s.token }

type stubSyncAPI struct {
	err     error
	batches []wire.Batch
}

func (s *stubSyncAPI) PushBatch(ctx context.Context, token string, batch wire.Batch) error {
	s.batches = append(s.batches, batch)
	return s.err
}

func testLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func newTestOrchestrator(t *testing.T, api SyncAPI, token string) (*Orchestrator, *store.Stores, context.Context) {
	t.Helper()
	log := testLogger()
	stores := store.New(kv.NewMemory(), idgen.New(nil), nil, log)
	return NewOrchestrator(stores, api, &stubTokens{token: token}, log), stores, context.Background()
}

func TestPushAll_NoSessionIsSuccessWithoutNetwork(t *testing.T) {
	api := &stubSyncAPI{}
	o, _, ctx := newTestOrchestrator(t, api, "")

	ok, err := o.PushAll(ctx)
	assert.True(t, ok)
	assert.NoError(t, err)
	assert.Empty(t, api.batches, "nothing may be sent without a session")
}

func TestPushAll_SendsFullSnapshot(t *testing.T) {
	api := &stubSyncAPI{}
	o, stores, ctx := newTestOrchestrator(t, api, "token-1")

	_, err := stores.Talents.Create(ctx, models.Talent{Name: "Amal"})
	require.NoError(t, err)
	_, err = stores.Projects.Create(ctx, models.Project{Name: "Campaign"})
	require.NoError(t, err)

	ok, err := o.PushAll(ctx)
	require.NoError(t, err)
	assert.True(t, ok)

	require.Len(t, api.batches, 1)
	batch := api.batches[0]
	assert.Len(t, batch.Talents, 1)
	assert.Len(t, batch.Projects, 1)
	assert.Len(t, batch.Categories, len(models.DefaultCategories()))
	require.NotNil(t, batch.Settings)
	assert.Equal(t, "KWD", batch.Settings.DefaultCurrency)
}

func TestPushAll_EmptyCategorySetStillTravels(t *testing.T) {
	api := &stubSyncAPI{}
	o, stores, ctx := newTestOrchestrator(t, api, "token-1")

	for _, c := range stores.Categories.List(ctx) {
		_, err := stores.Categories.Delete(ctx, c.ID)
		require.NoError(t, err)
	}

	ok, err := o.PushAll(ctx)
	require.NoError(t, err)
	assert.True(t, ok)

	require.Len(t, api.batches, 1)
	batch := api.batches[0]
	require.NotNil(t, batch.Categories, "an empty set must still be sent so the server clears its rows")
	assert.Empty(t, batch.Categories)

	raw, err := json.Marshal(batch)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"categories":[]`)
}

func TestPushAll_NetworkFailureIsSwallowed(t *testing.T) {
	api := &stubSyncAPI{err: errors.New("connection refused")}
	o, _, ctx := newTestOrchestrator(t, api, "token-1")

	ok, err := o.PushAll(ctx)
	assert.False(t, ok)
	assert.NoError(t, err, "push failures are logged, never raised")
}

func TestPushAll_ValidationErrorFailsBeforeSending(t *testing.T) {
	api := &stubSyncAPI{}
	o, stores, ctx := newTestOrchestrator(t, api, "token-1")

	_, err := stores.Projects.Create(ctx, models.Project{Name: "Bad", Status: "archived"})
	require.NoError(t, err)

	ok, err := o.PushAll(ctx)
	assert.False(t, ok)
	assert.ErrorIs(t, err, common.ErrValidation)
	assert.Empty(t, api.batches)
}

func TestPullAll_NotSupported(t *testing.T) {
	o, _, ctx := newTestOrchestrator(t, &stubSyncAPI{}, "token-1")
	assert.ErrorIs(t, o.PullAll(ctx), common.ErrPullNotSupported)
}
