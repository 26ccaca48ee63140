package store

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/hsaleh/talentdesk/internal/client/kv"
	"github.com/hsaleh/talentdesk/internal/idgen"
	"github.com/hsaleh/talentdesk/internal/logging"
)

func testClock(start time.Time) func() time.Time {
	current := start
	return func() time.Time {
		current = current.Add(time.Second)
		return current
	}
}

func newTestStores(t *testing.T) (*Stores, context.Context) {
	t.Helper()
	log := logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
	s := New(kv.NewMemory(), idgen.New(nil), testClock(time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)), log)
	return s, context.Background()
}
