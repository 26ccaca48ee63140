// Package idgen mints record identifiers for the local stores.
//
// Identifiers are unique per device and sort lexicographically in creation
// order within a process: a fixed-width hex timestamp prefix carries the
// ordering, an atomic counter breaks ties inside one millisecond, and a uuid
// suffix guarantees uniqueness. Generation never blocks and never fails.
package idgen

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
)

// Generator produces record ids. The zero value is not usable; construct with
// New so the clock can be fixed in tests.
type Generator struct {
	now func() time.Time
	seq atomic.Uint64
}

func New(now func() time.Time) *Generator {
	if now == nil {
		now = time.Now
	}
	return &Generator{now: now}
}

// NewID returns the next identifier.
func (g *Generator) NewID() string {
	ms := g.now().UnixMilli()
	seq := g.seq.Add(1)
	u := uuid.New()
	return fmt.Sprintf("%012x-%04x-%x", ms, seq&0xffff, u[:6])
}
