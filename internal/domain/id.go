package domain

import (
	"strconv"
	"sync"
	"time"
)

// IDGenerator mints millisecond timestamp IDs. If the clock has not moved
// past the last issued value the next integer is used instead, so IDs stay
// unique within one process.
type IDGenerator struct {
	mu   sync.Mutex
	last int64
	now  func() time.Time
}

func NewIDGenerator(now func() time.Time) *IDGenerator {
	if now == nil {
		now = time.Now
	}
	return &IDGenerator{now: now}
}

func (g *IDGenerator) Next() string {
	g.mu.Lock()
	defer g.mu.Unlock()

	ms := g.now().UnixMilli()
	if ms <= g.last {
		ms = g.last + 1
	}
	g.last = ms
	return strconv.FormatInt(ms, 10)
}

var defaultIDs = NewIDGenerator(nil)

// NewID returns the next ID from the process-wide generator.
func NewID() string {
	return defaultIDs.Next()
}
