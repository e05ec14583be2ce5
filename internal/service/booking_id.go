package service

import (
	"fmt"
	"sync"
	"time"
)

const bookingIDLayout = "20060102150405"

// bookingIDGenerator issues "BK" + compact UTC timestamp ids. When
// more than one booking lands in the same second (or the clock steps
// backwards) the id gets a numeric suffix, so ids stay unique for the
// process lifetime.
type bookingIDGenerator struct {
	mu   sync.Mutex
	last string
	seq  int
}

func newBookingIDGenerator() *bookingIDGenerator {
	return &bookingIDGenerator{}
}

func (g *bookingIDGenerator) Next(now time.Time) string {
	g.mu.Lock()
	defer g.mu.Unlock()

	// The layout is fixed-width digits, so string comparison orders
	// timestamps correctly.
	ts := now.UTC().Format(bookingIDLayout)
	if ts > g.last {
		g.last = ts
		g.seq = 1
		return "BK" + ts
	}

	g.seq++
	return fmt.Sprintf("BK%s-%d", g.last, g.seq)
}
