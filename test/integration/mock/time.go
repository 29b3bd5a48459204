package mock

import (
	"sync"
	"time"
)

// Clock is a settable clock for tests. It satisfies the application's clock
// port so settlement dates and installment schedules become deterministic.
type Clock struct {
	mu      sync.Mutex
	current time.Time
}

// NewClock creates a clock frozen at the given instant.
func NewClock(at time.Time) *Clock {
	return &Clock{current: at}
}

// Now returns the frozen instant.
func (c *Clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.current
}

// SetCurrentTime moves the clock to the given instant.
func (c *Clock) SetCurrentTime(at time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.current = at
}
