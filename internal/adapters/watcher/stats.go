package watcher

import (
	"sync"

	"go.trai.ch/vfs/internal/core/domain"
)

// counters accumulates watch statistics between destructive reads.
type counters struct {
	mu      sync.Mutex
	events  int
	unknown bool
	lastErr error
}

func (c *counters) eventReceived() {
	c.mu.Lock()
	c.events++
	c.mu.Unlock()
}

func (c *counters) unknownEvent() {
	c.mu.Lock()
	c.unknown = true
	c.mu.Unlock()
}

func (c *counters) errorReceived(err error) {
	c.mu.Lock()
	c.lastErr = err
	c.mu.Unlock()
}

// drain returns the accumulated statistics and resets all counters.
func (c *counters) drain() domain.FileWatchingStatistics {
	c.mu.Lock()
	defer c.mu.Unlock()

	statistics := domain.FileWatchingStatistics{
		UnknownEventEncountered: c.unknown,
		EventsReceived:          c.events,
		ErrorWhileReceiving:     c.lastErr,
	}
	c.events = 0
	c.unknown = false
	c.lastErr = nil
	return statistics
}
