package session

import (
	"fmt"
	"log"
	"time"

	"github.com/robfig/cron/v3"
)

// Sweeper runs the store's cleanup on a fixed interval. It owns a cron
// runner so eviction keeps its own schedule independent of request
// traffic.
type Sweeper struct {
	cron  *cron.Cron
	store *Store
}

// NewSweeper schedules Cleanup on the store every interval.
func NewSweeper(store *Store, interval time.Duration) (*Sweeper, error) {
	if interval <= 0 {
		return nil, fmt.Errorf("sweep interval must be positive, got %v", interval)
	}

	c := cron.New(cron.WithLocation(time.UTC))
	_, err := c.AddFunc(fmt.Sprintf("@every %s", interval), func() {
		if evicted := store.Cleanup(); evicted > 0 {
			log.Printf("[session] sweep evicted %d sessions, %d remaining", evicted, store.Len())
		}
	})
	if err != nil {
		return nil, fmt.Errorf("failed to schedule session sweep: %w", err)
	}

	return &Sweeper{cron: c, store: store}, nil
}

// Start begins periodic sweeping.
func (s *Sweeper) Start() {
	s.cron.Start()
}

// Stop halts the schedule and waits for an in-flight sweep to finish.
func (s *Sweeper) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
}
