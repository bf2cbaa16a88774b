// Package poll keeps the unread-reading badge fresh.
//
// A background loop fetches the platform's reading stats on an interval,
// backing off exponentially on consecutive failures. The read model is a
// single atomically-published pointer: badge readers never lock, and a
// failed fetch never clears it. The last good numbers stay visible until
// a newer success replaces them.
package poll

import (
	"context"
	"fmt"
	"os"
	"sync"
	"sync/atomic"
	"time"

	"github.com/abhisek/skilldrill/internal/gateway"
	"github.com/abhisek/skilldrill/internal/store"
)

const (
	// DefaultBaseInterval is the polling interval while fetches succeed.
	DefaultBaseInterval = 10 * time.Second

	// DefaultMaxInterval caps the backoff between failed fetches.
	DefaultMaxInterval = 60 * time.Second

	// keepSnapshots is how many persisted snapshots survive pruning.
	keepSnapshots = 20
)

// Config tunes the polling cadence.
type Config struct {
	BaseInterval time.Duration
	MaxInterval  time.Duration
}

// DefaultConfig returns the standard 10s-to-60s cadence.
func DefaultConfig() Config {
	return Config{BaseInterval: DefaultBaseInterval, MaxInterval: DefaultMaxInterval}
}

// NextInterval computes the delay before the next fetch after the given
// number of consecutive failures: base doubled per failure, capped at max.
func NextInterval(base, max time.Duration, failures int) time.Duration {
	next := base
	for i := 0; i < failures; i++ {
		next *= 2
		if next >= max {
			return max
		}
	}
	if next > max {
		return max
	}
	return next
}

// Service polls reading stats and publishes them for badge readers.
type Service struct {
	gw        gateway.Gateway
	snapshots store.SnapshotRepo // nil disables persistence
	cfg       Config

	model   atomic.Pointer[gateway.ReadingStats]
	enabled atomic.Bool

	mu       sync.Mutex
	failures int
}

// NewService creates a polling service. snapshots may be nil to skip
// persisting the read model. The service starts disabled; no network
// calls are issued until Enable.
func NewService(gw gateway.Gateway, snapshots store.SnapshotRepo, cfg Config) *Service {
	if cfg.BaseInterval <= 0 {
		cfg.BaseInterval = DefaultBaseInterval
	}
	if cfg.MaxInterval <= 0 {
		cfg.MaxInterval = DefaultMaxInterval
	}
	return &Service{gw: gw, snapshots: snapshots, cfg: cfg}
}

// Seed publishes the most recently persisted snapshot, if any, so the
// badge has numbers before the first fetch lands.
func (s *Service) Seed(ctx context.Context) error {
	if s.snapshots == nil {
		return nil
	}
	snap, err := s.snapshots.Latest(ctx)
	if err != nil {
		return fmt.Errorf("load reading snapshot: %w", err)
	}
	if snap == nil {
		return nil
	}
	s.model.Store(&gateway.ReadingStats{
		UnreadCount:       snap.UnreadCount,
		HighPriorityCount: snap.HighPriorityCount,
	})
	return nil
}

// Enable turns polling on. The loop resumes on its next wake-up.
func (s *Service) Enable() { s.enabled.Store(true) }

// Disable suspends polling; no network calls are issued while disabled.
// The published read model is left as is.
func (s *Service) Disable() { s.enabled.Store(false) }

// Enabled reports whether the loop may fetch.
func (s *Service) Enabled() bool { return s.enabled.Load() }

// Stats returns the last successfully fetched reading stats, or nil when
// nothing was ever fetched or seeded.
func (s *Service) Stats() *gateway.ReadingStats {
	v := s.model.Load()
	if v == nil {
		return nil
	}
	out := *v
	return &out
}

// Run polls until ctx is cancelled. While disabled the loop just sleeps;
// it issues zero network calls and leaves the backoff state alone.
func (s *Service) Run(ctx context.Context) {
	timer := time.NewTimer(0)
	defer timer.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-timer.C:
		}

		delay := s.cfg.BaseInterval
		if s.Enabled() {
			delay = s.pollOnce(ctx)
		}
		timer.Reset(delay)
	}
}

// pollOnce runs a single fetch and returns the delay before the next one.
// Success resets the backoff and republishes the read model; failure backs
// off without touching the model.
func (s *Service) pollOnce(ctx context.Context) time.Duration {
	stats, err := s.gw.ReadingStats(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		// First failure waits the base interval; each further one doubles
		// it, so five in a row wait 10, 20, 40, 60, 60 seconds.
		next := NextInterval(s.cfg.BaseInterval, s.cfg.MaxInterval, s.failures)
		s.failures++
		return next
	}

	s.failures = 0
	s.model.Store(stats)
	s.persist(ctx, stats)
	return s.cfg.BaseInterval
}

// persist saves the read model so a restart starts from the last good
// numbers. Failures only warn; polling is advisory.
func (s *Service) persist(ctx context.Context, stats *gateway.ReadingStats) {
	if s.snapshots == nil {
		return
	}
	snap := &store.ReadingSnapshot{
		Timestamp:         time.Now().UTC(),
		UnreadCount:       stats.UnreadCount,
		HighPriorityCount: stats.HighPriorityCount,
	}
	if err := s.snapshots.Save(ctx, snap); err != nil {
		fmt.Fprintln(os.Stderr, "warning: failed to persist reading snapshot:", err)
		return
	}
	if err := s.snapshots.Prune(ctx, keepSnapshots); err != nil {
		fmt.Fprintln(os.Stderr, "warning: failed to prune reading snapshots:", err)
	}
}
