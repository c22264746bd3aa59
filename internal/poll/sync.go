package poll

import (
	"context"
	"sync"
	"time"

	"github.com/Iron-Ham/taskdeck/internal/logging"
	"github.com/Iron-Ham/taskdeck/internal/remote"
	"github.com/Iron-Ham/taskdeck/internal/snapshot"
)

// DefaultListInterval is how often the task list is refreshed.
const DefaultListInterval = 3 * time.Second

// Synchronizer keeps the snapshot store reconciled with the remote
// task list. It is the snapshot's only writer.
type Synchronizer struct {
	client   *remote.Client
	store    *snapshot.Store
	logger   *logging.Logger
	interval time.Duration

	mu   sync.Mutex
	loop *loop
	ctx  context.Context
}

// NewSynchronizer creates a Synchronizer that refreshes store every
// interval. An interval of 0 uses DefaultListInterval.
func NewSynchronizer(client *remote.Client, store *snapshot.Store, logger *logging.Logger, interval time.Duration) *Synchronizer {
	if interval <= 0 {
		interval = DefaultListInterval
	}
	if logger == nil {
		logger = logging.NopLogger()
	}
	return &Synchronizer{
		client:   client,
		store:    store,
		logger:   logger.WithComponent("sync"),
		interval: interval,
	}
}

// Start begins the refresh loop, performing one refresh immediately.
// Calling Start while already running is a no-op.
func (s *Synchronizer) Start(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.loop != nil {
		return
	}
	s.ctx = ctx
	l := newLoop(ctx, s.interval, s.tick)
	s.loop = l
	l.tickNow()
	l.start()
}

// SetInterval changes the refresh interval. When the loop is running it
// restarts on the new cadence without an extra immediate refresh.
func (s *Synchronizer) SetInterval(interval time.Duration) {
	if interval <= 0 {
		interval = DefaultListInterval
	}

	s.mu.Lock()
	s.interval = interval
	l := s.loop
	if l == nil {
		s.mu.Unlock()
		return
	}
	nl := newLoop(s.ctx, interval, s.tick)
	s.loop = nl
	s.mu.Unlock()

	l.stop()
	nl.start()
}

// Stop cancels the refresh loop and waits for any in-flight refresh to
// finish. Safe to call when never started, and safe to call twice.
func (s *Synchronizer) Stop() {
	s.mu.Lock()
	l := s.loop
	s.loop = nil
	s.mu.Unlock()

	if l != nil {
		l.stop()
	}
}

// Running reports whether the refresh loop is active.
func (s *Synchronizer) Running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loop != nil
}

// RefreshNow performs a single out-of-band refresh, for use after a
// lifecycle action so the result shows up without waiting a full
// interval. It follows the same silent-fail policy as the loop.
func (s *Synchronizer) RefreshNow(ctx context.Context) {
	s.tick(ctx)
}

// tick fetches the task list and replaces the snapshot. A failed fetch
// leaves the previous snapshot in place; the next tick may succeed.
func (s *Synchronizer) tick(ctx context.Context) {
	tasks, err := s.client.ListTasks(ctx)
	if err != nil {
		s.logger.Debug("list refresh failed", "error", err)
		return
	}
	if ctx.Err() != nil {
		// Result arrived after Stop; discard it.
		return
	}
	s.store.Replace(tasks)
}
