package poll

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/Iron-Ham/taskdeck/internal/event"
	"github.com/Iron-Ham/taskdeck/internal/logging"
	"github.com/Iron-Ham/taskdeck/internal/remote"
)

// DefaultTailInterval is how often a tailed task's logs are refreshed.
const DefaultTailInterval = 2 * time.Second

// NoLogsSentinel is rendered when a tailed task has produced no log
// lines yet.
const NoLogsSentinel = "(No logs yet)"

// UpdateFunc receives the rendered log text on each successful tick:
// either the newline-joined log lines or NoLogsSentinel, never both.
type UpdateFunc func(text string)

// tailHandle pairs a task id with its polling loop. The parent context
// and tick are kept so the loop can be rebuilt on an interval change.
type tailHandle struct {
	loop *loop
	ctx  context.Context
	tick func(context.Context)
}

// TailRegistry owns the per-task log polling loops. It holds at most
// one live loop per task id: starting a tail for an id that is already
// tailed retires the prior loop before installing the new one.
type TailRegistry struct {
	client   *remote.Client
	bus      *event.Bus
	logger   *logging.Logger
	interval time.Duration

	mu     sync.Mutex
	tails  map[int]*tailHandle
	closed bool
}

// NewTailRegistry creates a TailRegistry. An interval of 0 uses
// DefaultTailInterval. The bus may be nil, in which case no tail
// events are published.
func NewTailRegistry(client *remote.Client, bus *event.Bus, logger *logging.Logger, interval time.Duration) *TailRegistry {
	if interval <= 0 {
		interval = DefaultTailInterval
	}
	if logger == nil {
		logger = logging.NopLogger()
	}
	return &TailRegistry{
		client:   client,
		bus:      bus,
		logger:   logger.WithComponent("tail"),
		interval: interval,
		tails:    make(map[int]*tailHandle),
	}
}

// StartTail begins polling logs for the given task. One fetch-and-render
// runs synchronously before StartTail returns, so the viewer has
// content (or the sentinel) before the first scheduled tick. If the
// task is already being tailed, the prior loop is retired first.
//
// onUpdate may be nil if the caller consumes TailUpdatedEvents from the
// bus instead.
func (r *TailRegistry) StartTail(ctx context.Context, taskID int, onUpdate UpdateFunc) {
	r.StopTail(taskID)

	tick := func(tickCtx context.Context) {
		r.tick(tickCtx, taskID, onUpdate)
	}
	l := newLoop(ctx, r.interval, tick)

	// Register before the initial fetch so a concurrent StopTail can
	// cancel it.
	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		l.start()
		l.stop()
		return
	}
	r.tails[taskID] = &tailHandle{loop: l, ctx: ctx, tick: tick}
	r.mu.Unlock()

	l.tickNow()
	l.start()
}

// StopTail cancels the polling loop for the given task and removes its
// registry entry. Calling it for a task that is not being tailed is a
// no-op, and calling it twice is safe.
func (r *TailRegistry) StopTail(taskID int) {
	r.mu.Lock()
	h, ok := r.tails[taskID]
	if ok {
		delete(r.tails, taskID)
	}
	r.mu.Unlock()

	if !ok {
		return
	}

	h.loop.stop()
	r.logger.Debug("tail stopped", "task_id", taskID)
	if r.bus != nil {
		r.bus.Publish(event.NewTailStoppedEvent(taskID))
	}
}

// SetInterval changes the polling cadence. Every active tail restarts
// on the new interval without an extra immediate fetch.
func (r *TailRegistry) SetInterval(interval time.Duration) {
	if interval <= 0 {
		interval = DefaultTailInterval
	}

	r.mu.Lock()
	r.interval = interval
	restarted := make([]*loop, 0, len(r.tails))
	stopped := make([]*loop, 0, len(r.tails))
	for _, h := range r.tails {
		stopped = append(stopped, h.loop)
		nl := newLoop(h.ctx, interval, h.tick)
		h.loop = nl
		restarted = append(restarted, nl)
	}
	r.mu.Unlock()

	for _, l := range stopped {
		l.stop()
	}
	for _, l := range restarted {
		l.start()
	}
}

// Active reports whether the given task currently has a live tail.
func (r *TailRegistry) Active(taskID int) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.tails[taskID]
	return ok
}

// ActiveTails returns the ids of all currently tailed tasks, sorted.
func (r *TailRegistry) ActiveTails() []int {
	r.mu.Lock()
	defer r.mu.Unlock()

	ids := make([]int, 0, len(r.tails))
	for id := range r.tails {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

// Close stops every active tail and rejects future StartTail calls.
// Safe to call more than once.
func (r *TailRegistry) Close() {
	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return
	}
	r.closed = true
	handles := r.tails
	r.tails = make(map[int]*tailHandle)
	r.mu.Unlock()

	for taskID, h := range handles {
		h.loop.stop()
		if r.bus != nil {
			r.bus.Publish(event.NewTailStoppedEvent(taskID))
		}
	}
}

// tick fetches the task's logs and delivers the rendered text. A
// failed fetch skips rendering without cancelling the loop, and a
// result that lands after the loop was retired is discarded.
func (r *TailRegistry) tick(ctx context.Context, taskID int, onUpdate UpdateFunc) {
	lines, err := r.client.FetchLogs(ctx, taskID)
	if err != nil {
		r.logger.Debug("log fetch failed", "task_id", taskID, "error", err)
		return
	}
	if ctx.Err() != nil {
		return
	}

	text := RenderLogs(lines)
	if onUpdate != nil {
		onUpdate(text)
	}
	if r.bus != nil {
		r.bus.Publish(event.NewTailUpdatedEvent(taskID, text))
	}
}

// RenderLogs joins log lines with newlines, or returns NoLogsSentinel
// when there are none.
func RenderLogs(lines []string) string {
	if len(lines) == 0 {
		return NoLogsSentinel
	}
	return strings.Join(lines, "\n")
}
