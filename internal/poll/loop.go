package poll

import (
	"context"
	"time"
)

// loop is a cancellable repeating timer. All ticks run sequentially:
// a tick finishes before the next fires, and intervals that elapse
// while a tick is still running are dropped rather than queued.
//
// Owners create a loop with newLoop, optionally run one synchronous
// tick with tickNow, then call start exactly once. stop may be called
// from any goroutine once start has been invoked.
type loop struct {
	ctx      context.Context
	cancel   context.CancelFunc
	interval time.Duration
	tick     func(context.Context)
	done     chan struct{}
}

// newLoop prepares a loop without scheduling anything.
func newLoop(ctx context.Context, interval time.Duration, tick func(context.Context)) *loop {
	ctx, cancel := context.WithCancel(ctx)
	return &loop{
		ctx:      ctx,
		cancel:   cancel,
		interval: interval,
		tick:     tick,
		done:     make(chan struct{}),
	}
}

// tickNow runs one tick synchronously in the calling goroutine. A stop
// issued concurrently cancels the tick's context, so an in-flight
// fetch aborts instead of rendering late.
func (l *loop) tickNow() {
	l.tick(l.ctx)
}

// start launches the timer goroutine. Must be called exactly once.
func (l *loop) start() {
	go func() {
		defer close(l.done)

		ticker := time.NewTicker(l.interval)
		defer ticker.Stop()

		for {
			select {
			case <-l.ctx.Done():
				return
			case <-ticker.C:
				l.tick(l.ctx)
			}
		}
	}()
}

// stop cancels the loop and waits for the timer goroutine (and any
// in-flight tick) to finish. Safe to call more than once.
func (l *loop) stop() {
	l.cancel()
	<-l.done
}
