// Package poll contains the periodic refresh engine that keeps the
// client's view of the task service current.
//
// Two components share one loop primitive:
//
//   - Synchronizer re-fetches the full task list on a fixed interval
//     and replaces the snapshot store wholesale on each success.
//   - TailRegistry runs at most one log-polling loop per task id while
//     a viewer is open, rendering joined log text (or a sentinel when
//     the task has produced no output) on every tick.
//
// Both poll loops are transient-failure tolerant: a failed fetch skips
// that tick without tearing the loop down, and the next tick may
// succeed. Failures are recorded at debug level only.
//
// Ticks within one loop are serialized: a tick runs to completion
// before the next fires, and ticks that would have fired while a slow
// fetch was in flight are dropped rather than queued. A fetch result
// that arrives after its loop has been stopped is discarded, never
// rendered.
package poll
