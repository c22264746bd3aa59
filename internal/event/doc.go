// Package event provides a pub-sub event bus for decoupled
// inter-component communication in taskdeck.
//
// The poll loops and the lifecycle coordinator publish events without
// knowing who renders them; the TUI subscribes without knowing who
// produced them. Dispatch is synchronous: Publish calls every matching
// handler before returning, and a panicking handler is recovered so it
// cannot block delivery to the others.
//
// Event types follow the pattern "category.action":
//   - snapshot.refreshed
//   - tail.updated, tail.stopped
//   - task.submitted, task.cancelled, task.retried
//   - config.reloaded
package event
