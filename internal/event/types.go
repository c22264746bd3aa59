// Package event defines the event types flowing between taskdeck's
// polling loops, lifecycle coordinator, and UI.
package event

import "time"

// Event is the interface that all events must implement.
type Event interface {
	// EventType returns a string identifier for this event type.
	// Convention: "category.action" (e.g., "snapshot.refreshed").
	EventType() string

	// Timestamp returns when the event occurred.
	Timestamp() time.Time
}

// baseEvent provides common fields for all events.
// Embed this in concrete event types to satisfy the Event interface.
type baseEvent struct {
	eventType string
	timestamp time.Time
}

func (e baseEvent) EventType() string    { return e.eventType }
func (e baseEvent) Timestamp() time.Time { return e.timestamp }

func newBaseEvent(eventType string) baseEvent {
	return baseEvent{
		eventType: eventType,
		timestamp: time.Now(),
	}
}

// -----------------------------------------------------------------------------
// Snapshot Events
// -----------------------------------------------------------------------------

// SnapshotRefreshedEvent is emitted after each successful list refresh,
// once the snapshot store has been replaced wholesale. A failed refresh
// emits nothing: the previous snapshot stays visible until the next
// successful tick.
type SnapshotRefreshedEvent struct {
	baseEvent
	Count int // Number of tasks in the new snapshot
}

// NewSnapshotRefreshedEvent creates a SnapshotRefreshedEvent.
func NewSnapshotRefreshedEvent(count int) SnapshotRefreshedEvent {
	return SnapshotRefreshedEvent{
		baseEvent: newBaseEvent("snapshot.refreshed"),
		Count:     count,
	}
}

// -----------------------------------------------------------------------------
// Tail Events
// -----------------------------------------------------------------------------

// TailUpdatedEvent is emitted when a tailed task's rendered log text
// changes hands to the viewer. Text is either the newline-joined log
// lines or the "(No logs yet)" sentinel, never both.
type TailUpdatedEvent struct {
	baseEvent
	TaskID int
	Text   string
}

// NewTailUpdatedEvent creates a TailUpdatedEvent.
func NewTailUpdatedEvent(taskID int, text string) TailUpdatedEvent {
	return TailUpdatedEvent{
		baseEvent: newBaseEvent("tail.updated"),
		TaskID:    taskID,
		Text:      text,
	}
}

// TailStoppedEvent is emitted when a tail loop is retired, either
// because its viewer closed or because the registry shut down.
type TailStoppedEvent struct {
	baseEvent
	TaskID int
}

// NewTailStoppedEvent creates a TailStoppedEvent.
func NewTailStoppedEvent(taskID int) TailStoppedEvent {
	return TailStoppedEvent{
		baseEvent: newBaseEvent("tail.stopped"),
		TaskID:    taskID,
	}
}

// -----------------------------------------------------------------------------
// Lifecycle Events
// -----------------------------------------------------------------------------

// TaskSubmittedEvent is emitted after the service accepted a submission.
// The new task becomes visible on the next snapshot refresh.
type TaskSubmittedEvent struct {
	baseEvent
	Description string
}

// NewTaskSubmittedEvent creates a TaskSubmittedEvent.
func NewTaskSubmittedEvent(description string) TaskSubmittedEvent {
	return TaskSubmittedEvent{
		baseEvent:   newBaseEvent("task.submitted"),
		Description: description,
	}
}

// TaskCancelledEvent is emitted after the service accepted a cancel
// request. Acceptance is not confirmation that the task stopped.
type TaskCancelledEvent struct {
	baseEvent
	TaskID int
}

// NewTaskCancelledEvent creates a TaskCancelledEvent.
func NewTaskCancelledEvent(taskID int) TaskCancelledEvent {
	return TaskCancelledEvent{
		baseEvent: newBaseEvent("task.cancelled"),
		TaskID:    taskID,
	}
}

// TaskRetriedEvent is emitted after the service accepted a retry request.
type TaskRetriedEvent struct {
	baseEvent
	TaskID int
}

// NewTaskRetriedEvent creates a TaskRetriedEvent.
func NewTaskRetriedEvent(taskID int) TaskRetriedEvent {
	return TaskRetriedEvent{
		baseEvent: newBaseEvent("task.retried"),
		TaskID:    taskID,
	}
}

// -----------------------------------------------------------------------------
// Config Events
// -----------------------------------------------------------------------------

// ConfigReloadedEvent is emitted when the config file changes on disk
// and the new values have been loaded.
type ConfigReloadedEvent struct {
	baseEvent
}

// NewConfigReloadedEvent creates a ConfigReloadedEvent.
func NewConfigReloadedEvent() ConfigReloadedEvent {
	return ConfigReloadedEvent{
		baseEvent: newBaseEvent("config.reloaded"),
	}
}
