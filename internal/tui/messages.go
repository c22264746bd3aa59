package tui

import "github.com/Iron-Ham/taskdeck/internal/event"

// snapshotMsg signals that the task snapshot was replaced and the
// sidebar should re-read the store.
type snapshotMsg struct {
	count int
}

// tailUpdateMsg carries the latest rendered log text for a tailed task.
type tailUpdateMsg struct {
	taskID int
	text   string
}

// tailStoppedMsg signals that a tail was retired.
type tailStoppedMsg struct {
	taskID int
}

// outputsMsg carries a task's recorded outputs for the transient
// outputs view.
type outputsMsg struct {
	taskID int
	lines  []string
	err    error
}

// actionDoneMsg reports the outcome of a lifecycle action that ran off
// the UI goroutine.
type actionDoneMsg struct {
	info string
	err  error
}

// configReloadedMsg signals that the configuration file changed on disk.
type configReloadedMsg struct{}

// eventToMsg translates bus events into bubbletea messages. Lifecycle
// events return nil because action outcomes already arrive through
// actionDoneMsg from the command that ran them.
func eventToMsg(e event.Event) interface{} {
	switch ev := e.(type) {
	case event.SnapshotRefreshedEvent:
		return snapshotMsg{count: ev.Count}
	case event.TailUpdatedEvent:
		return tailUpdateMsg{taskID: ev.TaskID, text: ev.Text}
	case event.TailStoppedEvent:
		return tailStoppedMsg{taskID: ev.TaskID}
	case event.ConfigReloadedEvent:
		return configReloadedMsg{}
	default:
		return nil
	}
}
