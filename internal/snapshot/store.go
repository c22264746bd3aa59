// Package snapshot holds the client's most recent view of the remote
// task list.
//
// The store is a passive cache: the list synchronizer replaces its
// contents on every successful poll, and readers (the TUI, CLI verbs)
// take copies. A replace publishes a SnapshotRefreshedEvent so
// interested components can react without polling the store.
package snapshot

import (
	"sync"

	"github.com/Iron-Ham/taskdeck/internal/event"
	"github.com/Iron-Ham/taskdeck/internal/remote"
)

// Store is a thread-safe cache of the last fetched task list.
type Store struct {
	mu    sync.RWMutex
	tasks []remote.Task
	bus   *event.Bus
}

// NewStore creates an empty Store. The bus may be nil, in which case
// no events are published on refresh.
func NewStore(bus *event.Bus) *Store {
	return &Store{
		tasks: []remote.Task{},
		bus:   bus,
	}
}

// Replace swaps the entire snapshot for the given task list and
// publishes a SnapshotRefreshedEvent. The slice is copied, so the
// caller may reuse it.
func (s *Store) Replace(tasks []remote.Task) {
	copied := make([]remote.Task, len(tasks))
	copy(copied, tasks)

	s.mu.Lock()
	s.tasks = copied
	s.mu.Unlock()

	if s.bus != nil {
		s.bus.Publish(event.NewSnapshotRefreshedEvent(len(copied)))
	}
}

// Tasks returns a copy of the current snapshot in service order.
func (s *Store) Tasks() []remote.Task {
	s.mu.RLock()
	defer s.mu.RUnlock()

	copied := make([]remote.Task, len(s.tasks))
	copy(copied, s.tasks)
	return copied
}

// Get returns the task with the given id and whether it was present in
// the current snapshot.
func (s *Store) Get(id int) (remote.Task, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, t := range s.tasks {
		if t.ID == id {
			return t, true
		}
	}
	return remote.Task{}, false
}

// Len returns the number of tasks in the current snapshot.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.tasks)
}
