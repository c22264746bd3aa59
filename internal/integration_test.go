// Package internal contains integration tests that verify the packages
// work together: the event bus routing between the polling layers and
// the snapshot store, and clean teardown of every polling loop.
package internal

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/Iron-Ham/taskdeck/internal/event"
	"github.com/Iron-Ham/taskdeck/internal/lifecycle"
	"github.com/Iron-Ham/taskdeck/internal/poll"
	"github.com/Iron-Ham/taskdeck/internal/remote"
	"github.com/Iron-Ham/taskdeck/internal/snapshot"
)

func newServiceStub(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/tasks", func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			w.WriteHeader(http.StatusOK)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"id":1,"description":"a","status":"running"},{"id":2,"description":"b","status":"queued"}]`))
	})
	mux.HandleFunc("/tasks/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if strings.HasSuffix(r.URL.Path, "/logs") {
			w.Write([]byte(`{"logs":["hello"]}`))
			return
		}
		w.WriteHeader(http.StatusOK)
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

// TestEventBusIntegration verifies that snapshot refreshes, tail
// updates, and lifecycle acknowledgments all reach a single subscriber
// the way the TUI consumes them.
func TestEventBusIntegration(t *testing.T) {
	srv := newServiceStub(t)
	client := remote.NewClient(srv.URL)
	bus := event.NewBus()

	var mu sync.Mutex
	received := make(map[string]int)
	bus.SubscribeAll(func(e event.Event) {
		mu.Lock()
		received[e.EventType()]++
		mu.Unlock()
	})

	store := snapshot.NewStore(bus)
	syncer := poll.NewSynchronizer(client, store, nil, time.Hour)
	tails := poll.NewTailRegistry(client, bus, nil, time.Hour)
	coord := lifecycle.NewCoordinator(client, bus, nil)

	syncer.Start(context.Background())
	defer syncer.Stop()

	tails.StartTail(context.Background(), 1, nil)
	defer tails.Close()

	if err := coord.Execute(context.Background(), lifecycle.CancelIntent{TaskID: 2}); err != nil {
		t.Fatalf("cancel failed: %v", err)
	}

	mu.Lock()
	defer mu.Unlock()
	for _, eventType := range []string{"snapshot.refreshed", "tail.updated", "task.cancelled"} {
		if received[eventType] == 0 {
			t.Errorf("no %s event reached the subscriber", eventType)
		}
	}
}

// TestTeardownStopsAllLoops starts the list loop plus two tails and
// verifies shutdown cancels all three: no further requests reach the
// service afterwards.
func TestTeardownStopsAllLoops(t *testing.T) {
	var mu sync.Mutex
	var total int64

	mux := http.NewServeMux()
	count := func() {
		mu.Lock()
		total++
		mu.Unlock()
	}
	mux.HandleFunc("/tasks", func(w http.ResponseWriter, r *http.Request) {
		count()
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[]`))
	})
	mux.HandleFunc("/tasks/", func(w http.ResponseWriter, r *http.Request) {
		count()
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"logs":[]}`))
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	client := remote.NewClient(srv.URL)
	bus := event.NewBus()
	store := snapshot.NewStore(bus)
	syncer := poll.NewSynchronizer(client, store, nil, 10*time.Millisecond)
	tails := poll.NewTailRegistry(client, bus, nil, 10*time.Millisecond)

	syncer.Start(context.Background())
	tails.StartTail(context.Background(), 1, nil)
	tails.StartTail(context.Background(), 2, nil)

	time.Sleep(50 * time.Millisecond)

	tails.Close()
	syncer.Stop()

	if syncer.Running() {
		t.Error("synchronizer still running after Stop")
	}
	if got := tails.ActiveTails(); len(got) != 0 {
		t.Errorf("tails still active after Close: %v", got)
	}

	mu.Lock()
	settled := total
	mu.Unlock()
	time.Sleep(60 * time.Millisecond)
	mu.Lock()
	after := total
	mu.Unlock()
	if after != settled {
		t.Errorf("service saw %d requests after teardown", after-settled)
	}
}
