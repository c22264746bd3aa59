package remote

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewClient(server.URL)
}

func TestListTasks(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/tasks", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"id": 1, "description": "build the index", "status": "running"},
			{"id": 2, "description": "write docs", "status": "completed"}
		]`))
	})

	tasks, err := client.ListTasks(context.Background())
	require.NoError(t, err)
	require.Len(t, tasks, 2)
	assert.Equal(t, 1, tasks[0].ID)
	assert.Equal(t, "build the index", tasks[0].Description)
	assert.Equal(t, "running", tasks[0].Status)
	assert.Equal(t, "completed", tasks[1].Status)
}

func TestListTasks_ServiceError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "internal error", http.StatusInternalServerError)
	})

	_, err := client.ListTasks(context.Background())
	require.Error(t, err)

	var serviceErr *ServiceError
	require.ErrorAs(t, err, &serviceErr)
	assert.Equal(t, http.StatusInternalServerError, serviceErr.Status)
	assert.Contains(t, err.Error(), "500")
}

func TestListTasks_TransportError(t *testing.T) {
	// Point at a server that is already closed.
	server := httptest.NewServer(http.NotFoundHandler())
	server.Close()

	client := NewClient(server.URL)
	_, err := client.ListTasks(context.Background())
	require.Error(t, err)

	var serviceErr *ServiceError
	require.ErrorAs(t, err, &serviceErr)
	assert.Zero(t, serviceErr.Status)
}

func TestSubmit(t *testing.T) {
	var gotBody submitRequest
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/tasks", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.WriteHeader(http.StatusCreated)
	})

	require.NoError(t, client.Submit(context.Background(), "build the index"))
	assert.Equal(t, "build the index", gotBody.Description)
}

func TestSubmit_EmptyDescription(t *testing.T) {
	called := false
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		called = true
	})

	err := client.Submit(context.Background(), "   ")
	require.ErrorIs(t, err, ErrEmptyDescription)
	assert.False(t, called, "empty submissions must fail before any network call")
}

func TestSubmit_ServerError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "queue full", http.StatusInternalServerError)
	})

	err := client.Submit(context.Background(), "build the index")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "500")
	assert.Contains(t, err.Error(), "queue full")
}

func TestFetchLogs(t *testing.T) {
	tests := []struct {
		name string
		body string
		want []string
	}{
		{
			name: "lines present",
			body: `{"logs": ["a", "b"]}`,
			want: []string{"a", "b"},
		},
		{
			name: "empty list",
			body: `{"logs": []}`,
			want: []string{},
		},
		{
			name: "missing field",
			body: `{}`,
			want: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/tasks/7/logs", r.URL.Path)
				_, _ = w.Write([]byte(tt.body))
			})

			logs, err := client.FetchLogs(context.Background(), 7)
			require.NoError(t, err)
			assert.Equal(t, tt.want, logs)
		})
	}
}

func TestFetchOutputs(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/tasks/3/outputs", r.URL.Path)
		_, _ = w.Write([]byte(`{"outputs": ["report.md", "data.csv"]}`))
	})

	outputs, err := client.FetchOutputs(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, []string{"report.md", "data.csv"}, outputs)
}

func TestCancelAndRetry(t *testing.T) {
	var paths []string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		paths = append(paths, r.URL.Path)
	})

	require.NoError(t, client.Cancel(context.Background(), 42))
	require.NoError(t, client.Retry(context.Background(), 42))
	assert.Equal(t, []string{"/tasks/42/cancel", "/tasks/42/retry"}, paths)
}

func TestCancel_NonSuccess(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "task already finished", http.StatusConflict)
	})

	err := client.Cancel(context.Background(), 42)
	var serviceErr *ServiceError
	require.ErrorAs(t, err, &serviceErr)
	assert.Equal(t, "cancel", serviceErr.Op)
	assert.Equal(t, http.StatusConflict, serviceErr.Status)
}

func TestContextCancellation(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.ListTasks(ctx)
	require.Error(t, err)

	var serviceErr *ServiceError
	assert.True(t, errors.As(err, &serviceErr))
}
