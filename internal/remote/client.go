package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Configuration constants for the task service client.
const (
	// DefaultBaseURL is the base URL of the task-execution service.
	DefaultBaseURL = "http://127.0.0.1:8000"

	// DefaultTimeout is the default timeout for service requests.
	DefaultTimeout = 30 * time.Second

	// maxResponseSize caps how much of a response body is read.
	maxResponseSize = 10 * 1024 * 1024 // 10MB
)

// ErrEmptyDescription indicates a submission with no description text.
// It is detected before any network traffic occurs.
var ErrEmptyDescription = errors.New("task description is empty")

// ServiceError represents a failed request to the task service: either a
// non-success HTTP status or an unparseable success body.
type ServiceError struct {
	Op      string // the operation that failed, e.g. "submit", "list"
	Status  int    // HTTP status code, 0 for transport-level failures
	Message string
}

// Error implements the error interface.
func (e *ServiceError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("task service: %s failed (HTTP %d): %s", e.Op, e.Status, e.Message)
	}
	return fmt.Sprintf("task service: %s failed: %s", e.Op, e.Message)
}

// Client is a stateless request/response wrapper around the task
// service's HTTP contract. It holds no task state and performs no
// retries; each method is one round trip that either returns parsed
// data or fails.
type Client struct {
	baseURL    string
	httpClient *http.Client
	userAgent  string
}

// NewClient creates a client for the service at baseURL. An empty
// baseURL selects DefaultBaseURL.
func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: DefaultTimeout,
		},
		userAgent: "taskdeck/0.1",
	}
}

// WithTimeout sets the per-request timeout.
func (c *Client) WithTimeout(timeout time.Duration) *Client {
	c.httpClient.Timeout = timeout
	return c
}

// WithHTTPClient replaces the underlying HTTP client. Used by tests and
// by callers that need custom transport settings.
func (c *Client) WithHTTPClient(hc *http.Client) *Client {
	c.httpClient = hc
	return c
}

// BaseURL returns the configured service base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Submit creates a new task with the given description. The service
// assigns the id; the body of a success response is ignored.
func (c *Client) Submit(ctx context.Context, description string) error {
	if strings.TrimSpace(description) == "" {
		return ErrEmptyDescription
	}
	return c.post(ctx, "submit", "/tasks", submitRequest{Description: description})
}

// ListTasks fetches the full task list. The returned order is the
// service's order and is preserved.
func (c *Client) ListTasks(ctx context.Context) ([]Task, error) {
	var tasks []Task
	if err := c.get(ctx, "list", "/tasks", &tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

// FetchLogs fetches the log lines for one task. A task with no logs yet
// yields an empty (non-nil) slice.
func (c *Client) FetchLogs(ctx context.Context, taskID int) ([]string, error) {
	var resp logsResponse
	if err := c.get(ctx, "logs", fmt.Sprintf("/tasks/%d/logs", taskID), &resp); err != nil {
		return nil, err
	}
	if resp.Logs == nil {
		return []string{}, nil
	}
	return resp.Logs, nil
}

// FetchOutputs fetches the output filenames produced by one task.
func (c *Client) FetchOutputs(ctx context.Context, taskID int) ([]string, error) {
	var resp outputsResponse
	if err := c.get(ctx, "outputs", fmt.Sprintf("/tasks/%d/outputs", taskID), &resp); err != nil {
		return nil, err
	}
	if resp.Outputs == nil {
		return []string{}, nil
	}
	return resp.Outputs, nil
}

// Cancel requests cancellation of a task. A 2xx response only means the
// service accepted the request, not that cancellation took effect; the
// task's status is observed via later list refreshes.
func (c *Client) Cancel(ctx context.Context, taskID int) error {
	return c.post(ctx, "cancel", fmt.Sprintf("/tasks/%d/cancel", taskID), nil)
}

// Retry requests that a task be run again.
func (c *Client) Retry(ctx context.Context, taskID int) error {
	return c.post(ctx, "retry", fmt.Sprintf("/tasks/%d/retry", taskID), nil)
}

// get performs a GET round trip and decodes a JSON success body into out.
func (c *Client) get(ctx context.Context, op, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return &ServiceError{Op: op, Message: err.Error()}
	}
	c.setHeaders(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &ServiceError{Op: op, Message: err.Error()}
	}
	defer resp.Body.Close()

	body, err := readBody(resp)
	if err != nil {
		return &ServiceError{Op: op, Status: resp.StatusCode, Message: err.Error()}
	}
	if !isSuccess(resp.StatusCode) {
		return &ServiceError{Op: op, Status: resp.StatusCode, Message: bodySnippet(body)}
	}
	if err := json.Unmarshal(body, out); err != nil {
		return &ServiceError{Op: op, Status: resp.StatusCode, Message: "unparseable response: " + err.Error()}
	}
	return nil
}

// post performs a POST round trip. A nil payload sends an empty body.
// The success body is ignored.
func (c *Client) post(ctx context.Context, op, path string, payload any) error {
	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return &ServiceError{Op: op, Message: err.Error()}
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, body)
	if err != nil {
		return &ServiceError{Op: op, Message: err.Error()}
	}
	c.setHeaders(req)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &ServiceError{Op: op, Message: err.Error()}
	}
	defer resp.Body.Close()

	respBody, err := readBody(resp)
	if err != nil {
		return &ServiceError{Op: op, Status: resp.StatusCode, Message: err.Error()}
	}
	if !isSuccess(resp.StatusCode) {
		return &ServiceError{Op: op, Status: resp.StatusCode, Message: bodySnippet(respBody)}
	}
	return nil
}

func (c *Client) setHeaders(req *http.Request) {
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")
}

func isSuccess(status int) bool {
	return status >= 200 && status < 300
}

// readBody reads a response body with a size cap so a misbehaving
// service cannot exhaust memory.
func readBody(resp *http.Response) ([]byte, error) {
	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}
	if int64(len(body)) == maxResponseSize {
		return nil, fmt.Errorf("response exceeded maximum size of %d bytes", maxResponseSize)
	}
	return body, nil
}

// bodySnippet trims an error body down to something fit for a one-line
// user notification.
func bodySnippet(body []byte) string {
	s := strings.TrimSpace(string(body))
	if len(s) > 200 {
		s = s[:200] + "..."
	}
	return s
}
