package remote

// Task is the client-side projection of a task tracked by the remote
// service. It is read-only: the service assigns the id at submission and
// owns the status; the client never mutates a task locally, it only
// replaces its copy wholesale on the next successful list refresh.
type Task struct {
	// ID is the service-assigned integer identity, immutable once created.
	ID int `json:"id"`

	// Description is the free-text task description set at submission.
	Description string `json:"description"`

	// Status is controlled entirely by the remote service. The client
	// treats it as opaque and never validates it against a known set;
	// presentation code maps unrecognized values to a neutral style.
	Status string `json:"status"`
}

// logsResponse is the wire shape of GET /tasks/{id}/logs.
type logsResponse struct {
	Logs []string `json:"logs"`
}

// outputsResponse is the wire shape of GET /tasks/{id}/outputs.
type outputsResponse struct {
	Outputs []string `json:"outputs"`
}

// submitRequest is the wire shape of POST /tasks.
type submitRequest struct {
	Description string `json:"description"`
}
