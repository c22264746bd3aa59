// Package lifecycle turns user-confirmed intents into single calls
// against the task service.
//
// Each lifecycle operation follows the same protocol: the caller
// builds an Intent, shows its Prompt to the user, and only on an
// explicit yes passes it to the Coordinator. Declining costs nothing;
// no network call has happened yet. The Coordinator performs exactly
// one service call per confirmed intent and never retries — a failure
// is surfaced to the caller as the error to display, and the task
// list catches up on the next scheduled refresh.
package lifecycle

import (
	"errors"
	"fmt"
	"strings"
)

// SubmitPrefix marks free text as a task submission. Everything after
// the prefix, trimmed, becomes the task description.
const SubmitPrefix = "Create task:"

// ErrInvalidSubmission indicates submission text that does not carry
// the submit prefix, or carries it with nothing after it. It is a
// local input error, detected before any network call.
var ErrInvalidSubmission = errors.New("submission text must be \"" + SubmitPrefix + " <description>\"")

// Intent is a pending lifecycle decision. Prompt returns the question
// to put in front of the user before executing it.
type Intent interface {
	Prompt() string
}

// SubmitIntent creates a new task with the given description.
type SubmitIntent struct {
	Description string
}

func (i SubmitIntent) Prompt() string {
	return fmt.Sprintf("Submit new task %q?", i.Description)
}

// CancelIntent requests cancellation of a running task.
type CancelIntent struct {
	TaskID int
}

func (i CancelIntent) Prompt() string {
	return fmt.Sprintf("Cancel task %d?", i.TaskID)
}

// RetryIntent re-queues a task that previously finished or failed.
type RetryIntent struct {
	TaskID int
}

func (i RetryIntent) Prompt() string {
	return fmt.Sprintf("Retry task %d?", i.TaskID)
}

// ExtractDescription parses raw submission text. The text must start
// with SubmitPrefix (leading whitespace allowed) and carry a non-empty
// description after it; anything else returns ErrInvalidSubmission.
func ExtractDescription(raw string) (string, error) {
	trimmed := strings.TrimSpace(raw)
	rest, ok := strings.CutPrefix(trimmed, SubmitPrefix)
	if !ok {
		return "", ErrInvalidSubmission
	}

	description := strings.TrimSpace(rest)
	if description == "" {
		return "", ErrInvalidSubmission
	}
	return description, nil
}
