package lifecycle

import (
	"context"
	"fmt"

	"github.com/Iron-Ham/taskdeck/internal/event"
	"github.com/Iron-Ham/taskdeck/internal/logging"
	"github.com/Iron-Ham/taskdeck/internal/remote"
)

// Coordinator executes confirmed intents against the task service.
// It performs exactly one client call per Execute and never retries.
type Coordinator struct {
	client *remote.Client
	bus    *event.Bus
	logger *logging.Logger
}

// NewCoordinator creates a Coordinator. The bus may be nil, in which
// case no lifecycle events are published.
func NewCoordinator(client *remote.Client, bus *event.Bus, logger *logging.Logger) *Coordinator {
	if logger == nil {
		logger = logging.NopLogger()
	}
	return &Coordinator{
		client: client,
		bus:    bus,
		logger: logger.WithComponent("lifecycle"),
	}
}

// Execute performs the single service call for a confirmed intent. The
// returned error, if any, is the message to show the user; the
// snapshot is not refreshed here — the next list tick picks up any
// state change.
func (c *Coordinator) Execute(ctx context.Context, intent Intent) error {
	switch in := intent.(type) {
	case SubmitIntent:
		if err := c.client.Submit(ctx, in.Description); err != nil {
			c.logger.Warn("submit failed", "error", err)
			return err
		}
		c.logger.Info("task submitted", "description", in.Description)
		c.publish(event.NewTaskSubmittedEvent(in.Description))
		return nil

	case CancelIntent:
		if err := c.client.Cancel(ctx, in.TaskID); err != nil {
			c.logger.Warn("cancel failed", "task_id", in.TaskID, "error", err)
			return err
		}
		c.logger.Info("task cancelled", "task_id", in.TaskID)
		c.publish(event.NewTaskCancelledEvent(in.TaskID))
		return nil

	case RetryIntent:
		if err := c.client.Retry(ctx, in.TaskID); err != nil {
			c.logger.Warn("retry failed", "task_id", in.TaskID, "error", err)
			return err
		}
		c.logger.Info("task retried", "task_id", in.TaskID)
		c.publish(event.NewTaskRetriedEvent(in.TaskID))
		return nil

	default:
		return fmt.Errorf("unknown intent type %T", intent)
	}
}

// SubmitRaw extracts a description from free text and executes the
// resulting SubmitIntent. Input errors are returned before any network
// call is made.
func (c *Coordinator) SubmitRaw(ctx context.Context, raw string) error {
	description, err := ExtractDescription(raw)
	if err != nil {
		return err
	}
	return c.Execute(ctx, SubmitIntent{Description: description})
}

// Outputs fetches a task's recorded outputs. Unlike log tailing this
// is a one-shot read, typically after the task finished.
func (c *Coordinator) Outputs(ctx context.Context, taskID int) ([]string, error) {
	return c.client.FetchOutputs(ctx, taskID)
}

func (c *Coordinator) publish(e event.Event) {
	if c.bus != nil {
		c.bus.Publish(e)
	}
}
