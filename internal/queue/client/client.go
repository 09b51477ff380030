package client

import (
	"context"
	"fmt"

	"github.com/hibiken/asynq"
	"github.com/woundtrack/backend/internal/queue/task"
)

// Dispatcher enqueues verification-code emails for background delivery.
// Enqueueing is the only thing the issuing request waits for; delivery
// itself happens on the asynq worker.
type Dispatcher struct {
	client *asynq.Client
}

func NewDispatcher(opt asynq.RedisConnOpt) *Dispatcher {
	return &Dispatcher{
		client: asynq.NewClient(opt),
	}
}

func (d *Dispatcher) Dispatch(ctx context.Context, email, code string) error {
	t, err := task.NewSendCodeTask(email, code)
	if err != nil {
		return fmt.Errorf("create send code task failed: %w", err)
	}

	if _, err := d.client.EnqueueContext(ctx, t); err != nil {
		return fmt.Errorf("enqueue send code task failed: %w", err)
	}

	return nil
}

func (d *Dispatcher) Close() error {
	return d.client.Close()
}
