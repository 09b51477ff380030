package processor

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/woundtrack/backend/internal/queue/task"
	"github.com/woundtrack/backend/internal/worker"

	"github.com/hibiken/asynq"
)

type sendCodeProcessor struct {
	workers *worker.Workers
}

func NewSendCodeProcessor(workers *worker.Workers) *sendCodeProcessor {
	return &sendCodeProcessor{
		workers: workers,
	}
}

func (p *sendCodeProcessor) ProcessTask(ctx context.Context, t *asynq.Task) error {
	var data task.SendCode
	err := json.Unmarshal(t.Payload(), &data)
	if err != nil {
		return fmt.Errorf("process send code task json unmarshal failed: %w", err)
	}

	if err = p.workers.EmailSender.SendVerificationCodeEmail(ctx, data.Email, data.Code); err != nil {
		return fmt.Errorf("send verification code email failed: %w", err)
	}

	return nil
}
