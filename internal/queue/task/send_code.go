package task

import (
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"
)

const (
	SendCodeTaskName  = "sendVerificationCodeTask"
	SendCodeQueueName = "sendCodeQueue"
)

type SendCode struct {
	Email string `json:"email"`
	Code  string `json:"code"`
}

func NewSendCodeTask(email string, code string) (*asynq.Task, error) {
	var data SendCode
	data.Email = email
	data.Code = code

	payload, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("json data marshal failed: %w", err)
	}

	return asynq.NewTask(
		SendCodeTaskName,
		payload,
		asynq.MaxRetry(5),
		asynq.Queue(SendCodeQueueName),
	), nil
}
