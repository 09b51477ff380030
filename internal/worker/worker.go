package worker

import (
	"context"

	"github.com/woundtrack/backend/internal/config"
	emailProvider "github.com/woundtrack/backend/pkg/email"
)

type Workers struct {
	EmailSender EmailSender
}

type Deps struct {
	EmailProvider emailProvider.Sender
	Config        *config.Config
}

type EmailSender interface {
	SendVerificationCodeEmail(ctx context.Context, email string, code string) error
}

func NewWorkers(deps Deps) *Workers {
	return &Workers{
		EmailSender: newEmailSender(deps.EmailProvider, deps.Config.Email),
	}
}
