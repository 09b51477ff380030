package worker

import (
	"context"
	"fmt"

	"github.com/woundtrack/backend/internal/config"
	emailProvider "github.com/woundtrack/backend/pkg/email"
)

type emailSender struct {
	sender emailProvider.Sender
	config config.EmailConfig
}

func newEmailSender(
	sender emailProvider.Sender,
	config config.EmailConfig,
) *emailSender {
	return &emailSender{
		sender: sender,
		config: config,
	}
}

type verificationEmailInput struct {
	Code string
}

func (s *emailSender) SendVerificationCodeEmail(ctx context.Context, email string, code string) error {
	subject := "Your verification code"

	templateInput := verificationEmailInput{code}
	sendInput := emailProvider.SendEmailInput{Subject: subject, To: email}

	if err := sendInput.GenerateBodyFromHTML(s.config.Templates.Verification, templateInput); err != nil {
		return fmt.Errorf("generate email failed: %w", err)
	}

	if err := s.sender.Send(sendInput); err != nil {
		return fmt.Errorf("send email failed: %w", err)
	}

	return nil
}
