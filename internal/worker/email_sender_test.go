package worker

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/woundtrack/backend/internal/config"
	"github.com/woundtrack/backend/pkg/email"
	mock_email "github.com/woundtrack/backend/pkg/email/mock"
)

// writeTemplate drops a throwaway template under ./templates, where the
// body generator expects to find it.
func writeTemplate(t *testing.T, name, content string) {
	t.Helper()

	require.NoError(t, os.MkdirAll("templates", 0o755))
	t.Cleanup(func() { _ = os.RemoveAll("templates") })

	require.NoError(t, os.WriteFile(filepath.Join("templates", name), []byte(content), 0o644))
}

func TestSendVerificationCodeEmail(t *testing.T) {
	writeTemplate(t, "verify.html", "<p>Your code is {{.Code}}</p>")

	provider := new(mock_email.EmailSender)
	provider.On("Send", mock.MatchedBy(func(input email.SendEmailInput) bool {
		return input.To == "pat@example.com" &&
			input.Subject != "" &&
			input.Body == "<p>Your code is 123456</p>"
	})).Return(nil)

	sender := newEmailSender(provider, config.EmailConfig{
		Templates: config.EmailTemplates{Verification: "verify.html"},
	})

	err := sender.SendVerificationCodeEmail(context.Background(), "pat@example.com", "123456")
	require.NoError(t, err)
	provider.AssertExpectations(t)
}

func TestSendVerificationCodeEmailMissingTemplate(t *testing.T) {
	provider := new(mock_email.EmailSender)

	sender := newEmailSender(provider, config.EmailConfig{
		Templates: config.EmailTemplates{Verification: "does-not-exist.html"},
	})

	err := sender.SendVerificationCodeEmail(context.Background(), "pat@example.com", "123456")
	assert.Error(t, err)
	provider.AssertNotCalled(t, "Send", mock.Anything)
}
