package email

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsEmailValid(t *testing.T) {
	valid := []string{
		"pat@example.com",
		"pat.lee+tag@sub.example.co",
		"x@y.z",
	}
	for _, email := range valid {
		assert.True(t, IsEmailValid(email), email)
	}

	invalid := []string{
		"",
		"plainaddress",
		"@example.com",
		"pat@",
		"pat@example",
		"pat lee@example.com",
		"pat@exa mple.com",
	}
	for _, email := range invalid {
		assert.False(t, IsEmailValid(email), email)
	}
}

func TestSendEmailInputValidate(t *testing.T) {
	t.Run("complete input passes", func(t *testing.T) {
		input := SendEmailInput{To: "pat@example.com", Subject: "subject", Body: "body"}
		assert.NoError(t, input.Validate())
	})

	t.Run("missing fields fail", func(t *testing.T) {
		cases := []SendEmailInput{
			{Subject: "subject", Body: "body"},
			{To: "pat@example.com", Body: "body"},
			{To: "pat@example.com", Subject: "subject"},
			{To: "not-an-email", Subject: "subject", Body: "body"},
		}
		for _, input := range cases {
			assert.Error(t, input.Validate())
		}
	})
}
