package service

import "errors"

var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")

	ErrRateLimited  = errors.New("code issuance on cooldown")
	ErrCodeExpired  = errors.New("verification code expired or never issued")
	ErrCodeMismatch = errors.New("verification code mismatch")

	ErrRecordNotFound   = errors.New("record not found")
	ErrReminderNotFound = errors.New("reminder not found")
	ErrMissingSelector  = errors.New("either groupId or recordId is required")

	ErrMemberNotFound   = errors.New("family member not found")
	ErrMemberRoleExists = errors.New("family role already exists")

	ErrHospitalNotFound = errors.New("no hospitals matched")
)
