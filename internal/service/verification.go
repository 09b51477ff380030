package service

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"strconv"

	"github.com/woundtrack/backend/internal/config"
	"github.com/woundtrack/backend/internal/domain"
	"github.com/woundtrack/backend/internal/repository"
)

type verificationService struct {
	codes      repository.Codes
	dispatcher CodeDispatcher
	config     config.VerificationConfig
}

func newVerificationService(codes repository.Codes, dispatcher CodeDispatcher, config config.VerificationConfig) *verificationService {
	return &verificationService{
		codes:      codes,
		dispatcher: dispatcher,
		config:     config,
	}
}

// Issue generates a fresh 6-digit code for email, stores it with a TTL
// and hands it to the dispatcher. The cooldown marker is acquired first:
// it is the atomic gate that keeps concurrent issuances from both
// succeeding. A dispatch failure is reported but never rolls back the
// stored code or the cooldown.
func (s *verificationService) Issue(ctx context.Context, email string) error {
	acquired, err := s.codes.AcquireCooldown(ctx, email, s.config.Cooldown)
	if err != nil {
		return fmt.Errorf("acquire cooldown failed: %w", err)
	}
	if !acquired {
		return ErrRateLimited
	}

	code, err := generateCode()
	if err != nil {
		return fmt.Errorf("generate code failed: %w", err)
	}

	if err := s.codes.SetCode(ctx, email, code, s.config.TTL); err != nil {
		return fmt.Errorf("store code failed: %w", err)
	}

	if err := s.dispatcher.Dispatch(ctx, email, code); err != nil {
		return fmt.Errorf("dispatch code failed: %w", err)
	}

	return nil
}

// Validate compares the submitted code with the stored one. An absent
// key means the code expired or was never issued. A successful match
// does not consume the code; it stays valid until its TTL runs out.
func (s *verificationService) Validate(ctx context.Context, email, code string) error {
	saved, err := s.codes.GetCode(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return ErrCodeExpired
		}
		return fmt.Errorf("get code failed: %w", err)
	}

	if saved != code {
		return ErrCodeMismatch
	}

	return nil
}

// generateCode draws a uniformly random 6-digit code in [100000, 999999].
func generateCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", err
	}

	return strconv.FormatInt(n.Int64()+100000, 10), nil
}
