package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/woundtrack/backend/internal/config"
	"github.com/woundtrack/backend/internal/domain"
)

// fakeCodeStore keeps codes and cooldown markers in memory. TTLs are
// recorded but never expire on their own; tests drop keys explicitly.
type fakeCodeStore struct {
	mu        sync.Mutex
	codes     map[string]string
	cooldowns map[string]struct{}
}

func newFakeCodeStore() *fakeCodeStore {
	return &fakeCodeStore{
		codes:     make(map[string]string),
		cooldowns: make(map[string]struct{}),
	}
}

func (f *fakeCodeStore) SetCode(_ context.Context, email, code string, _ time.Duration) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.codes[email] = code
	return nil
}

func (f *fakeCodeStore) GetCode(_ context.Context, email string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	code, ok := f.codes[email]
	if !ok {
		return "", domain.ErrNotFound
	}
	return code, nil
}

func (f *fakeCodeStore) AcquireCooldown(_ context.Context, email string, _ time.Duration) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, held := f.cooldowns[email]; held {
		return false, nil
	}
	f.cooldowns[email] = struct{}{}
	return true, nil
}

func (f *fakeCodeStore) expire(email string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.codes, email)
}

func (f *fakeCodeStore) releaseCooldown(email string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.cooldowns, email)
}

type captureDispatcher struct {
	mu    sync.Mutex
	sent  []string
	err   error
	codes []string
}

func (d *captureDispatcher) Dispatch(_ context.Context, email, code string) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.sent = append(d.sent, email)
	d.codes = append(d.codes, code)
	return d.err
}

func newTestVerification(store *fakeCodeStore, dispatcher *captureDispatcher) *verificationService {
	return newVerificationService(store, dispatcher, config.VerificationConfig{
		TTL:      5 * time.Minute,
		Cooldown: time.Minute,
	})
}

func TestVerificationIssue(t *testing.T) {
	ctx := context.Background()

	t.Run("issues and dispatches a six digit code", func(t *testing.T) {
		store := newFakeCodeStore()
		dispatcher := &captureDispatcher{}
		svc := newTestVerification(store, dispatcher)

		require.NoError(t, svc.Issue(ctx, "pat@example.com"))

		require.Len(t, dispatcher.codes, 1)
		code := dispatcher.codes[0]
		assert.Len(t, code, 6)
		assert.GreaterOrEqual(t, code, "100000")
		assert.LessOrEqual(t, code, "999999")

		stored, err := store.GetCode(ctx, "pat@example.com")
		require.NoError(t, err)
		assert.Equal(t, code, stored)
	})

	t.Run("second issue within cooldown is rejected", func(t *testing.T) {
		store := newFakeCodeStore()
		dispatcher := &captureDispatcher{}
		svc := newTestVerification(store, dispatcher)

		require.NoError(t, svc.Issue(ctx, "pat@example.com"))
		err := svc.Issue(ctx, "pat@example.com")
		assert.ErrorIs(t, err, ErrRateLimited)
		assert.Len(t, dispatcher.sent, 1)
	})

	t.Run("issue succeeds again after cooldown release", func(t *testing.T) {
		store := newFakeCodeStore()
		dispatcher := &captureDispatcher{}
		svc := newTestVerification(store, dispatcher)

		require.NoError(t, svc.Issue(ctx, "pat@example.com"))
		store.releaseCooldown("pat@example.com")
		require.NoError(t, svc.Issue(ctx, "pat@example.com"))
		assert.Len(t, dispatcher.sent, 2)
	})

	t.Run("dispatch failure is surfaced but code stays stored", func(t *testing.T) {
		store := newFakeCodeStore()
		dispatcher := &captureDispatcher{err: errors.New("smtp down")}
		svc := newTestVerification(store, dispatcher)

		err := svc.Issue(ctx, "pat@example.com")
		require.Error(t, err)

		_, err = store.GetCode(ctx, "pat@example.com")
		assert.NoError(t, err)
	})

	t.Run("cooldown applies per email", func(t *testing.T) {
		store := newFakeCodeStore()
		dispatcher := &captureDispatcher{}
		svc := newTestVerification(store, dispatcher)

		require.NoError(t, svc.Issue(ctx, "a@example.com"))
		require.NoError(t, svc.Issue(ctx, "b@example.com"))
		assert.Len(t, dispatcher.sent, 2)
	})
}

func TestVerificationValidate(t *testing.T) {
	ctx := context.Background()

	t.Run("matching code passes and is not consumed", func(t *testing.T) {
		store := newFakeCodeStore()
		dispatcher := &captureDispatcher{}
		svc := newTestVerification(store, dispatcher)

		require.NoError(t, svc.Issue(ctx, "pat@example.com"))
		code := dispatcher.codes[0]

		require.NoError(t, svc.Validate(ctx, "pat@example.com", code))
		// validation must be repeatable while the code is alive
		require.NoError(t, svc.Validate(ctx, "pat@example.com", code))
	})

	t.Run("wrong code is a mismatch", func(t *testing.T) {
		store := newFakeCodeStore()
		dispatcher := &captureDispatcher{}
		svc := newTestVerification(store, dispatcher)

		require.NoError(t, svc.Issue(ctx, "pat@example.com"))
		err := svc.Validate(ctx, "pat@example.com", "000000")
		assert.ErrorIs(t, err, ErrCodeMismatch)
	})

	t.Run("absent code reads as expired", func(t *testing.T) {
		store := newFakeCodeStore()
		dispatcher := &captureDispatcher{}
		svc := newTestVerification(store, dispatcher)

		err := svc.Validate(ctx, "nobody@example.com", "123456")
		assert.ErrorIs(t, err, ErrCodeExpired)
	})

	t.Run("expired code reads as expired", func(t *testing.T) {
		store := newFakeCodeStore()
		dispatcher := &captureDispatcher{}
		svc := newTestVerification(store, dispatcher)

		require.NoError(t, svc.Issue(ctx, "pat@example.com"))
		store.expire("pat@example.com")

		err := svc.Validate(ctx, "pat@example.com", dispatcher.codes[0])
		assert.ErrorIs(t, err, ErrCodeExpired)
	})
}

func TestGenerateCodeRange(t *testing.T) {
	for i := 0; i < 200; i++ {
		code, err := generateCode()
		require.NoError(t, err)
		require.Len(t, code, 6)
		require.GreaterOrEqual(t, code, "100000")
		require.LessOrEqual(t, code, "999999")
	}
}
