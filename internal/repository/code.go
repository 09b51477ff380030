package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/woundtrack/backend/internal/domain"
)

const (
	codeKeyPrefix     = "reset_code:"
	cooldownKeyPrefix = "rate_limit:"
)

type codeRepository struct {
	cache redis.UniversalClient
}

func newCodeRepository(cache redis.UniversalClient) *codeRepository {
	return &codeRepository{
		cache: cache,
	}
}

func (r *codeRepository) SetCode(ctx context.Context, email, code string, ttl time.Duration) error {
	const op = "repository.code.SetCode"

	if err := r.cache.Set(ctx, codeKeyPrefix+email, code, ttl).Err(); err != nil {
		return fmt.Errorf("%s: set reset code failed: %w", op, err)
	}

	return nil
}

func (r *codeRepository) GetCode(ctx context.Context, email string) (string, error) {
	const op = "repository.code.GetCode"

	code, err := r.cache.Get(ctx, codeKeyPrefix+email).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", domain.ErrNotFound
		}
		return "", fmt.Errorf("%s: get reset code failed: %w", op, err)
	}

	return code, nil
}

// AcquireCooldown sets the cooldown marker only if it does not exist yet.
// SET NX is a single round trip, so two concurrent issuances for the same
// email cannot both pass the gate.
func (r *codeRepository) AcquireCooldown(ctx context.Context, email string, ttl time.Duration) (bool, error) {
	const op = "repository.code.AcquireCooldown"

	ok, err := r.cache.SetNX(ctx, cooldownKeyPrefix+email, "1", ttl).Result()
	if err != nil {
		return false, fmt.Errorf("%s: set cooldown marker failed: %w", op, err)
	}

	return ok, nil
}
