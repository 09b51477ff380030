package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/woundtrack/backend/internal/domain"
	"github.com/woundtrack/backend/internal/repository"
	"github.com/woundtrack/backend/internal/storage"
	"github.com/woundtrack/backend/pkg/auth"
	"github.com/woundtrack/backend/pkg/hash"
)

type userService struct {
	users        repository.Users
	hasher       hash.PasswordHasher
	tokenManager auth.TokenManager
	storage      *storage.Client
}

func newUserService(users repository.Users, hasher hash.PasswordHasher, tokenManager auth.TokenManager, storage *storage.Client) *userService {
	return &userService{
		users:        users,
		hasher:       hasher,
		tokenManager: tokenManager,
		storage:      storage,
	}
}

type RegisterInput struct {
	Name      string
	Gender    string
	Birthday  string
	Email     string
	Password  string
	Condition string
	Frequency string
	Picture   []byte
}

func (s *userService) Register(ctx context.Context, input RegisterInput) (*domain.User, error) {
	taken, err := s.users.ExistsByEmail(ctx, input.Email)
	if err != nil {
		return nil, fmt.Errorf("check email failed: %w", err)
	}
	if taken {
		return nil, ErrEmailTaken
	}

	user := &domain.User{
		Name:     input.Name,
		Gender:   input.Gender,
		Birthday: input.Birthday,
		Email:    input.Email,
	}
	if input.Condition != "" {
		user.Condition = sql.NullString{String: input.Condition, Valid: true}
	}
	if input.Frequency != "" {
		user.Frequency = sql.NullString{String: input.Frequency, Valid: true}
	}

	if len(input.Picture) > 0 {
		pictureURL, err := s.storage.Upload(ctx, input.Picture, "user_"+uuid.NewString())
		if err != nil {
			return nil, fmt.Errorf("upload picture failed: %w", err)
		}
		user.Picture = sql.NullString{String: pictureURL, Valid: true}
	}

	user.Password, err = s.hasher.Hash(input.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password failed: %w", err)
	}

	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, domain.ErrDuplicateEntry) {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("create user failed: %w", err)
	}

	return user, nil
}

func (s *userService) Login(ctx context.Context, email, password string) (string, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", fmt.Errorf("get user by email failed: %w", err)
	}

	if err := s.hasher.Compare(user.Password, password); err != nil {
		if errors.Is(err, hash.ErrPasswordMismatch) {
			return "", ErrInvalidCredentials
		}
		return "", fmt.Errorf("compare password failed: %w", err)
	}

	accessToken, _, err := s.tokenManager.NewJWT(user.ID, user.Email)
	if err != nil {
		return "", fmt.Errorf("generate access token failed: %w", err)
	}

	return accessToken, nil
}

func (s *userService) Exists(ctx context.Context, email string) (bool, error) {
	return s.users.ExistsByEmail(ctx, email)
}

func (s *userService) ResetPassword(ctx context.Context, email, newPassword string) error {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return ErrUserNotFound
		}
		return fmt.Errorf("get user by email failed: %w", err)
	}

	hashed, err := s.hasher.Hash(newPassword)
	if err != nil {
		return fmt.Errorf("hash password failed: %w", err)
	}

	return s.users.UpdatePassword(ctx, user.ID, hashed)
}

func (s *userService) GetOneByID(ctx context.Context, id int64) (*domain.User, error) {
	user, err := s.users.GetOneByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("get user by id failed: %w", err)
	}

	return user, nil
}

func (s *userService) UpdateName(ctx context.Context, id int64, name string) error {
	if err := s.users.UpdateName(ctx, id, name); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return ErrUserNotFound
		}
		return fmt.Errorf("update name failed: %w", err)
	}

	return nil
}

func (s *userService) VerifyPassword(ctx context.Context, id int64, password string) error {
	user, err := s.users.GetOneByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return ErrUserNotFound
		}
		return fmt.Errorf("get user by id failed: %w", err)
	}

	if err := s.hasher.Compare(user.Password, password); err != nil {
		if errors.Is(err, hash.ErrPasswordMismatch) {
			return ErrInvalidCredentials
		}
		return fmt.Errorf("compare password failed: %w", err)
	}

	return nil
}

func (s *userService) UpdatePassword(ctx context.Context, id int64, password string) error {
	hashed, err := s.hasher.Hash(password)
	if err != nil {
		return fmt.Errorf("hash password failed: %w", err)
	}

	if err := s.users.UpdatePassword(ctx, id, hashed); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return ErrUserNotFound
		}
		return fmt.Errorf("update password failed: %w", err)
	}

	return nil
}

func (s *userService) UpdatePicture(ctx context.Context, id int64, picture []byte) (string, error) {
	pictureURL, err := s.storage.Upload(ctx, picture, fmt.Sprintf("user_%d_%s", id, uuid.NewString()))
	if err != nil {
		return "", fmt.Errorf("upload picture failed: %w", err)
	}

	if err := s.users.UpdatePicture(ctx, id, pictureURL); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return "", ErrUserNotFound
		}
		return "", fmt.Errorf("update picture failed: %w", err)
	}

	return pictureURL, nil
}
