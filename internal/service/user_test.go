package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/woundtrack/backend/internal/domain"
	"github.com/woundtrack/backend/pkg/hash"
)

type fakeUserRepo struct {
	users  map[string]*domain.User
	nextID int64
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*domain.User)}
}

func (f *fakeUserRepo) Create(_ context.Context, user *domain.User) error {
	if _, exists := f.users[user.Email]; exists {
		return domain.ErrDuplicateEntry
	}
	f.nextID++
	user.ID = f.nextID
	clone := *user
	f.users[user.Email] = &clone
	return nil
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	user, ok := f.users[email]
	if !ok {
		return nil, domain.ErrNotFound
	}
	clone := *user
	return &clone, nil
}

func (f *fakeUserRepo) GetOneByID(_ context.Context, id int64) (*domain.User, error) {
	for _, user := range f.users {
		if user.ID == id {
			clone := *user
			return &clone, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeUserRepo) ExistsByEmail(_ context.Context, email string) (bool, error) {
	_, ok := f.users[email]
	return ok, nil
}

func (f *fakeUserRepo) UpdateName(_ context.Context, id int64, name string) error {
	for _, user := range f.users {
		if user.ID == id {
			user.Name = name
			return nil
		}
	}
	return domain.ErrNotFound
}

func (f *fakeUserRepo) UpdatePassword(_ context.Context, id int64, passwordHash string) error {
	for _, user := range f.users {
		if user.ID == id {
			user.Password = passwordHash
			return nil
		}
	}
	return domain.ErrNotFound
}

func (f *fakeUserRepo) UpdatePicture(_ context.Context, id int64, pictureURL string) error {
	for _, user := range f.users {
		if user.ID == id {
			user.Picture.String = pictureURL
			user.Picture.Valid = true
			return nil
		}
	}
	return domain.ErrNotFound
}

type stubTokenManager struct {
	token string
}

func (s *stubTokenManager) NewJWT(int64, string) (string, time.Duration, error) {
	return s.token, 15 * time.Minute, nil
}

func (s *stubTokenManager) Parse(string) (int64, error) {
	return 1, nil
}

func newTestUserService(repo *fakeUserRepo) *userService {
	return newUserService(repo, hash.NewBcryptHasher(4), &stubTokenManager{token: "stub-token"}, nil)
}

func registerInput(email string) RegisterInput {
	return RegisterInput{
		Name:     "Pat",
		Gender:   "female",
		Birthday: "1987-04-12",
		Email:    email,
		Password: "s3cret-pass",
	}
}

func TestUserRegister(t *testing.T) {
	ctx := context.Background()

	t.Run("registers and hashes the password", func(t *testing.T) {
		repo := newFakeUserRepo()
		svc := newTestUserService(repo)

		user, err := svc.Register(ctx, registerInput("pat@example.com"))
		require.NoError(t, err)
		assert.NotZero(t, user.ID)
		assert.NotEqual(t, "s3cret-pass", user.Password)
		assert.True(t, strings.HasPrefix(user.Password, "$2"))
	})

	t.Run("duplicate email is taken", func(t *testing.T) {
		repo := newFakeUserRepo()
		svc := newTestUserService(repo)

		_, err := svc.Register(ctx, registerInput("pat@example.com"))
		require.NoError(t, err)

		_, err = svc.Register(ctx, registerInput("pat@example.com"))
		assert.ErrorIs(t, err, ErrEmailTaken)
	})
}

func TestUserLogin(t *testing.T) {
	ctx := context.Background()

	t.Run("valid credentials produce a token", func(t *testing.T) {
		repo := newFakeUserRepo()
		svc := newTestUserService(repo)

		_, err := svc.Register(ctx, registerInput("pat@example.com"))
		require.NoError(t, err)

		token, err := svc.Login(ctx, "pat@example.com", "s3cret-pass")
		require.NoError(t, err)
		assert.Equal(t, "stub-token", token)
	})

	t.Run("wrong password is rejected", func(t *testing.T) {
		repo := newFakeUserRepo()
		svc := newTestUserService(repo)

		_, err := svc.Register(ctx, registerInput("pat@example.com"))
		require.NoError(t, err)

		_, err = svc.Login(ctx, "pat@example.com", "wrong-pass")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("unknown email is rejected the same way", func(t *testing.T) {
		svc := newTestUserService(newFakeUserRepo())

		_, err := svc.Login(ctx, "nobody@example.com", "whatever")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})
}

func TestUserResetPassword(t *testing.T) {
	ctx := context.Background()

	t.Run("new password replaces the old one", func(t *testing.T) {
		repo := newFakeUserRepo()
		svc := newTestUserService(repo)

		_, err := svc.Register(ctx, registerInput("pat@example.com"))
		require.NoError(t, err)

		require.NoError(t, svc.ResetPassword(ctx, "pat@example.com", "brand-new-pass"))

		_, err = svc.Login(ctx, "pat@example.com", "s3cret-pass")
		assert.ErrorIs(t, err, ErrInvalidCredentials)

		_, err = svc.Login(ctx, "pat@example.com", "brand-new-pass")
		assert.NoError(t, err)
	})

	t.Run("unknown email is not found", func(t *testing.T) {
		svc := newTestUserService(newFakeUserRepo())

		err := svc.ResetPassword(ctx, "nobody@example.com", "whatever")
		assert.ErrorIs(t, err, ErrUserNotFound)
	})
}

func TestUserVerifyPassword(t *testing.T) {
	ctx := context.Background()

	repo := newFakeUserRepo()
	svc := newTestUserService(repo)

	user, err := svc.Register(ctx, registerInput("pat@example.com"))
	require.NoError(t, err)

	assert.NoError(t, svc.VerifyPassword(ctx, user.ID, "s3cret-pass"))
	assert.ErrorIs(t, svc.VerifyPassword(ctx, user.ID, "wrong-pass"), ErrInvalidCredentials)
	assert.ErrorIs(t, svc.VerifyPassword(ctx, user.ID+1, "s3cret-pass"), ErrUserNotFound)
}

func TestUserExists(t *testing.T) {
	ctx := context.Background()

	repo := newFakeUserRepo()
	svc := newTestUserService(repo)

	_, err := svc.Register(ctx, registerInput("pat@example.com"))
	require.NoError(t, err)

	exists, err := svc.Exists(ctx, "pat@example.com")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = svc.Exists(ctx, "nobody@example.com")
	require.NoError(t, err)
	assert.False(t, exists)
}
