package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/woundtrack/backend/internal/domain"
)

type fakeFamilyRepo struct {
	members []domain.Member
	nextID  int64
}

func (f *fakeFamilyRepo) Create(_ context.Context, member *domain.Member) error {
	f.nextID++
	member.ID = f.nextID
	f.members = append(f.members, *member)
	return nil
}

func (f *fakeFamilyRepo) GetAllByUserID(_ context.Context, userID int64) ([]domain.Member, error) {
	var out []domain.Member
	for _, m := range f.members {
		if m.UserID == userID {
			out = append(out, m)
		}
	}
	return out, nil
}

func (f *fakeFamilyRepo) GetOneByID(_ context.Context, id int64) (*domain.Member, error) {
	for _, m := range f.members {
		if m.ID == id {
			clone := m
			return &clone, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeFamilyRepo) ExistsRole(_ context.Context, userID int64, role string) (bool, error) {
	for _, m := range f.members {
		if m.UserID == userID && m.Role == role {
			return true, nil
		}
	}
	return false, nil
}

func TestFamilyAdd(t *testing.T) {
	ctx := context.Background()

	t.Run("adds a member and returns the stored row", func(t *testing.T) {
		svc := newFamilyService(&fakeFamilyRepo{})

		member, err := svc.Add(ctx, &domain.Member{UserID: 42, Role: "mother", BirthYear: 1958})
		require.NoError(t, err)
		assert.NotZero(t, member.ID)
		assert.Equal(t, "mother", member.Role)
	})

	t.Run("duplicate role for the same owner is rejected", func(t *testing.T) {
		svc := newFamilyService(&fakeFamilyRepo{})

		_, err := svc.Add(ctx, &domain.Member{UserID: 42, Role: "mother", BirthYear: 1958})
		require.NoError(t, err)

		_, err = svc.Add(ctx, &domain.Member{UserID: 42, Role: "mother", BirthYear: 1960})
		assert.ErrorIs(t, err, ErrMemberRoleExists)
	})

	t.Run("same role under another owner is fine", func(t *testing.T) {
		svc := newFamilyService(&fakeFamilyRepo{})

		_, err := svc.Add(ctx, &domain.Member{UserID: 42, Role: "mother", BirthYear: 1958})
		require.NoError(t, err)

		_, err = svc.Add(ctx, &domain.Member{UserID: 99, Role: "mother", BirthYear: 1960})
		assert.NoError(t, err)
	})
}

func TestFamilyGetAllByUserID(t *testing.T) {
	ctx := context.Background()

	t.Run("empty family is not found", func(t *testing.T) {
		svc := newFamilyService(&fakeFamilyRepo{})

		_, err := svc.GetAllByUserID(ctx, 42)
		assert.ErrorIs(t, err, ErrMemberNotFound)
	})

	t.Run("lists only the owner's members", func(t *testing.T) {
		repo := &fakeFamilyRepo{}
		svc := newFamilyService(repo)

		_, err := svc.Add(ctx, &domain.Member{UserID: 42, Role: "mother", BirthYear: 1958})
		require.NoError(t, err)
		_, err = svc.Add(ctx, &domain.Member{UserID: 99, Role: "father", BirthYear: 1955})
		require.NoError(t, err)

		members, err := svc.GetAllByUserID(ctx, 42)
		require.NoError(t, err)
		require.Len(t, members, 1)
		assert.Equal(t, "mother", members[0].Role)
	})
}
