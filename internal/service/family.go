package service

import (
	"context"
	"fmt"

	"github.com/woundtrack/backend/internal/domain"
	"github.com/woundtrack/backend/internal/repository"
)

type familyService struct {
	families repository.Families
}

func newFamilyService(families repository.Families) *familyService {
	return &familyService{
		families: families,
	}
}

func (s *familyService) GetAllByUserID(ctx context.Context, userID int64) ([]domain.Member, error) {
	members, err := s.families.GetAllByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get family members failed: %w", err)
	}

	if len(members) == 0 {
		return nil, ErrMemberNotFound
	}

	return members, nil
}

func (s *familyService) Add(ctx context.Context, member *domain.Member) (*domain.Member, error) {
	exists, err := s.families.ExistsRole(ctx, member.UserID, member.Role)
	if err != nil {
		return nil, fmt.Errorf("check family role failed: %w", err)
	}
	if exists {
		return nil, ErrMemberRoleExists
	}

	if err := s.families.Create(ctx, member); err != nil {
		return nil, fmt.Errorf("create family member failed: %w", err)
	}

	return s.families.GetOneByID(ctx, member.ID)
}
