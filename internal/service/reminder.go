package service

import (
	"context"
	"fmt"

	"github.com/woundtrack/backend/internal/domain"
	"github.com/woundtrack/backend/internal/repository"
)

type reminderService struct {
	reminders repository.Reminders
}

func newReminderService(reminders repository.Reminders) *reminderService {
	return &reminderService{
		reminders: reminders,
	}
}

func (s *reminderService) Create(ctx context.Context, reminder *domain.Reminder) error {
	if err := s.reminders.Create(ctx, reminder); err != nil {
		return fmt.Errorf("create reminder failed: %w", err)
	}

	return nil
}

func (s *reminderService) GetAllByUserID(ctx context.Context, userID int64) ([]domain.Reminder, error) {
	reminders, err := s.reminders.GetAllByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get reminders failed: %w", err)
	}

	if len(reminders) == 0 {
		return nil, ErrReminderNotFound
	}

	return reminders, nil
}

func (s *reminderService) UpdateTime(ctx context.Context, userID, recordID int64, timeOfDay string) error {
	return s.reminders.UpdateTime(ctx, userID, recordID, timeOfDay)
}

func (s *reminderService) Delete(ctx context.Context, userID, recordID int64) error {
	return s.reminders.DeleteByRecord(ctx, userID, recordID)
}
