package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/woundtrack/backend/internal/domain"
)

type reminderRepository struct {
	db *sqlx.DB
}

func newReminderRepository(db *sqlx.DB) *reminderRepository {
	return &reminderRepository{
		db: db,
	}
}

func (r *reminderRepository) Create(ctx context.Context, reminder *domain.Reminder) error {
	const op = "repository.reminder.Create"

	const query = `
	INSERT INTO reminder (user_id, record_id, member_id, day, time, frequency)
	VALUES (:user_id, :record_id, :member_id, :day, :time, :frequency)
	`

	res, err := r.db.NamedExecContext(ctx, query, reminder)
	if err != nil {
		return fmt.Errorf("%s: insert reminder failed: %w", op, err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("%s: last insert id failed: %w", op, err)
	}
	reminder.ID = id

	return nil
}

func (r *reminderRepository) GetAllByUserID(ctx context.Context, userID int64) ([]domain.Reminder, error) {
	const op = "repository.reminder.GetAllByUserID"

	const query = `
	SELECT id, user_id, record_id, member_id, day, time, frequency
	FROM reminder
	WHERE user_id = ?
	ORDER BY id ASC
	`

	reminders := []domain.Reminder{}
	if err := r.db.SelectContext(ctx, &reminders, query, userID); err != nil {
		return nil, fmt.Errorf("%s: select reminders failed: %w", op, err)
	}

	return reminders, nil
}

func (r *reminderRepository) UpdateTime(ctx context.Context, userID, recordID int64, timeOfDay string) error {
	const op = "repository.reminder.UpdateTime"

	const query = `
	UPDATE reminder SET time = ? WHERE record_id = ? AND user_id = ?
	`

	res, err := r.db.ExecContext(ctx, query, timeOfDay, recordID, userID)
	if err != nil {
		return fmt.Errorf("%s: update reminder time failed: %w", op, err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: get rows affected failed: %w", op, err)
	}

	if rows == 0 {
		return domain.ErrNotFound
	}

	return nil
}

func (r *reminderRepository) DeleteByRecord(ctx context.Context, userID, recordID int64) error {
	const op = "repository.reminder.DeleteByRecord"

	const query = `
	DELETE FROM reminder WHERE user_id = ? AND record_id = ?
	`

	res, err := r.db.ExecContext(ctx, query, userID, recordID)
	if err != nil {
		return fmt.Errorf("%s: delete reminders failed: %w", op, err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: get rows affected failed: %w", op, err)
	}

	if rows == 0 {
		return domain.ErrNotFound
	}

	return nil
}
