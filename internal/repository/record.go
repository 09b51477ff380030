package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/woundtrack/backend/internal/domain"
)

type recordRepository struct {
	db *sqlx.DB
}

func newRecordRepository(db *sqlx.DB) *recordRepository {
	return &recordRepository{
		db: db,
	}
}

func (r *recordRepository) Create(ctx context.Context, record *domain.Record) error {
	const op = "repository.record.Create"

	const query = `
	INSERT INTO record
	(user_id, member_id, date, photo, type, care_mode, reminder_enabled, chosen_kind, recording, display_name)
	VALUES (:user_id, :member_id, :date, :photo, :type, :care_mode, :reminder_enabled, :chosen_kind, :recording, :display_name)
	`

	res, err := r.db.NamedExecContext(ctx, query, record)
	if err != nil {
		return fmt.Errorf("%s: insert record failed: %w", op, err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("%s: last insert id failed: %w", op, err)
	}
	record.ID = id

	return nil
}

func (r *recordRepository) GetAllByUserID(ctx context.Context, userID int64) ([]domain.Record, error) {
	const op = "repository.record.GetAllByUserID"

	const query = `
	SELECT id, user_id, member_id, DATE_FORMAT(date, '%Y-%m-%d') AS date, photo, type, heal_time,
	       care_mode, reminder_enabled, chosen_kind, recording, display_name, group_id
	FROM record
	WHERE user_id = ?
	ORDER BY id ASC
	`

	records := []domain.Record{}
	if err := r.db.SelectContext(ctx, &records, query, userID); err != nil {
		return nil, fmt.Errorf("%s: select records failed: %w", op, err)
	}

	return records, nil
}

// GetReportRows returns the record/reminder left join ordered by
// (record id, reminder id). The aggregator relies on this order; it must
// not be changed here.
func (r *recordRepository) GetReportRows(ctx context.Context, userID int64) ([]domain.ReportRow, error) {
	const op = "repository.record.GetReportRows"

	const query = `
	SELECT
	    r.id, r.user_id, r.member_id,
	    DATE_FORMAT(r.date, '%Y-%m-%d') AS date,
	    r.photo, r.type, r.heal_time, r.care_mode, r.reminder_enabled,
	    r.chosen_kind, r.recording, r.display_name, r.group_id,
	    c.id        AS reminder_id,
	    c.user_id   AS reminder_user_id,
	    c.record_id AS reminder_record_id,
	    c.day       AS reminder_day,
	    c.time      AS reminder_time,
	    c.frequency AS reminder_freq
	FROM record r
	LEFT JOIN reminder c ON r.id = c.record_id
	WHERE r.user_id = ?
	ORDER BY r.id ASC, c.id ASC
	`

	rows := []domain.ReportRow{}
	if err := r.db.SelectContext(ctx, &rows, query, userID); err != nil {
		return nil, fmt.Errorf("%s: select report rows failed: %w", op, err)
	}

	return rows, nil
}

func (r *recordRepository) AssignGroup(ctx context.Context, userID, recordID1, recordID2, groupID int64) error {
	const op = "repository.record.AssignGroup"

	const query = `
	UPDATE record SET group_id = ? WHERE user_id = ? AND id IN (?, ?)
	`

	res, err := r.db.ExecContext(ctx, query, groupID, userID, recordID1, recordID2)
	if err != nil {
		return fmt.Errorf("%s: update group failed: %w", op, err)
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

func (r *recordRepository) ListGroups(ctx context.Context, userID int64) ([]int64, error) {
	const op = "repository.record.ListGroups"

	const query = `
	SELECT DISTINCT group_id FROM record WHERE user_id = ? AND group_id IS NOT NULL
	`

	groups := []int64{}
	if err := r.db.SelectContext(ctx, &groups, query, userID); err != nil {
		return nil, fmt.Errorf("%s: select groups failed: %w", op, err)
	}

	return groups, nil
}

func (r *recordRepository) LookupGroup(ctx context.Context, userID, recordID int64) (sql.NullInt64, error) {
	const op = "repository.record.LookupGroup"

	const query = `
	SELECT group_id FROM record WHERE user_id = ? AND id = ?
	`

	var groupID sql.NullInt64
	if err := r.db.GetContext(ctx, &groupID, query, userID, recordID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return sql.NullInt64{}, domain.ErrNotFound
		}
		return sql.NullInt64{}, fmt.Errorf("%s: select group failed: %w", op, err)
	}

	return groupID, nil
}

func (r *recordRepository) UpdateHealTimeByGroup(ctx context.Context, userID, groupID int64, healTime string) error {
	const op = "repository.record.UpdateHealTimeByGroup"

	const query = `
	UPDATE record SET heal_time = ? WHERE user_id = ? AND group_id = ?
	`

	return r.updateHealTime(ctx, op, query, healTime, userID, groupID)
}

func (r *recordRepository) UpdateHealTimeByRecord(ctx context.Context, userID, recordID int64, healTime string) error {
	const op = "repository.record.UpdateHealTimeByRecord"

	const query = `
	UPDATE record SET heal_time = ? WHERE user_id = ? AND id = ?
	`

	return r.updateHealTime(ctx, op, query, healTime, userID, recordID)
}

func (r *recordRepository) updateHealTime(ctx context.Context, op, query, healTime string, args ...interface{}) error {
	res, err := r.db.ExecContext(ctx, query, append([]interface{}{healTime}, args...)...)
	if err != nil {
		return fmt.Errorf("%s: update heal time failed: %w", op, err)
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
