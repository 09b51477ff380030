package service

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/woundtrack/backend/internal/domain"
	"github.com/woundtrack/backend/internal/repository"
	"github.com/woundtrack/backend/internal/storage"
)

type recordService struct {
	records repository.Records
	storage *storage.Client
}

func newRecordService(records repository.Records, storage *storage.Client) *recordService {
	return &recordService{
		records: records,
		storage: storage,
	}
}

type CreateRecordInput struct {
	UserID          int64
	MemberID        *int64
	Date            string
	Photo           []byte
	Type            string
	CareMode        string
	ReminderEnabled bool
	ChosenKind      string
	Recording       string
	DisplayName     string
}

func (s *recordService) Create(ctx context.Context, input CreateRecordInput) (*domain.Record, error) {
	photoURL, err := s.storage.Upload(ctx, input.Photo, uuid.NewString())
	if err != nil {
		return nil, fmt.Errorf("upload record photo failed: %w", err)
	}

	record := &domain.Record{
		UserID:          input.UserID,
		Date:            input.Date,
		PhotoURL:        photoURL,
		Type:            input.Type,
		CareMode:        input.CareMode,
		ReminderEnabled: input.ReminderEnabled,
		ChosenKind:      input.ChosenKind,
		Recording:       input.Recording,
	}
	if input.MemberID != nil {
		record.MemberID = sql.NullInt64{Int64: *input.MemberID, Valid: true}
	}
	if input.DisplayName != "" {
		record.DisplayName = sql.NullString{String: input.DisplayName, Valid: true}
	}

	if err := s.records.Create(ctx, record); err != nil {
		return nil, fmt.Errorf("create record failed: %w", err)
	}

	return record, nil
}

func (s *recordService) GetAllByUserID(ctx context.Context, userID int64) ([]domain.Record, error) {
	records, err := s.records.GetAllByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get records failed: %w", err)
	}

	if len(records) == 0 {
		return nil, ErrRecordNotFound
	}

	return records, nil
}

// GetReportsWithReminders assembles one report per record with its
// reminders nested inside, in (record id, reminder id) order.
func (s *recordService) GetReportsWithReminders(ctx context.Context, userID int64) ([]domain.Report, error) {
	rows, err := s.records.GetReportRows(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get report rows failed: %w", err)
	}

	return buildReports(rows), nil
}

// buildReports folds the ordered join rows into reports. Row order is
// authoritative: the first row for a record opens its report, and every
// reminder row appends to the already-open report. A record without
// reminders yields an empty (non-nil) reminder slice.
func buildReports(rows []domain.ReportRow) []domain.Report {
	reports := []domain.Report{}
	index := make(map[int64]int, len(rows))

	for _, row := range rows {
		pos, seen := index[row.ID]
		if !seen {
			pos = len(reports)
			index[row.ID] = pos
			reports = append(reports, domain.Report{
				Record:    row.Record,
				Reminders: []domain.Reminder{},
			})
		}

		if row.ReminderID.Valid {
			reports[pos].Reminders = append(reports[pos].Reminders, domain.Reminder{
				ID:        row.ReminderID.Int64,
				UserID:    row.ReminderUserID.Int64,
				RecordID:  row.ReminderRecordID.Int64,
				Day:       row.ReminderDay.String,
				Time:      row.ReminderTime.String,
				Frequency: row.ReminderFreq.String,
			})
		}
	}

	return reports
}

func (s *recordService) AssignGroup(ctx context.Context, userID, recordID1, recordID2, groupID int64) error {
	return s.records.AssignGroup(ctx, userID, recordID1, recordID2, groupID)
}

func (s *recordService) ListGroups(ctx context.Context, userID int64) ([]int64, error) {
	return s.records.ListGroups(ctx, userID)
}

func (s *recordService) LookupGroup(ctx context.Context, userID, recordID int64) (sql.NullInt64, error) {
	return s.records.LookupGroup(ctx, userID, recordID)
}

// UpdateHealTime cascades over the whole group when groupID is given,
// otherwise targets the single record. One of the two selectors must be
// present; groupID wins when both are.
func (s *recordService) UpdateHealTime(ctx context.Context, userID int64, groupID, recordID *int64, healTime string) error {
	switch {
	case groupID != nil:
		return s.records.UpdateHealTimeByGroup(ctx, userID, *groupID, healTime)
	case recordID != nil:
		return s.records.UpdateHealTimeByRecord(ctx, userID, *recordID, healTime)
	default:
		return ErrMissingSelector
	}
}
