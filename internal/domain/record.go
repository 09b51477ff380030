package domain

import "database/sql"

// Record is a single diagnostic photo entry. GroupID clusters several
// records belonging to the same owner into one healing episode; it stays
// NULL until the caller links records together.
type Record struct {
	ID              int64          `db:"id" json:"id"`
	UserID          int64          `db:"user_id" json:"userId"`
	MemberID        sql.NullInt64  `db:"member_id" json:"memberId"`
	Date            string         `db:"date" json:"date"`
	PhotoURL        string         `db:"photo" json:"photo"`
	Type            string         `db:"type" json:"type"`
	HealTime        sql.NullString `db:"heal_time" json:"healTime"`
	CareMode        string         `db:"care_mode" json:"careMode"`
	ReminderEnabled bool           `db:"reminder_enabled" json:"reminderEnabled"`
	ChosenKind      string         `db:"chosen_kind" json:"chosenKind"`
	Recording       string         `db:"recording" json:"recording"`
	DisplayName     sql.NullString `db:"display_name" json:"displayName"`
	GroupID         sql.NullInt64  `db:"group_id" json:"groupId"`
}

// ReportRow is one row of the record/reminder left join. Reminder columns
// are nullable because a record may have no reminders at all.
type ReportRow struct {
	Record
	ReminderID       sql.NullInt64  `db:"reminder_id"`
	ReminderUserID   sql.NullInt64  `db:"reminder_user_id"`
	ReminderRecordID sql.NullInt64  `db:"reminder_record_id"`
	ReminderDay      sql.NullString `db:"reminder_day"`
	ReminderTime     sql.NullString `db:"reminder_time"`
	ReminderFreq     sql.NullString `db:"reminder_freq"`
}

// Report is a record enriched with its reminders, assembled at query time.
type Report struct {
	Record
	Reminders []Reminder `json:"reminders"`
}
