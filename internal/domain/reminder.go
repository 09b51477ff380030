package domain

import "database/sql"

// Reminder is a recurring self-care callout attached to a record.
type Reminder struct {
	ID        int64         `db:"id" json:"id"`
	UserID    int64         `db:"user_id" json:"userId"`
	RecordID  int64         `db:"record_id" json:"recordId"`
	MemberID  sql.NullInt64 `db:"member_id" json:"memberId"`
	Day       string        `db:"day" json:"day"`
	Time      string        `db:"time" json:"time"`
	Frequency string        `db:"frequency" json:"frequency"`
}
