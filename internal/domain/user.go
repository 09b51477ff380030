package domain

import (
	"database/sql"
	"time"
)

type User struct {
	ID        int64          `db:"id" json:"id"`
	Name      string         `db:"name" json:"name"`
	Gender    string         `db:"gender" json:"gender"`
	Birthday  string         `db:"birthday" json:"birthday"`
	Picture   sql.NullString `db:"picture" json:"picture"`
	Email     string         `db:"email" json:"email"`
	Password  string         `db:"password" json:"-"`
	Condition sql.NullString `db:"wound_condition" json:"condition"`
	Frequency sql.NullString `db:"dressing_freq" json:"frequency"`

	CreatedAt time.Time `db:"created_at" json:"-"`
	UpdatedAt time.Time `db:"updated_at" json:"-"`
}
