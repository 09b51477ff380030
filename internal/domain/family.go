package domain

// Member is a family member whose wounds are tracked under the owner's
// account. Role is unique per owner (one "mother", one "father", ...).
type Member struct {
	ID        int64  `db:"id" json:"memberId"`
	UserID    int64  `db:"user_id" json:"userId"`
	Role      string `db:"role" json:"role"`
	BirthYear int    `db:"birth_year" json:"birthYear"`
	Condition string `db:"wound_condition" json:"condition"`
	Frequency string `db:"dressing_freq" json:"frequency"`
}
