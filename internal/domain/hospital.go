package domain

import "database/sql"

type Hospital struct {
	ID       int64          `db:"id" json:"id"`
	Name     string         `db:"name" json:"name"`
	City     string         `db:"city" json:"city"`
	District string         `db:"district" json:"district"`
	Address  string         `db:"address" json:"address"`
	Lat      float64        `db:"lat" json:"lat"`
	Lng      float64        `db:"lng" json:"lng"`
	Phone    sql.NullString `db:"phone" json:"phone"`

	// DistanceM is filled only by the nearby query.
	DistanceM sql.NullFloat64 `db:"distance_m" json:"distanceM,omitempty"`

	// PhotoReference is enriched from the places API, never persisted.
	PhotoReference *string `db:"-" json:"photoReference"`
}
