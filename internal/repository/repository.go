package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/woundtrack/backend/internal/domain"

	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
)

type Repositories struct {
	Users     Users
	Records   Records
	Reminders Reminders
	Families  Families
	Hospitals Hospitals
	Codes     Codes
}

func NewRepositories(db *sqlx.DB, cache redis.UniversalClient) *Repositories {
	return &Repositories{
		Users:     newUserRepository(db),
		Records:   newRecordRepository(db),
		Reminders: newReminderRepository(db),
		Families:  newFamilyRepository(db),
		Hospitals: newHospitalRepository(db),
		Codes:     newCodeRepository(cache),
	}
}

type Users interface {
	Create(ctx context.Context, user *domain.User) error
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetOneByID(ctx context.Context, id int64) (*domain.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	UpdateName(ctx context.Context, id int64, name string) error
	UpdatePassword(ctx context.Context, id int64, passwordHash string) error
	UpdatePicture(ctx context.Context, id int64, pictureURL string) error
}

type Records interface {
	Create(ctx context.Context, record *domain.Record) error
	GetAllByUserID(ctx context.Context, userID int64) ([]domain.Record, error)
	GetReportRows(ctx context.Context, userID int64) ([]domain.ReportRow, error)
	AssignGroup(ctx context.Context, userID, recordID1, recordID2, groupID int64) error
	ListGroups(ctx context.Context, userID int64) ([]int64, error)
	LookupGroup(ctx context.Context, userID, recordID int64) (sql.NullInt64, error)
	UpdateHealTimeByGroup(ctx context.Context, userID, groupID int64, healTime string) error
	UpdateHealTimeByRecord(ctx context.Context, userID, recordID int64, healTime string) error
}

type Reminders interface {
	Create(ctx context.Context, reminder *domain.Reminder) error
	GetAllByUserID(ctx context.Context, userID int64) ([]domain.Reminder, error)
	UpdateTime(ctx context.Context, userID, recordID int64, timeOfDay string) error
	DeleteByRecord(ctx context.Context, userID, recordID int64) error
}

type Families interface {
	Create(ctx context.Context, member *domain.Member) error
	GetAllByUserID(ctx context.Context, userID int64) ([]domain.Member, error)
	GetOneByID(ctx context.Context, id int64) (*domain.Member, error)
	ExistsRole(ctx context.Context, userID int64, role string) (bool, error)
}

type Hospitals interface {
	GetDistricts(ctx context.Context, city string) ([]string, error)
	GetDepartments(ctx context.Context, city, district string) ([]string, error)
	Search(ctx context.Context, city, district, department string) ([]domain.Hospital, error)
	Nearby(ctx context.Context, lat, lng float64, limit int) ([]domain.Hospital, error)
}

// Codes is the identity-store contract behind the code issuer: plain
// get/set-with-expiry plus an atomic check-and-set for the cooldown marker.
type Codes interface {
	SetCode(ctx context.Context, email, code string, ttl time.Duration) error
	GetCode(ctx context.Context, email string) (string, error)
	AcquireCooldown(ctx context.Context, email string, ttl time.Duration) (bool, error)
}
