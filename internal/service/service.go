package service

import (
	"context"
	"database/sql"

	"github.com/woundtrack/backend/internal/config"
	"github.com/woundtrack/backend/internal/domain"
	"github.com/woundtrack/backend/internal/repository"
	"github.com/woundtrack/backend/internal/service/places"
	"github.com/woundtrack/backend/internal/storage"
	"github.com/woundtrack/backend/pkg/auth"
	"github.com/woundtrack/backend/pkg/hash"
)

type Services struct {
	Users        Users
	Verification Verification
	Records      Records
	Reminders    Reminders
	Families     Families
	Hospitals    Hospitals
}

type Deps struct {
	Config       *config.Config
	Hasher       hash.PasswordHasher
	TokenManager auth.TokenManager
	Repos        *repository.Repositories
	Storage      *storage.Client
	Places       *places.Client
	Dispatcher   CodeDispatcher
}

func NewServices(deps Deps) *Services {
	return &Services{
		Users:        newUserService(deps.Repos.Users, deps.Hasher, deps.TokenManager, deps.Storage),
		Verification: newVerificationService(deps.Repos.Codes, deps.Dispatcher, deps.Config.Verification),
		Records:      newRecordService(deps.Repos.Records, deps.Storage),
		Reminders:    newReminderService(deps.Repos.Reminders),
		Families:     newFamilyService(deps.Repos.Families),
		Hospitals:    newHospitalService(deps.Repos.Hospitals, deps.Places),
	}
}

// CodeDispatcher hands a freshly issued code to the notification
// transport. Delivery is fire-and-forget from the issuer's perspective.
type CodeDispatcher interface {
	Dispatch(ctx context.Context, email, code string) error
}

type Users interface {
	Register(ctx context.Context, input RegisterInput) (*domain.User, error)
	Login(ctx context.Context, email, password string) (string, error)
	Exists(ctx context.Context, email string) (bool, error)
	ResetPassword(ctx context.Context, email, newPassword string) error
	GetOneByID(ctx context.Context, id int64) (*domain.User, error)
	UpdateName(ctx context.Context, id int64, name string) error
	VerifyPassword(ctx context.Context, id int64, password string) error
	UpdatePassword(ctx context.Context, id int64, password string) error
	UpdatePicture(ctx context.Context, id int64, picture []byte) (string, error)
}

type Verification interface {
	Issue(ctx context.Context, email string) error
	Validate(ctx context.Context, email, code string) error
}

type Records interface {
	Create(ctx context.Context, input CreateRecordInput) (*domain.Record, error)
	GetAllByUserID(ctx context.Context, userID int64) ([]domain.Record, error)
	GetReportsWithReminders(ctx context.Context, userID int64) ([]domain.Report, error)
	AssignGroup(ctx context.Context, userID, recordID1, recordID2, groupID int64) error
	ListGroups(ctx context.Context, userID int64) ([]int64, error)
	LookupGroup(ctx context.Context, userID, recordID int64) (sql.NullInt64, error)
	UpdateHealTime(ctx context.Context, userID int64, groupID, recordID *int64, healTime string) error
}

type Reminders interface {
	Create(ctx context.Context, reminder *domain.Reminder) error
	GetAllByUserID(ctx context.Context, userID int64) ([]domain.Reminder, error)
	UpdateTime(ctx context.Context, userID, recordID int64, timeOfDay string) error
	Delete(ctx context.Context, userID, recordID int64) error
}

type Families interface {
	GetAllByUserID(ctx context.Context, userID int64) ([]domain.Member, error)
	Add(ctx context.Context, member *domain.Member) (*domain.Member, error)
}

type Hospitals interface {
	GetDistricts(ctx context.Context, city string) ([]string, error)
	GetDepartments(ctx context.Context, city, district string) ([]string, error)
	Search(ctx context.Context, city, district, department string) ([]domain.Hospital, error)
	Nearby(ctx context.Context, lat, lng float64) ([]domain.Hospital, error)
}
