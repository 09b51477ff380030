package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/woundtrack/backend/internal/db"
	"github.com/woundtrack/backend/internal/domain"

	"github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
)

type userRepository struct {
	db *sqlx.DB
}

func newUserRepository(db *sqlx.DB) *userRepository {
	return &userRepository{
		db: db,
	}
}

func (r *userRepository) Create(ctx context.Context, user *domain.User) error {
	const op = "repository.user.Create"

	const query = `
	INSERT INTO user (name, gender, birthday, picture, email, password, wound_condition, dressing_freq)
	VALUES (:name, :gender, :birthday, :picture, :email, :password, :wound_condition, :dressing_freq)
	`

	res, err := r.db.NamedExecContext(ctx, query, user)
	if err != nil {
		//nolint:errorlint
		if mysqlError, ok := err.(*mysql.MySQLError); ok && mysqlError.Number == db.DuplicateEntry {
			return domain.ErrDuplicateEntry
		}
		return fmt.Errorf("%s: insert user failed: %w", op, err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("%s: last insert id failed: %w", op, err)
	}
	user.ID = id

	return nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	const op = "repository.user.GetByEmail"

	const query = `
	SELECT id, name, gender, DATE_FORMAT(birthday, '%Y-%m-%d') AS birthday, picture, email, password,
	       wound_condition, dressing_freq, created_at, updated_at
	FROM user
	WHERE email = ?
	`

	var user domain.User
	if err := r.db.GetContext(ctx, &user, query, email); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("%s: select user by email failed: %w", op, err)
	}

	return &user, nil
}

func (r *userRepository) GetOneByID(ctx context.Context, id int64) (*domain.User, error) {
	const op = "repository.user.GetOneByID"

	const query = `
	SELECT id, name, gender, DATE_FORMAT(birthday, '%Y-%m-%d') AS birthday, picture, email, password,
	       wound_condition, dressing_freq, created_at, updated_at
	FROM user
	WHERE id = ?
	`

	var user domain.User
	if err := r.db.GetContext(ctx, &user, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("%s: select user by id failed: %w", op, err)
	}

	return &user, nil
}

func (r *userRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	const op = "repository.user.ExistsByEmail"

	const query = `
	SELECT COUNT(*) FROM user WHERE email = ?
	`

	var count int64
	if err := r.db.GetContext(ctx, &count, query, email); err != nil {
		return false, fmt.Errorf("%s: count users by email failed: %w", op, err)
	}

	return count > 0, nil
}

func (r *userRepository) UpdateName(ctx context.Context, id int64, name string) error {
	const op = "repository.user.UpdateName"

	const query = `
	UPDATE user SET name = ? WHERE id = ?
	`

	return r.update(ctx, op, query, name, id)
}

func (r *userRepository) UpdatePassword(ctx context.Context, id int64, passwordHash string) error {
	const op = "repository.user.UpdatePassword"

	const query = `
	UPDATE user SET password = ? WHERE id = ?
	`

	return r.update(ctx, op, query, passwordHash, id)
}

func (r *userRepository) UpdatePicture(ctx context.Context, id int64, pictureURL string) error {
	const op = "repository.user.UpdatePicture"

	const query = `
	UPDATE user SET picture = ? WHERE id = ?
	`

	return r.update(ctx, op, query, pictureURL, id)
}

func (r *userRepository) update(ctx context.Context, op, query string, args ...interface{}) error {
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%s: update user failed: %w", op, err)
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
