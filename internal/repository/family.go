package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/woundtrack/backend/internal/domain"
)

type familyRepository struct {
	db *sqlx.DB
}

func newFamilyRepository(db *sqlx.DB) *familyRepository {
	return &familyRepository{
		db: db,
	}
}

func (r *familyRepository) Create(ctx context.Context, member *domain.Member) error {
	const op = "repository.family.Create"

	const query = `
	INSERT INTO family (user_id, role, birth_year, wound_condition, dressing_freq)
	VALUES (:user_id, :role, :birth_year, :wound_condition, :dressing_freq)
	`

	res, err := r.db.NamedExecContext(ctx, query, member)
	if err != nil {
		return fmt.Errorf("%s: insert family member failed: %w", op, err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("%s: last insert id failed: %w", op, err)
	}
	member.ID = id

	return nil
}

func (r *familyRepository) GetAllByUserID(ctx context.Context, userID int64) ([]domain.Member, error) {
	const op = "repository.family.GetAllByUserID"

	const query = `
	SELECT id, user_id, role, birth_year, wound_condition, dressing_freq
	FROM family
	WHERE user_id = ?
	ORDER BY id ASC
	`

	members := []domain.Member{}
	if err := r.db.SelectContext(ctx, &members, query, userID); err != nil {
		return nil, fmt.Errorf("%s: select family members failed: %w", op, err)
	}

	return members, nil
}

func (r *familyRepository) GetOneByID(ctx context.Context, id int64) (*domain.Member, error) {
	const op = "repository.family.GetOneByID"

	const query = `
	SELECT id, user_id, role, birth_year, wound_condition, dressing_freq
	FROM family
	WHERE id = ?
	`

	var member domain.Member
	if err := r.db.GetContext(ctx, &member, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("%s: select family member failed: %w", op, err)
	}

	return &member, nil
}

func (r *familyRepository) ExistsRole(ctx context.Context, userID int64, role string) (bool, error) {
	const op = "repository.family.ExistsRole"

	const query = `
	SELECT COUNT(*) FROM family WHERE user_id = ? AND role = ?
	`

	var count int64
	if err := r.db.GetContext(ctx, &count, query, userID, role); err != nil {
		return false, fmt.Errorf("%s: count family roles failed: %w", op, err)
	}

	return count > 0, nil
}
