package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/woundtrack/backend/internal/domain"
)

type hospitalRepository struct {
	db *sqlx.DB
}

func newHospitalRepository(db *sqlx.DB) *hospitalRepository {
	return &hospitalRepository{
		db: db,
	}
}

func (r *hospitalRepository) GetDistricts(ctx context.Context, city string) ([]string, error) {
	const op = "repository.hospital.GetDistricts"

	const query = `
	SELECT DISTINCT district FROM hospital WHERE city = ? ORDER BY district ASC
	`

	districts := []string{}
	if err := r.db.SelectContext(ctx, &districts, query, city); err != nil {
		return nil, fmt.Errorf("%s: select districts failed: %w", op, err)
	}

	return districts, nil
}

func (r *hospitalRepository) GetDepartments(ctx context.Context, city, district string) ([]string, error) {
	const op = "repository.hospital.GetDepartments"

	const query = `
	SELECT DISTINCT d.department
	FROM hospital h
	JOIN hospital_department d ON h.id = d.hospital_id
	WHERE h.city = ?
	  AND h.district = ?
	  AND d.department IS NOT NULL
	  AND d.department != ''
	ORDER BY d.department ASC
	`

	departments := []string{}
	if err := r.db.SelectContext(ctx, &departments, query, city, district); err != nil {
		return nil, fmt.Errorf("%s: select departments failed: %w", op, err)
	}

	return departments, nil
}

func (r *hospitalRepository) Search(ctx context.Context, city, district, department string) ([]domain.Hospital, error) {
	const op = "repository.hospital.Search"

	// Empty district/department arguments match everything.
	const query = `
	SELECT DISTINCT h.id, h.name, h.city, h.district, h.address, h.lat, h.lng, h.phone
	FROM hospital h
	LEFT JOIN hospital_department d ON h.id = d.hospital_id
	WHERE h.city = ?
	  AND (? = '' OR h.district = ?)
	  AND (? = '' OR d.department = ?)
	`

	hospitals := []domain.Hospital{}
	if err := r.db.SelectContext(ctx, &hospitals, query, city, district, district, department, department); err != nil {
		return nil, fmt.Errorf("%s: select hospitals failed: %w", op, err)
	}

	return hospitals, nil
}

func (r *hospitalRepository) Nearby(ctx context.Context, lat, lng float64, limit int) ([]domain.Hospital, error) {
	const op = "repository.hospital.Nearby"

	// Haversine distance in meters, computed by the store so only the
	// closest rows cross the wire.
	const query = `
	SELECT id, name, city, district, address, lat, lng, phone,
	       (6371000 * ACOS(
	           COS(RADIANS(?)) * COS(RADIANS(lat)) *
	           COS(RADIANS(lng) - RADIANS(?)) +
	           SIN(RADIANS(?)) * SIN(RADIANS(lat))
	       )) AS distance_m
	FROM hospital
	ORDER BY distance_m ASC
	LIMIT ?
	`

	hospitals := []domain.Hospital{}
	if err := r.db.SelectContext(ctx, &hospitals, query, lat, lng, lat, limit); err != nil {
		return nil, fmt.Errorf("%s: select nearby hospitals failed: %w", op, err)
	}

	return hospitals, nil
}
