package service

import (
	"context"
	"fmt"

	"github.com/woundtrack/backend/internal/domain"
	"github.com/woundtrack/backend/internal/repository"
	"github.com/woundtrack/backend/internal/service/places"
	"github.com/woundtrack/backend/pkg/logger"
	"go.uber.org/zap"
)

const nearbyLimit = 10

type hospitalService struct {
	hospitals repository.Hospitals
	places    *places.Client
}

func newHospitalService(hospitals repository.Hospitals, places *places.Client) *hospitalService {
	return &hospitalService{
		hospitals: hospitals,
		places:    places,
	}
}

func (s *hospitalService) GetDistricts(ctx context.Context, city string) ([]string, error) {
	districts, err := s.hospitals.GetDistricts(ctx, city)
	if err != nil {
		return nil, fmt.Errorf("get districts failed: %w", err)
	}

	if len(districts) == 0 {
		return nil, ErrHospitalNotFound
	}

	return districts, nil
}

func (s *hospitalService) GetDepartments(ctx context.Context, city, district string) ([]string, error) {
	departments, err := s.hospitals.GetDepartments(ctx, city, district)
	if err != nil {
		return nil, fmt.Errorf("get departments failed: %w", err)
	}

	if len(departments) == 0 {
		return nil, ErrHospitalNotFound
	}

	return departments, nil
}

// Search enriches every match with a photo reference from the places
// API. Enrichment is best effort: a lookup failure is logged and leaves
// the reference nil.
func (s *hospitalService) Search(ctx context.Context, city, district, department string) ([]domain.Hospital, error) {
	hospitals, err := s.hospitals.Search(ctx, city, district, department)
	if err != nil {
		return nil, fmt.Errorf("search hospitals failed: %w", err)
	}

	for i := range hospitals {
		ref, err := s.places.FindPhotoReference(ctx, hospitals[i].Name)
		if err != nil {
			logger.Warn("photo reference lookup failed",
				zap.String("hospital", hospitals[i].Name), zap.Error(err))
			continue
		}
		if ref != "" {
			hospitals[i].PhotoReference = &ref
		}
	}

	return hospitals, nil
}

func (s *hospitalService) Nearby(ctx context.Context, lat, lng float64) ([]domain.Hospital, error) {
	hospitals, err := s.hospitals.Nearby(ctx, lat, lng, nearbyLimit)
	if err != nil {
		return nil, fmt.Errorf("nearby hospitals failed: %w", err)
	}

	return hospitals, nil
}
