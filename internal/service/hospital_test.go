package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/woundtrack/backend/internal/config"
	"github.com/woundtrack/backend/internal/domain"
	"github.com/woundtrack/backend/internal/service/places"
)

type fakeHospitalRepo struct {
	districts   []string
	departments []string
	hospitals   []domain.Hospital
	nearbyLimit int
}

func (f *fakeHospitalRepo) GetDistricts(_ context.Context, _ string) ([]string, error) {
	return f.districts, nil
}

func (f *fakeHospitalRepo) GetDepartments(_ context.Context, _, _ string) ([]string, error) {
	return f.departments, nil
}

func (f *fakeHospitalRepo) Search(_ context.Context, _, _, _ string) ([]domain.Hospital, error) {
	return f.hospitals, nil
}

func (f *fakeHospitalRepo) Nearby(_ context.Context, _, _ float64, limit int) ([]domain.Hospital, error) {
	f.nearbyLimit = limit
	return f.hospitals, nil
}

func testPlacesClient(t *testing.T, handler http.HandlerFunc) *places.Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return places.NewClient(config.PlacesConfig{
		BaseURL: srv.URL,
		APIKey:  "test-key",
		Timeout: time.Second,
	})
}

func TestHospitalSearch(t *testing.T) {
	ctx := context.Background()

	t.Run("matches are enriched with photo references", func(t *testing.T) {
		placesClient := testPlacesClient(t, func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Query().Get("input") == "City Hospital" {
				_, _ = w.Write([]byte(`{"candidates": [{"photos": [{"photo_reference": "ref-city"}]}], "status": "OK"}`))
				return
			}
			_, _ = w.Write([]byte(`{"candidates": [], "status": "ZERO_RESULTS"}`))
		})

		repo := &fakeHospitalRepo{hospitals: []domain.Hospital{
			{ID: 1, Name: "City Hospital"},
			{ID: 2, Name: "Obscure Clinic"},
		}}
		svc := newHospitalService(repo, placesClient)

		hospitals, err := svc.Search(ctx, "Springfield", "North", "dermatology")
		require.NoError(t, err)
		require.Len(t, hospitals, 2)

		require.NotNil(t, hospitals[0].PhotoReference)
		assert.Equal(t, "ref-city", *hospitals[0].PhotoReference)
		assert.Nil(t, hospitals[1].PhotoReference)
	})

	t.Run("enrichment failure does not fail the search", func(t *testing.T) {
		placesClient := testPlacesClient(t, func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		})

		repo := &fakeHospitalRepo{hospitals: []domain.Hospital{{ID: 1, Name: "City Hospital"}}}
		svc := newHospitalService(repo, placesClient)

		hospitals, err := svc.Search(ctx, "Springfield", "North", "dermatology")
		require.NoError(t, err)
		require.Len(t, hospitals, 1)
		assert.Nil(t, hospitals[0].PhotoReference)
	})
}

func TestHospitalDirectoryLookups(t *testing.T) {
	ctx := context.Background()

	t.Run("empty districts is not found", func(t *testing.T) {
		svc := newHospitalService(&fakeHospitalRepo{}, nil)

		_, err := svc.GetDistricts(ctx, "Springfield")
		assert.ErrorIs(t, err, ErrHospitalNotFound)
	})

	t.Run("districts pass through", func(t *testing.T) {
		svc := newHospitalService(&fakeHospitalRepo{districts: []string{"North", "South"}}, nil)

		districts, err := svc.GetDistricts(ctx, "Springfield")
		require.NoError(t, err)
		assert.Equal(t, []string{"North", "South"}, districts)
	})

	t.Run("empty departments is not found", func(t *testing.T) {
		svc := newHospitalService(&fakeHospitalRepo{}, nil)

		_, err := svc.GetDepartments(ctx, "Springfield", "North")
		assert.ErrorIs(t, err, ErrHospitalNotFound)
	})

	t.Run("nearby caps the result set", func(t *testing.T) {
		repo := &fakeHospitalRepo{}
		svc := newHospitalService(repo, nil)

		_, err := svc.Nearby(ctx, 25.03, 121.56)
		require.NoError(t, err)
		assert.Equal(t, nearbyLimit, repo.nearbyLimit)
	})
}
