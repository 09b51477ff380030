package places

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/woundtrack/backend/internal/config"
)

func testClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return NewClient(config.PlacesConfig{
		BaseURL: srv.URL,
		APIKey:  "test-key",
		Timeout: time.Second,
	})
}

func TestFindPhotoReference(t *testing.T) {
	t.Run("returns the first photo reference", func(t *testing.T) {
		client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/findplacefromtext/json", r.URL.Path)
			assert.Equal(t, "City Hospital", r.URL.Query().Get("input"))
			assert.Equal(t, "textquery", r.URL.Query().Get("inputtype"))
			assert.Equal(t, "test-key", r.URL.Query().Get("key"))

			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{
				"candidates": [{"photos": [{"photo_reference": "ref-1"}, {"photo_reference": "ref-2"}]}],
				"status": "OK"
			}`))
		})

		ref, err := client.FindPhotoReference(context.Background(), "City Hospital")
		require.NoError(t, err)
		assert.Equal(t, "ref-1", ref)
	})

	t.Run("no candidates means empty reference", func(t *testing.T) {
		client := testClient(t, func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`{"candidates": [], "status": "ZERO_RESULTS"}`))
		})

		ref, err := client.FindPhotoReference(context.Background(), "Nowhere Clinic")
		require.NoError(t, err)
		assert.Empty(t, ref)
	})

	t.Run("candidate without photos means empty reference", func(t *testing.T) {
		client := testClient(t, func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`{"candidates": [{"photos": []}], "status": "OK"}`))
		})

		ref, err := client.FindPhotoReference(context.Background(), "Plain Clinic")
		require.NoError(t, err)
		assert.Empty(t, ref)
	})

	t.Run("non-200 is an error", func(t *testing.T) {
		client := testClient(t, func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusForbidden)
		})

		_, err := client.FindPhotoReference(context.Background(), "City Hospital")
		assert.Error(t, err)
	})
}
