package storage

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

	return NewClient(config.StorageConfig{
		UploadURL: srv.URL,
		APIKey:    "test-key",
		Folder:    "user_uploads",
		Timeout:   time.Second,
	})
}

func TestUpload(t *testing.T) {
	t.Run("uploads multipart form and returns secure url", func(t *testing.T) {
		client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

			require.NoError(t, r.ParseMultipartForm(1<<20))
			assert.Equal(t, "photo-1", r.FormValue("public_id"))
			assert.Equal(t, "user_uploads", r.FormValue("folder"))

			file, _, err := r.FormFile("file")
			require.NoError(t, err)
			defer file.Close()

			buf := make([]byte, 16)
			n, _ := file.Read(buf)
			assert.Equal(t, "fake-jpeg-bytes", string(buf[:n]))

			_, _ = w.Write([]byte(`{"secure_url": "https://cdn.example.com/user_uploads/photo-1.jpg"}`))
		})

		url, err := client.Upload(context.Background(), []byte("fake-jpeg-bytes"), "photo-1")
		require.NoError(t, err)
		assert.Equal(t, "https://cdn.example.com/user_uploads/photo-1.jpg", url)
	})

	t.Run("non-200 is an error", func(t *testing.T) {
		client := testClient(t, func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
		})

		_, err := client.Upload(context.Background(), []byte("x"), "photo-1")
		assert.Error(t, err)
	})

	t.Run("empty secure url is an error", func(t *testing.T) {
		client := testClient(t, func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`{}`))
		})

		_, err := client.Upload(context.Background(), []byte("x"), "photo-1")
		assert.Error(t, err)
	})
}
