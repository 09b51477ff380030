package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/pkg/errors"
	"github.com/woundtrack/backend/internal/config"
)

// Client uploads image blobs to the external object store and returns
// their public URLs. The core treats the returned URL as opaque.
type Client struct {
	config     config.StorageConfig
	httpClient *http.Client
}

func NewClient(cfg config.StorageConfig) *Client {
	return &Client{
		config: cfg,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
	}
}

type uploadResponse struct {
	SecureURL string `json:"secure_url"`
}

// Upload sends data as a multipart form and returns the public URL the
// store assigned to it.
func (c *Client) Upload(ctx context.Context, data []byte, name string) (string, error) {
	body := new(bytes.Buffer)
	writer := multipart.NewWriter(body)

	if err := writer.WriteField("public_id", name); err != nil {
		return "", errors.Wrap(err, "write public_id field")
	}
	if err := writer.WriteField("folder", c.config.Folder); err != nil {
		return "", errors.Wrap(err, "write folder field")
	}

	part, err := writer.CreateFormFile("file", name)
	if err != nil {
		return "", errors.Wrap(err, "create form file")
	}
	if _, err := part.Write(data); err != nil {
		return "", errors.Wrap(err, "write file part")
	}
	if err := writer.Close(); err != nil {
		return "", errors.Wrap(err, "close multipart writer")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.config.UploadURL, body)
	if err != nil {
		return "", errors.Wrap(err, "create upload request")
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+c.config.APIKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", errors.Wrap(err, "do upload request")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return "", errors.Errorf("unexpected status code: %d, body: %s", resp.StatusCode, string(raw))
	}

	var uploaded uploadResponse
	if err := json.NewDecoder(resp.Body).Decode(&uploaded); err != nil {
		return "", errors.Wrap(err, "decode upload response")
	}

	if uploaded.SecureURL == "" {
		return "", errors.New("empty secure_url in upload response")
	}

	return uploaded.SecureURL, nil
}
