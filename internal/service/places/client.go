package places

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/pkg/errors"
	"github.com/woundtrack/backend/internal/config"
)

// Client fetches photo references for named places from the Google
// Places text-search API.
type Client struct {
	config     config.PlacesConfig
	httpClient *http.Client
}

func NewClient(cfg config.PlacesConfig) *Client {
	return &Client{
		config: cfg,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
	}
}

type findPlaceResponse struct {
	Candidates []struct {
		Photos []struct {
			PhotoReference string `json:"photo_reference"`
		} `json:"photos"`
	} `json:"candidates"`
	Status string `json:"status"`
}

// FindPhotoReference returns the first photo reference for the place, or
// empty string when the place has none.
func (c *Client) FindPhotoReference(ctx context.Context, placeName string) (string, error) {
	params := url.Values{}
	params.Set("input", placeName)
	params.Set("inputtype", "textquery")
	params.Set("fields", "photos")
	params.Set("key", c.config.APIKey)

	endpoint := fmt.Sprintf("%s/findplacefromtext/json?%s", c.config.BaseURL, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", errors.Wrap(err, "create find place request")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", errors.Wrap(err, "do find place request")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return "", errors.Errorf("unexpected status code: %d, body: %s", resp.StatusCode, string(raw))
	}

	var found findPlaceResponse
	if err := json.NewDecoder(resp.Body).Decode(&found); err != nil {
		return "", errors.Wrap(err, "decode find place response")
	}

	if len(found.Candidates) == 0 || len(found.Candidates[0].Photos) == 0 {
		return "", nil
	}

	return found.Candidates[0].Photos[0].PhotoReference, nil
}
