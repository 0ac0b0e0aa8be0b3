package images

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

const defaultPexelsBaseURL = "https://api.pexels.com/v1"

type PexelsClient struct {
	apiKey  string
	baseURL string
	http    *http.Client
}

func NewPexelsClient(apiKey string) *PexelsClient {
	return &PexelsClient{
		apiKey:  apiKey,
		baseURL: defaultPexelsBaseURL,
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

// NewPexelsClientWithBaseURL exists for tests against a stub server.
func NewPexelsClientWithBaseURL(apiKey, baseURL string) *PexelsClient {
	c := NewPexelsClient(apiKey)
	c.baseURL = baseURL
	return c
}

func (c *PexelsClient) Name() string    { return "pexels" }
func (c *PexelsClient) Available() bool { return c.apiKey != "" }

func (c *PexelsClient) Search(ctx context.Context, query string) (string, error) {
	endpoint := fmt.Sprintf("%s/search?query=%s&per_page=1", c.baseURL, url.QueryEscape(query))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", c.apiKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("pexels: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("pexels: status %d", resp.StatusCode)
	}

	var body struct {
		Photos []struct {
			Src struct {
				Large string `json:"large"`
			} `json:"src"`
		} `json:"photos"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", fmt.Errorf("pexels: %w", err)
	}

	if len(body.Photos) == 0 {
		return "", nil
	}
	return body.Photos[0].Src.Large, nil
}
