package images

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

const defaultUnsplashBaseURL = "https://api.unsplash.com"

type UnsplashClient struct {
	accessKey string
	baseURL   string
	http      *http.Client
}

func NewUnsplashClient(accessKey string) *UnsplashClient {
	return &UnsplashClient{
		accessKey: accessKey,
		baseURL:   defaultUnsplashBaseURL,
		http:      &http.Client{Timeout: 10 * time.Second},
	}
}

func NewUnsplashClientWithBaseURL(accessKey, baseURL string) *UnsplashClient {
	c := NewUnsplashClient(accessKey)
	c.baseURL = baseURL
	return c
}

func (c *UnsplashClient) Name() string    { return "unsplash" }
func (c *UnsplashClient) Available() bool { return c.accessKey != "" }

func (c *UnsplashClient) Search(ctx context.Context, query string) (string, error) {
	endpoint := fmt.Sprintf("%s/search/photos?query=%s&per_page=1", c.baseURL, url.QueryEscape(query))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Client-ID "+c.accessKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("unsplash: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unsplash: status %d", resp.StatusCode)
	}

	var body struct {
		Results []struct {
			URLs struct {
				Regular string `json:"regular"`
			} `json:"urls"`
		} `json:"results"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", fmt.Errorf("unsplash: %w", err)
	}

	if len(body.Results) == 0 {
		return "", nil
	}
	return body.Results[0].URLs.Regular, nil
}
