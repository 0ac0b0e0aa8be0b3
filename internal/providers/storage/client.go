// Package storage is the remote blob store client. The token can be swapped
// at runtime by the user; without one the client reports not configured and
// the media manager stays local-only.
package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"
)

// Object is a remote asset as returned by the store listing.
type Object struct {
	Name string `json:"name"`
	URL  string `json:"url,omitempty"`
}

type Client struct {
	baseURL string
	bucket  string
	http    *http.Client

	mu    sync.RWMutex
	token string
}

func NewClient(baseURL, bucket, token string) *Client {
	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		bucket:  bucket,
		token:   token,
		http:    &http.Client{Timeout: 15 * time.Second},
	}
}

// SetToken replaces the access token. An empty token disables remote mode.
func (c *Client) SetToken(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = token
}

func (c *Client) Configured() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.baseURL != "" && c.token != ""
}

func (c *Client) authHeader() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return "Bearer " + c.token
}

// PublicURL is where an object in the bucket is served from.
func (c *Client) PublicURL(name string) string {
	return fmt.Sprintf("%s/object/public/%s/%s", c.baseURL, c.bucket, name)
}

// List returns every object in the bucket.
func (c *Client) List(ctx context.Context) ([]Object, error) {
	payload, _ := json.Marshal(map[string]any{"prefix": "", "limit": 1000})
	endpoint := fmt.Sprintf("%s/object/list/%s", c.baseURL, c.bucket)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", c.authHeader())
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("storage list: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("storage list: status %d", resp.StatusCode)
	}

	var objects []Object
	if err := json.NewDecoder(resp.Body).Decode(&objects); err != nil {
		return nil, fmt.Errorf("storage list: %w", err)
	}
	for i := range objects {
		if objects[i].URL == "" {
			objects[i].URL = c.PublicURL(objects[i].Name)
		}
	}
	return objects, nil
}

// Upload stores an object under name and returns its public URL.
func (c *Client) Upload(ctx context.Context, name, contentType string, data []byte) (Object, error) {
	endpoint := fmt.Sprintf("%s/object/%s/%s", c.baseURL, c.bucket, name)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(data))
	if err != nil {
		return Object{}, err
	}
	req.Header.Set("Authorization", c.authHeader())
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return Object{}, fmt.Errorf("storage upload: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return Object{}, fmt.Errorf("storage upload: status %d", resp.StatusCode)
	}

	return Object{Name: name, URL: c.PublicURL(name)}, nil
}

// Remove deletes an object by name.
func (c *Client) Remove(ctx context.Context, name string) error {
	endpoint := fmt.Sprintf("%s/object/%s/%s", c.baseURL, c.bucket, name)

	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, endpoint, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", c.authHeader())

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("storage remove: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusNoContent {
		return fmt.Errorf("storage remove: status %d", resp.StatusCode)
	}
	return nil
}
