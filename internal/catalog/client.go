// Package catalog looks up book metadata by ISBN against a
// Google-Books-style volumes API.
package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const defaultVolumesURL = "https://www.googleapis.com/books/v1/volumes"

// ErrNotFound is returned when the catalog has no volume for an ISBN.
var ErrNotFound = errors.New("catalog: isbn not found")

// BookInfo is the metadata the catalog returns for a volume.
type BookInfo struct {
	ISBN        string `json:"isbn"`
	Title       string `json:"title"`
	Author      string `json:"author,omitempty"`
	Description string `json:"description,omitempty"`
	Publisher   string `json:"publisher,omitempty"`
	PublishedAt string `json:"published_at,omitempty"`
	CoverURL    string `json:"cover_url,omitempty"`
}

// Client queries the volumes API for book metadata.
type Client struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

// Option configures the Client.
type Option func(*Client)

// WithBaseURL overrides the default volumes endpoint.
func WithBaseURL(u string) Option {
	return func(c *Client) {
		c.baseURL = u
	}
}

// WithAPIKey sets the API key sent with each request.
func WithAPIKey(k string) Option {
	return func(c *Client) {
		c.apiKey = k
	}
}

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.client = hc
	}
}

// WithTimeout sets the overall request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.client.Timeout = d
	}
}

// NewClient creates a catalog client.
func NewClient(opts ...Option) *Client {
	c := &Client{
		baseURL: defaultVolumesURL,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type volumesResponse struct {
	TotalItems int `json:"totalItems"`
	Items      []struct {
		VolumeInfo struct {
			Title         string   `json:"title"`
			Authors       []string `json:"authors"`
			Publisher     string   `json:"publisher"`
			PublishedDate string   `json:"publishedDate"`
			Description   string   `json:"description"`
			ImageLinks    struct {
				Thumbnail string `json:"thumbnail"`
			} `json:"imageLinks"`
		} `json:"volumeInfo"`
	} `json:"items"`
}

// Lookup fetches metadata for a single ISBN. It returns ErrNotFound when
// the catalog has no matching volume.
func (c *Client) Lookup(ctx context.Context, isbn string) (*BookInfo, error) {
	isbn = strings.ReplaceAll(strings.TrimSpace(isbn), "-", "")
	if isbn == "" {
		return nil, fmt.Errorf("catalog: empty isbn")
	}

	params := url.Values{}
	params.Set("q", "isbn:"+isbn)
	params.Set("maxResults", "1")
	if c.apiKey != "" {
		params.Set("key", c.apiKey)
	}

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodGet,
		c.baseURL+"?"+params.Encode(),
		http.NoBody,
	)
	if err != nil {
		return nil, fmt.Errorf("creating HTTP request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("executing lookup request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf(
			"catalog API error (status %d): %s",
			resp.StatusCode,
			string(body),
		)
	}

	var apiResp volumesResponse
	if err := json.Unmarshal(body, &apiResp); err != nil {
		return nil, fmt.Errorf("parsing lookup response: %w", err)
	}

	if apiResp.TotalItems == 0 || len(apiResp.Items) == 0 {
		return nil, ErrNotFound
	}

	vi := apiResp.Items[0].VolumeInfo
	info := &BookInfo{
		ISBN:        isbn,
		Title:       vi.Title,
		Author:      strings.Join(vi.Authors, ", "),
		Description: vi.Description,
		Publisher:   vi.Publisher,
		PublishedAt: vi.PublishedDate,
		CoverURL:    vi.ImageLinks.Thumbnail,
	}
	return info, nil
}
