package filestore

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const (
	defaultBaseURL = "https://api.uploadthing.com/v6"
	requestTimeout = 30 * time.Second
	listPageSize   = 500
)

// File is one stored object on the provider
type File struct {
	Key  string `json:"key"`
	Name string `json:"name"`
	Size int64  `json:"size"`
}

// Client talks to the file storage provider's management API. Only the
// listing and deletion endpoints used by the orphan sweep are wrapped.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a new filestore client
func NewClient(apiKey string) *Client {
	return &Client{
		apiKey:     apiKey,
		baseURL:    defaultBaseURL,
		httpClient: &http.Client{Timeout: requestTimeout},
	}
}

// WithBaseURL overrides the API endpoint, used by tests
func (c *Client) WithBaseURL(baseURL string) *Client {
	c.baseURL = baseURL
	return c
}

func (c *Client) post(ctx context.Context, path string, payload, dest interface{}) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Uploadthing-Api-Key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("filestore %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("filestore %s: status %d: %s", path, resp.StatusCode, string(raw))
	}
	if dest == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(dest)
}

type listFilesRequest struct {
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
}

type listFilesResponse struct {
	Files   []File `json:"files"`
	HasMore bool   `json:"hasMore"`
}

// ListFiles pages through the provider's full file listing
func (c *Client) ListFiles(ctx context.Context) ([]File, error) {
	var all []File
	offset := 0
	for {
		var page listFilesResponse
		if err := c.post(ctx, "/listFiles", listFilesRequest{Limit: listPageSize, Offset: offset}, &page); err != nil {
			return nil, err
		}
		all = append(all, page.Files...)
		if !page.HasMore || len(page.Files) == 0 {
			return all, nil
		}
		offset += len(page.Files)
	}
}

type deleteFilesRequest struct {
	FileKeys []string `json:"fileKeys"`
}

// DeleteFiles removes objects by key
func (c *Client) DeleteFiles(ctx context.Context, keys []string) error {
	if len(keys) == 0 {
		return nil
	}
	return c.post(ctx, "/deleteFiles", deleteFilesRequest{FileKeys: keys}, nil)
}
