package notion

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/notionup/notionup/internal/blocks"
)

// DefaultBaseURL is the Notion API endpoint.
const DefaultBaseURL = "https://api.notion.com"

// DefaultVersion is the Notion-Version header value this client speaks.
const DefaultVersion = "2022-06-28"

// Client talks to the Notion pages API. One page is created per chunk; the
// client performs no retries itself.
type Client struct {
	baseURL    string
	token      string
	databaseID string
	version    string
	httpClient *http.Client

	// Stats records page-creation latencies for the stats endpoint.
	Stats *CallStats
}

func NewClient(baseURL, token, databaseID string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		token:      token,
		databaseID: databaseID,
		version:    DefaultVersion,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		Stats: NewCallStats(time.Hour),
	}
}

// DatabaseID returns the target database.
func (c *Client) DatabaseID() string { return c.databaseID }

// Page identifies a created page.
type Page struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}

type parentRef struct {
	DatabaseID string `json:"database_id"`
}

type titleText struct {
	Text struct {
		Content string `json:"content"`
	} `json:"text"`
}

type titleProperty struct {
	Title []titleText `json:"title"`
}

type pageRequest struct {
	Parent     parentRef                `json:"parent"`
	Properties map[string]titleProperty `json:"properties"`
	Children   blocks.Chunk             `json:"children"`
}

type pageResponse struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}

// CreatePage creates one database page titled title holding the chunk's
// blocks. Rate limiting and server errors come back as *RetryableError so
// callers can decide whether to retry.
func (c *Client) CreatePage(ctx context.Context, title string, chunk blocks.Chunk) (*Page, error) {
	var tt titleText
	tt.Text.Content = title
	reqBody := pageRequest{
		Parent:     parentRef{DatabaseID: c.databaseID},
		Properties: map[string]titleProperty{"title": {Title: []titleText{tt}}},
		Children:   chunk,
	}
	body, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("marshal page: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/pages", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.token)
	httpReq.Header.Set("Notion-Version", c.version)

	start := time.Now()
	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("notion api: %w", err)
	}
	defer resp.Body.Close()
	c.Stats.Record(time.Since(start).Milliseconds())

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500 {
		return nil, &RetryableError{
			StatusCode: resp.StatusCode,
			Message:    string(respBody),
		}
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("notion api status %d: %s", resp.StatusCode, truncate(string(respBody), 500))
	}

	var apiResp pageResponse
	if err := json.Unmarshal(respBody, &apiResp); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	page := &Page{ID: apiResp.ID, URL: apiResp.URL}
	if page.URL == "" && page.ID != "" {
		page.URL = "https://notion.so/" + strings.ReplaceAll(page.ID, "-", "")
	}
	return page, nil
}

// Close releases resources.
func (c *Client) Close() {
	c.httpClient.CloseIdleConnections()
}

// RetryableError indicates a transient failure worth retrying.
type RetryableError struct {
	StatusCode int
	Message    string
}

func (e *RetryableError) Error() string {
	return fmt.Sprintf("retryable error (status %d): %s", e.StatusCode, truncate(e.Message, 200))
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
