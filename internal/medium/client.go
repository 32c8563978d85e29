// Package medium publishes markdown drafts through the Medium API.
package medium

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"vidchef/internal/metrics"

	"golang.org/x/time/rate"
)

const defaultEndpoint = "https://api.medium.com/v1"

// Post is the created Medium post as the pipeline reports it.
type Post struct {
	ID  string
	URL string
}

type Client struct {
	token      string
	httpClient *http.Client
	logger     *slog.Logger
	limiter    *rate.Limiter
	recorder   metrics.Recorder
	endpoint   string // swappable in tests

	mu       sync.Mutex
	authorID string // resolved once via /me, then reused
}

func NewClient(token string, httpClient *http.Client, logger *slog.Logger, recorder metrics.Recorder) *Client {
	return &Client{
		token:      token,
		httpClient: httpClient,
		logger:     logger,
		limiter:    rate.NewLimiter(rate.Every(time.Second), 2),
		recorder:   recorder,
		endpoint:   defaultEndpoint,
	}
}

type meResponse struct {
	Data struct {
		ID string `json:"id"`
	} `json:"data"`
}

type createPostRequest struct {
	Title         string `json:"title"`
	ContentFormat string `json:"contentFormat"`
	Content       string `json:"content"`
	PublishStatus string `json:"publishStatus"`
}

type createPostResponse struct {
	Data struct {
		ID  string `json:"id"`
		URL string `json:"url"`
	} `json:"data"`
}

// author resolves the caller's Medium user id. The lock is not held over
// the fetch, so concurrent publishes are not serialized behind one network
// call; racing first publishes may hit /me twice, last write wins.
func (c *Client) author(ctx context.Context) (string, error) {
	c.mu.Lock()
	id := c.authorID
	c.mu.Unlock()
	if id != "" {
		return id, nil
	}

	body, err := c.do(ctx, http.MethodGet, c.endpoint+"/me", nil)
	if err != nil {
		return "", err
	}

	var me meResponse
	if err := json.Unmarshal(body, &me); err != nil {
		return "", fmt.Errorf("author: %w", err)
	}
	if me.Data.ID == "" {
		return "", fmt.Errorf("author: empty author id in /me response")
	}

	c.mu.Lock()
	c.authorID = me.Data.ID
	c.mu.Unlock()
	return me.Data.ID, nil
}

// Publish creates a draft post with markdown content.
func (c *Client) Publish(ctx context.Context, title, content string) (*Post, error) {
	authorID, err := c.author(ctx)
	if err != nil {
		return nil, fmt.Errorf("Publish: %w", err)
	}

	payload, err := json.Marshal(createPostRequest{
		Title:         title,
		ContentFormat: "markdown",
		Content:       content,
		PublishStatus: "draft",
	})
	if err != nil {
		return nil, fmt.Errorf("Publish: %w", err)
	}

	body, err := c.do(ctx, http.MethodPost, c.endpoint+"/users/"+authorID+"/posts", payload)
	if err != nil {
		return nil, fmt.Errorf("Publish: %w", err)
	}

	var created createPostResponse
	if err := json.Unmarshal(body, &created); err != nil {
		return nil, fmt.Errorf("Publish: %w", err)
	}
	if created.Data.ID == "" {
		return nil, fmt.Errorf("Publish: empty post id in response")
	}

	c.recorder.RecordPublish()
	return &Post{ID: created.Data.ID, URL: created.Data.URL}, nil
}

func (c *Client) do(ctx context.Context, method, rawURL string, payload []byte) ([]byte, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	var reqBody io.Reader
	if payload != nil {
		reqBody = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, method, rawURL, reqBody)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("medium request failed",
			slog.String("error", err.Error()),
		)
		return nil, err
	}
	defer resp.Body.Close()

	c.recorder.RecordOutboundRequest("medium", resp.StatusCode)
	c.recorder.RecordOutboundLatency("medium", time.Since(start))

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		c.logger.Error("medium returned error status",
			slog.Int("http_status", resp.StatusCode),
		)
		return nil, fmt.Errorf("medium returned status %d", resp.StatusCode)
	}

	return io.ReadAll(resp.Body)
}
