// Package youtube calls the YouTube Data API and the timedtext caption
// endpoint. Pass-through integration: failures surface to the caller
// immediately, nothing is retried here.
package youtube

import (
	"context"
	"encoding/json"
	"encoding/xml"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"vidchef/internal/metrics"
	"vidchef/internal/security"

	"golang.org/x/time/rate"
)

const (
	defaultSearchEndpoint    = "https://www.googleapis.com/youtube/v3/search"
	defaultTimedTextEndpoint = "https://video.google.com/timedtext"

	userAgent = "vidchef/1.0"
)

// SearchParams mirrors the subset of the search.list parameters the
// pipeline uses. Zero values fall back to the documented defaults.
type SearchParams struct {
	Query          string
	MaxResults     int
	Order          string
	VideoDuration  string
	PublishedAfter time.Time
}

type Client struct {
	apiKey     string
	httpClient *http.Client
	logger     *slog.Logger
	limiter    *rate.Limiter
	recorder   metrics.Recorder
	sanitizer  *security.CaptionSanitizer

	// endpoints are swappable in tests
	searchEndpoint      string
	timedTextEndpoint   string
	channelFeedEndpoint string
}

func NewClient(apiKey string, httpClient *http.Client, logger *slog.Logger, recorder metrics.Recorder) *Client {
	// one request every 100ms with a small burst stays well inside the
	// Data API default quota
	limiter := rate.NewLimiter(rate.Every(100*time.Millisecond), 5)
	return &Client{
		apiKey:              apiKey,
		httpClient:          httpClient,
		logger:              logger,
		limiter:             limiter,
		recorder:            recorder,
		sanitizer:           security.NewCaptionSanitizer(),
		searchEndpoint:      defaultSearchEndpoint,
		timedTextEndpoint:   defaultTimedTextEndpoint,
		channelFeedEndpoint: defaultChannelFeedEndpoint,
	}
}

type searchResponse struct {
	Items []struct {
		ID struct {
			VideoID string `json:"videoId"`
		} `json:"id"`
	} `json:"items"`
}

// Search returns the ids of candidate videos for the query. Defaults:
// most-viewed, closed-captioned, medium-length videos from the last week.
func (c *Client) Search(ctx context.Context, p SearchParams) ([]string, error) {
	if p.MaxResults <= 0 {
		p.MaxResults = 10
	}
	if p.Order == "" {
		p.Order = "viewCount"
	}
	if p.VideoDuration == "" {
		p.VideoDuration = "medium"
	}
	if p.PublishedAfter.IsZero() {
		p.PublishedAfter = time.Now().AddDate(0, 0, -7)
	}

	reqURL, err := url.Parse(c.searchEndpoint)
	if err != nil {
		return nil, fmt.Errorf("Search: %w", err)
	}
	q := reqURL.Query()
	q.Set("part", "id,snippet")
	q.Set("type", "video")
	q.Set("q", p.Query)
	q.Set("order", p.Order)
	q.Set("videoCaption", "closedCaption")
	q.Set("videoDuration", p.VideoDuration)
	q.Set("maxResults", strconv.Itoa(p.MaxResults))
	q.Set("publishedAfter", p.PublishedAfter.UTC().Format(time.RFC3339))
	q.Set("key", c.apiKey)
	reqURL.RawQuery = q.Encode()

	body, err := c.do(ctx, reqURL.String())
	if err != nil {
		return nil, fmt.Errorf("Search: %w", err)
	}

	var resp searchResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("Search: %w", err)
	}

	ids := make([]string, 0, len(resp.Items))
	for _, item := range resp.Items {
		if item.ID.VideoID != "" {
			ids = append(ids, item.ID.VideoID)
		}
	}
	return ids, nil
}

type timedText struct {
	Texts []struct {
		Start string `xml:"start,attr"`
		Value string `xml:",chardata"`
	} `xml:"text"`
}

// Transcript fetches the English caption track for a video and returns it
// as plain text, one line per cue.
func (c *Client) Transcript(ctx context.Context, videoID string) (string, error) {
	reqURL, err := url.Parse(c.timedTextEndpoint)
	if err != nil {
		return "", fmt.Errorf("Transcript: %w", err)
	}
	q := reqURL.Query()
	q.Set("lang", "en")
	q.Set("v", videoID)
	reqURL.RawQuery = q.Encode()

	body, err := c.do(ctx, reqURL.String())
	if err != nil {
		return "", fmt.Errorf("Transcript: %w", err)
	}

	var tt timedText
	if err := xml.Unmarshal(body, &tt); err != nil {
		return "", fmt.Errorf("Transcript: %w", err)
	}
	if len(tt.Texts) == 0 {
		return "", fmt.Errorf("Transcript: no captions for video %s", videoID)
	}

	lines := make([]string, 0, len(tt.Texts))
	for _, t := range tt.Texts {
		if line := c.sanitizer.Clean(t.Value); line != "" {
			lines = append(lines, line)
		}
	}
	return strings.Join(lines, "\n"), nil
}

func (c *Client) do(ctx context.Context, rawURL string) ([]byte, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", userAgent)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("youtube request failed",
			slog.String("error", err.Error()),
		)
		return nil, err
	}
	defer resp.Body.Close()

	c.recorder.RecordOutboundRequest("youtube", resp.StatusCode)
	c.recorder.RecordOutboundLatency("youtube", time.Since(start))

	if resp.StatusCode != http.StatusOK {
		c.logger.Error("youtube returned error status",
			slog.Int("http_status", resp.StatusCode),
		)
		return nil, fmt.Errorf("youtube returned status %d", resp.StatusCode)
	}

	return io.ReadAll(resp.Body)
}
