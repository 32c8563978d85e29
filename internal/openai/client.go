// Package openai calls the chat-completions API to turn transcript chunks
// into Medium-ready recipe markdown. Pass-through integration: one request
// per chunk, no retries.
package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"vidchef/internal/metrics"

	"golang.org/x/time/rate"
)

const (
	defaultEndpoint = "https://api.openai.com/v1/chat/completions"

	model       = "gpt-3.5-turbo"
	temperature = 0.5
	maxTokens   = 1500

	systemPrompt = "You are a chef."
	userPrompt   = "I want to create a Medium article based on several chunks I am sending. " +
		"I'd like you to analyze it and make a recipe for users. " +
		"Please respond with a raw markdown format. Here's the text: "
)

type Client struct {
	apiKey     string
	httpClient *http.Client
	logger     *slog.Logger
	limiter    *rate.Limiter
	recorder   metrics.Recorder
	endpoint   string // swappable in tests
}

func NewClient(apiKey string, httpClient *http.Client, logger *slog.Logger, recorder metrics.Recorder) *Client {
	return &Client{
		apiKey:     apiKey,
		httpClient: httpClient,
		logger:     logger,
		limiter:    rate.NewLimiter(rate.Every(time.Second), 3),
		recorder:   recorder,
		endpoint:   defaultEndpoint,
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model            string        `json:"model"`
	Messages         []chatMessage `json:"messages"`
	Temperature      float64       `json:"temperature"`
	MaxTokens        int           `json:"max_tokens"`
	TopP             float64       `json:"top_p"`
	FrequencyPenalty float64       `json:"frequency_penalty"`
	PresencePenalty  float64       `json:"presence_penalty"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error"`
}

// SummarizeChunk sends one transcript chunk through the chat-completions
// API and returns the generated markdown.
func (c *Client) SummarizeChunk(ctx context.Context, chunk string) (string, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return "", err
	}

	payload, err := json.Marshal(chatRequest{
		Model: model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: userPrompt + chunk},
		},
		Temperature: temperature,
		MaxTokens:   maxTokens,
		TopP:        1,
	})
	if err != nil {
		return "", fmt.Errorf("SummarizeChunk: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("SummarizeChunk: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("openai request failed",
			slog.String("error", err.Error()),
		)
		return "", err
	}
	defer resp.Body.Close()

	c.recorder.RecordOutboundRequest("openai", resp.StatusCode)
	c.recorder.RecordOutboundLatency("openai", time.Since(start))

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("SummarizeChunk: %w", err)
	}

	var parsed chatResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", fmt.Errorf("SummarizeChunk: %w", err)
	}
	if parsed.Error != nil {
		c.logger.Error("openai returned API error",
			slog.String("type", parsed.Error.Type),
			slog.String("message", parsed.Error.Message),
		)
		return "", fmt.Errorf("SummarizeChunk: API error: %s", parsed.Error.Message)
	}
	if len(parsed.Choices) == 0 {
		return "", fmt.Errorf("SummarizeChunk: empty choices in response")
	}

	return strings.TrimSpace(parsed.Choices[0].Message.Content), nil
}
