package openai

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"vidchef/internal/metrics"

	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

func newTestClient(endpoint string) *Client {
	c := NewClient("sk-test", http.DefaultClient, testLogger(), metrics.Nop{})
	c.endpoint = endpoint
	return c
}

func TestSummarizeChunk(t *testing.T) {
	var gotReq chatRequest
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))
		w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"  ## Stock\n1. Simmer bones.  "}}]}`))
	}))
	defer srv.Close()

	c := newTestClient(srv.URL)
	out, err := c.SummarizeChunk(context.Background(), "toast the spices")
	require.NoError(t, err)
	require.Equal(t, "## Stock\n1. Simmer bones.", out)

	require.Equal(t, "Bearer sk-test", gotAuth)
	require.Equal(t, "gpt-3.5-turbo", gotReq.Model)
	require.Equal(t, 0.5, gotReq.Temperature)
	require.Equal(t, 1500, gotReq.MaxTokens)
	require.Equal(t, 1.0, gotReq.TopP)
	require.Len(t, gotReq.Messages, 2)
	require.Equal(t, "system", gotReq.Messages[0].Role)
	require.Equal(t, "You are a chef.", gotReq.Messages[0].Content)
	require.Contains(t, gotReq.Messages[1].Content, "toast the spices")
}

func TestSummarizeChunkAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"error":{"message":"rate limited","type":"requests"}}`))
	}))
	defer srv.Close()

	_, err := newTestClient(srv.URL).SummarizeChunk(context.Background(), "x")
	require.Error(t, err)
	require.Contains(t, err.Error(), "rate limited")
}

func TestSummarizeChunkEmptyChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"choices":[]}`))
	}))
	defer srv.Close()

	_, err := newTestClient(srv.URL).SummarizeChunk(context.Background(), "x")
	require.Error(t, err)
}

func TestSummarizeChunkBadJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`nope`))
	}))
	defer srv.Close()

	_, err := newTestClient(srv.URL).SummarizeChunk(context.Background(), "x")
	require.Error(t, err)
}
