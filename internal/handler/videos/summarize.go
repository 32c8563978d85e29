// File: internal/handler/videos/summarize.go
package videos

import (
	"context"
	"net/http"
	"strings"

	"vidchef/internal/draft"
	"vidchef/internal/dto"
	"vidchef/internal/metrics"
	"vidchef/internal/openai"
	"vidchef/internal/worker"

	"github.com/labstack/echo/v4"
)

// ChunkSummarizer is the slice of the OpenAI client the summarize route
// needs.
type ChunkSummarizer interface {
	SummarizeChunk(ctx context.Context, chunk string) (string, error)
}

// titleFromSummary falls back to the first non-empty summary line when the
// caller did not name the draft.
func titleFromSummary(summary string) string {
	for _, line := range strings.Split(summary, "\n") {
		line = strings.TrimSpace(strings.TrimLeft(line, "# "))
		if line != "" {
			if len(line) > 80 {
				line = line[:80]
			}
			return line
		}
	}
	return "Untitled summary"
}

// SummarizeHandler condenses a transcript into a recipe summary. Long
// transcripts are split into chunks that are summarized concurrently on
// the worker pool and rejoined in transcript order. The result is stored
// as a draft so it can be published later by id.
// @Summary     Summarize a transcript
// @Description Produces a recipe summary and stores it as a publishable draft
// @Tags        videos
// @Accept      json
// @Produce     json
// @Param       body body dto.SummarizeRequest true "transcript to summarize"
// @Success     200 {object} dto.SummaryResponse
// @Failure     400 {object} dto.HTTPError
// @Failure     500 {object} dto.HTTPError
// @Security    ApiKeyAuth
// @Router      /summarize-medium [post]
func SummarizeHandler(ai ChunkSummarizer, pool worker.Pool, drafts *draft.Store, recorder metrics.Recorder) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req dto.SummarizeRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: "invalid request body"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: err.Error()})
		}
		ctx := c.Request().Context()

		transcript := strings.TrimSpace(req.Transcript)
		if transcript == "" {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: "Transcript cannot be blank."})
		}

		chunks := openai.ChunkTranscript(transcript)
		recorder.RecordSummaryChunks(len(chunks))

		parts, err := worker.MapOrdered(pool, len(chunks), func(i int) (string, error) {
			return ai.SummarizeChunk(ctx, chunks[i])
		})
		if err != nil {
			return c.JSON(http.StatusInternalServerError, dto.HTTPError{Message: "summarization failed"})
		}
		summary := strings.Join(parts, "\n\n")

		title := req.Title
		if title == "" {
			title = titleFromSummary(summary)
		}
		draftID, err := drafts.Save(ctx, title, summary)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, dto.HTTPError{Message: "failed to store draft"})
		}

		return c.JSON(http.StatusOK, dto.SummaryResponse{DraftID: draftID, Summary: summary})
	}
}
