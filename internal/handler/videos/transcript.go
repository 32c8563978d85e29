// File: internal/handler/videos/transcript.go
package videos

import (
	"context"
	"errors"
	"net/http"
	"time"

	"vidchef/internal/cache"
	"vidchef/internal/dto"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
)

// TranscriptFetcher is the slice of the YouTube client the transcript
// route needs.
type TranscriptFetcher interface {
	Transcript(ctx context.Context, videoID string) (string, error)
}

// transcriptTTL keeps fetched captions around long enough to survive a
// summarize retry without refetching from YouTube.
const transcriptTTL = 24 * time.Hour

func transcriptKey(videoID string) string { return "transcript:" + videoID }

// TranscriptHandler fetches the closed captions of a video, stripped of
// markup, memoized in the cache.
// @Summary     Fetch a video transcript
// @Description Returns the plain-text captions of a video
// @Tags        videos
// @Produce     json
// @Param       video_id path string true "YouTube video id"
// @Success     200 {object} dto.TranscriptResponse
// @Failure     400 {object} dto.HTTPError
// @Failure     500 {object} dto.HTTPError
// @Security    ApiKeyAuth
// @Router      /transcript/{video_id} [post]
func TranscriptHandler(yt TranscriptFetcher, store cache.Cache) echo.HandlerFunc {
	return func(c echo.Context) error {
		videoID := c.Param("video_id")
		if videoID == "" {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: "video_id is required"})
		}
		ctx := c.Request().Context()

		cached, err := store.Get(ctx, transcriptKey(videoID)).Result()
		if err == nil {
			return c.JSON(http.StatusOK, dto.TranscriptResponse{VideoID: videoID, Transcript: cached})
		}
		if !errors.Is(err, redis.Nil) {
			return c.JSON(http.StatusInternalServerError, dto.HTTPError{Message: "cache lookup failed"})
		}

		transcript, err := yt.Transcript(ctx, videoID)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, dto.HTTPError{Message: "transcript fetch failed"})
		}

		// best effort; serving the transcript matters more than caching it
		store.Set(ctx, transcriptKey(videoID), transcript, transcriptTTL)

		return c.JSON(http.StatusOK, dto.TranscriptResponse{VideoID: videoID, Transcript: transcript})
	}
}
