// File: internal/handler/videos/search.go
package videos

import (
	"context"
	"net/http"
	"time"

	"vidchef/internal/dto"
	"vidchef/internal/youtube"

	"github.com/labstack/echo/v4"
)

// VideoSearcher is the slice of the YouTube client the search route needs.
type VideoSearcher interface {
	Search(ctx context.Context, p youtube.SearchParams) ([]string, error)
}

// SearchHandler looks up closed-captioned cooking videos via the YouTube
// Data API and returns their ids.
// @Summary     Search videos
// @Description Searches YouTube for recent captioned videos matching the query
// @Tags        videos
// @Accept      json
// @Produce     json
// @Param       body body dto.SearchVideosRequest true "search parameters"
// @Success     200 {object} dto.VideoListResponse
// @Failure     400 {object} dto.HTTPError
// @Failure     500 {object} dto.HTTPError
// @Security    ApiKeyAuth
// @Router      /youtube-videos [post]
func SearchHandler(yt VideoSearcher) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req dto.SearchVideosRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: "invalid request body"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: err.Error()})
		}

		params := youtube.SearchParams{
			Query:         req.Q,
			MaxResults:    req.MaxResults,
			Order:         req.Order,
			VideoDuration: req.VideoDuration,
		}
		if req.PublishedAfter != "" {
			t, err := time.Parse(time.RFC3339, req.PublishedAfter)
			if err != nil {
				return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: "published_after must be RFC3339"})
			}
			params.PublishedAfter = t
		}

		ids, err := yt.Search(c.Request().Context(), params)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, dto.HTTPError{Message: "video search failed"})
		}

		return c.JSON(http.StatusOK, dto.VideoListResponse{VideoIDs: ids})
	}
}
