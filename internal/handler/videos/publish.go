// File: internal/handler/videos/publish.go
package videos

import (
	"context"
	"errors"
	"net/http"

	"vidchef/internal/draft"
	"vidchef/internal/dto"
	"vidchef/internal/medium"

	"github.com/labstack/echo/v4"
)

// Publisher is the slice of the Medium client the publish route needs.
type Publisher interface {
	Publish(ctx context.Context, title, content string) (*medium.Post, error)
}

// PublishHandler posts a summary to Medium as a markdown draft. The body
// names either a stored draft by id or carries the title and content inline.
// @Summary     Publish a summary to Medium
// @Description Creates a Medium draft post from a stored or inline summary
// @Tags        videos
// @Accept      json
// @Produce     json
// @Param       body body dto.PublishRequest true "draft id or inline content"
// @Success     200 {object} dto.PublishResponse
// @Failure     400 {object} dto.HTTPError
// @Failure     404 {object} dto.HTTPError
// @Failure     500 {object} dto.HTTPError
// @Security    ApiKeyAuth
// @Router      /publish-medium [post]
func PublishHandler(m Publisher, drafts *draft.Store) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req dto.PublishRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: "invalid request body"})
		}
		ctx := c.Request().Context()

		title, content := req.Title, req.Content
		if req.DraftID != "" {
			d, err := drafts.Get(ctx, req.DraftID)
			if err != nil {
				if errors.Is(err, draft.ErrDraftNotFound) {
					return c.JSON(http.StatusNotFound, dto.HTTPError{Message: "draft not found"})
				}
				return c.JSON(http.StatusInternalServerError, dto.HTTPError{Message: "draft lookup failed"})
			}
			title, content = d.Title, d.Content
		}
		if title == "" || content == "" {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: "draft_id or title and content are required"})
		}

		post, err := m.Publish(ctx, title, content)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, dto.HTTPError{Message: "publish failed"})
		}

		return c.JSON(http.StatusOK, dto.PublishResponse{PostID: post.ID, URL: post.URL})
	}
}
