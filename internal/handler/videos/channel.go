// File: internal/handler/videos/channel.go
package videos

import (
	"context"
	"net/http"

	"vidchef/internal/dto"
	"vidchef/internal/youtube"

	"github.com/labstack/echo/v4"
)

// ChannelLister is the slice of the YouTube client the channel route needs.
type ChannelLister interface {
	ChannelVideos(ctx context.Context, channelID string) ([]youtube.ChannelVideo, error)
}

// ChannelHandler lists a channel's latest uploads from its public Atom
// feed, which costs no Data API quota.
// @Summary     List channel uploads
// @Description Returns the latest videos of a channel from its Atom feed
// @Tags        videos
// @Produce     json
// @Param       channel_id path string true "YouTube channel id"
// @Success     200 {object} dto.ChannelVideosResponse
// @Failure     400 {object} dto.HTTPError
// @Failure     500 {object} dto.HTTPError
// @Security    ApiKeyAuth
// @Router      /channel-videos/{channel_id} [get]
func ChannelHandler(yt ChannelLister) echo.HandlerFunc {
	return func(c echo.Context) error {
		channelID := c.Param("channel_id")
		if channelID == "" {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: "channel_id is required"})
		}

		items, err := yt.ChannelVideos(c.Request().Context(), channelID)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, dto.HTTPError{Message: "channel feed fetch failed"})
		}

		videos := make([]dto.ChannelVideo, 0, len(items))
		for _, v := range items {
			videos = append(videos, dto.ChannelVideo{
				VideoID:   v.VideoID,
				Title:     v.Title,
				Published: v.Published,
			})
		}

		return c.JSON(http.StatusOK, dto.ChannelVideosResponse{
			ChannelID: channelID,
			Videos:    videos,
		})
	}
}
