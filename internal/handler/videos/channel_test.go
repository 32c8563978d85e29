package videos

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"vidchef/internal/youtube"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

func newChannelCtx(e *echo.Echo, channelID string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	ctx := e.NewContext(req, rec)
	ctx.SetPath("/channel-videos/:channel_id")
	ctx.SetParamNames("channel_id")
	ctx.SetParamValues(channelID)
	return ctx, rec
}

func TestChannelHandler(t *testing.T) {
	e := echo.New()

	t.Run("ok", func(t *testing.T) {
		yt := &fakeLister{videos: []youtube.ChannelVideo{
			{VideoID: "vid1", Title: "How to make stock", Published: time.Date(2025, 5, 2, 0, 0, 0, 0, time.UTC)},
		}}
		ctx, rec := newChannelCtx(e, "UCabc123")

		require.NoError(t, ChannelHandler(yt)(ctx))
		require.Equal(t, http.StatusOK, rec.Code)
		require.Contains(t, rec.Body.String(), "UCabc123")
		require.Contains(t, rec.Body.String(), "How to make stock")
	})

	t.Run("missing channel id", func(t *testing.T) {
		ctx, rec := newChannelCtx(e, "")
		require.NoError(t, ChannelHandler(&fakeLister{})(ctx))
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("feed failure", func(t *testing.T) {
		ctx, rec := newChannelCtx(e, "UCabc123")
		require.NoError(t, ChannelHandler(&fakeLister{err: errQuota})(ctx))
		require.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}
