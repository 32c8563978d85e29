package videos

import (
	"context"
	"errors"
	"net/http/httptest"
	"strings"

	"vidchef/internal/medium"
	"vidchef/internal/youtube"

	"github.com/labstack/echo/v4"
)

// shared test doubles for the route handlers in this package

var errQuota = errors.New("quota exceeded")

type okValidator struct{}

func (okValidator) Validate(i any) error { return nil }

type errValidator struct{}

func (errValidator) Validate(i any) error { return errors.New("missing field") }

type fakeSearcher struct {
	gotParams youtube.SearchParams
	ids       []string
	err       error
}

func (f *fakeSearcher) Search(ctx context.Context, p youtube.SearchParams) ([]string, error) {
	f.gotParams = p
	return f.ids, f.err
}

type fakeLister struct {
	videos []youtube.ChannelVideo
	err    error
}

func (f *fakeLister) ChannelVideos(ctx context.Context, channelID string) ([]youtube.ChannelVideo, error) {
	return f.videos, f.err
}

type fakeFetcher struct {
	calls      int
	transcript string
	err        error
}

func (f *fakeFetcher) Transcript(ctx context.Context, videoID string) (string, error) {
	f.calls++
	return f.transcript, f.err
}

type fakeSummarizer struct {
	err error
}

func (f *fakeSummarizer) SummarizeChunk(ctx context.Context, chunk string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return "summary of: " + chunk[:min(20, len(chunk))], nil
}

type fakePublisher struct {
	gotTitle   string
	gotContent string
	err        error
}

func (f *fakePublisher) Publish(ctx context.Context, title, content string) (*medium.Post, error) {
	f.gotTitle, f.gotContent = title, content
	if f.err != nil {
		return nil, f.err
	}
	return &medium.Post{ID: "post-1", URL: "https://medium.com/p/post-1"}, nil
}

func newJSONCtx(e *echo.Echo, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}
