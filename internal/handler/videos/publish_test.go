package videos

import (
	"context"
	"net/http"
	"testing"
	"time"

	"vidchef/internal/cache"
	"vidchef/internal/draft"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

func TestPublishHandler(t *testing.T) {
	e := echo.New()

	t.Run("inline content", func(t *testing.T) {
		m := &fakePublisher{}
		drafts := draft.NewStore(&cache.FakeCache{}, time.Hour)
		ctx, rec := newJSONCtx(e, http.MethodPost, "/publish-medium",
			`{"title":"Weeknight Stock","content":"## Stock\n1. Simmer."}`)

		require.NoError(t, PublishHandler(m, drafts)(ctx))
		require.Equal(t, http.StatusOK, rec.Code)
		require.Contains(t, rec.Body.String(), "post-1")
		require.Equal(t, "Weeknight Stock", m.gotTitle)
	})

	t.Run("by draft id", func(t *testing.T) {
		cch := &cache.FakeCache{GetFn: func(ctx context.Context, key string) *redis.StringCmd {
			require.Equal(t, "draft:abc-123", key)
			return redis.NewStringResult(`{"id":"abc-123","title":"Stored","content":"body"}`, nil)
		}}
		drafts := draft.NewStore(cch, time.Hour)
		m := &fakePublisher{}
		ctx, rec := newJSONCtx(e, http.MethodPost, "/publish-medium", `{"draft_id":"abc-123"}`)

		require.NoError(t, PublishHandler(m, drafts)(ctx))
		require.Equal(t, http.StatusOK, rec.Code)
		require.Equal(t, "Stored", m.gotTitle)
		require.Equal(t, "body", m.gotContent)
	})

	t.Run("unknown draft id", func(t *testing.T) {
		cch := &cache.FakeCache{GetFn: func(ctx context.Context, key string) *redis.StringCmd {
			return redis.NewStringResult("", redis.Nil)
		}}
		drafts := draft.NewStore(cch, time.Hour)
		ctx, rec := newJSONCtx(e, http.MethodPost, "/publish-medium", `{"draft_id":"gone"}`)

		require.NoError(t, PublishHandler(&fakePublisher{}, drafts)(ctx))
		require.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("neither draft nor content", func(t *testing.T) {
		drafts := draft.NewStore(&cache.FakeCache{}, time.Hour)
		ctx, rec := newJSONCtx(e, http.MethodPost, "/publish-medium", `{}`)

		require.NoError(t, PublishHandler(&fakePublisher{}, drafts)(ctx))
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("medium failure", func(t *testing.T) {
		drafts := draft.NewStore(&cache.FakeCache{}, time.Hour)
		ctx, rec := newJSONCtx(e, http.MethodPost, "/publish-medium",
			`{"title":"t","content":"c"}`)

		require.NoError(t, PublishHandler(&fakePublisher{err: errQuota}, drafts)(ctx))
		require.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}
