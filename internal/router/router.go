// File: internal/router/router.go
package router

import (
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	echoSwagger "github.com/swaggo/echo-swagger"

	"vidchef/internal/cache"
	"vidchef/internal/database"
	"vidchef/internal/draft"
	"vidchef/internal/handler"
	"vidchef/internal/handler/auth"
	"vidchef/internal/handler/users"
	"vidchef/internal/handler/videos"
	"vidchef/internal/medium"
	"vidchef/internal/metrics"
	"vidchef/internal/middleware"
	"vidchef/internal/openai"
	"vidchef/internal/service"
	"vidchef/internal/worker"
	"vidchef/internal/youtube"
)

// Deps carries everything the routes need. Built once in main.
type Deps struct {
	DB       database.DB
	Cache    cache.Cache
	Auth     *service.Auth
	YouTube  *youtube.Client
	OpenAI   *openai.Client
	Medium   *medium.Client
	Drafts   *draft.Store
	Pool     worker.Pool
	Recorder metrics.Recorder
	Gatherer prometheus.Gatherer
}

// Setup registers all routes and middleware.
func Setup(e *echo.Echo, d Deps) {
	e.GET("/swagger/*", echoSwagger.WrapHandler)
	if d.Gatherer != nil {
		e.GET("/metrics", echo.WrapHandler(metrics.Handler(d.Gatherer)))
	}

	api := e.Group("/api")

	// open endpoints
	api.POST("/users", auth.RegisterHandler(d.Auth))
	api.POST("/token", auth.LoginHandler(d.Auth))

	// everything past the token check
	authed := api.Group("", middleware.RequireAuth(d.Auth))
	authed.GET("/ping", handler.PingHandler(d.DB, d.Cache))
	authed.GET("/users/my-profile", users.GetMyProfileHandler(d.DB))
	authed.POST("/youtube-videos", videos.SearchHandler(d.YouTube))
	authed.GET("/channel-videos/:channel_id", videos.ChannelHandler(d.YouTube))
	authed.POST("/transcript/:video_id", videos.TranscriptHandler(d.YouTube, d.Cache))
	authed.POST("/summarize-medium", videos.SummarizeHandler(d.OpenAI, d.Pool, d.Drafts, d.Recorder))
	authed.POST("/publish-medium", videos.PublishHandler(d.Medium, d.Drafts))
}
