// File: cmd/service/main.go
// @title        VidChef API
// @version      1.0
// @description  Backend that turns cooking videos into publishable recipe summaries
// @host         localhost:8080
// @BasePath     /api
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"vidchef/internal/cache"
	"vidchef/internal/config"
	"vidchef/internal/database"
	"vidchef/internal/draft"
	"vidchef/internal/medium"
	"vidchef/internal/metrics"
	"vidchef/internal/openai"
	"vidchef/internal/router"
	"vidchef/internal/security"
	"vidchef/internal/service"
	"vidchef/internal/worker"
	"vidchef/internal/youtube"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"

	_ "vidchef/docs" // swag generated docs
)

const (
	outboundTimeout = 30 * time.Second
	draftTTL        = 24 * time.Hour
)

// CustomValidator wraps go-playground/validator for Echo
// swagger:ignore
type CustomValidator struct {
	validator *validator.Validate
}

// Validate calls the underlying validator
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

// seams for tests
var (
	loadConfig     = config.Load
	runMigrations  = database.RunMigrations
	newPgxPool     = database.NewPgxPool
	newRedisClient = cache.NewRedisClient
	startServer    = func(e *echo.Echo, addr string) error { return e.Start(addr) }
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	if err := run(logger); err != nil {
		logger.Error("service exited", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run(logger *slog.Logger) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	if err := runMigrations(cfg.DatabaseURL); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}

	db, err := newPgxPool(context.Background(), cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer db.Close()

	cch, err := newRedisClient(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	if err != nil {
		return fmt.Errorf("connect redis: %w", err)
	}
	defer func() {
		if err := cch.Close(); err != nil {
			logger.Warn("closing redis", slog.String("error", err.Error()))
		}
	}()

	registry := prometheus.NewRegistry()
	collector := metrics.NewCollector(registry)

	httpClient := security.NewOutboundClient(outboundTimeout)
	codec := service.NewCodec(cfg.JWTSecret, cfg.TokenTTL)

	pool := worker.NewPool(cfg.WorkerCount)
	defer pool.Stop()

	e := echo.New()
	e.Validator = &CustomValidator{validator: validator.New()}
	e.Use(echomw.Logger())
	e.Use(echomw.Recover())

	router.Setup(e, router.Deps{
		DB:       db,
		Cache:    cch,
		Auth:     service.NewAuth(db, codec, cfg.BcryptCost),
		YouTube:  youtube.NewClient(cfg.YouTubeAPIKey, httpClient, logger, collector),
		OpenAI:   openai.NewClient(cfg.OpenAIAPIKey, httpClient, logger, collector),
		Medium:   medium.NewClient(cfg.MediumToken, httpClient, logger, collector),
		Drafts:   draft.NewStore(cch, draftTTL),
		Pool:     pool,
		Recorder: collector,
		Gatherer: registry,
	})

	logger.Info("starting server", slog.String("addr", cfg.ServerAddr))
	return startServer(e, cfg.ServerAddr)
}
