package main

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"vidchef/internal/cache"
	"vidchef/internal/config"
	"vidchef/internal/database"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

func restoreGlobals(t *testing.T) {
	origLoad := loadConfig
	origMigrate := runMigrations
	origPool := newPgxPool
	origRedis := newRedisClient
	origStart := startServer
	t.Cleanup(func() {
		loadConfig = origLoad
		runMigrations = origMigrate
		newPgxPool = origPool
		newRedisClient = origRedis
		startServer = origStart
	})
}

func testConfig() *config.Config {
	return &config.Config{
		DatabaseURL:  "postgres://localhost/vidchef",
		RedisAddr:    "localhost:6379",
		JWTSecret:    "secret",
		JWTAlgorithm: "HS256",
		TokenTTL:     time.Hour,
		BcryptCost:   4,
		ServerAddr:   ":8080",
		WorkerCount:  2,
	}
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

func TestRun(t *testing.T) {
	t.Run("config failure", func(t *testing.T) {
		restoreGlobals(t)
		loadConfig = func() (*config.Config, error) { return nil, errors.New("missing JWT_SECRET") }
		err := run(discardLogger())
		require.ErrorContains(t, err, "load config")
	})

	t.Run("migration failure", func(t *testing.T) {
		restoreGlobals(t)
		loadConfig = func() (*config.Config, error) { return testConfig(), nil }
		runMigrations = func(dbURL string) error { return errors.New("dirty schema") }
		err := run(discardLogger())
		require.ErrorContains(t, err, "run migrations")
	})

	t.Run("database failure", func(t *testing.T) {
		restoreGlobals(t)
		loadConfig = func() (*config.Config, error) { return testConfig(), nil }
		runMigrations = func(dbURL string) error { return nil }
		newPgxPool = func(ctx context.Context, url string) (database.DB, error) {
			return nil, errors.New("refused")
		}
		err := run(discardLogger())
		require.ErrorContains(t, err, "connect database")
	})

	t.Run("redis failure", func(t *testing.T) {
		restoreGlobals(t)
		loadConfig = func() (*config.Config, error) { return testConfig(), nil }
		runMigrations = func(dbURL string) error { return nil }
		newPgxPool = func(ctx context.Context, url string) (database.DB, error) {
			return &database.FakeDB{}, nil
		}
		newRedisClient = func(addr, password string, db int) (cache.Cache, error) {
			return nil, errors.New("refused")
		}
		err := run(discardLogger())
		require.ErrorContains(t, err, "connect redis")
	})

	t.Run("starts server with wired routes", func(t *testing.T) {
		restoreGlobals(t)
		loadConfig = func() (*config.Config, error) { return testConfig(), nil }
		runMigrations = func(dbURL string) error { return nil }
		newPgxPool = func(ctx context.Context, url string) (database.DB, error) {
			return &database.FakeDB{}, nil
		}
		newRedisClient = func(addr, password string, db int) (cache.Cache, error) {
			return &cache.FakeCache{}, nil
		}
		var gotAddr string
		var routes int
		startServer = func(e *echo.Echo, addr string) error {
			gotAddr = addr
			routes = len(e.Routes())
			return nil
		}

		require.NoError(t, run(discardLogger()))
		require.Equal(t, ":8080", gotAddr)
		require.NotZero(t, routes)
	})
}
