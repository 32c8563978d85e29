// File: internal/config/config.go
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
)

// Config holds the whole process configuration. It is read from the
// environment exactly once at startup and treated as immutable afterwards;
// in particular the JWT secret must never be re-read per request.
type Config struct {
	// Database
	DatabaseURL string

	// Redis
	RedisAddr     string
	RedisPassword string
	RedisDB       int

	// Tokens
	JWTSecret    string
	JWTAlgorithm string
	TokenTTL     time.Duration

	// Passwords
	BcryptCost int

	// External APIs
	YouTubeAPIKey string
	OpenAIAPIKey  string
	MediumToken   string

	// Server
	ServerAddr  string
	WorkerCount int
}

const (
	// DefaultTokenTTL bounds token lifetime when TOKEN_TTL is not set.
	// Tokens always carry an expiry claim.
	DefaultTokenTTL = 24 * time.Hour

	// DefaultBcryptCost is the password hashing work factor.
	DefaultBcryptCost = 12
)

// Load reads the configuration from environment variables. All missing
// required variables are reported in a single error.
func Load() (*Config, error) {
	cfg := &Config{
		JWTAlgorithm: "HS256",
		TokenTTL:     DefaultTokenTTL,
		BcryptCost:   DefaultBcryptCost,
		ServerAddr:   ":8080",
		WorkerCount:  4,
	}

	var missing []string

	cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	if cfg.DatabaseURL == "" {
		missing = append(missing, "DATABASE_URL")
	}

	cfg.RedisAddr = os.Getenv("REDIS_ADDR")
	if cfg.RedisAddr == "" {
		missing = append(missing, "REDIS_ADDR")
	}
	cfg.RedisPassword = os.Getenv("REDIS_PASSWORD")
	if v := os.Getenv("REDIS_DB"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return nil, fmt.Errorf("invalid REDIS_DB: %q", v)
		}
		cfg.RedisDB = n
	}

	cfg.JWTSecret = os.Getenv("JWT_SECRET")
	if cfg.JWTSecret == "" {
		missing = append(missing, "JWT_SECRET")
	}
	if v := os.Getenv("JWT_ALGORITHM"); v != "" {
		cfg.JWTAlgorithm = v
	}
	if v := os.Getenv("TOKEN_TTL"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil || d <= 0 {
			return nil, fmt.Errorf("invalid TOKEN_TTL: %q", v)
		}
		cfg.TokenTTL = d
	}

	if v := os.Getenv("BCRYPT_COST"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < bcrypt.MinCost || n > bcrypt.MaxCost {
			return nil, fmt.Errorf("invalid BCRYPT_COST: %q", v)
		}
		cfg.BcryptCost = n
	}

	cfg.YouTubeAPIKey = os.Getenv("YOUTUBE_API_KEY")
	if cfg.YouTubeAPIKey == "" {
		missing = append(missing, "YOUTUBE_API_KEY")
	}
	cfg.OpenAIAPIKey = os.Getenv("OPENAI_API_KEY")
	if cfg.OpenAIAPIKey == "" {
		missing = append(missing, "OPENAI_API_KEY")
	}
	cfg.MediumToken = os.Getenv("MEDIUM_TOKEN")
	if cfg.MediumToken == "" {
		missing = append(missing, "MEDIUM_TOKEN")
	}

	if v := os.Getenv("SERVER_ADDR"); v != "" {
		cfg.ServerAddr = v
	}
	if v := os.Getenv("WORKER_COUNT"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return nil, fmt.Errorf("invalid WORKER_COUNT: %q", v)
		}
		cfg.WorkerCount = n
	}

	if len(missing) > 0 {
		return nil, fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", "))
	}

	if cfg.JWTAlgorithm != "HS256" {
		return nil, fmt.Errorf("unsupported JWT_ALGORITHM: %q (only HS256 is supported)", cfg.JWTAlgorithm)
	}

	return cfg, nil
}
