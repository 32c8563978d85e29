// Package draft keeps generated summaries in Redis between the summarize
// and publish steps, keyed by an opaque draft id.
package draft

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"vidchef/internal/cache"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// ErrDraftNotFound is returned when the id is unknown or the draft expired.
var ErrDraftNotFound = errors.New("draft not found")

type Draft struct {
	ID      string `json:"id"`
	Title   string `json:"title,omitempty"`
	Content string `json:"content"`
}

type Store struct {
	cache cache.Cache
	ttl   time.Duration
}

// seams for tests
var (
	uuidNewString = uuid.NewString
	jsonMarshal   = json.Marshal
)

func NewStore(c cache.Cache, ttl time.Duration) *Store {
	return &Store{cache: c, ttl: ttl}
}

func key(id string) string { return "draft:" + id }

// Save stores the draft under a fresh uuid and returns that id.
func (s *Store) Save(ctx context.Context, title, content string) (string, error) {
	d := Draft{ID: uuidNewString(), Title: title, Content: content}
	data, err := jsonMarshal(d)
	if err != nil {
		return "", fmt.Errorf("Save: %w", err)
	}
	if err := s.cache.Set(ctx, key(d.ID), data, s.ttl).Err(); err != nil {
		return "", fmt.Errorf("Save: %w", err)
	}
	return d.ID, nil
}

// Get loads a draft by id.
func (s *Store) Get(ctx context.Context, id string) (*Draft, error) {
	data, err := s.cache.Get(ctx, key(id)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrDraftNotFound
		}
		return nil, fmt.Errorf("Get: %w", err)
	}
	var d Draft
	if err := json.Unmarshal([]byte(data), &d); err != nil {
		return nil, fmt.Errorf("Get: %w", err)
	}
	return &d, nil
}
