package sizestore

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/redis/go-redis/v9"
)

var ErrInvalidSize = errors.New("maze size must be positive")

// RedisSizeStore keeps the last maze size under a single Redis key.
type RedisSizeStore struct {
	client      *redis.Client
	key         string
	defaultSize int
}

// NewRedisSizeStore creates a store reading and writing key.
func NewRedisSizeStore(client *redis.Client, key string, defaultSize int) *RedisSizeStore {
	return &RedisSizeStore{client: client, key: key, defaultSize: defaultSize}
}

// LastSize returns the saved size, or the default when the key is missing.
func (s *RedisSizeStore) LastSize(ctx context.Context) (int, error) {
	val, err := s.client.Get(ctx, s.key).Result()
	if errors.Is(err, redis.Nil) {
		return s.defaultSize, nil
	}
	if err != nil {
		return s.defaultSize, fmt.Errorf("reading %s: %w", s.key, err)
	}

	size, err := strconv.Atoi(val)
	if err != nil || size <= 0 {
		return s.defaultSize, fmt.Errorf("%w: stored value %q", ErrInvalidSize, val)
	}
	return size, nil
}

// SaveSize stores size without expiry.
func (s *RedisSizeStore) SaveSize(ctx context.Context, size int) error {
	if size <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidSize, size)
	}
	if err := s.client.Set(ctx, s.key, size, 0).Err(); err != nil {
		return fmt.Errorf("writing %s: %w", s.key, err)
	}
	return nil
}
