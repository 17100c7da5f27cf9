// Package redisstore implements the metadata store on a Redis-compatible
// server. Production runs DragonflyDB; anything speaking RESP works.
package redisstore

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/TanmayQuidich/ts-container/pkg/ports"
)

// Store reads frame metadata from a Redis-compatible key-value server.
type Store struct {
	client *redis.Client
}

// Options configure the connection.
type Options struct {
	Addr     string
	Password string
	DB       int
}

// New connects to the server and verifies it is reachable. An unreachable
// server is a startup error; lookup failures after that never are.
func New(ctx context.Context, opts Options) (*Store, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     opts.Addr,
		Password: opts.Password,
		DB:       opts.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("connect to metadata store %s: %w", opts.Addr, err)
	}
	return &Store{client: client}, nil
}

// Get returns the raw value stored under key.
func (s *Store) Get(ctx context.Context, key string) (string, error) {
	value, err := s.client.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", ports.ErrMetadataNotFound
		}
		return "", fmt.Errorf("metadata get %s: %w", key, err)
	}
	return value, nil
}

// Close releases the connection pool.
func (s *Store) Close() error {
	return s.client.Close()
}

var _ ports.MetadataStore = (*Store)(nil)
