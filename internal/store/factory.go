package store

import (
	"context"
	"fmt"
)

// Drivers selectable via configuration.
const (
	DriverMemory   = "memory"
	DriverPostgres = "postgres"
	DriverRedis    = "redis"
)

// Options selects and configures a backend.
type Options struct {
	Driver      string
	PostgresURL string
	RedisURL    string
	RedisPrefix string
}

// Open creates a Store for the configured driver. An empty driver means
// memory.
func Open(ctx context.Context, opts Options) (*Store, error) {
	switch opts.Driver {
	case "", DriverMemory:
		return New(NewMemoryBackend()), nil
	case DriverPostgres:
		b, err := NewPostgresBackend(ctx, opts.PostgresURL)
		if err != nil {
			return nil, fmt.Errorf("postgres backend: %w", err)
		}
		return New(b), nil
	case DriverRedis:
		prefix := opts.RedisPrefix
		if prefix == "" {
			prefix = "guestposthub:"
		}
		b, err := NewRedisBackend(ctx, opts.RedisURL, prefix)
		if err != nil {
			return nil, fmt.Errorf("redis backend: %w", err)
		}
		return New(b), nil
	default:
		return nil, fmt.Errorf("unknown store driver %q", opts.Driver)
	}
}
