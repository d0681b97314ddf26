package store

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
)

// Fixed keys of the persisted state layout.
const (
	KeyCurrentUser = "currentUser"
	KeyUsers       = "users"
	KeyPasswords   = "passwords"
	KeyServices    = "services"
	KeyOrders      = "orders"
)

// ErrNotFound is returned when a key has no value in the backend.
var ErrNotFound = errors.New("store: key not found")

// Backend is a raw key-value backend holding JSON-encoded values.
type Backend interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Ping(ctx context.Context) error
	Close() error
}

// Store wraps a Backend with JSON encode/decode and serializes every
// mutation as a single read-modify-write. Writers in other processes
// sharing the same backend race last-write-wins; that is the documented
// policy of this data model.
type Store struct {
	mu      sync.Mutex
	backend Backend
}

func New(b Backend) *Store {
	return &Store{backend: b}
}

// Load decodes the value under key into v. Returns ErrNotFound when the
// key is absent.
func (s *Store) Load(ctx context.Context, key string, v any) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadLocked(ctx, key, v)
}

// Save encodes v and writes it under key, replacing any previous value.
func (s *Store) Save(ctx context.Context, key string, v any) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saveLocked(ctx, key, v)
}

// Delete removes key. Deleting an absent key is not an error.
func (s *Store) Delete(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	err := s.backend.Delete(ctx, key)
	if errors.Is(err, ErrNotFound) {
		return nil
	}
	return err
}

func (s *Store) Ping(ctx context.Context) error { return s.backend.Ping(ctx) }
func (s *Store) Close() error                   { return s.backend.Close() }

func (s *Store) loadLocked(ctx context.Context, key string, v any) error {
	raw, err := s.backend.Get(ctx, key)
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, v)
}

func (s *Store) saveLocked(ctx context.Context, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return s.backend.Put(ctx, key, raw)
}

// List returns the collection stored under key. An absent key is an empty
// collection.
func List[T any](ctx context.Context, s *Store, key string) ([]T, error) {
	var items []T
	if err := s.Load(ctx, key, &items); err != nil && !errors.Is(err, ErrNotFound) {
		return nil, err
	}
	return items, nil
}

// Mutate loads the collection under key, applies fn and writes the result
// back, all under the store lock. When fn returns an error nothing is
// written and the error is returned as-is.
func Mutate[T any](ctx context.Context, s *Store, key string, fn func([]T) ([]T, error)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var items []T
	if err := s.loadLocked(ctx, key, &items); err != nil && !errors.Is(err, ErrNotFound) {
		return err
	}
	next, err := fn(items)
	if err != nil {
		return err
	}
	if next == nil {
		next = []T{}
	}
	return s.saveLocked(ctx, key, next)
}
