package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/shashiranjanraj/pitstore/pkg/kv"
)

// Keys names the snapshot keys under one prefix.
type Keys struct {
	Cart           string
	CurrentUser    string
	Users          string
	Orders         string
	SearchQuery    string
	FilterCategory string
	FilterTeam     string
}

// NewKeys returns the key set for prefix ("f1_" gives f1_cart, f1_users, ...).
func NewKeys(prefix string) Keys {
	return Keys{
		Cart:           prefix + "cart",
		CurrentUser:    prefix + "current_user",
		Users:          prefix + "users",
		Orders:         prefix + "orders",
		SearchQuery:    prefix + "search_query",
		FilterCategory: prefix + "filter_category",
		FilterTeam:     prefix + "filter_team",
	}
}

// Snapshot reads and writes one JSON value stored whole under a single key.
type Snapshot[T any] struct {
	store kv.Store
	key   string
}

func NewSnapshot[T any](store kv.Store, key string) *Snapshot[T] {
	return &Snapshot[T]{store: store, key: key}
}

// Load decodes the stored value. found is false, with a zero value, when
// nothing has been saved yet.
func (s *Snapshot[T]) Load(ctx context.Context) (value T, found bool, err error) {
	raw, err := s.store.Get(ctx, s.key)
	if errors.Is(err, kv.ErrNotFound) {
		return value, false, nil
	}
	if err != nil {
		return value, false, fmt.Errorf("snapshot %s: load: %w", s.key, err)
	}
	if err := json.Unmarshal(raw, &value); err != nil {
		return value, false, fmt.Errorf("snapshot %s: decode: %w", s.key, err)
	}
	return value, true, nil
}

// Save overwrites the stored value.
func (s *Snapshot[T]) Save(ctx context.Context, value T) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("snapshot %s: encode: %w", s.key, err)
	}
	if err := s.store.Put(ctx, s.key, raw); err != nil {
		return fmt.Errorf("snapshot %s: save: %w", s.key, err)
	}
	return nil
}

// Clear removes the stored value.
func (s *Snapshot[T]) Clear(ctx context.Context) error {
	if err := s.store.Delete(ctx, s.key); err != nil {
		return fmt.Errorf("snapshot %s: clear: %w", s.key, err)
	}
	return nil
}

// Key returns the storage key.
func (s *Snapshot[T]) Key() string { return s.key }
