package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/charm/kv"
	"github.com/dgraph-io/badger/v3"
)

// CharmBackend keeps the collection in a Charm KV database, synced with the
// Charm server configured through the CHARM_* environment.
type CharmBackend struct {
	db *kv.KV
}

// NewCharm opens the named Charm KV database and pulls remote changes.
func NewCharm(name string) (*CharmBackend, error) {
	db, err := kv.OpenWithDefaults(name)
	if err != nil {
		return nil, fmt.Errorf("store: open charm kv %q: %w", name, err)
	}
	if err := db.Sync(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("store: sync charm kv %q: %w", name, err)
	}
	return &CharmBackend{db: db}, nil
}

func (c *CharmBackend) Read(ctx context.Context, key string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	val, err := c.db.Get([]byte(key))
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return val, nil
}

// Write stores value locally and pushes it to the server.
func (c *CharmBackend) Write(ctx context.Context, key string, value []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := c.db.Set([]byte(key), value); err != nil {
		return err
	}
	return c.db.Sync()
}

func (c *CharmBackend) Close() error {
	return c.db.Close()
}
