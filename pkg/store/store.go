// Package store persists the todo collection as a single JSON blob under one
// key of a pluggable key-value backend.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"

	"tableflip.dev/todo/pkg/item"
)

var (
	// ErrNotFound is returned by a Backend when the key has no value.
	ErrNotFound = errors.New("store: key not found")
	// ErrCorrupt wraps failures to decode a persisted collection.
	ErrCorrupt = errors.New("store: corrupt collection")
	// ErrWatchUnsupported is returned by Watch when the backend cannot notify.
	ErrWatchUnsupported = errors.New("store: backend does not support watch")
)

// Backend is the key-value contract the Store is written against.
type Backend interface {
	// Read returns the value stored under key, or ErrNotFound.
	Read(ctx context.Context, key string) ([]byte, error)
	// Write replaces the value stored under key.
	Write(ctx context.Context, key string, value []byte) error
	Close() error
}

// Watcher is implemented by backends that can report external changes.
type Watcher interface {
	Watch(ctx context.Context, key string) (<-chan Event, error)
}

// Event is emitted by Watch when the value under Key changed.
type Event struct {
	Key string
}

// blob is the persisted shape: {"todos": [...]}.
type blob struct {
	Todos []item.Item `json:"todos"`
}

// Store owns the collection stored under one backend key. Every mutation
// rewrites the whole collection.
type Store struct {
	mu      sync.Mutex
	backend Backend
	name    string
}

// Load opens the collection described by cfg. A nil cfg is read with
// LoadConfig.
func Load(ctx context.Context, cfg Config) (*Store, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}
	b, err := New(cfg)
	if err != nil {
		return nil, err
	}
	s, err := Open(ctx, b, cfg.Name())
	if err != nil {
		_ = b.Close()
		return nil, err
	}
	return s, nil
}

// Open binds a Store to name, writing an empty collection if the key has no
// value yet. Opening an existing collection leaves it untouched.
func Open(ctx context.Context, b Backend, name string) (*Store, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errors.New("store: collection name required")
	}
	if b == nil {
		return nil, errors.New("store: no backend configured")
	}
	s := &Store{backend: b, name: name}

	s.mu.Lock()
	defer s.mu.Unlock()
	_, found, err := s.read(ctx)
	if err != nil {
		return nil, err
	}
	if !found {
		if err := s.write(ctx, []item.Item{}); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// Name returns the backend key of the collection.
func (s *Store) Name() string {
	return s.name
}

// Close releases the backend.
func (s *Store) Close() error {
	return s.backend.Close()
}

// Find returns every item matching p. No match is an empty result, not an error.
func (s *Store) Find(ctx context.Context, p item.Predicate) ([]item.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	todos, _, err := s.read(ctx)
	if err != nil {
		return nil, err
	}
	return p.Filter(todos), nil
}

// FindAll returns the whole collection.
func (s *Store) FindAll(ctx context.Context) ([]item.Item, error) {
	return s.Find(ctx, item.Predicate{})
}

// Create builds a new item from payload, gives it the next free id, appends
// it and returns it as a one-element slice.
func (s *Store) Create(ctx context.Context, payload item.Update) ([]item.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	todos, _, err := s.read(ctx)
	if err != nil {
		return nil, err
	}
	created := payload.Item()
	created.ID = nextID(todos)
	todos = append(todos, created)
	if err := s.write(ctx, todos); err != nil {
		return nil, err
	}
	return []item.Item{created}, nil
}

// Save merges payload into the first item with the given id and returns the
// whole collection. Save never appends: an unknown id, 0 included, is not an
// error and the unchanged collection is written back and returned.
func (s *Store) Save(ctx context.Context, payload item.Update, id int) ([]item.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	todos, _, err := s.read(ctx)
	if err != nil {
		return nil, err
	}

	for i := range todos {
		if todos[i].ID == id {
			todos[i] = payload.Apply(todos[i])
			break
		}
	}
	if err := s.write(ctx, todos); err != nil {
		return nil, err
	}
	return todos, nil
}

// Remove deletes every item with the given id and returns what is left.
func (s *Store) Remove(ctx context.Context, id int) ([]item.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	todos, _, err := s.read(ctx)
	if err != nil {
		return nil, err
	}
	kept := todos[:0]
	for _, t := range todos {
		if t.ID != id {
			kept = append(kept, t)
		}
	}
	if err := s.write(ctx, kept); err != nil {
		return nil, err
	}
	return kept, nil
}

// Drop empties the collection.
func (s *Store) Drop(ctx context.Context) ([]item.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	todos := []item.Item{}
	if err := s.write(ctx, todos); err != nil {
		return nil, err
	}
	return todos, nil
}

// Watch reports changes made to the collection from outside this Store.
func (s *Store) Watch(ctx context.Context) (<-chan Event, error) {
	w, ok := s.backend.(Watcher)
	if !ok {
		return nil, ErrWatchUnsupported
	}
	return w.Watch(ctx, s.name)
}

// Raw returns the persisted blob as stored by the backend.
func (s *Store) Raw(ctx context.Context) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, err := s.backend.Read(ctx, s.name)
	if err != nil {
		return nil, fmt.Errorf("store: read %q: %w", s.name, err)
	}
	return data, nil
}

// read loads the collection. A missing key reads as an empty collection with
// found set to false.
func (s *Store) read(ctx context.Context) ([]item.Item, bool, error) {
	data, err := s.backend.Read(ctx, s.name)
	if errors.Is(err, ErrNotFound) {
		return []item.Item{}, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("store: read %q: %w", s.name, err)
	}
	todos, err := Decode(data)
	if err != nil {
		return nil, true, fmt.Errorf("%q: %w", s.name, err)
	}
	return todos, true, nil
}

func (s *Store) write(ctx context.Context, todos []item.Item) error {
	data, err := Encode(todos)
	if err != nil {
		return fmt.Errorf("store: encode %q: %w", s.name, err)
	}
	if err := s.backend.Write(ctx, s.name, data); err != nil {
		return fmt.Errorf("store: write %q: %w", s.name, err)
	}
	return nil
}

// Encode serializes todos in the persisted {"todos": [...]} shape.
func Encode(todos []item.Item) ([]byte, error) {
	if todos == nil {
		todos = []item.Item{}
	}
	return json.Marshal(blob{Todos: todos})
}

// Decode parses the persisted {"todos": [...]} shape.
func Decode(data []byte) ([]item.Item, error) {
	var b blob
	if err := json.Unmarshal(data, &b); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	if b.Todos == nil {
		b.Todos = []item.Item{}
	}
	return b.Todos, nil
}

// nextID is one past the largest id in use, so ids are never reused.
func nextID(todos []item.Item) int {
	max := 0
	for _, t := range todos {
		if t.ID > max {
			max = t.ID
		}
	}
	return max + 1
}
