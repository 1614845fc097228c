// Package model normalizes caller queries into Store calls and aggregates
// counts over the collection.
package model

import (
	"context"
	"errors"

	"tableflip.dev/todo/pkg/item"
	"tableflip.dev/todo/pkg/store"
)

// Counts summarises the collection. Active+Completed == Total.
type Counts struct {
	Active    int `json:"active"`
	Completed int `json:"completed"`
	Total     int `json:"total"`
}

// Model wraps a Store.
type Model struct {
	Store *store.Store
}

// New returns a Model backed by s.
func New(s *store.Store) *Model {
	return &Model{Store: s}
}

var errNoStore = errors.New("model: no store configured")

// Create saves a new, active item with the trimmed title. The result holds
// the created item.
func (m *Model) Create(ctx context.Context, title string) ([]item.Item, error) {
	if m.Store == nil {
		return nil, errNoStore
	}
	i := item.New(title)
	return m.Store.Create(ctx, item.Update{Title: &i.Title, Completed: &i.Completed})
}

// Read returns the items selected by q. A nil q reads everything.
func (m *Model) Read(ctx context.Context, q Query) ([]item.Item, error) {
	if m.Store == nil {
		return nil, errNoStore
	}
	switch q := q.(type) {
	case nil, All:
		return m.Store.FindAll(ctx)
	default:
		return m.Store.Find(ctx, q.predicate())
	}
}

// Update merges changes into the item with the given id.
func (m *Model) Update(ctx context.Context, id int, changes item.Update) ([]item.Item, error) {
	if m.Store == nil {
		return nil, errNoStore
	}
	return m.Store.Save(ctx, changes, id)
}

// Remove deletes the item with the given id.
func (m *Model) Remove(ctx context.Context, id int) ([]item.Item, error) {
	if m.Store == nil {
		return nil, errNoStore
	}
	return m.Store.Remove(ctx, id)
}

// RemoveAll deletes every item.
func (m *Model) RemoveAll(ctx context.Context) ([]item.Item, error) {
	if m.Store == nil {
		return nil, errNoStore
	}
	return m.Store.Drop(ctx)
}

// Count scans the collection once.
func (m *Model) Count(ctx context.Context) (Counts, error) {
	var c Counts
	if m.Store == nil {
		return c, errNoStore
	}
	todos, err := m.Store.FindAll(ctx)
	if err != nil {
		return c, err
	}
	for _, t := range todos {
		if t.Completed {
			c.Completed++
		} else {
			c.Active++
		}
		c.Total++
	}
	return c, nil
}
