// Package mcp provides the Model Context Protocol server integration for todo.
package mcp

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"tableflip.dev/todo/pkg/app"
	"tableflip.dev/todo/pkg/controller"
	"tableflip.dev/todo/pkg/item"
	"tableflip.dev/todo/pkg/model"
	"tableflip.dev/todo/pkg/store"
	"tableflip.dev/todo/pkg/view"
)

// ErrTodoNotFound is returned when a todo id is not in the collection.
var ErrTodoNotFound = errors.New("todo not found")

// Service drives one controller session on behalf of MCP clients. Requests
// may arrive concurrently, so every call holds the service lock.
type Service struct {
	mu      sync.Mutex
	session *app.Session
	screen  *view.Screen
}

// Snapshot is what a view shows after an operation.
type Snapshot struct {
	Filter       string      `json:"filter"`
	Todos        []item.Item `json:"todos"`
	Active       int         `json:"active"`
	Completed    int         `json:"completed"`
	AllCompleted bool        `json:"allCompleted"`
	ItemsLeft    string      `json:"itemsLeft"`
}

// NewService wires a session over s showing every todo.
func NewService(ctx context.Context, s *store.Store) (*Service, error) {
	if s == nil {
		return nil, errors.New("store is not configured")
	}
	screen := &view.Screen{}
	session := app.New(s, screen)
	if err := session.Show(ctx, controller.RouteAll); err != nil {
		return nil, err
	}
	return &Service{session: session, screen: screen}, nil
}

// ParseFilter maps a filter name to a route. Empty means all.
func ParseFilter(name string) (controller.Route, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "all":
		return controller.RouteAll, nil
	case "active":
		return controller.RouteActive, nil
	case "completed":
		return controller.RouteCompleted, nil
	default:
		return "", fmt.Errorf("unknown filter %q (expected all, active or completed)", name)
	}
}

// List shows the todos visible on route.
func (s *Service) List(ctx context.Context, route controller.Route) (Snapshot, error) {
	return s.apply(ctx, controller.RouteChange{Hash: route.Hash()})
}

// Add creates a todo. Blank titles are ignored.
func (s *Service) Add(ctx context.Context, title string) (Snapshot, error) {
	return s.apply(ctx, controller.NewTodo{Title: title})
}

// Edit retitles a todo. A blank title removes it.
func (s *Service) Edit(ctx context.Context, id int, title string) (Snapshot, error) {
	return s.apply(ctx,
		controller.ItemEdit{ID: id},
		controller.ItemEditDone{ID: id, Title: title},
	)
}

// Toggle sets the completion state of a todo. A nil completed flips it.
func (s *Service) Toggle(ctx context.Context, id int, completed *bool) (Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	found, err := s.session.Model.Read(ctx, model.ByID(id))
	if err != nil {
		return Snapshot{}, err
	}
	if len(found) == 0 {
		return Snapshot{}, fmt.Errorf("%w: %d", ErrTodoNotFound, id)
	}
	state := !found[0].Completed
	if completed != nil {
		state = *completed
	}
	return s.dispatch(ctx, controller.ItemToggle{ID: id, Completed: state})
}

// Remove deletes a todo. Unknown ids are ignored.
func (s *Service) Remove(ctx context.Context, id int) (Snapshot, error) {
	return s.apply(ctx, controller.ItemRemove{ID: id})
}

// ClearCompleted deletes every completed todo.
func (s *Service) ClearCompleted(ctx context.Context) (Snapshot, error) {
	return s.apply(ctx, controller.RemoveCompleted{})
}

// ToggleAll sets the completion state of every todo.
func (s *Service) ToggleAll(ctx context.Context, completed bool) (Snapshot, error) {
	return s.apply(ctx, controller.ToggleAllItems{Completed: completed})
}

// Get returns one todo.
func (s *Service) Get(ctx context.Context, id int) (item.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	found, err := s.session.Model.Read(ctx, model.ByID(id))
	if err != nil {
		return item.Item{}, err
	}
	if len(found) == 0 {
		return item.Item{}, fmt.Errorf("%w: %d", ErrTodoNotFound, id)
	}
	return found[0], nil
}

// Counts scans the whole collection.
func (s *Service) Counts(ctx context.Context) (model.Counts, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.session.Model.Count(ctx)
}

func (s *Service) apply(ctx context.Context, events ...controller.Event) (Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dispatch(ctx, events...)
}

// dispatch picks up changes made by other processes, then sends events.
func (s *Service) dispatch(ctx context.Context, events ...controller.Event) (Snapshot, error) {
	if err := s.session.Controller.Refresh(ctx); err != nil {
		return Snapshot{}, err
	}
	if err := s.session.Dispatch(ctx, events...); err != nil {
		return Snapshot{}, err
	}
	return s.snapshot(), nil
}

func (s *Service) snapshot() Snapshot {
	todos := append([]item.Item{}, s.screen.Items...)
	return Snapshot{
		Filter:       strings.ToLower(s.screen.Route().String()),
		Todos:        todos,
		Active:       s.screen.Active,
		Completed:    s.screen.Completed,
		AllCompleted: s.screen.AllChecked,
		ItemsLeft:    view.ItemCounter(s.screen.Active),
	}
}
