package app

import (
	"context"
	"errors"

	"tableflip.dev/todo/pkg/controller"
	"tableflip.dev/todo/pkg/model"
	"tableflip.dev/todo/pkg/store"
)

// Session wires a Store, a Model and a Controller rendering to one View.
// CLIs and UIs share it so that every surface drives the same state machine.
type Session struct {
	Store      *store.Store
	Model      *model.Model
	Controller *controller.Controller
}

// Open loads the store described by cfg (LoadConfig when nil) and wires a
// session rendering to v.
func Open(ctx context.Context, cfg store.Config, v controller.View) (*Session, error) {
	if v == nil {
		return nil, errors.New("app: no view configured")
	}
	s, err := store.Load(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return New(s, v), nil
}

// New wires a session over an already opened store.
func New(s *store.Store, v controller.View) *Session {
	m := model.New(s)
	return &Session{
		Store:      s,
		Model:      m,
		Controller: controller.New(m, v),
	}
}

// Show loads route into the view. It is the first call of every session.
func (s *Session) Show(ctx context.Context, route controller.Route) error {
	return s.Controller.SetView(ctx, route.Hash())
}

// Dispatch sends events to the controller in order, stopping at the first error.
func (s *Session) Dispatch(ctx context.Context, events ...controller.Event) error {
	for _, ev := range events {
		if err := s.Controller.Dispatch(ctx, ev); err != nil {
			return err
		}
	}
	return nil
}

// Reset deletes every item and re-renders.
func (s *Session) Reset(ctx context.Context) error {
	if _, err := s.Model.RemoveAll(ctx); err != nil {
		return err
	}
	return s.Controller.Refresh(ctx)
}

// Watch reports external changes to the collection. Backends that cannot
// watch return store.ErrWatchUnsupported.
func (s *Session) Watch(ctx context.Context) (<-chan store.Event, error) {
	return s.Store.Watch(ctx)
}

// Close releases the store.
func (s *Session) Close() error {
	return s.Store.Close()
}
