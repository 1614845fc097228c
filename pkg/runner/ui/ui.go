// Package ui provides the runner logic for the interactive views.
package ui

import (
	"context"
	"errors"
	"os"

	"github.com/mattn/go-isatty"

	"tableflip.dev/todo/pkg/app"
	"tableflip.dev/todo/pkg/controller"
	"tableflip.dev/todo/pkg/store"
	"tableflip.dev/todo/pkg/tui"
)

type UI struct {
	Route controller.Route
	// Classic selects the table based view instead of the default one.
	Classic bool

	Config store.Config
}

// ErrNoTerminal is returned when stdout is not a terminal.
var ErrNoTerminal = errors.New("ui needs a terminal, try 'todo list' instead")

func (d *UI) Do(ctx context.Context) error {
	if fd := os.Stdout.Fd(); !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd) {
		return ErrNoTerminal
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	if d.Classic {
		c := &Classic{}
		s, err := app.Open(ctx, d.Config, c)
		if err != nil {
			return err
		}
		defer s.Close()
		return c.Run(ctx, s, d.Route)
	}

	m := tui.New(ctx)
	s, err := app.Open(ctx, d.Config, m)
	if err != nil {
		return err
	}
	defer s.Close()

	if err := m.Start(s, d.Route); err != nil {
		return err
	}
	return tui.Run(m)
}
