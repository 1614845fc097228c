// Package add provides the runner logic for creating todos.
package add

import (
	"context"
	"io"

	"tableflip.dev/todo/pkg/app"
	"tableflip.dev/todo/pkg/controller"
	"tableflip.dev/todo/pkg/printers"
	"tableflip.dev/todo/pkg/store"
)

// Add creates a todo from Title and prints the list it lands in.
type Add struct {
	Title  string
	Route  controller.Route
	ShowID bool
	Trace  bool

	// Config is read with store.LoadConfig when nil.
	Config store.Config
	Out    io.Writer
}

func (n *Add) Do(ctx context.Context) error {
	pp := &printers.PrettyPrint{ShowID: n.ShowID, Trace: n.Trace, Out: n.Out}

	s, err := app.Open(ctx, n.Config, pp)
	if err != nil {
		return err
	}
	defer s.Close()

	if err := s.Show(ctx, n.Route); err != nil {
		return err
	}
	if err := s.Dispatch(ctx, controller.NewTodo{Title: n.Title}); err != nil {
		return err
	}

	pp.Print()
	return nil
}
