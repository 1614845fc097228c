// Package clear provides the runner logic for deleting completed todos.
package clear

import (
	"context"
	"io"

	"tableflip.dev/todo/pkg/app"
	"tableflip.dev/todo/pkg/controller"
	"tableflip.dev/todo/pkg/printers"
	"tableflip.dev/todo/pkg/store"
)

// Clear removes every completed todo.
type Clear struct {
	Route  controller.Route
	ShowID bool
	Trace  bool

	Config store.Config
	Out    io.Writer
}

func (n *Clear) Do(ctx context.Context) error {
	pp := &printers.PrettyPrint{ShowID: n.ShowID, Trace: n.Trace, Out: n.Out}

	s, err := app.Open(ctx, n.Config, pp)
	if err != nil {
		return err
	}
	defer s.Close()

	if err := s.Show(ctx, n.Route); err != nil {
		return err
	}
	if err := s.Dispatch(ctx, controller.RemoveCompleted{}); err != nil {
		return err
	}

	pp.Print()
	return nil
}
