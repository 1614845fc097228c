// Package toggleall provides the runner logic for completing every todo.
package toggleall

import (
	"context"
	"io"

	"tableflip.dev/todo/pkg/app"
	"tableflip.dev/todo/pkg/controller"
	"tableflip.dev/todo/pkg/printers"
	"tableflip.dev/todo/pkg/store"
)

// ToggleAll marks every todo completed, or active when Undo is set.
type ToggleAll struct {
	Undo   bool
	Route  controller.Route
	ShowID bool
	Trace  bool

	Config store.Config
	Out    io.Writer
}

func (n *ToggleAll) Do(ctx context.Context) error {
	pp := &printers.PrettyPrint{ShowID: n.ShowID, Trace: n.Trace, Out: n.Out}

	s, err := app.Open(ctx, n.Config, pp)
	if err != nil {
		return err
	}
	defer s.Close()

	if err := s.Show(ctx, n.Route); err != nil {
		return err
	}
	if err := s.Dispatch(ctx, controller.ToggleAllItems{Completed: !n.Undo}); err != nil {
		return err
	}

	pp.Print()
	return nil
}
