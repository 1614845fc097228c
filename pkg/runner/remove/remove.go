// Package remove provides the runner logic for deleting todos.
package remove

import (
	"context"
	"io"

	"tableflip.dev/todo/pkg/app"
	"tableflip.dev/todo/pkg/controller"
	"tableflip.dev/todo/pkg/printers"
	"tableflip.dev/todo/pkg/store"
)

// Remove deletes each of IDs. Unknown ids are ignored.
type Remove struct {
	IDs    []int
	Route  controller.Route
	ShowID bool
	Trace  bool

	Config store.Config
	Out    io.Writer
}

func (n *Remove) Do(ctx context.Context) error {
	pp := &printers.PrettyPrint{ShowID: n.ShowID, Trace: n.Trace, Out: n.Out}

	s, err := app.Open(ctx, n.Config, pp)
	if err != nil {
		return err
	}
	defer s.Close()

	if err := s.Show(ctx, n.Route); err != nil {
		return err
	}
	for _, id := range n.IDs {
		if err := s.Dispatch(ctx, controller.ItemRemove{ID: id}); err != nil {
			return err
		}
	}

	pp.Print()
	return nil
}
