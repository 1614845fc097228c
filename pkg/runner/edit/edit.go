// Package edit provides the runner logic for retitling a todo.
package edit

import (
	"context"
	"io"

	"tableflip.dev/todo/pkg/app"
	"tableflip.dev/todo/pkg/controller"
	"tableflip.dev/todo/pkg/printers"
	"tableflip.dev/todo/pkg/store"
)

// Edit replaces the title of the todo ID. An empty Title removes it.
type Edit struct {
	ID     int
	Title  string
	Route  controller.Route
	ShowID bool
	Trace  bool

	Config store.Config
	Out    io.Writer
}

func (n *Edit) Do(ctx context.Context) error {
	pp := &printers.PrettyPrint{ShowID: n.ShowID, Trace: n.Trace, Out: n.Out}

	s, err := app.Open(ctx, n.Config, pp)
	if err != nil {
		return err
	}
	defer s.Close()

	if err := s.Show(ctx, n.Route); err != nil {
		return err
	}
	err = s.Dispatch(ctx,
		controller.ItemEdit{ID: n.ID},
		controller.ItemEditDone{ID: n.ID, Title: n.Title},
	)
	if err != nil {
		return err
	}

	pp.Print()
	return nil
}
