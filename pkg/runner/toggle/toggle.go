// Package toggle provides the runner logic for flipping the completion state
// of todos.
package toggle

import (
	"context"
	"fmt"
	"io"

	"tableflip.dev/todo/pkg/app"
	"tableflip.dev/todo/pkg/controller"
	"tableflip.dev/todo/pkg/model"
	"tableflip.dev/todo/pkg/printers"
	"tableflip.dev/todo/pkg/store"
)

// Toggle flips each of IDs between active and completed. With Set the
// state is forced to Completed instead.
type Toggle struct {
	IDs       []int
	Set       bool
	Completed bool

	Route  controller.Route
	ShowID bool
	Trace  bool

	Config store.Config
	Out    io.Writer
}

func (n *Toggle) Do(ctx context.Context) error {
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
		found, err := s.Model.Read(ctx, model.ByID(id))
		if err != nil {
			return err
		}
		if len(found) == 0 {
			return fmt.Errorf("no todo with id %d", id)
		}
		completed := !found[0].Completed
		if n.Set {
			completed = n.Completed
		}
		if err := s.Dispatch(ctx, controller.ItemToggle{ID: id, Completed: completed}); err != nil {
			return err
		}
	}

	pp.Print()
	return nil
}
