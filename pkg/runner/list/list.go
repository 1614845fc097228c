// Package list provides the runner logic for printing todos.
package list

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"

	"tableflip.dev/todo/pkg/app"
	"tableflip.dev/todo/pkg/controller"
	"tableflip.dev/todo/pkg/printers"
	"tableflip.dev/todo/pkg/store"
)

// List prints the todos visible on Route.
type List struct {
	Route  controller.Route
	ShowID bool
	Trace  bool
	// JSON prints the visible items as a JSON array instead of a table.
	JSON bool

	Config store.Config
	Out    io.Writer
}

func (n *List) Do(ctx context.Context) error {
	pp := &printers.PrettyPrint{ShowID: n.ShowID, Trace: n.Trace, Out: n.Out}

	s, err := app.Open(ctx, n.Config, pp)
	if err != nil {
		return err
	}
	defer s.Close()

	if err := s.Show(ctx, n.Route); err != nil {
		return err
	}

	if n.JSON {
		b, err := json.MarshalIndent(pp.Screen().Items, "", "  ")
		if err != nil {
			return err
		}
		_, _ = fmt.Fprintln(n.out(), string(b))
		return nil
	}

	pp.Print()
	return nil
}

func (n *List) out() io.Writer {
	if n.Out != nil {
		return n.Out
	}
	return color.Output
}
