// Package count provides the runner logic for the aggregate counts.
package count

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"

	"tableflip.dev/todo/pkg/app"
	"tableflip.dev/todo/pkg/printers"
	"tableflip.dev/todo/pkg/store"
	"tableflip.dev/todo/pkg/view"
)

// Count prints the active, completed and total counts.
type Count struct {
	JSON bool

	Config store.Config
	Out    io.Writer
}

func (n *Count) Do(ctx context.Context) error {
	pp := &printers.PrettyPrint{Out: n.Out}

	s, err := app.Open(ctx, n.Config, pp)
	if err != nil {
		return err
	}
	defer s.Close()

	c, err := s.Model.Count(ctx)
	if err != nil {
		return err
	}

	if n.JSON {
		b, err := json.Marshal(map[string]int{
			"active":    c.Active,
			"completed": c.Completed,
			"total":     c.Total,
		})
		if err != nil {
			return err
		}
		_, _ = fmt.Fprintln(n.out(), string(b))
		return nil
	}

	pp.Counts(c)
	_, _ = color.New(color.Faint).Fprintln(n.out(), view.ItemCounter(c.Active))
	return nil
}

func (n *Count) out() io.Writer {
	if n.Out != nil {
		return n.Out
	}
	return color.Output
}
