// Package drop provides the runner logic for emptying the collection.
package drop

import (
	"context"
	"fmt"
	"io"

	"github.com/fatih/color"

	"tableflip.dev/todo/pkg/app"
	"tableflip.dev/todo/pkg/printers"
	"tableflip.dev/todo/pkg/store"
)

// Drop deletes every todo in the collection.
type Drop struct {
	Trace bool

	Config store.Config
	Out    io.Writer
}

func (n *Drop) Do(ctx context.Context) error {
	pp := &printers.PrettyPrint{Trace: n.Trace, Out: n.Out}

	s, err := app.Open(ctx, n.Config, pp)
	if err != nil {
		return err
	}
	defer s.Close()

	c, err := s.Model.Count(ctx)
	if err != nil {
		return err
	}
	if err := s.Reset(ctx); err != nil {
		return err
	}

	out := n.Out
	if out == nil {
		out = color.Output
	}
	_, _ = fmt.Fprintf(out, "dropped %d from %q\n", c.Total, s.Store.Name())
	return nil
}
