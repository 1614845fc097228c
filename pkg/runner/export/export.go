// Package export provides the runner logic for writing the collection out.
package export

import (
	"context"
	"io"

	"github.com/fatih/color"

	"tableflip.dev/todo/pkg/app"
	"tableflip.dev/todo/pkg/codec"
	"tableflip.dev/todo/pkg/model"
	"tableflip.dev/todo/pkg/store"
	"tableflip.dev/todo/pkg/view"
)

// Export writes every todo in Format.
type Export struct {
	Format string

	Config store.Config
	Out    io.Writer
}

func (n *Export) Do(ctx context.Context) error {
	e, err := codec.ForFormat(n.Format)
	if err != nil {
		return err
	}

	s, err := app.Open(ctx, n.Config, &view.Screen{})
	if err != nil {
		return err
	}
	defer s.Close()

	todos, err := s.Model.Read(ctx, model.All{})
	if err != nil {
		return err
	}

	out := n.Out
	if out == nil {
		out = color.Output
	}
	return e.Export(todos, out)
}
