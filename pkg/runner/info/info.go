// Package info provides the runner logic for describing where todos are stored.
package info

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/todo/pkg/model"
	"tableflip.dev/todo/pkg/store"
)

type Info struct {
	Config store.Config
	Out    io.Writer
}

func (n *Info) Do(ctx context.Context) error {
	out := n.Out
	if out == nil {
		out = color.Output
	}

	if override := os.Getenv("TODO_CONFIG_PATH"); override != "" {
		_, _ = fmt.Fprintln(out, "TODO_CONFIG_PATH found on env, using", override)
	} else {
		_, _ = fmt.Fprintln(out, "TODO_CONFIG_PATH env var not set")
	}

	if n.Config == nil {
		var err error
		n.Config, err = store.LoadConfig()
		if err != nil {
			return err
		}
	}

	tbl := uitable.New()
	tbl.AddRow("backend:", n.Config.Backend())
	tbl.AddRow("path:", n.Config.BasePath())
	tbl.AddRow("name:", n.Config.Name())
	tbl.AddRow("backends:", strings.Join(store.Backends(), ", "))

	s, err := store.Load(ctx, n.Config)
	if err != nil {
		return fmt.Errorf("failed to open store: %w", err)
	}
	defer s.Close()

	c, err := model.New(s).Count(ctx)
	if err != nil {
		return err
	}
	tbl.AddRow("todos:", fmt.Sprintf("%d (%d active, %d completed)", c.Total, c.Active, c.Completed))

	raw, err := s.Raw(ctx)
	if err != nil {
		return err
	}
	tbl.AddRow("stored:", humanize.Bytes(uint64(len(raw))))

	wctx, cancel := context.WithCancel(ctx)
	defer cancel()
	if _, err := s.Watch(wctx); errors.Is(err, store.ErrWatchUnsupported) {
		tbl.AddRow("watch:", "unsupported")
	} else if err == nil {
		tbl.AddRow("watch:", "supported")
	}

	_, _ = fmt.Fprintln(out, tbl)
	return nil
}
