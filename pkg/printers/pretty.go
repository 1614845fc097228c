package printers

import (
	"fmt"
	"io"
	"strconv"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/todo/pkg/controller"
	"tableflip.dev/todo/pkg/model"
	"tableflip.dev/todo/pkg/view"
)

// PrettyPrint is a terminal View. Render commands build up a view.Screen which
// Print writes out.
type PrettyPrint struct {
	ShowID bool
	// Trace writes every render command name to Err as it arrives.
	Trace bool

	Out io.Writer
	Err io.Writer

	screen view.Screen
}

var _ controller.View = (*PrettyPrint)(nil)

func (pp *PrettyPrint) Render(cmd controller.Command) {
	if pp.Trace {
		_, _ = color.New(color.Faint).Fprintf(pp.errOut(), "» %s %+v\n", cmd.Name(), cmd)
	}
	pp.screen.Render(cmd)
}

// Screen returns the state built from the commands rendered so far.
func (pp *PrettyPrint) Screen() *view.Screen {
	return &pp.screen
}

func (pp *PrettyPrint) out() io.Writer {
	if pp.Out != nil {
		return pp.Out
	}
	return color.Output
}

func (pp *PrettyPrint) errOut() io.Writer {
	if pp.Err != nil {
		return pp.Err
	}
	return color.Error
}

// Title prints the route name and the number of listed entries.
func (pp *PrettyPrint) Title(title string, count int) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)
	w := pp.out()

	_, _ = t.Fprint(w, title)
	_, _ = c.Fprintf(w, " - %d", count)
	switch count {
	case 1:
		_, _ = c.Fprintln(w, " entry")
	default:
		_, _ = c.Fprintln(w, " entries")
	}
}

// Print writes the visible list and footer.
func (pp *PrettyPrint) Print() {
	s := &pp.screen
	w := pp.out()

	pp.Title(s.Route().String(), len(s.Items))

	if len(s.Items) == 0 {
		_, _ = color.New(color.Faint, color.Italic).Fprint(w, " none\n\n")
	} else {
		tbl := uitable.New()
		tbl.Separator = " "
		y := color.New(color.FgHiYellow, color.Italic, color.Faint)
		done := color.New(color.Faint, color.CrossedOut)
		for _, i := range s.Items {
			box, title := "[ ]", i.Title
			if i.Completed {
				box, title = "[x]", done.Sprint(i.Title)
			}
			if pp.ShowID {
				tbl.AddRow(y.Sprint(strconv.Itoa(i.ID)), box, title)
			} else {
				tbl.AddRow(box, title)
			}
		}
		_, _ = fmt.Fprintln(w, tbl)
		_, _ = fmt.Fprintln(w, "")
	}

	if !s.ContentVisible {
		return
	}
	f := color.New(color.Faint)
	_, _ = f.Fprint(w, view.ItemCounter(s.Active))
	if label := view.ClearCompletedLabel(s.Completed); s.ClearCompletedVisible && label != "" {
		_, _ = f.Fprintf(w, "  ·  %s (%d)", label, s.Completed)
	}
	_, _ = fmt.Fprintln(w, "")
}

// Counts writes the aggregate counts.
func (pp *PrettyPrint) Counts(c model.Counts) {
	tbl := uitable.New()
	tbl.AddRow("active", c.Active)
	tbl.AddRow("completed", c.Completed)
	tbl.AddRow("total", c.Total)
	_, _ = fmt.Fprintln(pp.out(), tbl)
}
