package ui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/marcusolsson/tui-go"

	"tableflip.dev/todo/pkg/app"
	"tableflip.dev/todo/pkg/controller"
	"tableflip.dev/todo/pkg/store"
	"tableflip.dev/todo/pkg/view"
)

var routes = []controller.Route{controller.RouteAll, controller.RouteActive, controller.RouteCompleted}

// Classic is a two pane view: filters on the left, todos on the right.
type Classic struct {
	screen view.Screen

	session *app.Session
	ctx     context.Context

	filters     *tui.Table
	filtersView *tui.Box

	todos     *tui.Table
	todosView *tui.Box

	input  *tui.Entry
	status *tui.StatusBar
}

var _ controller.View = (*Classic)(nil)

// Render implements controller.View. Tables are rebuilt from the screen
// once the widgets exist.
func (d *Classic) Render(cmd controller.Command) {
	d.screen.Render(cmd)
	switch cmd := cmd.(type) {
	case controller.ClearNewTodo:
		if d.input != nil {
			d.input.SetText("")
		}
	case controller.EditItem:
		if d.input != nil {
			d.input.SetText(cmd.Title)
			d.input.SetFocused(true)
			d.todos.SetFocused(false)
		}
	}
	d.populate()
}

func (d *Classic) Run(ctx context.Context, s *app.Session, route controller.Route) error {
	d.ctx = ctx
	d.session = s

	d.filters = tui.NewTable(1, 0)
	for _, r := range routes {
		d.filters.AppendRow(tui.NewLabel(r.String()))
	}
	d.filtersView = tui.NewVBox(d.filters, tui.NewSpacer())
	d.filtersView.SetBorder(true)
	d.filtersView.SetSizePolicy(tui.Preferred, tui.Expanding)

	d.todos = tui.NewTable(1, 0)
	d.todos.SetSizePolicy(tui.Expanding, tui.Maximum)
	d.todosView = tui.NewVBox(d.todos, tui.NewSpacer())
	d.todosView.SetBorder(true)
	d.todosView.SetSizePolicy(tui.Expanding, tui.Expanding)

	d.input = tui.NewEntry()
	d.input.SetSizePolicy(tui.Expanding, tui.Maximum)
	inputView := tui.NewHBox(d.input)
	inputView.SetBorder(true)
	inputView.SetTitle("what needs to be done?")
	inputView.SetSizePolicy(tui.Expanding, tui.Maximum)

	d.status = tui.NewStatusBar("")
	d.status.SetPermanentText(`←/→ panes, enter toggle, e edit, d delete, a all, c clear, tab input, ESC or 'q' quit`)

	root := tui.NewVBox(
		inputView,
		tui.NewHBox(d.filtersView, d.todosView),
		d.status,
	)

	ui, err := tui.New(root)
	if err != nil {
		return err
	}

	if err := s.Show(ctx, route); err != nil {
		return err
	}

	d.input.OnSubmit(func(e *tui.Entry) {
		if id := d.screen.Editing; id != 0 {
			d.dispatch(controller.ItemEditDone{ID: id, Title: e.Text()})
			d.input.SetText("")
			d.focusTodos()
			return
		}
		d.dispatch(controller.NewTodo{Title: e.Text()})
	})

	for i, r := range routes {
		if r == d.screen.Route() {
			d.filters.Select(i)
		}
	}
	d.filters.OnSelectionChanged(func(t *tui.Table) {
		if i := t.Selected(); i >= 0 && i < len(routes) {
			d.dispatch(controller.RouteChange{Hash: routes[i].Hash()})
		}
	})

	d.todos.OnItemActivated(func(t *tui.Table) {
		if i, ok := d.selected(); ok {
			d.dispatch(controller.ItemToggle{ID: i.ID, Completed: !i.Completed})
		}
	})

	// Letter keys only act while the list has focus; the entry gets them otherwise.
	onList := func(fn func()) func() {
		return func() {
			if d.todos.IsFocused() {
				fn()
			}
		}
	}

	ui.SetKeybinding("Left", d.focusFilters)
	ui.SetKeybinding("Right", d.focusTodos)
	ui.SetKeybinding("Tab", func() {
		if d.input.IsFocused() {
			d.focusTodos()
		} else {
			d.focusInput()
		}
	})
	ui.SetKeybinding("e", onList(func() {
		if i, ok := d.selected(); ok {
			d.dispatch(controller.ItemEdit{ID: i.ID})
		}
	}))
	ui.SetKeybinding("d", onList(func() {
		if i, ok := d.selected(); ok {
			d.dispatch(controller.ItemRemove{ID: i.ID})
		}
	}))
	ui.SetKeybinding("a", onList(func() {
		d.dispatch(controller.ToggleAllItems{Completed: !d.screen.AllChecked})
	}))
	ui.SetKeybinding("c", onList(func() {
		d.dispatch(controller.RemoveCompleted{})
	}))
	ui.SetKeybinding("Esc", func() {
		if id := d.screen.Editing; id != 0 {
			d.dispatch(controller.ItemEditCancel{ID: id})
			d.input.SetText("")
			d.focusTodos()
			return
		}
		ui.Quit()
	})
	ui.SetKeybinding("q", onList(ui.Quit))

	if ch, err := s.Watch(ctx); err == nil {
		go func() {
			for range ch {
				ui.Update(func() {
					if err := s.Controller.Refresh(ctx); err != nil {
						d.status.SetText("ERR: " + err.Error())
					}
				})
			}
		}()
	} else if !errors.Is(err, store.ErrWatchUnsupported) {
		return err
	}

	d.populate()
	d.focusInput()

	return ui.Run()
}

func (d *Classic) dispatch(ev controller.Event) {
	if err := d.session.Dispatch(d.ctx, ev); err != nil {
		d.status.SetText("ERR: " + err.Error())
		return
	}
	d.status.SetText("")
}

func (d *Classic) selected() (itemRef, bool) {
	if d.todos == nil {
		return itemRef{}, false
	}
	i := d.todos.Selected()
	if i < 0 || i >= len(d.screen.Items) {
		return itemRef{}, false
	}
	it := d.screen.Items[i]
	return itemRef{ID: it.ID, Completed: it.Completed}, true
}

type itemRef struct {
	ID        int
	Completed bool
}

func (d *Classic) focusFilters() {
	d.filters.SetFocused(true)
	d.todos.SetFocused(false)
	d.input.SetFocused(false)
}

func (d *Classic) focusTodos() {
	d.filters.SetFocused(false)
	d.todos.SetFocused(true)
	d.input.SetFocused(false)
}

func (d *Classic) focusInput() {
	d.filters.SetFocused(false)
	d.todos.SetFocused(false)
	d.input.SetFocused(true)
}

func (d *Classic) populate() {
	if d.todos == nil {
		return
	}
	selected := d.todos.Selected()

	d.todos.RemoveRows()
	if !d.screen.ContentVisible {
		d.todosView.SetTitle("")
		return
	}
	for _, i := range d.screen.Items {
		box := "[ ]"
		if i.Completed {
			box = "[x]"
		}
		d.todos.AppendRow(tui.NewLabel(fmt.Sprintf("%s %s", box, i.Title)))
	}
	if selected >= len(d.screen.Items) {
		selected = len(d.screen.Items) - 1
	}
	d.todos.Select(selected)

	title := []string{d.screen.Route().String(), view.ItemCounter(d.screen.Active)}
	if label := view.ClearCompletedLabel(d.screen.Completed); d.screen.ClearCompletedVisible && label != "" {
		title = append(title, fmt.Sprintf("%s (%d)", label, d.screen.Completed))
	}
	d.todosView.SetTitle(strings.Join(title, " · "))
}
