package controller

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"tableflip.dev/todo/pkg/item"
	"tableflip.dev/todo/pkg/model"
	"tableflip.dev/todo/pkg/store"
)

type recorder struct {
	cmds []Command
}

func (r *recorder) Render(cmd Command) {
	r.cmds = append(r.cmds, cmd)
}

func (r *recorder) names() []string {
	out := make([]string, 0, len(r.cmds))
	for _, c := range r.cmds {
		out = append(out, c.Name())
	}
	return out
}

func (r *recorder) count(name string) int {
	n := 0
	for _, c := range r.cmds {
		if c.Name() == name {
			n++
		}
	}
	return n
}

func (r *recorder) last(name string) Command {
	for i := len(r.cmds) - 1; i >= 0; i-- {
		if r.cmds[i].Name() == name {
			return r.cmds[i]
		}
	}
	return nil
}

func (r *recorder) reset() {
	r.cmds = nil
}

var countCommands = []string{"updateElementCount", "clearCompletedButton", "toggleAll", "contentBlockVisibility"}

func newController(t *testing.T, titles ...string) (*Controller, *model.Model, *recorder) {
	t.Helper()
	ctx := context.Background()
	s, err := store.Open(ctx, store.NewMemory(), "todos")
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	m := model.New(s)
	for _, title := range titles {
		if _, err := m.Create(ctx, title); err != nil {
			t.Fatalf("create: %v", err)
		}
	}
	rec := &recorder{}
	c := New(m, rec)
	if err := c.SetView(ctx, ""); err != nil {
		t.Fatalf("set view: %v", err)
	}
	rec.reset()
	return c, m, rec
}

func TestInitialLoadRendersAllRoute(t *testing.T) {
	s, err := store.Open(context.Background(), store.NewMemory(), "todos")
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	rec := &recorder{}
	c := New(model.New(s), rec)
	if c.Route() != RouteAll {
		t.Fatalf("expected All before first load, got %s", c.Route())
	}
	if err := c.SetView(context.Background(), ""); err != nil {
		t.Fatalf("set view: %v", err)
	}
	want := append(append([]string{}, countCommands...), "showEntries", "setFilter")
	if !reflect.DeepEqual(rec.names(), want) {
		t.Fatalf("expected %v, got %v", want, rec.names())
	}
	if f := rec.last("setFilter").(SetFilter); f.Page != "" {
		t.Fatalf("expected empty page, got %q", f.Page)
	}
	if v := rec.last("contentBlockVisibility").(ContentBlockVisibility); v.Visible {
		t.Fatalf("empty collection must hide the content block")
	}
}

func TestAddItem(t *testing.T) {
	ctx := context.Background()
	c, m, rec := newController(t)

	if err := c.AddItem(ctx, "   "); err != nil {
		t.Fatalf("add blank: %v", err)
	}
	if len(rec.cmds) != 0 {
		t.Fatalf("blank title should render nothing, got %v", rec.names())
	}

	if err := c.Dispatch(ctx, NewTodo{Title: " buy milk "}); err != nil {
		t.Fatalf("add: %v", err)
	}
	want := append(append([]string{"clearNewTodo"}, countCommands...), "showEntries")
	if !reflect.DeepEqual(rec.names(), want) {
		t.Fatalf("expected %v, got %v", want, rec.names())
	}
	shown := rec.last("showEntries").(ShowEntries)
	if len(shown.Items) != 1 || shown.Items[0].Title != "buy milk" {
		t.Fatalf("unexpected entries %v", shown.Items)
	}
	if cnt := rec.last("updateElementCount").(UpdateElementCount); cnt.Active != 1 {
		t.Fatalf("expected 1 active, got %d", cnt.Active)
	}
	counts, _ := m.Count(ctx)
	if counts.Total != 1 {
		t.Fatalf("expected one stored item, got %+v", counts)
	}
}

func TestToggleAllOnlyTogglesPendingItems(t *testing.T) {
	ctx := context.Background()
	c, m, rec := newController(t, "a", "b", "c")
	if err := c.ToggleComplete(ctx, 2, true, false); err != nil {
		t.Fatalf("toggle: %v", err)
	}
	rec.reset()

	if err := c.Dispatch(ctx, ToggleAllItems{Completed: true}); err != nil {
		t.Fatalf("toggle all: %v", err)
	}

	want := append([]string{"elementComplete", "elementComplete"}, countCommands...)
	if !reflect.DeepEqual(rec.names(), want) {
		t.Fatalf("expected %v, got %v", want, rec.names())
	}
	var toggled []int
	for _, cmd := range rec.cmds {
		if ec, ok := cmd.(ElementComplete); ok {
			if !ec.Completed {
				t.Fatalf("expected completed=true, got %#v", ec)
			}
			toggled = append(toggled, ec.ID)
		}
	}
	if !reflect.DeepEqual(toggled, []int{1, 3}) {
		t.Fatalf("expected items 1 and 3 toggled, got %v", toggled)
	}
	if !rec.last("toggleAll").(ToggleAll).Checked {
		t.Fatalf("toggle all should be checked once everything is completed")
	}

	counts, _ := m.Count(ctx)
	if counts != (model.Counts{Active: 0, Completed: 3, Total: 3}) {
		t.Fatalf("unexpected counts %+v", counts)
	}
}

func TestEditFlow(t *testing.T) {
	ctx := context.Background()
	c, m, rec := newController(t, "draft")

	if err := c.Dispatch(ctx, ItemEdit{ID: 1}); err != nil {
		t.Fatalf("edit: %v", err)
	}
	if e := rec.last("editItem").(EditItem); e.ID != 1 || e.Title != "draft" {
		t.Fatalf("unexpected edit command %#v", e)
	}

	if err := c.Dispatch(ctx, ItemEditDone{ID: 1, Title: "  final  "}); err != nil {
		t.Fatalf("edit done: %v", err)
	}
	if d := rec.last("editItemDone").(EditItemDone); d.Title != "final" {
		t.Fatalf("expected trimmed title, got %q", d.Title)
	}
	stored, _ := m.Read(ctx, model.ByID(1))
	if stored[0].Title != "final" {
		t.Fatalf("title not persisted: %v", stored)
	}

	rec.reset()
	if err := c.Dispatch(ctx, ItemEditCancel{ID: 1}); err != nil {
		t.Fatalf("cancel: %v", err)
	}
	if d := rec.last("editItemDone").(EditItemDone); d.Title != "final" {
		t.Fatalf("cancel should restore stored title, got %q", d.Title)
	}

	rec.reset()
	if err := c.EditItem(ctx, 99); err != nil {
		t.Fatalf("edit unknown: %v", err)
	}
	if err := c.EditItemCancel(ctx, 99); err != nil {
		t.Fatalf("cancel unknown: %v", err)
	}
	if len(rec.cmds) != 0 {
		t.Fatalf("unknown ids should render nothing, got %v", rec.names())
	}
}

func TestEditToBlankTitleRemoves(t *testing.T) {
	ctx := context.Background()
	c, m, rec := newController(t, "a", "b")

	if err := c.EditItemSave(ctx, 1, " \t "); err != nil {
		t.Fatalf("edit save: %v", err)
	}
	if rec.count("editItemDone") != 0 {
		t.Fatalf("blank edit must not render editItemDone")
	}
	if r := rec.last("removeItem"); r == nil || r.(RemoveItem).ID != 1 {
		t.Fatalf("expected removeItem for id 1, got %v", rec.names())
	}
	left, _ := m.Read(ctx, model.All{})
	if len(left) != 1 || left[0].ID != 2 {
		t.Fatalf("expected only item 2 left, got %v", left)
	}
}

func TestRemoveCompletedItems(t *testing.T) {
	ctx := context.Background()
	c, m, rec := newController(t, "a", "b", "c", "d")
	for _, id := range []int{1, 3, 4} {
		if _, err := m.Update(ctx, id, item.Completed(true)); err != nil {
			t.Fatalf("update: %v", err)
		}
	}

	if err := c.Dispatch(ctx, RemoveCompleted{}); err != nil {
		t.Fatalf("remove completed: %v", err)
	}
	if n := rec.count("removeItem"); n != 3 {
		t.Fatalf("expected 3 removeItem commands, got %d (%v)", n, rec.names())
	}
	if n := rec.count("updateElementCount"); n != 1 {
		t.Fatalf("expected a single re-filter, got %d", n)
	}
	if b := rec.last("clearCompletedButton").(ClearCompletedButton); b.Visible || b.Completed != 0 {
		t.Fatalf("clear completed should be hidden, got %#v", b)
	}
	left, _ := m.Read(ctx, model.All{})
	if len(left) != 1 || left[0].ID != 2 {
		t.Fatalf("expected only item 2 left, got %v", left)
	}
}

func TestRemoveItem(t *testing.T) {
	ctx := context.Background()
	c, _, rec := newController(t, "a")

	if err := c.Dispatch(ctx, ItemRemove{ID: 1}); err != nil {
		t.Fatalf("remove: %v", err)
	}
	want := append([]string{"removeItem"}, countCommands...)
	if !reflect.DeepEqual(rec.names(), want) {
		t.Fatalf("expected %v, got %v", want, rec.names())
	}
	if v := rec.last("contentBlockVisibility").(ContentBlockVisibility); v.Visible {
		t.Fatalf("empty collection must hide the content block")
	}

	// A second removal is a silent no-op on the data.
	rec.reset()
	if err := c.RemoveItem(ctx, 1); err != nil {
		t.Fatalf("second remove: %v", err)
	}
}

// A route change is what triggers a full re-render; an unchanged All route
// relies on the incremental commands.
func TestFilterRerenderPolicy(t *testing.T) {
	ctx := context.Background()
	c, _, rec := newController(t, "a", "b")

	// Unchanged All route: incremental commands only.
	if err := c.Dispatch(ctx, ItemToggle{ID: 1, Completed: true}); err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if rec.count("showEntries") != 0 {
		t.Fatalf("toggle on All should not re-render the list, got %v", rec.names())
	}

	// Route change: full re-render with the filtered set, then setFilter.
	rec.reset()
	if err := c.Dispatch(ctx, RouteChange{Hash: "#/active"}); err != nil {
		t.Fatalf("route: %v", err)
	}
	names := rec.names()
	if names[len(names)-1] != "setFilter" || rec.count("showEntries") != 1 {
		t.Fatalf("expected showEntries then setFilter, got %v", names)
	}
	shown := rec.last("showEntries").(ShowEntries)
	if len(shown.Items) != 1 || shown.Items[0].ID != 2 {
		t.Fatalf("active route should show item 2 only, got %v", shown.Items)
	}
	if f := rec.last("setFilter").(SetFilter); f.Page != "active" {
		t.Fatalf("expected page 'active', got %q", f.Page)
	}
	if c.Route() != RouteActive {
		t.Fatalf("expected Active route, got %s", c.Route())
	}

	// Filtered route: every change re-renders so completed items drop out.
	rec.reset()
	if err := c.ToggleComplete(ctx, 2, true, false); err != nil {
		t.Fatalf("toggle: %v", err)
	}
	shown = rec.last("showEntries").(ShowEntries)
	if len(shown.Items) != 0 {
		t.Fatalf("active route should be empty, got %v", shown.Items)
	}

	// Back to All is a route change.
	rec.reset()
	if err := c.SetView(ctx, "#/"); err != nil {
		t.Fatalf("route: %v", err)
	}
	if rec.count("showEntries") != 1 {
		t.Fatalf("returning to All should re-render, got %v", rec.names())
	}

	// Staying on All re-renders only when forced.
	rec.reset()
	if err := c.SetView(ctx, "#/"); err != nil {
		t.Fatalf("route: %v", err)
	}
	if rec.count("showEntries") != 0 {
		t.Fatalf("same All route should not re-render, got %v", rec.names())
	}
	if err := c.Refresh(ctx); err != nil {
		t.Fatalf("refresh: %v", err)
	}
	if rec.count("showEntries") != 1 {
		t.Fatalf("refresh must force a re-render, got %v", rec.names())
	}
}

func TestCompletedRoute(t *testing.T) {
	ctx := context.Background()
	c, m, rec := newController(t, "a", "b")
	_, _ = m.Update(ctx, 2, item.Completed(true))

	if err := c.SetView(ctx, "#/completed"); err != nil {
		t.Fatalf("route: %v", err)
	}
	shown := rec.last("showEntries").(ShowEntries)
	if len(shown.Items) != 1 || shown.Items[0].ID != 2 {
		t.Fatalf("completed route should show item 2 only, got %v", shown.Items)
	}
}

func TestParseRoute(t *testing.T) {
	cases := map[string]Route{
		"":             RouteAll,
		"#/":           RouteAll,
		"#/active":     RouteActive,
		"#/completed":  RouteCompleted,
		"#/Completed":  RouteCompleted,
		"#/everything": RouteAll,
	}
	for hash, want := range cases {
		if got := ParseRoute(hash); got != want {
			t.Fatalf("ParseRoute(%q): expected %s, got %s", hash, want, got)
		}
	}
	if RouteActive.Hash() != "#/active" || RouteAll.Hash() != "#/" {
		t.Fatalf("unexpected hashes %q %q", RouteActive.Hash(), RouteAll.Hash())
	}
}

type brokenBackend struct{}

var errBroken = errors.New("disk on fire")

func (brokenBackend) Read(context.Context, string) ([]byte, error) {
	return []byte(`{"todos":[]}`), nil
}
func (brokenBackend) Write(context.Context, string, []byte) error { return errBroken }
func (brokenBackend) Close() error                                { return nil }

func TestStorageErrorsAreReturned(t *testing.T) {
	ctx := context.Background()
	s, err := store.Open(ctx, brokenBackend{}, "todos")
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	rec := &recorder{}
	c := New(model.New(s), rec)
	if err := c.AddItem(ctx, "x"); !errors.Is(err, errBroken) {
		t.Fatalf("expected storage error, got %v", err)
	}
	if rec.count("clearNewTodo") != 0 {
		t.Fatalf("failed create must not clear the input")
	}
}

func TestDispatchUnknownEvent(t *testing.T) {
	c, _, _ := newController(t)
	if err := c.Dispatch(context.Background(), nil); err == nil {
		t.Fatalf("expected error for unknown event")
	}
}

func TestZeroIDIsALookupMiss(t *testing.T) {
	ctx := context.Background()
	s, err := store.Open(ctx, store.NewMemory(), "todos")
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	m := model.New(s)
	if _, err := m.Create(ctx, "a"); err != nil {
		t.Fatalf("create: %v", err)
	}

	var shown []item.Item
	c := New(m, ViewFunc(func(cmd Command) {
		if se, ok := cmd.(ShowEntries); ok {
			shown = se.Items
		}
	}))
	if err := c.SetView(ctx, "#/"); err != nil {
		t.Fatalf("set view: %v", err)
	}

	for _, ev := range []Event{
		ItemEditDone{ID: 0, Title: "ghost"},
		ItemToggle{ID: 0, Completed: true},
		ItemEdit{ID: 0},
		ItemEditCancel{ID: 0},
	} {
		if err := c.Dispatch(ctx, ev); err != nil {
			t.Fatalf("%s: %v", ev.Name(), err)
		}
	}
	if err := c.Refresh(ctx); err != nil {
		t.Fatalf("refresh: %v", err)
	}

	all, err := m.Read(ctx, model.All{})
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	want := []item.Item{{ID: 1, Title: "a"}}
	if !reflect.DeepEqual(all, want) {
		t.Fatalf("expected %v, got %v", want, all)
	}
	if !reflect.DeepEqual(shown, want) {
		t.Fatalf("expected view to show %v, got %v", want, shown)
	}
}
