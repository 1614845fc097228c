package add

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"tableflip.dev/todo/pkg/controller"
	"tableflip.dev/todo/pkg/model"
	"tableflip.dev/todo/pkg/store"
)

func TestAddPersistsAndPrints(t *testing.T) {
	ctx := context.Background()
	cfg := store.NewConfig(t.TempDir(), store.BackendDiskv, "todos")

	for _, title := range []string{"buy milk", "walk dog"} {
		out := &bytes.Buffer{}
		a := Add{Title: title, Route: controller.RouteAll, ShowID: true, Config: cfg, Out: out}
		if err := a.Do(ctx); err != nil {
			t.Fatalf("add %q: %v", title, err)
		}
		if !strings.Contains(out.String(), title) {
			t.Fatalf("expected output to list %q:\n%s", title, out.String())
		}
	}

	s, err := store.Load(ctx, cfg)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	defer s.Close()
	todos, err := model.New(s).Read(ctx, model.All{})
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if len(todos) != 2 || todos[1].ID != 2 || todos[1].Title != "walk dog" {
		t.Fatalf("unexpected todos %#v", todos)
	}
}

func TestAddBlankTitleIsIgnored(t *testing.T) {
	ctx := context.Background()
	cfg := store.NewConfig(t.TempDir(), store.BackendDiskv, "todos")
	out := &bytes.Buffer{}

	a := Add{Title: "   ", Route: controller.RouteAll, Config: cfg, Out: out}
	if err := a.Do(ctx); err != nil {
		t.Fatalf("add: %v", err)
	}
	if !strings.Contains(out.String(), "0 entries") {
		t.Fatalf("expected an empty list:\n%s", out.String())
	}
}
