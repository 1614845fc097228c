package commands

import (
	"context"
	"testing"

	"tableflip.dev/todo/pkg/model"
	"tableflip.dev/todo/pkg/store"
)

func run(t *testing.T, dir string, args ...string) error {
	t.Helper()
	cmd := New()
	cmd.SetArgs(append([]string{"--path", dir}, args...))
	return cmd.Execute()
}

func todos(t *testing.T, dir string) []string {
	t.Helper()
	ctx := context.Background()
	s, err := store.Load(ctx, store.NewConfig(dir, store.BackendDiskv, "todos"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	defer s.Close()
	all, err := model.New(s).Read(ctx, model.All{})
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	out := make([]string, 0, len(all))
	for _, i := range all {
		state := "active"
		if i.Completed {
			state = "completed"
		}
		out = append(out, i.Title+":"+state)
	}
	return out
}

func TestVerbs(t *testing.T) {
	dir := t.TempDir()

	steps := [][]string{
		{"add", "buy", "milk"},
		{"add", "walk the dog"},
		{"add", "file taxes"},
		{"toggle", "2"},
		{"edit", "1", "buy oat milk"},
		{"rm", "3"},
		{"list", "active"},
		{"count"},
	}
	for _, s := range steps {
		if err := run(t, dir, s...); err != nil {
			t.Fatalf("%v: %v", s, err)
		}
	}

	got := todos(t, dir)
	want := []string{"buy oat milk:active", "walk the dog:completed"}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}

	if err := run(t, dir, "clear-completed"); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if got := todos(t, dir); len(got) != 1 || got[0] != "buy oat milk:active" {
		t.Fatalf("expected only the active todo left, got %v", got)
	}

	if err := run(t, dir, "toggle-all"); err != nil {
		t.Fatalf("toggle-all: %v", err)
	}
	if got := todos(t, dir); got[0] != "buy oat milk:completed" {
		t.Fatalf("expected all completed, got %v", got)
	}

	if err := run(t, dir, "drop"); err != nil {
		t.Fatalf("drop: %v", err)
	}
	if got := todos(t, dir); len(got) != 0 {
		t.Fatalf("expected empty collection, got %v", got)
	}
}

func TestArgumentErrors(t *testing.T) {
	dir := t.TempDir()

	for _, args := range [][]string{
		{"add"},
		{"toggle"},
		{"toggle", "abc"},
		{"toggle", "1", "--done", "--undo"},
		{"edit", "1"},
		{"list", "someday"},
		{"list", "--filter", "someday"},
		{"export", "-o", "toml"},
	} {
		if err := run(t, dir, args...); err == nil {
			t.Fatalf("%v: expected an error", args)
		}
	}

	if err := run(t, dir, "--json", "export", "-o", "toml"); err != nil {
		t.Fatalf("expected --json to report the error on stdout, got %v", err)
	}
}
