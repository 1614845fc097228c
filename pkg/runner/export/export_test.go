package export

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"tableflip.dev/todo/pkg/model"
	"tableflip.dev/todo/pkg/store"
)

func TestExport(t *testing.T) {
	ctx := context.Background()
	cfg := store.NewConfig(t.TempDir(), store.BackendDiskv, "todos")

	s, err := store.Load(ctx, cfg)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if _, err := model.New(s).Create(ctx, "one"); err != nil {
		t.Fatalf("create: %v", err)
	}
	_ = s.Close()

	out := &bytes.Buffer{}
	e := Export{Format: "json", Config: cfg, Out: out}
	if err := e.Do(ctx); err != nil {
		t.Fatalf("export json: %v", err)
	}
	if !strings.Contains(out.String(), `"todos"`) || !strings.Contains(out.String(), `"title": "one"`) {
		t.Fatalf("unexpected json:\n%s", out.String())
	}

	out.Reset()
	e.Format = "yaml"
	if err := e.Do(ctx); err != nil {
		t.Fatalf("export yaml: %v", err)
	}
	if !strings.Contains(out.String(), "title: one") {
		t.Fatalf("unexpected yaml:\n%s", out.String())
	}

	e.Format = "toml"
	if err := e.Do(ctx); err == nil {
		t.Fatalf("expected an error for an unknown format")
	}
}
