package model

import (
	"context"
	"testing"

	"tableflip.dev/todo/pkg/item"
	"tableflip.dev/todo/pkg/store"
)

func newModel(t *testing.T) *Model {
	t.Helper()
	s, err := store.Open(context.Background(), store.NewMemory(), "todos")
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	return New(s)
}

func mustCount(t *testing.T, m *Model) Counts {
	t.Helper()
	c, err := m.Count(context.Background())
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if c.Active+c.Completed != c.Total {
		t.Fatalf("inconsistent counts %+v", c)
	}
	return c
}

func TestCreateTrimsAndDefaultsToActive(t *testing.T) {
	m := newModel(t)
	got, err := m.Create(context.Background(), "   buy milk  ")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected the created item, got %v", got)
	}
	if got[0].Title != "buy milk" || got[0].Completed || got[0].ID != 1 {
		t.Fatalf("unexpected item %#v", got[0])
	}
}

func TestReadNormalizesQueries(t *testing.T) {
	ctx := context.Background()
	m := newModel(t)
	for _, title := range []string{"a", "b", "c"} {
		if _, err := m.Create(ctx, title); err != nil {
			t.Fatalf("create: %v", err)
		}
	}
	if _, err := m.Update(ctx, 2, item.Completed(true)); err != nil {
		t.Fatalf("update: %v", err)
	}

	id, err := ParseID("3")
	if err != nil {
		t.Fatalf("parse id: %v", err)
	}

	cases := []struct {
		name string
		q    Query
		want []int
	}{
		{name: "nil", q: nil, want: []int{1, 2, 3}},
		{name: "all", q: All{}, want: []int{1, 2, 3}},
		{name: "by id", q: ByID(2), want: []int{2}},
		{name: "by parsed id", q: id, want: []int{3}},
		{name: "empty predicate", q: ByPredicate{}, want: []int{1, 2, 3}},
		{name: "active", q: ByPredicate(item.WithCompleted(false)), want: []int{1, 3}},
		{name: "completed", q: ByPredicate(item.WithCompleted(true)), want: []int{2}},
		{name: "missing id", q: ByID(7), want: []int{}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := m.Read(ctx, tc.q)
			if err != nil {
				t.Fatalf("read: %v", err)
			}
			if len(got) != len(tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, got)
			}
			for i := range tc.want {
				if got[i].ID != tc.want[i] {
					t.Fatalf("expected %v, got %v", tc.want, got)
				}
			}
		})
	}
}

func TestParseID(t *testing.T) {
	cases := map[string]int{
		"1":     1,
		" 42 ":  42,
		"12abc": 12,
		"-3":    -3,
	}
	for in, want := range cases {
		got, err := ParseID(in)
		if err != nil {
			t.Fatalf("parse %q: %v", in, err)
		}
		if int(got) != want {
			t.Fatalf("parse %q: expected %d, got %d", in, want, got)
		}
	}
	for _, in := range []string{"", "abc", "+", " x1"} {
		if _, err := ParseID(in); err == nil {
			t.Fatalf("expected error parsing %q", in)
		}
	}
}

func TestCountScenario(t *testing.T) {
	ctx := context.Background()
	m := newModel(t)

	if c := mustCount(t, m); c != (Counts{}) {
		t.Fatalf("expected zero counts, got %+v", c)
	}

	if _, err := m.Create(ctx, "buy milk"); err != nil {
		t.Fatalf("create: %v", err)
	}
	if c := mustCount(t, m); c != (Counts{Active: 1, Completed: 0, Total: 1}) {
		t.Fatalf("after create: %+v", c)
	}

	if _, err := m.Update(ctx, 1, item.Completed(true)); err != nil {
		t.Fatalf("update: %v", err)
	}
	if c := mustCount(t, m); c != (Counts{Active: 0, Completed: 1, Total: 1}) {
		t.Fatalf("after update: %+v", c)
	}

	if _, err := m.Remove(ctx, 1); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if c := mustCount(t, m); c != (Counts{}) {
		t.Fatalf("after remove: %+v", c)
	}
}

func TestRemoveAll(t *testing.T) {
	ctx := context.Background()
	m := newModel(t)
	_, _ = m.Create(ctx, "a")
	_, _ = m.Create(ctx, "b")

	got, err := m.RemoveAll(ctx)
	if err != nil {
		t.Fatalf("remove all: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected empty result, got %v", got)
	}
	if c := mustCount(t, m); c.Total != 0 {
		t.Fatalf("expected empty collection, got %+v", c)
	}
}

func TestNoStore(t *testing.T) {
	m := &Model{}
	if _, err := m.Read(context.Background(), All{}); err == nil {
		t.Fatalf("expected error without a store")
	}
}
