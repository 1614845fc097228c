package store

import (
	"context"
	"testing"
	"time"

	"tableflip.dev/todo/pkg/item"
)

func TestDiskvWatchEmitsCollectionChanges(t *testing.T) {
	base := t.TempDir()
	b, err := NewDiskv(base)
	if err != nil {
		t.Fatalf("new diskv: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	s, err := Open(ctx, b, "todos")
	if err != nil {
		t.Fatalf("open: %v", err)
	}

	ch, err := s.Watch(ctx)
	if err != nil {
		t.Fatalf("watch: %v", err)
	}

	// Allow the watcher goroutine to subscribe before writing.
	time.Sleep(50 * time.Millisecond)

	// A second store plays the part of another process.
	other, err := Open(ctx, b, "todos")
	if err != nil {
		t.Fatalf("open other: %v", err)
	}
	if _, err := other.Create(ctx, item.Title("hello world")); err != nil {
		t.Fatalf("save: %v", err)
	}

	select {
	case evt, ok := <-ch:
		if !ok {
			t.Fatal("watch channel closed early")
		}
		if evt.Key != "todos" {
			t.Fatalf("expected key 'todos', got %q", evt.Key)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for change event")
	}
}

func TestWatchUnsupported(t *testing.T) {
	s, err := Open(context.Background(), NewMemory(), "todos")
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if _, err := s.Watch(context.Background()); err != ErrWatchUnsupported {
		t.Fatalf("expected ErrWatchUnsupported, got %v", err)
	}
}

func TestEventThrottleCoalesces(t *testing.T) {
	th := newEventThrottle(20 * time.Millisecond)
	defer th.Stop()

	got := make(chan Event, 10)
	send := func(ev Event) { got <- ev }
	for i := 0; i < 5; i++ {
		th.Enqueue(Event{Key: "todos"}, send)
	}

	select {
	case <-got:
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for flush")
	}
	select {
	case ev := <-got:
		t.Fatalf("expected a single coalesced event, got extra %#v", ev)
	case <-time.After(60 * time.Millisecond):
	}
}
