package snake

import (
	"bytes"
	"errors"
	"testing"

	"github.com/spf13/cobra"
)

func TestSelectTodoEmpty(t *testing.T) {
	cmd := &cobra.Command{}
	if _, err := SelectTodo(cmd, "Toggle", nil); !errors.Is(err, ErrNothingToSelect) {
		t.Fatalf("expected ErrNothingToSelect, got %v", err)
	}
}

func TestNopCloser(t *testing.T) {
	buf := &bytes.Buffer{}
	w := NopCloser(buf)
	if _, err := w.Write([]byte("hi")); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	if buf.String() != "hi" {
		t.Fatalf("expected write to pass through, got %q", buf.String())
	}
}
