package printers

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"

	"tableflip.dev/todo/pkg/controller"
	"tableflip.dev/todo/pkg/item"
	"tableflip.dev/todo/pkg/model"
)

func init() {
	color.NoColor = true
}

func TestPrintListsScreen(t *testing.T) {
	var out bytes.Buffer
	pp := &PrettyPrint{ShowID: true, Out: &out}

	pp.Render(controller.ShowEntries{Items: []item.Item{
		{ID: 1, Title: "buy milk"},
		{ID: 2, Title: "walk dog", Completed: true},
	}})
	pp.Render(controller.UpdateElementCount{Active: 1})
	pp.Render(controller.ClearCompletedButton{Completed: 1, Visible: true})
	pp.Render(controller.ContentBlockVisibility{Visible: true})
	pp.Render(controller.SetFilter{Page: ""})
	pp.Print()

	got := out.String()
	for _, want := range []string{"All - 2 entries", "[ ] buy milk", "[x] walk dog", "1 item left", "Clear completed (1)"} {
		if !strings.Contains(got, want) {
			t.Fatalf("expected %q in output:\n%s", want, got)
		}
	}
}

func TestPrintEmpty(t *testing.T) {
	var out bytes.Buffer
	pp := &PrettyPrint{Out: &out}
	pp.Render(controller.ShowEntries{})
	pp.Render(controller.SetFilter{Page: "active"})
	pp.Print()

	got := out.String()
	if !strings.Contains(got, "Active - 0 entries") || !strings.Contains(got, "none") {
		t.Fatalf("unexpected output:\n%s", got)
	}
	if strings.Contains(got, "left") {
		t.Fatalf("footer must be hidden when content is not visible:\n%s", got)
	}
}

func TestTrace(t *testing.T) {
	var out, errOut bytes.Buffer
	pp := &PrettyPrint{Trace: true, Out: &out, Err: &errOut}
	pp.Render(controller.ClearNewTodo{})
	if !strings.Contains(errOut.String(), "clearNewTodo") {
		t.Fatalf("expected trace line, got %q", errOut.String())
	}
}

func TestCounts(t *testing.T) {
	var out bytes.Buffer
	pp := &PrettyPrint{Out: &out}
	pp.Counts(model.Counts{Active: 2, Completed: 1, Total: 3})
	got := out.String()
	for _, want := range []string{"active", "2", "completed", "total", "3"} {
		if !strings.Contains(got, want) {
			t.Fatalf("expected %q in output:\n%s", want, got)
		}
	}
}
