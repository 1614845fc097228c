// Package view holds the visible state built up from render commands, shared
// by the terminal and interactive views.
package view

import (
	"fmt"

	"tableflip.dev/todo/pkg/controller"
	"tableflip.dev/todo/pkg/item"
)

// Screen is what a view currently shows. It implements controller.View.
type Screen struct {
	Items []item.Item

	// Editing is the id of the item in edit mode, or 0.
	Editing   int
	EditTitle string

	Active                int
	Completed             int
	ClearCompletedVisible bool
	AllChecked            bool
	ContentVisible        bool
	Page                  string
}

var _ controller.View = (*Screen)(nil)

// Render applies cmd to the screen.
func (s *Screen) Render(cmd controller.Command) {
	switch cmd := cmd.(type) {
	case controller.ShowEntries:
		s.Items = append([]item.Item(nil), cmd.Items...)
	case controller.ClearNewTodo:
		// The input is owned by the concrete view.
	case controller.EditItem:
		s.Editing = cmd.ID
		s.EditTitle = cmd.Title
	case controller.EditItemDone:
		for i := range s.Items {
			if s.Items[i].ID == cmd.ID {
				s.Items[i].Title = cmd.Title
			}
		}
		if s.Editing == cmd.ID {
			s.Editing = 0
			s.EditTitle = ""
		}
	case controller.RemoveItem:
		kept := s.Items[:0]
		for _, i := range s.Items {
			if i.ID != cmd.ID {
				kept = append(kept, i)
			}
		}
		s.Items = kept
		if s.Editing == cmd.ID {
			s.Editing = 0
			s.EditTitle = ""
		}
	case controller.ElementComplete:
		for i := range s.Items {
			if s.Items[i].ID == cmd.ID {
				s.Items[i].Completed = cmd.Completed
			}
		}
	case controller.UpdateElementCount:
		s.Active = cmd.Active
	case controller.ClearCompletedButton:
		s.Completed = cmd.Completed
		s.ClearCompletedVisible = cmd.Visible
	case controller.ToggleAll:
		s.AllChecked = cmd.Checked
	case controller.ContentBlockVisibility:
		s.ContentVisible = cmd.Visible
	case controller.SetFilter:
		s.Page = cmd.Page
	}
}

// Route is the route matching the selected filter page.
func (s *Screen) Route() controller.Route {
	return controller.ParseRoute("#/" + s.Page)
}

// ItemCounter is the footer text for the number of active items.
func ItemCounter(active int) string {
	plural := "s"
	if active == 1 {
		plural = ""
	}
	return fmt.Sprintf("%d item%s left", active, plural)
}

// ClearCompletedLabel is the clear completed control text, empty when there
// is nothing to clear.
func ClearCompletedLabel(completed int) string {
	if completed > 0 {
		return "Clear completed"
	}
	return ""
}
