package controller

import "tableflip.dev/todo/pkg/item"

// Command is a render instruction sent to the View.
type Command interface {
	// Name is the command's name in the view contract, e.g. "showEntries".
	Name() string
}

// View applies render commands.
type View interface {
	Render(cmd Command)
}

// ViewFunc adapts a function to the View interface.
type ViewFunc func(cmd Command)

func (f ViewFunc) Render(cmd Command) {
	f(cmd)
}

// ShowEntries replaces the visible list.
type ShowEntries struct {
	Items []item.Item
}

// ClearNewTodo empties the new todo input.
type ClearNewTodo struct{}

// EditItem puts an item in edit mode with its current title.
type EditItem struct {
	ID    int
	Title string
}

// EditItemDone leaves edit mode showing Title.
type EditItemDone struct {
	ID    int
	Title string
}

// RemoveItem drops an item from the visible list.
type RemoveItem struct {
	ID int
}

// ElementComplete updates the completion state of a visible item.
type ElementComplete struct {
	ID        int
	Completed bool
}

// UpdateElementCount shows the number of active items.
type UpdateElementCount struct {
	Active int
}

// ClearCompletedButton shows or hides the clear completed control.
type ClearCompletedButton struct {
	Completed int
	Visible   bool
}

// ToggleAll sets the checked state of the toggle all control.
type ToggleAll struct {
	Checked bool
}

// ContentBlockVisibility shows or hides the list and footer.
type ContentBlockVisibility struct {
	Visible bool
}

// SetFilter highlights the selected filter. Page is "", "active" or "completed".
type SetFilter struct {
	Page string
}

func (ShowEntries) Name() string            { return "showEntries" }
func (ClearNewTodo) Name() string           { return "clearNewTodo" }
func (EditItem) Name() string               { return "editItem" }
func (EditItemDone) Name() string           { return "editItemDone" }
func (RemoveItem) Name() string             { return "removeItem" }
func (ElementComplete) Name() string        { return "elementComplete" }
func (UpdateElementCount) Name() string     { return "updateElementCount" }
func (ClearCompletedButton) Name() string   { return "clearCompletedButton" }
func (ToggleAll) Name() string              { return "toggleAll" }
func (ContentBlockVisibility) Name() string { return "contentBlockVisibility" }
func (SetFilter) Name() string              { return "setFilter" }
