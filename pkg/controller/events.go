package controller

import (
	"context"
	"fmt"
)

// Event is a user gesture reported by the view.
type Event interface {
	// Name is the event's name in the view contract, e.g. "newTodo".
	Name() string
}

// NewTodo is submitted from the new todo input.
type NewTodo struct {
	Title string
}

// ItemEdit requests edit mode for an item.
type ItemEdit struct {
	ID int
}

// ItemEditDone commits an edit.
type ItemEditDone struct {
	ID    int
	Title string
}

// ItemEditCancel abandons an edit.
type ItemEditCancel struct {
	ID int
}

// ItemRemove deletes an item.
type ItemRemove struct {
	ID int
}

// ItemToggle sets the completion state of an item.
type ItemToggle struct {
	ID        int
	Completed bool
}

// RemoveCompleted deletes every completed item.
type RemoveCompleted struct{}

// ToggleAllItems sets the completion state of every item.
type ToggleAllItems struct {
	Completed bool
}

// RouteChange reports a new location fragment.
type RouteChange struct {
	Hash string
}

func (NewTodo) Name() string         { return "newTodo" }
func (ItemEdit) Name() string        { return "itemEdit" }
func (ItemEditDone) Name() string    { return "itemEditDone" }
func (ItemEditCancel) Name() string  { return "itemEditCancel" }
func (ItemRemove) Name() string      { return "itemRemove" }
func (ItemToggle) Name() string      { return "itemToggle" }
func (RemoveCompleted) Name() string { return "removeCompleted" }
func (ToggleAllItems) Name() string  { return "toggleAll" }
func (RouteChange) Name() string     { return "routeChange" }

// Dispatch routes a view event to the matching controller action.
func (c *Controller) Dispatch(ctx context.Context, ev Event) error {
	switch ev := ev.(type) {
	case NewTodo:
		return c.AddItem(ctx, ev.Title)
	case ItemEdit:
		return c.EditItem(ctx, ev.ID)
	case ItemEditDone:
		return c.EditItemSave(ctx, ev.ID, ev.Title)
	case ItemEditCancel:
		return c.EditItemCancel(ctx, ev.ID)
	case ItemRemove:
		return c.RemoveItem(ctx, ev.ID)
	case ItemToggle:
		return c.ToggleComplete(ctx, ev.ID, ev.Completed, false)
	case RemoveCompleted:
		return c.RemoveCompletedItems(ctx)
	case ToggleAllItems:
		return c.ToggleAll(ctx, ev.Completed)
	case RouteChange:
		return c.SetView(ctx, ev.Hash)
	default:
		return fmt.Errorf("controller: unknown event %T", ev)
	}
}
