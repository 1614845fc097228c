// Package controller keeps a View in sync with the Model. It reacts to view
// events, calls the Model and issues render commands for the active route.
package controller

import (
	"context"
	"strings"

	"tableflip.dev/todo/pkg/item"
	"tableflip.dev/todo/pkg/model"
)

// Controller is not safe for concurrent use; drive it from one goroutine.
type Controller struct {
	model *model.Model
	view  View

	// route is the active filter; lastRoute is the route of the previous
	// filter pass. Both are empty until the first SetView or filter pass.
	route     Route
	lastRoute Route
}

// New returns a Controller rendering to v.
func New(m *model.Model, v View) *Controller {
	return &Controller{model: m, view: v}
}

// Route returns the active route.
func (c *Controller) Route() Route {
	if c.route == "" {
		return RouteAll
	}
	return c.route
}

// SetView selects the route named by a location fragment ("#/active") and
// renders it.
func (c *Controller) SetView(ctx context.Context, hash string) error {
	route := ParseRoute(hash)
	c.route = route
	if err := c.filter(ctx, false); err != nil {
		return err
	}
	c.view.Render(SetFilter{Page: route.Page()})
	return nil
}

// Refresh re-reads the store and re-renders everything for the active route.
func (c *Controller) Refresh(ctx context.Context) error {
	return c.filter(ctx, true)
}

// AddItem creates an item. A blank title is ignored.
func (c *Controller) AddItem(ctx context.Context, title string) error {
	if strings.TrimSpace(title) == "" {
		return nil
	}
	if _, err := c.model.Create(ctx, title); err != nil {
		return err
	}
	c.view.Render(ClearNewTodo{})
	return c.filter(ctx, true)
}

// EditItem puts the item in edit mode. Unknown ids are ignored.
func (c *Controller) EditItem(ctx context.Context, id int) error {
	found, err := c.model.Read(ctx, model.ByID(id))
	if err != nil || len(found) == 0 {
		return err
	}
	c.view.Render(EditItem{ID: id, Title: found[0].Title})
	return nil
}

// EditItemSave commits an edit. A blank title removes the item.
func (c *Controller) EditItemSave(ctx context.Context, id int, title string) error {
	title = strings.TrimSpace(title)
	if title == "" {
		return c.RemoveItem(ctx, id)
	}
	if _, err := c.model.Update(ctx, id, item.Title(title)); err != nil {
		return err
	}
	c.view.Render(EditItemDone{ID: id, Title: title})
	return nil
}

// EditItemCancel leaves edit mode showing the stored title.
func (c *Controller) EditItemCancel(ctx context.Context, id int) error {
	found, err := c.model.Read(ctx, model.ByID(id))
	if err != nil || len(found) == 0 {
		return err
	}
	c.view.Render(EditItemDone{ID: id, Title: found[0].Title})
	return nil
}

// RemoveItem deletes the item and re-filters.
func (c *Controller) RemoveItem(ctx context.Context, id int) error {
	if err := c.removeItem(ctx, id); err != nil {
		return err
	}
	return c.filter(ctx, false)
}

func (c *Controller) removeItem(ctx context.Context, id int) error {
	if _, err := c.model.Remove(ctx, id); err != nil {
		return err
	}
	c.view.Render(RemoveItem{ID: id})
	return nil
}

// RemoveCompletedItems deletes every completed item, then re-filters once.
func (c *Controller) RemoveCompletedItems(ctx context.Context) error {
	done, err := c.model.Read(ctx, model.ByPredicate(item.WithCompleted(true)))
	if err != nil {
		return err
	}
	for _, i := range done {
		if err := c.removeItem(ctx, i.ID); err != nil {
			return err
		}
	}
	return c.filter(ctx, false)
}

// ToggleComplete sets the completion state of an item. A silent toggle skips
// the re-filter so callers can batch several toggles.
func (c *Controller) ToggleComplete(ctx context.Context, id int, completed, silent bool) error {
	if _, err := c.model.Update(ctx, id, item.Completed(completed)); err != nil {
		return err
	}
	c.view.Render(ElementComplete{ID: id, Completed: completed})
	if silent {
		return nil
	}
	return c.filter(ctx, false)
}

// ToggleAll sets every item to completed. Only items not already in that
// state are toggled, followed by one re-filter.
func (c *Controller) ToggleAll(ctx context.Context, completed bool) error {
	pending, err := c.model.Read(ctx, model.ByPredicate(item.WithCompleted(!completed)))
	if err != nil {
		return err
	}
	for _, i := range pending {
		if err := c.ToggleComplete(ctx, i.ID, completed, true); err != nil {
			return err
		}
	}
	return c.filter(ctx, false)
}

// filter refreshes the counters and, when needed, the visible list.
//
// The list is re-rendered when forced, when the route changed since the last
// pass, or when a filtered route is active, since any item change can alter
// the filtered set. On an unchanged All route the incremental commands already
// keep the list current.
func (c *Controller) filter(ctx context.Context, force bool) error {
	route := c.Route()
	c.route = route

	if err := c.updateCount(ctx); err != nil {
		return err
	}

	if force || c.lastRoute != route || route != RouteAll {
		if err := c.show(ctx, route); err != nil {
			return err
		}
	}

	c.lastRoute = route
	return nil
}

func (c *Controller) show(ctx context.Context, route Route) error {
	var q model.Query = model.All{}
	switch route {
	case RouteActive:
		q = model.ByPredicate(item.WithCompleted(false))
	case RouteCompleted:
		q = model.ByPredicate(item.WithCompleted(true))
	}
	items, err := c.model.Read(ctx, q)
	if err != nil {
		return err
	}
	c.view.Render(ShowEntries{Items: items})
	return nil
}

func (c *Controller) updateCount(ctx context.Context) error {
	counts, err := c.model.Count(ctx)
	if err != nil {
		return err
	}
	c.view.Render(UpdateElementCount{Active: counts.Active})
	c.view.Render(ClearCompletedButton{
		Completed: counts.Completed,
		Visible:   counts.Completed > 0,
	})
	c.view.Render(ToggleAll{Checked: counts.Completed == counts.Total})
	c.view.Render(ContentBlockVisibility{Visible: counts.Total > 0})
	return nil
}
