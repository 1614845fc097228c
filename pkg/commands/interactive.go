package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/todo/pkg/controller"
	"tableflip.dev/todo/pkg/item"
	"tableflip.dev/todo/pkg/model"
	"tableflip.dev/todo/pkg/snake"
	"tableflip.dev/todo/pkg/store"
)

// pickTodo loads the todos visible on route and asks the user to choose one.
func pickTodo(cmd *cobra.Command, label string, route controller.Route) (item.Item, error) {
	ctx := context.Background()
	s, err := store.Load(ctx, nil)
	if err != nil {
		return item.Item{}, err
	}
	defer s.Close()

	var q model.Query = model.All{}
	switch route {
	case controller.RouteActive:
		q = model.ByPredicate(item.WithCompleted(false))
	case controller.RouteCompleted:
		q = model.ByPredicate(item.WithCompleted(true))
	}
	todos, err := model.New(s).Read(ctx, q)
	if err != nil {
		return item.Item{}, err
	}
	return snake.SelectTodo(cmd, label, todos)
}
