package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

func registerTools(srv *server.MCPServer, svc *Service) {
	registerListTool(srv, svc)
	registerAddTool(srv, svc)
	registerEditTool(srv, svc)
	registerToggleTool(srv, svc)
	registerRemoveTool(srv, svc)
	registerClearCompletedTool(srv, svc)
	registerToggleAllTool(srv, svc)
	registerCountTool(srv, svc)
}

func registerListTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"list_todos",
		mcp.WithDescription("List todos, optionally only the active or completed ones."),
		mcp.WithString("filter",
			mcp.Description("Which todos to show."),
			mcp.Enum("all", "active", "completed"),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var args struct {
			Filter string `json:"filter"`
		}
		if err := request.BindArguments(&args); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid arguments: %v", err)), nil
		}
		route, err := ParseFilter(args.Filter)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return snapshotResult(svc.List(ctx, route))
	})
}

func registerAddTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"add_todo",
		mcp.WithDescription("Add a todo. Surrounding whitespace is trimmed and blank titles are ignored."),
		mcp.WithString("title",
			mcp.Required(),
			mcp.Description("What needs to be done."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var args struct {
			Title string `json:"title"`
		}
		if err := request.BindArguments(&args); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid arguments: %v", err)), nil
		}
		return snapshotResult(svc.Add(ctx, args.Title))
	})
}

func registerEditTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"edit_todo",
		mcp.WithDescription("Change the title of a todo. A blank title removes the todo."),
		mcp.WithNumber("id",
			mcp.Required(),
			mcp.Description("Todo identifier."),
		),
		mcp.WithString("title",
			mcp.Required(),
			mcp.Description("New title."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var args struct {
			ID    int    `json:"id"`
			Title string `json:"title"`
		}
		if err := request.BindArguments(&args); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid arguments: %v", err)), nil
		}
		return snapshotResult(svc.Edit(ctx, args.ID, args.Title))
	})
}

func registerToggleTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"toggle_todo",
		mcp.WithDescription("Mark a todo completed or active. Without completed the state is flipped."),
		mcp.WithNumber("id",
			mcp.Required(),
			mcp.Description("Todo identifier."),
		),
		mcp.WithBoolean("completed",
			mcp.Description("State to set."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var args struct {
			ID        int   `json:"id"`
			Completed *bool `json:"completed"`
		}
		if err := request.BindArguments(&args); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid arguments: %v", err)), nil
		}
		return snapshotResult(svc.Toggle(ctx, args.ID, args.Completed))
	})
}

func registerRemoveTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"remove_todo",
		mcp.WithDescription("Remove a todo."),
		mcp.WithNumber("id",
			mcp.Required(),
			mcp.Description("Todo identifier."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var args struct {
			ID int `json:"id"`
		}
		if err := request.BindArguments(&args); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid arguments: %v", err)), nil
		}
		return snapshotResult(svc.Remove(ctx, args.ID))
	})
}

func registerClearCompletedTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"clear_completed",
		mcp.WithDescription("Remove every completed todo."),
	)

	srv.AddTool(tool, func(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return snapshotResult(svc.ClearCompleted(ctx))
	})
}

func registerToggleAllTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"toggle_all",
		mcp.WithDescription("Mark every todo completed, or active when completed is false."),
		mcp.WithBoolean("completed",
			mcp.Required(),
			mcp.Description("State to set on every todo."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var args struct {
			Completed bool `json:"completed"`
		}
		if err := request.BindArguments(&args); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid arguments: %v", err)), nil
		}
		return snapshotResult(svc.ToggleAll(ctx, args.Completed))
	})
}

func registerCountTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"count_todos",
		mcp.WithDescription("Count active, completed and total todos."),
	)

	srv.AddTool(tool, func(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		c, err := svc.Counts(ctx)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(map[string]int{
			"active":    c.Active,
			"completed": c.Completed,
			"total":     c.Total,
		})
	})
}

func snapshotResult(s Snapshot, err error) (*mcp.CallToolResult, error) {
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return toJSONResult(s)
}

func toJSONResult(data any) (*mcp.CallToolResult, error) {
	b, err := json.Marshal(data)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("marshal error: %v", err)), nil
	}
	return mcp.NewToolResultText(string(b)), nil
}
