package mcp

import (
	"context"
	"encoding/json"
	"strconv"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"tableflip.dev/todo/pkg/controller"
)

func registerResources(srv *server.MCPServer, svc *Service) {
	registerTodosResource(srv, svc)
	registerFilterTemplate(srv, svc)
	registerTodoTemplate(srv, svc)
}

func registerTodosResource(srv *server.MCPServer, svc *Service) {
	resource := mcp.NewResource(
		"todo://todos",
		"Todos",
		mcp.WithResourceDescription("Every todo with the active and completed counts."),
		mcp.WithMIMEType("application/json"),
	)

	srv.AddResource(resource, func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		s, err := svc.List(ctx, controller.RouteAll)
		if err != nil {
			return nil, err
		}
		return encodeResourceJSON(request.Params.URI, s)
	})
}

func registerFilterTemplate(srv *server.MCPServer, svc *Service) {
	template := mcp.NewResourceTemplate(
		"todo://todos/{filter}",
		"Filtered Todos",
		mcp.WithTemplateDescription("Todos that are active or completed."),
		mcp.WithTemplateMIMEType("application/json"),
	)

	srv.AddResourceTemplate(template, func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		route, err := ParseFilter(argument(request, "filter"))
		if err != nil {
			return nil, err
		}
		s, err := svc.List(ctx, route)
		if err != nil {
			return nil, err
		}
		return encodeResourceJSON(request.Params.URI, s)
	})
}

func registerTodoTemplate(srv *server.MCPServer, svc *Service) {
	template := mcp.NewResourceTemplate(
		"todo://todo/{id}",
		"Todo",
		mcp.WithTemplateDescription("A single todo."),
		mcp.WithTemplateMIMEType("application/json"),
	)

	srv.AddResourceTemplate(template, func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		id, err := strconv.Atoi(argument(request, "id"))
		if err != nil {
			return nil, err
		}
		t, err := svc.Get(ctx, id)
		if err != nil {
			return nil, err
		}
		return encodeResourceJSON(request.Params.URI, t)
	})
}

// argument reads a template variable, which may arrive as a string or as a
// single element list.
func argument(request mcp.ReadResourceRequest, name string) string {
	switch v := request.Params.Arguments[name].(type) {
	case string:
		return v
	case []string:
		if len(v) > 0 {
			return v[0]
		}
	}
	return ""
}

func encodeResourceJSON(uri string, payload any) ([]mcp.ResourceContents, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}
