package controller

import "strings"

// Route is the active list filter.
type Route string

const (
	RouteAll       Route = "All"
	RouteActive    Route = "Active"
	RouteCompleted Route = "Completed"
)

// ParseRoute reads a location fragment of the form "#/", "#/active" or
// "#/completed". Anything else is RouteAll.
func ParseRoute(hash string) Route {
	parts := strings.Split(hash, "/")
	if len(parts) < 2 {
		return RouteAll
	}
	switch strings.ToLower(strings.TrimSpace(parts[1])) {
	case "active":
		return RouteActive
	case "completed":
		return RouteCompleted
	default:
		return RouteAll
	}
}

// Page is the fragment segment of the route: "", "active" or "completed".
func (r Route) Page() string {
	switch r {
	case RouteActive:
		return "active"
	case RouteCompleted:
		return "completed"
	default:
		return ""
	}
}

// Hash is the location fragment selecting r.
func (r Route) Hash() string {
	return "#/" + r.Page()
}

func (r Route) String() string {
	if r == "" {
		return string(RouteAll)
	}
	return string(r)
}
