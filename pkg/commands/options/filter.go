package options

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/todo/pkg/controller"
)

// FilterOptions selects the route a command renders.
type FilterOptions struct {
	Filter string
}

// AddFilterArgs wires the --filter flag on the provided command.
func AddFilterArgs(cmd *cobra.Command, o *FilterOptions) {
	cmd.Flags().StringVarP(&o.Filter, "filter", "f", "all",
		"Filter the list, one of 'all', 'active' or 'completed'.")
	_ = cmd.RegisterFlagCompletionFunc("filter", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return FilterNames(), cobra.ShellCompDirectiveNoFileComp
	})
}

// FilterNames lists the accepted filter values.
func FilterNames() []string {
	return []string{"all", "active", "completed"}
}

// Route validates the filter and returns its route.
func (o *FilterOptions) Route() (controller.Route, error) {
	switch strings.ToLower(strings.TrimSpace(o.Filter)) {
	case "", "all":
		return controller.RouteAll, nil
	case "active":
		return controller.RouteActive, nil
	case "completed", "done":
		return controller.RouteCompleted, nil
	default:
		return "", fmt.Errorf("unknown filter %q, expected one of %v", o.Filter, FilterNames())
	}
}
