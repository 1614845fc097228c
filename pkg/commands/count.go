package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/todo/pkg/runner/count"
)

func addCount(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "count",
		Short: "Count active and completed todos.",
		Example: `
todo count
todo count --json
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			s := count.Count{
				JSON: oo.JSON,
			}
			err := s.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}
