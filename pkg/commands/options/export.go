package options

import (
	"github.com/spf13/cobra"

	"tableflip.dev/todo/pkg/codec"
)

// ExportOptions
type ExportOptions struct {
	Format string
}

func AddExportArgs(cmd *cobra.Command, o *ExportOptions) {
	cmd.Flags().StringVarP(&o.Format, "output", "o", "json",
		"Output format. One of 'json' or 'yaml'.")
	_ = cmd.RegisterFlagCompletionFunc("output", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return codec.Formats(), cobra.ShellCompDirectiveNoFileComp
	})
}
