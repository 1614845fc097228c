package options

import (
	"errors"

	"github.com/spf13/cobra"
)

// ToggleOptions
type ToggleOptions struct {
	Done bool
	Undo bool
}

func AddDoneArg(cmd *cobra.Command, o *ToggleOptions) {
	cmd.Flags().BoolVarP(&o.Done, "done", "d", false,
		"Mark as completed instead of flipping.")
}

func AddUndoArg(cmd *cobra.Command, o *ToggleOptions) {
	cmd.Flags().BoolVarP(&o.Undo, "undo", "u", false,
		"Mark as active instead of completed.")
}

// Validate rejects --done together with --undo.
func (o *ToggleOptions) Validate() error {
	if o.Done && o.Undo {
		return errors.New("--done and --undo are mutually exclusive")
	}
	return nil
}
