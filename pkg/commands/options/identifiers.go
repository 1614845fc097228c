package options

import (
	"errors"

	"github.com/spf13/cobra"

	"tableflip.dev/todo/pkg/model"
)

// IDOptions
type IDOptions struct {
	ShowID bool
	ID     int
	IDs    []int
}

func AddShowIDArgs(cmd *cobra.Command, o *IDOptions) {
	cmd.Flags().BoolVarP(&o.ShowID, "show-id", "k", true,
		"Show the ID of each todo.")
}

// ParseID reads the todo id from the first argument.
func (o *IDOptions) ParseID(args []string) error {
	if len(args) < 1 {
		return errors.New("requires a todo id")
	}
	id, err := model.ParseID(args[0])
	if err != nil {
		return err
	}
	o.ID = int(id)
	return nil
}

// ParseIDs reads one todo id from each argument.
func (o *IDOptions) ParseIDs(args []string) error {
	if len(args) < 1 {
		return errors.New("requires at least one todo id")
	}
	o.IDs = make([]int, 0, len(args))
	for _, a := range args {
		id, err := model.ParseID(a)
		if err != nil {
			return err
		}
		o.IDs = append(o.IDs, int(id))
	}
	return nil
}
