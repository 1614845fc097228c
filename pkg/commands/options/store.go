package options

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"tableflip.dev/todo/pkg/store"
)

// AddStoreArgs registers the persistent store flags and binds them to viper
// so they override config files and TODO_* environment variables.
func AddStoreArgs(cmd *cobra.Command) {
	flags := cmd.PersistentFlags()
	flags.String("backend", store.BackendDiskv,
		fmt.Sprintf("Storage backend, one of %s.", strings.Join(store.Backends(), ", ")))
	flags.String("path", "~/.todo.db",
		"Directory holding the diskv files or the sqlite database.")
	flags.String("name", "todos",
		"Key the collection is stored under.")

	for _, name := range []string{"backend", "path", "name"} {
		_ = viper.BindPFlag(name, flags.Lookup(name))
	}
	_ = cmd.RegisterFlagCompletionFunc("backend", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return store.Backends(), cobra.ShellCompDirectiveNoFileComp
	})
}
