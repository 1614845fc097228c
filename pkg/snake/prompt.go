// Package snake holds the interactive prompts behind --interactive.
package snake

import (
	"errors"
	"io"
	"strings"

	"github.com/manifoldco/promptui"
	"github.com/sahilm/fuzzy"
	"github.com/spf13/cobra"

	"tableflip.dev/todo/pkg/item"
)

// ErrNothingToSelect is returned by SelectTodo for an empty list.
var ErrNothingToSelect = errors.New("no todos to choose from")

// SelectTodo asks which of todos to act on.
func SelectTodo(cmd *cobra.Command, label string, todos []item.Item) (item.Item, error) {
	if len(todos) == 0 {
		return item.Item{}, ErrNothingToSelect
	}

	templates := &promptui.SelectTemplates{
		Label:    "{{ . }}?",
		Active:   "➜  {{ .ID | faint }} {{ if .Completed }}[x]{{ else }}[ ]{{ end }} {{ .Title | bold }}",
		Inactive: "   {{ .ID | faint }} {{ if .Completed }}[x]{{ else }}[ ]{{ end }} {{ .Title }}",
		Selected: "{{ .Title | bold }}",
	}

	searcher := func(input string, index int) bool {
		input = strings.TrimSpace(input)
		if input == "" {
			return true
		}
		return len(fuzzy.Find(input, []string{todos[index].Title})) > 0
	}

	prompt := promptui.Select{
		HideHelp:  true,
		Label:     label,
		Items:     todos,
		Templates: templates,
		Size:      10,
		Searcher:  searcher,
		Stdin:     io.NopCloser(cmd.InOrStdin()),
		Stdout:    NopCloser(cmd.OutOrStdout()),
	}

	i, _, err := prompt.Run()
	if err != nil {
		return item.Item{}, err
	}
	return todos[i], nil
}

// PromptTitle asks for a todo title, pre-filled with def.
func PromptTitle(cmd *cobra.Command, label, def string) (string, error) {
	prompt := promptui.Prompt{
		Label:     label,
		Default:   def,
		AllowEdit: def != "",
		Stdin:     io.NopCloser(cmd.InOrStdin()),
		Stdout:    NopCloser(cmd.OutOrStdout()),
	}
	return prompt.Run()
}

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }

// NopCloser returns a WriteCloser with a no-op Close method wrapping
// the provided Writer w.
func NopCloser(w io.Writer) io.WriteCloser {
	return nopCloser{w}
}
