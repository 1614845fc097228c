package codec

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"tableflip.dev/todo/pkg/item"
)

// YAMLCodec writes the collection as YAML.
type YAMLCodec struct{}

// NewYAMLCodec creates a new YAML codec
func NewYAMLCodec() *YAMLCodec {
	return &YAMLCodec{}
}

func (c *YAMLCodec) Format() string {
	return "yaml"
}

type yamlCollection struct {
	Todos []yamlItem `yaml:"todos"`
}

type yamlItem struct {
	ID        int    `yaml:"id"`
	Title     string `yaml:"title"`
	Completed bool   `yaml:"completed"`
}

func (c *YAMLCodec) Export(todos []item.Item, w io.Writer) error {
	yc := yamlCollection{Todos: make([]yamlItem, 0, len(todos))}
	for _, t := range todos {
		yc.Todos = append(yc.Todos, yamlItem{ID: t.ID, Title: t.Title, Completed: t.Completed})
	}

	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(&yc); err != nil {
		return fmt.Errorf("failed to encode YAML: %w", err)
	}
	return encoder.Close()
}
