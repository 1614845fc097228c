package codec

import (
	"encoding/json"
	"fmt"
	"io"

	"tableflip.dev/todo/pkg/item"
)

// JSONCodec writes the same {"todos": [...]} shape the store persists.
type JSONCodec struct{}

// NewJSONCodec creates a new JSON codec
func NewJSONCodec() *JSONCodec {
	return &JSONCodec{}
}

func (c *JSONCodec) Format() string {
	return "json"
}

func (c *JSONCodec) Export(todos []item.Item, w io.Writer) error {
	if todos == nil {
		todos = []item.Item{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(struct {
		Todos []item.Item `json:"todos"`
	}{Todos: todos}); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}
