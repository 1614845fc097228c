// Package codec writes the collection out in interchange formats.
package codec

import (
	"fmt"
	"io"
	"sort"

	"tableflip.dev/todo/pkg/item"
)

// Exporter writes a collection in one format.
type Exporter interface {
	Export(todos []item.Item, w io.Writer) error
	Format() string
}

var exporters = map[string]Exporter{}

func register(e Exporter) {
	exporters[e.Format()] = e
}

func init() {
	register(NewJSONCodec())
	register(NewYAMLCodec())
}

// ForFormat returns the exporter for format.
func ForFormat(format string) (Exporter, error) {
	e, ok := exporters[format]
	if !ok {
		return nil, fmt.Errorf("codec: unknown format %q (supported: %v)", format, Formats())
	}
	return e, nil
}

// Formats lists the supported formats.
func Formats() []string {
	out := make([]string, 0, len(exporters))
	for f := range exporters {
		out = append(out, f)
	}
	sort.Strings(out)
	return out
}
