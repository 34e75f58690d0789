package render

import (
	"fmt"
	"io"

	"github.com/huescan-dev/huescan/internal/inventory"
)

// Renderer writes one inventory to an output stream.
type Renderer interface {
	Render(w io.Writer, inv *inventory.Inventory) error
}

// For returns the renderer for a format name.
func For(format string, noColor bool) (Renderer, error) {
	switch format {
	case "text":
		return &Text{NoColor: noColor}, nil
	case "json":
		return &JSON{}, nil
	case "yaml":
		return &YAML{}, nil
	case "html":
		return &HTML{}, nil
	default:
		return nil, fmt.Errorf("unknown output format %q", format)
	}
}
