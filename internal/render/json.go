package render

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/huescan-dev/huescan/internal/inventory"
)

// JSON renders the report as indented JSON.
type JSON struct{}

// Render writes the serialized report to w.
func (r *JSON) Render(w io.Writer, inv *inventory.Inventory) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	if err := enc.Encode(BuildReport(inv)); err != nil {
		return fmt.Errorf("encode json report: %w", err)
	}

	return nil
}
