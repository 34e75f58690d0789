package render

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/huescan-dev/huescan/internal/inventory"
)

// yamlIndentSpaces matches the two-space indent of the config file.
const yamlIndentSpaces = 2

// YAML renders the report as a YAML document.
type YAML struct{}

// Render writes the serialized report to w.
func (r *YAML) Render(w io.Writer, inv *inventory.Inventory) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(yamlIndentSpaces)

	if err := enc.Encode(BuildReport(inv)); err != nil {
		return fmt.Errorf("encode yaml report: %w", err)
	}

	if err := enc.Close(); err != nil {
		return fmt.Errorf("close yaml encoder: %w", err)
	}

	return nil
}
