package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/huescan-dev/huescan/internal/inventory"
	"github.com/huescan-dev/huescan/internal/scanner"
	"github.com/huescan-dev/huescan/internal/theme"
)

func fixtureInventory() *inventory.Inventory {
	occurrences := []scanner.Occurrence{
		{
			Kind: scanner.KindVariable, Name: "--brand", Value: "#AABBCC", File: "/app/theme.css",
			Range:   scanner.Range{Line: 2, StartColumn: 11, EndColumn: 18},
			Context: scanner.Context{Scope: ":root", Property: "--brand", Theme: theme.TagBase, IsDefinition: true},
		},
		{
			Kind: scanner.KindVariable, Name: "--brand", Value: "#AABBCC", File: "/app/card.css",
			Range:   scanner.Range{Line: 3, StartColumn: 9, EndColumn: 21},
			Context: scanner.Context{Scope: ".card", Property: "color", Theme: theme.TagBase},
		},
		{
			Kind: scanner.KindLiteral, Value: "rgb(255, 0, 0)", File: "/app/card.css",
			Range:   scanner.Range{Line: 5, StartColumn: 14, EndColumn: 28},
			Context: scanner.Context{Property: "background", Theme: theme.TagBase},
		},
	}

	display := func(path string) string { return strings.TrimPrefix(path, "/app/") }

	inv := inventory.Aggregate("/app/theme.css", []string{"/app/theme.css", "/app/card.css"}, occurrences, display)
	inv.FilesScanned = 2
	inv.BytesScanned = 180
	inv.LinesScanned = 12

	return inv
}

func TestJSON_ValidatesAgainstSchema(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	require.NoError(t, (&JSON{}).Render(&buf, fixtureInventory()))
	require.NoError(t, ValidateReportJSON(buf.Bytes()))
}

func TestBuildReport_Shape(t *testing.T) {
	t.Parallel()

	report := BuildReport(fixtureInventory())

	assert.Equal(t, "theme.css", report.Root)
	assert.Equal(t, 2, report.FilesScanned)
	assert.Equal(t, 2, report.TotalUnique)
	require.Len(t, report.Files, 2)

	// Root group first.
	assert.Equal(t, "theme.css", report.Files[0].Path)
	require.Len(t, report.Files[0].Entries, 1)

	entry := report.Files[0].Entries[0]
	assert.Equal(t, "variable", entry.Kind)
	assert.Equal(t, "--brand", entry.Name)
	assert.Equal(t, "#aabbcc", entry.Value)
	assert.Equal(t, "#aabbcc", entry.Swatch)
	assert.Equal(t, "base", entry.Theme)
	require.Len(t, entry.Occurrences, 1)
	assert.Equal(t, RoleDefinition, entry.Occurrences[0].Role)

	// The literal's missing scope surfaces as the explicit marker.
	cardEntries := report.Files[1].Entries
	require.Len(t, cardEntries, 2)
	assert.Equal(t, "literal", cardEntries[1].Kind)
	assert.Equal(t, "unknown", cardEntries[1].Occurrences[0].Scope)
}

func TestText_PlainOutput(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	require.NoError(t, (&Text{NoColor: true}).Render(&buf, fixtureInventory()))

	out := buf.String()
	assert.Contains(t, out, "Color inventory for theme.css")
	assert.Contains(t, out, "2 unique colors across 2 files")
	assert.Contains(t, out, "card.css (2 unique)")
	assert.Contains(t, out, "--brand")
	// Swatch column falls back to the canonical hex form.
	assert.Contains(t, out, "#aabbcc")
	assert.Contains(t, out, "rgb(255,0,0)")
	assert.NotContains(t, out, "\x1b[")
}

func TestText_TruncationNotice(t *testing.T) {
	t.Parallel()

	inv := fixtureInventory()
	inv.Truncated = true

	var buf bytes.Buffer

	require.NoError(t, (&Text{NoColor: true}).Render(&buf, inv))
	assert.Contains(t, buf.String(), "results are partial")
}

func TestYAML_RoundTripsRoot(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	require.NoError(t, (&YAML{}).Render(&buf, fixtureInventory()))

	var decoded map[string]any

	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "theme.css", decoded["root"])
	assert.Equal(t, 2, decoded["total_unique"])
}

func TestHTML_EmbedsChartAndSwatches(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	require.NoError(t, (&HTML{}).Render(&buf, fixtureInventory()))

	out := buf.String()
	assert.Contains(t, out, "<!DOCTYPE html>")
	assert.Contains(t, out, "echarts")
	assert.Contains(t, out, "background-color: #aabbcc")
	assert.Contains(t, out, "theme.css (1 unique)")
}

func TestFor_SelectsRenderer(t *testing.T) {
	t.Parallel()

	for _, format := range []string{"text", "json", "yaml", "html"} {
		renderer, err := For(format, false)
		require.NoError(t, err)
		require.NotNil(t, renderer)
	}

	_, err := For("csv", false)
	require.Error(t, err)
}
