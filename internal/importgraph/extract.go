// Package importgraph extracts explicit import statements from source
// text, resolves specifiers to files, and walks the resulting graph
// breadth-first from a root file. Only syntactically explicit specifiers
// (literal strings in import/require/@import statements) are followed;
// anything computed is invisible to the walk.
package importgraph

import (
	"regexp"
	"strings"
)

// EdgeKind distinguishes script imports from stylesheet imports; the
// followability rules differ between them.
type EdgeKind int

const (
	// EdgeCode is an ES import or CommonJS require.
	EdgeCode EdgeKind = iota

	// EdgeStylesheet is a CSS @import.
	EdgeStylesheet
)

// Edge is one explicit import statement found in a file.
type Edge struct {
	Specifier string
	Kind      EdgeKind
}

// The four explicit-import shapes. Specifier capture groups hold the
// literal string; everything else is ignored.
var (
	importFromPattern = regexp.MustCompile(`\bimport\s+[^'";]*?\bfrom\s*['"]([^'"]+)['"]`)

	// The leading group keeps a bare script import from also matching
	// the "import" inside a CSS @import statement.
	bareImportPattern = regexp.MustCompile(`(?:^|[^@\w])import\s*['"]([^'"]+)['"]`)
	requirePattern    = regexp.MustCompile(`\brequire\s*\(\s*['"]([^'"]+)['"]\s*\)`)
	atImportPattern   = regexp.MustCompile(`@import\s+(?:url\(\s*['"]?([^'")]+)['"]?\s*\)|['"]([^'"]+)['"])`)
)

// Extract returns the explicit import edges of one file, grouped by
// statement shape and in order of appearance within each shape.
// Duplicate (kind, specifier) pairs are suppressed.
func Extract(text string) []Edge {
	var edges []Edge

	seen := map[Edge]bool{}

	add := func(e Edge) {
		if e.Specifier == "" || seen[e] {
			return
		}

		seen[e] = true
		edges = append(edges, e)
	}

	for _, m := range importFromPattern.FindAllStringSubmatch(text, -1) {
		add(Edge{Specifier: m[1], Kind: EdgeCode})
	}

	for _, m := range bareImportPattern.FindAllStringSubmatch(text, -1) {
		add(Edge{Specifier: m[1], Kind: EdgeCode})
	}

	for _, m := range requirePattern.FindAllStringSubmatch(text, -1) {
		add(Edge{Specifier: m[1], Kind: EdgeCode})
	}

	for _, m := range atImportPattern.FindAllStringSubmatch(text, -1) {
		spec := m[1]
		if spec == "" {
			spec = m[2]
		}

		add(Edge{Specifier: spec, Kind: EdgeStylesheet})
	}

	return edges
}

// Alias prefixes resolved against the workspace root.
var aliasPrefixes = []string{"@/", "~/"}

// Followable reports whether an edge's specifier is explicit enough to
// resolve. Code specifiers must be relative, root-absolute, or aliased;
// bare package names are never followed. Stylesheet specifiers are
// conventionally relative even without a leading dot, so anything short
// of a URL is followed.
func Followable(e Edge) bool {
	s := e.Specifier

	if e.Kind == EdgeStylesheet {
		return !strings.HasPrefix(s, "http://") &&
			!strings.HasPrefix(s, "https://") &&
			!strings.HasPrefix(s, "data:") &&
			!strings.HasPrefix(s, "//")
	}

	if strings.HasPrefix(s, "./") || strings.HasPrefix(s, "../") || strings.HasPrefix(s, "/") {
		return true
	}

	for _, p := range aliasPrefixes {
		if strings.HasPrefix(s, p) {
			return true
		}
	}

	return false
}
