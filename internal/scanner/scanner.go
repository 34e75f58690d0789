// Package scanner emits positioned color occurrences for one file:
// variable definitions first, then variable references resolved against
// the closure-wide table, then literal tokens outside any exclusion
// span. Every occurrence carries a range from the file's line index and
// a usage context from the strategy matching the file's kind.
package scanner

import (
	"regexp"
	"strings"

	"github.com/huescan-dev/huescan/internal/scancontext"
	"github.com/huescan-dev/huescan/internal/theme"
	"github.com/huescan-dev/huescan/internal/vartable"
	"github.com/huescan-dev/huescan/internal/workspace"
	"github.com/huescan-dev/huescan/pkg/colorval"
)

// Kind tags the payload variant of an occurrence.
type Kind int

const (
	// KindVariable is a named custom-property definition or reference.
	KindVariable Kind = iota

	// KindLiteral is a bare color token.
	KindLiteral
)

// Range locates an occurrence: 1-based line, 0-based columns.
type Range struct {
	Line        int
	StartColumn int
	EndColumn   int
}

// Context is the inferred usage context of one occurrence. Empty scope
// or property means unresolved, rendered "unknown" downstream.
type Context struct {
	Scope        string
	Property     string
	Theme        theme.Tag
	IsDefinition bool
}

// Occurrence is one concrete, positioned appearance of a color-bearing
// token. Created once per scanner match; context is attached before the
// occurrence leaves this package.
type Occurrence struct {
	Kind    Kind
	Name    string
	Value   string
	File    string
	Range   Range
	Context Context
}

// referencePattern matches a var() reference; group 1 is the name.
var referencePattern = regexp.MustCompile(`var\(\s*(--[A-Za-z0-9_-]+)\s*[^)]*\)`)

// Options tunes the per-file scan.
type Options struct {
	// WindowLines bounds the markup breadcrumb walk.
	WindowLines int
}

// ScanFile emits the occurrences of one file in pass order:
// definitions, references, literals. References to names absent from
// the table yield nothing. themes may be nil for markup files.
func ScanFile(file *workspace.File, table *vartable.Table, themes *theme.FileThemes, opts Options) []Occurrence {
	s := &fileScan{
		file:    file,
		table:   table,
		themes:  themes,
		lines:   strings.Split(file.Text, "\n"),
		window:  opts.WindowLines,
		exclude: &spanSet{},
	}

	var out []Occurrence

	out = append(out, s.definitions()...)
	out = append(out, s.references()...)
	out = append(out, s.literals()...)

	return out
}

type fileScan struct {
	file    *workspace.File
	table   *vartable.Table
	themes  *theme.FileThemes
	lines   []string
	window  int
	exclude *spanSet
}

// definitions scans custom-property declarations whose right-hand side
// is a bare color token. The value span becomes an exclusion span.
// Later duplicates of a table-retained name still appear here:
// occurrence extraction is independent of the resolution table.
func (s *fileScan) definitions() []Occurrence {
	var out []Occurrence

	for _, m := range vartable.DeclPattern.FindAllStringSubmatchIndex(s.file.Text, -1) {
		name := s.file.Text[m[2]:m[3]]
		rhs := s.file.Text[m[4]:m[5]]

		if !colorval.IsColor(rhs) {
			continue
		}

		token, ok := colorval.First(rhs)
		if !ok {
			continue
		}

		start := m[4] + token.Start
		end := m[4] + token.End

		s.exclude.add(start, end)

		occ := s.occurrence(KindVariable, name, token.Value, start, end)
		occ.Context.IsDefinition = true

		out = append(out, occ)
	}

	return out
}

// references scans var() usages and resolves each against the table.
// An unresolvable name emits no occurrence, by design.
func (s *fileScan) references() []Occurrence {
	var out []Occurrence

	for _, m := range referencePattern.FindAllStringSubmatchIndex(s.file.Text, -1) {
		name := s.file.Text[m[2]:m[3]]

		value, ok := s.table.Resolve(name)
		if !ok {
			continue
		}

		out = append(out, s.occurrence(KindVariable, name, value, m[0], m[1]))
	}

	return out
}

// literals scans bare color tokens, skipping spans already attributed
// to a definition value.
func (s *fileScan) literals() []Occurrence {
	var out []Occurrence

	for _, m := range colorval.FindAll(s.file.Text) {
		if s.exclude.overlaps(m.Start, m.End) {
			continue
		}

		out = append(out, s.occurrence(KindLiteral, "", m.Value, m.Start, m.End))
	}

	return out
}

// occurrence assembles one occurrence with range and context attached.
func (s *fileScan) occurrence(kind Kind, name, value string, start, end int) Occurrence {
	line, startCol := s.file.Lines.Position(start)
	_, endCol := s.file.Lines.Position(end)

	occ := Occurrence{
		Kind:  kind,
		Name:  name,
		Value: value,
		File:  s.file.Path,
		Range: Range{Line: line, StartColumn: startCol, EndColumn: endCol},
	}

	lineStart := s.file.Lines.LineStart(line)

	if s.file.Kind == workspace.KindStylesheet {
		scope, property := scancontext.Stylesheet(s.file.Text, lineStart, start)
		occ.Context.Scope = scope
		occ.Context.Property = property
		occ.Context.Theme = s.themes.At(line)
	} else {
		prefix := s.file.Text[lineStart:start]
		scope, property := scancontext.Markup(s.lines, line, prefix, s.window)
		occ.Context.Scope = scope
		occ.Context.Property = property
		occ.Context.Theme = theme.TagBase
	}

	return occ
}
