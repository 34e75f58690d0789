// Package render turns a scan inventory into user-facing output: a
// colored terminal summary, machine-readable JSON and YAML reports, and
// a self-contained HTML page.
package render

import (
	"time"

	"github.com/huescan-dev/huescan/internal/inventory"
	"github.com/huescan-dev/huescan/internal/scancontext"
	"github.com/huescan-dev/huescan/internal/scanner"
	"github.com/huescan-dev/huescan/pkg/colorval"
)

// Occurrence roles in serialized reports.
const (
	RoleDefinition = "definition"
	RoleUsage      = "usage"
)

// Report is the serializable form of an inventory, shared by the JSON,
// YAML, and MCP surfaces.
type Report struct {
	Root                string       `json:"root"                  yaml:"root"`
	GeneratedAt         time.Time    `json:"generated_at"          yaml:"generated_at"`
	Truncated           bool         `json:"truncated"             yaml:"truncated"`
	SupportsSystemTheme bool         `json:"supports_system_theme" yaml:"supports_system_theme"`
	FilesScanned        int          `json:"files_scanned"         yaml:"files_scanned"`
	BytesScanned        int          `json:"bytes_scanned"         yaml:"bytes_scanned"`
	LinesScanned        int          `json:"lines_scanned"         yaml:"lines_scanned"`
	TotalUnique         int          `json:"total_unique"          yaml:"total_unique"`
	Files               []FileReport `json:"files"                 yaml:"files"`
}

// FileReport is one file group of the report.
type FileReport struct {
	Path         string        `json:"path"          yaml:"path"`
	UniqueColors int           `json:"unique_colors" yaml:"unique_colors"`
	Entries      []EntryReport `json:"entries"       yaml:"entries"`
}

// EntryReport is one deduplicated color as seen from one file.
type EntryReport struct {
	Kind        string             `json:"kind"             yaml:"kind"`
	Name        string             `json:"name,omitempty"   yaml:"name,omitempty"`
	Value       string             `json:"value"            yaml:"value"`
	Swatch      string             `json:"swatch,omitempty" yaml:"swatch,omitempty"`
	Theme       string             `json:"theme,omitempty"  yaml:"theme,omitempty"`
	Occurrences []OccurrenceReport `json:"occurrences"      yaml:"occurrences"`
}

// OccurrenceReport is one positioned appearance.
type OccurrenceReport struct {
	Line        int    `json:"line"         yaml:"line"`
	StartColumn int    `json:"start_column" yaml:"start_column"`
	EndColumn   int    `json:"end_column"   yaml:"end_column"`
	Scope       string `json:"scope"        yaml:"scope"`
	Property    string `json:"property"     yaml:"property"`
	Theme       string `json:"theme"        yaml:"theme"`
	Role        string `json:"role"         yaml:"role"`
}

// BuildReport converts an inventory into its serializable form. The
// swatch field carries the canonical #rrggbb rendering when the value
// parses as a color.
func BuildReport(inv *inventory.Inventory) *Report {
	report := &Report{
		Root:                inv.RootDisplay,
		GeneratedAt:         time.Now().UTC(),
		Truncated:           inv.Truncated,
		SupportsSystemTheme: inv.SupportsSystemTheme,
		FilesScanned:        inv.FilesScanned,
		BytesScanned:        inv.BytesScanned,
		LinesScanned:        inv.LinesScanned,
		TotalUnique:         inv.TotalUnique(),
		Files:               make([]FileReport, 0, len(inv.Groups)),
	}

	for _, group := range inv.Groups {
		fileReport := FileReport{
			Path:         group.Display,
			UniqueColors: group.UniqueCount(),
			Entries:      make([]EntryReport, 0, len(group.Entries)),
		}

		for _, fileEntry := range group.Entries {
			fileReport.Entries = append(fileReport.Entries, buildEntry(fileEntry))
		}

		report.Files = append(report.Files, fileReport)
	}

	return report
}

func buildEntry(fileEntry inventory.FileEntry) EntryReport {
	entry := fileEntry.Entry

	out := EntryReport{
		Kind:        string(entry.Kind),
		Name:        entry.Name,
		Value:       entry.Value,
		Theme:       string(entry.Theme),
		Occurrences: make([]OccurrenceReport, 0, len(fileEntry.Occurrences)),
	}

	if swatch, ok := colorval.Swatch(entry.Value); ok {
		out.Swatch = swatch
	}

	for _, occ := range fileEntry.Occurrences {
		out.Occurrences = append(out.Occurrences, buildOccurrence(occ))
	}

	return out
}

func buildOccurrence(occ scanner.Occurrence) OccurrenceReport {
	role := RoleUsage
	if occ.Context.IsDefinition {
		role = RoleDefinition
	}

	return OccurrenceReport{
		Line:        occ.Range.Line,
		StartColumn: occ.Range.StartColumn,
		EndColumn:   occ.Range.EndColumn,
		Scope:       orUnknown(occ.Context.Scope),
		Property:    orUnknown(occ.Context.Property),
		Theme:       string(occ.Context.Theme),
		Role:        role,
	}
}

func orUnknown(s string) string {
	if s == "" {
		return scancontext.Unknown
	}

	return s
}
