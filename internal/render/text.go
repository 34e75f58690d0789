package render

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/huescan-dev/huescan/internal/inventory"
	"github.com/huescan-dev/huescan/internal/scanner"
	"github.com/huescan-dev/huescan/pkg/colorval"
)

// swatchBlock is the cell content tinted with the entry's color.
const swatchBlock = "██"

// Text renders a colored terminal summary: a header with pass totals,
// then one table per file group.
type Text struct {
	// NoColor disables ANSI colors; swatch cells fall back to the
	// canonical hex form.
	NoColor bool
}

// Render writes the terminal summary to w.
func (r *Text) Render(w io.Writer, inv *inventory.Inventory) error {
	colorsOn := !r.NoColor && os.Getenv("NO_COLOR") == ""

	fmt.Fprintf(w, "Color inventory for %s\n", inv.RootDisplay)
	fmt.Fprintf(w, "%d unique colors across %d files (%s lines, %s)\n",
		inv.TotalUnique(),
		inv.FilesScanned,
		humanize.Comma(int64(inv.LinesScanned)),
		humanize.Bytes(uint64(inv.BytesScanned)), //nolint:gosec // byte count is never negative
	)

	if inv.Truncated {
		r.notice(w, colorsOn, "Import traversal stopped at the file cap; results are partial.")
	}

	if inv.SupportsSystemTheme {
		fmt.Fprintln(w, "Automatic OS theme switching detected.")
	}

	for _, group := range inv.Groups {
		fmt.Fprintf(w, "\n%s (%d unique)\n", group.Display, group.UniqueCount())
		fmt.Fprintln(w, r.groupTable(group, colorsOn))
	}

	return nil
}

func (r *Text) notice(w io.Writer, colorsOn bool, msg string) {
	if colorsOn {
		color.New(color.FgYellow).Fprintln(w, msg)

		return
	}

	fmt.Fprintln(w, msg)
}

func (r *Text) groupTable(group inventory.FileGroup, colorsOn bool) string {
	tbl := table.NewWriter()
	tbl.SetStyle(table.StyleLight)
	tbl.Style().Options.SeparateRows = false

	tbl.AppendHeader(table.Row{"", "KIND", "NAME", "VALUE", "THEME", "LINE", "SCOPE", "PROPERTY", "ROLE"})

	for _, fileEntry := range group.Entries {
		entry := fileEntry.Entry
		swatch := r.swatch(entry.Value, colorsOn)

		for _, occ := range fileEntry.Occurrences {
			tbl.AppendRow(table.Row{
				swatch,
				string(entry.Kind),
				entry.Name,
				entry.Value,
				string(occ.Context.Theme),
				strconv.Itoa(occ.Range.Line) + ":" + strconv.Itoa(occ.Range.StartColumn),
				orUnknown(occ.Context.Scope),
				orUnknown(occ.Context.Property),
				roleOf(occ),
			})
		}
	}

	return tbl.Render()
}

// swatch returns the colored block for a value, the canonical hex form
// when colors are off, or an empty cell when the value does not parse.
func (r *Text) swatch(value string, colorsOn bool) string {
	canonical, ok := colorval.Swatch(value)
	if !ok {
		return ""
	}

	if !colorsOn {
		return canonical
	}

	red, green, blue, ok := colorval.RGB(value)
	if !ok {
		return canonical
	}

	return color.RGB(int(red), int(green), int(blue)).Sprint(swatchBlock)
}

func roleOf(occ scanner.Occurrence) string {
	if occ.Context.IsDefinition {
		return RoleDefinition
	}

	return RoleUsage
}
