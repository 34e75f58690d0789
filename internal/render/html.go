package render

import (
	"bytes"
	"fmt"
	"html/template"
	"io"
	"strings"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/huescan-dev/huescan/internal/inventory"
	"github.com/huescan-dev/huescan/pkg/colorval"
)

const (
	chartWidth  = "100%"
	chartHeight = "400px"
)

// HTML renders a self-contained report page: a bar chart of unique
// colors per file and one swatch table per file group.
type HTML struct{}

type htmlPage struct {
	Report *Report
	Chart  template.HTML
	Files  []htmlFile
}

type htmlFile struct {
	Path         string
	UniqueColors int
	Rows         []htmlRow
}

type htmlRow struct {
	Swatch     string
	SwatchText string
	Kind       string
	Name       string
	Value      string
	Theme      string
	Lines      string
	Scope      string
	Property   string
}

// Render writes the report page to w.
func (r *HTML) Render(w io.Writer, inv *inventory.Inventory) error {
	report := BuildReport(inv)

	chart, err := renderChart(buildBarChart(report))
	if err != nil {
		return fmt.Errorf("render chart: %w", err)
	}

	page := htmlPage{
		Report: report,
		Chart:  chart,
		Files:  buildHTMLFiles(report),
	}

	if err := pageTemplate.Execute(w, page); err != nil {
		return fmt.Errorf("render html report: %w", err)
	}

	return nil
}

// buildBarChart charts unique colors per file in group order.
func buildBarChart(report *Report) *charts.Bar {
	labels := make([]string, len(report.Files))
	values := make([]opts.BarData, len(report.Files))

	for i, file := range report.Files {
		labels[i] = file.Path
		values[i] = opts.BarData{Value: file.UniqueColors}
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Width: chartWidth, Height: chartHeight}),
		charts.WithTitleOpts(opts.Title{Title: "Unique colors per file"}),
		charts.WithTooltipOpts(opts.Tooltip{Trigger: "axis"}),
		charts.WithXAxisOpts(opts.XAxis{AxisLabel: &opts.AxisLabel{Rotate: 30}}),
		charts.WithYAxisOpts(opts.YAxis{Name: "unique colors"}),
	)
	bar.SetXAxis(labels)
	bar.AddSeries("unique colors", values)

	return bar
}

// renderChart renders the chart to a buffer and extracts the embeddable
// div and script from go-echarts' full-page output.
func renderChart(bar *charts.Bar) (template.HTML, error) {
	var buf bytes.Buffer

	if err := bar.Render(&buf); err != nil {
		return "", err
	}

	return template.HTML(extractChartContent(buf.String())), nil //nolint:gosec // chart markup is generated locally
}

func extractChartContent(html string) string {
	start := strings.Index(html, `<div class="container">`)
	if start == -1 {
		return html
	}

	end := strings.Index(html, `</body>`)
	if end == -1 {
		return html
	}

	return html[start:end]
}

func buildHTMLFiles(report *Report) []htmlFile {
	files := make([]htmlFile, 0, len(report.Files))

	for _, fileReport := range report.Files {
		file := htmlFile{
			Path:         fileReport.Path,
			UniqueColors: fileReport.UniqueColors,
		}

		for _, entry := range fileReport.Entries {
			file.Rows = append(file.Rows, buildHTMLRow(entry))
		}

		files = append(files, file)
	}

	return files
}

func buildHTMLRow(entry EntryReport) htmlRow {
	swatchText := "#000000"
	if colorval.IsDark(entry.Value) {
		swatchText = "#ffffff"
	}

	lines := make([]string, 0, len(entry.Occurrences))
	scope, property := "", ""

	for _, occ := range entry.Occurrences {
		lines = append(lines, fmt.Sprintf("%d", occ.Line))

		if scope == "" {
			scope, property = occ.Scope, occ.Property
		}
	}

	return htmlRow{
		Swatch:     entry.Swatch,
		SwatchText: swatchText,
		Kind:       entry.Kind,
		Name:       entry.Name,
		Value:      entry.Value,
		Theme:      entry.Theme,
		Lines:      strings.Join(lines, ", "),
		Scope:      scope,
		Property:   property,
	}
}

var pageTemplate = template.Must(template.New("report").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>huescan: {{.Report.Root}}</title>
<style>
body { font-family: -apple-system, "Segoe UI", sans-serif; margin: 2rem; color: #1f2328; }
h1 { font-size: 1.4rem; }
h2 { font-size: 1.1rem; margin-top: 2rem; }
.totals { color: #57606a; }
table { border-collapse: collapse; margin-top: 0.5rem; }
th, td { border: 1px solid #d0d7de; padding: 0.3rem 0.6rem; font-size: 0.85rem; text-align: left; }
th { background: #f6f8fa; }
.swatch { font-family: monospace; min-width: 5rem; }
</style>
</head>
<body>
<h1>Color inventory for {{.Report.Root}}</h1>
<p class="totals">{{.Report.TotalUnique}} unique colors across {{.Report.FilesScanned}} files{{if .Report.Truncated}} (traversal truncated at file cap){{end}}{{if .Report.SupportsSystemTheme}}; automatic OS theme switching detected{{end}}.</p>
{{.Chart}}
{{range .Files}}
<h2>{{.Path}} ({{.UniqueColors}} unique)</h2>
<table>
<tr><th>Swatch</th><th>Kind</th><th>Name</th><th>Value</th><th>Theme</th><th>Lines</th><th>Scope</th><th>Property</th></tr>
{{range .Rows}}
<tr>
<td class="swatch" style="background-color: {{.Swatch}}; color: {{.SwatchText}};">{{.Swatch}}</td>
<td>{{.Kind}}</td>
<td>{{.Name}}</td>
<td>{{.Value}}</td>
<td>{{.Theme}}</td>
<td>{{.Lines}}</td>
<td>{{.Scope}}</td>
<td>{{.Property}}</td>
</tr>
{{end}}
</table>
{{end}}
</body>
</html>
`))
