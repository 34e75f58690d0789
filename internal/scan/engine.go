// Package scan orchestrates one complete scan pass: import traversal,
// variable-table collection, theme classification, per-file occurrence
// extraction, and aggregation into the final inventory.
package scan

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	nooptrace "go.opentelemetry.io/otel/trace/noop"

	"github.com/huescan-dev/huescan/internal/importgraph"
	"github.com/huescan-dev/huescan/internal/inventory"
	"github.com/huescan-dev/huescan/internal/observability"
	"github.com/huescan-dev/huescan/internal/scanner"
	"github.com/huescan-dev/huescan/internal/theme"
	"github.com/huescan-dev/huescan/internal/vartable"
	"github.com/huescan-dev/huescan/internal/workspace"
)

// Options tunes one scan pass.
type Options struct {
	// MaxFiles caps the import closure, root included. Zero means the
	// traversal default.
	MaxFiles int

	// Extensions overrides the candidate extension order for
	// extensionless specifiers.
	Extensions []string

	// WindowLines bounds the markup breadcrumb walk. Zero means the
	// context default.
	WindowLines int

	// Theme toggles dark/light/base classification of stylesheet lines.
	// When disabled every occurrence is tagged base.
	Theme bool
}

// Engine runs scan passes against one workspace host. Zero-value
// observability fields degrade to no-ops.
type Engine struct {
	Host    workspace.Host
	Logger  *slog.Logger
	Tracer  trace.Tracer
	Metrics *observability.ScanMetrics
}

// NewEngine creates an engine with the given host and observability
// providers.
func NewEngine(host workspace.Host, providers observability.Providers, metrics *observability.ScanMetrics) *Engine {
	return &Engine{
		Host:    host,
		Logger:  providers.Logger,
		Tracer:  providers.Tracer,
		Metrics: metrics,
	}
}

// Run executes one scan pass rooted at rootFile. workspaceRoot anchors
// alias and root-absolute import specifiers and display paths.
func (e *Engine) Run(ctx context.Context, rootFile, workspaceRoot string, opts Options) (*inventory.Inventory, error) {
	ctx, span := e.tracer().Start(ctx, "huescan.scan", trace.WithAttributes(
		attribute.String("scan.root_file", rootFile),
	))
	defer span.End()

	start := time.Now()

	closure, err := importgraph.Walk(ctx, e.Host, rootFile, workspaceRoot, importgraph.Options{
		MaxFiles:   opts.MaxFiles,
		Extensions: opts.Extensions,
	})
	if err != nil {
		return nil, fmt.Errorf("walk imports: %w", err)
	}

	table := vartable.Collect(closure.Files)

	var (
		occurrences    []scanner.Occurrence
		supportsSystem bool
		bytesScanned   int
		linesScanned   int
	)

	for _, file := range closure.Files {
		var themes *theme.FileThemes

		if opts.Theme && file.Kind == workspace.KindStylesheet {
			themes = theme.Classify(file.Text)
			supportsSystem = supportsSystem || themes.SupportsSystem
		}

		occurrences = append(occurrences, scanner.ScanFile(file, table, themes, scanner.Options{
			WindowLines: opts.WindowLines,
		})...)

		bytesScanned += len(file.Text)
		linesScanned += file.LineCount()
	}

	fileOrder := make([]string, len(closure.Files))
	for i, file := range closure.Files {
		fileOrder[i] = file.Path
	}

	inv := inventory.Aggregate(closure.Files[0].Path, fileOrder, occurrences, e.Host.Rel)
	inv.Truncated = closure.Truncated
	inv.SupportsSystemTheme = supportsSystem
	inv.FilesScanned = len(closure.Files)
	inv.BytesScanned = bytesScanned
	inv.LinesScanned = linesScanned

	duration := time.Since(start)

	e.logger().InfoContext(ctx, "scan pass complete",
		slog.String("root", inv.RootDisplay),
		slog.Int("files", inv.FilesScanned),
		slog.Int("skipped", len(closure.Skipped)),
		slog.Int("occurrences", len(occurrences)),
		slog.Int("unique", inv.TotalUnique()),
		slog.Bool("truncated", inv.Truncated),
		slog.Duration("duration", duration),
	)

	for _, skipped := range closure.Skipped {
		e.logger().WarnContext(ctx, "skipped unreadable file", slog.String("path", skipped))
	}

	if e.Metrics != nil {
		e.Metrics.RecordPass(ctx, inv.FilesScanned, len(closure.Skipped), len(occurrences), inv.Truncated, duration)
	}

	span.SetAttributes(
		attribute.Int("scan.files", inv.FilesScanned),
		attribute.Int("scan.occurrences", len(occurrences)),
		attribute.Int("scan.unique", inv.TotalUnique()),
		attribute.Bool("scan.truncated", inv.Truncated),
	)

	return inv, nil
}

func (e *Engine) tracer() trace.Tracer {
	if e.Tracer == nil {
		return nooptrace.NewTracerProvider().Tracer("huescan")
	}

	return e.Tracer
}

func (e *Engine) logger() *slog.Logger {
	if e.Logger == nil {
		return slog.Default()
	}

	return e.Logger
}
