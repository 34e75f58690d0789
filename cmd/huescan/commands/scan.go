// Package commands implements the huescan CLI subcommands.
package commands

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/huescan-dev/huescan/internal/config"
	"github.com/huescan-dev/huescan/internal/inventory"
	"github.com/huescan-dev/huescan/internal/observability"
	"github.com/huescan-dev/huescan/internal/render"
	"github.com/huescan-dev/huescan/internal/scan"
	"github.com/huescan-dev/huescan/internal/workspace"
	"github.com/huescan-dev/huescan/pkg/version"
)

// packageManifest marks the workspace root during upward discovery.
const packageManifest = "package.json"

// outFilePerm is the mode of report files written via --out.
const outFilePerm = 0o644

type scanFlags struct {
	format        string
	out           string
	maxFiles      int
	workspaceRoot string
	noColor       bool
	noTheme       bool
	configPath    string
	debug         bool
}

// NewScanCommand creates the scan command.
func NewScanCommand() *cobra.Command {
	flags := &scanFlags{}

	cmd := &cobra.Command{
		Use:   "scan <root-file>",
		Short: "Scan a file and its import closure for color usage",
		Long: `Scan walks the explicit import graph (import/require/@import) from the
given root file, collects every color-bearing token (custom-property
definitions and references, literal hex/rgb()/hsl() values), infers the
usage context of each occurrence, and prints a deduplicated inventory
grouped by file.

Examples:
  huescan scan src/App.tsx
  huescan scan --format json --out report.json src/index.ts
  huescan scan --max-files 100 --no-theme styles/main.css`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cobraCmd *cobra.Command, args []string) error {
			return runScan(cobraCmd, args[0], flags)
		},
	}

	cmd.Flags().StringVarP(&flags.format, "format", "f", "", "output format: text, json, yaml, html")
	cmd.Flags().StringVarP(&flags.out, "out", "o", "", "write the report to a file instead of stdout")
	cmd.Flags().IntVar(&flags.maxFiles, "max-files", 0, "cap on files collected from the import graph")
	cmd.Flags().StringVar(&flags.workspaceRoot, "workspace-root", "", "workspace directory anchoring alias imports (default: nearest package.json directory)")
	cmd.Flags().BoolVar(&flags.noColor, "no-color", false, "disable colored output")
	cmd.Flags().BoolVar(&flags.noTheme, "no-theme", false, "skip dark/light theme classification")
	cmd.Flags().StringVar(&flags.configPath, "config", "", "path to a config file (default: .huescan.yaml in CWD or $HOME)")
	cmd.Flags().BoolVar(&flags.debug, "debug", false, "enable debug logging to stderr")

	return cmd
}

func runScan(cmd *cobra.Command, rootArg string, flags *scanFlags) error {
	cfg, err := config.Load(flags.configPath)
	if err != nil {
		return err
	}

	applyFlagOverrides(cmd, cfg, flags)

	rootFile, err := filepath.Abs(rootArg)
	if err != nil {
		return fmt.Errorf("resolve root file: %w", err)
	}

	workspaceRoot := flags.workspaceRoot
	if workspaceRoot == "" {
		workspaceRoot = findWorkspaceRoot(filepath.Dir(rootFile))
	}

	if cfg.Output.NoColor {
		color.NoColor = true //nolint:reassign // intentional override of library global
	}

	providers, err := initObservability(observability.ModeCLI, flags.debug)
	if err != nil {
		return err
	}

	defer func() {
		shutdownErr := providers.Shutdown(context.Background())
		if shutdownErr != nil {
			providers.Logger.Warn("observability shutdown failed", "error", shutdownErr)
		}
	}()

	metrics, err := observability.NewScanMetrics(providers.Meter)
	if err != nil {
		return err
	}

	engine := scan.NewEngine(workspace.NewOSHost(workspaceRoot), providers, metrics)

	inv, err := engine.Run(cmd.Context(), rootFile, workspaceRoot, scan.Options{
		MaxFiles:    cfg.Scan.MaxFiles,
		Extensions:  cfg.Scan.Extensions,
		WindowLines: cfg.Scan.WindowLines,
		Theme:       cfg.Scan.Theme,
	})
	if err != nil {
		return err
	}

	renderer, err := render.For(cfg.Output.Format, cfg.Output.NoColor)
	if err != nil {
		return err
	}

	return writeReport(renderer, inv, flags.out)
}

// applyFlagOverrides lets explicitly set flags win over the config file.
func applyFlagOverrides(cmd *cobra.Command, cfg *config.Config, flags *scanFlags) {
	if cmd.Flags().Changed("format") {
		cfg.Output.Format = flags.format
	}

	if cmd.Flags().Changed("max-files") {
		cfg.Scan.MaxFiles = flags.maxFiles
	}

	if flags.noColor {
		cfg.Output.NoColor = true
	}

	if flags.noTheme {
		cfg.Scan.Theme = false
	}
}

// findWorkspaceRoot walks upward from dir looking for a package
// manifest; the root file's own directory is the fallback.
func findWorkspaceRoot(dir string) string {
	current := dir

	for {
		if _, err := os.Stat(filepath.Join(current, packageManifest)); err == nil {
			return current
		}

		parent := filepath.Dir(current)
		if parent == current {
			return dir
		}

		current = parent
	}
}

func writeReport(renderer render.Renderer, inv *inventory.Inventory, outPath string) error {
	if outPath == "" {
		return renderer.Render(os.Stdout, inv)
	}

	file, err := os.OpenFile(outPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, outFilePerm)
	if err != nil {
		return fmt.Errorf("open output file: %w", err)
	}

	renderErr := renderer.Render(file, inv)

	closeErr := file.Close()
	if renderErr != nil {
		return renderErr
	}

	if closeErr != nil {
		return fmt.Errorf("close output file: %w", closeErr)
	}

	return nil
}

func initObservability(mode observability.AppMode, debug bool) (observability.Providers, error) {
	cfg := observability.DefaultConfig()
	cfg.ServiceVersion = version.Version
	cfg.Mode = mode
	cfg.OTLPEndpoint = os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT")
	cfg.OTLPHeaders = observability.ParseOTLPHeaders(os.Getenv("OTEL_EXPORTER_OTLP_HEADERS"))
	cfg.OTLPInsecure = os.Getenv("OTEL_EXPORTER_OTLP_INSECURE") == "true"

	if mode == observability.ModeMCP {
		cfg.LogJSON = true
	}

	if debug {
		cfg.LogLevel = slog.LevelDebug
	}

	return observability.Init(cfg)
}
