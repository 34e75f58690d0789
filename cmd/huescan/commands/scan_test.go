package commands

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/huescan-dev/huescan/internal/config"
	"github.com/huescan-dev/huescan/internal/render"
)

func writeFixtureWorkspace(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "package.json"), []byte("{}\n"), 0o644))
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "src"), 0o755))

	mainTS := "import \"./app.css\";\nconst border = \"#abcdef\";\n"
	appCSS := ":root {\n  --ink: #112233;\n}\n.panel {\n  color: var(--ink);\n}\n"

	require.NoError(t, os.WriteFile(filepath.Join(dir, "src", "main.ts"), []byte(mainTS), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "src", "app.css"), []byte(appCSS), 0o644))

	return dir
}

func TestScanCommand_WritesValidJSONReport(t *testing.T) {
	dir := writeFixtureWorkspace(t)
	t.Chdir(dir)

	out := filepath.Join(dir, "report.json")

	cmd := NewScanCommand()
	cmd.SetArgs([]string{"--format", "json", "--out", out, filepath.Join(dir, "src", "main.ts")})

	require.NoError(t, cmd.Execute())

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	require.NoError(t, render.ValidateReportJSON(data))

	var report map[string]any

	require.NoError(t, json.Unmarshal(data, &report))
	assert.InDelta(t, 2, report["files_scanned"], 0)
	assert.InDelta(t, 2, report["total_unique"], 0)
}

func TestScanCommand_TextToFile(t *testing.T) {
	dir := writeFixtureWorkspace(t)
	t.Chdir(dir)

	out := filepath.Join(dir, "report.txt")

	cmd := NewScanCommand()
	cmd.SetArgs([]string{"--no-color", "--out", out, filepath.Join(dir, "src", "main.ts")})

	require.NoError(t, cmd.Execute())

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Color inventory for")
	assert.Contains(t, string(data), "--ink")
}

func TestScanCommand_MissingRootFails(t *testing.T) {
	dir := writeFixtureWorkspace(t)
	t.Chdir(dir)

	cmd := NewScanCommand()
	cmd.SetArgs([]string{filepath.Join(dir, "src", "absent.ts")})

	require.Error(t, cmd.Execute())
}

func TestFindWorkspaceRoot(t *testing.T) {
	dir := writeFixtureWorkspace(t)

	nested := filepath.Join(dir, "src")
	assert.Equal(t, dir, findWorkspaceRoot(nested))

	// No manifest anywhere above: fall back to the starting directory.
	bare := t.TempDir()
	assert.Equal(t, bare, findWorkspaceRoot(bare))
}

func TestApplyFlagOverrides(t *testing.T) {
	t.Parallel()

	cfg := &config.Config{
		Scan:   config.ScanConfig{MaxFiles: 50, Theme: true},
		Output: config.OutputConfig{Format: "text"},
	}

	flags := &scanFlags{format: "yaml", maxFiles: 7, noTheme: true, noColor: true}

	cmd := &cobra.Command{}
	cmd.Flags().StringVar(&flags.format, "format", "", "")
	cmd.Flags().IntVar(&flags.maxFiles, "max-files", 0, "")
	require.NoError(t, cmd.Flags().Set("format", "yaml"))
	require.NoError(t, cmd.Flags().Set("max-files", "7"))

	applyFlagOverrides(cmd, cfg, flags)

	assert.Equal(t, "yaml", cfg.Output.Format)
	assert.Equal(t, 7, cfg.Scan.MaxFiles)
	assert.False(t, cfg.Scan.Theme)
	assert.True(t, cfg.Output.NoColor)
}

func TestNewMCPCommand_Construction(t *testing.T) {
	t.Parallel()

	cmd := NewMCPCommand()

	require.NotNil(t, cmd)
	assert.Equal(t, "mcp", cmd.Use)
	assert.NotNil(t, cmd.Flags().Lookup("debug"))
}
