package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_DefaultsWhenNoFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))

	// An explicit path that does not exist is an error; defaults only
	// apply when no path is given.
	require.Error(t, err)
	assert.Nil(t, cfg)
}

func TestLoad_SearchMissingFileUsesDefaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load("")

	require.NoError(t, err)
	assert.Equal(t, DefaultScanMaxFiles, cfg.Scan.MaxFiles)
	assert.Equal(t, DefaultScanWindowLines, cfg.Scan.WindowLines)
	assert.True(t, cfg.Scan.Theme)
	assert.Equal(t, DefaultOutputFormat, cfg.Output.Format)
	assert.False(t, cfg.Output.NoColor)
	assert.Empty(t, cfg.Scan.Extensions)
}

func TestLoad_ExplicitFileOverrides(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".huescan.yaml")

	content := []byte(`scan:
  max_files: 10
  window_lines: 5
  theme: false
  extensions:
    - .css
    - .scss
output:
  format: json
  no_color: true
`)
	require.NoError(t, os.WriteFile(path, content, 0o644))

	cfg, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, 10, cfg.Scan.MaxFiles)
	assert.Equal(t, 5, cfg.Scan.WindowLines)
	assert.False(t, cfg.Scan.Theme)
	assert.Equal(t, []string{".css", ".scss"}, cfg.Scan.Extensions)
	assert.Equal(t, "json", cfg.Output.Format)
	assert.True(t, cfg.Output.NoColor)
}

func TestLoad_EnvOverridesDefaults(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("HUESCAN_SCAN_MAX_FILES", "3")
	t.Setenv("HUESCAN_OUTPUT_FORMAT", "yaml")

	cfg, err := Load("")

	require.NoError(t, err)
	assert.Equal(t, 3, cfg.Scan.MaxFiles)
	assert.Equal(t, "yaml", cfg.Output.Format)
}

func TestLoad_RejectsInvalidFormat(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".huescan.yaml")

	require.NoError(t, os.WriteFile(path, []byte("output:\n  format: csv\n"), 0o644))

	_, err := Load(path)

	require.ErrorIs(t, err, ErrUnknownFormat)
}

func TestLoad_RejectsZeroMaxFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".huescan.yaml")

	require.NoError(t, os.WriteFile(path, []byte("scan:\n  max_files: 0\n"), 0o644))

	_, err := Load(path)

	require.ErrorIs(t, err, ErrMaxFilesOutOfRange)
}

func TestValidate_ExtensionsNeedDot(t *testing.T) {
	t.Parallel()

	cfg := &Config{
		Scan: ScanConfig{
			MaxFiles:    DefaultScanMaxFiles,
			WindowLines: DefaultScanWindowLines,
			Extensions:  []string{"css"},
		},
		Output: OutputConfig{Format: DefaultOutputFormat},
	}

	require.ErrorIs(t, cfg.Validate(), ErrBadExtension)
}
