// Package config defines huescan's typed configuration and its loading
// from file, environment, and defaults.
package config

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// Default scan settings.
const (
	// DefaultScanMaxFiles caps the import closure per pass.
	DefaultScanMaxFiles = 50

	// DefaultScanWindowLines bounds the markup breadcrumb walk.
	DefaultScanWindowLines = 30

	// DefaultScanTheme enables theme classification.
	DefaultScanTheme = true

	// DefaultOutputFormat is the scan command's output format.
	DefaultOutputFormat = "text"
)

// Formats accepted by the scan command.
var validFormats = []string{"text", "json", "yaml", "html"}

// Validation errors.
var (
	ErrMaxFilesOutOfRange = errors.New("scan.max_files must be at least 1")
	ErrWindowLinesInvalid = errors.New("scan.window_lines must not be negative")
	ErrBadExtension       = errors.New("scan.extensions entries must start with a dot")
	ErrUnknownFormat      = errors.New("output.format must be one of text, json, yaml, html")
)

// Config is the root configuration.
type Config struct {
	Scan   ScanConfig   `mapstructure:"scan"`
	Output OutputConfig `mapstructure:"output"`
}

// ScanConfig tunes one scan pass.
type ScanConfig struct {
	// MaxFiles caps the number of files collected from the import
	// graph, root included.
	MaxFiles int `mapstructure:"max_files"`

	// Extensions overrides the ordered candidate extension list used
	// for extensionless import specifiers. Empty keeps the built-in
	// order.
	Extensions []string `mapstructure:"extensions"`

	// WindowLines bounds the backward walk for markup breadcrumbs.
	WindowLines int `mapstructure:"window_lines"`

	// Theme toggles dark/light/base classification of stylesheet
	// lines.
	Theme bool `mapstructure:"theme"`
}

// OutputConfig tunes report rendering.
type OutputConfig struct {
	// Format selects the report renderer.
	Format string `mapstructure:"format"`

	// NoColor disables terminal colors in text output.
	NoColor bool `mapstructure:"no_color"`
}

// Validate checks cross-field constraints after unmarshaling.
func (c *Config) Validate() error {
	if c.Scan.MaxFiles < 1 {
		return ErrMaxFilesOutOfRange
	}

	if c.Scan.WindowLines < 0 {
		return ErrWindowLinesInvalid
	}

	for _, ext := range c.Scan.Extensions {
		if !strings.HasPrefix(ext, ".") {
			return fmt.Errorf("%w: %q", ErrBadExtension, ext)
		}
	}

	if !slices.Contains(validFormats, c.Output.Format) {
		return fmt.Errorf("%w: %q", ErrUnknownFormat, c.Output.Format)
	}

	return nil
}
