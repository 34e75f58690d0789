package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/huescan-dev/huescan/internal/render"
	"github.com/huescan-dev/huescan/internal/scan"
)

// Tool name constants.
const (
	ToolNameScan = "huescan_scan"
)

// Sentinel errors for tool input validation.
var (
	// ErrEmptyRootFile indicates the root_file parameter is empty.
	ErrEmptyRootFile = errors.New("root_file parameter is required and must not be empty")
	// ErrRootFileNotAbsolute indicates the root_file is not an absolute path.
	ErrRootFileNotAbsolute = errors.New("root_file must be an absolute path")
	// ErrNegativeMaxFiles indicates a negative max_files parameter.
	ErrNegativeMaxFiles = errors.New("max_files must not be negative")
)

// ScanInput is the input schema for the huescan_scan tool.
type ScanInput struct {
	RootFile      string `json:"root_file"                jsonschema:"absolute path to the entry file of the import graph"`
	WorkspaceRoot string `json:"workspace_root,omitempty" jsonschema:"workspace directory anchoring alias imports (default: the root file's directory)"`
	MaxFiles      int    `json:"max_files,omitempty"      jsonschema:"cap on files collected from the import graph (default: 50)"`
	IncludeTheme  *bool  `json:"include_theme,omitempty"  jsonschema:"classify dark and light theme context (default: true)"`
}

// ToolOutput is a generic wrapper for tool results.
type ToolOutput struct {
	Data any `json:"data"`
}

// handleScan processes huescan_scan tool calls.
func (s *Server) handleScan(
	ctx context.Context,
	_ *mcpsdk.CallToolRequest,
	input ScanInput,
) (*mcpsdk.CallToolResult, ToolOutput, error) {
	err := validateScanInput(input)
	if err != nil {
		return errorResult(err)
	}

	includeTheme := true
	if input.IncludeTheme != nil {
		includeTheme = *input.IncludeTheme
	}

	engine := s.engines(workspaceRootFor(input))

	inv, err := engine.Run(ctx, input.RootFile, workspaceRootFor(input), scan.Options{
		MaxFiles: input.MaxFiles,
		Theme:    includeTheme,
	})
	if err != nil {
		return errorResult(fmt.Errorf("scan: %w", err))
	}

	return jsonResult(render.BuildReport(inv))
}

// validateScanInput checks scan input constraints.
func validateScanInput(input ScanInput) error {
	if input.RootFile == "" {
		return ErrEmptyRootFile
	}

	if !filepath.IsAbs(input.RootFile) {
		return ErrRootFileNotAbsolute
	}

	if input.MaxFiles < 0 {
		return ErrNegativeMaxFiles
	}

	return nil
}

// Result helpers.

// errorResult builds a CallToolResult with isError set.
func errorResult(err error) (*mcpsdk.CallToolResult, ToolOutput, error) {
	return &mcpsdk.CallToolResult{
		Content: []mcpsdk.Content{
			&mcpsdk.TextContent{Text: err.Error()},
		},
		IsError: true,
	}, ToolOutput{}, nil
}

// jsonResult builds a CallToolResult with JSON-encoded content.
func jsonResult(value any) (*mcpsdk.CallToolResult, ToolOutput, error) {
	data, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return errorResult(fmt.Errorf("encode result: %w", err))
	}

	return &mcpsdk.CallToolResult{
		Content: []mcpsdk.Content{
			&mcpsdk.TextContent{Text: string(data)},
		},
	}, ToolOutput{Data: value}, nil
}
