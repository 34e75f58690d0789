package mcp

import (
	"context"
	"encoding/json"
	"testing"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/huescan-dev/huescan/internal/render"
	"github.com/huescan-dev/huescan/internal/scan"
	"github.com/huescan-dev/huescan/internal/workspace"
)

func testServer() *Server {
	host := workspace.NewMapHost(map[string]string{
		"/ws/src/main.ts": "import \"./app.css\";\n",
		"/ws/src/app.css": ".panel {\n  color: #336699;\n}\n",
	})

	return NewServer(ServerDeps{
		Engines: func(_ string) *scan.Engine {
			return &scan.Engine{Host: host}
		},
	})
}

func TestValidateScanInput(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   ScanInput
		wantErr error
	}{
		{name: "empty root", input: ScanInput{}, wantErr: ErrEmptyRootFile},
		{name: "relative root", input: ScanInput{RootFile: "src/main.ts"}, wantErr: ErrRootFileNotAbsolute},
		{name: "negative cap", input: ScanInput{RootFile: "/ws/src/main.ts", MaxFiles: -1}, wantErr: ErrNegativeMaxFiles},
		{name: "valid", input: ScanInput{RootFile: "/ws/src/main.ts"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := validateScanInput(tt.input)

			if tt.wantErr == nil {
				require.NoError(t, err)

				return
			}

			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestHandleScan_ReturnsReport(t *testing.T) {
	t.Parallel()

	srv := testServer()

	result, output, err := srv.handleScan(context.Background(), nil, ScanInput{
		RootFile: "/ws/src/main.ts",
	})

	require.NoError(t, err)
	require.NotNil(t, result)
	assert.False(t, result.IsError)

	report, ok := output.Data.(*render.Report)
	require.True(t, ok)
	assert.Equal(t, 2, report.FilesScanned)
	assert.Equal(t, 1, report.TotalUnique)

	// Content carries the same report as JSON text.
	text, ok := result.Content[0].(*mcpsdk.TextContent)
	require.True(t, ok)

	var decoded map[string]any

	require.NoError(t, json.Unmarshal([]byte(text.Text), &decoded))
	assert.Contains(t, decoded, "files")
}

func TestHandleScan_InvalidInputIsToolError(t *testing.T) {
	t.Parallel()

	srv := testServer()

	result, _, err := srv.handleScan(context.Background(), nil, ScanInput{})

	require.NoError(t, err)
	require.NotNil(t, result)
	assert.True(t, result.IsError)
}

func TestHandleScan_UnreadableRootIsToolError(t *testing.T) {
	t.Parallel()

	srv := testServer()

	result, _, err := srv.handleScan(context.Background(), nil, ScanInput{
		RootFile: "/ws/src/missing.ts",
	})

	require.NoError(t, err)
	assert.True(t, result.IsError)
}
