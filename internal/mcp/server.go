// Package mcp implements a Model Context Protocol server exposing the
// color scanner as an MCP tool over stdio transport.
package mcp

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"sort"
	"sync"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/huescan-dev/huescan/internal/scan"
	"github.com/huescan-dev/huescan/internal/workspace"
)

const (
	// serverName is the MCP server implementation name.
	serverName = "huescan"
	// serverVersion is the MCP server implementation version.
	serverVersion = "1.0.0"

	// toolCount is the expected number of registered tools.
	toolCount = 1
)

// EngineFactory builds the scan engine for one tool call, rooted at a
// workspace directory. Injectable so tests can run against an in-memory
// host.
type EngineFactory func(workspaceRoot string) *scan.Engine

// ServerDeps holds injectable dependencies for the MCP server.
// Zero-value fields use production defaults.
type ServerDeps struct {
	// Logger is an optional structured logger. Nil uses slog default.
	Logger *slog.Logger

	// Tracer is an optional OTel tracer for per-tool-call spans. Nil
	// disables tracing.
	Tracer trace.Tracer

	// Engines overrides engine construction. Nil uses the OS host.
	Engines EngineFactory
}

// Server wraps the MCP SDK server with the scan tool registration.
type Server struct {
	inner   *mcpsdk.Server
	mu      sync.RWMutex
	tools   []string
	tracer  trace.Tracer
	engines EngineFactory
}

// NewServer creates a new MCP server with all tools registered.
func NewServer(deps ServerDeps) *Server {
	opts := &mcpsdk.ServerOptions{}
	if deps.Logger != nil {
		opts.Logger = deps.Logger
	}

	inner := mcpsdk.NewServer(
		&mcpsdk.Implementation{
			Name:    serverName,
			Version: serverVersion,
		},
		opts,
	)

	engines := deps.Engines
	if engines == nil {
		logger := deps.Logger

		engines = func(workspaceRoot string) *scan.Engine {
			return &scan.Engine{
				Host:   workspace.NewOSHost(workspaceRoot),
				Logger: logger,
				Tracer: deps.Tracer,
			}
		}
	}

	srv := &Server{
		inner:   inner,
		tools:   make([]string, 0, toolCount),
		tracer:  deps.Tracer,
		engines: engines,
	}

	srv.registerTools()

	return srv
}

// ListToolNames returns the sorted names of all registered tools.
func (s *Server) ListToolNames() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	names := make([]string, len(s.tools))
	copy(names, s.tools)
	sort.Strings(names)

	return names
}

// Run starts the MCP server on stdio transport. It blocks until the
// context is canceled or the connection closes.
func (s *Server) Run(ctx context.Context) error {
	err := s.inner.Run(ctx, &mcpsdk.StdioTransport{})
	if err != nil {
		return fmt.Errorf("mcp server: %w", err)
	}

	return nil
}

// RunWithTransport starts the MCP server on the given transport. It
// blocks until the context is canceled or the connection closes.
func (s *Server) RunWithTransport(ctx context.Context, transport mcpsdk.Transport) error {
	err := s.inner.Run(ctx, transport)
	if err != nil {
		return fmt.Errorf("mcp server: %w", err)
	}

	return nil
}

// registerTools adds all MCP tools to the server.
func (s *Server) registerTools() {
	s.registerScanTool()
}

func (s *Server) registerScanTool() {
	mcpsdk.AddTool(s.inner, &mcpsdk.Tool{
		Name:        ToolNameScan,
		Description: scanToolDescription,
	}, withTracing(s.tracer, ToolNameScan, s.handleScan))

	s.trackTool(ToolNameScan)
}

func (s *Server) trackTool(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.tools = append(s.tools, name)
}

// workspaceRootFor resolves the effective workspace root of a call.
func workspaceRootFor(input ScanInput) string {
	if input.WorkspaceRoot != "" {
		return input.WorkspaceRoot
	}

	return filepath.Dir(input.RootFile)
}

// mcpSpanPrefix is the prefix for MCP tool span names.
const mcpSpanPrefix = "mcp."

// traceIDMetaKey is the metadata key for trace_id in MCP tool responses.
const traceIDMetaKey = "trace_id"

// withTracing wraps an MCP tool handler to create an OTel span per
// invocation and include trace_id in the response content when sampled.
func withTracing[Input any](
	tracer trace.Tracer,
	toolName string,
	handler func(context.Context, *mcpsdk.CallToolRequest, Input) (*mcpsdk.CallToolResult, ToolOutput, error),
) func(context.Context, *mcpsdk.CallToolRequest, Input) (*mcpsdk.CallToolResult, ToolOutput, error) {
	if tracer == nil {
		return handler
	}

	return func(ctx context.Context, req *mcpsdk.CallToolRequest, input Input) (*mcpsdk.CallToolResult, ToolOutput, error) {
		ctx, span := tracer.Start(ctx, mcpSpanPrefix+toolName,
			trace.WithSpanKind(trace.SpanKindServer),
			trace.WithAttributes(attribute.String("mcp.tool", toolName)),
		)
		defer span.End()

		result, output, err := handler(ctx, req, input)

		sc := span.SpanContext()
		if sc.IsSampled() && result != nil {
			traceContent := &mcpsdk.TextContent{Text: fmt.Sprintf("%s=%s", traceIDMetaKey, sc.TraceID().String())}
			result.Content = append(result.Content, traceContent)
		}

		return result, output, err
	}
}

// scanToolDescription documents the scan tool for MCP clients.
const scanToolDescription = "Scan a file and its explicit import closure " +
	"(import/require/@import) for color usage: custom-property definitions " +
	"and references, and literal hex/rgb()/hsl() tokens. Returns a " +
	"deduplicated inventory grouped by file, with line/column positions, " +
	"selector or component context, and dark/light theme tags."
