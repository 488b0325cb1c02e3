// Package mcpserver exposes the extraction tool registry over the Model
// Context Protocol, on stdio or streamable HTTP.
package mcpserver

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rs/zerolog"

	"github.com/outscraper/outscraper-mcp/pkg/tools"
)

const serverName = "outscraper-mcp"

// Server binds a tool registry to an MCP server instance.
type Server struct {
	registry *tools.Registry
	mcp      *mcp.Server
	log      zerolog.Logger
}

// New builds an MCP server exposing every tool in the registry.
func New(registry *tools.Registry, version string, log zerolog.Logger) *Server {
	s := &Server{
		registry: registry,
		log:      log.With().Str("component", "mcpserver").Logger(),
		mcp: mcp.NewServer(&mcp.Implementation{
			Name:    serverName,
			Version: version,
		}, nil),
	}
	for _, tool := range registry.All() {
		s.mcp.AddTool(&tool.Tool, s.handler(tool))
	}
	return s
}

func (s *Server) handler(tool *tools.Tool) mcp.ToolHandler {
	return func(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args := map[string]any{}
		if len(req.Params.Arguments) > 0 {
			if err := json.Unmarshal(req.Params.Arguments, &args); err != nil {
				return nil, fmt.Errorf("decoding arguments: %w", err)
			}
		}

		start := time.Now()
		result, err := tool.Execute(ctx, args)
		if err != nil {
			s.log.Err(err).Str("tool", tool.Name).Msg("Tool execution failed")
			return nil, err
		}
		s.log.Debug().
			Str("tool", tool.Name).
			Bool("is_error", result.IsError()).
			Dur("took", time.Since(start)).
			Msg("Tool call")

		return &mcp.CallToolResult{
			Content: []mcp.Content{&mcp.TextContent{Text: result.Text()}},
			IsError: result.IsError(),
		}, nil
	}
}

// RunStdio serves MCP over stdin/stdout until the context is cancelled or
// the client disconnects.
func (s *Server) RunStdio(ctx context.Context) error {
	s.log.Info().Int("tools", len(s.registry.All())).Msg("Serving MCP on stdio")
	return s.mcp.Run(ctx, &mcp.StdioTransport{})
}

// RunHTTP serves MCP over streamable HTTP on the given address until the
// context is cancelled.
func (s *Server) RunHTTP(ctx context.Context, addr string) error {
	handler := mcp.NewStreamableHTTPHandler(func(*http.Request) *mcp.Server {
		return s.mcp
	}, nil)

	srv := &http.Server{Addr: addr, Handler: handler}
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()
	s.log.Info().Str("addr", addr).Int("tools", len(s.registry.All())).Msg("Serving MCP on HTTP")

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		return ctx.Err()
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

// Connect attaches the server to an arbitrary transport. Used for
// in-process clients and tests.
func (s *Server) Connect(ctx context.Context, transport mcp.Transport) (*mcp.ServerSession, error) {
	return s.mcp.Connect(ctx, transport, nil)
}
