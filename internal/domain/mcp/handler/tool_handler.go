package handler

import (
	"context"
	"encoding/json"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/rs/zerolog"

	"github.com/fadilmartias/useresume-gateway/internal/errors"
	"github.com/fadilmartias/useresume-gateway/internal/logging"
	"github.com/fadilmartias/useresume-gateway/internal/usecase"
)

const (
	ServerName    = "useresume"
	ServerVersion = "1.0.0"
)

// ToolServer exposes the operation facades as MCP tools.
type ToolServer struct {
	uc     *usecase.DocumentUsecase
	logger *zerolog.Logger
	server *server.MCPServer
	tools  []mcp.Tool
}

func NewToolServer(uc *usecase.DocumentUsecase, logger *zerolog.Logger) *ToolServer {
	if logger == nil {
		logger = logging.Nop()
	}
	s := &ToolServer{
		uc:     uc,
		logger: logger,
		server: server.NewMCPServer(ServerName, ServerVersion, server.WithToolCapabilities(true)),
	}
	s.registerTools()
	return s
}

func (s *ToolServer) registerTools() {
	for _, t := range usecase.Tools() {
		tool := mcp.NewToolWithRawSchema(t.Name, t.Description, t.InputSchema())
		s.server.AddTool(tool, s.handle(t.Handler(s.uc)))
		s.tools = append(s.tools, tool)
	}
}

// handle adapts a facade to an MCP tool handler. Failures are reported as
// tool results with isError set, never as protocol errors.
func (s *ToolServer) handle(facade usecase.Handler) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		raw, err := json.Marshal(request.Params.Arguments)
		if err != nil {
			return mcp.NewToolResultError(errors.Wrap(err, "encode arguments").Error()), nil
		}
		env := facade(ctx, raw)
		if !env.Success {
			return mcp.NewToolResultError(string(env.JSON())), nil
		}
		return mcp.NewToolResultText(string(env.JSON())), nil
	}
}

// Tools lists what was registered, in catalog order.
func (s *ToolServer) Tools() []mcp.Tool { return s.tools }

// Serve blocks on the stdio transport until stdin closes.
func (s *ToolServer) Serve() error {
	s.logger.Info().Int("tools", len(s.tools)).Msg("useresume MCP server running on stdio")
	return server.ServeStdio(s.server)
}
