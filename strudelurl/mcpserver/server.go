package mcpserver

import (
	"context"
	"io"
	"log"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/go-appsec/strudel-tools/strudelurl/patternurl"
)

const (
	Name    = "strudelurl"
	Version = "0.1.0"
)

// Server exposes the pattern link tools over MCP.
type Server struct {
	baseURL string
	logger  *log.Logger
	mcp     *server.MCPServer
}

// New builds a server whose links point at baseURL. A nil logger uses the
// standard logger.
func New(baseURL string, logger *log.Logger) *Server {
	if baseURL == "" {
		baseURL = patternurl.BaseURL
	}
	if logger == nil {
		logger = log.Default()
	}

	s := &Server{baseURL: baseURL, logger: logger}
	s.mcp = server.NewMCPServer(Name, Version,
		server.WithToolCapabilities(false),
		server.WithRecovery(),
	)
	s.mcp.AddTool(s.encodeTool(), s.handleEncode)
	s.mcp.AddTool(s.decodeTool(), s.handleDecode)
	s.mcp.AddTool(s.diffTool(), s.handleDiff)
	return s
}

// Serve speaks MCP over the given streams until ctx is cancelled or in is closed.
func (s *Server) Serve(ctx context.Context, in io.Reader, out io.Writer) error {
	stdio := server.NewStdioServer(s.mcp)
	stdio.SetErrorLogger(s.logger)

	s.logger.Printf("mcp: serving %s %s (base_url=%s)", Name, Version, s.baseURL)
	return stdio.Listen(ctx, in, out)
}

func errorResult(msg string) *mcp.CallToolResult {
	return mcp.NewToolResultError(msg)
}
