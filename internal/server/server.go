// Package server exposes the tool catalog as an MCP server over stdio.
package server

import (
	"context"

	"github.com/effective-security/xlog"
	"github.com/lydakis/bulcmcp/internal/dispatch"
	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"
)

var logger = xlog.NewPackageLogger("github.com/lydakis/bulcmcp", "server")

// Name is the implementation name announced during MCP initialization.
const Name = "bulc-mcp-server"

// Server binds every catalog tool to a dispatcher.
type Server struct {
	mcp        *mcpserver.MCPServer
	dispatcher *dispatch.Dispatcher
}

// New registers all tools of the dispatcher's catalog.
func New(d *dispatch.Dispatcher, version string) *Server {
	s := &Server{
		mcp:        mcpserver.NewMCPServer(Name, version, mcpserver.WithToolCapabilities(false)),
		dispatcher: d,
	}
	for _, tool := range d.Catalog().All() {
		s.mcp.AddTool(tool.MCPTool(), s.Handle)
	}
	return s
}

// MCPServer returns the underlying mcp-go server.
func (s *Server) MCPServer() *mcpserver.MCPServer {
	return s.mcp
}

// Handle dispatches one tools/call request. Failures are reported inside
// the result, never as a protocol error.
func (s *Server) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return s.dispatcher.Call(ctx, req.Params.Name, req.GetArguments()), nil
}

// ServeStdio serves MCP frames on stdin/stdout until stdin closes or the
// process is signalled.
func (s *Server) ServeStdio() error {
	logger.KV(xlog.INFO,
		"status", "BULC MCP Server started",
		"tools", s.dispatcher.Catalog().Len())
	return mcpserver.ServeStdio(s.mcp)
}
