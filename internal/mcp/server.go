// Package mcp exposes the password generator as Model Context Protocol tools
// over stdio.
package mcp

import (
	"log/slog"

	"github.com/mark3labs/mcp-go/server"

	"github.com/acolita/curator/internal/generator"
)

const serverName = "curator"

// GeneratorFactory builds a fresh generator for one tool call.
type GeneratorFactory func() (*generator.Generator, error)

// Server wraps the MCP server implementation.
type Server struct {
	mcpServer    *server.MCPServer
	newGenerator GeneratorFactory
}

// ServerOption configures a Server.
type ServerOption func(*Server)

// WithGeneratorFactory replaces the generator constructor used per call.
func WithGeneratorFactory(f GeneratorFactory) ServerOption {
	return func(s *Server) {
		s.newGenerator = f
	}
}

// NewServer creates a new MCP server reporting the given version.
func NewServer(version string, opts ...ServerOption) *Server {
	mcpServer := server.NewMCPServer(
		serverName,
		version,
		server.WithToolCapabilities(false),
		server.WithLogging(),
	)

	s := &Server{
		mcpServer:    mcpServer,
		newGenerator: generator.New,
	}

	for _, opt := range opts {
		opt(s)
	}

	s.registerTools()

	return s
}

// Run serves on stdin/stdout until the client disconnects.
func (s *Server) Run() error {
	slog.Info("starting MCP server on stdio transport")
	return server.ServeStdio(s.mcpServer)
}
