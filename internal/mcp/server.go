// Package mcp exposes the analysis engine as Model Context Protocol tools.
package mcp

import (
	"context"
	"log/slog"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	serverName = "readlens"

	ToolAnalyzeReadability = "analyze_readability"
	ToolAnalyzeKeywords    = "analyze_keywords"
)

// Server wraps an MCP server with the analysis tools registered.
type Server struct {
	server  *mcp.Server
	service *Service
	logger  *slog.Logger
}

func NewServer(version string, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	service := NewService(logger)

	s := mcp.NewServer(&mcp.Implementation{
		Name:    serverName,
		Version: version,
	}, nil)

	mcp.AddTool(s, &mcp.Tool{
		Name:        ToolAnalyzeReadability,
		Description: "Score the readability of English text (Flesch Reading Ease, Flesch-Kincaid grade, difficulty and a 0-10 score).",
	}, service.AnalyzeReadability)

	mcp.AddTool(s, &mcp.Tool{
		Name:        ToolAnalyzeKeywords,
		Description: "Rank the most frequent keywords of a text and report the density of optional target keywords.",
	}, service.AnalyzeKeywords)

	return &Server{server: s, service: service, logger: logger}
}

// MCPServer returns the underlying SDK server, e.g. to connect an
// in-memory transport.
func (s *Server) MCPServer() *mcp.Server {
	return s.server
}

// Run serves over stdio until the client disconnects or ctx is cancelled.
func (s *Server) Run(ctx context.Context) error {
	s.logger.Info("MCP server listening on stdio")
	return s.server.Run(ctx, &mcp.StdioTransport{})
}
