// Package mcp exposes the portfolio content as Model Context Protocol tools.
package mcp

import (
	"github.com/mark3labs/mcp-go/server"

	"github.com/27piyush27/folio/internal/content"
	"github.com/27piyush27/folio/internal/site"
)

// Version is set via ldflags at build time.
var Version = "dev"

// Server wraps an MCP server that answers questions about one profile.
type Server struct {
	profile *content.Profile
	index   []site.SearchEntry
	mcp     *server.MCPServer
}

// NewServer creates a new MCP server for the given profile.
func NewServer(p *content.Profile) *Server {
	s := &Server{
		profile: p,
		index:   site.BuildSearchIndex(p),
	}

	s.mcp = server.NewMCPServer(
		"folio",
		Version,
		server.WithToolCapabilities(false),
	)

	s.registerTools()

	return s
}

// registerTools adds all tool definitions and their handlers to the MCP server.
func (s *Server) registerTools() {
	s.mcp.AddTool(getProfileTool, s.handleGetProfile)
	s.mcp.AddTool(listProjectsTool, s.handleListProjects)
	s.mcp.AddTool(listCertificatesTool, s.handleListCertificates)
	s.mcp.AddTool(getSectionTool(s.profile.SectionIDs()), s.handleGetSection)
	s.mcp.AddTool(searchPortfolioTool, s.handleSearchPortfolio)
}

// Serve starts the MCP server on stdio. Stdout is used for MCP protocol
// messages; all logging must go to stderr.
func (s *Server) Serve() error {
	return server.ServeStdio(s.mcp)
}
