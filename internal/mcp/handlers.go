package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/27piyush27/folio/internal/content"
	"github.com/27piyush27/folio/internal/site"
)

func (s *Server) handleGetProfile(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return jsonResult(s.profile)
}

// handleListProjects formats projects one per block, optionally filtered by technology.
func (s *Server) handleListProjects(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	tech := strings.TrimSpace(request.GetString("tech", ""))

	var sb strings.Builder
	n := 0
	for _, p := range s.profile.Projects {
		if tech != "" && !containsFold(p.Tech, tech) {
			continue
		}
		n++
		sb.WriteString(fmt.Sprintf("\n--- %s ---\n", p.Title))
		sb.WriteString(p.Description + "\n")
		if p.Status != "" {
			sb.WriteString(fmt.Sprintf("Status: %s\n", p.Status))
		}
		if len(p.Tech) > 0 {
			sb.WriteString(fmt.Sprintf("Tech: %s\n", strings.Join(p.Tech, ", ")))
		}
		if p.Link != "" {
			sb.WriteString(fmt.Sprintf("Link: %s\n", p.Link))
		}
	}

	if n == 0 {
		if tech != "" {
			return mcp.NewToolResultText(fmt.Sprintf("No projects use %q.", tech)), nil
		}
		return mcp.NewToolResultText("No projects listed."), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("Found %d project(s):\n", n) + sb.String()), nil
}

func (s *Server) handleListCertificates(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	issuer := strings.TrimSpace(request.GetString("issuer", ""))

	var sb strings.Builder
	n := 0
	for _, c := range s.profile.Certificates {
		if issuer != "" && !strings.EqualFold(c.Issuer, issuer) {
			continue
		}
		n++
		sb.WriteString(fmt.Sprintf("- %s (%s)", c.Title, c.Issuer))
		if c.File != "" {
			sb.WriteString(fmt.Sprintf(": /%s/%s", site.CertificateDir, c.File))
		}
		sb.WriteString("\n")
	}

	if n == 0 {
		return mcp.NewToolResultText("No certificates found."), nil
	}
	return mcp.NewToolResultText(sb.String()), nil
}

func (s *Server) handleGetSection(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := request.RequireString("section")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: section"), nil
	}

	section, err := s.profile.Section(id)
	if errors.Is(err, content.ErrUnknownSection) {
		return mcp.NewToolResultError(fmt.Sprintf(
			"Unknown section %q. Available sections: %s.",
			id, strings.Join(s.profile.SectionIDs(), ", "),
		)), nil
	}
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(section)
}

func (s *Server) handleSearchPortfolio(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	query, err := request.RequireString("query")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: query"), nil
	}

	results := site.Search(s.index, query)
	if len(results) == 0 {
		return mcp.NewToolResultText("No sections matched."), nil
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Found %d section(s):\n", len(results)))
	for _, r := range results {
		sb.WriteString(fmt.Sprintf("\n--- %s (%s) ---\n%s\n", r.Title, r.Path, r.Content))
	}
	return mcp.NewToolResultText(sb.String()), nil
}

func jsonResult(v interface{}) (*mcp.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("encoding result: %v", err)), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}

func containsFold(items []string, want string) bool {
	for _, item := range items {
		if strings.EqualFold(item, want) {
			return true
		}
	}
	return false
}
