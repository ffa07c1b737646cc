package mcp

import "github.com/mark3labs/mcp-go/mcp"

// getProfileTool defines the get_profile MCP tool.
var getProfileTool = mcp.NewTool("get_profile",
	mcp.WithDescription("Get the portfolio owner's complete profile as JSON: biography, skills, projects, experience, certificates and contact channels."),
)

// listProjectsTool defines the list_projects MCP tool.
var listProjectsTool = mcp.NewTool("list_projects",
	mcp.WithDescription("List portfolio projects with their description, status and technologies."),
	mcp.WithString("tech",
		mcp.Description("Only return projects using this technology (case-insensitive)"),
	),
)

// listCertificatesTool defines the list_certificates MCP tool.
var listCertificatesTool = mcp.NewTool("list_certificates",
	mcp.WithDescription("List certificates with their issuer and download file name."),
	mcp.WithString("issuer",
		mcp.Description("Only return certificates from this issuer (case-insensitive)"),
	),
)

// getSectionTool defines the get_section MCP tool for the page's sections.
func getSectionTool(ids []string) mcp.Tool {
	return mcp.NewTool("get_section",
		mcp.WithDescription("Get the content of one page section as JSON."),
		mcp.WithString("section",
			mcp.Required(),
			mcp.Description("Section id"),
			mcp.Enum(ids...),
		),
	)
}

// searchPortfolioTool defines the search_portfolio MCP tool.
var searchPortfolioTool = mcp.NewTool("search_portfolio",
	mcp.WithDescription("Find the page sections mentioning every word of a query."),
	mcp.WithString("query",
		mcp.Required(),
		mcp.Description("Words to look for"),
	),
)
