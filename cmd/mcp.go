package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	mcpserver "github.com/27piyush27/folio/internal/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the MCP server for AI agent integration",
	Long:  `Starts a Model Context Protocol (MCP) server on stdio, exposing the portfolio profile, projects, certificates and section search to AI agents.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		profile, err := loadProfile(cfg)
		if err != nil {
			return err
		}

		mcpserver.Version = Version
		srv := mcpserver.NewServer(profile)
		fmt.Fprintf(os.Stderr, "folio MCP server started (%d sections)\n", len(profile.SectionIDs()))
		return srv.Serve()
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
