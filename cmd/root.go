package cmd

import (
	"github.com/spf13/cobra"

	"github.com/27piyush27/folio/internal/config"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "folio",
	Short: "Personal portfolio server with an AI assistant",
	Long: `Folio serves a single-page developer portfolio: the rendered profile,
a typewriter hero, a contact form and a chat assistant that relays
questions to an OpenAI-compatible inference gateway. It can also render
the site to static files, preview it in the terminal, and expose the
profile to AI agents over MCP.`,
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", config.DefaultPath, "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
