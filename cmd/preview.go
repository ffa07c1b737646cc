package cmd

import (
	"github.com/spf13/cobra"

	"github.com/27piyush27/folio/internal/clock"
	"github.com/27piyush27/folio/internal/tui"
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Preview the portfolio in the terminal",
	Long: `Opens a full-screen terminal rendition of the portfolio with the same
scroll tracking, typewriter, counters and contact form behaviour as the
web page. Press q to quit.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		profile, err := loadProfile(cfg)
		if err != nil {
			return err
		}
		return tui.Run(profile, tui.Options{
			Clock:      clock.Real(),
			Typewriter: cfg.TypewriterTiming(),
			Contact:    cfg.ContactTiming(),
		})
	},
}

func init() {
	rootCmd.AddCommand(previewCmd)
}
