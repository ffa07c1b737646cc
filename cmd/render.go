package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/27piyush27/folio/internal/progress"
	"github.com/27piyush27/folio/internal/site"
)

var renderOutput string

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render the portfolio to static files",
	Long: `Writes index.html, its stylesheet and script, the content and search
JSON, and the listed certificate files into the output directory. The
static page omits the contact form and chat assistant, which need the
server.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		profile, err := loadProfile(cfg)
		if err != nil {
			return err
		}
		assets, err := loadAssets(cfg)
		if err != nil {
			return err
		}

		gen, err := site.NewGenerator(profile)
		if err != nil {
			return err
		}
		n, err := gen.Render(renderOutput, assets, progress.NewReporter("Rendering site"))
		if err != nil {
			return fmt.Errorf("rendering site: %w", err)
		}

		out := cmd.OutOrStdout()
		for _, name := range site.MissingCertificates(profile, assets) {
			fmt.Fprintf(out, "Warning: certificate %s not found under %s\n", name, cfg.AssetsDir)
		}
		fmt.Fprintf(out, "Wrote %d files to %s\n", n, renderOutput)
		return nil
	},
}

func init() {
	renderCmd.Flags().StringVarP(&renderOutput, "output", "o", "site", "output directory")
	rootCmd.AddCommand(renderCmd)
}
