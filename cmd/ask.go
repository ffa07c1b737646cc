package cmd

import (
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/27piyush27/folio/internal/content"
	"github.com/27piyush27/folio/internal/llm"
)

var askCmd = &cobra.Command{
	Use:   "ask [question]",
	Short: "Ask the portfolio assistant a question",
	Long: `Sends one question to the inference gateway with the portfolio system
prompt and streams the answer to stdout. Useful for checking the gateway
credential and prompt without a browser.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		profile, err := loadProfile(cfg)
		if err != nil {
			return err
		}

		client := &http.Client{Timeout: cfg.Gateway.Timeout()}
		provider, err := llm.NewProvider(cfg.Gateway.BaseURL, cfg.Gateway.Model, cfg.Gateway.APIKeyEnv, os.Getenv, client)
		if err != nil {
			return fmt.Errorf("creating gateway provider: %w", err)
		}

		out := cmd.OutOrStdout()
		req := llm.CompletionRequest{
			Model:    cfg.Gateway.Model,
			System:   content.SystemPrompt(profile),
			Messages: []llm.Message{{Role: llm.RoleUser, Content: strings.Join(args, " ")}},
		}
		err = provider.Stream(cmd.Context(), req, func(delta string) error {
			_, err := fmt.Fprint(out, delta)
			return err
		})
		fmt.Fprintln(out)
		return err
	},
}

func init() {
	rootCmd.AddCommand(askCmd)
}
