package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/manifoldco/promptui"
)

// contentCandidates are content files init offers when present.
var contentCandidates = []string{
	"profile.yml",
	"profile.yaml",
	"content/profile.yml",
	"folio.content.yml",
}

// detectContentFile returns the first content file found in the current
// directory, or "" to use the embedded profile.
func detectContentFile() string {
	for _, p := range contentCandidates {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}

// RunWizard runs an interactive configuration wizard and returns the
// resulting Config. It also saves the config to path.
func RunWizard(path string) (*Config, error) {
	fmt.Println("Welcome to folio! Let's configure your portfolio.")
	fmt.Println()

	cfg := DefaultConfig()

	// 1. Content file.
	contentPrompt := promptui.Prompt{
		Label:   "Profile content file (blank for the built-in profile)",
		Default: detectContentFile(),
	}
	contentFile, err := contentPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("content file: %w", err)
	}
	cfg.ContentFile = strings.TrimSpace(contentFile)

	// 2. Port.
	portPrompt := promptui.Prompt{
		Label:    "HTTP port",
		Default:  strconv.Itoa(cfg.Server.Port),
		Validate: validatePort,
	}
	portStr, err := portPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("port: %w", err)
	}
	cfg.Server.Port, _ = strconv.Atoi(portStr)

	// 3. Gateway model.
	modelPrompt := promptui.Select{
		Label: "Select chat model",
		Items: []string{
			"google/gemini-3-flash-preview",
			"google/gemini-2.5-flash",
			"openai/gpt-5-mini",
		},
	}
	_, model, err := modelPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("model selection: %w", err)
	}
	cfg.Gateway.Model = model

	// 4. Credential variable.
	keyPrompt := promptui.Prompt{
		Label:   "Environment variable holding the gateway key",
		Default: cfg.Gateway.APIKeyEnv,
	}
	keyEnv, err := keyPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("api key env: %w", err)
	}
	cfg.Gateway.APIKeyEnv = strings.TrimSpace(keyEnv)

	// 5. Rate limit.
	limitPrompt := promptui.Prompt{
		Label:    "Chat requests per minute per client (0 disables)",
		Default:  "0",
		Validate: validateNonNegative,
	}
	limitStr, err := limitPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("rate limit: %w", err)
	}
	cfg.RateLimit.RequestsPerMinute, _ = strconv.Atoi(limitStr)

	// 6. Asset globs.
	includePrompt := promptui.Prompt{
		Label:   "Certificate asset patterns (comma-separated globs)",
		Default: strings.Join(DefaultAssetInclude, ","),
	}
	includeStr, err := includePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("asset patterns: %w", err)
	}
	if include := splitAndTrim(includeStr); len(include) > 0 {
		cfg.AssetInclude = include
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if os.Getenv(cfg.Gateway.APIKeyEnv) == "" {
		fmt.Printf("\nNote: Set %s in your environment before serving the chat assistant.\n", cfg.Gateway.APIKeyEnv)
	}

	if err := cfg.Save(path); err != nil {
		return nil, fmt.Errorf("saving config: %w", err)
	}

	fmt.Printf("\nConfiguration saved to %s\n", path)
	return cfg, nil
}

func validatePort(s string) error {
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 || n > 65535 {
		return fmt.Errorf("port must be between 1 and 65535")
	}
	return nil
}

func validateNonNegative(s string) error {
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return fmt.Errorf("must be a non-negative integer")
	}
	return nil
}

// splitAndTrim splits a comma-separated string and drops empty entries.
func splitAndTrim(s string) []string {
	var result []string
	for _, part := range strings.Split(s, ",") {
		if token := strings.TrimSpace(part); token != "" {
			result = append(result, token)
		}
	}
	return result
}
