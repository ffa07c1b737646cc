package cmd

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/27piyush27/folio/internal/config"
	"github.com/27piyush27/folio/internal/content"
	"github.com/27piyush27/folio/internal/logging"
	"github.com/27piyush27/folio/internal/walker"
)

// loadConfig loads and validates the config, providing a user-friendly error.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w\nRun `folio init` to create a config file", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", cfgFile, err)
	}
	return cfg, nil
}

// newLogger builds the process logger. --verbose forces debug output.
func newLogger(cfg *config.Config) (*zap.Logger, error) {
	level := cfg.LogLevel
	if verbose {
		level = "debug"
	}
	return logging.New(level)
}

// loadProfile reads the content file, falling back to the bundled profile
// when none is configured.
func loadProfile(cfg *config.Config) (*content.Profile, error) {
	p, err := content.Load(cfg.ContentFile)
	if err != nil {
		return nil, fmt.Errorf("loading content: %w", err)
	}
	return p, nil
}

func loadAssets(cfg *config.Config) ([]walker.Asset, error) {
	assets, err := walker.Walk(walker.Config{
		RootDir: cfg.AssetsDir,
		Include: cfg.AssetInclude,
	})
	if err != nil {
		return nil, fmt.Errorf("scanning assets in %s: %w", cfg.AssetsDir, err)
	}
	return assets, nil
}
