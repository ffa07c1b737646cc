package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"
)

// EnvPrefix marks environment overrides. A double underscore separates
// nesting levels: FOLIO_SERVER__PORT sets server.port.
const EnvPrefix = "FOLIO_"

// DefaultPath is where init writes and commands read configuration.
const DefaultPath = ".folio.yml"

// Load reads configuration from the given YAML file, then overlays
// environment variable overrides (FOLIO_*).
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	// Start from defaults.
	cfg := DefaultConfig()

	// Load YAML file if it exists.
	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("accessing config %s: %w", path, err)
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	return cfg, nil
}

// envKey maps FOLIO_RATE_LIMIT__REDIS_ADDR to rate_limit.redis_addr.
func envKey(s string) string {
	s = strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	return strings.ReplaceAll(s, "__", ".")
}

// Save writes the configuration to the given YAML file path.
func (c *Config) Save(path string) error {
	data, err := yamlv3.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}

var validLogLevels = map[string]bool{
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// Validate checks that the configuration contains valid values.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port %d out of range", c.Server.Port)
	}
	if c.Server.RequestTimeoutSeconds < 0 {
		return fmt.Errorf("server.request_timeout_seconds must be non-negative")
	}

	if c.LogLevel != "" && !validLogLevels[c.LogLevel] {
		return fmt.Errorf("invalid log_level %q: must be one of debug, info, warn, error", c.LogLevel)
	}

	if c.Gateway.BaseURL == "" {
		return fmt.Errorf("gateway.base_url is required")
	}
	if c.Gateway.Model == "" {
		return fmt.Errorf("gateway.model is required")
	}
	if c.Gateway.APIKeyEnv == "" {
		return fmt.Errorf("gateway.api_key_env is required")
	}
	if c.Gateway.TimeoutSeconds < 0 {
		return fmt.Errorf("gateway.timeout_seconds must be non-negative")
	}

	if c.RateLimit.RequestsPerMinute < 0 {
		return fmt.Errorf("rate_limit.requests_per_minute must be non-negative")
	}

	for name, v := range map[string]int{
		"typewriter.speed_ms":        c.Typewriter.SpeedMS,
		"typewriter.delete_speed_ms": c.Typewriter.DeleteSpeedMS,
		"typewriter.pause_ms":        c.Typewriter.PauseMS,
		"typewriter.start_delay_ms":  c.Typewriter.StartDelayMS,
		"contact.sending_ms":         c.Contact.SendingMS,
		"contact.sent_ms":            c.Contact.SentMS,
		"contact.shake_ms":           c.Contact.ShakeMS,
	} {
		if v < 0 {
			return fmt.Errorf("%s must be non-negative", name)
		}
	}

	return nil
}
