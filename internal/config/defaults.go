package config

import (
	"github.com/27piyush27/folio/internal/contact"
	"github.com/27piyush27/folio/internal/typewriter"
)

// DefaultAssetInclude are the glob patterns picked up as downloadable
// certificate assets.
var DefaultAssetInclude = []string{
	"**/*.avif",
	"**/*.png",
	"**/*.jpg",
	"**/*.pdf",
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port:                  8080,
			AllowedOrigins:        []string{"*"},
			Metrics:               true,
			RequestTimeoutSeconds: 60,
		},
		AssetsDir:    "assets",
		AssetInclude: DefaultAssetInclude,
		DataDir:      ".folio",
		LogLevel:     "info",
		Gateway: GatewayConfig{
			BaseURL:        "https://ai.gateway.lovable.dev/v1",
			Model:          "google/gemini-3-flash-preview",
			APIKeyEnv:      "LOVABLE_API_KEY",
			TimeoutSeconds: 120,
		},
		RateLimit: RateLimitConfig{
			RedisPrefix: "folio:chat:",
		},
		Typewriter: TypewriterConfig{
			SpeedMS:       100,
			DeleteSpeedMS: 50,
			PauseMS:       2000,
			StartDelayMS:  500,
		},
		Contact: ContactConfig{
			SendingMS: 1500,
			SentMS:    3000,
			ShakeMS:   600,
		},
	}
}

// TypewriterTiming converts the configured milliseconds.
func (c *Config) TypewriterTiming() typewriter.Timing {
	return typewriter.Timing{
		Speed:       ms(c.Typewriter.SpeedMS),
		DeleteSpeed: ms(c.Typewriter.DeleteSpeedMS),
		Pause:       ms(c.Typewriter.PauseMS),
		StartDelay:  ms(c.Typewriter.StartDelayMS),
	}
}

// ContactTiming converts the configured milliseconds.
func (c *Config) ContactTiming() contact.Timing {
	return contact.Timing{
		Sending: ms(c.Contact.SendingMS),
		Sent:    ms(c.Contact.SentMS),
		Shake:   ms(c.Contact.ShakeMS),
	}
}
