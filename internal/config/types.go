package config

import "time"

// Config is the top-level folio configuration, corresponding to .folio.yml.
type Config struct {
	Server       ServerConfig     `yaml:"server" koanf:"server"`
	ContentFile  string           `yaml:"content_file" koanf:"content_file"`
	AssetsDir    string           `yaml:"assets_dir" koanf:"assets_dir"`
	AssetInclude []string         `yaml:"asset_include" koanf:"asset_include"`
	DataDir      string           `yaml:"data_dir" koanf:"data_dir"`
	LogLevel     string           `yaml:"log_level" koanf:"log_level"`
	Gateway      GatewayConfig    `yaml:"gateway" koanf:"gateway"`
	RateLimit    RateLimitConfig  `yaml:"rate_limit" koanf:"rate_limit"`
	Typewriter   TypewriterConfig `yaml:"typewriter" koanf:"typewriter"`
	Contact      ContactConfig    `yaml:"contact" koanf:"contact"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port                  int      `yaml:"port" koanf:"port"`
	AllowedOrigins        []string `yaml:"allowed_origins" koanf:"allowed_origins"`
	Metrics               bool     `yaml:"metrics" koanf:"metrics"`
	RequestTimeoutSeconds int      `yaml:"request_timeout_seconds" koanf:"request_timeout_seconds"`
}

// RequestTimeout returns the per-request timeout for non-streaming routes.
func (s ServerConfig) RequestTimeout() time.Duration {
	return time.Duration(s.RequestTimeoutSeconds) * time.Second
}

// GatewayConfig points at the OpenAI-compatible inference gateway. The
// credential itself is never stored; APIKeyEnv names the variable that
// holds it.
type GatewayConfig struct {
	BaseURL        string `yaml:"base_url" koanf:"base_url"`
	Model          string `yaml:"model" koanf:"model"`
	APIKeyEnv      string `yaml:"api_key_env" koanf:"api_key_env"`
	TimeoutSeconds int    `yaml:"timeout_seconds" koanf:"timeout_seconds"`
}

// Timeout returns the upstream request timeout.
func (g GatewayConfig) Timeout() time.Duration {
	return time.Duration(g.TimeoutSeconds) * time.Second
}

// RateLimitConfig controls the optional chat limiter. Zero requests per
// minute disables it; an empty RedisAddr keeps it in-process.
type RateLimitConfig struct {
	RequestsPerMinute int    `yaml:"requests_per_minute" koanf:"requests_per_minute"`
	RedisAddr         string `yaml:"redis_addr" koanf:"redis_addr"`
	RedisPrefix       string `yaml:"redis_prefix" koanf:"redis_prefix"`
}

// TypewriterConfig holds the hero rotator timings in milliseconds.
type TypewriterConfig struct {
	SpeedMS       int `yaml:"speed_ms" koanf:"speed_ms"`
	DeleteSpeedMS int `yaml:"delete_speed_ms" koanf:"delete_speed_ms"`
	PauseMS       int `yaml:"pause_ms" koanf:"pause_ms"`
	StartDelayMS  int `yaml:"start_delay_ms" koanf:"start_delay_ms"`
}

// ContactConfig holds the contact form timings in milliseconds.
type ContactConfig struct {
	SendingMS int `yaml:"sending_ms" koanf:"sending_ms"`
	SentMS    int `yaml:"sent_ms" koanf:"sent_ms"`
	ShakeMS   int `yaml:"shake_ms" koanf:"shake_ms"`
}

func ms(n int) time.Duration { return time.Duration(n) * time.Millisecond }
