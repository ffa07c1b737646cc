package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Server.Port != 8080 {
		t.Errorf("expected default port 8080, got %d", cfg.Server.Port)
	}
	if cfg.Gateway.Model != "google/gemini-3-flash-preview" {
		t.Errorf("expected default model, got %q", cfg.Gateway.Model)
	}
	if cfg.Gateway.APIKeyEnv != "LOVABLE_API_KEY" {
		t.Errorf("expected default api_key_env LOVABLE_API_KEY, got %q", cfg.Gateway.APIKeyEnv)
	}
	if cfg.RateLimit.RequestsPerMinute != 0 {
		t.Errorf("expected rate limiting disabled by default, got %d", cfg.RateLimit.RequestsPerMinute)
	}
}

func TestTimings(t *testing.T) {
	cfg := DefaultConfig()

	tw := cfg.TypewriterTiming()
	if tw.Speed != 100*time.Millisecond || tw.DeleteSpeed != 50*time.Millisecond ||
		tw.Pause != 2*time.Second || tw.StartDelay != 500*time.Millisecond {
		t.Errorf("unexpected typewriter timing %+v", tw)
	}

	ct := cfg.ContactTiming()
	if ct.Sending != 1500*time.Millisecond || ct.Sent != 3*time.Second || ct.Shake != 600*time.Millisecond {
		t.Errorf("unexpected contact timing %+v", ct)
	}
}

func TestSaveAndLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.folio.yml")

	original := DefaultConfig()
	original.Server.Port = 9090
	original.Gateway.Model = "openai/gpt-5-mini"
	original.RateLimit.RequestsPerMinute = 12
	original.AssetInclude = []string{"certs/*.png", "**/*.avif"}
	original.ContentFile = "profile.yml"

	// Save.
	if err := original.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	// Load back.
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	// Verify round-trip.
	if loaded.Server.Port != original.Server.Port {
		t.Errorf("port: got %d, want %d", loaded.Server.Port, original.Server.Port)
	}
	if loaded.Gateway.Model != original.Gateway.Model {
		t.Errorf("model: got %q, want %q", loaded.Gateway.Model, original.Gateway.Model)
	}
	if loaded.RateLimit.RequestsPerMinute != 12 {
		t.Errorf("requests_per_minute: got %d, want 12", loaded.RateLimit.RequestsPerMinute)
	}
	if loaded.ContentFile != "profile.yml" {
		t.Errorf("content_file: got %q", loaded.ContentFile)
	}
	if len(loaded.AssetInclude) != len(original.AssetInclude) {
		t.Fatalf("asset_include length: got %d, want %d", len(loaded.AssetInclude), len(original.AssetInclude))
	}
	for i, v := range loaded.AssetInclude {
		if v != original.AssetInclude[i] {
			t.Errorf("asset_include[%d]: got %q, want %q", i, v, original.AssetInclude[i])
		}
	}
}

func TestLoadMissingFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nonexistent.yml")

	// Loading a missing file should return defaults, not an error.
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load should not fail for missing file: %v", err)
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("expected default port, got %d", cfg.Server.Port)
	}
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "partial.yml")
	if err := os.WriteFile(path, []byte("gateway:\n  model: other/model\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Gateway.Model != "other/model" {
		t.Errorf("model: got %q", cfg.Gateway.Model)
	}
	if cfg.Gateway.BaseURL != "https://ai.gateway.lovable.dev/v1" {
		t.Errorf("base_url default lost: %q", cfg.Gateway.BaseURL)
	}
	if cfg.Typewriter.PauseMS != 2000 {
		t.Errorf("pause_ms default lost: %d", cfg.Typewriter.PauseMS)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.yml")

	cfg := DefaultConfig()
	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	t.Setenv("FOLIO_SERVER__PORT", "9000")
	t.Setenv("FOLIO_RATE_LIMIT__REDIS_ADDR", "localhost:6379")
	t.Setenv("FOLIO_LOG_LEVEL", "debug")

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.Server.Port != 9000 {
		t.Errorf("env override failed: got port %d, want 9000", loaded.Server.Port)
	}
	if loaded.RateLimit.RedisAddr != "localhost:6379" {
		t.Errorf("nested env override failed: got %q", loaded.RateLimit.RedisAddr)
	}
	if loaded.LogLevel != "debug" {
		t.Errorf("log_level override failed: got %q", loaded.LogLevel)
	}
}

func TestEnvKey(t *testing.T) {
	tests := map[string]string{
		"FOLIO_SERVER__PORT":           "server.port",
		"FOLIO_RATE_LIMIT__REDIS_ADDR": "rate_limit.redis_addr",
		"FOLIO_DATA_DIR":               "data_dir",
	}
	for in, want := range tests {
		if got := envKey(in); got != want {
			t.Errorf("envKey(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestValidateValid(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Errorf("DefaultConfig should be valid, got: %v", err)
	}
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"port zero", func(c *Config) { c.Server.Port = 0 }},
		{"port too large", func(c *Config) { c.Server.Port = 70000 }},
		{"empty base url", func(c *Config) { c.Gateway.BaseURL = "" }},
		{"empty model", func(c *Config) { c.Gateway.Model = "" }},
		{"empty key env", func(c *Config) { c.Gateway.APIKeyEnv = "" }},
		{"negative rate limit", func(c *Config) { c.RateLimit.RequestsPerMinute = -1 }},
		{"negative pause", func(c *Config) { c.Typewriter.PauseMS = -1 }},
		{"negative shake", func(c *Config) { c.Contact.ShakeMS = -5 }},
		{"bad log level", func(c *Config) { c.LogLevel = "loud" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestSplitAndTrim(t *testing.T) {
	tests := []struct {
		input string
		want  []string
	}{
		{"a,b,c", []string{"a", "b", "c"}},
		{" a , b , c ", []string{"a", "b", "c"}},
		{"**/*.avif", []string{"**/*.avif"}},
		{"", nil},
		{"  ,  , ", nil},
	}
	for _, tt := range tests {
		got := splitAndTrim(tt.input)
		if len(got) != len(tt.want) {
			t.Errorf("splitAndTrim(%q) len = %d, want %d", tt.input, len(got), len(tt.want))
			continue
		}
		for i, v := range got {
			if v != tt.want[i] {
				t.Errorf("splitAndTrim(%q)[%d] = %q, want %q", tt.input, i, v, tt.want[i])
			}
		}
	}
}

func TestValidatePort(t *testing.T) {
	if err := validatePort("8080"); err != nil {
		t.Errorf("8080 should be valid: %v", err)
	}
	for _, bad := range []string{"0", "-1", "abc", "65536"} {
		if err := validatePort(bad); err == nil {
			t.Errorf("expected %q to be rejected", bad)
		}
	}
}
