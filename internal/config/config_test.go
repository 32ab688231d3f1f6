package config

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const validYAML = `
server:
  host: "0.0.0.0"
  port: 8080
  rate_limit: 5
  rate_burst: 20
auth:
  api_key: "test-key-123"
generator:
  max_minutes: 180
  surprise_min_segments: 2
  surprise_max_segments: 3
  seed: 42
logging:
  level: debug
`

func writeTemp(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

// TestLoadValid verifies that a well-formed YAML config loads with all fields populated.
func TestLoadValid(t *testing.T) {
	cfg, err := Load(writeTemp(t, validYAML))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Server.Host != "0.0.0.0" {
		t.Errorf("server.host = %q, want %q", cfg.Server.Host, "0.0.0.0")
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("server.port = %d, want 8080", cfg.Server.Port)
	}
	if cfg.Server.RateLimit != 5 || cfg.Server.RateBurst != 20 {
		t.Errorf("rate limit = %v/%d, want 5/20", cfg.Server.RateLimit, cfg.Server.RateBurst)
	}
	if cfg.Auth.APIKey != "test-key-123" {
		t.Errorf("auth.api_key = %q, want %q", cfg.Auth.APIKey, "test-key-123")
	}
	if cfg.Generator.MaxMinutes != 180 {
		t.Errorf("generator.max_minutes = %v, want 180", cfg.Generator.MaxMinutes)
	}
	if cfg.Generator.SurpriseMinSegments != 2 || cfg.Generator.SurpriseMaxSegments != 3 {
		t.Errorf("surprise range = %d-%d, want 2-3", cfg.Generator.SurpriseMinSegments, cfg.Generator.SurpriseMaxSegments)
	}
	if cfg.Generator.Seed != 42 {
		t.Errorf("generator.seed = %d, want 42", cfg.Generator.Seed)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("logging.level = %q, want debug", cfg.Logging.Level)
	}
}

// TestLoadDefaults verifies that a minimal config inherits defaults for
// everything it leaves out.
func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(writeTemp(t, "server:\n  port: 9000\n"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Server.Host != "127.0.0.1" {
		t.Errorf("server.host = %q, want 127.0.0.1", cfg.Server.Host)
	}
	if cfg.Generator.MaxMinutes != 240 {
		t.Errorf("generator.max_minutes = %v, want 240", cfg.Generator.MaxMinutes)
	}
	if cfg.Generator.SurpriseMinSegments != 3 || cfg.Generator.SurpriseMaxSegments != 6 {
		t.Errorf("surprise range = %d-%d, want 3-6", cfg.Generator.SurpriseMinSegments, cfg.Generator.SurpriseMaxSegments)
	}
	if cfg.Auth.APIKey != "" {
		t.Errorf("auth.api_key = %q, want empty", cfg.Auth.APIKey)
	}
	if cfg.Tailscale.Enabled {
		t.Error("tailscale should be disabled by default")
	}
}

// TestEnvOverride verifies that ROWPLAN_ env vars take precedence over YAML values.
func TestEnvOverride(t *testing.T) {
	t.Setenv("ROWPLAN_SERVER_PORT", "9999")
	t.Setenv("ROWPLAN_AUTH_API_KEY", "env-key")
	t.Setenv("ROWPLAN_GENERATOR_MAX_MINUTES", "90")
	t.Setenv("ROWPLAN_GENERATOR_SEED", "7")
	t.Setenv("ROWPLAN_TAILSCALE_ENABLED", "true")
	t.Setenv("ROWPLAN_LOG_LEVEL", "warn")

	cfg, err := Load(writeTemp(t, validYAML))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Server.Port != 9999 {
		t.Errorf("server.port = %d, want 9999", cfg.Server.Port)
	}
	if cfg.Auth.APIKey != "env-key" {
		t.Errorf("auth.api_key = %q, want %q", cfg.Auth.APIKey, "env-key")
	}
	if cfg.Generator.MaxMinutes != 90 {
		t.Errorf("generator.max_minutes = %v, want 90", cfg.Generator.MaxMinutes)
	}
	if cfg.Generator.Seed != 7 {
		t.Errorf("generator.seed = %d, want 7", cfg.Generator.Seed)
	}
	if !cfg.Tailscale.Enabled {
		t.Error("tailscale.enabled = false, want true")
	}
	if cfg.Logging.Level != "warn" {
		t.Errorf("logging.level = %q, want warn", cfg.Logging.Level)
	}
	// Unchanged fields should keep YAML values
	if cfg.Server.Host != "0.0.0.0" {
		t.Errorf("server.host = %q, want %q", cfg.Server.Host, "0.0.0.0")
	}
}

// TestValidationErrors verifies that inconsistent settings are rejected.
func TestValidationErrors(t *testing.T) {
	cases := map[string]string{
		"bad port":           "server:\n  port: 70000\n",
		"low max minutes":    "server:\n  port: 80\ngenerator:\n  max_minutes: 10\n",
		"inverted surprise":  "server:\n  port: 80\ngenerator:\n  surprise_min_segments: 5\n  surprise_max_segments: 2\n",
		"zero surprise min":  "server:\n  port: 80\ngenerator:\n  surprise_min_segments: 0\n",
		"rate without burst": "server:\n  port: 80\n  rate_limit: 2\n  rate_burst: 0\n",
		"unknown log level":  "server:\n  port: 80\nlogging:\n  level: loud\n",
		"tailscale no host":  "server:\n  port: 80\ntailscale:\n  enabled: true\n  hostname: \"\"\n",
	}
	for name, yaml := range cases {
		if _, err := Load(writeTemp(t, yaml)); err == nil {
			t.Errorf("%s: expected validation error", name)
		}
	}
}

// TestLoadMissingFile verifies that a missing config file returns a clear error.
func TestLoadMissingFile(t *testing.T) {
	_, err := Load("/nonexistent/config.yaml")
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}

// TestLoadMalformedYAML verifies that YAML syntax errors are surfaced.
func TestLoadMalformedYAML(t *testing.T) {
	_, err := Load(writeTemp(t, "server: [unclosed"))
	if err == nil || !strings.Contains(err.Error(), "parsing config file") {
		t.Fatalf("err = %v, want parsing error", err)
	}
}

// TestNewLoggerLevels verifies that the configured level filters records.
func TestNewLoggerLevels(t *testing.T) {
	var buf bytes.Buffer
	log, closer, err := LoggingConfig{Level: "warn"}.NewLogger(&buf)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer closer.Close()

	log.Info("hidden")
	log.Warn("shown", "minutes", 30)
	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("info record leaked through warn level: %q", out)
	}
	if !strings.Contains(out, "shown") || !strings.Contains(out, "minutes=30") {
		t.Errorf("warn record missing: %q", out)
	}
}

// TestNewLoggerFile verifies that a log file is written when configured.
func TestNewLoggerFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "rowplan.log")
	var buf bytes.Buffer
	log, closer, err := LoggingConfig{Level: "info", File: path, MaxSizeMB: 1}.NewLogger(&buf)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	log.Info("plan generated", "segments", 12)
	if err := closer.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading log file: %v", err)
	}
	if !strings.Contains(string(data), "segments=12") {
		t.Errorf("log file = %q, want segments=12", data)
	}
	if !strings.Contains(buf.String(), "segments=12") {
		t.Errorf("stdout copy = %q, want segments=12", buf.String())
	}
}

// TestParseLevelUnknown verifies unknown level names are rejected.
func TestParseLevelUnknown(t *testing.T) {
	if _, err := ParseLevel("verbose"); err == nil {
		t.Fatal("expected error for unknown level")
	}
}
