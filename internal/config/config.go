package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Auth      AuthConfig      `yaml:"auth"`
	Tailscale TailscaleConfig `yaml:"tailscale"`
	Generator GeneratorConfig `yaml:"generator"`
	Logging   LoggingConfig   `yaml:"logging"`
}

type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
	// RateLimit is generate requests per second across all clients; 0 disables it.
	RateLimit float64 `yaml:"rate_limit"`
	RateBurst int     `yaml:"rate_burst"`
}

// AuthConfig protects the generate endpoint when APIKey is set.
type AuthConfig struct {
	APIKey string `yaml:"api_key"`
}

type TailscaleConfig struct {
	Enabled  bool   `yaml:"enabled"`
	Hostname string `yaml:"hostname"`
	StateDir string `yaml:"state_dir"`
}

type GeneratorConfig struct {
	MaxMinutes          float64 `yaml:"max_minutes"`
	SurpriseMinSegments int     `yaml:"surprise_min_segments"`
	SurpriseMaxSegments int     `yaml:"surprise_max_segments"`
	// Seed fixes the surprise builder's random sequence; 0 means random.
	Seed uint64 `yaml:"seed"`
}

type LoggingConfig struct {
	Level      string `yaml:"level"`
	File       string `yaml:"file"`
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
	MaxAgeDays int    `yaml:"max_age_days"`
}

// Default returns the configuration used when a field is left unset.
func Default() *Config {
	return &Config{
		Server: ServerConfig{Host: "127.0.0.1", Port: 5001, RateBurst: 10},
		Tailscale: TailscaleConfig{
			Hostname: "rowplan",
			StateDir: "tsnet-state",
		},
		Generator: GeneratorConfig{
			MaxMinutes:          240,
			SurpriseMinSegments: 3,
			SurpriseMaxSegments: 6,
		},
		Logging: LoggingConfig{
			Level:      "info",
			MaxSizeMB:  10,
			MaxBackups: 3,
			MaxAgeDays: 28,
		},
	}
}

// Load reads config from a YAML file on top of Default, then applies
// environment variable overrides. Env vars use the prefix ROWPLAN_:
//
//	ROWPLAN_SERVER_HOST, ROWPLAN_SERVER_PORT, ROWPLAN_AUTH_API_KEY,
//	ROWPLAN_TAILSCALE_ENABLED, ROWPLAN_GENERATOR_MAX_MINUTES,
//	ROWPLAN_GENERATOR_SEED, ROWPLAN_LOG_LEVEL, ROWPLAN_LOG_FILE
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	applyEnvOverrides(cfg)

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}

	return cfg, nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("ROWPLAN_SERVER_HOST"); v != "" {
		cfg.Server.Host = v
	}
	if v := os.Getenv("ROWPLAN_SERVER_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Server.Port = port
		}
	}
	if v := os.Getenv("ROWPLAN_AUTH_API_KEY"); v != "" {
		cfg.Auth.APIKey = v
	}
	if v := os.Getenv("ROWPLAN_TAILSCALE_ENABLED"); v != "" {
		if enabled, err := strconv.ParseBool(v); err == nil {
			cfg.Tailscale.Enabled = enabled
		}
	}
	if v := os.Getenv("ROWPLAN_GENERATOR_MAX_MINUTES"); v != "" {
		if minutes, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.Generator.MaxMinutes = minutes
		}
	}
	if v := os.Getenv("ROWPLAN_GENERATOR_SEED"); v != "" {
		if seed, err := strconv.ParseUint(v, 10, 64); err == nil {
			cfg.Generator.Seed = seed
		}
	}
	if v := os.Getenv("ROWPLAN_LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
	if v := os.Getenv("ROWPLAN_LOG_FILE"); v != "" {
		cfg.Logging.File = v
	}
}

func (c *Config) validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be between 1 and 65535")
	}
	if c.Server.RateLimit < 0 {
		return fmt.Errorf("server.rate_limit must not be negative")
	}
	if c.Server.RateLimit > 0 && c.Server.RateBurst <= 0 {
		return fmt.Errorf("server.rate_burst is required when rate_limit is set")
	}
	if c.Tailscale.Enabled && c.Tailscale.Hostname == "" {
		return fmt.Errorf("tailscale.hostname is required when tailscale is enabled")
	}
	if c.Generator.MaxMinutes < 15 {
		return fmt.Errorf("generator.max_minutes must be at least 15")
	}
	if c.Generator.SurpriseMinSegments < 1 {
		return fmt.Errorf("generator.surprise_min_segments must be at least 1")
	}
	if c.Generator.SurpriseMaxSegments < c.Generator.SurpriseMinSegments {
		return fmt.Errorf("generator.surprise_max_segments must be >= surprise_min_segments")
	}
	if _, err := ParseLevel(c.Logging.Level); err != nil {
		return fmt.Errorf("logging.level: %w", err)
	}
	return nil
}
