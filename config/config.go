// Package config loads host configuration for the runtime client.
//
// Configuration comes from an optional YAML file with environment-variable
// expansion, an optional .env file, and the process environment. Environment
// values override file values so container platforms can reconfigure a packaged
// function without touching its config file.
package config

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/AmeliaLLC/lambda-runtime-go/failure"
)

// RuntimeAPIEnv names the environment variable carrying the runtime API
// endpoint, set by the execution environment before the client starts.
const RuntimeAPIEnv = "AWS_LAMBDA_RUNTIME_API"

const defaultLogLevel = "info"

// Config holds the client's host-level settings.
type Config struct {
	// RuntimeAPI is the host:port of the runtime API endpoint.
	RuntimeAPI string `yaml:"runtime_api"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level"`

	// Backtrace enables stack capture on error construction.
	Backtrace bool `yaml:"backtrace"`
}

// Load reads configuration from a YAML file, expanding environment variables
// in its content. A .env file in the working directory is loaded first when
// present. Environment values override file values.
func Load(path string) (*Config, error) {
	// .env is optional; a missing file is not an error.
	_ = godotenv.Load()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal([]byte(os.ExpandEnv(string(data))), &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg.applyEnv()
	cfg.applyDefaults()

	return &cfg, nil
}

// FromEnv builds a Config from the process environment alone.
func FromEnv() *Config {
	cfg := &Config{}
	cfg.applyEnv()
	cfg.applyDefaults()

	return cfg
}

func (c *Config) applyEnv() {
	if v := os.Getenv(RuntimeAPIEnv); v != "" {
		c.RuntimeAPI = v
	}
	if os.Getenv(failure.BacktraceEnv) == "1" {
		c.Backtrace = true
	}
}

func (c *Config) applyDefaults() {
	if c.LogLevel == "" {
		c.LogLevel = defaultLogLevel
	}
}

// Validate checks that the settings a running client cannot do without are
// present.
func (c *Config) Validate() error {
	if c.RuntimeAPI == "" {
		return fmt.Errorf("runtime API endpoint is not set (config runtime_api or %s)", RuntimeAPIEnv)
	}

	return nil
}

// Apply projects the Backtrace setting into the environment variable the
// failure package reads at error construction. The flag is read fresh on every
// construction, so Apply takes effect for errors created afterwards only.
func (c *Config) Apply() {
	if c.Backtrace {
		_ = os.Setenv(failure.BacktraceEnv, "1")
		return
	}
	_ = os.Unsetenv(failure.BacktraceEnv)
}

// SlogLevel maps LogLevel onto a slog level, defaulting to info for unknown
// values.
func (c *Config) SlogLevel() slog.Level {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
