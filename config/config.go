// Package config provides configuration management for the promptgate server.
// Settings come from built-in defaults, an optional YAML file, a .env file
// and the process environment, in that order of increasing precedence.
// The resulting Config is built once at startup and never mutated.
package config

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config represents the complete server configuration.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Upstream UpstreamConfig `yaml:"upstream"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// ServerConfig holds server-specific configuration for the HTTP server.
type ServerConfig struct {
	// Port specifies the HTTP listening port (default: 5000)
	Port int `yaml:"port" env:"BACKEND_PORT"`

	// ReadTimeout is the maximum duration for reading the entire request,
	// including the body (default: 30s)
	ReadTimeout time.Duration `yaml:"read_timeout" env:"SERVER_READ_TIMEOUT"`

	// WriteTimeout is the maximum duration before timing out writes of the
	// response. Zero disables it (default), leaving the upstream timeout as
	// the bound on a request.
	WriteTimeout time.Duration `yaml:"write_timeout" env:"SERVER_WRITE_TIMEOUT"`

	// MaxHeaderBytes controls the maximum number of bytes the server will
	// read parsing the request header's keys and values (default: 1MB)
	MaxHeaderBytes int `yaml:"max_header_bytes"`

	// ShutdownTimeout bounds the wait for in-flight requests when the
	// process is asked to stop (default: 5s)
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT"`
}

// ProviderOllama names the local provider, the only one that runs without
// an API key and accepts an endpoint override.
const ProviderOllama = "ollama"

// UpstreamConfig holds the settings of the upstream LLM provider.
// The model and the sampling temperature are fixed by the upstream
// package and are deliberately not part of the configuration.
type UpstreamConfig struct {
	// Provider is the gollm provider name (default: "openai")
	Provider string `yaml:"provider"`

	// APIKey is the provider credential. Prefer the OPENAI_API_KEY
	// environment variable over writing it into a file.
	APIKey string `yaml:"api_key" env:"OPENAI_API_KEY"`

	// Endpoint overrides the base URL of a local Ollama server
	// (e.g. http://localhost:11434). Only the ollama provider honors it.
	Endpoint string `yaml:"endpoint" env:"UPSTREAM_ENDPOINT"`

	// Timeout bounds a single upstream call. Zero disables it (default: 60s)
	Timeout time.Duration `yaml:"timeout" env:"UPSTREAM_TIMEOUT"`
}

// LoggingConfig holds logging-specific configuration.
type LoggingConfig struct {
	// Level sets logging verbosity: debug, info, warn, error
	Level string `yaml:"level" env:"LOG_LEVEL"`

	// Format specifies log output format: json or text
	Format string `yaml:"format" env:"LOG_FORMAT"`
}

// DefaultConfig returns the configuration used when nothing overrides it.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port:            5000,
			ReadTimeout:     30 * time.Second,
			WriteTimeout:    0,
			MaxHeaderBytes:  1 << 20,
			ShutdownTimeout: 5 * time.Second,
		},
		Upstream: UpstreamConfig{
			Provider: "openai",
			Timeout:  60 * time.Second,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
	}
}

// LoadFile loads configuration from a YAML file
func LoadFile(filename string) (*Config, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("open config file: %w", err)
	}
	defer f.Close()

	return Load(f)
}

// expandEnvVars resolves ${VAR} and ${VAR:-default} references. An unset
// variable without a default expands to the empty string.
func expandEnvVars(s string) string {
	return os.Expand(s, func(key string) string {
		if i := strings.Index(key, ":-"); i >= 0 {
			if val := os.Getenv(key[:i]); val != "" {
				return val
			}
			return key[i+2:]
		}
		return os.Getenv(key)
	})
}

// Load decodes YAML configuration from r on top of the defaults.
// Environment references in the document are expanded first.
// The result is not validated; see Validate.
func Load(r io.Reader) (*Config, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	config := DefaultConfig()

	dec := yaml.NewDecoder(strings.NewReader(expandEnvVars(string(data))))
	dec.KnownFields(true)
	if err := dec.Decode(config); err != nil && err != io.EOF {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	return config, nil
}

// FromEnvironment runs the startup pipeline: it loads .env (if present),
// starts from the YAML file at path (or the defaults when path is empty),
// overlays the process environment and validates the result.
func FromEnvironment(path string) (*Config, error) {
	if err := LoadDotEnv(); err != nil {
		return nil, err
	}

	var (
		cfg *Config
		err error
	)
	if path != "" {
		cfg, err = LoadFile(path)
		if err != nil {
			return nil, err
		}
	} else {
		cfg = DefaultConfig()
	}

	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return cfg, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	// Server validation
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid port: %d", c.Server.Port)
	}
	if c.Server.ReadTimeout < 0 {
		return fmt.Errorf("negative read timeout: %v", c.Server.ReadTimeout)
	}
	if c.Server.WriteTimeout < 0 {
		return fmt.Errorf("negative write timeout: %v", c.Server.WriteTimeout)
	}
	if c.Server.MaxHeaderBytes < 0 {
		return fmt.Errorf("negative max header bytes: %d", c.Server.MaxHeaderBytes)
	}
	if c.Server.ShutdownTimeout < 0 {
		return fmt.Errorf("negative shutdown timeout: %v", c.Server.ShutdownTimeout)
	}

	// Upstream validation
	if c.Upstream.Provider == "" {
		return fmt.Errorf("empty upstream provider")
	}
	if c.Upstream.Timeout < 0 {
		return fmt.Errorf("negative upstream timeout: %v", c.Upstream.Timeout)
	}
	// Local providers run without credentials.
	if c.Upstream.APIKey == "" && c.Upstream.Provider != ProviderOllama {
		return fmt.Errorf("missing API key for provider %q: set OPENAI_API_KEY", c.Upstream.Provider)
	}
	if c.Upstream.Endpoint != "" && c.Upstream.Provider != ProviderOllama {
		return fmt.Errorf("endpoint override is not supported for provider %q", c.Upstream.Provider)
	}

	// Logging validation
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level: %s", c.Logging.Level)
	}

	switch c.Logging.Format {
	case "json", "text":
	default:
		return fmt.Errorf("invalid log format: %s", c.Logging.Format)
	}

	return nil
}
