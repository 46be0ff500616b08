// Package config loads the server configuration from an optional YAML file,
// a .env file and the environment.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/germanamz/spoolman-mcp/pkg/logging"
)

const (
	// DefaultSpoolmanURL is used when neither the file nor SPOOLMAN_URL set one.
	DefaultSpoolmanURL = "http://localhost:7912"
	// DefaultAPIPath is appended to the Spoolman URL.
	DefaultAPIPath = "/api/v1"
	// DefaultLogFile receives the structured log records.
	DefaultLogFile = "spoolman-mcp.log"

	// EnvSpoolmanURL overrides the Spoolman URL.
	EnvSpoolmanURL = "SPOOLMAN_URL"
)

// Config is the server configuration.
type Config struct {
	SpoolmanURL string `yaml:"spoolman_url"`
	APIPath     string `yaml:"api_path"`
	// HTTPTimeout bounds each backend request. Zero leaves requests bounded
	// only by the caller's context.
	HTTPTimeout time.Duration `yaml:"http_timeout"`
	LogFile     string        `yaml:"log_file"`
	LogLevel    string        `yaml:"log_level"`
	// Listen is the address of the streamable HTTP transport. Empty serves
	// over stdio.
	Listen string `yaml:"listen"`
	// Tools limits the exposed tools. Empty exposes all of them.
	Tools     []string        `yaml:"tools"`
	Telemetry TelemetryConfig `yaml:"telemetry"`
}

// TelemetryConfig configures trace export.
type TelemetryConfig struct {
	OTLPEndpoint string `yaml:"otlp_endpoint"`
	ServiceName  string `yaml:"service_name"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		SpoolmanURL: DefaultSpoolmanURL,
		APIPath:     DefaultAPIPath,
		LogFile:     DefaultLogFile,
		LogLevel:    "info",
	}
}

// Load reads the YAML file at path on top of Default and applies the
// environment override. A missing file is not an error. Environment
// variables referenced as ${VAR} or $VAR in the YAML are expanded before
// parsing.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path) //nolint:gosec // path is caller-provided configuration, not user input
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return Config{}, fmt.Errorf("config: load: %w", err)
		default:
			if err := yaml.Unmarshal([]byte(os.ExpandEnv(string(data))), &cfg); err != nil {
				return Config{}, fmt.Errorf("config: parse: %w", err)
			}
		}
	}

	if v := strings.TrimSpace(os.Getenv(EnvSpoolmanURL)); v != "" {
		cfg.SpoolmanURL = v
	}

	return cfg, nil
}

// LoadDotEnv loads environment variables from path. A missing file is ignored.
func LoadDotEnv(path string) error {
	err := godotenv.Load(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}

	return err
}

// BaseURL returns the API root, e.g. http://localhost:7912/api/v1.
func (c Config) BaseURL() string {
	path := c.APIPath
	if path != "" && !strings.HasPrefix(path, "/") {
		path = "/" + path
	}

	return strings.TrimRight(c.SpoolmanURL, "/") + strings.TrimRight(path, "/")
}

// Validate checks that the configuration is usable.
func (c Config) Validate() error {
	u, err := url.Parse(c.SpoolmanURL)
	if err != nil {
		return fmt.Errorf("config: spoolman_url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("config: spoolman_url %q: scheme must be http or https", c.SpoolmanURL)
	}
	if u.Host == "" {
		return fmt.Errorf("config: spoolman_url %q: host is required", c.SpoolmanURL)
	}

	if c.HTTPTimeout < 0 {
		return fmt.Errorf("config: http_timeout must not be negative")
	}

	if !logging.ValidLevel(c.LogLevel) {
		return fmt.Errorf("config: unknown log_level %q", c.LogLevel)
	}

	seen := make(map[string]struct{}, len(c.Tools))
	for _, name := range c.Tools {
		if _, dup := seen[name]; dup {
			return fmt.Errorf("config: duplicate tool %q", name)
		}
		seen[name] = struct{}{}
	}

	return nil
}
