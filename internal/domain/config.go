package domain

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config represents the adapter configuration.
// This is the root configuration structure loaded from YAML files.
type Config struct {
	HTTP        HTTPConfig        `yaml:"http"`
	Persistence PersistenceConfig `yaml:"persistence"`
	Mapper      MapperConfig      `yaml:"mapper"`
}

// HTTPConfig defines settings for the HTTP client producing exchanges.
type HTTPConfig struct {
	// TimeoutSeconds bounds each request end to end. Zero means no
	// timeout.
	TimeoutSeconds int `yaml:"timeout_seconds"`
}

// PersistenceConfig defines settings for the embedded object store.
// Persistence is optional - when Path is empty, no store is opened and
// mapping operations run without transactions.
type PersistenceConfig struct {
	Path          string `yaml:"path"`
	BusyTimeoutMS int    `yaml:"busy_timeout_ms"`
}

// MapperConfig defines default mapper options applied when a mapping
// context supplies none.
type MapperConfig struct {
	DisallowUnknownFields bool `yaml:"disallow_unknown_fields"`
	UseNumber             bool `yaml:"use_number"`
}

// Options converts the config section to MapperOptions.
func (m MapperConfig) Options() MapperOptions {
	return MapperOptions{
		DisallowUnknownFields: m.DisallowUnknownFields,
		UseNumber:             m.UseNumber,
	}
}

// LoadConfig reads and validates configuration from a YAML file.
// Returns an error if the file is missing, has invalid syntax, or fails
// validation.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("configuration file not found: %s", path)
		}
		return nil, fmt.Errorf("failed to read configuration file: %w", err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("invalid YAML syntax in configuration file: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &config, nil
}

// Validate checks the configuration for completeness and correctness.
// Returns an error describing all validation failures.
func (c *Config) Validate() error {
	var errors []string

	if c.HTTP.TimeoutSeconds < 0 {
		errors = append(errors, "http.timeout_seconds must not be negative")
	}
	if c.Persistence.BusyTimeoutMS < 0 {
		errors = append(errors, "persistence.busy_timeout_ms must not be negative")
	}
	if c.Persistence.BusyTimeoutMS > 0 && c.Persistence.Path == "" {
		errors = append(errors, "persistence.busy_timeout_ms requires persistence.path")
	}

	if len(errors) > 0 {
		return fmt.Errorf("validation errors: %s", strings.Join(errors, "; "))
	}

	return nil
}
