package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/zipdesk/zipdesk/internal/core/domain"
)

type Config struct {
	CompressionLevel int    `yaml:"compression_level"` // Deflate level (0-9)
	ArchiveExtension string `yaml:"archive_extension"` // Archive file extension, with dot
	NamePrefix       string `yaml:"name_prefix"`       // Prefix for generated archive names
	BufferSize       uint32 `yaml:"buffer_size"`       // Copy buffer size in bytes
	VerifyOnExtract  bool   `yaml:"verify_on_extract"` // Re-check extracted files against stored checksums
}

// Returns a Config struct with reasonable default values.
func DefaultConfig() *Config {
	return &Config{
		CompressionLevel: 6,
		ArchiveExtension: ".zip",
		NamePrefix:       "Archive_",
		BufferSize:       1024 * 1024, // 1MB
		VerifyOnExtract:  true,
	}
}

// Loads configuration from a YAML file.
func LoadConfig(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}

	prepareDefaults(&config)

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// prepareDefaults fills zero-valued fields with their defaults, so a
// partial config file behaves like DefaultConfig with overrides. A
// compression_level of 0 therefore means "default", not "store".
func prepareDefaults(config *Config) *Config {
	defaults := DefaultConfig()

	if config.CompressionLevel == 0 {
		config.CompressionLevel = defaults.CompressionLevel
	}

	if strings.TrimSpace(config.ArchiveExtension) == "" {
		config.ArchiveExtension = defaults.ArchiveExtension
	}

	if strings.TrimSpace(config.NamePrefix) == "" {
		config.NamePrefix = defaults.NamePrefix
	}

	if config.BufferSize == 0 {
		config.BufferSize = defaults.BufferSize
	}

	return config
}

// Options maps the configuration onto the service options.
func (c *Config) Options() *domain.Options {
	return &domain.Options{
		CompressionLevel: c.CompressionLevel,
		Extension:        c.ArchiveExtension,
		NamePrefix:       c.NamePrefix,
		BufferSize:       c.BufferSize,
		VerifyOnExtract:  c.VerifyOnExtract,
	}
}

func validateConfig(config *Config) error {
	if config.CompressionLevel < 0 || config.CompressionLevel > 9 {
		return fmt.Errorf("compression_level must be between 0 and 9")
	}

	if !strings.HasPrefix(config.ArchiveExtension, ".") {
		return fmt.Errorf("archive_extension must start with a dot")
	}

	if config.BufferSize < 4096 || config.BufferSize > 16*1024*1024 {
		return fmt.Errorf("buffer_size must be between 4KB and 16MB")
	}

	return nil
}
