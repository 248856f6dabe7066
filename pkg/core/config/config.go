// File: config.go
// Title: Configuration Loading and Access
// Description: Implements the Config type for loading, parsing, and
//              accessing configuration data from TOML and YAML files.
//              Environment variables override file values; dot notation
//              addresses nested keys.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2026-08-19
// Modified: 2026-08-24
//
// Change History:
// - 2026-08-19 v0.1.0: Initial implementation

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Format represents the configuration file format
type Format int

const (
	// FormatTOML represents TOML format (default)
	FormatTOML Format = iota

	// FormatYAML represents YAML format
	FormatYAML

	// FormatAuto auto-detects format from file extension
	FormatAuto
)

// String returns the string representation of the format
func (f Format) String() string {
	switch f {
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	case FormatAuto:
		return "auto"
	default:
		return "unknown"
	}
}

// Config represents a configuration instance with thread-safe access
type Config struct {
	mu        sync.RWMutex
	data      map[string]interface{}
	filePath  string
	format    Format
	envPrefix string
}

// LoadOptions defines options for loading configuration
type LoadOptions struct {
	Format    Format                 // File format (default: auto-detect)
	EnvPrefix string                 // Environment variable prefix (default: none)
	Defaults  map[string]interface{} // Default values with dot notation keys
}

// Load loads configuration from a file with default options
func Load(filePath string) (*Config, error) {
	return LoadWithOptions(filePath, LoadOptions{Format: FormatAuto})
}

// LoadWithOptions loads configuration from a file with custom options
func LoadWithOptions(filePath string, options LoadOptions) (*Config, error) {
	if strings.TrimSpace(filePath) == "" {
		return nil, fmt.Errorf("config file path cannot be empty")
	}

	if _, err := os.Stat(filePath); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file not found: %s", filePath)
	}

	raw, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", filePath, err)
	}

	format := options.Format
	if format == FormatAuto {
		format = detectFormat(filePath)
	}

	data := make(map[string]interface{})
	switch format {
	case FormatTOML:
		if err := toml.Unmarshal(raw, &data); err != nil {
			return nil, fmt.Errorf("failed to parse TOML config %s: %w", filePath, err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(raw, &data); err != nil {
			return nil, fmt.Errorf("failed to parse YAML config %s: %w", filePath, err)
		}
	default:
		return nil, fmt.Errorf("unsupported config format: %s", format)
	}

	cfg := &Config{
		data:      data,
		filePath:  filePath,
		format:    format,
		envPrefix: options.EnvPrefix,
	}

	for key, value := range options.Defaults {
		if _, ok := cfg.lookup(key); !ok {
			cfg.set(key, value)
		}
	}

	return cfg, nil
}

// NewFromDefaults creates a configuration without a backing file,
// holding only the given defaults and environment overrides.
func NewFromDefaults(defaults map[string]interface{}, envPrefix string) *Config {
	cfg := &Config{
		data:      make(map[string]interface{}),
		envPrefix: envPrefix,
	}
	for key, value := range defaults {
		cfg.set(key, value)
	}
	return cfg
}

// detectFormat determines the format from the file extension
func detectFormat(filePath string) Format {
	switch strings.ToLower(filepath.Ext(filePath)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatTOML
	}
}

// envKey converts a dot notation key into an environment variable name
func (c *Config) envKey(key string) string {
	name := strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
	if c.envPrefix == "" {
		return name
	}
	return c.envPrefix + "_" + name
}

// lookup resolves a dot notation key against the loaded data
func (c *Config) lookup(key string) (interface{}, bool) {
	parts := strings.Split(key, ".")
	var current interface{} = c.data
	for _, part := range parts {
		m, ok := current.(map[string]interface{})
		if !ok {
			return nil, false
		}
		current, ok = m[part]
		if !ok {
			return nil, false
		}
	}
	return current, true
}

// set stores a value under a dot notation key, creating nested maps
func (c *Config) set(key string, value interface{}) {
	parts := strings.Split(key, ".")
	current := c.data
	for _, part := range parts[:len(parts)-1] {
		next, ok := current[part].(map[string]interface{})
		if !ok {
			next = make(map[string]interface{})
			current[part] = next
		}
		current = next
	}
	current[parts[len(parts)-1]] = value
}

// Get returns the raw value for a key. Environment variables take
// precedence over file values.
func (c *Config) Get(key string) (interface{}, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if env, ok := os.LookupEnv(c.envKey(key)); ok {
		return env, true
	}
	return c.lookup(key)
}

// GetString returns the string value for a key, or fallback when absent
func (c *Config) GetString(key string, fallback ...string) string {
	if value, ok := c.Get(key); ok {
		return fmt.Sprintf("%v", value)
	}
	if len(fallback) > 0 {
		return fallback[0]
	}
	return ""
}

// GetInt returns the integer value for a key, or fallback when absent
// or not convertible
func (c *Config) GetInt(key string, fallback ...int) int {
	def := 0
	if len(fallback) > 0 {
		def = fallback[0]
	}
	value, ok := c.Get(key)
	if !ok {
		return def
	}
	switch v := value.(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	case string:
		if n, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
			return n
		}
	}
	return def
}

// GetBool returns the boolean value for a key, or fallback when absent
// or not convertible
func (c *Config) GetBool(key string, fallback ...bool) bool {
	def := false
	if len(fallback) > 0 {
		def = fallback[0]
	}
	value, ok := c.Get(key)
	if !ok {
		return def
	}
	switch v := value.(type) {
	case bool:
		return v
	case string:
		if b, err := strconv.ParseBool(strings.TrimSpace(v)); err == nil {
			return b
		}
	}
	return def
}

// FilePath returns the path the configuration was loaded from
func (c *Config) FilePath() string {
	return c.filePath
}

// Format returns the detected or requested file format
func (c *Config) Format() Format {
	return c.format
}
