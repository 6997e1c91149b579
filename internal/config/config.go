// Package config loads uvec CLI settings from defaults, an optional YAML
// file, UVEC_* environment variables and bound command-line flags.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/viper"

	"github.com/pavanmanishd/uvector"
	"github.com/pavanmanishd/uvector/heap"
)

// EnvPrefix is the prefix of environment variables read by Load.
const EnvPrefix = "UVEC"

var (
	// ErrInvalid indicates a configuration value outside its valid range.
	ErrInvalid = errors.New("config: invalid value")
)

// Config holds the settings of one uvec invocation.
type Config struct {
	Heap         HeapConfig `mapstructure:"heap" yaml:"heap"`
	GrowthFactor float64    `mapstructure:"growth_factor" yaml:"growth_factor"`
	LogLevel     string     `mapstructure:"log_level" yaml:"log_level"`
}

// HeapConfig sizes the heap the CLI's vectors draw from.
type HeapConfig struct {
	ChunkSize int `mapstructure:"chunk_size" yaml:"chunk_size"`
	Limit     int `mapstructure:"limit" yaml:"limit"`
}

// DefaultConfig returns the built-in settings.
func DefaultConfig() *Config {
	return &Config{
		Heap: HeapConfig{
			ChunkSize: heap.DefaultChunkSize,
		},
		GrowthFactor: uvector.DefaultGrowthFactor,
		LogLevel:     "warn",
	}
}

// Load resolves the configuration using v, which may already have flags
// bound to its keys. path names an optional YAML config file.
func Load(v *viper.Viper, path string) (*Config, error) {
	defaults := DefaultConfig()
	v.SetDefault("heap.chunk_size", defaults.Heap.ChunkSize)
	v.SetDefault("heap.limit", defaults.Heap.Limit)
	v.SetDefault("growth_factor", defaults.GrowthFactor)
	v.SetDefault("log_level", defaults.LogLevel)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks value ranges.
func (c *Config) Validate() error {
	if c.Heap.ChunkSize < 0 {
		return fmt.Errorf("%w: heap.chunk_size %d", ErrInvalid, c.Heap.ChunkSize)
	}
	if c.Heap.Limit < 0 {
		return fmt.Errorf("%w: heap.limit %d", ErrInvalid, c.Heap.Limit)
	}
	if c.GrowthFactor < 1 {
		return fmt.Errorf("%w: growth_factor %g must be >= 1", ErrInvalid, c.GrowthFactor)
	}
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: log_level %q", ErrInvalid, c.LogLevel)
	}
	return nil
}

// Level returns the parsed log level.
func (c *Config) Level() log.Level {
	lvl, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		return log.WarnLevel
	}
	return lvl
}

// NewHeap builds the heap described by the configuration.
func (c *Config) NewHeap(logger *log.Logger) *heap.Heap {
	return heap.New(c.Heap.ChunkSize, heap.WithLimit(c.Heap.Limit), heap.WithLogger(logger))
}
