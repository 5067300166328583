package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/viper"
)

// ErrInvalid is wrapped by every Validate failure.
var ErrInvalid = errors.New("config: invalid value")

// Algorithms lists the accepted values of search.algorithm.
var Algorithms = []string{"bfs", "bidi", "dfs", "dls", "ids"}

type Config struct {
	Search SearchConfig `mapstructure:"search"`
	Grid   GridConfig   `mapstructure:"grid"`
	Trace  TraceConfig  `mapstructure:"trace"`
	Log    LogConfig    `mapstructure:"log"`
}

type SearchConfig struct {
	Algorithm string `mapstructure:"algorithm"`
	Limit     int    `mapstructure:"limit"`
	MaxBound  int    `mapstructure:"max_bound"`
}

type GridConfig struct {
	Connectivity int `mapstructure:"connectivity"`
}

type TraceConfig struct {
	Enabled bool `mapstructure:"enabled"`
	// MaxSnapshots caps the emitted snapshots; 0 means all.
	MaxSnapshots int `mapstructure:"max_snapshots"`
}

type LogConfig struct {
	Format string `mapstructure:"format"`
	Level  string `mapstructure:"level"`
}

// Load reads the configuration from file and environment variables.
// Without cfgFile it looks for lvsearch.yaml in ./ and ~/.lvsearch; a missing
// file is not an error. Environment variables use the LVSEARCH_ prefix with
// dots replaced by underscores, e.g. LVSEARCH_SEARCH_LIMIT.
func Load(cfgFile string) (*Config, error) {
	v := viper.New()
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err == nil {
			v.AddConfigPath(filepath.Join(home, ".lvsearch"))
		}
		v.AddConfigPath(".")
		v.SetConfigName("lvsearch")
		v.SetConfigType("yaml")
	}

	v.SetEnvPrefix("LVSEARCH")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	return decode(v)
}

// loadDefaults returns the configuration built from defaults alone.
func loadDefaults() (*Config, error) {
	v := viper.New()
	setDefaults(v)

	return decode(v)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("search.algorithm", "bfs")
	v.SetDefault("search.limit", 10)
	v.SetDefault("search.max_bound", 10)
	v.SetDefault("grid.connectivity", 4)
	v.SetDefault("trace.enabled", false)
	v.SetDefault("trace.max_snapshots", 0)
	v.SetDefault("log.format", "text")
	v.SetDefault("log.level", "info")
}

func decode(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks value ranges.
func (c *Config) Validate() error {
	if !slices.Contains(Algorithms, c.Search.Algorithm) {
		return fmt.Errorf("%w: search.algorithm %q (use: %s)", ErrInvalid, c.Search.Algorithm, strings.Join(Algorithms, ", "))
	}
	if c.Search.Limit < 0 {
		return fmt.Errorf("%w: search.limit %d is negative", ErrInvalid, c.Search.Limit)
	}
	if c.Search.MaxBound < 0 {
		return fmt.Errorf("%w: search.max_bound %d is negative", ErrInvalid, c.Search.MaxBound)
	}
	if c.Grid.Connectivity != 4 && c.Grid.Connectivity != 8 {
		return fmt.Errorf("%w: grid.connectivity %d (use: 4, 8)", ErrInvalid, c.Grid.Connectivity)
	}
	if c.Trace.MaxSnapshots < 0 {
		return fmt.Errorf("%w: trace.max_snapshots %d is negative", ErrInvalid, c.Trace.MaxSnapshots)
	}

	return nil
}
