// Package config loads the salesman run configuration: defaults, then an
// optional YAML file, then GEOTOUR_* environment overrides (optionally seeded
// from a .env file).
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/geotour/tsp"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "GEOTOUR_"

// DefaultOutput is the route file written when none is configured.
const DefaultOutput = "optimized_route.dat"

// Default returns the configuration matching tsp.DefaultAnnealOptions.
func Default() *Config {
	o := tsp.DefaultAnnealOptions()

	return &Config{
		LogLevel:         "info",
		LogFormat:        "text",
		Output:           DefaultOutput,
		CacheTTL:         24 * time.Hour,
		ProgressInterval: 2 * time.Second,
		Anneal: Anneal{
			InitialTemperature: o.InitialTemperature,
			CoolingRate:        o.CoolingRate,
			Steps:              o.Steps,
			MinTemperature:     o.MinTemperature,
			Seed:               o.Seed,
			Acceptance:         o.Acceptance.String(),
			Cost:               o.Cost.String(),
			InitialTour:        o.Initial.String(),
			Restarts:           o.Restarts,
			Workers:            o.Workers,
			Polish:             o.Polish,
			PolishMaxIters:     o.PolishMaxIters,
			MatrixLimit:        o.MatrixLimit,
			ProgressEvery:      100_000,
		},
	}
}

// Load reads and validates the YAML file at path. An empty path yields the
// defaults.
func Load(path string) (*Config, error) {
	if path == "" {
		cfg := Default()
		return cfg, cfg.Validate()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	return cfg, nil
}

// Parse decodes YAML over the defaults and validates the result; keys absent
// from data keep their default values.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config yaml: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// LoadDotEnv loads KEY=VALUE pairs from the given files into the process
// environment without overriding variables that are already set. Missing
// files are ignored.
func LoadDotEnv(files ...string) error {
	for _, f := range files {
		if _, err := os.Stat(f); errors.Is(err, os.ErrNotExist) {
			continue
		}
		if err := godotenv.Load(f); err != nil {
			return fmt.Errorf("failed to load env file %s: %w", f, err)
		}
	}

	return nil
}

// ApplyEnv overrides fields from GEOTOUR_* variables read through getenv
// (os.Getenv in production) and re-validates.
func (c *Config) ApplyEnv(getenv func(string) string) error {
	str := func(key string, dst *string) {
		if v := strings.TrimSpace(getenv(EnvPrefix + key)); v != "" {
			*dst = v
		}
	}
	str("LOG_LEVEL", &c.LogLevel)
	str("LOG_FORMAT", &c.LogFormat)
	str("OUTPUT", &c.Output)
	str("CACHE_URL", &c.CacheURL)
	str("ACCEPTANCE", &c.Anneal.Acceptance)

	if v := getenv(EnvPrefix + "SEED"); v != "" {
		n, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
		if err != nil {
			return fmt.Errorf("invalid %sSEED %q: %w", EnvPrefix, v, err)
		}
		c.Anneal.Seed = n
	}
	if v := getenv(EnvPrefix + "STEPS"); v != "" {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("invalid %sSTEPS %q: %w", EnvPrefix, v, err)
		}
		c.Anneal.Steps = n
	}
	if v := getenv(EnvPrefix + "RESTARTS"); v != "" {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("invalid %sRESTARTS %q: %w", EnvPrefix, v, err)
		}
		c.Anneal.Restarts = n
	}
	if v := getenv(EnvPrefix + "TIME_LIMIT"); v != "" {
		d, err := time.ParseDuration(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("invalid %sTIME_LIMIT %q: %w", EnvPrefix, v, err)
		}
		c.TimeLimit = d
	}

	return c.Validate()
}

// Validate checks the configuration.
func (c *Config) Validate() error {
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("invalid log_level: %s (must be debug, info, warn, or error)", c.LogLevel)
	}
	switch strings.ToLower(c.LogFormat) {
	case "text", "json":
	default:
		return fmt.Errorf("invalid log_format: %s (must be text or json)", c.LogFormat)
	}
	if c.Output == "" {
		return fmt.Errorf("output cannot be empty")
	}
	if c.CacheTTL < 0 {
		return fmt.Errorf("cache_ttl cannot be negative")
	}
	if c.ProgressInterval < 0 {
		return fmt.Errorf("progress_interval cannot be negative")
	}
	if c.TimeLimit < 0 {
		return fmt.Errorf("time_limit cannot be negative")
	}
	if _, err := c.AnnealOptions(); err != nil {
		return fmt.Errorf("anneal: %w", err)
	}

	return nil
}

// AnnealOptions converts the anneal section into validated tsp options.
func (c *Config) AnnealOptions() (tsp.AnnealOptions, error) {
	a := c.Anneal
	acc, err := tsp.ParseAcceptance(a.Acceptance)
	if err != nil {
		return tsp.AnnealOptions{}, err
	}
	cost, err := tsp.ParseCostStrategy(a.Cost)
	if err != nil {
		return tsp.AnnealOptions{}, err
	}
	initial, err := tsp.ParseInitialStrategy(a.InitialTour)
	if err != nil {
		return tsp.AnnealOptions{}, err
	}

	o := tsp.AnnealOptions{
		InitialTemperature: a.InitialTemperature,
		CoolingRate:        a.CoolingRate,
		Steps:              a.Steps,
		MinTemperature:     a.MinTemperature,
		Seed:               a.Seed,
		Acceptance:         acc,
		Cost:               cost,
		Initial:            initial,
		Restarts:           a.Restarts,
		Workers:            a.Workers,
		Polish:             a.Polish,
		PolishMaxIters:     a.PolishMaxIters,
		MatrixLimit:        a.MatrixLimit,
		ProgressEvery:      a.ProgressEvery,
	}
	if err = o.Validate(); err != nil {
		return tsp.AnnealOptions{}, err
	}

	return o, nil
}
