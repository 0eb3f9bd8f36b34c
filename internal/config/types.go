package config

import "time"

// Config is the run configuration of the salesman command.
type Config struct {
	LogLevel  string `yaml:"log_level"`
	LogFormat string `yaml:"log_format"`

	// Output is the path the optimized route is written to.
	Output string `yaml:"output"`

	// CacheURL enables the result cache (redis://host:port/db). Empty disables it.
	CacheURL string        `yaml:"cache_url,omitempty"`
	CacheTTL time.Duration `yaml:"cache_ttl,omitempty"`

	// ProgressInterval throttles progress logs; 0 disables them.
	ProgressInterval time.Duration `yaml:"progress_interval,omitempty"`

	// TimeLimit bounds the wall-clock time of the optimization; 0 is unlimited.
	TimeLimit time.Duration `yaml:"time_limit,omitempty"`

	Anneal Anneal `yaml:"anneal"`
}

// Anneal mirrors tsp.AnnealOptions with YAML-friendly strategy names.
type Anneal struct {
	InitialTemperature float64 `yaml:"initial_temperature"`
	CoolingRate        float64 `yaml:"cooling_rate"`
	Steps              int     `yaml:"steps"`
	MinTemperature     float64 `yaml:"min_temperature"`
	Seed               int64   `yaml:"seed"`

	// Acceptance is "best" (reference) or "current".
	Acceptance string `yaml:"acceptance"`
	// Cost is "incremental" or "full".
	Cost string `yaml:"cost"`
	// InitialTour is "random", "nearest" or "identity".
	InitialTour string `yaml:"initial_tour"`

	Restarts       int  `yaml:"restarts"`
	Workers        int  `yaml:"workers"`
	Polish         bool `yaml:"polish"`
	PolishMaxIters int  `yaml:"polish_max_iters"`
	MatrixLimit    int  `yaml:"matrix_limit"`
	ProgressEvery  int  `yaml:"progress_every"`
}
