// SPDX-License-Identifier: MIT

// Package config loads engine defaults from the environment.
//
// Variables use the RSACORR_ prefix and may come from a .env file:
//
//	RSACORR_WORKERS=8          # 0 means GOMAXPROCS
//	RSACORR_METHOD=kendall     # spearman|pearson|kendall|similarity|distance
//	RSACORR_RESCALE=true
//	RSACORR_TIME_WINDOW=5
//	RSACORR_LOG_LEVEL=debug
//	RSACORR_LOG_FORMAT=text
//	RSACORR_METRICS=false
//
// LoadYAML reads the same settings from a YAML file instead.
package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"github.com/katalvlaran/rsacorr/compare"
)

// Prefix is the environment variable prefix.
const Prefix = "RSACORR"

// ErrInvalid is returned by Validate.
var ErrInvalid = errors.New("config: invalid value")

// Config holds engine-wide defaults.
type Config struct {
	Workers    int            `envconfig:"WORKERS" default:"0" yaml:"workers"`
	Method     compare.Method `envconfig:"METHOD" default:"spearman" yaml:"method"`
	Rescale    bool           `envconfig:"RESCALE" default:"false" yaml:"rescale"`
	TimeWindow int            `envconfig:"TIME_WINDOW" default:"5" yaml:"time_window"`
	LogLevel   string         `envconfig:"LOG_LEVEL" default:"info" yaml:"log_level"`
	LogFormat  string         `envconfig:"LOG_FORMAT" default:"json" yaml:"log_format"`
	Metrics    bool           `envconfig:"METRICS" default:"true" yaml:"metrics"`
}

// Default returns the values Load uses when nothing is set.
func Default() Config {
	return Config{
		Method:     compare.Spearman,
		TimeWindow: 5,
		LogLevel:   "info",
		LogFormat:  "json",
		Metrics:    true,
	}
}

// Load reads ./.env when present, then the process environment.
// Variables already set in the environment win over the file.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("config: .env: %w", err)
	}

	return process()
}

// LoadFile is Load with an explicit env file that must exist.
func LoadFile(path string) (Config, error) {
	if err := godotenv.Load(path); err != nil {
		return Config{}, fmt.Errorf("config: %s: %w", path, err)
	}

	return process()
}

func process() (Config, error) {
	var cfg Config
	if err := envconfig.Process(Prefix, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks value ranges.
func (c Config) Validate() error {
	if c.Workers < 0 {
		return fmt.Errorf("WORKERS=%d: %w", c.Workers, ErrInvalid)
	}
	if c.TimeWindow <= 0 {
		return fmt.Errorf("TIME_WINDOW=%d: %w", c.TimeWindow, ErrInvalid)
	}
	if !c.Method.Valid() {
		return fmt.Errorf("METHOD=%s: %w", c.Method, ErrInvalid)
	}

	return nil
}
