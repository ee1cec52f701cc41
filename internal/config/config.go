// Bytewise - Food Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/bytewise

package config

import (
	"fmt"
	"net"
	"strconv"
	"time"

	"github.com/tomtom215/bytewise/internal/recommend"
	"github.com/tomtom215/bytewise/internal/timeofday"
)

// Config holds all application configuration.
//
// Configuration Loading Order (Koanf v2):
//  1. Defaults: built-in values for every setting
//  2. Config File: optional YAML file (CONFIG_PATH or config.yaml)
//  3. Environment Variables: override any mapped setting
//
// Example:
//
//	cfg, err := config.Load()
//	if err != nil {
//	    log.Fatal().Err(err).Msg("Failed to load config")
//	}
//	srv := &http.Server{Addr: cfg.Server.Addr()}
//
// Config is immutable after Load and safe for concurrent reads.
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Storage   StorageConfig   `koanf:"storage"`
	Catalog   CatalogConfig   `koanf:"catalog"`
	Recommend RecommendConfig `koanf:"recommend"`
	TimeOfDay TimeOfDayConfig `koanf:"time_of_day"`
	Security  SecurityConfig  `koanf:"security"`
	Logging   LoggingConfig   `koanf:"logging"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `koanf:"host"`
	Port            int           `koanf:"port"`
	ReadTimeout     time.Duration `koanf:"read_timeout"`
	WriteTimeout    time.Duration `koanf:"write_timeout"`
	IdleTimeout     time.Duration `koanf:"idle_timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
	Environment     string        `koanf:"environment"` // "development", "staging", "production"
}

// Addr returns host:port for net/http.
func (s ServerConfig) Addr() string {
	return net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
}

// StorageConfig holds BadgerDB settings.
type StorageConfig struct {
	// Path is the Badger directory. Ignored when InMemory is true.
	Path string `koanf:"path"`

	// InMemory keeps all session state in memory; nothing survives a restart.
	InMemory bool `koanf:"in_memory"`

	// SyncWrites fsyncs every write.
	SyncWrites bool `koanf:"sync_writes"`

	// GCInterval is how often value log garbage collection runs. 0 disables it.
	GCInterval time.Duration `koanf:"gc_interval"`

	// CatalogCacheTTL is how long a decoded catalog is served from memory.
	CatalogCacheTTL time.Duration `koanf:"catalog_cache_ttl"`
}

// CatalogConfig holds catalog loading settings.
type CatalogConfig struct {
	// Path is a CSV file in either supported schema. Empty disables file loading;
	// the catalog can still be set through the API.
	Path string `koanf:"path"`

	// ReloadInterval is how often Path is re-read. 0 loads it once at startup.
	ReloadInterval time.Duration `koanf:"reload_interval"`
}

// RecommendConfig holds preference model parameters.
type RecommendConfig struct {
	Dimension        int     `koanf:"dimension"`
	InitialValue     float64 `koanf:"initial_value"`
	UpdateDivisor    float64 `koanf:"update_divisor"`
	CenterInterval   int     `koanf:"center_interval"`
	SimilarityWeight float64 `koanf:"similarity_weight"`
	DefaultK         int     `koanf:"default_k"`
	MaxK             int     `koanf:"max_k"`
}

// Engine returns the recommend package configuration.
func (r RecommendConfig) Engine() *recommend.Config {
	return &recommend.Config{
		Model: recommend.ModelConfig{
			Dimension:        r.Dimension,
			InitialValue:     r.InitialValue,
			UpdateDivisor:    r.UpdateDivisor,
			CenterInterval:   r.CenterInterval,
			SimilarityWeight: r.SimilarityWeight,
		},
		Limits: recommend.LimitsConfig{
			DefaultK: r.DefaultK,
			MaxK:     r.MaxK,
		},
	}
}

// HourRange is a half-open [Start, End) hour interval.
type HourRange struct {
	Start int `koanf:"start"`
	End   int `koanf:"end"`
}

// TimeOfDayConfig holds the meal period hour table.
type TimeOfDayConfig struct {
	// Preset selects a built-in table: "standard" or "narrow".
	// Empty uses the explicit ranges below.
	Preset string `koanf:"preset"`

	Breakfast HourRange `koanf:"breakfast"`
	Lunch     HourRange `koanf:"lunch"`
	Dinner    HourRange `koanf:"dinner"`
}

// Thresholds returns the hour table to categorize with.
func (t TimeOfDayConfig) Thresholds() timeofday.Thresholds {
	switch t.Preset {
	case "standard":
		return timeofday.DefaultThresholds()
	case "narrow":
		return timeofday.NarrowThresholds()
	}
	return timeofday.Thresholds{
		Breakfast: timeofday.Range{Start: t.Breakfast.Start, End: t.Breakfast.End},
		Lunch:     timeofday.Range{Start: t.Lunch.Start, End: t.Lunch.End},
		Dinner:    timeofday.Range{Start: t.Dinner.Start, End: t.Dinner.End},
	}
}

// SecurityConfig holds CORS and rate limiting settings.
type SecurityConfig struct {
	CORSOrigins       []string      `koanf:"cors_origins"`
	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: trace, debug, info, warn, error.
	// Default: info
	Level string `koanf:"level"`

	// Format is the output format: json or console.
	// Default: json
	Format string `koanf:"format"`

	// Caller adds file:line to each log entry.
	// Default: false
	Caller bool `koanf:"caller"`
}

// IsProduction reports whether ENVIRONMENT=production.
func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}

// String summarizes the configuration for startup logs.
func (c *Config) String() string {
	storage := c.Storage.Path
	if c.Storage.InMemory {
		storage = "memory"
	}
	return fmt.Sprintf("server=%s env=%s storage=%s catalog=%q reload=%v dim=%d",
		c.Server.Addr(), c.Server.Environment, storage, c.Catalog.Path, c.Catalog.ReloadInterval, c.Recommend.Dimension)
}
