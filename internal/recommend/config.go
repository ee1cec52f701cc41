// Bytewise - Food Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/bytewise

package recommend

import (
	"fmt"
	"math"
)

// Config contains all configuration for the recommendation engine.
type Config struct {
	// Model contains parameters of the preference vector updater.
	Model ModelConfig `json:"model"`

	// Limits contains operational limits.
	Limits LimitsConfig `json:"limits"`
}

// ModelConfig contains parameters for the preference model.
type ModelConfig struct {
	// Dimension is the length of the ideal vector.
	// Embeddings of a different length are truncated when compared.
	// Default: 100.
	Dimension int `json:"dimension"`

	// InitialValue fills every component of a fresh ideal vector.
	// Default: 0.01.
	InitialValue float64 `json:"initial_value"`

	// UpdateDivisor scales feedback: ideal += embedding / UpdateDivisor.
	// Default: 10.
	UpdateDivisor float64 `json:"update_divisor"`

	// CenterInterval is how often, in iterations, the ideal vector is
	// mean-centered.
	// Default: 10.
	CenterInterval int `json:"center_interval"`

	// SimilarityWeight multiplies cosine similarity before the distance
	// penalty is subtracted.
	// Default: 5.
	SimilarityWeight float64 `json:"similarity_weight"`
}

// LimitsConfig contains operational limits.
type LimitsConfig struct {
	// DefaultK is the default number of recommendations to return.
	// Default: 10.
	DefaultK int `json:"default_k"`

	// MaxK is the maximum allowed K value.
	// Default: 100.
	MaxK int `json:"max_k"`
}

// DefaultConfig returns a Config with the standard model parameters.
func DefaultConfig() *Config {
	return &Config{
		Model: ModelConfig{
			Dimension:        100,
			InitialValue:     0.01,
			UpdateDivisor:    10,
			CenterInterval:   10,
			SimilarityWeight: 5,
		},
		Limits: LimitsConfig{
			DefaultK: 10,
			MaxK:     100,
		},
	}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if c.Model.Dimension < 1 {
		return fmt.Errorf("model.dimension must be positive, got %d", c.Model.Dimension)
	}
	if !isFinite(c.Model.InitialValue) {
		return fmt.Errorf("model.initial_value must be finite, got %f", c.Model.InitialValue)
	}
	if !isFinite(c.Model.UpdateDivisor) || c.Model.UpdateDivisor <= 0 {
		return fmt.Errorf("model.update_divisor must be positive, got %f", c.Model.UpdateDivisor)
	}
	if c.Model.CenterInterval < 1 {
		return fmt.Errorf("model.center_interval must be positive, got %d", c.Model.CenterInterval)
	}
	if !isFinite(c.Model.SimilarityWeight) || c.Model.SimilarityWeight < 0 {
		return fmt.Errorf("model.similarity_weight must be non-negative, got %f", c.Model.SimilarityWeight)
	}

	if c.Limits.DefaultK < 1 {
		return fmt.Errorf("limits.default_k must be positive, got %d", c.Limits.DefaultK)
	}
	if c.Limits.MaxK < c.Limits.DefaultK {
		return fmt.Errorf("limits.max_k (%d) must be >= limits.default_k (%d)", c.Limits.MaxK, c.Limits.DefaultK)
	}

	return nil
}

// Clone returns a deep copy of the configuration.
func (c *Config) Clone() *Config {
	// Nested structs contain only value types
	return &Config{
		Model:  c.Model,
		Limits: c.Limits,
	}
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
