// Package guardrails evaluates generated text against safety and quality
// rules and applies the remediation policy.
package guardrails

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Severity grades how serious an issue is.
type Severity string

const (
	SeverityLow    Severity = "low"
	SeverityMedium Severity = "medium"
	SeverityHigh   Severity = "high"
)

// QualityThresholds bounds the accepted response shape.
type QualityThresholds struct {
	// MinLength is the minimum response length in characters.
	MinLength int `yaml:"min_length"`
	// MaxLength is the maximum response length in characters.
	MaxLength int `yaml:"max_length"`
	// CoherenceScore is reserved for a future coherence rule.
	// It is configured but never evaluated.
	CoherenceScore float64 `yaml:"coherence_score"`
}

// Config holds the guardrail rule set. It is loaded once at startup and
// read-only afterwards.
type Config struct {
	// SafetyRules maps a rule category to the keywords it flags.
	SafetyRules map[string][]string `yaml:"safety_rules"`
	// Quality bounds the accepted response shape.
	Quality QualityThresholds `yaml:"quality_thresholds"`
}

// DefaultConfig returns the built-in illustrative rule set.
func DefaultConfig() *Config {
	return &Config{
		SafetyRules: map[string][]string{
			"harmful_content":  {"violence", "hate speech", "illegal activities"},
			"sensitive_topics": {"politics", "religion", "adult content"},
			"personal_data":    {"credit cards", "social security numbers", "passwords"},
		},
		Quality: QualityThresholds{
			MinLength:      20,
			MaxLength:      1000,
			CoherenceScore: 0.7,
		},
	}
}

// LoadConfig reads a rule set from a YAML file. A missing file yields the
// default rule set; a malformed file is an error.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("failed to read guardrails config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse guardrails config: %w", err)
	}
	applyDefaults(&cfg)
	return &cfg, nil
}

// applyDefaults fills settings the file left out, field by field, so a
// partial quality_thresholds section keeps the remaining defaults.
func applyDefaults(cfg *Config) {
	defaults := DefaultConfig()
	if cfg.SafetyRules == nil {
		cfg.SafetyRules = defaults.SafetyRules
	}
	if cfg.Quality.MinLength == 0 {
		cfg.Quality.MinLength = defaults.Quality.MinLength
	}
	if cfg.Quality.MaxLength == 0 {
		cfg.Quality.MaxLength = defaults.Quality.MaxLength
	}
	if cfg.Quality.CoherenceScore == 0 {
		cfg.Quality.CoherenceScore = defaults.Quality.CoherenceScore
	}
}
