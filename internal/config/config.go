package config

import (
	"errors"
	"fmt"
	"os"

	"sequential-monitor/internal/sequential"
	"sequential-monitor/internal/spending"

	"gopkg.in/yaml.v3"
)

// Config is the on-disk configuration shape (YAML) describing one monitored
// experiment's design plus an optional planning block.
type Config struct {
	Experiment ExperimentConfig `yaml:"experiment"`
	Planning   PlanningConfig   `yaml:"planning"`
}

type ExperimentConfig struct {
	Name             string    `yaml:"name"`
	MaxLooks         int       `yaml:"max_looks"`
	Alpha            float64   `yaml:"alpha"`
	Power            float64   `yaml:"power"`
	Sided            string    `yaml:"sided"`
	SpendingFunction string    `yaml:"spending_function"`
	LanDeMetsRho     float64   `yaml:"lan_demets_rho"`
	InformationTimes []float64 `yaml:"information_times"`

	FutilityThreshold     float64 `yaml:"futility_threshold"`
	FutilityAssumedEffect float64 `yaml:"futility_assumed_effect"`
}

type PlanningConfig struct {
	MinDetectableEffect float64 `yaml:"min_detectable_effect"`
	BaselineRate        float64 `yaml:"baseline_rate"`
	IsConversion        bool    `yaml:"is_conversion"`
}

// Load reads a YAML config, applies defaults, and validates it by building
// the engine config it describes.
func Load(path string) (*Config, error) {
	c, err := LoadUnchecked(path)
	if err != nil {
		return nil, err
	}
	c.Experiment.ApplyDefaults()
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// LoadUnchecked loads config without defaults or validation. Useful for
// debugging/printing partial configs.
func LoadUnchecked(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var c Config
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return nil, err
	}
	return &c, nil
}

// ApplyDefaults fills the standard design when fields are omitted:
// 5 looks, alpha 0.05, power 0.8, two-sided, O'Brien-Fleming spending.
func (e *ExperimentConfig) ApplyDefaults() {
	if e.MaxLooks == 0 {
		e.MaxLooks = sequential.DefaultMaxLooks
	}
	if e.Alpha == 0 {
		e.Alpha = sequential.DefaultAlpha
	}
	if e.Power == 0 {
		e.Power = sequential.DefaultPower
	}
	if e.Sided == "" {
		e.Sided = string(sequential.TwoSided)
	}
	if e.SpendingFunction == "" {
		e.SpendingFunction = spending.NameOBrienFleming
	}
}

func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}
	// Validate the design by constructing the engine config it maps to.
	if _, err := c.Experiment.ToTestConfig(); err != nil {
		return fmt.Errorf("experiment config invalid: %w", err)
	}
	if c.Planning.MinDetectableEffect < 0 {
		return errors.New("planning.min_detectable_effect must be >= 0")
	}
	if c.Planning.BaselineRate < 0 || c.Planning.BaselineRate > 1 {
		return errors.New("planning.baseline_rate must be in [0, 1]")
	}
	return nil
}

// ToTestConfig resolves the spending function by name and maps the YAML
// shape onto the engine's design config.
func (e ExperimentConfig) ToTestConfig() (sequential.TestConfig, error) {
	fn, err := spending.Parse(e.SpendingFunction, e.LanDeMetsRho)
	if err != nil {
		return sequential.TestConfig{}, err
	}
	cfg := sequential.TestConfig{
		MaxLooks:              e.MaxLooks,
		Alpha:                 e.Alpha,
		Power:                 e.Power,
		Sided:                 sequential.Sided(e.Sided),
		Spending:              fn,
		FutilityThreshold:     e.FutilityThreshold,
		FutilityAssumedEffect: e.FutilityAssumedEffect,
		InformationTimes:      e.InformationTimes,
	}
	if err := cfg.Validate(); err != nil {
		return sequential.TestConfig{}, err
	}
	return cfg, nil
}

// MergeExperiment overlays non-zero fields from override onto base. This is
// used when an API request supplies partial overrides on top of a config
// file's design.
func MergeExperiment(base, override ExperimentConfig) ExperimentConfig {
	out := base
	if override.Name != "" {
		out.Name = override.Name
	}
	if override.MaxLooks != 0 {
		out.MaxLooks = override.MaxLooks
	}
	if override.Alpha != 0 {
		out.Alpha = override.Alpha
	}
	if override.Power != 0 {
		out.Power = override.Power
	}
	if override.Sided != "" {
		out.Sided = override.Sided
	}
	if override.SpendingFunction != "" {
		out.SpendingFunction = override.SpendingFunction
	}
	if override.LanDeMetsRho != 0 {
		out.LanDeMetsRho = override.LanDeMetsRho
	}
	if override.InformationTimes != nil {
		out.InformationTimes = override.InformationTimes
	}
	if override.FutilityThreshold != 0 {
		out.FutilityThreshold = override.FutilityThreshold
	}
	if override.FutilityAssumedEffect != 0 {
		out.FutilityAssumedEffect = override.FutilityAssumedEffect
	}
	return out
}
