// Package config loads the optional sheets.yaml configuration file,
// which supplies stack-level defaults for transition durations, scrim
// timing, and dismissibility. A missing file is not an error; zero
// values resolve to compiled defaults.
package config

import (
	stderrors "errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	sheeterrors "github.com/go-drift/sheets/pkg/errors"
)

// Compiled defaults, used when sheets.yaml is absent or leaves a field unset.
const (
	DefaultAnimationDuration        = 300 * time.Millisecond
	DefaultReverseAnimationDuration = 250 * time.Millisecond
	DefaultScrimDuration            = 250 * time.Millisecond
)

// Config represents the optional sheets.yaml configuration.
type Config struct {
	Sheets SheetConfig `yaml:"sheets"`
	Scrim  ScrimConfig `yaml:"scrim"`
}

// SheetConfig contains per-sheet transition defaults.
// Durations are Go duration strings (e.g. "250ms").
type SheetConfig struct {
	AnimationDuration        string `yaml:"animation_duration,omitempty"`
	ReverseAnimationDuration string `yaml:"reverse_animation_duration,omitempty"`
	Dismissible              *bool  `yaml:"dismissible,omitempty"`
}

// ScrimConfig contains dimming-overlay defaults.
type ScrimConfig struct {
	Duration        string `yaml:"duration,omitempty"`
	ReverseDuration string `yaml:"reverse_duration,omitempty"`
}

// Resolved contains resolved configuration values.
type Resolved struct {
	AnimationDuration        time.Duration
	ReverseAnimationDuration time.Duration
	ScrimDuration            time.Duration
	ScrimReverseDuration     time.Duration
	Dismissible              bool
}

// LoadOptional reads sheets.yaml from dir if present.
func LoadOptional(dir string) (*Config, error) {
	path := filepath.Join(dir, "sheets.yaml")
	data, err := os.ReadFile(path)
	if err != nil {
		if stderrors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, &sheeterrors.Error{
			Op:   "config.LoadOptional",
			Kind: sheeterrors.KindConfig,
			Err:  fmt.Errorf("failed to read sheets.yaml: %w", err),
		}
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, &sheeterrors.Error{
			Op:   "config.LoadOptional",
			Kind: sheeterrors.KindConfig,
			Err:  fmt.Errorf("failed to parse sheets.yaml: %w", err),
		}
	}

	return &cfg, nil
}

// Resolve loads sheets.yaml (if present) and resolves defaults.
func Resolve(dir string) (*Resolved, error) {
	cfg, err := LoadOptional(dir)
	if err != nil {
		return nil, err
	}
	return cfg.Resolve()
}

// Resolve fills unset fields with compiled defaults.
func (c *Config) Resolve() (*Resolved, error) {
	r := &Resolved{
		AnimationDuration:        DefaultAnimationDuration,
		ReverseAnimationDuration: DefaultReverseAnimationDuration,
		ScrimDuration:            DefaultScrimDuration,
		ScrimReverseDuration:     DefaultScrimDuration,
		Dismissible:              true,
	}

	var err error
	if r.AnimationDuration, err = resolveDuration(c.Sheets.AnimationDuration, r.AnimationDuration); err != nil {
		return nil, configErr("sheets.animation_duration", err)
	}
	if r.ReverseAnimationDuration, err = resolveDuration(c.Sheets.ReverseAnimationDuration, r.ReverseAnimationDuration); err != nil {
		return nil, configErr("sheets.reverse_animation_duration", err)
	}
	if r.ScrimDuration, err = resolveDuration(c.Scrim.Duration, r.ScrimDuration); err != nil {
		return nil, configErr("scrim.duration", err)
	}
	if r.ScrimReverseDuration, err = resolveDuration(c.Scrim.ReverseDuration, r.ScrimReverseDuration); err != nil {
		return nil, configErr("scrim.reverse_duration", err)
	}
	if c.Sheets.Dismissible != nil {
		r.Dismissible = *c.Sheets.Dismissible
	}

	return r, nil
}

func resolveDuration(value string, fallback time.Duration) (time.Duration, error) {
	if value == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, err
	}
	if d < 0 {
		return 0, fmt.Errorf("duration must not be negative: %s", value)
	}
	return d, nil
}

func configErr(field string, err error) error {
	return &sheeterrors.Error{
		Op:   "config.Resolve",
		Kind: sheeterrors.KindConfig,
		Err:  fmt.Errorf("%s: %w", field, err),
	}
}
