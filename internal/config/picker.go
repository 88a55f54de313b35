package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/MikeBiancalana/dtpick/internal/picker"
	"gopkg.in/yaml.v3"
)

var (
	ErrInvalidTimezone = errors.New("invalid timezone")
	ErrInvalidBoundary = errors.New("invalid boundary")
)

// PickerConfig is the on-disk form of the picker options.
type PickerConfig struct {
	DisplayFormat string      `yaml:"display_format,omitempty"`
	Placeholder   string      `yaml:"placeholder,omitempty"`
	DateOnly      bool        `yaml:"date_only,omitempty"`
	Timezone      string      `yaml:"timezone,omitempty"`
	Theme         ThemeConfig `yaml:"theme,omitempty"`
	Rules         RulesConfig `yaml:"rules,omitempty"`
}

// ThemeConfig holds colours as hex strings.
type ThemeConfig struct {
	Color         string `yaml:"color,omitempty"`
	DarkMode      bool   `yaml:"dark_mode,omitempty"`
	DarkModeColor string `yaml:"dark_mode_color,omitempty"`
}

// RulesConfig mirrors picker.Rules. Boundaries use the value format
// ("YYYY-MM-DD H:mm:ss") and are read in the configured timezone.
type RulesConfig struct {
	DisabledDates []string `yaml:"disabled_dates,omitempty"`
	DisablePast   bool     `yaml:"disable_past,omitempty"`
	DisableFuture bool     `yaml:"disable_future,omitempty"`
	DisableBefore string   `yaml:"disable_before,omitempty"`
	DisableAfter  string   `yaml:"disable_after,omitempty"`
}

// DefaultPickerConfig returns the configuration written by `config init`.
func DefaultPickerConfig() PickerConfig {
	return PickerConfig{
		DisplayFormat: picker.DefaultDisplayFormat,
		Placeholder:   picker.DefaultPlaceholder,
		Theme: ThemeConfig{
			Color:         picker.DefaultThemeColor,
			DarkModeColor: picker.DefaultDarkModeColor,
		},
	}
}

// LoadPickerConfig reads path. A missing file yields the defaults.
func LoadPickerConfig(path string) (PickerConfig, error) {
	cfg := DefaultPickerConfig()

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// SavePickerConfig writes cfg to path, creating parent directories.
func SavePickerConfig(path string, cfg PickerConfig) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// Validate checks the timezone, disabled dates and boundaries.
func (c PickerConfig) Validate() error {
	loc, err := c.location()
	if err != nil {
		return err
	}

	for _, d := range c.Rules.DisabledDates {
		if _, err := picker.ParseDate(d, loc); err != nil {
			return fmt.Errorf("disabled_dates: %w", err)
		}
	}

	if _, err := parseBoundary(c.Rules.DisableBefore, loc); err != nil {
		return fmt.Errorf("disable_before: %w", err)
	}
	if _, err := parseBoundary(c.Rules.DisableAfter, loc); err != nil {
		return fmt.Errorf("disable_after: %w", err)
	}
	return nil
}

// Options converts the file form into picker options. Callbacks and runtime
// flags (disabled, error) are left for the host to set.
func (c PickerConfig) Options() (picker.Options, error) {
	loc, err := c.location()
	if err != nil {
		return picker.Options{}, err
	}

	before, err := parseBoundary(c.Rules.DisableBefore, loc)
	if err != nil {
		return picker.Options{}, fmt.Errorf("disable_before: %w", err)
	}
	after, err := parseBoundary(c.Rules.DisableAfter, loc)
	if err != nil {
		return picker.Options{}, fmt.Errorf("disable_after: %w", err)
	}

	return picker.Options{
		DisplayFormat: c.DisplayFormat,
		Placeholder:   c.Placeholder,
		ThemeColor:    c.Theme.Color,
		DarkModeColor: c.Theme.DarkModeColor,
		DarkMode:      c.Theme.DarkMode,
		DateOnly:      c.DateOnly,
		Timezone:      c.Timezone,
		Rules: picker.Rules{
			DisabledDates: append([]string(nil), c.Rules.DisabledDates...),
			DisablePast:   c.Rules.DisablePast,
			DisableFuture: c.Rules.DisableFuture,
			DisableBefore: before,
			DisableAfter:  after,
		}.Normalized(),
	}, nil
}

func (c PickerConfig) location() (*time.Location, error) {
	if c.Timezone == "" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %v", ErrInvalidTimezone, c.Timezone, err)
	}
	return loc, nil
}

func parseBoundary(s string, loc *time.Location) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := picker.ParseValue(s, loc)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidBoundary, err)
	}
	return &t, nil
}
