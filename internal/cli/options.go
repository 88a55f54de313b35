package cli

import (
	"fmt"

	"github.com/MikeBiancalana/dtpick/internal/config"
	"github.com/MikeBiancalana/dtpick/internal/picker"
)

// pickerFlags holds the persistent flags that override config.yaml
type pickerFlags struct {
	format        string
	placeholder   string
	themeColor    string
	timezone      string
	disableBefore string
	disableAfter  string
	disabledDates []string
	dateOnly      bool
	dark          bool
	disablePast   bool
	disableFuture bool
}

var flags pickerFlags

// apply overlays every flag the user set on opts. changed reports whether a
// flag was given on the command line.
func (f pickerFlags) apply(opts picker.Options, changed func(string) bool) (picker.Options, error) {
	if changed("format") {
		opts.DisplayFormat = f.format
	}
	if changed("placeholder") {
		opts.Placeholder = f.placeholder
	}
	if changed("theme-color") {
		opts.ThemeColor = f.themeColor
	}
	if changed("dark") {
		opts.DarkMode = f.dark
	}
	if changed("date-only") {
		opts.DateOnly = f.dateOnly
	}
	if changed("tz") {
		opts.Timezone = f.timezone
	}

	loc, err := opts.Location()
	if err != nil {
		return opts, fmt.Errorf("%w %q", config.ErrInvalidTimezone, opts.Timezone)
	}

	rules := opts.Rules.Clone()
	if changed("disable-past") {
		rules.DisablePast = f.disablePast
	}
	if changed("disable-future") {
		rules.DisableFuture = f.disableFuture
	}
	if changed("disabled-date") {
		for _, d := range f.disabledDates {
			if _, err := picker.ParseDate(d, loc); err != nil {
				return opts, fmt.Errorf("--disabled-date: %w", err)
			}
		}
		rules.DisabledDates = append(rules.DisabledDates, f.disabledDates...)
	}
	if changed("disable-before") {
		t, err := picker.ParseValue(f.disableBefore, loc)
		if err != nil {
			return opts, fmt.Errorf("--disable-before: %w", err)
		}
		rules.DisableBefore = &t
	}
	if changed("disable-after") {
		t, err := picker.ParseValue(f.disableAfter, loc)
		if err != nil {
			return opts, fmt.Errorf("--disable-after: %w", err)
		}
		rules.DisableAfter = &t
	}
	opts.Rules = rules.Normalized()

	return opts, nil
}

// loadConfig reads the picker config file
func loadConfig() (config.PickerConfig, string, error) {
	path, err := config.ConfigPath()
	if err != nil {
		return config.PickerConfig{}, "", fmt.Errorf("failed to get config path: %w", err)
	}

	cfg, err := config.LoadPickerConfig(path)
	if err != nil {
		return cfg, path, err
	}
	return cfg, path, nil
}

// resolveOptions merges config.yaml with the command line
func resolveOptions(changed func(string) bool) (picker.Options, error) {
	cfg, _, err := loadConfig()
	if err != nil {
		return picker.Options{}, err
	}

	opts, err := cfg.Options()
	if err != nil {
		return picker.Options{}, err
	}

	return flags.apply(opts, changed)
}
