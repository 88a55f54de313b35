package picker

import (
	"time"
)

const (
	DefaultPlaceholder   = "Select date and time"
	DefaultThemeColor    = "#007AFF"
	DefaultDarkModeColor = "#1C1C1E"
)

// Options configures a Picker. The host replaces it wholesale; the picker
// never mutates the caller's copy.
type Options struct {
	DisplayFormat string
	Placeholder   string
	ThemeColor    string
	DarkModeColor string
	DarkMode      bool
	DateOnly      bool
	Disabled      bool

	// Error marks the input as invalid and ErrorMessage is shown beneath it.
	Error        bool
	ErrorMessage string

	// Timezone is an IANA identifier. Empty means the local zone.
	Timezone string

	Rules Rules

	// OnChange receives every confirmed value.
	OnChange func(value string)
	// OnPress fires whenever the modal opens.
	OnPress func()
}

// DefaultOptions returns options with every default filled in.
func DefaultOptions() Options {
	return Options{}.withDefaults()
}

func (o Options) withDefaults() Options {
	if o.DisplayFormat == "" {
		o.DisplayFormat = DefaultDisplayFormat
	}
	if o.Placeholder == "" {
		o.Placeholder = DefaultPlaceholder
	}
	if o.ThemeColor == "" {
		o.ThemeColor = DefaultThemeColor
	}
	if o.DarkModeColor == "" {
		o.DarkModeColor = DefaultDarkModeColor
	}
	o.Rules = o.Rules.Normalized()
	return o
}

// EffectiveFormat is the layout used for the input and the modal header.
func (o Options) EffectiveFormat() string {
	if o.DateOnly {
		return DateOnlyDisplayFormat
	}
	if o.DisplayFormat == "" {
		return DefaultDisplayFormat
	}
	return o.DisplayFormat
}

// Location resolves Timezone. An empty timezone yields time.Local.
func (o Options) Location() (*time.Location, error) {
	if o.Timezone == "" {
		return time.Local, nil
	}
	return time.LoadLocation(o.Timezone)
}
