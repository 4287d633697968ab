package locale

import (
	"fmt"
	"strings"
)

// Resolved is the locale the detection pipeline settled on. It starts at
// the defaults and is overwritten whenever a later signal resolves, so
// the last signal to resolve wins.
type Resolved struct {
	// Country is the ISO 3166-1 alpha-2 country code.
	Country string
	// Language is the ISO 639-1 language code.
	Language string
	// Timezone is the IANA timezone name.
	Timezone string
}

const (
	// DefaultCountry is used when no signal resolves.
	DefaultCountry = "US"
	// DefaultLanguage is used when no signal resolves.
	DefaultLanguage = "en"
	// DefaultTimezone is used when no signal resolves.
	DefaultTimezone = "America/New_York"
)

// DefaultResolved returns the hard-coded fallback locale.
func DefaultResolved() Resolved {
	return Resolved{
		Country:  DefaultCountry,
		Language: DefaultLanguage,
		Timezone: DefaultTimezone,
	}
}

// FromProfile converts a table row into a resolved locale.
func FromProfile(p Profile) Resolved {
	return Resolved{
		Country:  p.Country,
		Language: p.Language,
		Timezone: p.Timezone,
	}
}

// Locale returns the POSIX locale string, e.g. "de_DE.UTF-8".
func (r Resolved) Locale() string {
	return fmt.Sprintf("%s_%s.UTF-8", r.Language, r.Country)
}

// Layout returns the keyboard layout name derived from the country code.
func (r Resolved) Layout() string {
	return strings.ToLower(r.Country)
}
