package domain

// Default branding and preference values applied when the settings row is
// absent or a field is empty.
const (
	DefaultPrimaryColor = "#1e3a5f"
	DefaultAccentColor  = "#c9a962"
	DefaultTheme        = "classic"
	DefaultTimeFormat   = "12h"
	DefaultDateFormat   = "MM/DD/YYYY"
)

// WeekStart names the first day of the week for calendar layouts.
type WeekStart string

const (
	WeekStartSunday WeekStart = "sunday"
	WeekStartMonday WeekStart = "monday"
)

// IsValid reports whether w is a known week start.
func (w WeekStart) IsValid() bool {
	return w == WeekStartSunday || w == WeekStartMonday
}

// PlannerSettings is the branding/preferences singleton. At most one row is
// ever read; absence of a row means "use defaults". Consumers must never
// assume the row exists.
type PlannerSettings struct {
	ID           string    `json:"id"`
	CompanyName  string    `json:"company_name"`
	LogoURL      string    `json:"logo_url"`
	Slogan       string    `json:"slogan"`
	PrimaryColor string    `json:"primary_color"`
	AccentColor  string    `json:"accent_color"`
	Theme        string    `json:"theme"`
	WeekStartsOn WeekStart `json:"week_starts_on"`
	TimeFormat   string    `json:"time_format"`
	DateFormat   string    `json:"date_format"`
}

// DefaultSettings returns the settings used when no row has been stored.
func DefaultSettings() PlannerSettings {
	return PlannerSettings{
		PrimaryColor: DefaultPrimaryColor,
		AccentColor:  DefaultAccentColor,
		Theme:        DefaultTheme,
		WeekStartsOn: WeekStartMonday,
		TimeFormat:   DefaultTimeFormat,
		DateFormat:   DefaultDateFormat,
	}
}

// WithDefaults fills any empty field from the defaults, per-field, so a
// partially populated row still renders sensibly.
func (s PlannerSettings) WithDefaults() PlannerSettings {
	d := DefaultSettings()
	if s.PrimaryColor == "" {
		s.PrimaryColor = d.PrimaryColor
	}
	if s.AccentColor == "" {
		s.AccentColor = d.AccentColor
	}
	if s.Theme == "" {
		s.Theme = d.Theme
	}
	if s.WeekStartsOn == "" {
		s.WeekStartsOn = d.WeekStartsOn
	}
	if s.TimeFormat == "" {
		s.TimeFormat = d.TimeFormat
	}
	if s.DateFormat == "" {
		s.DateFormat = d.DateFormat
	}
	return s
}
