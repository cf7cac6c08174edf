package validation

import (
	"planner/internal/domain"
)

// ValidateSettings validates the branding/preferences singleton before it is
// written to the store. Empty fields are allowed; defaults fill them on read.
func ValidateSettings(settings *domain.PlannerSettings) error {
	ve := NewValidationError()

	if settings.PrimaryColor != "" && !IsHexColor(settings.PrimaryColor) {
		ve.AddInvalidFormatError("primary_color", settings.PrimaryColor, "#rrggbb")
	}

	if settings.AccentColor != "" && !IsHexColor(settings.AccentColor) {
		ve.AddInvalidFormatError("accent_color", settings.AccentColor, "#rrggbb")
	}

	if settings.WeekStartsOn != "" && !settings.WeekStartsOn.IsValid() {
		ve.AddInvalidValueError("week_starts_on", string(settings.WeekStartsOn), "must be sunday or monday")
	}

	if settings.TimeFormat != "" && settings.TimeFormat != "12h" && settings.TimeFormat != "24h" {
		ve.AddInvalidValueError("time_format", settings.TimeFormat, "must be 12h or 24h")
	}

	if ve.HasErrors() {
		return ve
	}
	return nil
}
