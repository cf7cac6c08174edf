package validation

import (
	"regexp"
	"strings"

	"planner/internal/dates"
)

var (
	hexColorRegex = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)
	clockRegex    = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)
)

// IsNonEmptyString checks that a string contains at least one non-whitespace character
func IsNonEmptyString(value string) bool {
	return strings.TrimSpace(value) != ""
}

// IsHexColor checks that a string is a #rrggbb hex color
func IsHexColor(value string) bool {
	return hexColorRegex.MatchString(value)
}

// IsISODate checks that a string is a valid YYYY-MM-DD calendar date
func IsISODate(value string) bool {
	_, err := dates.Parse(value)
	return err == nil
}

// IsClockTime checks that a string is a valid 24-hour HH:MM time
func IsClockTime(value string) bool {
	return clockRegex.MatchString(value)
}

// IsProgress checks that a value is a valid percentage between 0 and 100
func IsProgress(value int) bool {
	return value >= 0 && value <= 100
}
