package validation

import (
	"planner/internal/domain"
)

// ValidateEvent validates an event before it is written to the store
func ValidateEvent(event *domain.Event) error {
	ve := NewValidationError()

	if !IsNonEmptyString(event.Title) {
		ve.AddRequiredError("title")
	}

	if event.Date == "" {
		ve.AddRequiredError("date")
	} else if !IsISODate(event.Date) {
		ve.AddInvalidFormatError("date", event.Date, "YYYY-MM-DD")
	}

	if !event.EventType.IsValid() {
		ve.AddInvalidValueError("event_type", string(event.EventType), "must be one of meeting, deadline, reminder, holiday, company-event, personal")
	}

	if event.StartTime != "" && !IsClockTime(event.StartTime) {
		ve.AddInvalidFormatError("start_time", event.StartTime, "HH:MM")
	}

	if event.EndTime != "" && !IsClockTime(event.EndTime) {
		ve.AddInvalidFormatError("end_time", event.EndTime, "HH:MM")
	}

	if event.Color != "" && !IsHexColor(event.Color) {
		ve.AddInvalidFormatError("color", event.Color, "#rrggbb")
	}

	if ve.HasErrors() {
		return ve
	}
	return nil
}
