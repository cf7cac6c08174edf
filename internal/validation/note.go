package validation

import (
	"planner/internal/domain"
)

// ValidateNote validates a note before it is written to the store
func ValidateNote(note *domain.Note) error {
	ve := NewValidationError()

	if !IsNonEmptyString(note.Title) {
		ve.AddRequiredError("title")
	}

	if note.Color != "" && !IsHexColor(note.Color) {
		ve.AddInvalidFormatError("color", note.Color, "#rrggbb")
	}

	if ve.HasErrors() {
		return ve
	}
	return nil
}
