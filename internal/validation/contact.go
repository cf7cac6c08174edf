package validation

import (
	"strings"

	"planner/internal/domain"
)

// ValidateContact validates a contact before it is written to the store
func ValidateContact(contact *domain.Contact) error {
	ve := NewValidationError()

	if !IsNonEmptyString(contact.Name) {
		ve.AddRequiredError("name")
	}

	if !contact.Category.IsValid() {
		ve.AddInvalidValueError("category", string(contact.Category), "must be one of client, colleague, vendor, partner, personal, other")
	}

	if contact.Email != "" && !strings.Contains(contact.Email, "@") {
		ve.AddInvalidFormatError("email", contact.Email, "name@example.com")
	}

	if ve.HasErrors() {
		return ve
	}
	return nil
}
