package validation

import (
	"planner/internal/domain"
)

// ValidateTask validates a task before it is written to the store
func ValidateTask(task *domain.Task) error {
	ve := NewValidationError()

	if !IsNonEmptyString(task.Title) {
		ve.AddRequiredError("title")
	}

	if !task.Priority.IsValid() {
		ve.AddInvalidValueError("priority", string(task.Priority), "must be one of urgent-important, important, urgent, normal")
	}

	if !task.Status.IsValid() {
		ve.AddInvalidValueError("status", string(task.Status), "must be one of pending, in-progress, completed, cancelled")
	}

	if task.DueDate != "" && !IsISODate(task.DueDate) {
		ve.AddInvalidFormatError("due_date", task.DueDate, "YYYY-MM-DD")
	}

	if task.DueTime != "" && !IsClockTime(task.DueTime) {
		ve.AddInvalidFormatError("due_time", task.DueTime, "HH:MM")
	}

	if ve.HasErrors() {
		return ve
	}
	return nil
}
