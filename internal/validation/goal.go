package validation

import (
	"planner/internal/domain"
)

// ValidateGoal validates a goal before it is written to the store
func ValidateGoal(goal *domain.Goal) error {
	ve := NewValidationError()

	if !IsNonEmptyString(goal.Title) {
		ve.AddRequiredError("title")
	}

	if !goal.Category.IsValid() {
		ve.AddInvalidValueError("category", string(goal.Category), "must be one of personal, professional, project")
	}

	if !goal.Timeframe.IsValid() {
		ve.AddInvalidValueError("timeframe", string(goal.Timeframe), "must be one of short-term, medium-term, long-term")
	}

	if !goal.Status.IsValid() {
		ve.AddInvalidValueError("status", string(goal.Status), "must be one of not-started, in-progress, completed, on-hold")
	}

	if !IsProgress(goal.Progress) {
		ve.AddInvalidRangeError("progress", goal.Progress, "must be between 0 and 100")
	}

	if goal.TargetDate != "" && !IsISODate(goal.TargetDate) {
		ve.AddInvalidFormatError("target_date", goal.TargetDate, "YYYY-MM-DD")
	}

	for i, milestone := range goal.Milestones {
		if !IsNonEmptyString(milestone.Title) {
			ve.AddInvalidValueError("milestones", i, "milestone title must not be empty")
		}
	}

	if ve.HasErrors() {
		return ve
	}
	return nil
}
