package services

import (
	"fmt"

	"planner/internal/domain"
	"planner/internal/errors"
)

// ToggleMilestone flips the completion flag of the milestone at index and
// recomputes the goal's progress and status from the new milestone ratio.
// The input goal is not modified.
//
// Status follows progress: 100 marks the goal completed, anything above zero
// marks it in-progress, and zero leaves the prior status alone. Statuses set
// directly through an edit are never reconciled here.
func ToggleMilestone(goal domain.Goal, index int) (domain.Goal, error) {
	if index < 0 || index >= len(goal.Milestones) {
		return goal, errors.NewValidationError(
			fmt.Sprintf("milestone index %d out of range for goal with %d milestones", index, len(goal.Milestones)), nil)
	}

	milestones := append([]domain.Milestone{}, goal.Milestones...)
	milestones[index].Completed = !milestones[index].Completed
	goal.Milestones = milestones

	if progress, ok := domain.MilestoneProgress(milestones); ok {
		goal.Progress = progress
		switch {
		case progress == 100:
			goal.Status = domain.GoalCompleted
		case progress > 0:
			goal.Status = domain.GoalInProgress
		}
	}

	return goal, nil
}

// ProgressStatusDiverged reports whether a goal's stored status disagrees
// with its milestone-derived progress. Divergence is legal; this exists only
// so views can flag it.
func ProgressStatusDiverged(goal domain.Goal) bool {
	progress, ok := domain.MilestoneProgress(goal.Milestones)
	if !ok {
		return false
	}
	switch {
	case progress == 100:
		return goal.Status != domain.GoalCompleted
	case progress > 0:
		return goal.Status != domain.GoalInProgress && goal.Status != domain.GoalOnHold
	default:
		return false
	}
}
