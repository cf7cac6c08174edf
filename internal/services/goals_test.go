package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"planner/internal/domain"
)

func TestToggleMilestoneRecomputesProgress(t *testing.T) {
	goal := domain.NewGoal("four steps")
	goal.Milestones = []domain.Milestone{
		{Title: "a", Completed: true},
		{Title: "b"},
		{Title: "c"},
		{Title: "d"},
	}
	goal.Progress = 25
	goal.Status = domain.GoalInProgress

	toggled, err := ToggleMilestone(goal, 1)
	require.NoError(t, err)
	assert.True(t, toggled.Milestones[1].Completed)
	assert.Equal(t, 50, toggled.Progress)
	assert.Equal(t, domain.GoalInProgress, toggled.Status)

	// The input goal is untouched
	assert.False(t, goal.Milestones[1].Completed)
	assert.Equal(t, 25, goal.Progress)
}

func TestToggleMilestoneCompletesGoal(t *testing.T) {
	goal := domain.NewGoal("almost done")
	goal.Milestones = []domain.Milestone{
		{Title: "a", Completed: true},
		{Title: "b"},
	}
	goal.Progress = 50
	goal.Status = domain.GoalInProgress

	toggled, err := ToggleMilestone(goal, 1)
	require.NoError(t, err)
	assert.Equal(t, 100, toggled.Progress)
	assert.Equal(t, domain.GoalCompleted, toggled.Status)
}

func TestToggleMilestoneBackToZeroKeepsStatus(t *testing.T) {
	goal := domain.NewGoal("undo the only step")
	goal.Milestones = []domain.Milestone{{Title: "a", Completed: true}}
	goal.Progress = 100
	goal.Status = domain.GoalOnHold

	toggled, err := ToggleMilestone(goal, 0)
	require.NoError(t, err)
	assert.Equal(t, 0, toggled.Progress)
	// Zero progress leaves the prior status alone
	assert.Equal(t, domain.GoalOnHold, toggled.Status)
}

func TestToggleMilestoneOutOfRange(t *testing.T) {
	goal := domain.NewGoal("one step")
	goal.Milestones = []domain.Milestone{{Title: "a"}}

	_, err := ToggleMilestone(goal, 1)
	assert.Error(t, err)

	_, err = ToggleMilestone(goal, -1)
	assert.Error(t, err)

	empty := domain.NewGoal("no steps")
	_, err = ToggleMilestone(empty, 0)
	assert.Error(t, err)
}

func TestProgressStatusDiverged(t *testing.T) {
	tests := []struct {
		name     string
		status   domain.GoalStatus
		done     int
		total    int
		diverged bool
	}{
		{"all done but in progress", domain.GoalInProgress, 2, 2, true},
		{"all done and completed", domain.GoalCompleted, 2, 2, false},
		{"partial and in progress", domain.GoalInProgress, 1, 2, false},
		{"partial and on hold", domain.GoalOnHold, 1, 2, false},
		{"partial but not started", domain.GoalNotStarted, 1, 2, true},
		{"nothing done", domain.GoalNotStarted, 0, 2, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			goal := domain.NewGoal("g")
			goal.Status = tt.status
			for i := 0; i < tt.total; i++ {
				goal.Milestones = append(goal.Milestones, domain.Milestone{
					Title:     "m",
					Completed: i < tt.done,
				})
			}
			assert.Equal(t, tt.diverged, ProgressStatusDiverged(goal))
		})
	}
}

func TestProgressStatusDivergedNoMilestones(t *testing.T) {
	goal := domain.NewGoal("manual progress only")
	goal.Progress = 80
	goal.Status = domain.GoalNotStarted
	assert.False(t, ProgressStatusDiverged(goal))
}
