package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMilestoneProgress(t *testing.T) {
	tests := []struct {
		name       string
		milestones []Milestone
		expected   int
		ok         bool
	}{
		{
			name: "none completed",
			milestones: []Milestone{
				{Title: "a"}, {Title: "b"},
			},
			expected: 0,
			ok:       true,
		},
		{
			name: "half completed",
			milestones: []Milestone{
				{Title: "a", Completed: true}, {Title: "b", Completed: true},
				{Title: "c"}, {Title: "d"},
			},
			expected: 50,
			ok:       true,
		},
		{
			name: "one of three rounds",
			milestones: []Milestone{
				{Title: "a", Completed: true}, {Title: "b"}, {Title: "c"},
			},
			expected: 33,
			ok:       true,
		},
		{
			name: "two of three rounds up",
			milestones: []Milestone{
				{Title: "a", Completed: true}, {Title: "b", Completed: true}, {Title: "c"},
			},
			expected: 67,
			ok:       true,
		},
		{
			name: "all completed",
			milestones: []Milestone{
				{Title: "a", Completed: true},
			},
			expected: 100,
			ok:       true,
		},
		{
			name:       "empty list",
			milestones: nil,
			expected:   0,
			ok:         false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			progress, ok := MilestoneProgress(tt.milestones)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.expected, progress)
		})
	}
}

func TestGoalIsActive(t *testing.T) {
	goal := NewGoal("test")
	assert.True(t, goal.IsActive())

	goal.Status = GoalCompleted
	assert.False(t, goal.IsActive())

	goal.Status = GoalOnHold
	assert.True(t, goal.IsActive())
}

func TestNewGoalDefaults(t *testing.T) {
	goal := NewGoal("Learn Go")
	assert.Equal(t, "Learn Go", goal.Title)
	assert.Equal(t, GoalPersonal, goal.Category)
	assert.Equal(t, TimeframeShort, goal.Timeframe)
	assert.Equal(t, GoalNotStarted, goal.Status)
	assert.Equal(t, 0, goal.Progress)
}
