package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"planner/internal/domain"
)

func TestCompletionRate(t *testing.T) {
	tests := []struct {
		name     string
		tasks    []*domain.Task
		expected int
	}{
		{"empty list", nil, 0},
		{
			"one of three",
			[]*domain.Task{
				task("a", domain.TaskCompleted, domain.PriorityNormal, ""),
				task("b", domain.TaskPending, domain.PriorityNormal, ""),
				task("c", domain.TaskPending, domain.PriorityNormal, ""),
			},
			33,
		},
		{
			"two of three",
			[]*domain.Task{
				task("a", domain.TaskCompleted, domain.PriorityNormal, ""),
				task("b", domain.TaskCompleted, domain.PriorityNormal, ""),
				task("c", domain.TaskPending, domain.PriorityNormal, ""),
			},
			67,
		},
		{
			"all completed",
			[]*domain.Task{
				task("a", domain.TaskCompleted, domain.PriorityNormal, ""),
			},
			100,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CompletionRate(tt.tasks))
		})
	}
}

func TestAverageGoalProgress(t *testing.T) {
	goals := []*domain.Goal{
		{Title: "a", Status: domain.GoalInProgress, Progress: 40},
		{Title: "b", Status: domain.GoalNotStarted, Progress: 20},
		{Title: "c", Status: domain.GoalCompleted, Progress: 100}, // excluded
	}

	assert.Equal(t, 30, AverageGoalProgress(goals))
}

func TestAverageGoalProgressAllCompleted(t *testing.T) {
	goals := []*domain.Goal{
		{Title: "a", Status: domain.GoalCompleted, Progress: 100},
	}

	assert.Equal(t, 0, AverageGoalProgress(goals))
	assert.Equal(t, 0, AverageGoalProgress(nil))
}

func TestProductivityScore(t *testing.T) {
	// 1 of 2 tasks completed: rate 50. One active goal at 50%.
	// score = 50*0.4 + 50*0.4 + 1 = 41
	tasks := []*domain.Task{
		task("done", domain.TaskCompleted, domain.PriorityNormal, ""),
		task("open", domain.TaskPending, domain.PriorityNormal, ""),
	}
	goals := []*domain.Goal{
		{Title: "g", Status: domain.GoalInProgress, Progress: 50},
	}

	assert.Equal(t, 41, ProductivityScore(tasks, goals))
}

func TestProductivityScoreCaps(t *testing.T) {
	// 30 completed tasks: rate 100, completed volume capped at 20.
	// 100*0.4 + 0 + 20 = 60
	var tasks []*domain.Task
	for i := 0; i < 30; i++ {
		tasks = append(tasks, task("t", domain.TaskCompleted, domain.PriorityNormal, ""))
	}

	assert.Equal(t, 60, ProductivityScore(tasks, nil))

	// With full goal progress the blend reaches the 100 ceiling
	goals := []*domain.Goal{
		{Title: "g", Status: domain.GoalInProgress, Progress: 100},
	}
	assert.Equal(t, 100, ProductivityScore(tasks, goals))
}

func TestComputeTaskStatistics(t *testing.T) {
	tasks := []*domain.Task{
		task("a", domain.TaskPending, domain.PriorityNormal, "2025-08-20"),
		task("b", domain.TaskInProgress, domain.PriorityNormal, ""),
		task("c", domain.TaskCompleted, domain.PriorityNormal, "2025-08-20"),
		task("d", domain.TaskCancelled, domain.PriorityNormal, ""),
	}

	stats := ComputeTaskStatistics(tasks, testNow)
	assert.Equal(t, 4, stats.Total)
	assert.Equal(t, 1, stats.Pending)
	assert.Equal(t, 1, stats.InProgress)
	assert.Equal(t, 1, stats.Completed)
	assert.Equal(t, 1, stats.Cancelled)
	assert.Equal(t, 2, stats.Overdue)
}

func TestWeeklyActivity(t *testing.T) {
	monday := time.Date(2025, 8, 25, 9, 0, 0, 0, time.UTC)
	wednesday := time.Date(2025, 8, 27, 15, 0, 0, 0, time.UTC)

	tasks := []*domain.Task{
		{Title: "created monday", Status: domain.TaskPending, CreatedAt: monday, UpdatedAt: monday},
		{Title: "done wednesday", Status: domain.TaskCompleted, CreatedAt: monday, UpdatedAt: wednesday},
		{Title: "outside week", Status: domain.TaskPending,
			CreatedAt: time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC),
			UpdatedAt: time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)},
	}

	buckets := WeeklyActivity(tasks, testNow, domain.WeekStartMonday)
	require.Len(t, buckets, 7)

	assert.Equal(t, time.Monday, buckets[0].Day.Weekday())
	assert.Equal(t, 2, buckets[0].Created)
	assert.Equal(t, 0, buckets[0].Completed)

	assert.Equal(t, time.Wednesday, buckets[2].Day.Weekday())
	assert.Equal(t, 0, buckets[2].Created)
	assert.Equal(t, 1, buckets[2].Completed)
}

func TestBuildDashboard(t *testing.T) {
	tasks := []*domain.Task{
		task("due today", domain.TaskPending, domain.PriorityUrgent, "2025-08-29"),
		task("overdue", domain.TaskPending, domain.PriorityNormal, "2025-08-01"),
		task("done", domain.TaskCompleted, domain.PriorityNormal, ""),
	}
	goals := []*domain.Goal{
		{Title: "active", Status: domain.GoalInProgress, Progress: 60},
		{Title: "finished", Status: domain.GoalCompleted, Progress: 100},
	}
	events := []*domain.Event{
		{Title: "standup", Date: "2025-08-29"},
		{Title: "later", Date: "2025-09-10"},
	}

	summary := BuildDashboard(tasks, goals, events, testNow)
	assert.Equal(t, 3, summary.Stats.Total)
	assert.Equal(t, 33, summary.CompletionRate)
	assert.Equal(t, 60, summary.GoalProgress)
	require.Len(t, summary.DueToday, 1)
	assert.Equal(t, "due today", summary.DueToday[0].Title)
	require.Len(t, summary.Overdue, 1)
	assert.Equal(t, "overdue", summary.Overdue[0].Title)
	require.Len(t, summary.EventsToday, 1)
	assert.Equal(t, "standup", summary.EventsToday[0].Title)
	require.Len(t, summary.ActiveGoals, 1)
	assert.Equal(t, "active", summary.ActiveGoals[0].Title)
}

func TestCountTasksByPriority(t *testing.T) {
	tasks := []*domain.Task{
		task("a", domain.TaskPending, domain.PriorityUrgent, ""),
		task("b", domain.TaskPending, domain.PriorityUrgent, ""),
	}

	counts := CountTasksByPriority(tasks)
	assert.Equal(t, 2, counts[domain.PriorityUrgent])
	assert.Equal(t, 0, counts[domain.PriorityNormal])
	assert.Len(t, counts, 4)
}
