package services

import (
	"math"
	"time"

	"planner/internal/dates"
	"planner/internal/domain"
)

// TaskStatistics summarises the task list for the dashboard header.
type TaskStatistics struct {
	Total      int
	Pending    int
	InProgress int
	Completed  int
	Cancelled  int
	Overdue    int
}

// ComputeTaskStatistics counts tasks per lifecycle state and overdue status.
func ComputeTaskStatistics(tasks []*domain.Task, now time.Time) TaskStatistics {
	stats := TaskStatistics{Total: len(tasks)}
	for _, t := range tasks {
		switch t.Status {
		case domain.TaskPending:
			stats.Pending++
		case domain.TaskInProgress:
			stats.InProgress++
		case domain.TaskCompleted:
			stats.Completed++
		case domain.TaskCancelled:
			stats.Cancelled++
		}
		if TaskOverdue(t, now) {
			stats.Overdue++
		}
	}
	return stats
}

// CompletionRate returns the percentage of tasks completed, rounded to the
// nearest integer. An empty list yields 0.
func CompletionRate(tasks []*domain.Task) int {
	if len(tasks) == 0 {
		return 0
	}
	completed := 0
	for _, t := range tasks {
		if t.Status == domain.TaskCompleted {
			completed++
		}
	}
	return int(math.Round(100 * float64(completed) / float64(len(tasks))))
}

// AverageGoalProgress returns the mean progress of goals that are not yet
// completed, rounded to the nearest integer. When every goal is completed,
// or there are none, it returns 0.
func AverageGoalProgress(goals []*domain.Goal) int {
	sum, active := 0, 0
	for _, g := range goals {
		if g.IsActive() {
			sum += g.Progress
			active++
		}
	}
	if active == 0 {
		return 0
	}
	return int(math.Round(float64(sum) / float64(active)))
}

// ProductivityScore blends task completion, goal progress and raw completed
// volume into a 0-100 score. Completed tasks contribute one point each,
// capped at 20; the final score is capped at 100.
func ProductivityScore(tasks []*domain.Task, goals []*domain.Goal) int {
	completed := 0
	for _, t := range tasks {
		if t.Status == domain.TaskCompleted {
			completed++
		}
	}
	if completed > 20 {
		completed = 20
	}

	rate := float64(CompletionRate(tasks))
	progress := float64(AverageGoalProgress(goals))
	score := int(math.Round(rate*0.4 + progress*0.4 + float64(completed)))
	if score > 100 {
		score = 100
	}
	return score
}

// CountTasksByPriority tallies tasks per priority quadrant. Every priority
// key is present even when its count is zero.
func CountTasksByPriority(tasks []*domain.Task) map[domain.TaskPriority]int {
	counts := make(map[domain.TaskPriority]int, len(domain.TaskPriorities))
	for _, p := range domain.TaskPriorities {
		counts[p] = 0
	}
	for _, t := range tasks {
		if _, ok := counts[t.Priority]; ok {
			counts[t.Priority]++
		}
	}
	return counts
}

// GoalsByCategory buckets goals per category, preserving list order within
// each bucket.
func GoalsByCategory(goals []*domain.Goal) map[domain.GoalCategory][]*domain.Goal {
	groups := make(map[domain.GoalCategory][]*domain.Goal)
	for _, g := range goals {
		groups[g.Category] = append(groups[g.Category], g)
	}
	return groups
}

// DayBucket is one column of the weekly activity chart.
type DayBucket struct {
	Day       time.Time
	Created   int
	Completed int
}

// WeeklyActivity buckets task creations and completions over the 7 days of
// the week containing now. A task counts as completed on the day it was last
// updated while in the completed state.
func WeeklyActivity(tasks []*domain.Task, now time.Time, start domain.WeekStart) []DayBucket {
	days := dates.WeekDays(now, dates.Weekday(start))
	buckets := make([]DayBucket, len(days))
	for i, day := range days {
		buckets[i].Day = day
		for _, t := range tasks {
			if dates.SameDay(t.CreatedAt, day) {
				buckets[i].Created++
			}
			if t.Status == domain.TaskCompleted && dates.SameDay(t.UpdatedAt, day) {
				buckets[i].Completed++
			}
		}
	}
	return buckets
}

// DashboardSummary is the computed state of the overview page.
type DashboardSummary struct {
	Stats          TaskStatistics
	CompletionRate int
	GoalProgress   int
	Productivity   int
	DueToday       []*domain.Task
	Overdue        []*domain.Task
	EventsToday    []*domain.Event
	ActiveGoals    []*domain.Goal
}

// BuildDashboard derives the overview page from the fetched collections.
func BuildDashboard(tasks []*domain.Task, goals []*domain.Goal, events []*domain.Event, now time.Time) DashboardSummary {
	var active []*domain.Goal
	for _, g := range goals {
		if g.IsActive() {
			active = append(active, g)
		}
	}

	return DashboardSummary{
		Stats:          ComputeTaskStatistics(tasks, now),
		CompletionRate: CompletionRate(tasks),
		GoalProgress:   AverageGoalProgress(goals),
		Productivity:   ProductivityScore(tasks, goals),
		DueToday:       TasksDueToday(tasks, now),
		Overdue:        OverdueTasks(tasks, now),
		EventsToday:    EventsOn(events, now),
		ActiveGoals:    active,
	}
}
