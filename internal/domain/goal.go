package domain

import (
	"math"
	"time"
)

// GoalCategory groups goals for tab filtering and category charts.
type GoalCategory string

const (
	GoalPersonal     GoalCategory = "personal"
	GoalProfessional GoalCategory = "professional"
	GoalProject      GoalCategory = "project"
)

// IsValid reports whether c is a known goal category.
func (c GoalCategory) IsValid() bool {
	switch c {
	case GoalPersonal, GoalProfessional, GoalProject:
		return true
	}
	return false
}

// GoalTimeframe is the planning horizon of a goal.
type GoalTimeframe string

const (
	TimeframeShort  GoalTimeframe = "short-term"
	TimeframeMedium GoalTimeframe = "medium-term"
	TimeframeLong   GoalTimeframe = "long-term"
)

// IsValid reports whether f is a known timeframe.
func (f GoalTimeframe) IsValid() bool {
	switch f {
	case TimeframeShort, TimeframeMedium, TimeframeLong:
		return true
	}
	return false
}

// GoalStatus is the lifecycle state of a goal.
type GoalStatus string

const (
	GoalNotStarted GoalStatus = "not-started"
	GoalInProgress GoalStatus = "in-progress"
	GoalCompleted  GoalStatus = "completed"
	GoalOnHold     GoalStatus = "on-hold"
)

// IsValid reports whether s is a known goal status.
func (s GoalStatus) IsValid() bool {
	switch s {
	case GoalNotStarted, GoalInProgress, GoalCompleted, GoalOnHold:
		return true
	}
	return false
}

// Milestone is a named sub-step of a goal with a completion flag.
type Milestone struct {
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
}

// Goal represents an objective with either manually set progress or progress
// derived from its milestone completion ratio. TargetDate is an ISO calendar
// date (YYYY-MM-DD) and may be empty.
type Goal struct {
	ID          string        `json:"id"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Category    GoalCategory  `json:"category"`
	Timeframe   GoalTimeframe `json:"timeframe"`
	TargetDate  string        `json:"target_date"`
	Status      GoalStatus    `json:"status"`
	Progress    int           `json:"progress"`
	Milestones  []Milestone   `json:"milestones"`
	CreatedAt   time.Time     `json:"created_at"`
}

// NewGoal creates a goal with the field defaults used by the create form.
func NewGoal(title string) Goal {
	return Goal{
		Title:     title,
		Category:  GoalPersonal,
		Timeframe: TimeframeShort,
		Status:    GoalNotStarted,
	}
}

// IsActive reports whether the goal counts toward active-goal statistics.
func (g Goal) IsActive() bool {
	return g.Status != GoalCompleted
}

// MilestoneProgress computes the completion percentage of a milestone list,
// rounded to the nearest integer. ok is false when the list is empty, in
// which case the caller must leave the stored progress untouched.
func MilestoneProgress(milestones []Milestone) (progress int, ok bool) {
	if len(milestones) == 0 {
		return 0, false
	}
	completed := 0
	for _, m := range milestones {
		if m.Completed {
			completed++
		}
	}
	return int(math.Round(100 * float64(completed) / float64(len(milestones)))), true
}
