package domain

import "time"

// TaskPriority is the Eisenhower-matrix classification of a task.
type TaskPriority string

const (
	PriorityUrgentImportant TaskPriority = "urgent-important"
	PriorityImportant       TaskPriority = "important"
	PriorityUrgent          TaskPriority = "urgent"
	PriorityNormal          TaskPriority = "normal"
)

// TaskPriorities lists all priorities in matrix display order.
var TaskPriorities = []TaskPriority{
	PriorityUrgentImportant,
	PriorityImportant,
	PriorityUrgent,
	PriorityNormal,
}

// IsValid reports whether p is a known priority.
func (p TaskPriority) IsValid() bool {
	switch p {
	case PriorityUrgentImportant, PriorityImportant, PriorityUrgent, PriorityNormal:
		return true
	}
	return false
}

// TaskStatus is the lifecycle state of a task.
type TaskStatus string

const (
	TaskPending    TaskStatus = "pending"
	TaskInProgress TaskStatus = "in-progress"
	TaskCompleted  TaskStatus = "completed"
	TaskCancelled  TaskStatus = "cancelled"
)

// IsValid reports whether s is a known task status.
func (s TaskStatus) IsValid() bool {
	switch s {
	case TaskPending, TaskInProgress, TaskCompleted, TaskCancelled:
		return true
	}
	return false
}

// Task represents a single planner task. DueDate is an ISO calendar date
// (YYYY-MM-DD) and DueTime an HH:MM wall-clock time; both may be empty.
type Task struct {
	ID          string       `json:"id"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	DueDate     string       `json:"due_date"`
	DueTime     string       `json:"due_time"`
	Priority    TaskPriority `json:"priority"`
	Status      TaskStatus   `json:"status"`
	Category    string       `json:"category"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
}

// NewTask creates a task with the field defaults used by the create form.
func NewTask(title string) Task {
	return Task{
		Title:    title,
		Priority: PriorityNormal,
		Status:   TaskPending,
	}
}

// IsOpen reports whether the task still needs attention.
func (t Task) IsOpen() bool {
	return t.Status == TaskPending || t.Status == TaskInProgress
}

// String returns the task title for display purposes.
func (t Task) String() string {
	return t.Title
}
