// Package services contains the pure derivation helpers the planner views
// are built from: filtering, searching, sorting, aggregation and the form
// workflow. Nothing here touches the store; every function takes fetched
// collections and returns derived values.
package services

import (
	"sort"
	"strings"
	"time"

	"planner/internal/dates"
	"planner/internal/domain"
)

// TasksByStatus returns the tasks matching a single status, preserving list
// order.
func TasksByStatus(tasks []*domain.Task, status domain.TaskStatus) []*domain.Task {
	var out []*domain.Task
	for _, t := range tasks {
		if t.Status == status {
			out = append(out, t)
		}
	}
	return out
}

// OpenTasks returns the pending and in-progress tasks. This is the "pending"
// tab of the task list.
func OpenTasks(tasks []*domain.Task) []*domain.Task {
	var out []*domain.Task
	for _, t := range tasks {
		if t.IsOpen() {
			out = append(out, t)
		}
	}
	return out
}

// TasksByPriority returns the tasks with the given priority, preserving list
// order.
func TasksByPriority(tasks []*domain.Task, priority domain.TaskPriority) []*domain.Task {
	var out []*domain.Task
	for _, t := range tasks {
		if t.Priority == priority {
			out = append(out, t)
		}
	}
	return out
}

// TasksDueOn returns the tasks whose due date falls on the given day.
// Tasks without a due date never match.
func TasksDueOn(tasks []*domain.Task, day time.Time) []*domain.Task {
	var out []*domain.Task
	for _, t := range tasks {
		d, err := dates.Parse(t.DueDate)
		if err != nil {
			continue
		}
		if dates.SameDay(d, day) {
			out = append(out, t)
		}
	}
	return out
}

// TasksDueToday returns the tasks due on now's calendar day.
func TasksDueToday(tasks []*domain.Task, now time.Time) []*domain.Task {
	return TasksDueOn(tasks, now)
}

// TaskOverdue reports whether a task's due date is strictly before today and
// the task is not completed. Tasks without a due date are never overdue.
func TaskOverdue(task *domain.Task, now time.Time) bool {
	if task.Status == domain.TaskCompleted {
		return false
	}
	d, err := dates.Parse(task.DueDate)
	if err != nil {
		return false
	}
	return dates.IsPastDay(d, now)
}

// OverdueTasks returns the unfinished tasks whose due date has passed.
func OverdueTasks(tasks []*domain.Task, now time.Time) []*domain.Task {
	var out []*domain.Task
	for _, t := range tasks {
		if TaskOverdue(t, now) {
			out = append(out, t)
		}
	}
	return out
}

// GroupTasksByPriority buckets tasks into the four priority quadrants,
// preserving list order within each bucket. Every priority key is present
// even when its bucket is empty.
func GroupTasksByPriority(tasks []*domain.Task) map[domain.TaskPriority][]*domain.Task {
	groups := make(map[domain.TaskPriority][]*domain.Task, len(domain.TaskPriorities))
	for _, p := range domain.TaskPriorities {
		groups[p] = []*domain.Task{}
	}
	for _, t := range tasks {
		if _, ok := groups[t.Priority]; ok {
			groups[t.Priority] = append(groups[t.Priority], t)
		}
	}
	return groups
}

// DueDateLabel renders a task due date for display: Today, Tomorrow, Overdue
// for past unfinished work, otherwise a short month-day form. Empty when the
// task has no due date.
func DueDateLabel(task *domain.Task, now time.Time) string {
	d, err := dates.Parse(task.DueDate)
	if err != nil {
		return ""
	}
	switch {
	case dates.IsToday(d, now):
		return "Today"
	case dates.IsTomorrow(d, now):
		return "Tomorrow"
	case TaskOverdue(task, now):
		return "Overdue"
	default:
		return d.Format("Jan 2")
	}
}

// EventsOn returns the events scheduled on the given day, preserving list
// order.
func EventsOn(events []*domain.Event, day time.Time) []*domain.Event {
	var out []*domain.Event
	for _, e := range events {
		d, err := dates.Parse(e.Date)
		if err != nil {
			continue
		}
		if dates.SameDay(d, day) {
			out = append(out, e)
		}
	}
	return out
}

// EventsBetween returns the events falling on any day from start through end
// inclusive.
func EventsBetween(events []*domain.Event, start, end time.Time) []*domain.Event {
	first, last := dates.Day(start), dates.Day(end)
	var out []*domain.Event
	for _, e := range events {
		d, err := dates.Parse(e.Date)
		if err != nil {
			continue
		}
		day := dates.Day(d)
		if !day.Before(first) && !day.After(last) {
			out = append(out, e)
		}
	}
	return out
}

// EventsByType returns the events of a single type, preserving list order.
func EventsByType(events []*domain.Event, eventType domain.EventType) []*domain.Event {
	var out []*domain.Event
	for _, e := range events {
		if e.EventType == eventType {
			out = append(out, e)
		}
	}
	return out
}

// SearchNotes returns the notes whose title, content or any tag contains the
// query, case-insensitively. An empty query matches everything.
func SearchNotes(notes []*domain.Note, query string) []*domain.Note {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return notes
	}
	var out []*domain.Note
	for _, n := range notes {
		if strings.Contains(strings.ToLower(n.Title), q) ||
			strings.Contains(strings.ToLower(n.Content), q) ||
			anyTagContains(n.Tags, q) {
			out = append(out, n)
		}
	}
	return out
}

func anyTagContains(tags []string, q string) bool {
	for _, tag := range tags {
		if strings.Contains(strings.ToLower(tag), q) {
			return true
		}
	}
	return false
}

// NotesByCategory returns the notes in a category, preserving list order.
func NotesByCategory(notes []*domain.Note, category string) []*domain.Note {
	var out []*domain.Note
	for _, n := range notes {
		if n.Category == category {
			out = append(out, n)
		}
	}
	return out
}

// PinnedNotes returns the pinned notes, preserving list order.
func PinnedNotes(notes []*domain.Note) []*domain.Note {
	var out []*domain.Note
	for _, n := range notes {
		if n.IsPinned {
			out = append(out, n)
		}
	}
	return out
}

// SortNotes orders notes pinned-first, then newest-first. The input is not
// modified.
func SortNotes(notes []*domain.Note) []*domain.Note {
	out := append([]*domain.Note{}, notes...)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].IsPinned != out[j].IsPinned {
			return out[i].IsPinned
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

// SearchContacts returns the contacts whose name, company, email or phone
// contains the query, case-insensitively. An empty query matches everything.
func SearchContacts(contacts []*domain.Contact, query string) []*domain.Contact {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return contacts
	}
	var out []*domain.Contact
	for _, c := range contacts {
		if strings.Contains(strings.ToLower(c.Name), q) ||
			strings.Contains(strings.ToLower(c.Company), q) ||
			strings.Contains(strings.ToLower(c.Email), q) ||
			strings.Contains(strings.ToLower(c.Phone), q) {
			out = append(out, c)
		}
	}
	return out
}

// ContactsByCategory returns the contacts in a category, preserving list
// order.
func ContactsByCategory(contacts []*domain.Contact, category domain.ContactCategory) []*domain.Contact {
	var out []*domain.Contact
	for _, c := range contacts {
		if c.Category == category {
			out = append(out, c)
		}
	}
	return out
}

// FavoriteContacts returns the favorite contacts, preserving list order.
func FavoriteContacts(contacts []*domain.Contact) []*domain.Contact {
	var out []*domain.Contact
	for _, c := range contacts {
		if c.IsFavorite {
			out = append(out, c)
		}
	}
	return out
}

// SortContacts orders contacts favorites-first, then by name
// case-insensitively. The input is not modified.
func SortContacts(contacts []*domain.Contact) []*domain.Contact {
	out := append([]*domain.Contact{}, contacts...)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].IsFavorite != out[j].IsFavorite {
			return out[i].IsFavorite
		}
		return strings.ToLower(out[i].Name) < strings.ToLower(out[j].Name)
	})
	return out
}
