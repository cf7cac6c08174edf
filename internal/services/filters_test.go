package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"planner/internal/domain"
)

var testNow = time.Date(2025, 8, 29, 10, 0, 0, 0, time.UTC) // a Friday

func task(title string, status domain.TaskStatus, priority domain.TaskPriority, dueDate string) *domain.Task {
	return &domain.Task{
		Title:    title,
		Status:   status,
		Priority: priority,
		DueDate:  dueDate,
	}
}

func TestOpenTasks(t *testing.T) {
	tasks := []*domain.Task{
		task("a", domain.TaskPending, domain.PriorityNormal, ""),
		task("b", domain.TaskInProgress, domain.PriorityNormal, ""),
		task("c", domain.TaskCompleted, domain.PriorityNormal, ""),
		task("d", domain.TaskCancelled, domain.PriorityNormal, ""),
	}

	open := OpenTasks(tasks)
	require.Len(t, open, 2)
	assert.Equal(t, "a", open[0].Title)
	assert.Equal(t, "b", open[1].Title)
}

func TestTasksDueToday(t *testing.T) {
	tasks := []*domain.Task{
		task("today", domain.TaskPending, domain.PriorityNormal, "2025-08-29"),
		task("tomorrow", domain.TaskPending, domain.PriorityNormal, "2025-08-30"),
		task("no due date", domain.TaskPending, domain.PriorityNormal, ""),
	}

	due := TasksDueToday(tasks, testNow)
	require.Len(t, due, 1)
	assert.Equal(t, "today", due[0].Title)
}

func TestTaskOverdue(t *testing.T) {
	tests := []struct {
		name    string
		task    *domain.Task
		overdue bool
	}{
		{"past and pending", task("a", domain.TaskPending, domain.PriorityNormal, "2025-08-28"), true},
		{"past but completed", task("b", domain.TaskCompleted, domain.PriorityNormal, "2025-08-28"), false},
		{"due today is not overdue", task("c", domain.TaskPending, domain.PriorityNormal, "2025-08-29"), false},
		{"future", task("d", domain.TaskPending, domain.PriorityNormal, "2025-09-05"), false},
		{"no due date", task("e", domain.TaskPending, domain.PriorityNormal, ""), false},
		{"past and cancelled", task("f", domain.TaskCancelled, domain.PriorityNormal, "2025-08-01"), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.overdue, TaskOverdue(tt.task, testNow))
		})
	}
}

func TestGroupTasksByPriority(t *testing.T) {
	tasks := []*domain.Task{
		task("a", domain.TaskPending, domain.PriorityUrgentImportant, ""),
		task("b", domain.TaskPending, domain.PriorityNormal, ""),
		task("c", domain.TaskPending, domain.PriorityUrgentImportant, ""),
	}

	groups := GroupTasksByPriority(tasks)
	require.Len(t, groups, 4)
	assert.Len(t, groups[domain.PriorityUrgentImportant], 2)
	assert.Len(t, groups[domain.PriorityNormal], 1)
	assert.Empty(t, groups[domain.PriorityImportant])
	assert.Empty(t, groups[domain.PriorityUrgent])
	assert.Equal(t, "a", groups[domain.PriorityUrgentImportant][0].Title)
}

func TestDueDateLabel(t *testing.T) {
	tests := []struct {
		name     string
		task     *domain.Task
		expected string
	}{
		{"today", task("a", domain.TaskPending, domain.PriorityNormal, "2025-08-29"), "Today"},
		{"tomorrow", task("b", domain.TaskPending, domain.PriorityNormal, "2025-08-30"), "Tomorrow"},
		{"overdue", task("c", domain.TaskPending, domain.PriorityNormal, "2025-08-20"), "Overdue"},
		{"past but completed", task("d", domain.TaskCompleted, domain.PriorityNormal, "2025-08-20"), "Aug 20"},
		{"future", task("e", domain.TaskPending, domain.PriorityNormal, "2025-12-25"), "Dec 25"},
		{"no due date", task("f", domain.TaskPending, domain.PriorityNormal, ""), ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, DueDateLabel(tt.task, testNow))
		})
	}
}

func TestEventsOnAndBetween(t *testing.T) {
	events := []*domain.Event{
		{Title: "early", Date: "2025-08-25"},
		{Title: "mid", Date: "2025-08-27"},
		{Title: "late", Date: "2025-08-31"},
		{Title: "bad date", Date: "not-a-date"},
	}

	on := EventsOn(events, time.Date(2025, 8, 27, 0, 0, 0, 0, time.UTC))
	require.Len(t, on, 1)
	assert.Equal(t, "mid", on[0].Title)

	between := EventsBetween(events,
		time.Date(2025, 8, 25, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 8, 27, 0, 0, 0, 0, time.UTC))
	require.Len(t, between, 2)
	assert.Equal(t, "early", between[0].Title)
	assert.Equal(t, "mid", between[1].Title)
}

func TestSearchNotes(t *testing.T) {
	notes := []*domain.Note{
		{Title: "Shopping list", Content: "milk, eggs"},
		{Title: "Meeting", Content: "Discuss the Q3 roadmap"},
		{Title: "Ideas", Tags: []string{"golang", "planner"}},
	}

	assert.Len(t, SearchNotes(notes, ""), 3)

	byTitle := SearchNotes(notes, "shopping")
	require.Len(t, byTitle, 1)
	assert.Equal(t, "Shopping list", byTitle[0].Title)

	byContent := SearchNotes(notes, "ROADMAP")
	require.Len(t, byContent, 1)
	assert.Equal(t, "Meeting", byContent[0].Title)

	byTag := SearchNotes(notes, "golang")
	require.Len(t, byTag, 1)
	assert.Equal(t, "Ideas", byTag[0].Title)

	assert.Empty(t, SearchNotes(notes, "nothing matches this"))
}

func TestSortNotesPinnedFirstThenNewest(t *testing.T) {
	old := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	newer := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	notes := []*domain.Note{
		{Title: "old unpinned", CreatedAt: old},
		{Title: "new unpinned", CreatedAt: newer},
		{Title: "old pinned", IsPinned: true, CreatedAt: old},
		{Title: "new pinned", IsPinned: true, CreatedAt: newer},
	}

	sorted := SortNotes(notes)
	require.Len(t, sorted, 4)
	assert.Equal(t, "new pinned", sorted[0].Title)
	assert.Equal(t, "old pinned", sorted[1].Title)
	assert.Equal(t, "new unpinned", sorted[2].Title)
	assert.Equal(t, "old unpinned", sorted[3].Title)

	// Input order is untouched
	assert.Equal(t, "old unpinned", notes[0].Title)
}

func TestSearchContacts(t *testing.T) {
	contacts := []*domain.Contact{
		{Name: "Alice Johnson", Company: "Acme", Email: "alice@acme.example", Phone: "555-0100"},
		{Name: "Bob Smith", Company: "Globex", Email: "bob@globex.example", Phone: "555-0200"},
	}

	byEmail := SearchContacts(contacts, "ALICE@ACME")
	require.Len(t, byEmail, 1)
	assert.Equal(t, "Alice Johnson", byEmail[0].Name)

	byCompany := SearchContacts(contacts, "globex")
	require.Len(t, byCompany, 1)
	assert.Equal(t, "Bob Smith", byCompany[0].Name)

	byPhone := SearchContacts(contacts, "0200")
	require.Len(t, byPhone, 1)
	assert.Equal(t, "Bob Smith", byPhone[0].Name)

	assert.Len(t, SearchContacts(contacts, ""), 2)
}

func TestSortContactsFavoritesFirstThenName(t *testing.T) {
	contacts := []*domain.Contact{
		{Name: "charlie"},
		{Name: "Alice"},
		{Name: "Bob", IsFavorite: true},
		{Name: "dave", IsFavorite: true},
	}

	sorted := SortContacts(contacts)
	require.Len(t, sorted, 4)
	assert.Equal(t, "Bob", sorted[0].Name)
	assert.Equal(t, "dave", sorted[1].Name)
	assert.Equal(t, "Alice", sorted[2].Name)
	assert.Equal(t, "charlie", sorted[3].Name)
}
