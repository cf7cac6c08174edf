package sqlite

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"planner/internal/domain"
	"planner/internal/errors"
)

func setupTestDB(t *testing.T) (*SQLiteRepository, func()) {
	repo, err := New(":memory:")
	require.NoError(t, err)

	cleanup := func() {
		repo.Close()
	}

	return repo, cleanup
}

func TestCreateTask(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	task := &domain.Task{
		Title:    "Write the report",
		DueDate:  "2025-08-29",
		Priority: domain.PriorityImportant,
		Status:   domain.TaskPending,
	}
	err := repo.CreateTask(context.Background(), task)
	require.NoError(t, err)
	assert.NotEmpty(t, task.ID)
	assert.False(t, task.CreatedAt.IsZero())
	assert.Equal(t, task.CreatedAt, task.UpdatedAt)

	retrieved, err := repo.GetTask(context.Background(), task.ID)
	require.NoError(t, err)
	assert.Equal(t, task.ID, retrieved.ID)
	assert.Equal(t, "Write the report", retrieved.Title)
	assert.Equal(t, "2025-08-29", retrieved.DueDate)
	assert.Equal(t, domain.PriorityImportant, retrieved.Priority)
	assert.Equal(t, task.CreatedAt.Unix(), retrieved.CreatedAt.Unix())
}

func TestGetTaskNotFound(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	_, err := repo.GetTask(context.Background(), "missing-id")
	assert.Error(t, err)
	assert.True(t, errors.IsErrorType(err, errors.ErrorTypeNotFound))
}

func TestListTasks(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	titles := []string{"first", "second", "third"}
	for _, title := range titles {
		task := domain.NewTask(title)
		err := repo.CreateTask(context.Background(), &task)
		require.NoError(t, err)
	}

	tasks, err := repo.ListTasks(context.Background())
	require.NoError(t, err)
	assert.Len(t, tasks, 3)

	seen := make(map[string]bool)
	for _, task := range tasks {
		seen[task.Title] = true
	}
	for _, title := range titles {
		assert.True(t, seen[title])
	}
}

func TestUpdateTask(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	task := domain.NewTask("original")
	err := repo.CreateTask(context.Background(), &task)
	require.NoError(t, err)

	task.Title = "renamed"
	task.Status = domain.TaskCompleted
	err = repo.UpdateTask(context.Background(), &task)
	require.NoError(t, err)

	retrieved, err := repo.GetTask(context.Background(), task.ID)
	require.NoError(t, err)
	assert.Equal(t, "renamed", retrieved.Title)
	assert.Equal(t, domain.TaskCompleted, retrieved.Status)
	assert.False(t, retrieved.UpdatedAt.Before(retrieved.CreatedAt))
}

func TestUpdateTaskNotFound(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	task := domain.NewTask("phantom")
	task.ID = "missing-id"
	err := repo.UpdateTask(context.Background(), &task)
	assert.Error(t, err)
	assert.True(t, errors.IsErrorType(err, errors.ErrorTypeNotFound))
}

func TestDeleteTaskIdempotent(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	task := domain.NewTask("to delete")
	err := repo.CreateTask(context.Background(), &task)
	require.NoError(t, err)

	err = repo.DeleteTask(context.Background(), task.ID)
	require.NoError(t, err)

	// Deleting an absent row still succeeds
	err = repo.DeleteTask(context.Background(), task.ID)
	assert.NoError(t, err)

	_, err = repo.GetTask(context.Background(), task.ID)
	assert.Error(t, err)
}

func TestGoalMilestonesRoundTrip(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	goal := domain.NewGoal("Learn Go")
	goal.Milestones = []domain.Milestone{
		{Title: "Read the tour", Completed: true},
		{Title: "Build a CLI"},
	}
	err := repo.CreateGoal(context.Background(), &goal)
	require.NoError(t, err)

	retrieved, err := repo.GetGoal(context.Background(), goal.ID)
	require.NoError(t, err)
	require.Len(t, retrieved.Milestones, 2)
	assert.Equal(t, "Read the tour", retrieved.Milestones[0].Title)
	assert.True(t, retrieved.Milestones[0].Completed)
	assert.False(t, retrieved.Milestones[1].Completed)
}

func TestGoalEmptyMilestones(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	goal := domain.NewGoal("No milestones")
	err := repo.CreateGoal(context.Background(), &goal)
	require.NoError(t, err)

	retrieved, err := repo.GetGoal(context.Background(), goal.ID)
	require.NoError(t, err)
	assert.Empty(t, retrieved.Milestones)
}

func TestListEventsDateOrder(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	for _, date := range []string{"2025-09-15", "2025-09-01", "2025-09-08"} {
		event := domain.NewEvent("event on "+date, date)
		err := repo.CreateEvent(context.Background(), &event)
		require.NoError(t, err)
	}

	events, err := repo.ListEvents(context.Background())
	require.NoError(t, err)
	require.Len(t, events, 3)
	assert.Equal(t, "2025-09-01", events[0].Date)
	assert.Equal(t, "2025-09-08", events[1].Date)
	assert.Equal(t, "2025-09-15", events[2].Date)
}

func TestNoteTagsRoundTrip(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	note := domain.NewNote("Meeting notes")
	note.Tags = []string{"work", "q3"}
	note.IsPinned = true
	err := repo.CreateNote(context.Background(), &note)
	require.NoError(t, err)

	retrieved, err := repo.GetNote(context.Background(), note.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"work", "q3"}, retrieved.Tags)
	assert.True(t, retrieved.IsPinned)
}

func TestListContactsNameOrder(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	for _, name := range []string{"Charlie", "Alice", "Bob"} {
		contact := domain.NewContact(name)
		err := repo.CreateContact(context.Background(), &contact)
		require.NoError(t, err)
	}

	contacts, err := repo.ListContacts(context.Background())
	require.NoError(t, err)
	require.Len(t, contacts, 3)
	assert.Equal(t, "Alice", contacts[0].Name)
	assert.Equal(t, "Bob", contacts[1].Name)
	assert.Equal(t, "Charlie", contacts[2].Name)
}

func TestSettingsSingleton(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	// No row yet
	settings, err := repo.GetSettings(context.Background())
	require.NoError(t, err)
	assert.Nil(t, settings)

	created := domain.DefaultSettings()
	created.CompanyName = "Acme"
	err = repo.CreateSettings(context.Background(), &created)
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)

	retrieved, err := repo.GetSettings(context.Background())
	require.NoError(t, err)
	require.NotNil(t, retrieved)
	assert.Equal(t, "Acme", retrieved.CompanyName)
	assert.Equal(t, domain.WeekStartMonday, retrieved.WeekStartsOn)

	retrieved.CompanyName = "Acme Corp"
	err = repo.UpdateSettings(context.Background(), retrieved)
	require.NoError(t, err)

	updated, err := repo.GetSettings(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Acme Corp", updated.CompanyName)
}
