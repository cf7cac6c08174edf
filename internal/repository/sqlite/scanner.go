package sqlite

import (
	"encoding/json"

	"planner/internal/domain"
)

// Scanner interface defines the common scanning behavior for both sql.Row and sql.Rows
type Scanner interface {
	Scan(dest ...interface{}) error
}

// Rows interface defines the common behavior for sql.Rows
type Rows interface {
	Next() bool
	Scan(dest ...interface{}) error
	Err() error
}

// scanAll scans every row with the given single-row scan function.
func scanAll[T any](rows Rows, scanFunc func(Scanner) (*T, error)) ([]*T, error) {
	var results []*T
	for rows.Next() {
		result, err := scanFunc(rows)
		if err != nil {
			return nil, err
		}
		results = append(results, result)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return results, nil
}

// ScanTask scans a single task from a database row
func ScanTask(scanner Scanner) (*domain.Task, error) {
	task := &domain.Task{}
	var createdAt, updatedAt string

	err := scanner.Scan(
		&task.ID,
		&task.Title,
		&task.Description,
		&task.DueDate,
		&task.DueTime,
		&task.Priority,
		&task.Status,
		&task.Category,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	if task.CreatedAt, err = ParseTimeFromDB(createdAt); err != nil {
		return nil, err
	}
	if task.UpdatedAt, err = ParseTimeFromDB(updatedAt); err != nil {
		return nil, err
	}
	return task, nil
}

// ScanTasks scans multiple tasks from database rows
func ScanTasks(rows Rows) ([]*domain.Task, error) {
	return scanAll(rows, ScanTask)
}

// ScanGoal scans a single goal from a database row, decoding the
// JSON-encoded milestone list.
func ScanGoal(scanner Scanner) (*domain.Goal, error) {
	goal := &domain.Goal{}
	var milestones, createdAt string

	err := scanner.Scan(
		&goal.ID,
		&goal.Title,
		&goal.Description,
		&goal.Category,
		&goal.Timeframe,
		&goal.TargetDate,
		&goal.Status,
		&goal.Progress,
		&milestones,
		&createdAt,
	)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal([]byte(milestones), &goal.Milestones); err != nil {
		return nil, err
	}
	if goal.CreatedAt, err = ParseTimeFromDB(createdAt); err != nil {
		return nil, err
	}
	return goal, nil
}

// ScanGoals scans multiple goals from database rows
func ScanGoals(rows Rows) ([]*domain.Goal, error) {
	return scanAll(rows, ScanGoal)
}

// ScanEvent scans a single event from a database row
func ScanEvent(scanner Scanner) (*domain.Event, error) {
	event := &domain.Event{}
	var createdAt string

	err := scanner.Scan(
		&event.ID,
		&event.Title,
		&event.Description,
		&event.Date,
		&event.StartTime,
		&event.EndTime,
		&event.EventType,
		&event.Location,
		&event.Color,
		&createdAt,
	)
	if err != nil {
		return nil, err
	}

	if event.CreatedAt, err = ParseTimeFromDB(createdAt); err != nil {
		return nil, err
	}
	return event, nil
}

// ScanEvents scans multiple events from database rows
func ScanEvents(rows Rows) ([]*domain.Event, error) {
	return scanAll(rows, ScanEvent)
}

// ScanNote scans a single note from a database row, decoding the
// JSON-encoded tag list.
func ScanNote(scanner Scanner) (*domain.Note, error) {
	note := &domain.Note{}
	var tags, createdAt string
	var pinned int

	err := scanner.Scan(
		&note.ID,
		&note.Title,
		&note.Content,
		&note.Category,
		&tags,
		&pinned,
		&note.Color,
		&createdAt,
	)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal([]byte(tags), &note.Tags); err != nil {
		return nil, err
	}
	note.IsPinned = pinned != 0
	if note.CreatedAt, err = ParseTimeFromDB(createdAt); err != nil {
		return nil, err
	}
	return note, nil
}

// ScanNotes scans multiple notes from database rows
func ScanNotes(rows Rows) ([]*domain.Note, error) {
	return scanAll(rows, ScanNote)
}

// ScanContact scans a single contact from a database row
func ScanContact(scanner Scanner) (*domain.Contact, error) {
	contact := &domain.Contact{}
	var createdAt string
	var favorite int

	err := scanner.Scan(
		&contact.ID,
		&contact.Name,
		&contact.Company,
		&contact.Position,
		&contact.Email,
		&contact.Phone,
		&contact.SecondaryPhone,
		&contact.Address,
		&contact.Category,
		&contact.Notes,
		&favorite,
		&contact.AvatarURL,
		&createdAt,
	)
	if err != nil {
		return nil, err
	}

	contact.IsFavorite = favorite != 0
	if contact.CreatedAt, err = ParseTimeFromDB(createdAt); err != nil {
		return nil, err
	}
	return contact, nil
}

// ScanContacts scans multiple contacts from database rows
func ScanContacts(rows Rows) ([]*domain.Contact, error) {
	return scanAll(rows, ScanContact)
}

// ScanSettings scans the planner settings row
func ScanSettings(scanner Scanner) (*domain.PlannerSettings, error) {
	settings := &domain.PlannerSettings{}

	err := scanner.Scan(
		&settings.ID,
		&settings.CompanyName,
		&settings.LogoURL,
		&settings.Slogan,
		&settings.PrimaryColor,
		&settings.AccentColor,
		&settings.Theme,
		&settings.WeekStartsOn,
		&settings.TimeFormat,
		&settings.DateFormat,
	)
	if err != nil {
		return nil, err
	}
	return settings, nil
}
