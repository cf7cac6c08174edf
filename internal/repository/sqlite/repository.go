package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"planner/internal/domain"
	"planner/internal/errors"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// Repository defines the interface for database operations. Every list
// returns the full collection in that entity's fixed default order; there is
// no pagination.
type Repository interface {
	// Task operations
	CreateTask(ctx context.Context, task *domain.Task) error
	GetTask(ctx context.Context, id string) (*domain.Task, error)
	ListTasks(ctx context.Context) ([]*domain.Task, error)
	UpdateTask(ctx context.Context, task *domain.Task) error
	DeleteTask(ctx context.Context, id string) error

	// Goal operations
	CreateGoal(ctx context.Context, goal *domain.Goal) error
	GetGoal(ctx context.Context, id string) (*domain.Goal, error)
	ListGoals(ctx context.Context) ([]*domain.Goal, error)
	UpdateGoal(ctx context.Context, goal *domain.Goal) error
	DeleteGoal(ctx context.Context, id string) error

	// Event operations
	CreateEvent(ctx context.Context, event *domain.Event) error
	GetEvent(ctx context.Context, id string) (*domain.Event, error)
	ListEvents(ctx context.Context) ([]*domain.Event, error)
	UpdateEvent(ctx context.Context, event *domain.Event) error
	DeleteEvent(ctx context.Context, id string) error

	// Note operations
	CreateNote(ctx context.Context, note *domain.Note) error
	GetNote(ctx context.Context, id string) (*domain.Note, error)
	ListNotes(ctx context.Context) ([]*domain.Note, error)
	UpdateNote(ctx context.Context, note *domain.Note) error
	DeleteNote(ctx context.Context, id string) error

	// Contact operations
	CreateContact(ctx context.Context, contact *domain.Contact) error
	GetContact(ctx context.Context, id string) (*domain.Contact, error)
	ListContacts(ctx context.Context) ([]*domain.Contact, error)
	UpdateContact(ctx context.Context, contact *domain.Contact) error
	DeleteContact(ctx context.Context, id string) error

	// Settings operations. GetSettings returns nil when no row exists.
	GetSettings(ctx context.Context) (*domain.PlannerSettings, error)
	CreateSettings(ctx context.Context, settings *domain.PlannerSettings) error
	UpdateSettings(ctx context.Context, settings *domain.PlannerSettings) error

	// Utility
	Close() error
}

// SQLiteRepository implements the Repository interface
type SQLiteRepository struct {
	db *sql.DB
}

// New creates a new SQLite repository instance
func New(dbPath string) (*SQLiteRepository, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, errors.NewDataAccessError("open database", err)
	}

	if err := createTables(db); err != nil {
		db.Close()
		return nil, errors.NewDataAccessError("create tables", err)
	}

	return &SQLiteRepository{db: db}, nil
}

// Close closes the database connection
func (r *SQLiteRepository) Close() error {
	return r.db.Close()
}

// newID assigns a server-side identifier; create operations never accept one
// from the caller.
func newID() string {
	return uuid.NewString()
}

// CreateTask inserts a task, assigning its id and timestamps
func (r *SQLiteRepository) CreateTask(ctx context.Context, task *domain.Task) error {
	task.ID = newID()
	task.CreatedAt = time.Now().UTC()
	task.UpdatedAt = task.CreatedAt

	query := `
	INSERT INTO tasks (id, title, description, due_date, due_time, priority, status, category, created_at, updated_at)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	return ExecuteIgnoringRowsAffected(ctx, r.db, query,
		task.ID, task.Title, task.Description, task.DueDate, task.DueTime,
		string(task.Priority), string(task.Status), task.Category,
		FormatTimeForDB(task.CreatedAt), FormatTimeForDB(task.UpdatedAt))
}

// GetTask retrieves a task by ID
func (r *SQLiteRepository) GetTask(ctx context.Context, id string) (*domain.Task, error) {
	query := `
	SELECT id, title, description, due_date, due_time, priority, status, category, created_at, updated_at
	FROM tasks
	WHERE id = ?`

	return QuerySingle(ctx, r.db, query, ScanTask, "task", id, id)
}

// ListTasks retrieves all tasks, newest first
func (r *SQLiteRepository) ListTasks(ctx context.Context) ([]*domain.Task, error) {
	query := `
	SELECT id, title, description, due_date, due_time, priority, status, category, created_at, updated_at
	FROM tasks
	ORDER BY created_at DESC`

	return QueryMultiple(ctx, r.db, query, ScanTasks, "tasks")
}

// UpdateTask updates an existing task, refreshing its update timestamp
func (r *SQLiteRepository) UpdateTask(ctx context.Context, task *domain.Task) error {
	task.UpdatedAt = time.Now().UTC()

	query := `
	UPDATE tasks
	SET title = ?, description = ?, due_date = ?, due_time = ?, priority = ?, status = ?, category = ?, updated_at = ?
	WHERE id = ?`

	return ExecuteWithRowsAffected(ctx, r.db, query, "task", task.ID,
		task.Title, task.Description, task.DueDate, task.DueTime,
		string(task.Priority), string(task.Status), task.Category,
		FormatTimeForDB(task.UpdatedAt), task.ID)
}

// DeleteTask deletes a task by ID. Deleting an absent row is a no-op.
func (r *SQLiteRepository) DeleteTask(ctx context.Context, id string) error {
	return ExecuteIgnoringRowsAffected(ctx, r.db, `DELETE FROM tasks WHERE id = ?`, id)
}

// CreateGoal inserts a goal, assigning its id and creation timestamp
func (r *SQLiteRepository) CreateGoal(ctx context.Context, goal *domain.Goal) error {
	goal.ID = newID()
	goal.CreatedAt = time.Now().UTC()

	milestones, err := encodeMilestones(goal.Milestones)
	if err != nil {
		return errors.NewDataAccessError("encode milestones", err)
	}

	query := `
	INSERT INTO goals (id, title, description, category, timeframe, target_date, status, progress, milestones, created_at)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	return ExecuteIgnoringRowsAffected(ctx, r.db, query,
		goal.ID, goal.Title, goal.Description, string(goal.Category), string(goal.Timeframe),
		goal.TargetDate, string(goal.Status), goal.Progress, milestones,
		FormatTimeForDB(goal.CreatedAt))
}

// GetGoal retrieves a goal by ID
func (r *SQLiteRepository) GetGoal(ctx context.Context, id string) (*domain.Goal, error) {
	query := `
	SELECT id, title, description, category, timeframe, target_date, status, progress, milestones, created_at
	FROM goals
	WHERE id = ?`

	return QuerySingle(ctx, r.db, query, ScanGoal, "goal", id, id)
}

// ListGoals retrieves all goals, newest first
func (r *SQLiteRepository) ListGoals(ctx context.Context) ([]*domain.Goal, error) {
	query := `
	SELECT id, title, description, category, timeframe, target_date, status, progress, milestones, created_at
	FROM goals
	ORDER BY created_at DESC`

	return QueryMultiple(ctx, r.db, query, ScanGoals, "goals")
}

// UpdateGoal updates an existing goal
func (r *SQLiteRepository) UpdateGoal(ctx context.Context, goal *domain.Goal) error {
	milestones, err := encodeMilestones(goal.Milestones)
	if err != nil {
		return errors.NewDataAccessError("encode milestones", err)
	}

	query := `
	UPDATE goals
	SET title = ?, description = ?, category = ?, timeframe = ?, target_date = ?, status = ?, progress = ?, milestones = ?
	WHERE id = ?`

	return ExecuteWithRowsAffected(ctx, r.db, query, "goal", goal.ID,
		goal.Title, goal.Description, string(goal.Category), string(goal.Timeframe),
		goal.TargetDate, string(goal.Status), goal.Progress, milestones, goal.ID)
}

// DeleteGoal deletes a goal by ID. Deleting an absent row is a no-op.
func (r *SQLiteRepository) DeleteGoal(ctx context.Context, id string) error {
	return ExecuteIgnoringRowsAffected(ctx, r.db, `DELETE FROM goals WHERE id = ?`, id)
}

// CreateEvent inserts an event, assigning its id and creation timestamp
func (r *SQLiteRepository) CreateEvent(ctx context.Context, event *domain.Event) error {
	event.ID = newID()
	event.CreatedAt = time.Now().UTC()

	query := `
	INSERT INTO events (id, title, description, date, start_time, end_time, event_type, location, color, created_at)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	return ExecuteIgnoringRowsAffected(ctx, r.db, query,
		event.ID, event.Title, event.Description, event.Date, event.StartTime, event.EndTime,
		string(event.EventType), event.Location, event.Color,
		FormatTimeForDB(event.CreatedAt))
}

// GetEvent retrieves an event by ID
func (r *SQLiteRepository) GetEvent(ctx context.Context, id string) (*domain.Event, error) {
	query := `
	SELECT id, title, description, date, start_time, end_time, event_type, location, color, created_at
	FROM events
	WHERE id = ?`

	return QuerySingle(ctx, r.db, query, ScanEvent, "event", id, id)
}

// ListEvents retrieves all events in ascending date order
func (r *SQLiteRepository) ListEvents(ctx context.Context) ([]*domain.Event, error) {
	query := `
	SELECT id, title, description, date, start_time, end_time, event_type, location, color, created_at
	FROM events
	ORDER BY date ASC`

	return QueryMultiple(ctx, r.db, query, ScanEvents, "events")
}

// UpdateEvent updates an existing event
func (r *SQLiteRepository) UpdateEvent(ctx context.Context, event *domain.Event) error {
	query := `
	UPDATE events
	SET title = ?, description = ?, date = ?, start_time = ?, end_time = ?, event_type = ?, location = ?, color = ?
	WHERE id = ?`

	return ExecuteWithRowsAffected(ctx, r.db, query, "event", event.ID,
		event.Title, event.Description, event.Date, event.StartTime, event.EndTime,
		string(event.EventType), event.Location, event.Color, event.ID)
}

// DeleteEvent deletes an event by ID. Deleting an absent row is a no-op.
func (r *SQLiteRepository) DeleteEvent(ctx context.Context, id string) error {
	return ExecuteIgnoringRowsAffected(ctx, r.db, `DELETE FROM events WHERE id = ?`, id)
}

// CreateNote inserts a note, assigning its id and creation timestamp
func (r *SQLiteRepository) CreateNote(ctx context.Context, note *domain.Note) error {
	note.ID = newID()
	note.CreatedAt = time.Now().UTC()

	tags, err := encodeTags(note.Tags)
	if err != nil {
		return errors.NewDataAccessError("encode tags", err)
	}

	query := `
	INSERT INTO notes (id, title, content, category, tags, is_pinned, color, created_at)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?)`

	return ExecuteIgnoringRowsAffected(ctx, r.db, query,
		note.ID, note.Title, note.Content, note.Category, tags,
		boolToInt(note.IsPinned), note.Color, FormatTimeForDB(note.CreatedAt))
}

// GetNote retrieves a note by ID
func (r *SQLiteRepository) GetNote(ctx context.Context, id string) (*domain.Note, error) {
	query := `
	SELECT id, title, content, category, tags, is_pinned, color, created_at
	FROM notes
	WHERE id = ?`

	return QuerySingle(ctx, r.db, query, ScanNote, "note", id, id)
}

// ListNotes retrieves all notes, newest first
func (r *SQLiteRepository) ListNotes(ctx context.Context) ([]*domain.Note, error) {
	query := `
	SELECT id, title, content, category, tags, is_pinned, color, created_at
	FROM notes
	ORDER BY created_at DESC`

	return QueryMultiple(ctx, r.db, query, ScanNotes, "notes")
}

// UpdateNote updates an existing note
func (r *SQLiteRepository) UpdateNote(ctx context.Context, note *domain.Note) error {
	tags, err := encodeTags(note.Tags)
	if err != nil {
		return errors.NewDataAccessError("encode tags", err)
	}

	query := `
	UPDATE notes
	SET title = ?, content = ?, category = ?, tags = ?, is_pinned = ?, color = ?
	WHERE id = ?`

	return ExecuteWithRowsAffected(ctx, r.db, query, "note", note.ID,
		note.Title, note.Content, note.Category, tags,
		boolToInt(note.IsPinned), note.Color, note.ID)
}

// DeleteNote deletes a note by ID. Deleting an absent row is a no-op.
func (r *SQLiteRepository) DeleteNote(ctx context.Context, id string) error {
	return ExecuteIgnoringRowsAffected(ctx, r.db, `DELETE FROM notes WHERE id = ?`, id)
}

// CreateContact inserts a contact, assigning its id and creation timestamp
func (r *SQLiteRepository) CreateContact(ctx context.Context, contact *domain.Contact) error {
	contact.ID = newID()
	contact.CreatedAt = time.Now().UTC()

	query := `
	INSERT INTO contacts (id, name, company, position, email, phone, secondary_phone, address, category, notes, is_favorite, avatar_url, created_at)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	return ExecuteIgnoringRowsAffected(ctx, r.db, query,
		contact.ID, contact.Name, contact.Company, contact.Position, contact.Email,
		contact.Phone, contact.SecondaryPhone, contact.Address, string(contact.Category),
		contact.Notes, boolToInt(contact.IsFavorite), contact.AvatarURL,
		FormatTimeForDB(contact.CreatedAt))
}

// GetContact retrieves a contact by ID
func (r *SQLiteRepository) GetContact(ctx context.Context, id string) (*domain.Contact, error) {
	query := `
	SELECT id, name, company, position, email, phone, secondary_phone, address, category, notes, is_favorite, avatar_url, created_at
	FROM contacts
	WHERE id = ?`

	return QuerySingle(ctx, r.db, query, ScanContact, "contact", id, id)
}

// ListContacts retrieves all contacts in ascending name order
func (r *SQLiteRepository) ListContacts(ctx context.Context) ([]*domain.Contact, error) {
	query := `
	SELECT id, name, company, position, email, phone, secondary_phone, address, category, notes, is_favorite, avatar_url, created_at
	FROM contacts
	ORDER BY name ASC`

	return QueryMultiple(ctx, r.db, query, ScanContacts, "contacts")
}

// UpdateContact updates an existing contact
func (r *SQLiteRepository) UpdateContact(ctx context.Context, contact *domain.Contact) error {
	query := `
	UPDATE contacts
	SET name = ?, company = ?, position = ?, email = ?, phone = ?, secondary_phone = ?, address = ?, category = ?, notes = ?, is_favorite = ?, avatar_url = ?
	WHERE id = ?`

	return ExecuteWithRowsAffected(ctx, r.db, query, "contact", contact.ID,
		contact.Name, contact.Company, contact.Position, contact.Email,
		contact.Phone, contact.SecondaryPhone, contact.Address, string(contact.Category),
		contact.Notes, boolToInt(contact.IsFavorite), contact.AvatarURL, contact.ID)
}

// DeleteContact deletes a contact by ID. Deleting an absent row is a no-op.
func (r *SQLiteRepository) DeleteContact(ctx context.Context, id string) error {
	return ExecuteIgnoringRowsAffected(ctx, r.db, `DELETE FROM contacts WHERE id = ?`, id)
}

// GetSettings retrieves the settings singleton. The table is never assumed
// to hold more than one row; when it is empty, (nil, nil) is returned and
// the caller falls back to defaults.
func (r *SQLiteRepository) GetSettings(ctx context.Context) (*domain.PlannerSettings, error) {
	query := `
	SELECT id, company_name, logo_url, slogan, primary_color, accent_color, theme, week_starts_on, time_format, date_format
	FROM planner_settings
	LIMIT 1`

	settings, err := QuerySingle(ctx, r.db, query, ScanSettings, "planner settings", "singleton")
	if err != nil {
		if errors.IsErrorType(err, errors.ErrorTypeNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return settings, nil
}

// CreateSettings inserts the settings row, assigning its id
func (r *SQLiteRepository) CreateSettings(ctx context.Context, settings *domain.PlannerSettings) error {
	settings.ID = newID()

	query := `
	INSERT INTO planner_settings (id, company_name, logo_url, slogan, primary_color, accent_color, theme, week_starts_on, time_format, date_format)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	return ExecuteIgnoringRowsAffected(ctx, r.db, query,
		settings.ID, settings.CompanyName, settings.LogoURL, settings.Slogan,
		settings.PrimaryColor, settings.AccentColor, settings.Theme,
		string(settings.WeekStartsOn), settings.TimeFormat, settings.DateFormat)
}

// UpdateSettings updates the existing settings row
func (r *SQLiteRepository) UpdateSettings(ctx context.Context, settings *domain.PlannerSettings) error {
	query := `
	UPDATE planner_settings
	SET company_name = ?, logo_url = ?, slogan = ?, primary_color = ?, accent_color = ?, theme = ?, week_starts_on = ?, time_format = ?, date_format = ?
	WHERE id = ?`

	return ExecuteWithRowsAffected(ctx, r.db, query, "planner settings", settings.ID,
		settings.CompanyName, settings.LogoURL, settings.Slogan,
		settings.PrimaryColor, settings.AccentColor, settings.Theme,
		string(settings.WeekStartsOn), settings.TimeFormat, settings.DateFormat, settings.ID)
}

func encodeMilestones(milestones []domain.Milestone) (string, error) {
	if milestones == nil {
		milestones = []domain.Milestone{}
	}
	data, err := json.Marshal(milestones)
	return string(data), err
}

func encodeTags(tags []string) (string, error) {
	if tags == nil {
		tags = []string{}
	}
	data, err := json.Marshal(tags)
	return string(data), err
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
