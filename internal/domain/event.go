package domain

import "time"

// EventType classifies a calendar event and supplies its default color.
type EventType string

const (
	EventMeeting      EventType = "meeting"
	EventDeadline     EventType = "deadline"
	EventReminder     EventType = "reminder"
	EventHoliday      EventType = "holiday"
	EventCompanyEvent EventType = "company-event"
	EventPersonal     EventType = "personal"
)

// EventTypes lists all event types in form display order.
var EventTypes = []EventType{
	EventMeeting,
	EventDeadline,
	EventReminder,
	EventHoliday,
	EventCompanyEvent,
	EventPersonal,
}

// eventTypeColors is the fixed type-to-swatch mapping applied at creation.
var eventTypeColors = map[EventType]string{
	EventMeeting:      "#3b82f6",
	EventDeadline:     "#ef4444",
	EventReminder:     "#f59e0b",
	EventHoliday:      "#10b981",
	EventCompanyEvent: "#8b5cf6",
	EventPersonal:     "#ec4899",
}

// IsValid reports whether t is a known event type.
func (t EventType) IsValid() bool {
	_, ok := eventTypeColors[t]
	return ok
}

// Color returns the default color swatch for the event type. Unknown types
// fall back to the meeting color.
func (t EventType) Color() string {
	if c, ok := eventTypeColors[t]; ok {
		return c
	}
	return eventTypeColors[EventMeeting]
}

// Event represents a calendar entry. Date is an ISO calendar date
// (YYYY-MM-DD); StartTime and EndTime are HH:MM wall-clock times and may be
// empty. Color defaults from the event type at creation time but is stored
// independently thereafter.
type Event struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Date        string    `json:"date"`
	StartTime   string    `json:"start_time"`
	EndTime     string    `json:"end_time"`
	EventType   EventType `json:"event_type"`
	Location    string    `json:"location"`
	Color       string    `json:"color"`
	CreatedAt   time.Time `json:"created_at"`
}

// NewEvent creates an event with the field defaults used by the create form.
func NewEvent(title, date string) Event {
	return Event{
		Title:     title,
		Date:      date,
		EventType: EventMeeting,
	}
}

// DisplayColor returns the stored color, falling back to the type default.
func (e Event) DisplayColor() string {
	if e.Color != "" {
		return e.Color
	}
	return e.EventType.Color()
}
