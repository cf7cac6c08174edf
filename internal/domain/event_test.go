package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEventTypeColors(t *testing.T) {
	tests := []struct {
		eventType EventType
		color     string
	}{
		{EventMeeting, "#3b82f6"},
		{EventDeadline, "#ef4444"},
		{EventReminder, "#f59e0b"},
		{EventHoliday, "#10b981"},
		{EventCompanyEvent, "#8b5cf6"},
		{EventPersonal, "#ec4899"},
	}

	for _, tt := range tests {
		t.Run(string(tt.eventType), func(t *testing.T) {
			assert.Equal(t, tt.color, tt.eventType.Color())
		})
	}

	// Unknown types fall back to the meeting color
	assert.Equal(t, "#3b82f6", EventType("unknown").Color())
}

func TestEventDisplayColor(t *testing.T) {
	event := NewEvent("standup", "2025-08-29")
	assert.Equal(t, "#3b82f6", event.DisplayColor())

	// A stored color wins over the type default
	event.Color = "#112233"
	event.EventType = EventDeadline
	assert.Equal(t, "#112233", event.DisplayColor())
}

func TestEventTypeIsValid(t *testing.T) {
	for _, eventType := range EventTypes {
		assert.True(t, eventType.IsValid())
	}
	assert.False(t, EventType("party").IsValid())
}
