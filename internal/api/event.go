package api

import (
	"context"

	"planner/internal/cache"
	"planner/internal/domain"
	"planner/internal/validation"
)

// ListEvents returns all events in ascending date order, served from the
// cache when fresh.
func (c *Client) ListEvents(ctx context.Context) ([]*domain.Event, error) {
	return cache.GetOrFetch(c.cache, cache.KeyEvents, func() ([]*domain.Event, error) {
		return c.repo.ListEvents(ctx)
	})
}

// GetEvent retrieves a single event by id.
func (c *Client) GetEvent(ctx context.Context, id string) (*domain.Event, error) {
	return c.repo.GetEvent(ctx, id)
}

// CreateEvent validates and stores a new event. An empty color is filled
// from the event type's default swatch before the write.
func (c *Client) CreateEvent(ctx context.Context, event *domain.Event) error {
	if err := rejectCallerID(event.ID); err != nil {
		return err
	}
	if event.Color == "" {
		event.Color = event.EventType.Color()
	}
	if err := validation.ValidateEvent(event); err != nil {
		return err
	}
	if err := c.repo.CreateEvent(ctx, event); err != nil {
		return err
	}
	c.cache.Invalidate(cache.KeyEvents)
	return nil
}

// UpdateEvent applies a partial update to the event with the given id.
// Changing the type never rewrites a stored color; the two are independent
// after creation.
func (c *Client) UpdateEvent(ctx context.Context, id string, fields Fields) (*domain.Event, error) {
	event, err := c.repo.GetEvent(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := applyEventFields(event, fields); err != nil {
		return nil, err
	}
	if err := validation.ValidateEvent(event); err != nil {
		return nil, err
	}
	if err := c.repo.UpdateEvent(ctx, event); err != nil {
		return nil, err
	}

	c.cache.Invalidate(cache.KeyEvents)
	return event, nil
}

// DeleteEvent removes an event. Deleting an id that does not exist succeeds.
func (c *Client) DeleteEvent(ctx context.Context, id string) error {
	if err := c.repo.DeleteEvent(ctx, id); err != nil {
		return err
	}
	c.cache.Invalidate(cache.KeyEvents)
	return nil
}

func applyEventFields(event *domain.Event, fields Fields) error {
	for field, value := range fields {
		switch field {
		case "title":
			s, err := asString(field, value)
			if err != nil {
				return err
			}
			event.Title = s
		case "description":
			s, err := asString(field, value)
			if err != nil {
				return err
			}
			event.Description = s
		case "date":
			s, err := asString(field, value)
			if err != nil {
				return err
			}
			event.Date = s
		case "start_time":
			s, err := asString(field, value)
			if err != nil {
				return err
			}
			event.StartTime = s
		case "end_time":
			s, err := asString(field, value)
			if err != nil {
				return err
			}
			event.EndTime = s
		case "event_type":
			s, err := asString(field, value)
			if err != nil {
				return err
			}
			event.EventType = domain.EventType(s)
		case "location":
			s, err := asString(field, value)
			if err != nil {
				return err
			}
			event.Location = s
		case "color":
			s, err := asString(field, value)
			if err != nil {
				return err
			}
			event.Color = s
		default:
			return unknownFieldError("event", field)
		}
	}
	return nil
}
