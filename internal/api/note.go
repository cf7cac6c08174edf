package api

import (
	"context"

	"planner/internal/cache"
	"planner/internal/domain"
	"planner/internal/validation"
)

// ListNotes returns all notes, newest first, served from the cache when
// fresh.
func (c *Client) ListNotes(ctx context.Context) ([]*domain.Note, error) {
	return cache.GetOrFetch(c.cache, cache.KeyNotes, func() ([]*domain.Note, error) {
		return c.repo.ListNotes(ctx)
	})
}

// GetNote retrieves a single note by id.
func (c *Client) GetNote(ctx context.Context, id string) (*domain.Note, error) {
	return c.repo.GetNote(ctx, id)
}

// CreateNote validates and stores a new note.
func (c *Client) CreateNote(ctx context.Context, note *domain.Note) error {
	if err := rejectCallerID(note.ID); err != nil {
		return err
	}
	if err := validation.ValidateNote(note); err != nil {
		return err
	}
	if err := c.repo.CreateNote(ctx, note); err != nil {
		return err
	}
	c.cache.Invalidate(cache.KeyNotes)
	return nil
}

// UpdateNote applies a partial update to the note with the given id.
func (c *Client) UpdateNote(ctx context.Context, id string, fields Fields) (*domain.Note, error) {
	note, err := c.repo.GetNote(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := applyNoteFields(note, fields); err != nil {
		return nil, err
	}
	if err := validation.ValidateNote(note); err != nil {
		return nil, err
	}
	if err := c.repo.UpdateNote(ctx, note); err != nil {
		return nil, err
	}

	c.cache.Invalidate(cache.KeyNotes)
	return note, nil
}

// DeleteNote removes a note. Deleting an id that does not exist succeeds.
func (c *Client) DeleteNote(ctx context.Context, id string) error {
	if err := c.repo.DeleteNote(ctx, id); err != nil {
		return err
	}
	c.cache.Invalidate(cache.KeyNotes)
	return nil
}

// TogglePin flips the pinned flag of the note with the given id.
func (c *Client) TogglePin(ctx context.Context, id string) (*domain.Note, error) {
	note, err := c.repo.GetNote(ctx, id)
	if err != nil {
		return nil, err
	}
	return c.UpdateNote(ctx, id, Fields{"is_pinned": !note.IsPinned})
}

func applyNoteFields(note *domain.Note, fields Fields) error {
	for field, value := range fields {
		switch field {
		case "title":
			s, err := asString(field, value)
			if err != nil {
				return err
			}
			note.Title = s
		case "content":
			s, err := asString(field, value)
			if err != nil {
				return err
			}
			note.Content = s
		case "category":
			s, err := asString(field, value)
			if err != nil {
				return err
			}
			note.Category = s
		case "tags":
			tags, err := asStringSlice(field, value)
			if err != nil {
				return err
			}
			note.Tags = tags
		case "is_pinned":
			b, err := asBool(field, value)
			if err != nil {
				return err
			}
			note.IsPinned = b
		case "color":
			s, err := asString(field, value)
			if err != nil {
				return err
			}
			note.Color = s
		default:
			return unknownFieldError("note", field)
		}
	}
	return nil
}
