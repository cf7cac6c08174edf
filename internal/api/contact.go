package api

import (
	"context"

	"planner/internal/cache"
	"planner/internal/domain"
	"planner/internal/validation"
)

// ListContacts returns all contacts in ascending name order, served from the
// cache when fresh.
func (c *Client) ListContacts(ctx context.Context) ([]*domain.Contact, error) {
	return cache.GetOrFetch(c.cache, cache.KeyContacts, func() ([]*domain.Contact, error) {
		return c.repo.ListContacts(ctx)
	})
}

// GetContact retrieves a single contact by id.
func (c *Client) GetContact(ctx context.Context, id string) (*domain.Contact, error) {
	return c.repo.GetContact(ctx, id)
}

// CreateContact validates and stores a new contact.
func (c *Client) CreateContact(ctx context.Context, contact *domain.Contact) error {
	if err := rejectCallerID(contact.ID); err != nil {
		return err
	}
	if err := validation.ValidateContact(contact); err != nil {
		return err
	}
	if err := c.repo.CreateContact(ctx, contact); err != nil {
		return err
	}
	c.cache.Invalidate(cache.KeyContacts)
	return nil
}

// UpdateContact applies a partial update to the contact with the given id.
func (c *Client) UpdateContact(ctx context.Context, id string, fields Fields) (*domain.Contact, error) {
	contact, err := c.repo.GetContact(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := applyContactFields(contact, fields); err != nil {
		return nil, err
	}
	if err := validation.ValidateContact(contact); err != nil {
		return nil, err
	}
	if err := c.repo.UpdateContact(ctx, contact); err != nil {
		return nil, err
	}

	c.cache.Invalidate(cache.KeyContacts)
	return contact, nil
}

// DeleteContact removes a contact. Deleting an id that does not exist
// succeeds.
func (c *Client) DeleteContact(ctx context.Context, id string) error {
	if err := c.repo.DeleteContact(ctx, id); err != nil {
		return err
	}
	c.cache.Invalidate(cache.KeyContacts)
	return nil
}

// ToggleFavorite flips the favorite flag of the contact with the given id.
func (c *Client) ToggleFavorite(ctx context.Context, id string) (*domain.Contact, error) {
	contact, err := c.repo.GetContact(ctx, id)
	if err != nil {
		return nil, err
	}
	return c.UpdateContact(ctx, id, Fields{"is_favorite": !contact.IsFavorite})
}

func applyContactFields(contact *domain.Contact, fields Fields) error {
	for field, value := range fields {
		switch field {
		case "name":
			s, err := asString(field, value)
			if err != nil {
				return err
			}
			contact.Name = s
		case "company":
			s, err := asString(field, value)
			if err != nil {
				return err
			}
			contact.Company = s
		case "position":
			s, err := asString(field, value)
			if err != nil {
				return err
			}
			contact.Position = s
		case "email":
			s, err := asString(field, value)
			if err != nil {
				return err
			}
			contact.Email = s
		case "phone":
			s, err := asString(field, value)
			if err != nil {
				return err
			}
			contact.Phone = s
		case "secondary_phone":
			s, err := asString(field, value)
			if err != nil {
				return err
			}
			contact.SecondaryPhone = s
		case "address":
			s, err := asString(field, value)
			if err != nil {
				return err
			}
			contact.Address = s
		case "category":
			s, err := asString(field, value)
			if err != nil {
				return err
			}
			contact.Category = domain.ContactCategory(s)
		case "notes":
			s, err := asString(field, value)
			if err != nil {
				return err
			}
			contact.Notes = s
		case "is_favorite":
			b, err := asBool(field, value)
			if err != nil {
				return err
			}
			contact.IsFavorite = b
		case "avatar_url":
			s, err := asString(field, value)
			if err != nil {
				return err
			}
			contact.AvatarURL = s
		default:
			return unknownFieldError("contact", field)
		}
	}
	return nil
}
