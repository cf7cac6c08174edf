// Package api is the uniform data-access surface the rest of the program
// talks to. Every read of a collection goes through the cache; every
// mutation invalidates the collection it touched. Validation runs before any
// write reaches the repository.
package api

import (
	"fmt"
	"io"
	"math"

	"planner/internal/cache"
	"planner/internal/domain"
	"planner/internal/errors"
	"planner/internal/repository/sqlite"
	"planner/internal/storage"
)

// Fields carries a partial update: only the named fields change, everything
// else keeps its stored value. Unknown field names are rejected.
type Fields map[string]interface{}

// Client wraps the repository with caching, validation and file uploads.
type Client struct {
	repo  sqlite.Repository
	store *storage.FileStore
	cache *cache.Collections
}

// New creates a client over the given repository and file store.
func New(repo sqlite.Repository, store *storage.FileStore) *Client {
	return &Client{
		repo:  repo,
		store: store,
		cache: cache.New(),
	}
}

// Cache exposes the collection cache, mainly for tests and manual refresh.
func (c *Client) Cache() *cache.Collections {
	return c.cache
}

// Close releases the underlying repository.
func (c *Client) Close() error {
	return c.repo.Close()
}

// UploadFile stores the file contents under a generated name and returns its
// public URL.
func (c *Client) UploadFile(originalName string, r io.Reader) (string, error) {
	return c.store.UploadFile(originalName, r)
}

// rejectCallerID guards create operations: identifiers are always assigned
// server-side.
func rejectCallerID(id string) error {
	if id == "" {
		return nil
	}
	ve := validationErrorf("id", "must not be set on create")
	return ve
}

func validationErrorf(field, format string, args ...interface{}) error {
	return errors.NewValidationError(fmt.Sprintf("%s %s", field, fmt.Sprintf(format, args...)), nil)
}

func unknownFieldError(entity, field string) error {
	return errors.NewValidationError(fmt.Sprintf("unknown %s field: %s", entity, field), nil)
}

// Field coercion helpers. Update payloads may arrive from decoded JSON, so
// numeric values are accepted as int or float64.

func asString(field string, value interface{}) (string, error) {
	s, ok := value.(string)
	if !ok {
		return "", validationErrorf(field, "must be a string, got %T", value)
	}
	return s, nil
}

func asBool(field string, value interface{}) (bool, error) {
	b, ok := value.(bool)
	if !ok {
		return false, validationErrorf(field, "must be a boolean, got %T", value)
	}
	return b, nil
}

func asInt(field string, value interface{}) (int, error) {
	switch v := value.(type) {
	case int:
		return v, nil
	case float64:
		return int(math.Round(v)), nil
	}
	return 0, validationErrorf(field, "must be a number, got %T", value)
}

func asStringSlice(field string, value interface{}) ([]string, error) {
	switch v := value.(type) {
	case []string:
		return v, nil
	case []interface{}:
		out := make([]string, 0, len(v))
		for _, item := range v {
			s, ok := item.(string)
			if !ok {
				return nil, validationErrorf(field, "must contain only strings, got %T", item)
			}
			out = append(out, s)
		}
		return out, nil
	}
	return nil, validationErrorf(field, "must be a list of strings, got %T", value)
}

func asMilestones(field string, value interface{}) ([]domain.Milestone, error) {
	switch v := value.(type) {
	case []domain.Milestone:
		return v, nil
	case []interface{}:
		out := make([]domain.Milestone, 0, len(v))
		for _, item := range v {
			m, ok := item.(map[string]interface{})
			if !ok {
				return nil, validationErrorf(field, "must contain milestone objects, got %T", item)
			}
			var milestone domain.Milestone
			if title, ok := m["title"].(string); ok {
				milestone.Title = title
			}
			if completed, ok := m["completed"].(bool); ok {
				milestone.Completed = completed
			}
			out = append(out, milestone)
		}
		return out, nil
	}
	return nil, validationErrorf(field, "must be a list of milestones, got %T", value)
}
