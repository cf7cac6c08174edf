package api

import (
	"context"

	"planner/internal/cache"
	"planner/internal/domain"
	"planner/internal/validation"
)

// ListTasks returns all tasks, newest first, served from the cache when
// fresh.
func (c *Client) ListTasks(ctx context.Context) ([]*domain.Task, error) {
	return cache.GetOrFetch(c.cache, cache.KeyTasks, func() ([]*domain.Task, error) {
		return c.repo.ListTasks(ctx)
	})
}

// GetTask retrieves a single task by id.
func (c *Client) GetTask(ctx context.Context, id string) (*domain.Task, error) {
	return c.repo.GetTask(ctx, id)
}

// CreateTask validates and stores a new task. The id must be unset; the
// repository assigns it.
func (c *Client) CreateTask(ctx context.Context, task *domain.Task) error {
	if err := rejectCallerID(task.ID); err != nil {
		return err
	}
	if err := validation.ValidateTask(task); err != nil {
		return err
	}
	if err := c.repo.CreateTask(ctx, task); err != nil {
		return err
	}
	c.cache.Invalidate(cache.KeyTasks)
	return nil
}

// UpdateTask applies a partial update to the task with the given id. Fields
// not named in the payload keep their stored values.
func (c *Client) UpdateTask(ctx context.Context, id string, fields Fields) (*domain.Task, error) {
	task, err := c.repo.GetTask(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := applyTaskFields(task, fields); err != nil {
		return nil, err
	}
	if err := validation.ValidateTask(task); err != nil {
		return nil, err
	}
	if err := c.repo.UpdateTask(ctx, task); err != nil {
		return nil, err
	}

	c.cache.Invalidate(cache.KeyTasks)
	return task, nil
}

// DeleteTask removes a task. Deleting an id that does not exist succeeds.
func (c *Client) DeleteTask(ctx context.Context, id string) error {
	if err := c.repo.DeleteTask(ctx, id); err != nil {
		return err
	}
	c.cache.Invalidate(cache.KeyTasks)
	return nil
}

func applyTaskFields(task *domain.Task, fields Fields) error {
	for field, value := range fields {
		switch field {
		case "title":
			s, err := asString(field, value)
			if err != nil {
				return err
			}
			task.Title = s
		case "description":
			s, err := asString(field, value)
			if err != nil {
				return err
			}
			task.Description = s
		case "due_date":
			s, err := asString(field, value)
			if err != nil {
				return err
			}
			task.DueDate = s
		case "due_time":
			s, err := asString(field, value)
			if err != nil {
				return err
			}
			task.DueTime = s
		case "priority":
			s, err := asString(field, value)
			if err != nil {
				return err
			}
			task.Priority = domain.TaskPriority(s)
		case "status":
			s, err := asString(field, value)
			if err != nil {
				return err
			}
			task.Status = domain.TaskStatus(s)
		case "category":
			s, err := asString(field, value)
			if err != nil {
				return err
			}
			task.Category = s
		default:
			return unknownFieldError("task", field)
		}
	}
	return nil
}
