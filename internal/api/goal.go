package api

import (
	"context"

	"planner/internal/cache"
	"planner/internal/domain"
	"planner/internal/validation"
)

// ListGoals returns all goals, newest first, served from the cache when
// fresh.
func (c *Client) ListGoals(ctx context.Context) ([]*domain.Goal, error) {
	return cache.GetOrFetch(c.cache, cache.KeyGoals, func() ([]*domain.Goal, error) {
		return c.repo.ListGoals(ctx)
	})
}

// GetGoal retrieves a single goal by id.
func (c *Client) GetGoal(ctx context.Context, id string) (*domain.Goal, error) {
	return c.repo.GetGoal(ctx, id)
}

// CreateGoal validates and stores a new goal. The id must be unset; the
// repository assigns it.
func (c *Client) CreateGoal(ctx context.Context, goal *domain.Goal) error {
	if err := rejectCallerID(goal.ID); err != nil {
		return err
	}
	if err := validation.ValidateGoal(goal); err != nil {
		return err
	}
	if err := c.repo.CreateGoal(ctx, goal); err != nil {
		return err
	}
	c.cache.Invalidate(cache.KeyGoals)
	return nil
}

// UpdateGoal applies a partial update to the goal with the given id. Fields
// not named in the payload keep their stored values. Progress and status may
// be set directly; they are never reconciled against milestones here.
func (c *Client) UpdateGoal(ctx context.Context, id string, fields Fields) (*domain.Goal, error) {
	goal, err := c.repo.GetGoal(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := applyGoalFields(goal, fields); err != nil {
		return nil, err
	}
	if err := validation.ValidateGoal(goal); err != nil {
		return nil, err
	}
	if err := c.repo.UpdateGoal(ctx, goal); err != nil {
		return nil, err
	}

	c.cache.Invalidate(cache.KeyGoals)
	return goal, nil
}

// DeleteGoal removes a goal. Deleting an id that does not exist succeeds.
func (c *Client) DeleteGoal(ctx context.Context, id string) error {
	if err := c.repo.DeleteGoal(ctx, id); err != nil {
		return err
	}
	c.cache.Invalidate(cache.KeyGoals)
	return nil
}

func applyGoalFields(goal *domain.Goal, fields Fields) error {
	for field, value := range fields {
		switch field {
		case "title":
			s, err := asString(field, value)
			if err != nil {
				return err
			}
			goal.Title = s
		case "description":
			s, err := asString(field, value)
			if err != nil {
				return err
			}
			goal.Description = s
		case "category":
			s, err := asString(field, value)
			if err != nil {
				return err
			}
			goal.Category = domain.GoalCategory(s)
		case "timeframe":
			s, err := asString(field, value)
			if err != nil {
				return err
			}
			goal.Timeframe = domain.GoalTimeframe(s)
		case "target_date":
			s, err := asString(field, value)
			if err != nil {
				return err
			}
			goal.TargetDate = s
		case "status":
			s, err := asString(field, value)
			if err != nil {
				return err
			}
			goal.Status = domain.GoalStatus(s)
		case "progress":
			n, err := asInt(field, value)
			if err != nil {
				return err
			}
			goal.Progress = n
		case "milestones":
			ms, err := asMilestones(field, value)
			if err != nil {
				return err
			}
			goal.Milestones = ms
		default:
			return unknownFieldError("goal", field)
		}
	}
	return nil
}
