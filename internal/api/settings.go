package api

import (
	"context"
	"io"

	"planner/internal/cache"
	"planner/internal/domain"
	"planner/internal/validation"
)

// GetSettings returns the branding/preferences singleton with defaults
// filled in. When no row has ever been stored the full defaults are
// returned; consumers never see an absent row.
func (c *Client) GetSettings(ctx context.Context) (*domain.PlannerSettings, error) {
	return cache.GetOrFetch(c.cache, cache.KeySettings, func() (*domain.PlannerSettings, error) {
		stored, err := c.repo.GetSettings(ctx)
		if err != nil {
			return nil, err
		}
		if stored == nil {
			defaults := domain.DefaultSettings()
			return &defaults, nil
		}
		filled := stored.WithDefaults()
		return &filled, nil
	})
}

// SaveSettings validates and stores the settings singleton, creating the row
// on first save and updating it thereafter.
func (c *Client) SaveSettings(ctx context.Context, settings *domain.PlannerSettings) error {
	if err := validation.ValidateSettings(settings); err != nil {
		return err
	}

	stored, err := c.repo.GetSettings(ctx)
	if err != nil {
		return err
	}

	if stored == nil {
		settings.ID = ""
		if err := c.repo.CreateSettings(ctx, settings); err != nil {
			return err
		}
	} else {
		settings.ID = stored.ID
		if err := c.repo.UpdateSettings(ctx, settings); err != nil {
			return err
		}
	}

	c.cache.Invalidate(cache.KeySettings)
	return nil
}

// UploadLogo stores a logo image and saves its URL into the settings.
func (c *Client) UploadLogo(ctx context.Context, originalName string, r io.Reader) (*domain.PlannerSettings, error) {
	url, err := c.store.UploadFile(originalName, r)
	if err != nil {
		return nil, err
	}

	settings, err := c.GetSettings(ctx)
	if err != nil {
		return nil, err
	}

	updated := *settings
	updated.LogoURL = url
	if err := c.SaveSettings(ctx, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}
