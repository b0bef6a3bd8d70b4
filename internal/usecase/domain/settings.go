// Package domain contains application Usecases orchestrating roster logic by settings.
package domain

import (
	"context"
	"fmt"

	"github.com/XEXEU22/volleyapp/internal/entities"
)

// Settings returns per-account application state, initializing the default
// theme on first access.
func (u *Usecase) Settings(ctx context.Context, ownerID string) (*entities.Settings, error) {
	ctx, cancel := withTimeout(ctx, u.opts.Timeout)
	defer cancel()
	return u.repo.GetSettings(ctx, ownerID)
}

// SaveSettings persists the theme preference.
func (u *Usecase) SaveSettings(ctx context.Context, settings entities.Settings) (*entities.Settings, error) {
	ctx, cancel := withTimeout(ctx, u.opts.Timeout)
	defer cancel()

	if !entities.ValidTheme(settings.Theme) {
		return nil, fmt.Errorf("%w: unknown theme %q", entities.ErrInvalidArgument, settings.Theme)
	}
	return u.repo.UpdateSettings(ctx, settings)
}
