// Package domain contains application Usecases orchestrating roster logic by profile.
package domain

import (
	"context"
	"fmt"
	"strings"

	"github.com/XEXEU22/volleyapp/internal/entities"
)

// Profile returns the owner's profile.
func (u *Usecase) Profile(ctx context.Context, ownerID string) (*entities.Profile, error) {
	ctx, cancel := withTimeout(ctx, u.opts.Timeout)
	defer cancel()
	return u.repo.GetProfile(ctx, ownerID)
}

// SaveProfile validates and upserts the owner's profile.
func (u *Usecase) SaveProfile(ctx context.Context, profile entities.Profile) (*entities.Profile, error) {
	ctx, cancel := withTimeout(ctx, u.opts.Timeout)
	defer cancel()

	if strings.TrimSpace(profile.Name) == "" {
		return nil, fmt.Errorf("%w: name is required", entities.ErrInvalidArgument)
	}
	if profile.Gender != "" && !entities.ValidGender(profile.Gender) {
		return nil, fmt.Errorf("%w: unknown gender %q", entities.ErrInvalidArgument, profile.Gender)
	}
	if profile.Level != "" && !entities.ValidLevel(profile.Level) {
		return nil, fmt.Errorf("%w: unknown level %q", entities.ErrInvalidArgument, profile.Level)
	}
	if profile.Age != nil && (*profile.Age < 0 || *profile.Age > 130) {
		return nil, fmt.Errorf("%w: age is out of range", entities.ErrInvalidArgument)
	}

	return u.repo.UpsertProfile(ctx, profile)
}
