// Package domain contains application Usecases orchestrating roster logic by player.
package domain

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/XEXEU22/volleyapp/internal/entities"

	"github.com/google/uuid"
)

// Players returns the owner's roster, newest first.
func (u *Usecase) Players(ctx context.Context, ownerID string) ([]entities.Player, error) {
	ctx, cancel := withTimeout(ctx, u.opts.Timeout)
	defer cancel()
	return u.repo.ListPlayers(ctx, ownerID)
}

// CreatePlayer validates and stores a new player. Rating and MVP flag are
// derived from the skill vector, never taken from the caller.
func (u *Usecase) CreatePlayer(ctx context.Context, player entities.Player) (*entities.Player, error) {
	ctx, cancel := withTimeout(ctx, u.opts.Timeout)
	defer cancel()

	if err := validatePlayer(player); err != nil {
		return nil, err
	}

	player.ID = uuid.NewString()
	player.DeriveRating()

	res, err := u.repo.CreatePlayer(ctx, player)
	if err != nil {
		return nil, err
	}
	u.log.Infow("player create", "player_id", res.ID)
	return res, nil
}

// UpdatePlayer validates and rewrites an existing player.
func (u *Usecase) UpdatePlayer(ctx context.Context, player entities.Player) (*entities.Player, error) {
	ctx, cancel := withTimeout(ctx, u.opts.Timeout)
	defer cancel()

	if player.ID == "" {
		return nil, fmt.Errorf("%w: player id is required", entities.ErrInvalidArgument)
	}
	if err := validatePlayer(player); err != nil {
		return nil, err
	}

	player.DeriveRating()
	return u.repo.UpdatePlayer(ctx, player)
}

// DeletePlayer removes a player by id.
func (u *Usecase) DeletePlayer(ctx context.Context, ownerID, playerID string) error {
	ctx, cancel := withTimeout(ctx, u.opts.Timeout)
	defer cancel()

	if playerID == "" {
		return fmt.Errorf("%w: player id is required", entities.ErrInvalidArgument)
	}
	return u.repo.DeletePlayer(ctx, ownerID, playerID)
}

// UploadAvatar stores an avatar image under the owner's prefix and returns
// its public URL.
func (u *Usecase) UploadAvatar(ctx context.Context, ownerID, filename, contentType string, size int64, r io.Reader) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".jpg", ".jpeg", ".png", ".webp":
	default:
		return "", fmt.Errorf("%w: unsupported avatar format %q", entities.ErrInvalidArgument, ext)
	}

	objectPath := fmt.Sprintf("%s/%s%s", ownerID, uuid.NewString(), ext)
	if err := u.blob.Upload(ctx, objectPath, r, size, contentType); err != nil {
		return "", err
	}

	url := u.blob.PublicURL(objectPath)
	u.log.Infow("avatar uploaded", "owner_id", ownerID, "url", url)
	return url, nil
}

func validatePlayer(player entities.Player) error {
	if strings.TrimSpace(player.Name) == "" {
		return fmt.Errorf("%w: name is required", entities.ErrInvalidArgument)
	}
	if !entities.ValidGender(player.Gender) {
		return fmt.Errorf("%w: unknown gender %q", entities.ErrInvalidArgument, player.Gender)
	}
	if !entities.ValidLevel(player.Level) {
		return fmt.Errorf("%w: unknown level %q", entities.ErrInvalidArgument, player.Level)
	}
	return player.Skills.Validate()
}
