package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/XEXEU22/volleyapp/internal/entities"

	"github.com/jackc/pgx/v5"
)

const (
	selectProfileQuery = `
SELECT owner_id, name, bio, age, phone, gender, level, avatar_url, updated_at
FROM profiles
WHERE owner_id=$1`

	upsertProfileQuery = `
INSERT INTO profiles(owner_id, name, bio, age, phone, gender, level, avatar_url, updated_at)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,NOW())
ON CONFLICT (owner_id) DO UPDATE SET
    name = EXCLUDED.name,
    bio = EXCLUDED.bio,
    age = EXCLUDED.age,
    phone = EXCLUDED.phone,
    gender = EXCLUDED.gender,
    level = EXCLUDED.level,
    avatar_url = EXCLUDED.avatar_url,
    updated_at = NOW()
RETURNING updated_at`
)

// GetProfile fetches the owner's profile.
func (p *Postgres) GetProfile(ctx context.Context, ownerID string) (*entities.Profile, error) {
	var pr entities.Profile
	var updatedAt time.Time
	err := p.db.QueryRow(ctx, selectProfileQuery, ownerID).
		Scan(&pr.OwnerID, &pr.Name, &pr.Bio, &pr.Age, &pr.Phone, &pr.Gender, &pr.Level, &pr.AvatarURL, &updatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrProfileNotFound
		}
		return nil, fmt.Errorf("get profile: %w", err)
	}
	pr.UpdatedAt = &updatedAt
	return &pr, nil
}

// UpsertProfile writes the owner's profile, replacing any previous record.
func (p *Postgres) UpsertProfile(ctx context.Context, profile entities.Profile) (*entities.Profile, error) {
	var updatedAt time.Time
	err := p.db.QueryRow(ctx, upsertProfileQuery,
		profile.OwnerID, profile.Name, profile.Bio, profile.Age, profile.Phone, profile.Gender, profile.Level, profile.AvatarURL,
	).Scan(&updatedAt)
	if err != nil {
		p.log.Errorw("failed to upsert profile", "error", err, "owner_id", profile.OwnerID)
		return nil, fmt.Errorf("upsert profile: %w", err)
	}

	profile.UpdatedAt = &updatedAt
	p.log.Infow("profile saved", "owner_id", profile.OwnerID)
	return &profile, nil
}
