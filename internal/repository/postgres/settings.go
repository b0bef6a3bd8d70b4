package postgres

import (
	"context"
	"fmt"

	"github.com/XEXEU22/volleyapp/internal/entities"
)

const (
	// First read initializes the account to the dark theme.
	initSettingsQuery = `
INSERT INTO account_settings(owner_id, theme)
VALUES ($1, 'dark')
ON CONFLICT (owner_id) DO NOTHING`

	selectSettingsQuery = `SELECT owner_id, theme FROM account_settings WHERE owner_id=$1`

	updateSettingsQuery = `
UPDATE account_settings SET theme=$2, updated_at=NOW()
WHERE owner_id=$1
RETURNING owner_id, theme`
)

// GetSettings fetches per-account settings, creating the default record on
// first access.
func (p *Postgres) GetSettings(ctx context.Context, ownerID string) (*entities.Settings, error) {
	if _, err := p.db.Exec(ctx, initSettingsQuery, ownerID); err != nil {
		return nil, fmt.Errorf("init settings: %w", err)
	}

	var s entities.Settings
	if err := p.db.QueryRow(ctx, selectSettingsQuery, ownerID).Scan(&s.OwnerID, &s.Theme); err != nil {
		return nil, fmt.Errorf("get settings: %w", err)
	}
	return &s, nil
}

// UpdateSettings persists the theme preference.
func (p *Postgres) UpdateSettings(ctx context.Context, settings entities.Settings) (*entities.Settings, error) {
	if _, err := p.db.Exec(ctx, initSettingsQuery, settings.OwnerID); err != nil {
		return nil, fmt.Errorf("init settings: %w", err)
	}

	var s entities.Settings
	if err := p.db.QueryRow(ctx, updateSettingsQuery, settings.OwnerID, settings.Theme).Scan(&s.OwnerID, &s.Theme); err != nil {
		p.log.Errorw("failed to update settings", "error", err, "owner_id", settings.OwnerID)
		return nil, fmt.Errorf("update settings: %w", err)
	}

	p.log.Infow("settings updated", "owner_id", s.OwnerID, "theme", s.Theme)
	return &s, nil
}
