// Package domain contains application Usecases orchestrating roster logic by export.
package domain

import (
	"context"
	"encoding/json"
	"fmt"
)

type exportSkills struct {
	Attack    int `json:"attack"`
	Defense   int `json:"defense"`
	Reception int `json:"reception"`
	Setting   int `json:"setting"`
	Serve     int `json:"serve"`
	Block     int `json:"block"`
}

type exportPlayer struct {
	ID        string       `json:"id"`
	Name      string       `json:"name"`
	Gender    string       `json:"gender"`
	Level     string       `json:"level"`
	Rating    float64      `json:"rating"`
	IsMVP     bool         `json:"is_mvp"`
	AvatarURL string       `json:"avatar_url"`
	Skills    exportSkills `json:"skills"`
}

// ExportRoster serializes the full roster to an indented JSON document for
// offline backup. Direct field mapping, no transformation.
func (u *Usecase) ExportRoster(ctx context.Context, ownerID string) ([]byte, error) {
	ctx, cancel := withTimeout(ctx, u.opts.Timeout)
	defer cancel()

	players, err := u.repo.ListPlayers(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	doc := make([]exportPlayer, 0, len(players))
	for _, p := range players {
		doc = append(doc, exportPlayer{
			ID:        p.ID,
			Name:      p.Name,
			Gender:    string(p.Gender),
			Level:     string(p.Level),
			Rating:    p.Rating,
			IsMVP:     p.MVP,
			AvatarURL: p.AvatarURL,
			Skills: exportSkills{
				Attack:    p.Skills.Attack,
				Defense:   p.Skills.Defense,
				Reception: p.Skills.Reception,
				Setting:   p.Skills.Setting,
				Serve:     p.Skills.Serve,
				Block:     p.Skills.Block,
			},
		})
	}

	encoded, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal roster export: %w", err)
	}

	u.log.Infow("roster exported", "owner_id", ownerID, "players", len(doc))
	return encoded, nil
}
