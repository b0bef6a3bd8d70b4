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
	playerColumns = `id, owner_id, name, gender, level, rating, is_mvp, avatar_url,
skill_attack, skill_defense, skill_reception, skill_setting, skill_serve, skill_block, created_at`

	listPlayersQuery = `SELECT ` + playerColumns + `
FROM players
WHERE owner_id=$1
ORDER BY created_at DESC`

	playersByIDsQuery = `SELECT ` + playerColumns + `
FROM players
WHERE owner_id=$1 AND id = ANY($2::uuid[])`

	insertPlayerQuery = `
INSERT INTO players(id, owner_id, name, gender, level, rating, is_mvp, avatar_url,
skill_attack, skill_defense, skill_reception, skill_setting, skill_serve, skill_block)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14)
RETURNING created_at`

	updatePlayerQuery = `
UPDATE players
SET name=$3, gender=$4, level=$5, rating=$6, is_mvp=$7, avatar_url=$8,
    skill_attack=$9, skill_defense=$10, skill_reception=$11, skill_setting=$12, skill_serve=$13, skill_block=$14
WHERE id=$1 AND owner_id=$2
RETURNING created_at`

	deletePlayerQuery = `DELETE FROM players WHERE id=$1 AND owner_id=$2`
)

func scanPlayer(row pgx.Row) (*entities.Player, error) {
	var pl entities.Player
	var createdAt time.Time
	err := row.Scan(
		&pl.ID, &pl.OwnerID, &pl.Name, &pl.Gender, &pl.Level, &pl.Rating, &pl.MVP, &pl.AvatarURL,
		&pl.Skills.Attack, &pl.Skills.Defense, &pl.Skills.Reception, &pl.Skills.Setting, &pl.Skills.Serve, &pl.Skills.Block,
		&createdAt,
	)
	if err != nil {
		return nil, err
	}
	pl.CreatedAt = &createdAt
	return &pl, nil
}

func (p *Postgres) collectPlayers(rows pgx.Rows) ([]entities.Player, error) {
	defer rows.Close()

	players := make([]entities.Player, 0)
	for rows.Next() {
		pl, err := scanPlayer(rows)
		if err != nil {
			p.log.Errorw("failed to scan player", "error", err)
			return nil, fmt.Errorf("scan player: %w", err)
		}
		players = append(players, *pl)
	}
	if err := rows.Err(); err != nil {
		p.log.Errorw("error iterating players", "error", err)
		return nil, fmt.Errorf("iterate players: %w", err)
	}
	return players, nil
}

// ListPlayers returns the owner's roster, newest first.
func (p *Postgres) ListPlayers(ctx context.Context, ownerID string) ([]entities.Player, error) {
	rows, err := p.db.Query(ctx, listPlayersQuery, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list players: %w", err)
	}
	return p.collectPlayers(rows)
}

// PlayersByIDs returns the owner's players matching the given ids. Ids that do
// not belong to the owner are simply absent from the result.
func (p *Postgres) PlayersByIDs(ctx context.Context, ownerID string, ids []string) ([]entities.Player, error) {
	rows, err := p.db.Query(ctx, playersByIDsQuery, ownerID, ids)
	if err != nil {
		return nil, fmt.Errorf("players by ids: %w", err)
	}
	return p.collectPlayers(rows)
}

// CreatePlayer inserts a player row.
func (p *Postgres) CreatePlayer(ctx context.Context, player entities.Player) (*entities.Player, error) {
	var createdAt time.Time
	err := p.db.QueryRow(ctx, insertPlayerQuery,
		player.ID, player.OwnerID, player.Name, player.Gender, player.Level, player.Rating, player.MVP, player.AvatarURL,
		player.Skills.Attack, player.Skills.Defense, player.Skills.Reception, player.Skills.Setting, player.Skills.Serve, player.Skills.Block,
	).Scan(&createdAt)
	if err != nil {
		p.log.Errorw("failed to insert player", "error", err, "owner_id", player.OwnerID)
		return nil, fmt.Errorf("insert player: %w", err)
	}

	player.CreatedAt = &createdAt
	p.log.Infow("player created", "player_id", player.ID, "owner_id", player.OwnerID)
	return &player, nil
}

// UpdatePlayer rewrites a player row scoped by owner.
func (p *Postgres) UpdatePlayer(ctx context.Context, player entities.Player) (*entities.Player, error) {
	var createdAt time.Time
	err := p.db.QueryRow(ctx, updatePlayerQuery,
		player.ID, player.OwnerID, player.Name, player.Gender, player.Level, player.Rating, player.MVP, player.AvatarURL,
		player.Skills.Attack, player.Skills.Defense, player.Skills.Reception, player.Skills.Setting, player.Skills.Serve, player.Skills.Block,
	).Scan(&createdAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrPlayerNotFound
		}
		p.log.Errorw("failed to update player", "error", err, "player_id", player.ID)
		return nil, fmt.Errorf("update player: %w", err)
	}

	player.CreatedAt = &createdAt
	p.log.Infow("player updated", "player_id", player.ID)
	return &player, nil
}

// DeletePlayer removes a player row scoped by owner.
func (p *Postgres) DeletePlayer(ctx context.Context, ownerID, playerID string) error {
	tag, err := p.db.Exec(ctx, deletePlayerQuery, playerID, ownerID)
	if err != nil {
		p.log.Errorw("failed to delete player", "error", err, "player_id", playerID)
		return fmt.Errorf("delete player: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return entities.ErrPlayerNotFound
	}

	p.log.Infow("player deleted", "player_id", playerID, "owner_id", ownerID)
	return nil
}
