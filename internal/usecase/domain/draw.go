// Package domain contains application Usecases orchestrating roster logic by draw.
package domain

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"

	"github.com/XEXEU22/volleyapp/internal/entities"
)

// DrawTeams partitions the selected players into disjoint teams of exactly
// teamSize members. The oracle method delegates balancing to the external
// service and silently falls back to the random method on any oracle failure;
// validation errors are the only ones surfaced to the caller.
func (u *Usecase) DrawTeams(ctx context.Context, ownerID string, playerIDs []string, teamSize int, method entities.DrawMethod) (*entities.DrawResult, error) {
	if !entities.ValidDrawMethod(method) {
		return nil, fmt.Errorf("%w: unknown draw method %q", entities.ErrInvalidArgument, method)
	}
	if !u.allowedTeamSize(teamSize) {
		return nil, fmt.Errorf("%w: team size must be one of %v", entities.ErrInvalidArgument, u.opts.TeamSizes)
	}

	ids := dedupe(playerIDs)
	if err := u.checkSelection(len(ids), teamSize); err != nil {
		return nil, err
	}

	fetchCtx, cancel := withTimeout(ctx, u.opts.Timeout)
	players, err := u.repo.PlayersByIDs(fetchCtx, ownerID, ids)
	cancel()
	if err != nil {
		return nil, err
	}
	if err := u.checkSelection(len(players), teamSize); err != nil {
		return nil, err
	}

	teamCount := len(players) / teamSize

	if method == entities.DrawOracle && u.oracle != nil {
		// The oracle call runs on the caller's context: the client carries its
		// own network timeout, and the short repository timeout must not apply.
		assignment, err := u.oracle.BalanceTeams(ctx, players, teamCount)
		if err == nil {
			u.log.Infow("draw resolved by oracle", "teams", teamCount, "players", len(players))
			return assignmentResult(players, assignment), nil
		}
		u.log.Warnw("balancing oracle failed, using random draw", "error", err)
	}

	res := randomResult(players, teamCount, teamSize)
	u.log.Infow("draw resolved randomly", "teams", teamCount, "players", len(players))
	return res, nil
}

func (u *Usecase) allowedTeamSize(size int) bool {
	for _, s := range u.opts.TeamSizes {
		if s == size {
			return true
		}
	}
	return false
}

func (u *Usecase) checkSelection(n, teamSize int) error {
	if n < 2*teamSize {
		return fmt.Errorf("%w: at least %d players must be selected for teams of %d", entities.ErrInvalidArgument, 2*teamSize, teamSize)
	}
	return nil
}

// randomResult shuffles uniformly and slices into teams of exactly teamSize;
// leftover players are excluded.
func randomResult(players []entities.Player, teamCount, teamSize int) *entities.DrawResult {
	shuffled := shufflePlayers(players)

	teams := make([]entities.Team, 0, teamCount)
	for i := 0; i < teamCount; i++ {
		members := make([]entities.Player, teamSize)
		copy(members, shuffled[i*teamSize:(i+1)*teamSize])
		teams = append(teams, entities.Team{Players: members})
	}
	return &entities.DrawResult{Method: entities.DrawRandom, Teams: teams}
}

// assignmentResult maps oracle id groups back onto the selection. Ids outside
// the selection are dropped, and no player lands in more than one team.
func assignmentResult(players []entities.Player, assignment [][]string) *entities.DrawResult {
	index := make(map[string]entities.Player, len(players))
	for _, p := range players {
		index[p.ID] = p
	}

	used := make(map[string]struct{}, len(players))
	teams := make([]entities.Team, 0, len(assignment))
	for _, ids := range assignment {
		members := make([]entities.Player, 0, len(ids))
		for _, id := range ids {
			p, ok := index[id]
			if !ok {
				continue
			}
			if _, taken := used[id]; taken {
				continue
			}
			used[id] = struct{}{}
			members = append(members, p)
		}
		teams = append(teams, entities.Team{Players: members})
	}
	return &entities.DrawResult{Method: entities.DrawOracle, Teams: teams}
}

func shufflePlayers(src []entities.Player) []entities.Player {
	out := append([]entities.Player(nil), src...)
	for i := len(out) - 1; i > 0; i-- {
		idxBig, err := rand.Int(rand.Reader, big.NewInt(int64(i+1)))
		if err != nil {
			return out // degraded order, still a valid partition source
		}
		j := idxBig.Int64()
		out[i], out[j] = out[j], out[i]
	}
	return out
}

func dedupe(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
