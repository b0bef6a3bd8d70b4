// Package oracle calls the external generative service that balances teams.
package oracle

import (
	"context"
	"errors"

	"github.com/XEXEU22/volleyapp/internal/entities"
)

var (
	// ErrMissingCredential signals the oracle is not configured. Treated as an
	// immediate failure by callers, which then fall back to the random draw.
	ErrMissingCredential = errors.New("oracle credential missing")
	// ErrBadResponse signals a malformed or schema-violating oracle reply.
	ErrBadResponse = errors.New("oracle response malformed")
)

// Client produces a balanced partition of the given players into teamCount
// id groups. Implementations must validate the response shape strictly; any
// deviation is an error, never a best-effort result.
type Client interface {
	BalanceTeams(ctx context.Context, players []entities.Player, teamCount int) ([][]string, error)
}
