package domain

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/XEXEU22/volleyapp/internal/entities"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type oracleStub struct {
	assignment [][]string
	err        error
	calls      int
}

func (o *oracleStub) BalanceTeams(_ context.Context, _ []entities.Player, _ int) ([][]string, error) {
	o.calls++
	return o.assignment, o.err
}

func rosterOf(n int) []entities.Player {
	players := make([]entities.Player, 0, n)
	for i := 0; i < n; i++ {
		players = append(players, entities.Player{ID: fmt.Sprintf("p%d", i), Name: fmt.Sprintf("Player %d", i)})
	}
	return players
}

func idsOf(players []entities.Player) []string {
	ids := make([]string, 0, len(players))
	for _, p := range players {
		ids = append(ids, p.ID)
	}
	return ids
}

func newDrawUsecase(repo *repoMock, stub *oracleStub) *Usecase {
	uc := newTestUsecase(repo)
	if stub != nil {
		uc.oracle = stub
	}
	return uc
}

func TestUsecase_DrawTeamsRejectsUnknownMethod(t *testing.T) {
	repo := &repoMock{}
	uc := newDrawUsecase(repo, nil)

	_, err := uc.DrawTeams(context.Background(), "o1", idsOf(rosterOf(12)), 6, "ai")
	require.ErrorIs(t, err, entities.ErrInvalidArgument)
}

func TestUsecase_DrawTeamsRejectsUnknownTeamSize(t *testing.T) {
	repo := &repoMock{}
	uc := newDrawUsecase(repo, nil)

	_, err := uc.DrawTeams(context.Background(), "o1", idsOf(rosterOf(10)), 5, entities.DrawRandom)
	require.ErrorIs(t, err, entities.ErrInvalidArgument)
}

func TestUsecase_DrawTeamsRejectsSmallSelection(t *testing.T) {
	repo := &repoMock{}
	stub := &oracleStub{}
	uc := newDrawUsecase(repo, stub)

	_, err := uc.DrawTeams(context.Background(), "o1", idsOf(rosterOf(11)), 6, entities.DrawOracle)
	require.ErrorIs(t, err, entities.ErrInvalidArgument)
	require.Zero(t, stub.calls, "oracle must not be consulted before validation passes")
	repo.AssertNotCalled(t, "PlayersByIDs", mock.Anything, mock.Anything, mock.Anything)
}

func TestUsecase_DrawTeamsRandomPartition(t *testing.T) {
	repo := &repoMock{}
	uc := newDrawUsecase(repo, nil)

	players := rosterOf(12)
	repo.On("PlayersByIDs", mock.Anything, "o1", idsOf(players)).Return(players, nil)

	res, err := uc.DrawTeams(context.Background(), "o1", idsOf(players), 6, entities.DrawRandom)
	require.NoError(t, err)
	require.Equal(t, entities.DrawRandom, res.Method)
	require.Len(t, res.Teams, 2)

	seen := map[string]struct{}{}
	for _, team := range res.Teams {
		require.Len(t, team.Players, 6)
		for _, p := range team.Players {
			_, dup := seen[p.ID]
			require.False(t, dup, "player %s assigned twice", p.ID)
			seen[p.ID] = struct{}{}
		}
	}
	require.Len(t, seen, 12)
}

func TestUsecase_DrawTeamsExcludesLeftovers(t *testing.T) {
	repo := &repoMock{}
	uc := newDrawUsecase(repo, nil)

	players := rosterOf(14)
	repo.On("PlayersByIDs", mock.Anything, "o1", idsOf(players)).Return(players, nil)

	res, err := uc.DrawTeams(context.Background(), "o1", idsOf(players), 6, entities.DrawRandom)
	require.NoError(t, err)
	require.Len(t, res.Teams, 2)
	assigned := 0
	for _, team := range res.Teams {
		require.Len(t, team.Players, 6)
		assigned += len(team.Players)
	}
	require.Equal(t, 12, assigned)
}

func TestUsecase_DrawTeamsDeduplicatesSelection(t *testing.T) {
	repo := &repoMock{}
	uc := newDrawUsecase(repo, nil)

	players := rosterOf(8)
	selection := append(idsOf(players), "p0", "", "p1")
	repo.On("PlayersByIDs", mock.Anything, "o1", idsOf(players)).Return(players, nil)

	res, err := uc.DrawTeams(context.Background(), "o1", selection, 4, entities.DrawRandom)
	require.NoError(t, err)
	require.Len(t, res.Teams, 2)
	repo.AssertExpectations(t)
}

func TestUsecase_DrawTeamsOracleAssignment(t *testing.T) {
	repo := &repoMock{}
	players := rosterOf(8)
	stub := &oracleStub{assignment: [][]string{
		{"p0", "p2", "p4", "p6"},
		{"p1", "p3", "p5", "p7"},
	}}
	uc := newDrawUsecase(repo, stub)

	repo.On("PlayersByIDs", mock.Anything, "o1", idsOf(players)).Return(players, nil)

	res, err := uc.DrawTeams(context.Background(), "o1", idsOf(players), 4, entities.DrawOracle)
	require.NoError(t, err)
	require.Equal(t, entities.DrawOracle, res.Method)
	require.Len(t, res.Teams, 2)
	require.Equal(t, "p0", res.Teams[0].Players[0].ID)
	require.Equal(t, "p7", res.Teams[1].Players[3].ID)
	require.Equal(t, 1, stub.calls)
}

func TestUsecase_DrawTeamsOracleDropsUnknownIDs(t *testing.T) {
	repo := &repoMock{}
	players := rosterOf(8)
	stub := &oracleStub{assignment: [][]string{
		{"p0", "p1", "p2", "ghost"},
		{"p3", "p4", "p5", "p0"}, // p0 already used, must not appear twice
	}}
	uc := newDrawUsecase(repo, stub)

	repo.On("PlayersByIDs", mock.Anything, "o1", idsOf(players)).Return(players, nil)

	res, err := uc.DrawTeams(context.Background(), "o1", idsOf(players), 4, entities.DrawOracle)
	require.NoError(t, err)
	require.Len(t, res.Teams, 2)
	require.Len(t, res.Teams[0].Players, 3)
	require.Len(t, res.Teams[1].Players, 3)

	seen := map[string]int{}
	for _, team := range res.Teams {
		for _, p := range team.Players {
			seen[p.ID]++
		}
	}
	require.Equal(t, 1, seen["p0"])
	require.NotContains(t, seen, "ghost")
}

func TestUsecase_DrawTeamsOracleFallbackToRandom(t *testing.T) {
	repo := &repoMock{}
	players := rosterOf(12)
	stub := &oracleStub{err: errors.New("upstream unavailable")}
	uc := newDrawUsecase(repo, stub)

	repo.On("PlayersByIDs", mock.Anything, "o1", idsOf(players)).Return(players, nil)

	res, err := uc.DrawTeams(context.Background(), "o1", idsOf(players), 6, entities.DrawOracle)
	require.NoError(t, err, "oracle failures must never surface to the caller")
	require.Equal(t, entities.DrawRandom, res.Method)
	require.Len(t, res.Teams, 2)
	for _, team := range res.Teams {
		require.Len(t, team.Players, 6)
	}
	require.Equal(t, 1, stub.calls)
}
