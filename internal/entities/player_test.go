package entities

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSkillsOverallRounding(t *testing.T) {
	s := Skills{Attack: 4, Defense: 5, Reception: 5, Setting: 5, Serve: 5, Block: 4}
	// mean 28/6 = 4.666..., rounded to one decimal
	require.Equal(t, 4.7, s.Overall())
}

func TestDeriveRatingBelowMVPThreshold(t *testing.T) {
	p := Player{Skills: Skills{Attack: 4, Defense: 5, Reception: 5, Setting: 5, Serve: 5, Block: 4}}
	p.DeriveRating()
	require.Equal(t, 4.7, p.Rating)
	require.False(t, p.MVP)
}

func TestDeriveRatingMVP(t *testing.T) {
	p := Player{Skills: Skills{Attack: 5, Defense: 5, Reception: 5, Setting: 5, Serve: 5, Block: 5}}
	p.DeriveRating()
	require.Equal(t, 5.0, p.Rating)
	require.True(t, p.MVP)

	p.Skills = Skills{Attack: 5, Defense: 5, Reception: 5, Setting: 5, Serve: 5, Block: 4}
	p.DeriveRating()
	// mean 29/6 = 4.833... rounds to 4.8, exactly at the threshold
	require.Equal(t, 4.8, p.Rating)
	require.True(t, p.MVP)
}

func TestSkillsValidateBounds(t *testing.T) {
	valid := Skills{Attack: 1, Defense: 5, Reception: 3, Setting: 2, Serve: 4, Block: 1}
	require.NoError(t, valid.Validate())

	low := valid
	low.Serve = 0
	require.ErrorIs(t, low.Validate(), ErrInvalidArgument)

	high := valid
	high.Block = 6
	require.ErrorIs(t, high.Validate(), ErrInvalidArgument)
}

func TestValidEnums(t *testing.T) {
	require.True(t, ValidGender(GenderMale))
	require.True(t, ValidGender(GenderFemale))
	require.False(t, ValidGender("other"))

	require.True(t, ValidLevel(LevelCaptain))
	require.False(t, ValidLevel("legend"))

	require.True(t, ValidDrawMethod(DrawOracle))
	require.False(t, ValidDrawMethod("ai"))

	require.True(t, ValidTransactionType(TransactionWithdrawal))
	require.False(t, ValidTransactionType("transfer"))

	require.True(t, ValidTheme(ThemeLight))
	require.False(t, ValidTheme("solarized"))
}

func TestReconcileRosterReplacesInPlace(t *testing.T) {
	roster := []Player{{ID: "a", Name: "Ana"}, {ID: "b", Name: "Bia"}}
	out := ReconcileRoster(roster, Player{ID: "b", Name: "Beatriz"})

	require.Len(t, out, 2)
	require.Equal(t, "Beatriz", out[1].Name)
	require.Equal(t, "Bia", roster[1].Name, "input roster must not be mutated")
}

func TestReconcileRosterPrependsNew(t *testing.T) {
	roster := []Player{{ID: "a"}, {ID: "b"}}
	out := ReconcileRoster(roster, Player{ID: "c"})

	require.Len(t, out, 3)
	require.Equal(t, "c", out[0].ID)
	require.Equal(t, "a", out[1].ID)
}
