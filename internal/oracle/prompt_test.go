package oracle

import (
	"testing"

	"github.com/XEXEU22/volleyapp/internal/entities"

	"github.com/stretchr/testify/require"
)

func TestBuildPromptMentionsEveryPlayer(t *testing.T) {
	players := []entities.Player{
		{ID: "p1", Name: "Ana", Rating: 4.5, Gender: entities.GenderFemale},
		{ID: "p2", Name: "Bruno", Rating: 3.2, Gender: entities.GenderMale},
	}

	prompt, err := BuildPrompt(players, 2)
	require.NoError(t, err)
	require.Contains(t, prompt, `"team1": ["id", ...]`)
	require.Contains(t, prompt, `"team2": ["id", ...]`)
	require.Contains(t, prompt, `"id":"p1"`)
	require.Contains(t, prompt, `"id":"p2"`)
	require.Contains(t, prompt, "gender")
}

func TestParseAssignmentValid(t *testing.T) {
	teams, err := ParseAssignment(`{"team1": ["a", "b"], "team2": ["c", "d"]}`, 2)
	require.NoError(t, err)
	require.Equal(t, [][]string{{"a", "b"}, {"c", "d"}}, teams)
}

func TestParseAssignmentStripsCodeFence(t *testing.T) {
	raw := "```json\n{\"team1\": [\"a\"], \"team2\": [\"b\"]}\n```"
	teams, err := ParseAssignment(raw, 2)
	require.NoError(t, err)
	require.Equal(t, [][]string{{"a"}, {"b"}}, teams)
}

func TestParseAssignmentRejectsMalformed(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"not_json", "teams: a b c"},
		{"missing_key", `{"team1": ["a"]}`},
		{"extra_key", `{"team1": ["a"], "team2": ["b"], "team3": ["c"]}`},
		{"wrong_key", `{"team1": ["a"], "squad2": ["b"]}`},
		{"not_string_array", `{"team1": ["a"], "team2": [1, 2]}`},
		{"object_value", `{"team1": ["a"], "team2": {"id": "b"}}`},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseAssignment(tt.raw, 2)
			require.ErrorIs(t, err, ErrBadResponse)
		})
	}
}
