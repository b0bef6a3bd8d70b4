package oracle

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/XEXEU22/volleyapp/config"
	"github.com/XEXEU22/volleyapp/internal/entities"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func testPlayers() []entities.Player {
	return []entities.Player{
		{ID: "p1", Name: "Ana", Gender: entities.GenderFemale},
		{ID: "p2", Name: "Bruno", Gender: entities.GenderMale},
		{ID: "p3", Name: "Clara", Gender: entities.GenderFemale},
		{ID: "p4", Name: "Davi", Gender: entities.GenderMale},
	}
}

func TestOpenAIBalanceTeamsMissingCredential(t *testing.T) {
	client := NewOpenAI(zap.NewNop().Sugar(), config.OracleConfig{APIURL: "http://localhost:0"})

	_, err := client.BalanceTeams(context.Background(), testPlayers(), 2)
	require.ErrorIs(t, err, ErrMissingCredential)
}

func TestOpenAIBalanceTeamsRoundtrip(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		var body struct {
			Model string `json:"model"`
			Input string `json:"input"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Equal(t, "test-model", body.Model)
		require.Contains(t, body.Input, `"id":"p1"`)

		_ = json.NewEncoder(w).Encode(map[string]any{
			"output_text": `{"team1": ["p1", "p4"], "team2": ["p2", "p3"]}`,
		})
	}))
	defer srv.Close()

	client := NewOpenAI(zap.NewNop().Sugar(), config.OracleConfig{
		APIURL:  srv.URL,
		APIKey:  "test-key",
		Model:   "test-model",
		Timeout: time.Second,
	})

	teams, err := client.BalanceTeams(context.Background(), testPlayers(), 2)
	require.NoError(t, err)
	require.Equal(t, [][]string{{"p1", "p4"}, {"p2", "p3"}}, teams)
}

func TestOpenAIBalanceTeamsOutputFallbackField(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{
			"output": []map[string]any{{
				"content": []map[string]any{{
					"type": "output_text",
					"text": `{"team1": ["p1", "p2"], "team2": ["p3", "p4"]}`,
				}},
			}},
		})
	}))
	defer srv.Close()

	client := NewOpenAI(zap.NewNop().Sugar(), config.OracleConfig{
		APIURL: srv.URL, APIKey: "test-key", Model: "test-model", Timeout: time.Second,
	})

	teams, err := client.BalanceTeams(context.Background(), testPlayers(), 2)
	require.NoError(t, err)
	require.Equal(t, [][]string{{"p1", "p2"}, {"p3", "p4"}}, teams)
}

func TestOpenAIBalanceTeamsUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "quota exceeded", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	client := NewOpenAI(zap.NewNop().Sugar(), config.OracleConfig{
		APIURL: srv.URL, APIKey: "test-key", Model: "test-model", Timeout: time.Second,
	})

	_, err := client.BalanceTeams(context.Background(), testPlayers(), 2)
	require.Error(t, err)
	require.Contains(t, err.Error(), "429")
}

func TestOpenAIBalanceTeamsSchemaViolation(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{
			"output_text": `{"team1": ["p1"]}`,
		})
	}))
	defer srv.Close()

	client := NewOpenAI(zap.NewNop().Sugar(), config.OracleConfig{
		APIURL: srv.URL, APIKey: "test-key", Model: "test-model", Timeout: time.Second,
	})

	_, err := client.BalanceTeams(context.Background(), testPlayers(), 2)
	require.ErrorIs(t, err, ErrBadResponse)
}
