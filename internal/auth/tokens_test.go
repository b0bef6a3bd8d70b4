package auth

import (
	"testing"
	"time"

	"github.com/XEXEU22/volleyapp/config"
	"github.com/XEXEU22/volleyapp/internal/entities"

	"github.com/stretchr/testify/require"
)

func testConfig() config.AuthConfig {
	return config.AuthConfig{
		JWTSecret: "test-secret",
		Issuer:    "volleyapp",
		TokenTTL:  time.Hour,
	}
}

func TestTokensRoundtrip(t *testing.T) {
	tokens := NewTokens(testConfig())

	raw, err := tokens.Issue("acc-1")
	require.NoError(t, err)

	ownerID, err := tokens.Parse(raw)
	require.NoError(t, err)
	require.Equal(t, "acc-1", ownerID)
}

func TestTokensRejectsWrongSecret(t *testing.T) {
	issuer := NewTokens(testConfig())
	raw, err := issuer.Issue("acc-1")
	require.NoError(t, err)

	other := testConfig()
	other.JWTSecret = "another-secret"
	_, err = NewTokens(other).Parse(raw)
	require.ErrorIs(t, err, entities.ErrUnauthorized)
}

func TestTokensRejectsWrongIssuer(t *testing.T) {
	cfg := testConfig()
	cfg.Issuer = "someone-else"
	raw, err := NewTokens(cfg).Issue("acc-1")
	require.NoError(t, err)

	_, err = NewTokens(testConfig()).Parse(raw)
	require.ErrorIs(t, err, entities.ErrUnauthorized)
}

func TestTokensRejectsExpired(t *testing.T) {
	tokens := NewTokens(testConfig())
	tokens.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }

	raw, err := tokens.Issue("acc-1")
	require.NoError(t, err)

	verifier := NewTokens(testConfig())
	_, err = verifier.Parse(raw)
	require.ErrorIs(t, err, entities.ErrUnauthorized)
}

func TestTokensRejectsGarbage(t *testing.T) {
	_, err := NewTokens(testConfig()).Parse("not.a.token")
	require.ErrorIs(t, err, entities.ErrUnauthorized)
}
