// Package auth issues and verifies session tokens.
package auth

import (
	"fmt"
	"time"

	"github.com/XEXEU22/volleyapp/config"
	"github.com/XEXEU22/volleyapp/internal/entities"

	"github.com/golang-jwt/jwt/v5"
)

// sessionClaims is the internal claims type used for JWT parsing.
type sessionClaims struct {
	jwt.RegisteredClaims
	OwnerID string `json:"owner_id"`
}

// Tokens signs and parses HS256 session tokens.
type Tokens struct {
	secret []byte
	issuer string
	ttl    time.Duration
	now    func() time.Time
}

// NewTokens builds a token manager from auth configuration.
func NewTokens(cfg config.AuthConfig) *Tokens {
	return &Tokens{
		secret: []byte(cfg.JWTSecret),
		issuer: cfg.Issuer,
		ttl:    cfg.TokenTTL,
		now:    time.Now,
	}
}

// Issue signs a session token for the given account.
func (t *Tokens) Issue(ownerID string) (string, error) {
	now := t.now()
	claims := sessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    t.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(t.ttl)),
		},
		OwnerID: ownerID,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(t.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Parse verifies a session token and returns the owner id.
func (t *Tokens) Parse(raw string) (string, error) {
	var claims sessionClaims
	_, err := jwt.ParseWithClaims(raw, &claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
		}
		return t.secret, nil
	}, jwt.WithIssuer(t.issuer), jwt.WithTimeFunc(t.now))
	if err != nil {
		return "", fmt.Errorf("%w: %v", entities.ErrUnauthorized, err)
	}
	if claims.OwnerID == "" {
		return "", fmt.Errorf("%w: token missing owner", entities.ErrUnauthorized)
	}
	return claims.OwnerID, nil
}
