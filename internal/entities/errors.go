// Package entities contains core business entities and errors.
package entities

import "errors"

var (
	// ErrInvalidArgument signals failed input validation.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrUnauthorized signals a missing or invalid session.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrInvalidCredentials signals a failed sign-in attempt.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrEmailTaken signals account email conflict.
	ErrEmailTaken = errors.New("email taken")
	// ErrAccountNotFound signals missing account.
	ErrAccountNotFound = errors.New("account not found")
	// ErrPlayerNotFound signals missing player.
	ErrPlayerNotFound = errors.New("player not found")
	// ErrProfileNotFound signals missing profile.
	ErrProfileNotFound = errors.New("profile not found")
)
