// Package entities contains core business entities.
package entities

import "time"

// Account is the authenticated owner of all roster records.
type Account struct {
	ID           string
	Email        string
	PasswordHash string
	CreatedAt    *time.Time
}
