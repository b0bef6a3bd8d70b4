// Package entities contains core business entities.
package entities

import "time"

// Profile holds display attributes of the account owner.
type Profile struct {
	OwnerID   string
	Name      string
	Bio       string
	Age       *int
	Phone     string
	Gender    Gender
	Level     Level
	AvatarURL string
	UpdatedAt *time.Time
}
