// Package entities contains core business entities.
package entities

import "time"

// Payment is a per-player, per-month dues fact. One row per
// (owner, player, month, year); writes are upserts on that key.
type Payment struct {
	ID        string
	OwnerID   string
	PlayerID  string
	Month     int
	Year      int
	Paid      bool
	Amount    float64
	CreatedAt *time.Time
}

// PaymentSummary counts paid players against the roster for one period.
type PaymentSummary struct {
	Month     int   `json:"month"`
	Year      int   `json:"year"`
	PaidCount int64 `json:"paid_count"`
	Roster    int64 `json:"roster"`
}
