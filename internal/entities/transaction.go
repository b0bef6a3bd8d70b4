// Package entities contains core business entities.
package entities

import "time"

// TransactionType enumerates ledger entry directions.
type TransactionType string

const (
	// TransactionDeposit adds to the cash balance.
	TransactionDeposit TransactionType = "deposit"
	// TransactionWithdrawal subtracts from the cash balance.
	TransactionWithdrawal TransactionType = "withdrawal"
)

// CashTransaction is an append-only signed ledger entry.
type CashTransaction struct {
	ID          string
	OwnerID     string
	Type        TransactionType
	Amount      float64
	Description string
	Category    string
	Date        time.Time
	CreatedAt   *time.Time
}

// ValidTransactionType reports whether t is a known ledger direction.
func ValidTransactionType(t TransactionType) bool {
	return t == TransactionDeposit || t == TransactionWithdrawal
}
