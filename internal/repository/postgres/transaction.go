package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/XEXEU22/volleyapp/internal/entities"
)

const (
	insertTransactionQuery = `
INSERT INTO cash_transactions(owner_id, type, amount, description, category, occurred_on)
VALUES ($1,$2,$3,$4,$5,$6)
RETURNING id, created_at`

	listTransactionsQuery = `
SELECT id, owner_id, type, amount, description, category, occurred_on, created_at
FROM cash_transactions
WHERE owner_id=$1
ORDER BY occurred_on DESC, created_at DESC`

	// The global cash balance has exactly one source of truth: all historical
	// paid dues plus signed ledger entries.
	cashBalanceQuery = `
SELECT
    COALESCE((SELECT SUM(amount) FROM member_payments WHERE owner_id=$1 AND is_paid), 0)
  + COALESCE((SELECT SUM(CASE WHEN type='deposit' THEN amount ELSE -amount END)
              FROM cash_transactions WHERE owner_id=$1), 0)`
)

// AddTransaction appends a ledger entry. The ledger has no update or delete.
func (p *Postgres) AddTransaction(ctx context.Context, tx entities.CashTransaction) (*entities.CashTransaction, error) {
	var createdAt time.Time
	err := p.db.QueryRow(ctx, insertTransactionQuery,
		tx.OwnerID, tx.Type, tx.Amount, tx.Description, tx.Category, tx.Date,
	).Scan(&tx.ID, &createdAt)
	if err != nil {
		p.log.Errorw("failed to insert transaction", "error", err, "owner_id", tx.OwnerID)
		return nil, fmt.Errorf("insert transaction: %w", err)
	}

	tx.CreatedAt = &createdAt
	p.log.Infow("transaction recorded", "transaction_id", tx.ID, "type", tx.Type, "amount", tx.Amount)
	return &tx, nil
}

// ListTransactions returns the owner's ledger, newest first.
func (p *Postgres) ListTransactions(ctx context.Context, ownerID string) ([]entities.CashTransaction, error) {
	rows, err := p.db.Query(ctx, listTransactionsQuery, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	defer rows.Close()

	txs := make([]entities.CashTransaction, 0)
	for rows.Next() {
		var tx entities.CashTransaction
		var createdAt time.Time
		if err := rows.Scan(&tx.ID, &tx.OwnerID, &tx.Type, &tx.Amount, &tx.Description, &tx.Category, &tx.Date, &createdAt); err != nil {
			p.log.Errorw("failed to scan transaction", "error", err)
			return nil, fmt.Errorf("scan transaction: %w", err)
		}
		tx.CreatedAt = &createdAt
		txs = append(txs, tx)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate transactions: %w", err)
	}
	return txs, nil
}

// CashBalance returns the owner's global cash balance.
func (p *Postgres) CashBalance(ctx context.Context, ownerID string) (float64, error) {
	var balance float64
	if err := p.db.QueryRow(ctx, cashBalanceQuery, ownerID).Scan(&balance); err != nil {
		return 0, fmt.Errorf("cash balance: %w", err)
	}
	return balance, nil
}
