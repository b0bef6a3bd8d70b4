// Package domain contains application Usecases orchestrating roster logic by ledger.
package domain

import (
	"context"
	"fmt"
	"time"

	"github.com/XEXEU22/volleyapp/internal/entities"
)

// AddTransaction appends a signed ledger entry.
func (u *Usecase) AddTransaction(ctx context.Context, tx entities.CashTransaction) (*entities.CashTransaction, error) {
	ctx, cancel := withTimeout(ctx, u.opts.Timeout)
	defer cancel()

	if !entities.ValidTransactionType(tx.Type) {
		return nil, fmt.Errorf("%w: unknown transaction type %q", entities.ErrInvalidArgument, tx.Type)
	}
	if tx.Amount < 0 {
		return nil, fmt.Errorf("%w: amount must not be negative", entities.ErrInvalidArgument)
	}
	if tx.Date.IsZero() {
		tx.Date = time.Now()
	}

	res, err := u.repo.AddTransaction(ctx, tx)
	if err != nil {
		return nil, err
	}
	u.log.Infow("transaction add", "transaction_id", res.ID, "type", res.Type)
	return res, nil
}

// Transactions lists the owner's ledger, newest first.
func (u *Usecase) Transactions(ctx context.Context, ownerID string) ([]entities.CashTransaction, error) {
	ctx, cancel := withTimeout(ctx, u.opts.Timeout)
	defer cancel()
	return u.repo.ListTransactions(ctx, ownerID)
}

// CashBalance returns the owner's global cash balance: all historical paid
// dues plus signed ledger entries.
func (u *Usecase) CashBalance(ctx context.Context, ownerID string) (float64, error) {
	ctx, cancel := withTimeout(ctx, u.opts.Timeout)
	defer cancel()
	return u.repo.CashBalance(ctx, ownerID)
}
