package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/XEXEU22/volleyapp/internal/entities"
)

const (
	upsertPaymentQuery = `
INSERT INTO member_payments(owner_id, player_id, month, year, is_paid, amount)
VALUES ($1,$2,$3,$4,$5,$6)
ON CONFLICT (owner_id, player_id, month, year) DO UPDATE SET
    is_paid = EXCLUDED.is_paid,
    amount = EXCLUDED.amount
RETURNING id, created_at`

	listPaymentsQuery = `
SELECT id, owner_id, player_id, month, year, is_paid, amount, created_at
FROM member_payments
WHERE owner_id=$1 AND month=$2 AND year=$3`

	paymentSummaryQuery = `
SELECT
    (SELECT COUNT(*) FROM member_payments WHERE owner_id=$1 AND month=$2 AND year=$3 AND is_paid),
    (SELECT COUNT(*) FROM players WHERE owner_id=$1)`
)

// UpsertPayment writes a dues fact for one (player, month, year) period. The
// conflict key guarantees at most one row per period.
func (p *Postgres) UpsertPayment(ctx context.Context, payment entities.Payment) (*entities.Payment, error) {
	var createdAt time.Time
	err := p.db.QueryRow(ctx, upsertPaymentQuery,
		payment.OwnerID, payment.PlayerID, payment.Month, payment.Year, payment.Paid, payment.Amount,
	).Scan(&payment.ID, &createdAt)
	if err != nil {
		p.log.Errorw("failed to upsert payment", "error", err, "player_id", payment.PlayerID)
		return nil, fmt.Errorf("upsert payment: %w", err)
	}

	payment.CreatedAt = &createdAt
	p.log.Infow("payment saved", "player_id", payment.PlayerID, "month", payment.Month, "year", payment.Year, "is_paid", payment.Paid)
	return &payment, nil
}

// ListPayments returns the owner's dues facts for one period.
func (p *Postgres) ListPayments(ctx context.Context, ownerID string, month, year int) ([]entities.Payment, error) {
	rows, err := p.db.Query(ctx, listPaymentsQuery, ownerID, month, year)
	if err != nil {
		return nil, fmt.Errorf("list payments: %w", err)
	}
	defer rows.Close()

	payments := make([]entities.Payment, 0)
	for rows.Next() {
		var pm entities.Payment
		var createdAt time.Time
		if err := rows.Scan(&pm.ID, &pm.OwnerID, &pm.PlayerID, &pm.Month, &pm.Year, &pm.Paid, &pm.Amount, &createdAt); err != nil {
			p.log.Errorw("failed to scan payment", "error", err)
			return nil, fmt.Errorf("scan payment: %w", err)
		}
		pm.CreatedAt = &createdAt
		payments = append(payments, pm)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate payments: %w", err)
	}
	return payments, nil
}

// PaymentSummary counts paid players against roster size for one period.
func (p *Postgres) PaymentSummary(ctx context.Context, ownerID string, month, year int) (entities.PaymentSummary, error) {
	res := entities.PaymentSummary{Month: month, Year: year}
	if err := p.db.QueryRow(ctx, paymentSummaryQuery, ownerID, month, year).Scan(&res.PaidCount, &res.Roster); err != nil {
		return res, fmt.Errorf("payment summary: %w", err)
	}
	return res, nil
}
