// Package domain contains application Usecases orchestrating roster logic by dues.
package domain

import (
	"context"
	"fmt"

	"github.com/XEXEU22/volleyapp/internal/entities"
)

// SavePayment upserts a dues fact for one (player, month, year) period.
func (u *Usecase) SavePayment(ctx context.Context, payment entities.Payment) (*entities.Payment, error) {
	ctx, cancel := withTimeout(ctx, u.opts.Timeout)
	defer cancel()

	if payment.PlayerID == "" {
		return nil, fmt.Errorf("%w: player id is required", entities.ErrInvalidArgument)
	}
	if err := validatePeriod(payment.Month, payment.Year); err != nil {
		return nil, err
	}
	if payment.Amount < 0 {
		return nil, fmt.Errorf("%w: amount must not be negative", entities.ErrInvalidArgument)
	}

	return u.repo.UpsertPayment(ctx, payment)
}

// Payments lists the owner's dues facts for one period.
func (u *Usecase) Payments(ctx context.Context, ownerID string, month, year int) ([]entities.Payment, error) {
	ctx, cancel := withTimeout(ctx, u.opts.Timeout)
	defer cancel()

	if err := validatePeriod(month, year); err != nil {
		return nil, err
	}
	return u.repo.ListPayments(ctx, ownerID, month, year)
}

// PaymentSummary reports paid count against roster size for one period.
func (u *Usecase) PaymentSummary(ctx context.Context, ownerID string, month, year int) (entities.PaymentSummary, error) {
	ctx, cancel := withTimeout(ctx, u.opts.Timeout)
	defer cancel()

	if err := validatePeriod(month, year); err != nil {
		return entities.PaymentSummary{}, err
	}
	return u.repo.PaymentSummary(ctx, ownerID, month, year)
}

func validatePeriod(month, year int) error {
	if month < 1 || month > 12 {
		return fmt.Errorf("%w: month must be between 1 and 12", entities.ErrInvalidArgument)
	}
	if year < 2000 || year > 2200 {
		return fmt.Errorf("%w: year %d is out of range", entities.ErrInvalidArgument, year)
	}
	return nil
}
