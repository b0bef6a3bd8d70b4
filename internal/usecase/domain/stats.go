// Package domain contains application Usecases orchestrating roster logic by statistics.
package domain

import (
	"context"

	"github.com/XEXEU22/volleyapp/internal/entities"
)

// Stats returns aggregated roster statistics.
func (u *Usecase) Stats(ctx context.Context, ownerID string) (entities.Stats, error) {
	ctx, cancel := withTimeout(ctx, u.opts.Timeout)
	defer cancel()
	return u.repo.Stats(ctx, ownerID)
}
