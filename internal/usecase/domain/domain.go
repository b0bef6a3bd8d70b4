// Package domain contains application Usecases orchestrating roster logic.
package domain

import (
	"context"
	"time"

	"github.com/XEXEU22/volleyapp/internal/auth"
	"github.com/XEXEU22/volleyapp/internal/blobstore"
	"github.com/XEXEU22/volleyapp/internal/oracle"
	"github.com/XEXEU22/volleyapp/internal/repository"

	"go.uber.org/zap"
)

// Options carries tunables for the usecase layer.
type Options struct {
	Timeout        time.Duration
	TeamSizes      []int
	MinPasswordLen int
}

// Usecase struct implements all usecase interfaces.
type Usecase struct {
	ctx    context.Context
	log    *zap.SugaredLogger
	repo   repository.Repository
	blob   blobstore.Store
	oracle oracle.Client
	tokens *auth.Tokens
	opts   Options
}

// New constructs a new usecase layer with its dependencies.
func New(
	log *zap.SugaredLogger,
	ctx context.Context,
	repo repository.Repository,
	blob blobstore.Store,
	oracleClient oracle.Client,
	tokens *auth.Tokens,
	opts Options,
) *Usecase {
	if opts.MinPasswordLen <= 0 {
		opts.MinPasswordLen = 6
	}
	return &Usecase{
		ctx:    ctx,
		log:    log,
		repo:   repo,
		blob:   blob,
		oracle: oracleClient,
		tokens: tokens,
		opts:   opts,
	}
}

func withTimeout(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if d <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, d)
}
