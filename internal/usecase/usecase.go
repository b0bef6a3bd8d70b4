package usecase

import (
	"context"

	"github.com/XEXEU22/volleyapp/internal/auth"
	"github.com/XEXEU22/volleyapp/internal/blobstore"
	"github.com/XEXEU22/volleyapp/internal/oracle"
	"github.com/XEXEU22/volleyapp/internal/repository"
	"github.com/XEXEU22/volleyapp/internal/usecase/domain"

	"go.uber.org/zap"
)

// InterfaceUsecase aggregates all usecase interfaces.
type InterfaceUsecase interface {
	AuthUsecaseInterface
	PlayerUsecaseInterface
	DrawUsecaseInterface
	PaymentUsecaseInterface
	LedgerUsecaseInterface
	ProfileUsecaseInterface
	SettingsUsecaseInterface
	StatsUsecaseInterface
	ExportUsecaseInterface
}

// Options re-exports the domain layer tunables.
type Options = domain.Options

// New constructs a new usecase layer with its dependencies.
func New(
	log *zap.SugaredLogger,
	ctx context.Context,
	repo repository.Repository,
	blob blobstore.Store,
	oracleClient oracle.Client,
	tokens *auth.Tokens,
	opts Options,
) InterfaceUsecase {
	return domain.New(log, ctx, repo, blob, oracleClient, tokens, opts)
}
