package usecase

import (
	"context"
	"io"

	"github.com/XEXEU22/volleyapp/internal/entities"
)

// AuthUsecaseInterface abstracts session operations for the delivery layer.
type AuthUsecaseInterface interface {
	SignUp(ctx context.Context, email, password string) (*entities.Account, string, error)
	SignIn(ctx context.Context, email, password string) (*entities.Account, string, error)
}

// PlayerUsecaseInterface abstracts roster operations.
type PlayerUsecaseInterface interface {
	Players(ctx context.Context, ownerID string) ([]entities.Player, error)
	CreatePlayer(ctx context.Context, player entities.Player) (*entities.Player, error)
	UpdatePlayer(ctx context.Context, player entities.Player) (*entities.Player, error)
	DeletePlayer(ctx context.Context, ownerID, playerID string) error
	UploadAvatar(ctx context.Context, ownerID, filename, contentType string, size int64, r io.Reader) (string, error)
}

// DrawUsecaseInterface abstracts the team draw.
type DrawUsecaseInterface interface {
	DrawTeams(ctx context.Context, ownerID string, playerIDs []string, teamSize int, method entities.DrawMethod) (*entities.DrawResult, error)
}

// PaymentUsecaseInterface abstracts monthly dues operations.
type PaymentUsecaseInterface interface {
	SavePayment(ctx context.Context, payment entities.Payment) (*entities.Payment, error)
	Payments(ctx context.Context, ownerID string, month, year int) ([]entities.Payment, error)
	PaymentSummary(ctx context.Context, ownerID string, month, year int) (entities.PaymentSummary, error)
}

// LedgerUsecaseInterface abstracts the cash ledger.
type LedgerUsecaseInterface interface {
	AddTransaction(ctx context.Context, tx entities.CashTransaction) (*entities.CashTransaction, error)
	Transactions(ctx context.Context, ownerID string) ([]entities.CashTransaction, error)
	CashBalance(ctx context.Context, ownerID string) (float64, error)
}

// ProfileUsecaseInterface abstracts owner profile operations.
type ProfileUsecaseInterface interface {
	Profile(ctx context.Context, ownerID string) (*entities.Profile, error)
	SaveProfile(ctx context.Context, profile entities.Profile) (*entities.Profile, error)
}

// SettingsUsecaseInterface abstracts per-account application state.
type SettingsUsecaseInterface interface {
	Settings(ctx context.Context, ownerID string) (*entities.Settings, error)
	SaveSettings(ctx context.Context, settings entities.Settings) (*entities.Settings, error)
}

// StatsUsecaseInterface abstracts statistics operations.
type StatsUsecaseInterface interface {
	Stats(ctx context.Context, ownerID string) (entities.Stats, error)
}

// ExportUsecaseInterface abstracts the roster backup document.
type ExportUsecaseInterface interface {
	ExportRoster(ctx context.Context, ownerID string) ([]byte, error)
}
