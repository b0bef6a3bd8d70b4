// Package repository contains repository interfaces for persistence layers.
package repository

import (
	"context"

	"github.com/XEXEU22/volleyapp/internal/entities"
)

// LifecycleInterface describes storage startup/shutdown hooks.
type LifecycleInterface interface {
	OnStart(_ context.Context) error
	OnStop(_ context.Context) error
}

// AccountInterface exposes account persistence.
type AccountInterface interface {
	CreateAccount(ctx context.Context, account entities.Account) (*entities.Account, error)
	AccountByEmail(ctx context.Context, email string) (*entities.Account, error)
}

// PlayerInterface exposes owner-scoped player operations.
type PlayerInterface interface {
	ListPlayers(ctx context.Context, ownerID string) ([]entities.Player, error)
	PlayersByIDs(ctx context.Context, ownerID string, ids []string) ([]entities.Player, error)
	CreatePlayer(ctx context.Context, player entities.Player) (*entities.Player, error)
	UpdatePlayer(ctx context.Context, player entities.Player) (*entities.Player, error)
	DeletePlayer(ctx context.Context, ownerID, playerID string) error
}

// ProfileInterface exposes owner profile operations.
type ProfileInterface interface {
	GetProfile(ctx context.Context, ownerID string) (*entities.Profile, error)
	UpsertProfile(ctx context.Context, profile entities.Profile) (*entities.Profile, error)
}

// PaymentInterface exposes monthly dues operations.
type PaymentInterface interface {
	UpsertPayment(ctx context.Context, payment entities.Payment) (*entities.Payment, error)
	ListPayments(ctx context.Context, ownerID string, month, year int) ([]entities.Payment, error)
	PaymentSummary(ctx context.Context, ownerID string, month, year int) (entities.PaymentSummary, error)
}

// LedgerInterface exposes the append-only cash ledger.
type LedgerInterface interface {
	AddTransaction(ctx context.Context, tx entities.CashTransaction) (*entities.CashTransaction, error)
	ListTransactions(ctx context.Context, ownerID string) ([]entities.CashTransaction, error)
	CashBalance(ctx context.Context, ownerID string) (float64, error)
}

// SettingsInterface exposes per-account application state.
type SettingsInterface interface {
	GetSettings(ctx context.Context, ownerID string) (*entities.Settings, error)
	UpdateSettings(ctx context.Context, settings entities.Settings) (*entities.Settings, error)
}

// StatsInterface exposes aggregated roster statistics.
type StatsInterface interface {
	Stats(ctx context.Context, ownerID string) (entities.Stats, error)
}
