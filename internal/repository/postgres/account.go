package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/XEXEU22/volleyapp/internal/entities"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	insertAccountQuery = `
INSERT INTO accounts(id, email, password_hash)
VALUES ($1, $2, $3)
RETURNING created_at`
	selectAccountByEmailQuery = `SELECT id, email, password_hash, created_at FROM accounts WHERE email=$1`
)

// CreateAccount inserts a new account.
func (p *Postgres) CreateAccount(ctx context.Context, account entities.Account) (*entities.Account, error) {
	var createdAt time.Time
	if err := p.db.QueryRow(ctx, insertAccountQuery, account.ID, account.Email, account.PasswordHash).Scan(&createdAt); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, entities.ErrEmailTaken
		}
		p.log.Errorw("failed to insert account", "error", err)
		return nil, fmt.Errorf("insert account: %w", err)
	}

	account.CreatedAt = &createdAt
	p.log.Infow("account created", "account_id", account.ID)
	return &account, nil
}

// AccountByEmail fetches an account by email.
func (p *Postgres) AccountByEmail(ctx context.Context, email string) (*entities.Account, error) {
	var a entities.Account
	var createdAt time.Time
	err := p.db.QueryRow(ctx, selectAccountByEmailQuery, email).
		Scan(&a.ID, &a.Email, &a.PasswordHash, &createdAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrAccountNotFound
		}
		return nil, fmt.Errorf("get account: %w", err)
	}
	a.CreatedAt = &createdAt
	return &a, nil
}
