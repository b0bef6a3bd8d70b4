// Package domain contains application Usecases orchestrating roster logic by account.
package domain

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/XEXEU22/volleyapp/internal/entities"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// SignUp registers an account and opens a session.
func (u *Usecase) SignUp(ctx context.Context, email, password string) (*entities.Account, string, error) {
	ctx, cancel := withTimeout(ctx, u.opts.Timeout)
	defer cancel()

	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || !strings.Contains(email, "@") {
		return nil, "", fmt.Errorf("%w: a valid email is required", entities.ErrInvalidArgument)
	}
	if len(password) < u.opts.MinPasswordLen {
		return nil, "", fmt.Errorf("%w: password must be at least %d characters", entities.ErrInvalidArgument, u.opts.MinPasswordLen)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", fmt.Errorf("hash password: %w", err)
	}

	account, err := u.repo.CreateAccount(ctx, entities.Account{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: string(hash),
	})
	if err != nil {
		return nil, "", err
	}

	token, err := u.tokens.Issue(account.ID)
	if err != nil {
		return nil, "", err
	}

	u.log.Infow("account registered", "account_id", account.ID)
	return account, token, nil
}

// SignIn verifies credentials and opens a session.
func (u *Usecase) SignIn(ctx context.Context, email, password string) (*entities.Account, string, error) {
	ctx, cancel := withTimeout(ctx, u.opts.Timeout)
	defer cancel()

	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return nil, "", fmt.Errorf("%w: email and password are required", entities.ErrInvalidArgument)
	}

	account, err := u.repo.AccountByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, entities.ErrAccountNotFound) {
			return nil, "", entities.ErrInvalidCredentials
		}
		return nil, "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)); err != nil {
		return nil, "", entities.ErrInvalidCredentials
	}

	token, err := u.tokens.Issue(account.ID)
	if err != nil {
		return nil, "", err
	}

	return account, token, nil
}
