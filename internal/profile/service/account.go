package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/fairstand/fairstand/internal/profile/domain"
	"github.com/fairstand/fairstand/internal/profile/store"
	"github.com/fairstand/fairstand/pkg/slogx"
)

var ErrInvalidAccountRequest = errors.New("invalid account request")

// AccountService provisions local account rows from verified identity
// provider claims. The IdP is the source of truth; we only mirror the
// (id, email) pair so shares can be granted by email.
type AccountService struct {
	Store store.Store
}

// EnsureAccount upserts the account row for a verified token subject.
// Called on every authenticated request; replays are cheap no-ops.
func (s *AccountService) EnsureAccount(ctx context.Context, accountID, email string) error {
	log := slogx.FromContext(ctx)

	accountID = strings.TrimSpace(accountID)
	email = strings.ToLower(strings.TrimSpace(email))
	if accountID == "" || email == "" {
		return ErrInvalidAccountRequest
	}

	err := s.Store.Accounts().UpsertAccount(ctx, domain.Account{
		ID:    accountID,
		Email: email,
	})
	if err != nil {
		log.Error("failed to provision account",
			slog.String("account_id", accountID),
			slog.Any("error", err),
		)
		return err
	}
	return nil
}

// GetAccount returns a provisioned account.
func (s *AccountService) GetAccount(ctx context.Context, accountID string) (domain.Account, error) {
	return s.Store.Accounts().GetAccountByID(ctx, accountID)
}
