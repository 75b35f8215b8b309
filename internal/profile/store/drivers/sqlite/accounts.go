package sqlite

import (
	"context"
	"time"

	"github.com/fairstand/fairstand/internal/profile/domain"
)

type accountsRepo struct {
	db dbtx
}

func (r *accountsRepo) UpsertAccount(ctx context.Context, a domain.Account) error {
	now := time.Now().UTC()
	_, err := r.db.ExecContext(ctx, `
INSERT INTO accounts (id, email, created_at, updated_at)
VALUES (?, ?, ?, ?)
ON CONFLICT (id) DO UPDATE SET
    email      = excluded.email,
    updated_at = excluded.updated_at
`, a.ID, a.Email, now, now)
	return err
}

func (r *accountsRepo) GetAccountByID(ctx context.Context, id string) (domain.Account, error) {
	row := r.db.QueryRowContext(ctx, `
SELECT id, email, created_at, updated_at
FROM accounts
WHERE id = ?
`, id)

	var a domain.Account
	if err := row.Scan(&a.ID, &a.Email, &a.CreatedAt, &a.UpdatedAt); err != nil {
		return domain.Account{}, mapNotFound(err)
	}
	return a, nil
}

func (r *accountsRepo) GetAccountByEmail(ctx context.Context, email string) (domain.Account, error) {
	row := r.db.QueryRowContext(ctx, `
SELECT id, email, created_at, updated_at
FROM accounts
WHERE email = ?
`, email)

	var a domain.Account
	if err := row.Scan(&a.ID, &a.Email, &a.CreatedAt, &a.UpdatedAt); err != nil {
		return domain.Account{}, mapNotFound(err)
	}
	return a, nil
}
