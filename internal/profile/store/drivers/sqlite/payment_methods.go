package sqlite

import (
	"context"

	"github.com/fairstand/fairstand/internal/profile/domain"
	"github.com/fairstand/fairstand/internal/profile/store"
)

type paymentMethodsRepo struct {
	db dbtx
}

func (r *paymentMethodsRepo) CreatePaymentMethod(ctx context.Context, m domain.PaymentMethod) error {
	_, err := r.db.ExecContext(ctx, `
INSERT INTO payment_methods (id, profile_id, kind, label, last4, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?)
`, m.ID, m.ProfileID, string(m.Kind), m.Label, m.Last4, m.CreatedAt, m.UpdatedAt)
	return err
}

func (r *paymentMethodsRepo) GetPaymentMethod(ctx context.Context, profileID, paymentMethodID string) (domain.PaymentMethod, error) {
	row := r.db.QueryRowContext(ctx, `
SELECT id, profile_id, kind, label, last4, created_at, updated_at
FROM payment_methods
WHERE id = ? AND profile_id = ?
`, paymentMethodID, profileID)

	var (
		m    domain.PaymentMethod
		kind string
	)
	if err := row.Scan(&m.ID, &m.ProfileID, &kind, &m.Label, &m.Last4, &m.CreatedAt, &m.UpdatedAt); err != nil {
		return domain.PaymentMethod{}, mapNotFound(err)
	}
	m.Kind = domain.PaymentMethodKind(kind)
	return m, nil
}

func (r *paymentMethodsRepo) ListPaymentMethodsForProfile(ctx context.Context, profileID string) ([]domain.PaymentMethod, error) {
	rows, err := r.db.QueryContext(ctx, `
SELECT id, profile_id, kind, label, last4, created_at, updated_at
FROM payment_methods
WHERE profile_id = ?
ORDER BY created_at ASC
`, profileID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.PaymentMethod
	for rows.Next() {
		var (
			m    domain.PaymentMethod
			kind string
		)
		if err := rows.Scan(&m.ID, &m.ProfileID, &kind, &m.Label, &m.Last4, &m.CreatedAt, &m.UpdatedAt); err != nil {
			return nil, err
		}
		m.Kind = domain.PaymentMethodKind(kind)
		out = append(out, m)
	}
	return out, rows.Err()
}

func (r *paymentMethodsRepo) DeletePaymentMethod(ctx context.Context, profileID, paymentMethodID string) error {
	res, err := r.db.ExecContext(ctx, `
DELETE FROM payment_methods
WHERE id = ? AND profile_id = ?
`, paymentMethodID, profileID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (r *paymentMethodsRepo) DeleteAllForProfile(ctx context.Context, profileID string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM payment_methods WHERE profile_id = ?`, profileID)
	return err
}
