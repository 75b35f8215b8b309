package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/fairstand/fairstand/internal/profile/domain"
	"github.com/fairstand/fairstand/internal/profile/store"
)

type ordersRepo struct {
	db dbtx
}

func (r *ordersRepo) CreateOrder(ctx context.Context, o domain.Order) error {
	_, err := r.db.ExecContext(ctx, `
INSERT INTO orders (id, profile_id, campaign_id, buyer_email, total_cents, status, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?)
`, o.ID, o.ProfileID, mapStringNull(o.CampaignID), o.BuyerEmail, o.TotalCents, string(o.Status), o.CreatedAt, o.UpdatedAt)
	return err
}

func (r *ordersRepo) GetOrder(ctx context.Context, profileID, orderID string) (domain.Order, error) {
	row := r.db.QueryRowContext(ctx, `
SELECT id, profile_id, campaign_id, buyer_email, total_cents, status, created_at, updated_at
FROM orders
WHERE id = ? AND profile_id = ?
`, orderID, profileID)

	var (
		o          domain.Order
		campaignID sql.NullString
		status     string
	)
	if err := row.Scan(&o.ID, &o.ProfileID, &campaignID, &o.BuyerEmail, &o.TotalCents, &status, &o.CreatedAt, &o.UpdatedAt); err != nil {
		return domain.Order{}, mapNotFound(err)
	}
	o.CampaignID = mapNullString(campaignID)
	o.Status = domain.OrderStatus(status)
	return o, nil
}

func (r *ordersRepo) ListOrdersForProfile(ctx context.Context, profileID string) ([]domain.Order, error) {
	rows, err := r.db.QueryContext(ctx, `
SELECT id, profile_id, campaign_id, buyer_email, total_cents, status, created_at, updated_at
FROM orders
WHERE profile_id = ?
ORDER BY created_at DESC
`, profileID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Order
	for rows.Next() {
		var (
			o          domain.Order
			campaignID sql.NullString
			status     string
		)
		if err := rows.Scan(&o.ID, &o.ProfileID, &campaignID, &o.BuyerEmail, &o.TotalCents, &status, &o.CreatedAt, &o.UpdatedAt); err != nil {
			return nil, err
		}
		o.CampaignID = mapNullString(campaignID)
		o.Status = domain.OrderStatus(status)
		out = append(out, o)
	}
	return out, rows.Err()
}

func (r *ordersRepo) UpdateOrderStatus(ctx context.Context, profileID, orderID string, status domain.OrderStatus) error {
	res, err := r.db.ExecContext(ctx, `
UPDATE orders
SET status = ?, updated_at = ?
WHERE id = ? AND profile_id = ?
`, string(status), time.Now().UTC(), orderID, profileID)
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

func (r *ordersRepo) DeleteAllForProfile(ctx context.Context, profileID string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM orders WHERE profile_id = ?`, profileID)
	return err
}
