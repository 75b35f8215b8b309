package sqlite

import (
	"context"
	"database/sql"

	"github.com/fairstand/fairstand/internal/profile/domain"
	"github.com/fairstand/fairstand/internal/profile/store"
)

type campaignsRepo struct {
	db dbtx
}

func (r *campaignsRepo) CreateCampaign(ctx context.Context, c domain.Campaign) error {
	_, err := r.db.ExecContext(ctx, `
INSERT INTO campaigns (id, profile_id, catalog_id, title, goal_cents, status, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?)
`, c.ID, c.ProfileID, mapStringNull(c.CatalogID), c.Title, c.GoalCents, string(c.Status), c.CreatedAt, c.UpdatedAt)
	return err
}

func (r *campaignsRepo) GetCampaign(ctx context.Context, profileID, campaignID string) (domain.Campaign, error) {
	row := r.db.QueryRowContext(ctx, `
SELECT id, profile_id, catalog_id, title, goal_cents, status, created_at, updated_at
FROM campaigns
WHERE id = ? AND profile_id = ?
`, campaignID, profileID)

	var (
		c         domain.Campaign
		catalogID sql.NullString
		status    string
	)
	if err := row.Scan(&c.ID, &c.ProfileID, &catalogID, &c.Title, &c.GoalCents, &status, &c.CreatedAt, &c.UpdatedAt); err != nil {
		return domain.Campaign{}, mapNotFound(err)
	}
	c.CatalogID = mapNullString(catalogID)
	c.Status = domain.CampaignStatus(status)
	return c, nil
}

func (r *campaignsRepo) ListCampaignsForProfile(ctx context.Context, profileID string) ([]domain.Campaign, error) {
	rows, err := r.db.QueryContext(ctx, `
SELECT id, profile_id, catalog_id, title, goal_cents, status, created_at, updated_at
FROM campaigns
WHERE profile_id = ?
ORDER BY created_at ASC
`, profileID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Campaign
	for rows.Next() {
		var (
			c         domain.Campaign
			catalogID sql.NullString
			status    string
		)
		if err := rows.Scan(&c.ID, &c.ProfileID, &catalogID, &c.Title, &c.GoalCents, &status, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, err
		}
		c.CatalogID = mapNullString(catalogID)
		c.Status = domain.CampaignStatus(status)
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *campaignsRepo) UpdateCampaign(ctx context.Context, c domain.Campaign) error {
	res, err := r.db.ExecContext(ctx, `
UPDATE campaigns
SET catalog_id = ?, title = ?, goal_cents = ?, status = ?, updated_at = ?
WHERE id = ? AND profile_id = ?
`, mapStringNull(c.CatalogID), c.Title, c.GoalCents, string(c.Status), c.UpdatedAt, c.ID, c.ProfileID)
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

func (r *campaignsRepo) DeleteCampaign(ctx context.Context, profileID, campaignID string) error {
	res, err := r.db.ExecContext(ctx, `
DELETE FROM campaigns
WHERE id = ? AND profile_id = ?
`, campaignID, profileID)
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

func (r *campaignsRepo) DeleteAllForProfile(ctx context.Context, profileID string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM campaigns WHERE profile_id = ?`, profileID)
	return err
}
