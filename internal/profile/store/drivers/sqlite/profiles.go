package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/fairstand/fairstand/internal/profile/domain"
	"github.com/fairstand/fairstand/internal/profile/store"
)

type profilesRepo struct {
	db dbtx
}

func (r *profilesRepo) CreateProfile(ctx context.Context, p domain.Profile) error {
	_, err := r.db.ExecContext(ctx, `
INSERT INTO profiles (id, owner_account_id, display_name, created_at, updated_at)
VALUES (?, ?, ?, ?, ?)
`, p.ID, p.OwnerAccountID, p.DisplayName, p.CreatedAt, p.UpdatedAt)
	return err
}

func (r *profilesRepo) GetProfileByID(ctx context.Context, id string) (domain.Profile, error) {
	row := r.db.QueryRowContext(ctx, `
SELECT id, owner_account_id, display_name, created_at, updated_at
FROM profiles
WHERE id = ?
`, id)
	return scanProfile(row)
}

func (r *profilesRepo) ListProfilesByOwner(ctx context.Context, ownerAccountID string) ([]domain.Profile, error) {
	rows, err := r.db.QueryContext(ctx, `
SELECT id, owner_account_id, display_name, created_at, updated_at
FROM profiles
WHERE owner_account_id = ?
ORDER BY created_at DESC
`, ownerAccountID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectProfiles(rows)
}

func (r *profilesRepo) ListProfilesSharedWithAccount(ctx context.Context, accountID string) ([]domain.Profile, error) {
	rows, err := r.db.QueryContext(ctx, `
SELECT p.id, p.owner_account_id, p.display_name, p.created_at, p.updated_at
FROM profiles p
JOIN shares s ON s.profile_id = p.id
WHERE s.grantee_account_id = ?
ORDER BY p.created_at DESC
`, accountID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectProfiles(rows)
}

func (r *profilesRepo) UpdateProfileName(ctx context.Context, profileID, displayName string) error {
	res, err := r.db.ExecContext(ctx, `
UPDATE profiles
SET display_name = ?, updated_at = ?
WHERE id = ?
`, displayName, time.Now().UTC(), profileID)
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

func (r *profilesRepo) DeleteProfile(ctx context.Context, profileID string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM profiles WHERE id = ?`, profileID)
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

func scanProfile(row *sql.Row) (domain.Profile, error) {
	var p domain.Profile
	if err := row.Scan(&p.ID, &p.OwnerAccountID, &p.DisplayName, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return domain.Profile{}, mapNotFound(err)
	}
	return p, nil
}

func collectProfiles(rows *sql.Rows) ([]domain.Profile, error) {
	var out []domain.Profile
	for rows.Next() {
		var p domain.Profile
		if err := rows.Scan(&p.ID, &p.OwnerAccountID, &p.DisplayName, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}
