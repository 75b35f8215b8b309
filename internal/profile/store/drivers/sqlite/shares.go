package sqlite

import (
	"context"

	"github.com/fairstand/fairstand/internal/profile/domain"
)

type sharesRepo struct {
	db dbtx
}

func (r *sharesRepo) UpsertShare(ctx context.Context, s domain.Share) error {
	_, err := r.db.ExecContext(ctx, `
INSERT INTO shares (profile_id, grantee_account_id, permissions, created_by, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?)
ON CONFLICT (profile_id, grantee_account_id) DO UPDATE SET
    permissions = excluded.permissions,
    updated_at  = excluded.updated_at
`, s.ProfileID, s.GranteeAccountID, s.Permissions.Encode(), s.CreatedBy, s.CreatedAt, s.UpdatedAt)
	return err
}

func (r *sharesRepo) GetShare(ctx context.Context, profileID, granteeAccountID string) (domain.Share, error) {
	row := r.db.QueryRowContext(ctx, `
SELECT profile_id, grantee_account_id, permissions, created_by, created_at, updated_at
FROM shares
WHERE profile_id = ? AND grantee_account_id = ?
`, profileID, granteeAccountID)

	var (
		s     domain.Share
		perms string
	)
	if err := row.Scan(&s.ProfileID, &s.GranteeAccountID, &perms, &s.CreatedBy, &s.CreatedAt, &s.UpdatedAt); err != nil {
		return domain.Share{}, mapNotFound(err)
	}
	s.Permissions = domain.DecodePermissionSet(perms)
	return s, nil
}

func (r *sharesRepo) ListSharesForProfile(ctx context.Context, profileID string) ([]domain.Share, error) {
	rows, err := r.db.QueryContext(ctx, `
SELECT profile_id, grantee_account_id, permissions, created_by, created_at, updated_at
FROM shares
WHERE profile_id = ?
ORDER BY created_at ASC
`, profileID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Share
	for rows.Next() {
		var (
			s     domain.Share
			perms string
		)
		if err := rows.Scan(&s.ProfileID, &s.GranteeAccountID, &perms, &s.CreatedBy, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, err
		}
		s.Permissions = domain.DecodePermissionSet(perms)
		out = append(out, s)
	}
	return out, rows.Err()
}

func (r *sharesRepo) DeleteShare(ctx context.Context, profileID, granteeAccountID string) error {
	_, err := r.db.ExecContext(ctx, `
DELETE FROM shares
WHERE profile_id = ? AND grantee_account_id = ?
`, profileID, granteeAccountID)
	return err
}

func (r *sharesRepo) DeleteAllForProfile(ctx context.Context, profileID string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM shares WHERE profile_id = ?`, profileID)
	return err
}
