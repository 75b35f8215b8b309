package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/fairstand/fairstand/internal/profile/domain"
	"github.com/fairstand/fairstand/internal/profile/store"
)

type invitesRepo struct {
	db dbtx
}

func (r *invitesRepo) CreateInvite(ctx context.Context, inv domain.Invite) error {
	_, err := r.db.ExecContext(ctx, `
INSERT INTO invites (id, code_hash, profile_id, permissions, created_by, expires_at, used, used_by, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?, FALSE, NULL, ?, ?)
`, inv.ID, inv.CodeHash, inv.ProfileID, inv.Permissions.Encode(), inv.CreatedBy, inv.ExpiresAt, inv.CreatedAt, inv.UpdatedAt)
	return err
}

func (r *invitesRepo) GetInviteByCodeHash(ctx context.Context, hash string) (domain.Invite, error) {
	row := r.db.QueryRowContext(ctx, `
SELECT id, code_hash, profile_id, permissions, created_by, expires_at, used, used_by, created_at, updated_at
FROM invites
WHERE code_hash = ?
`, hash)
	return scanInvite(row)
}

// MarkInviteUsed is a conditional update; the used = FALSE guard is what
// makes concurrent redemption single-winner.
func (r *invitesRepo) MarkInviteUsed(ctx context.Context, inviteID, usedByAccountID string) error {
	res, err := r.db.ExecContext(ctx, `
UPDATE invites
SET used = TRUE, used_by = ?, updated_at = ?
WHERE id = ? AND used = FALSE
`, usedByAccountID, time.Now().UTC(), inviteID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return store.ErrConflict
	}
	return nil
}

func (r *invitesRepo) ListOpenInvitesForProfile(ctx context.Context, profileID string, now time.Time) ([]domain.Invite, error) {
	rows, err := r.db.QueryContext(ctx, `
SELECT id, code_hash, profile_id, permissions, created_by, expires_at, used, used_by, created_at, updated_at
FROM invites
WHERE profile_id = ? AND used = FALSE AND expires_at > ?
ORDER BY created_at ASC
`, profileID, now)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Invite
	for rows.Next() {
		inv, err := scanInviteRows(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, inv)
	}
	return out, rows.Err()
}

func (r *invitesRepo) DeleteAllForProfile(ctx context.Context, profileID string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM invites WHERE profile_id = ?`, profileID)
	return err
}

func (r *invitesRepo) DeleteExpiredInvites(ctx context.Context, now time.Time) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM invites WHERE used = FALSE AND expires_at <= ?`, now)
	return err
}

func scanInvite(row *sql.Row) (domain.Invite, error) {
	var (
		inv    domain.Invite
		perms  string
		usedBy sql.NullString
	)
	err := row.Scan(&inv.ID, &inv.CodeHash, &inv.ProfileID, &perms, &inv.CreatedBy,
		&inv.ExpiresAt, &inv.Used, &usedBy, &inv.CreatedAt, &inv.UpdatedAt)
	if err != nil {
		return domain.Invite{}, mapNotFound(err)
	}
	inv.Permissions = domain.DecodePermissionSet(perms)
	inv.UsedBy = mapNullString(usedBy)
	return inv, nil
}

func scanInviteRows(rows *sql.Rows) (domain.Invite, error) {
	var (
		inv    domain.Invite
		perms  string
		usedBy sql.NullString
	)
	err := rows.Scan(&inv.ID, &inv.CodeHash, &inv.ProfileID, &perms, &inv.CreatedBy,
		&inv.ExpiresAt, &inv.Used, &usedBy, &inv.CreatedAt, &inv.UpdatedAt)
	if err != nil {
		return domain.Invite{}, err
	}
	inv.Permissions = domain.DecodePermissionSet(perms)
	inv.UsedBy = mapNullString(usedBy)
	return inv, nil
}
