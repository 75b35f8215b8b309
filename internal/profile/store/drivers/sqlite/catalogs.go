package sqlite

import (
	"context"
	"database/sql"

	"github.com/fairstand/fairstand/internal/profile/domain"
	"github.com/fairstand/fairstand/internal/profile/store"
)

type catalogsRepo struct {
	db dbtx
}

func (r *catalogsRepo) CreateCatalog(ctx context.Context, c domain.Catalog) error {
	_, err := r.db.ExecContext(ctx, `
INSERT INTO catalogs (id, profile_id, name, description, published, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?)
`, c.ID, c.ProfileID, c.Name, c.Description, c.Published, c.CreatedAt, c.UpdatedAt)
	return err
}

func (r *catalogsRepo) GetCatalog(ctx context.Context, profileID, catalogID string) (domain.Catalog, error) {
	row := r.db.QueryRowContext(ctx, `
SELECT id, profile_id, name, description, published, created_at, updated_at
FROM catalogs
WHERE id = ? AND profile_id = ?
`, catalogID, profileID)

	var c domain.Catalog
	if err := row.Scan(&c.ID, &c.ProfileID, &c.Name, &c.Description, &c.Published, &c.CreatedAt, &c.UpdatedAt); err != nil {
		return domain.Catalog{}, mapNotFound(err)
	}
	return c, nil
}

func (r *catalogsRepo) ListCatalogsForProfile(ctx context.Context, profileID string) ([]domain.Catalog, error) {
	rows, err := r.db.QueryContext(ctx, `
SELECT id, profile_id, name, description, published, created_at, updated_at
FROM catalogs
WHERE profile_id = ?
ORDER BY created_at ASC
`, profileID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectCatalogs(rows)
}

func (r *catalogsRepo) UpdateCatalog(ctx context.Context, c domain.Catalog) error {
	res, err := r.db.ExecContext(ctx, `
UPDATE catalogs
SET name = ?, description = ?, published = ?, updated_at = ?
WHERE id = ? AND profile_id = ?
`, c.Name, c.Description, c.Published, c.UpdatedAt, c.ID, c.ProfileID)
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

func (r *catalogsRepo) DeleteCatalog(ctx context.Context, profileID, catalogID string) error {
	res, err := r.db.ExecContext(ctx, `
DELETE FROM catalogs
WHERE id = ? AND profile_id = ?
`, catalogID, profileID)
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

func (r *catalogsRepo) DeleteAllForProfile(ctx context.Context, profileID string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM catalogs WHERE profile_id = ?`, profileID)
	return err
}

func collectCatalogs(rows *sql.Rows) ([]domain.Catalog, error) {
	var out []domain.Catalog
	for rows.Next() {
		var c domain.Catalog
		if err := rows.Scan(&c.ID, &c.ProfileID, &c.Name, &c.Description, &c.Published, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}
