package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/fairstand/fairstand/internal/profile/domain"
	"github.com/fairstand/fairstand/internal/profile/store"
	"github.com/fairstand/fairstand/pkg/idx"
)

var (
	ErrInvalidCatalogRequest = errors.New("invalid catalog request")
	ErrCatalogNotFound       = errors.New("catalog not found")
)

// CatalogService manages profile-scoped catalogs. Reads require READ on
// the profile and deny quietly; writes require WRITE and deny loudly.
type CatalogService struct {
	Store store.Store
	Guard *Guard
}

func (s *CatalogService) CreateCatalog(ctx context.Context, accountID, profileID, name, description string) (domain.Catalog, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return domain.Catalog{}, ErrInvalidCatalogRequest
	}

	if err := s.Guard.RequireWrite(ctx, accountID, profileID); err != nil {
		return domain.Catalog{}, err
	}

	now := time.Now().UTC()
	catalog := domain.Catalog{
		ID:          idx.New().String(),
		ProfileID:   profileID,
		Name:        name,
		Description: description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.Store.Catalogs().CreateCatalog(ctx, catalog); err != nil {
		return domain.Catalog{}, err
	}
	return catalog, nil
}

func (s *CatalogService) GetCatalog(ctx context.Context, accountID, profileID, catalogID string) (domain.Catalog, error) {
	if err := s.Guard.RequireRead(ctx, accountID, profileID); err != nil {
		return domain.Catalog{}, err
	}

	catalog, err := s.Store.Catalogs().GetCatalog(ctx, profileID, catalogID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Catalog{}, ErrCatalogNotFound
		}
		return domain.Catalog{}, err
	}
	return catalog, nil
}

func (s *CatalogService) ListCatalogs(ctx context.Context, accountID, profileID string) ([]domain.Catalog, error) {
	allowed, err := s.Guard.CanRead(ctx, accountID, profileID)
	if err != nil {
		return nil, err
	}
	if !allowed {
		return []domain.Catalog{}, nil
	}
	return s.Store.Catalogs().ListCatalogsForProfile(ctx, profileID)
}

func (s *CatalogService) UpdateCatalog(ctx context.Context, accountID string, catalog domain.Catalog) (domain.Catalog, error) {
	if strings.TrimSpace(catalog.Name) == "" {
		return domain.Catalog{}, ErrInvalidCatalogRequest
	}

	if err := s.Guard.RequireWrite(ctx, accountID, catalog.ProfileID); err != nil {
		return domain.Catalog{}, err
	}

	catalog.UpdatedAt = time.Now().UTC()
	if err := s.Store.Catalogs().UpdateCatalog(ctx, catalog); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Catalog{}, ErrCatalogNotFound
		}
		return domain.Catalog{}, err
	}
	return s.Store.Catalogs().GetCatalog(ctx, catalog.ProfileID, catalog.ID)
}

func (s *CatalogService) DeleteCatalog(ctx context.Context, accountID, profileID, catalogID string) error {
	if err := s.Guard.RequireWrite(ctx, accountID, profileID); err != nil {
		return err
	}

	if err := s.Store.Catalogs().DeleteCatalog(ctx, profileID, catalogID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrCatalogNotFound
		}
		return err
	}
	return nil
}
