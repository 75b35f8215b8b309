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
	ErrInvalidCampaignRequest = errors.New("invalid campaign request")
	ErrCampaignNotFound       = errors.New("campaign not found")
)

type CampaignService struct {
	Store store.Store
	Guard *Guard
}

func (s *CampaignService) CreateCampaign(
	ctx context.Context,
	accountID string,
	profileID string,
	catalogID string,
	title string,
	goalCents int64,
) (domain.Campaign, error) {
	title = strings.TrimSpace(title)
	if title == "" || goalCents < 0 {
		return domain.Campaign{}, ErrInvalidCampaignRequest
	}

	if err := s.Guard.RequireWrite(ctx, accountID, profileID); err != nil {
		return domain.Campaign{}, err
	}

	// A campaign may reference a catalog, but only one under the same profile.
	if catalogID != "" {
		if _, err := s.Store.Catalogs().GetCatalog(ctx, profileID, catalogID); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return domain.Campaign{}, ErrCatalogNotFound
			}
			return domain.Campaign{}, err
		}
	}

	now := time.Now().UTC()
	campaign := domain.Campaign{
		ID:        idx.New().String(),
		ProfileID: profileID,
		CatalogID: catalogID,
		Title:     title,
		GoalCents: goalCents,
		Status:    domain.CampaignDraft,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.Store.Campaigns().CreateCampaign(ctx, campaign); err != nil {
		return domain.Campaign{}, err
	}
	return campaign, nil
}

func (s *CampaignService) GetCampaign(ctx context.Context, accountID, profileID, campaignID string) (domain.Campaign, error) {
	if err := s.Guard.RequireRead(ctx, accountID, profileID); err != nil {
		return domain.Campaign{}, err
	}

	campaign, err := s.Store.Campaigns().GetCampaign(ctx, profileID, campaignID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Campaign{}, ErrCampaignNotFound
		}
		return domain.Campaign{}, err
	}
	return campaign, nil
}

func (s *CampaignService) ListCampaigns(ctx context.Context, accountID, profileID string) ([]domain.Campaign, error) {
	allowed, err := s.Guard.CanRead(ctx, accountID, profileID)
	if err != nil {
		return nil, err
	}
	if !allowed {
		return []domain.Campaign{}, nil
	}
	return s.Store.Campaigns().ListCampaignsForProfile(ctx, profileID)
}

func (s *CampaignService) UpdateCampaign(ctx context.Context, accountID string, campaign domain.Campaign) (domain.Campaign, error) {
	if strings.TrimSpace(campaign.Title) == "" || campaign.GoalCents < 0 {
		return domain.Campaign{}, ErrInvalidCampaignRequest
	}
	switch campaign.Status {
	case domain.CampaignDraft, domain.CampaignActive, domain.CampaignClosed:
	default:
		return domain.Campaign{}, ErrInvalidCampaignRequest
	}

	if err := s.Guard.RequireWrite(ctx, accountID, campaign.ProfileID); err != nil {
		return domain.Campaign{}, err
	}

	campaign.UpdatedAt = time.Now().UTC()
	if err := s.Store.Campaigns().UpdateCampaign(ctx, campaign); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Campaign{}, ErrCampaignNotFound
		}
		return domain.Campaign{}, err
	}
	return s.Store.Campaigns().GetCampaign(ctx, campaign.ProfileID, campaign.ID)
}

func (s *CampaignService) DeleteCampaign(ctx context.Context, accountID, profileID, campaignID string) error {
	if err := s.Guard.RequireWrite(ctx, accountID, profileID); err != nil {
		return err
	}

	if err := s.Store.Campaigns().DeleteCampaign(ctx, profileID, campaignID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrCampaignNotFound
		}
		return err
	}
	return nil
}
