package http

import (
	"github.com/fairstand/fairstand/internal/profile/domain"
	"github.com/fairstand/fairstand/pkg/profilesdk"
)

func toProfileResponse(p domain.Profile) profilesdk.ProfileResponse {
	return profilesdk.ProfileResponse{
		ID:             p.ID,
		OwnerAccountID: p.OwnerAccountID,
		DisplayName:    p.DisplayName,
		CreatedAt:      p.CreatedAt.Unix(),
		UpdatedAt:      p.UpdatedAt.Unix(),
	}
}

func toProfileResponses(profiles []domain.Profile) []profilesdk.ProfileResponse {
	out := make([]profilesdk.ProfileResponse, len(profiles))
	for i, p := range profiles {
		out[i] = toProfileResponse(p)
	}
	return out
}

func toShareResponse(s domain.Share) profilesdk.ShareResponse {
	return profilesdk.ShareResponse{
		ProfileID:        s.ProfileID,
		GranteeAccountID: s.GranteeAccountID,
		Permissions:      s.Permissions.Labels(),
		CreatedBy:        s.CreatedBy,
		CreatedAt:        s.CreatedAt.Unix(),
		UpdatedAt:        s.UpdatedAt.Unix(),
	}
}

func toInviteResponse(i domain.Invite) profilesdk.InviteResponse {
	return profilesdk.InviteResponse{
		ID:          i.ID,
		ProfileID:   i.ProfileID,
		Permissions: i.Permissions.Labels(),
		CreatedBy:   i.CreatedBy,
		ExpiresAt:   i.ExpiresAt.Unix(),
		CreatedAt:   i.CreatedAt.Unix(),
	}
}

func toCatalogResponse(c domain.Catalog) profilesdk.CatalogResponse {
	return profilesdk.CatalogResponse{
		ID:          c.ID,
		ProfileID:   c.ProfileID,
		Name:        c.Name,
		Description: c.Description,
		Published:   c.Published,
		CreatedAt:   c.CreatedAt.Unix(),
		UpdatedAt:   c.UpdatedAt.Unix(),
	}
}

func toCampaignResponse(c domain.Campaign) profilesdk.CampaignResponse {
	return profilesdk.CampaignResponse{
		ID:        c.ID,
		ProfileID: c.ProfileID,
		CatalogID: c.CatalogID,
		Title:     c.Title,
		GoalCents: c.GoalCents,
		Status:    string(c.Status),
		CreatedAt: c.CreatedAt.Unix(),
		UpdatedAt: c.UpdatedAt.Unix(),
	}
}

func toOrderResponse(o domain.Order) profilesdk.OrderResponse {
	return profilesdk.OrderResponse{
		ID:         o.ID,
		ProfileID:  o.ProfileID,
		CampaignID: o.CampaignID,
		BuyerEmail: o.BuyerEmail,
		TotalCents: o.TotalCents,
		Status:     string(o.Status),
		CreatedAt:  o.CreatedAt.Unix(),
		UpdatedAt:  o.UpdatedAt.Unix(),
	}
}

func toPaymentMethodResponse(m domain.PaymentMethod) profilesdk.PaymentMethodResponse {
	return profilesdk.PaymentMethodResponse{
		ID:        m.ID,
		ProfileID: m.ProfileID,
		Kind:      string(m.Kind),
		Label:     m.Label,
		Last4:     m.Last4,
		CreatedAt: m.CreatedAt.Unix(),
		UpdatedAt: m.UpdatedAt.Unix(),
	}
}
