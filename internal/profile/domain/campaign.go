package domain

import "time"

// CampaignStatus is the lifecycle state of a fundraising campaign.
type CampaignStatus string

const (
	CampaignDraft  CampaignStatus = "draft"
	CampaignActive CampaignStatus = "active"
	CampaignClosed CampaignStatus = "closed"
)

// Campaign is a profile-scoped fundraising drive, optionally tied to a
// catalog of goods.
type Campaign struct {
	ID        string
	ProfileID string
	CatalogID string // optional
	Title     string
	GoalCents int64
	Status    CampaignStatus
	CreatedAt time.Time
	UpdatedAt time.Time
}
