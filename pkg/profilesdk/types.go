package profilesdk

// ErrorResponse is the standard JSON error body.
type ErrorResponse struct {
	// Error is the machine-readable error code (e.g., "not_owner")
	Error string `json:"error"`

	// ErrorDescription is a human-readable description of the error
	ErrorDescription string `json:"error_description"`
}

// Permission labels accepted and returned by the API.
const (
	PermissionRead  = "read"
	PermissionWrite = "write"
)

// ============================================================================
// Profiles
// ============================================================================

type CreateProfileRequest struct {
	DisplayName string `json:"display_name"`
}

type RenameProfileRequest struct {
	DisplayName string `json:"display_name"`
}

type ProfileResponse struct {
	ID             string `json:"id"`
	OwnerAccountID string `json:"owner_account_id"`
	DisplayName    string `json:"display_name"`
	CreatedAt      int64  `json:"created_at"`
	UpdatedAt      int64  `json:"updated_at"`
}

// ProfileListResponse partitions visible profiles by how the caller can
// see them.
type ProfileListResponse struct {
	Owned  []ProfileResponse `json:"owned"`
	Shared []ProfileResponse `json:"shared"`
}

// ============================================================================
// Shares
// ============================================================================

type GrantShareRequest struct {
	// GranteeEmail identifies the account receiving the grant.
	GranteeEmail string `json:"grantee_email"`

	// Permissions is the full replacement set, e.g. ["read","write"].
	Permissions []string `json:"permissions"`
}

type ShareResponse struct {
	ProfileID        string   `json:"profile_id"`
	GranteeAccountID string   `json:"grantee_account_id"`
	Permissions      []string `json:"permissions"`
	CreatedBy        string   `json:"created_by"`
	CreatedAt        int64    `json:"created_at"`
	UpdatedAt        int64    `json:"updated_at"`
}

type ShareListResponse struct {
	Shares []ShareResponse `json:"shares"`
}

// ============================================================================
// Invites
// ============================================================================

type MintInviteRequest struct {
	// Permissions the redeemed share will carry, e.g. ["read"].
	Permissions []string `json:"permissions"`

	// ExpiresAt is a Unix timestamp. Zero means the server default (24h).
	ExpiresAt int64 `json:"expires_at,omitempty"`
}

// MintInviteResponse carries the raw invite code. This is the only time
// the code is ever returned; the service stores a fingerprint.
type MintInviteResponse struct {
	InviteID   string   `json:"invite_id"`
	InviteCode string   `json:"invite_code"`
	ProfileID  string   `json:"profile_id"`
	Permissions []string `json:"permissions"`
	ExpiresAt  int64    `json:"expires_at"`
}

type InviteResponse struct {
	ID          string   `json:"id"`
	ProfileID   string   `json:"profile_id"`
	Permissions []string `json:"permissions"`
	CreatedBy   string   `json:"created_by"`
	ExpiresAt   int64    `json:"expires_at"`
	CreatedAt   int64    `json:"created_at"`
}

type InviteListResponse struct {
	Invites []InviteResponse `json:"invites"`
}

type RedeemInviteRequest struct {
	InviteCode string `json:"invite_code"`
}

// ============================================================================
// Catalogs
// ============================================================================

type CatalogRequest struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Published   bool   `json:"published,omitempty"`
}

type CatalogResponse struct {
	ID          string `json:"id"`
	ProfileID   string `json:"profile_id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Published   bool   `json:"published"`
	CreatedAt   int64  `json:"created_at"`
	UpdatedAt   int64  `json:"updated_at"`
}

type CatalogListResponse struct {
	Catalogs []CatalogResponse `json:"catalogs"`
}

// ============================================================================
// Campaigns
// ============================================================================

type CampaignRequest struct {
	CatalogID string `json:"catalog_id,omitempty"`
	Title     string `json:"title"`
	GoalCents int64  `json:"goal_cents"`
	Status    string `json:"status,omitempty"`
}

type CampaignResponse struct {
	ID        string `json:"id"`
	ProfileID string `json:"profile_id"`
	CatalogID string `json:"catalog_id,omitempty"`
	Title     string `json:"title"`
	GoalCents int64  `json:"goal_cents"`
	Status    string `json:"status"`
	CreatedAt int64  `json:"created_at"`
	UpdatedAt int64  `json:"updated_at"`
}

type CampaignListResponse struct {
	Campaigns []CampaignResponse `json:"campaigns"`
}

// ============================================================================
// Orders
// ============================================================================

type CreateOrderRequest struct {
	CampaignID string `json:"campaign_id,omitempty"`
	BuyerEmail string `json:"buyer_email"`
	TotalCents int64  `json:"total_cents"`
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status"`
}

type OrderResponse struct {
	ID         string `json:"id"`
	ProfileID  string `json:"profile_id"`
	CampaignID string `json:"campaign_id,omitempty"`
	BuyerEmail string `json:"buyer_email"`
	TotalCents int64  `json:"total_cents"`
	Status     string `json:"status"`
	CreatedAt  int64  `json:"created_at"`
	UpdatedAt  int64  `json:"updated_at"`
}

type OrderListResponse struct {
	Orders []OrderResponse `json:"orders"`
}

// ============================================================================
// Payment methods
// ============================================================================

type CreatePaymentMethodRequest struct {
	Kind  string `json:"kind"` // "bank", "card", "paypal"
	Label string `json:"label"`
	Last4 string `json:"last4"`
}

type PaymentMethodResponse struct {
	ID        string `json:"id"`
	ProfileID string `json:"profile_id"`
	Kind      string `json:"kind"`
	Label     string `json:"label"`
	Last4     string `json:"last4"`
	CreatedAt int64  `json:"created_at"`
	UpdatedAt int64  `json:"updated_at"`
}

type PaymentMethodListResponse struct {
	PaymentMethods []PaymentMethodResponse `json:"payment_methods"`
}

// ============================================================================
// Health
// ============================================================================

type HealthResponse struct {
	Status  string        `json:"status"`
	Version string        `json:"version,omitempty"`
	Uptime  string        `json:"uptime,omitempty"`
	Checks  *HealthChecks `json:"checks,omitempty"`
}

// HealthChecks reports per-dependency readiness.
type HealthChecks struct {
	Database string `json:"database"`
	Verifier string `json:"verifier"`
}
