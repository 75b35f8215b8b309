package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/fairstand/fairstand/internal/profile/service"
	"github.com/fairstand/fairstand/internal/profile/store"
	"github.com/fairstand/fairstand/pkg/httpx"
	"github.com/fairstand/fairstand/pkg/jwtx"
	"github.com/fairstand/fairstand/pkg/metricsx"
	"github.com/fairstand/fairstand/pkg/slogx"

	_ "github.com/fairstand/fairstand/api/profile" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	keys         *jwtx.KeySet
	verifier     jwtx.Verifier
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger
	metrics      *metricsx.Metrics

	store                store.Store
	AccountService       *service.AccountService
	ProfileService       *service.ProfileService
	ShareService         *service.ShareService
	InviteService        *service.InviteService
	CatalogService       *service.CatalogService
	CampaignService      *service.CampaignService
	OrderService         *service.OrderService
	PaymentMethodService *service.PaymentMethodService
}

func NewRouter(
	keys *jwtx.KeySet,
	verifier jwtx.Verifier,
	buildVersion string,
	st store.Store,
	metrics *metricsx.Metrics,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		keys:         keys,
		verifier:     verifier,
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		metrics:      metrics,
		logger:       logger,
	}

	// Set default middleware chain
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
	}
	if metrics != nil {
		r.middlewares = append(r.middlewares, metricsx.HTTPMetricsMiddleware(metrics))
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerProfiles()
	r.registerShares()
	r.registerInvites()
	r.registerCatalogs()
	r.registerCampaigns()
	r.registerOrders()
	r.registerPaymentMethods()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpx.Chain(httpSwagger.Handler(),
		httpx.RateLimitByIP(httpx.PublicLimit),
	))
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			Fairstand Profile Service API
//	@version		0.1.0
//	@description	Seller profiles with owner-granted sharing. Accounts are minted by the
//	@description	external identity provider; this service trusts its EdDSA-signed tokens
//	@description	and manages profiles, shares, invites, and profile-scoped resources.
//
//	@contact.name				Fairstand Team
//	@contact.url				https://github.com/fairstand/fairstand
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/
//
//	@schemes					http https
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				JWT access token from the identity provider. Format: "Bearer {token}".
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

// secured wraps a handler with authentication, first-sign-in account
// provisioning, and a per-account rate limit.
func (r *Router) secured(h http.Handler, limit httpx.RateLimitConfig) http.Handler {
	return httpx.Chain(h,
		httpx.AuthnMiddleware(r.verifier),
		r.provisionAccount(),
		httpx.RateLimitByAccount(limit),
	)
}

func (r *Router) registerProfiles() {
	h := &ProfilesHandler{ProfileService: r.ProfileService}

	r.Mux.Handle("POST /v1/profiles", r.secured(http.HandlerFunc(h.HandleCreate), httpx.ModerateLimit))
	r.Mux.Handle("GET /v1/profiles", r.secured(http.HandlerFunc(h.HandleList), httpx.LenientLimit))
	r.Mux.Handle("GET /v1/profiles/{id}", r.secured(http.HandlerFunc(h.HandleGet), httpx.LenientLimit))
	r.Mux.Handle("PATCH /v1/profiles/{id}", r.secured(http.HandlerFunc(h.HandleRename), httpx.ModerateLimit))
	r.Mux.Handle("DELETE /v1/profiles/{id}", r.secured(http.HandlerFunc(h.HandleDelete), httpx.ModerateLimit))
}

func (r *Router) registerShares() {
	h := &SharesHandler{ShareService: r.ShareService}

	r.Mux.Handle("PUT /v1/profiles/{id}/shares", r.secured(http.HandlerFunc(h.HandleGrant), httpx.ModerateLimit))
	r.Mux.Handle("GET /v1/profiles/{id}/shares", r.secured(http.HandlerFunc(h.HandleList), httpx.LenientLimit))
	r.Mux.Handle("DELETE /v1/profiles/{id}/shares/{accountID}", r.secured(http.HandlerFunc(h.HandleRevoke), httpx.ModerateLimit))
}

func (r *Router) registerInvites() {
	h := &InvitesHandler{InviteService: r.InviteService}

	r.Mux.Handle("POST /v1/profiles/{id}/invites", r.secured(http.HandlerFunc(h.HandleMint), httpx.ModerateLimit))
	r.Mux.Handle("GET /v1/profiles/{id}/invites", r.secured(http.HandlerFunc(h.HandleList), httpx.LenientLimit))

	// Redemption burns codes, so it gets the strict limit.
	r.Mux.Handle("POST /v1/invites/redeem", r.secured(http.HandlerFunc(h.HandleRedeem), httpx.StrictLimit))
}

func (r *Router) registerCatalogs() {
	h := &CatalogsHandler{CatalogService: r.CatalogService}

	r.Mux.Handle("POST /v1/profiles/{id}/catalogs", r.secured(http.HandlerFunc(h.HandleCreate), httpx.ModerateLimit))
	r.Mux.Handle("GET /v1/profiles/{id}/catalogs", r.secured(http.HandlerFunc(h.HandleList), httpx.LenientLimit))
	r.Mux.Handle("GET /v1/profiles/{id}/catalogs/{catalogID}", r.secured(http.HandlerFunc(h.HandleGet), httpx.LenientLimit))
	r.Mux.Handle("PATCH /v1/profiles/{id}/catalogs/{catalogID}", r.secured(http.HandlerFunc(h.HandleUpdate), httpx.ModerateLimit))
	r.Mux.Handle("DELETE /v1/profiles/{id}/catalogs/{catalogID}", r.secured(http.HandlerFunc(h.HandleDelete), httpx.ModerateLimit))
}

func (r *Router) registerCampaigns() {
	h := &CampaignsHandler{CampaignService: r.CampaignService}

	r.Mux.Handle("POST /v1/profiles/{id}/campaigns", r.secured(http.HandlerFunc(h.HandleCreate), httpx.ModerateLimit))
	r.Mux.Handle("GET /v1/profiles/{id}/campaigns", r.secured(http.HandlerFunc(h.HandleList), httpx.LenientLimit))
	r.Mux.Handle("GET /v1/profiles/{id}/campaigns/{campaignID}", r.secured(http.HandlerFunc(h.HandleGet), httpx.LenientLimit))
	r.Mux.Handle("PATCH /v1/profiles/{id}/campaigns/{campaignID}", r.secured(http.HandlerFunc(h.HandleUpdate), httpx.ModerateLimit))
	r.Mux.Handle("DELETE /v1/profiles/{id}/campaigns/{campaignID}", r.secured(http.HandlerFunc(h.HandleDelete), httpx.ModerateLimit))
}

func (r *Router) registerOrders() {
	h := &OrdersHandler{OrderService: r.OrderService}

	r.Mux.Handle("POST /v1/profiles/{id}/orders", r.secured(http.HandlerFunc(h.HandleCreate), httpx.ModerateLimit))
	r.Mux.Handle("GET /v1/profiles/{id}/orders", r.secured(http.HandlerFunc(h.HandleList), httpx.LenientLimit))
	r.Mux.Handle("GET /v1/profiles/{id}/orders/{orderID}", r.secured(http.HandlerFunc(h.HandleGet), httpx.LenientLimit))
	r.Mux.Handle("PATCH /v1/profiles/{id}/orders/{orderID}", r.secured(http.HandlerFunc(h.HandleUpdateStatus), httpx.ModerateLimit))
}

func (r *Router) registerPaymentMethods() {
	h := &PaymentMethodsHandler{PaymentMethodService: r.PaymentMethodService}

	r.Mux.Handle("POST /v1/profiles/{id}/payment-methods", r.secured(http.HandlerFunc(h.HandleCreate), httpx.ModerateLimit))
	r.Mux.Handle("GET /v1/profiles/{id}/payment-methods", r.secured(http.HandlerFunc(h.HandleList), httpx.LenientLimit))
	r.Mux.Handle("GET /v1/profiles/{id}/payment-methods/{paymentMethodID}", r.secured(http.HandlerFunc(h.HandleGet), httpx.LenientLimit))
	r.Mux.Handle("DELETE /v1/profiles/{id}/payment-methods/{paymentMethodID}", r.secured(http.HandlerFunc(h.HandleDelete), httpx.ModerateLimit))
}

func (r *Router) registerSystem() {
	// Health check endpoints - lenient rate limits (monitoring systems may poll frequently)
	r.Mux.Handle("GET /livez",
		httpx.Chain(LivezHandler(r.startTime, r.buildVersion),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("GET /readyz",
		httpx.Chain(ReadyzHandler(r.startTime, r.buildVersion, r.store, r.keys),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)

	if r.metrics != nil {
		r.Mux.Handle("GET /metrics", metricsx.Handler(r.metrics.Registry))
	}
}
