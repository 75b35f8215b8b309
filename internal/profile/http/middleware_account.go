package http

import (
	"net/http"

	"github.com/fairstand/fairstand/pkg/httpx"
	"github.com/fairstand/fairstand/pkg/profilesdk"
	"github.com/fairstand/fairstand/pkg/slogx"
)

// provisionAccount upserts the local account row from the verified token
// claims so shares can later be granted by email. Runs after
// authentication on every secured route; replays are cheap no-ops.
func (r *Router) provisionAccount() httpx.Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			ctx := req.Context()
			log := slogx.FromContext(ctx)

			accountID := httpx.AccountIDFromContext(ctx)
			email := httpx.EmailFromContext(ctx)
			if accountID == "" || email == "" {
				httpx.WriteJSON(w, http.StatusUnauthorized, profilesdk.ErrorResponse{
					Error:            "unauthorized",
					ErrorDescription: "Token is missing subject or email",
				})
				return
			}

			if err := r.AccountService.EnsureAccount(ctx, accountID, email); err != nil {
				log.Error("account provisioning failed", "err", err)
				httpx.WriteJSON(w, http.StatusInternalServerError, profilesdk.ErrorResponse{
					Error:            "server_error",
					ErrorDescription: "Failed to provision account",
				})
				return
			}

			next.ServeHTTP(w, req)
		})
	}
}
