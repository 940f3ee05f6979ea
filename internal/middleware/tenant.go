// internal/middleware/tenant.go
package middleware

import (
	"context"
	"log/slog"
	"net/http"

	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/procurehq/reqflow/internal/service"
	"github.com/procurehq/reqflow/internal/workflow"
)

const (
	// OrgIDKey carries the organization the request is scoped to.
	OrgIDKey = contextKey("reqflow_org_id")
	// ActorKey carries the resolved workflow actor.
	ActorKey = contextKey("reqflow_actor")

	// OrgHeader names the organization a request operates in. Every
	// tenant-scoped route requires it.
	OrgHeader = "X-Org-ID"
)

// OrgID returns the organization ID the request is scoped to.
func OrgID(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(OrgIDKey).(uuid.UUID)
	return id, ok
}

// Actor returns the resolved workflow actor for the request.
func Actor(ctx context.Context) (workflow.Actor, bool) {
	actor, ok := ctx.Value(ActorKey).(workflow.Actor)
	return actor, ok
}

// TenantMiddleware resolves the caller's role inside the organization
// named by the X-Org-ID header. Non-members get the same generic denial
// as members without permission, so the response never reveals whether
// the organization exists.
func TenantMiddleware(sessions *service.SessionService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID, ok := UserID(r.Context())
			if !ok {
				respondWithError(w, http.StatusUnauthorized, "No authenticated user")
				return
			}

			header := r.Header.Get(OrgHeader)
			if header == "" {
				respondWithError(w, http.StatusBadRequest, "Missing organization header")
				return
			}

			orgID, err := uuid.Parse(header)
			if err != nil || orgID == uuid.Nil {
				respondWithError(w, http.StatusBadRequest, "Invalid organization header")
				return
			}

			actor, err := sessions.ResolveActor(r.Context(), orgID, userID)
			if err != nil {
				slog.InfoContext(r.Context(), "membership resolution failed",
					"org_id", orgID,
					"user_id", userID,
					"error", err,
					"requestID", chimw.GetReqID(r.Context()),
				)
				respondWithError(w, http.StatusForbidden, "access denied")
				return
			}

			ctx := context.WithValue(r.Context(), OrgIDKey, orgID)
			ctx = context.WithValue(ctx, ActorKey, actor)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
