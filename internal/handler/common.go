package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/procurehq/reqflow/internal/domain"
	"github.com/procurehq/reqflow/internal/middleware"
	"github.com/procurehq/reqflow/internal/workflow"
)

// requestScope pulls the tenant scope the middleware resolved. A false
// return means the route was mounted outside the tenant group, which is
// a wiring bug, so the caller responds 500.
func requestScope(r *http.Request) (uuid.UUID, workflow.Actor, bool) {
	orgID, ok := middleware.OrgID(r.Context())
	if !ok {
		return uuid.Nil, workflow.Actor{}, false
	}
	actor, ok := middleware.Actor(r.Context())
	if !ok {
		return uuid.Nil, workflow.Actor{}, false
	}
	return orgID, actor, true
}

type ErrorResponse struct {
	BaseResponse
	Error string `json:"error"`
}

type BaseResponse struct {
	Ok bool `json:"ok"`
}

// respondWithError sends an error response with a message
func respondWithError(w http.ResponseWriter, code int, message string) {
	respondWithJSON(w, code, ErrorResponse{Error: message})
}

// respondWithJSON sends a JSON response
func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	// Sets content type header
	w.Header().Set("Content-Type", "application/json")

	// Sets the HTTP status code
	w.WriteHeader(code)

	// Encodes the response
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		// If encoding fails, logs the error and sends a plain text response
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		return
	}
}

// respondWithServiceError maps service-layer errors onto HTTP statuses.
// Permission denials and cross-tenant misses both come out as the same
// generic message so responses never confirm a resource's existence.
func respondWithServiceError(w http.ResponseWriter, r *http.Request, err error) {
	var (
		validationErr *workflow.ValidationError
		transitionErr *workflow.InvalidTransitionError
		permErr       *workflow.PermissionError
		conflictErr   *workflow.ConflictError
	)

	switch {
	case errors.As(err, &validationErr):
		respondWithError(w, http.StatusBadRequest, validationErr.Error())
	case errors.As(err, &permErr):
		respondWithError(w, http.StatusForbidden, "access denied")
	case errors.As(err, &conflictErr):
		respondWithError(w, http.StatusConflict, conflictErr.Error())
	case errors.As(err, &transitionErr):
		// Well-behaved clients only offer events the API listed as
		// allowed, so reaching this indicates a stale or buggy client.
		slog.InfoContext(r.Context(), "invalid transition requested",
			"error", err, "requestID", chimw.GetReqID(r.Context()))
		respondWithError(w, http.StatusConflict, transitionErr.Error())
	case errors.Is(err, domain.ErrInvalidInput):
		respondWithError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrNotFound),
		errors.Is(err, domain.ErrRequisitionNotFound),
		errors.Is(err, domain.ErrProjectNotFound),
		errors.Is(err, domain.ErrAccountNotFound),
		errors.Is(err, domain.ErrItemNotFound),
		errors.Is(err, domain.ErrTemplateNotFound),
		errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrOrganizationNotFound),
		errors.Is(err, domain.ErrMemberNotFound):
		respondWithError(w, http.StatusNotFound, "not found")
	case errors.Is(err, domain.ErrMemberAlreadyExists):
		respondWithError(w, http.StatusConflict, err.Error())
	case errors.Is(err, domain.ErrUnauthorized):
		respondWithError(w, http.StatusForbidden, "access denied")
	default:
		slog.ErrorContext(r.Context(), "request failed",
			"error", err, "requestID", chimw.GetReqID(r.Context()))
		respondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}
