// internal/handler/audit_log.go
package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/procurehq/reqflow/internal/repository"
	"github.com/procurehq/reqflow/internal/service"
)

// AuditLogHandler serves the workflow audit trail.
type AuditLogHandler struct {
	service *service.AuditLogService
}

func NewAuditLogHandler(service *service.AuditLogService) *AuditLogHandler {
	return &AuditLogHandler{service: service}
}

// GetAuditLogs handles requests to retrieve audit logs with filtering
func (h *AuditLogHandler) GetAuditLogs(w http.ResponseWriter, r *http.Request) {
	orgID, actor, ok := requestScope(r)
	if !ok {
		respondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	params := repository.AuditQueryParams{}
	query := r.URL.Query()

	// Apply filters from query parameters
	if reqIDStr := query.Get("requisition_id"); reqIDStr != "" {
		if reqID, err := uuid.Parse(reqIDStr); err == nil {
			params.RequisitionID = reqID
		}
	}

	if actorIDStr := query.Get("actor_id"); actorIDStr != "" {
		if actorID, err := uuid.Parse(actorIDStr); err == nil {
			params.ActorID = actorID
		}
	}

	if event := query.Get("event"); event != "" {
		params.Event = event
	}

	if allowedStr := query.Get("allowed"); allowedStr != "" {
		allowed, err := strconv.ParseBool(allowedStr)
		if err == nil {
			params.Allowed = &allowed
		}
	}

	if startTimeStr := query.Get("start_time"); startTimeStr != "" {
		startTime, err := time.Parse(time.RFC3339, startTimeStr)
		if err == nil {
			params.StartTime = startTime
		}
	}

	if endTimeStr := query.Get("end_time"); endTimeStr != "" {
		endTime, err := time.Parse(time.RFC3339, endTimeStr)
		if err == nil {
			params.EndTime = endTime
		}
	}

	// Pagination
	if limitStr := query.Get("limit"); limitStr != "" {
		limit, err := strconv.Atoi(limitStr)
		if err == nil && limit > 0 {
			params.Limit = limit
		}
	}

	if offsetStr := query.Get("offset"); offsetStr != "" {
		offset, err := strconv.Atoi(offsetStr)
		if err == nil && offset >= 0 {
			params.Offset = offset
		}
	}

	logs, total, err := h.service.GetAuditLogs(r.Context(), orgID, actor, params)
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"logs":  logs,
		"total": total,
	})
}
