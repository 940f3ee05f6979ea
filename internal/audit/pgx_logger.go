package audit

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/procurehq/reqflow/internal/model"
	"github.com/procurehq/reqflow/internal/workflow"
)

// PgxLogger writes audit rows through a dedicated pgx pool so audit
// writes survive even when the request's gorm transaction rolls back.
type PgxLogger struct {
	pool *pgxpool.Pool
}

// NewPgxLogger creates a new database-backed audit logger
func NewPgxLogger(pool *pgxpool.Pool) *PgxLogger {
	return &PgxLogger{
		pool: pool,
	}
}

func requestInfo(req *http.Request) (requestID, clientIP, userAgent string) {
	if req != nil {
		requestID = req.Header.Get("X-Request-ID")
		clientIP = req.RemoteAddr
		userAgent = req.UserAgent()
	}
	return
}

// LogTransition logs a workflow transition attempt, allowed or denied
func (l *PgxLogger) LogTransition(
	ctx context.Context,
	orgID uuid.UUID,
	requisitionID uuid.UUID,
	actor workflow.Actor,
	event workflow.Event,
	fromStatus model.RequisitionStatus,
	toStatus model.RequisitionStatus,
	allowed bool,
	contextData map[string]interface{},
	req *http.Request,
) error {
	contextJSON, err := json.Marshal(contextData)
	if err != nil {
		slog.Warn("failed to marshal audit context", "error", err)
		contextJSON = []byte("{}")
	}

	requestID, clientIP, userAgent := requestInfo(req)

	_, err = l.pool.Exec(ctx, `
		INSERT INTO workflow_audit_logs (
			organization_id, requisition_id, actor_id, actor_role,
			event, from_status, to_status, allowed, context,
			request_id, client_ip, user_agent
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12
		)
	`,
		orgID, requisitionID, actor.ID, string(actor.Role),
		string(event), string(fromStatus), string(toStatus), allowed, contextJSON,
		requestID, clientIP, userAgent)

	if err != nil {
		slog.Error("failed to log workflow transition", "error", err)
		return err
	}

	return nil
}

// LogRequisitionCreate logs a requisition creation
func (l *PgxLogger) LogRequisitionCreate(
	ctx context.Context,
	orgID uuid.UUID,
	requisitionID uuid.UUID,
	actor workflow.Actor,
	req *http.Request,
) error {
	requestID, clientIP, userAgent := requestInfo(req)

	_, err := l.pool.Exec(ctx, `
		INSERT INTO workflow_audit_logs (
			organization_id, requisition_id, actor_id, actor_role,
			event, to_status, request_id, client_ip, user_agent
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9
		)
	`,
		orgID, requisitionID, actor.ID, string(actor.Role),
		"create", string(model.StatusDraft),
		requestID, clientIP, userAgent)

	if err != nil {
		slog.Error("failed to log requisition creation", "error", err)
		return err
	}

	return nil
}

// LogRequisitionDelete logs a draft deletion
func (l *PgxLogger) LogRequisitionDelete(
	ctx context.Context,
	orgID uuid.UUID,
	requisitionID uuid.UUID,
	actor workflow.Actor,
	req *http.Request,
) error {
	requestID, clientIP, userAgent := requestInfo(req)

	_, err := l.pool.Exec(ctx, `
		INSERT INTO workflow_audit_logs (
			organization_id, requisition_id, actor_id, actor_role,
			event, from_status, request_id, client_ip, user_agent
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9
		)
	`,
		orgID, requisitionID, actor.ID, string(actor.Role),
		"delete", string(model.StatusDraft),
		requestID, clientIP, userAgent)

	if err != nil {
		slog.Error("failed to log requisition deletion", "error", err)
		return err
	}

	return nil
}
