package audit

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/procurehq/reqflow/internal/model"
	"github.com/procurehq/reqflow/internal/workflow"
)

// Logger defines the interface for auditing workflow operations
type Logger interface {
	// LogTransition logs a workflow transition attempt, allowed or denied
	LogTransition(
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
	) error

	// LogRequisitionCreate logs a requisition creation
	LogRequisitionCreate(
		ctx context.Context,
		orgID uuid.UUID,
		requisitionID uuid.UUID,
		actor workflow.Actor,
		req *http.Request,
	) error

	// LogRequisitionDelete logs a draft deletion
	LogRequisitionDelete(
		ctx context.Context,
		orgID uuid.UUID,
		requisitionID uuid.UUID,
		actor workflow.Actor,
		req *http.Request,
	) error
}

// NoOpLogger is a logger that does nothing
type NoOpLogger struct{}

// LogTransition implements Logger.LogTransition
func (l *NoOpLogger) LogTransition(
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
	return nil
}

// LogRequisitionCreate implements Logger.LogRequisitionCreate
func (l *NoOpLogger) LogRequisitionCreate(
	ctx context.Context,
	orgID uuid.UUID,
	requisitionID uuid.UUID,
	actor workflow.Actor,
	req *http.Request,
) error {
	return nil
}

// LogRequisitionDelete implements Logger.LogRequisitionDelete
func (l *NoOpLogger) LogRequisitionDelete(
	ctx context.Context,
	orgID uuid.UUID,
	requisitionID uuid.UUID,
	actor workflow.Actor,
	req *http.Request,
) error {
	return nil
}
