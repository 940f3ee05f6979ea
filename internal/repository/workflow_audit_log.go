package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/procurehq/reqflow/internal/model"
	"gorm.io/gorm"
)

// WorkflowAuditLogRepository handles database operations for workflow audit logs
type WorkflowAuditLogRepository struct {
	db *gorm.DB
}

// NewWorkflowAuditLogRepository creates a new WorkflowAuditLogRepository
func NewWorkflowAuditLogRepository(db *gorm.DB) *WorkflowAuditLogRepository {
	return &WorkflowAuditLogRepository{
		db: db,
	}
}

// Create inserts a new audit log entry
func (r *WorkflowAuditLogRepository) Create(ctx context.Context, log *model.WorkflowAuditLog) error {
	if log.ID == uuid.Nil {
		log.ID = uuid.New()
	}

	if log.Timestamp.IsZero() {
		log.Timestamp = time.Now().UTC()
	}

	result := r.db.WithContext(ctx).Create(log)
	if result.Error != nil {
		return fmt.Errorf("failed to create workflow audit log: %w", result.Error)
	}

	return nil
}

// AuditQueryParams holds parameters for querying audit logs
type AuditQueryParams struct {
	OrganizationID uuid.UUID
	RequisitionID  uuid.UUID
	ActorID        uuid.UUID
	Event          string
	Allowed        *bool
	StartTime      time.Time
	EndTime        time.Time
	Limit          int
	Offset         int
}

// Query retrieves audit logs based on the provided query parameters. The
// organization filter is mandatory; audit rows never cross tenants.
func (r *WorkflowAuditLogRepository) Query(ctx context.Context, params AuditQueryParams) ([]model.WorkflowAuditLog, int64, error) {
	var logs []model.WorkflowAuditLog
	var count int64

	query := r.db.WithContext(ctx).Model(&model.WorkflowAuditLog{}).
		Where("organization_id = ?", params.OrganizationID)

	if params.RequisitionID != uuid.Nil {
		query = query.Where("requisition_id = ?", params.RequisitionID)
	}
	if params.ActorID != uuid.Nil {
		query = query.Where("actor_id = ?", params.ActorID)
	}
	if params.Event != "" {
		query = query.Where("event = ?", params.Event)
	}
	if params.Allowed != nil {
		query = query.Where("allowed = ?", *params.Allowed)
	}
	if !params.StartTime.IsZero() {
		query = query.Where("timestamp >= ?", params.StartTime)
	}
	if !params.EndTime.IsZero() {
		query = query.Where("timestamp <= ?", params.EndTime)
	}

	if err := query.Count(&count).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count workflow audit logs: %w", err)
	}

	if params.Limit > 0 {
		query = query.Limit(params.Limit)
	} else {
		query = query.Limit(100) // Default limit
	}

	if params.Offset > 0 {
		query = query.Offset(params.Offset)
	}

	result := query.Order("timestamp DESC").Find(&logs)
	if result.Error != nil {
		return nil, 0, fmt.Errorf("failed to query workflow audit logs: %w", result.Error)
	}

	return logs, count, nil
}
