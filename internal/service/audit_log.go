// internal/service/audit_log.go
package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/procurehq/reqflow/internal/model"
	"github.com/procurehq/reqflow/internal/repository"
	"github.com/procurehq/reqflow/internal/workflow"
)

// AuditLogService exposes the workflow audit trail to super_admins. The
// trail is append-only; this service only reads.
type AuditLogService struct {
	repo *repository.WorkflowAuditLogRepository
}

func NewAuditLogService(repo *repository.WorkflowAuditLogRepository) *AuditLogService {
	return &AuditLogService{repo: repo}
}

func (s *AuditLogService) GetAuditLogs(ctx context.Context, orgID uuid.UUID, actor workflow.Actor, params repository.AuditQueryParams) ([]model.WorkflowAuditLog, int64, error) {
	if actor.Role != model.RoleSuperAdmin {
		return nil, 0, &workflow.PermissionError{}
	}
	params.OrganizationID = orgID
	return s.repo.Query(ctx, params)
}
