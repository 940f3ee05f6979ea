// internal/repository/requisition.go
package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/procurehq/reqflow/internal/domain"
	"github.com/procurehq/reqflow/internal/model"
	"github.com/procurehq/reqflow/internal/workflow"
	"gorm.io/gorm"
)

// RequisitionRepositoryIface is the persistence surface for requisitions.
// Every method is constrained by the caller's organization id; there is no
// unscoped lookup.
type RequisitionRepositoryIface interface {
	Begin(ctx context.Context) (Transaction, error)

	Create(ctx context.Context, req *model.Requisition) error
	FindByID(ctx context.Context, orgID, id uuid.UUID) (*model.Requisition, error)
	FindByOrg(ctx context.Context, orgID uuid.UUID, status model.RequisitionStatus, offset, limit int) ([]*model.Requisition, int64, error)
	FindBySubmitter(ctx context.Context, orgID, userID uuid.UUID) ([]*model.Requisition, error)
	UpdateDraft(ctx context.Context, req *model.Requisition) error
	ApplyTransition(ctx context.Context, orgID, id uuid.UUID, changes *workflow.Changes) error
	Delete(ctx context.Context, orgID, id uuid.UUID) error
	AddComment(ctx context.Context, comment *model.RequisitionComment) error
	FindComments(ctx context.Context, orgID, requisitionID uuid.UUID) ([]model.RequisitionComment, error)
}

type RequisitionRepository struct {
	db *gorm.DB
}

func NewRequisitionRepository(db *gorm.DB) *RequisitionRepository {
	return &RequisitionRepository{db: db}
}

// Begin starts a new database transaction and returns a Transaction instance.
func (r *RequisitionRepository) Begin(ctx context.Context) (Transaction, error) {
	tx := r.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &gormTransaction{tx: tx}, nil
}

func (r *RequisitionRepository) Create(ctx context.Context, req *model.Requisition) error {
	if req.OrganizationID == uuid.Nil {
		return domain.ErrNoOrgContext
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(req).Error; err != nil {
			return fmt.Errorf("creating requisition: %w", err)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("transaction failed: %w", err)
	}
	return nil
}

func (r *RequisitionRepository) FindByID(ctx context.Context, orgID, id uuid.UUID) (*model.Requisition, error) {
	var req model.Requisition
	result := r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("position ASC") }).
		Where("id = ? AND organization_id = ?", id, orgID).
		First(&req)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domain.ErrRequisitionNotFound
		}
		return nil, fmt.Errorf("finding requisition: %w", result.Error)
	}
	return &req, nil
}

func (r *RequisitionRepository) FindByOrg(ctx context.Context, orgID uuid.UUID, status model.RequisitionStatus, offset, limit int) ([]*model.Requisition, int64, error) {
	var reqs []*model.Requisition
	var count int64

	query := r.db.WithContext(ctx).Model(&model.Requisition{}).Where("organization_id = ?", orgID)
	if status != "" {
		query = query.Where("status = ?", status)
	}

	if err := query.Count(&count).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count requisitions: %w", err)
	}

	result := query.Order("created_at DESC").Offset(offset).Limit(limit).Find(&reqs)
	if result.Error != nil {
		return nil, 0, fmt.Errorf("failed to find requisitions: %w", result.Error)
	}

	return reqs, count, nil
}

func (r *RequisitionRepository) FindBySubmitter(ctx context.Context, orgID, userID uuid.UUID) ([]*model.Requisition, error) {
	var reqs []*model.Requisition
	result := r.db.WithContext(ctx).
		Where("organization_id = ? AND submitted_by_id = ?", orgID, userID).
		Order("created_at DESC").
		Find(&reqs)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to find requisitions: %w", result.Error)
	}
	return reqs, nil
}

// UpdateDraft replaces the mutable fields and line items of a draft. The
// status predicate keeps a concurrently submitted requisition from being
// silently rewritten.
func (r *RequisitionRepository) UpdateDraft(ctx context.Context, req *model.Requisition) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&model.Requisition{}).
			Where("id = ? AND organization_id = ? AND status = ?", req.ID, req.OrganizationID, model.StatusDraft).
			Updates(map[string]interface{}{
				"title":              req.Title,
				"description":        req.Description,
				"project_id":         req.ProjectID,
				"expense_account_id": req.ExpenseAccountID,
				"total_cents":        req.TotalCents,
			})
		if result.Error != nil {
			return fmt.Errorf("updating draft: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return domain.ErrStaleStatus
		}

		if err := tx.Where("requisition_id = ?", req.ID).Delete(&model.RequisitionItem{}).Error; err != nil {
			return fmt.Errorf("clearing line items: %w", err)
		}
		for i := range req.Items {
			req.Items[i].RequisitionID = req.ID
			req.Items[i].Position = i
		}
		if len(req.Items) > 0 {
			if err := tx.Create(&req.Items).Error; err != nil {
				return fmt.Errorf("writing line items: %w", err)
			}
		}
		return nil
	})

	if err != nil {
		if errors.Is(err, domain.ErrStaleStatus) {
			return err
		}
		return fmt.Errorf("transaction failed: %w", err)
	}
	return nil
}

// ApplyTransition persists a workflow transition as a single conditional
// update: the row must still be in the status the changes were computed
// from. Zero matched rows means a concurrent transition won; the caller
// receives domain.ErrStaleStatus and must not treat the event as applied.
func (r *RequisitionRepository) ApplyTransition(ctx context.Context, orgID, id uuid.UUID, changes *workflow.Changes) error {
	updates := map[string]interface{}{
		"status":     changes.Status,
		"updated_at": time.Now().UTC(),
	}
	if changes.SubmittedAt != nil {
		updates["submitted_at"] = *changes.SubmittedAt
	}
	if changes.ReviewedAt != nil {
		updates["reviewed_at"] = *changes.ReviewedAt
	}
	if changes.ApprovedAt != nil {
		updates["approved_at"] = *changes.ApprovedAt
	}
	if changes.ReviewerID != nil {
		updates["reviewer_id"] = *changes.ReviewerID
	}
	if changes.ApproverID != nil {
		updates["approver_id"] = *changes.ApproverID
	}
	if changes.ClosedByID != nil {
		updates["closed_by_id"] = *changes.ClosedByID
	}

	result := r.db.WithContext(ctx).Model(&model.Requisition{}).
		Where("id = ? AND organization_id = ? AND status = ?", id, orgID, changes.FromStatus).
		Updates(updates)
	if result.Error != nil {
		return fmt.Errorf("applying transition: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrStaleStatus
	}
	return nil
}

func (r *RequisitionRepository) Delete(ctx context.Context, orgID, id uuid.UUID) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("requisition_id = ?", id).Delete(&model.RequisitionItem{}).Error; err != nil {
			return fmt.Errorf("deleting line items: %w", err)
		}

		result := tx.Where("id = ? AND organization_id = ? AND status = ?", id, orgID, model.StatusDraft).
			Delete(&model.Requisition{})
		if result.Error != nil {
			return fmt.Errorf("deleting requisition: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return domain.ErrRequisitionNotFound
		}
		return nil
	})

	if err != nil {
		if errors.Is(err, domain.ErrRequisitionNotFound) {
			return err
		}
		return fmt.Errorf("transaction failed: %w", err)
	}
	return nil
}

func (r *RequisitionRepository) AddComment(ctx context.Context, comment *model.RequisitionComment) error {
	if err := r.db.WithContext(ctx).Create(comment).Error; err != nil {
		return fmt.Errorf("creating comment: %w", err)
	}
	return nil
}

func (r *RequisitionRepository) FindComments(ctx context.Context, orgID, requisitionID uuid.UUID) ([]model.RequisitionComment, error) {
	var comments []model.RequisitionComment
	result := r.db.WithContext(ctx).
		Joins("JOIN requisitions ON requisitions.id = requisition_comments.requisition_id").
		Where("requisition_comments.requisition_id = ? AND requisitions.organization_id = ?", requisitionID, orgID).
		Order("requisition_comments.created_at ASC").
		Find(&comments)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to find comments: %w", result.Error)
	}
	return comments, nil
}
