// internal/repository/attachment.go
package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/procurehq/reqflow/internal/model"
	"gorm.io/gorm"
)

type AttachmentRepositoryIface interface {
	Create(ctx context.Context, a *model.Attachment) error
	FindByRequisition(ctx context.Context, orgID, requisitionID uuid.UUID) ([]*model.Attachment, error)
	Delete(ctx context.Context, orgID, id uuid.UUID) error
}

type AttachmentRepository struct {
	db *gorm.DB
}

func NewAttachmentRepository(db *gorm.DB) *AttachmentRepository {
	return &AttachmentRepository{db: db}
}

func (r *AttachmentRepository) Create(ctx context.Context, a *model.Attachment) error {
	if err := r.db.WithContext(ctx).Create(a).Error; err != nil {
		return fmt.Errorf("creating attachment: %w", err)
	}
	return nil
}

// FindByRequisition joins through requisitions so attachments are only
// visible inside their own organization.
func (r *AttachmentRepository) FindByRequisition(ctx context.Context, orgID, requisitionID uuid.UUID) ([]*model.Attachment, error) {
	var attachments []*model.Attachment
	result := r.db.WithContext(ctx).
		Joins("JOIN requisitions ON requisitions.id = attachments.requisition_id").
		Where("attachments.requisition_id = ? AND requisitions.organization_id = ?", requisitionID, orgID).
		Order("attachments.created_at ASC").
		Find(&attachments)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to find attachments: %w", result.Error)
	}
	return attachments, nil
}

func (r *AttachmentRepository) Delete(ctx context.Context, orgID, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Exec(`
		DELETE FROM attachments
		USING requisitions
		WHERE attachments.id = ?
		  AND requisitions.id = attachments.requisition_id
		  AND requisitions.organization_id = ?`, id, orgID)
	if result.Error != nil {
		return fmt.Errorf("deleting attachment: %w", result.Error)
	}
	return nil
}
