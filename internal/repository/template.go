// internal/repository/template.go
package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/procurehq/reqflow/internal/domain"
	"github.com/procurehq/reqflow/internal/model"
	"gorm.io/gorm"
)

type TemplateRepositoryIface interface {
	Create(ctx context.Context, tmpl *model.RequisitionTemplate) error
	FindByID(ctx context.Context, orgID, id uuid.UUID) (*model.RequisitionTemplate, error)
	FindByOrg(ctx context.Context, orgID uuid.UUID) ([]*model.RequisitionTemplate, error)
	Delete(ctx context.Context, orgID, id uuid.UUID) error
}

type TemplateRepository struct {
	db *gorm.DB
}

func NewTemplateRepository(db *gorm.DB) *TemplateRepository {
	return &TemplateRepository{db: db}
}

func (r *TemplateRepository) Create(ctx context.Context, tmpl *model.RequisitionTemplate) error {
	if tmpl.OrganizationID == uuid.Nil {
		return domain.ErrNoOrgContext
	}
	if err := r.db.WithContext(ctx).Create(tmpl).Error; err != nil {
		return fmt.Errorf("creating template: %w", err)
	}
	return nil
}

func (r *TemplateRepository) FindByID(ctx context.Context, orgID, id uuid.UUID) (*model.RequisitionTemplate, error) {
	var tmpl model.RequisitionTemplate
	result := r.db.WithContext(ctx).Where("id = ? AND organization_id = ?", id, orgID).First(&tmpl)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domain.ErrTemplateNotFound
		}
		return nil, fmt.Errorf("finding template: %w", result.Error)
	}
	return &tmpl, nil
}

func (r *TemplateRepository) FindByOrg(ctx context.Context, orgID uuid.UUID) ([]*model.RequisitionTemplate, error) {
	var tmpls []*model.RequisitionTemplate
	result := r.db.WithContext(ctx).
		Where("organization_id = ?", orgID).
		Order("name ASC").
		Find(&tmpls)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to find templates: %w", result.Error)
	}
	return tmpls, nil
}

func (r *TemplateRepository) Delete(ctx context.Context, orgID, id uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND organization_id = ?", id, orgID).
		Delete(&model.RequisitionTemplate{})
	if result.Error != nil {
		return fmt.Errorf("deleting template: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrTemplateNotFound
	}
	return nil
}
