// internal/repository/project.go
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

type ProjectRepositoryIface interface {
	Create(ctx context.Context, project *model.Project) error
	FindByID(ctx context.Context, orgID, id uuid.UUID) (*model.Project, error)
	FindByOrg(ctx context.Context, orgID uuid.UUID) ([]*model.Project, error)
	Update(ctx context.Context, project *model.Project) error
	Delete(ctx context.Context, orgID, id uuid.UUID) error
}

type ProjectRepository struct {
	db *gorm.DB
}

func NewProjectRepository(db *gorm.DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

func (r *ProjectRepository) Create(ctx context.Context, project *model.Project) error {
	if project.OrganizationID == uuid.Nil {
		return domain.ErrNoOrgContext
	}
	if err := r.db.WithContext(ctx).Create(project).Error; err != nil {
		return fmt.Errorf("creating project: %w", err)
	}
	return nil
}

func (r *ProjectRepository) FindByID(ctx context.Context, orgID, id uuid.UUID) (*model.Project, error) {
	var project model.Project
	result := r.db.WithContext(ctx).Where("id = ? AND organization_id = ?", id, orgID).First(&project)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domain.ErrProjectNotFound
		}
		return nil, fmt.Errorf("finding project: %w", result.Error)
	}
	return &project, nil
}

func (r *ProjectRepository) FindByOrg(ctx context.Context, orgID uuid.UUID) ([]*model.Project, error) {
	var projects []*model.Project
	result := r.db.WithContext(ctx).
		Where("organization_id = ?", orgID).
		Order("name ASC").
		Find(&projects)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to find projects: %w", result.Error)
	}
	return projects, nil
}

func (r *ProjectRepository) Update(ctx context.Context, project *model.Project) error {
	result := r.db.WithContext(ctx).Model(&model.Project{}).
		Where("id = ? AND organization_id = ?", project.ID, project.OrganizationID).
		Updates(map[string]interface{}{
			"name":   project.Name,
			"code":   project.Code,
			"active": project.Active,
		})
	if result.Error != nil {
		return fmt.Errorf("updating project: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrProjectNotFound
	}
	return nil
}

func (r *ProjectRepository) Delete(ctx context.Context, orgID, id uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND organization_id = ?", id, orgID).
		Delete(&model.Project{})
	if result.Error != nil {
		return fmt.Errorf("deleting project: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrProjectNotFound
	}
	return nil
}
