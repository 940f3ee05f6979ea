// internal/service/project.go
package service

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/procurehq/reqflow/internal/domain"
	"github.com/procurehq/reqflow/internal/model"
	"github.com/procurehq/reqflow/internal/repository"
	"github.com/procurehq/reqflow/internal/workflow"
)

type ProjectService struct {
	repo     repository.ProjectRepositoryIface
	validate *validator.Validate
}

func NewProjectService(repo repository.ProjectRepositoryIface) *ProjectService {
	return &ProjectService{repo: repo, validate: validator.New()}
}

type ProjectInput struct {
	Name string `json:"name" validate:"required"`
	Code string `json:"code"`
}

// CreateProject adds a project to the organization's chart. Reference
// data is managed by super_admins only.
func (s *ProjectService) CreateProject(ctx context.Context, orgID uuid.UUID, actor workflow.Actor, input ProjectInput) (*model.Project, error) {
	if actor.Role != model.RoleSuperAdmin {
		return nil, &workflow.PermissionError{}
	}
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	project := &model.Project{
		OrganizationID: orgID,
		Name:           input.Name,
		Code:           input.Code,
	}
	if err := s.repo.Create(ctx, project); err != nil {
		return nil, err
	}
	return project, nil
}

func (s *ProjectService) GetProject(ctx context.Context, orgID, id uuid.UUID) (*model.Project, error) {
	return s.repo.FindByID(ctx, orgID, id)
}

func (s *ProjectService) ListProjects(ctx context.Context, orgID uuid.UUID) ([]*model.Project, error) {
	return s.repo.FindByOrg(ctx, orgID)
}

func (s *ProjectService) UpdateProject(ctx context.Context, orgID uuid.UUID, actor workflow.Actor, id uuid.UUID, input ProjectInput) (*model.Project, error) {
	if actor.Role != model.RoleSuperAdmin {
		return nil, &workflow.PermissionError{}
	}
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	project, err := s.repo.FindByID(ctx, orgID, id)
	if err != nil {
		return nil, err
	}

	project.Name = input.Name
	project.Code = input.Code
	if err := s.repo.Update(ctx, project); err != nil {
		return nil, err
	}
	return project, nil
}

func (s *ProjectService) DeleteProject(ctx context.Context, orgID uuid.UUID, actor workflow.Actor, id uuid.UUID) error {
	if actor.Role != model.RoleSuperAdmin {
		return &workflow.PermissionError{}
	}
	return s.repo.Delete(ctx, orgID, id)
}
