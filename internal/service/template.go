// internal/service/template.go
package service

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/procurehq/reqflow/internal/domain"
	"github.com/procurehq/reqflow/internal/model"
	"github.com/procurehq/reqflow/internal/repository"
	"github.com/procurehq/reqflow/internal/workflow"
)

// TemplateService manages reusable requisition templates and
// instantiates drafts from them.
type TemplateService struct {
	repo       repository.TemplateRepositoryIface
	reqService *RequisitionService
	validate   *validator.Validate
}

func NewTemplateService(repo repository.TemplateRepositoryIface, reqService *RequisitionService) *TemplateService {
	return &TemplateService{
		repo:       repo,
		reqService: reqService,
		validate:   validator.New(),
	}
}

type TemplateInput struct {
	Name             string           `json:"name" validate:"required"`
	Title            string           `json:"title"`
	Description      string           `json:"description"`
	ProjectID        uuid.UUID        `json:"project_id"`
	ExpenseAccountID uuid.UUID        `json:"expense_account_id"`
	Items            []DraftItemInput `json:"items" validate:"dive"`
}

func (s *TemplateService) CreateTemplate(ctx context.Context, orgID uuid.UUID, actor workflow.Actor, input TemplateInput) (*model.RequisitionTemplate, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	items := make(model.TemplateItems, 0, len(input.Items))
	for _, in := range input.Items {
		items = append(items, model.TemplateItem{
			CatalogItemID:  in.CatalogItemID,
			Quantity:       in.Quantity,
			UnitPriceCents: in.UnitPriceCents,
		})
	}

	tmpl := &model.RequisitionTemplate{
		OrganizationID:   orgID,
		CreatedByID:      actor.ID,
		Name:             input.Name,
		Title:            input.Title,
		Description:      input.Description,
		ProjectID:        input.ProjectID,
		ExpenseAccountID: input.ExpenseAccountID,
		Items:            items,
	}

	if err := s.repo.Create(ctx, tmpl); err != nil {
		return nil, err
	}
	return tmpl, nil
}

func (s *TemplateService) GetTemplate(ctx context.Context, orgID, id uuid.UUID) (*model.RequisitionTemplate, error) {
	return s.repo.FindByID(ctx, orgID, id)
}

func (s *TemplateService) ListTemplates(ctx context.Context, orgID uuid.UUID) ([]*model.RequisitionTemplate, error) {
	return s.repo.FindByOrg(ctx, orgID)
}

func (s *TemplateService) DeleteTemplate(ctx context.Context, orgID uuid.UUID, actor workflow.Actor, id uuid.UUID) error {
	tmpl, err := s.repo.FindByID(ctx, orgID, id)
	if err != nil {
		return err
	}
	if tmpl.CreatedByID != actor.ID && actor.Role != model.RoleSuperAdmin {
		return &workflow.PermissionError{}
	}
	return s.repo.Delete(ctx, orgID, id)
}

// InstantiateDraft creates a new draft requisition from a template. The
// draft is owned by the actor and otherwise behaves like any hand-made
// draft.
func (s *TemplateService) InstantiateDraft(ctx context.Context, orgID uuid.UUID, actor workflow.Actor, templateID uuid.UUID, httpReq *http.Request) (*model.Requisition, error) {
	tmpl, err := s.repo.FindByID(ctx, orgID, templateID)
	if err != nil {
		return nil, err
	}

	title := tmpl.Title
	if title == "" {
		title = tmpl.Name
	}

	input := DraftInput{
		Title:            title,
		Description:      tmpl.Description,
		ProjectID:        tmpl.ProjectID,
		ExpenseAccountID: tmpl.ExpenseAccountID,
	}
	for _, item := range tmpl.Items {
		input.Items = append(input.Items, DraftItemInput{
			CatalogItemID:  item.CatalogItemID,
			Quantity:       item.Quantity,
			UnitPriceCents: item.UnitPriceCents,
		})
	}

	return s.reqService.CreateDraft(ctx, orgID, actor, input, httpReq)
}
