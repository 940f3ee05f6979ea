// internal/service/catalog_item.go
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

type CatalogItemService struct {
	repo     repository.CatalogItemRepositoryIface
	validate *validator.Validate
}

func NewCatalogItemService(repo repository.CatalogItemRepositoryIface) *CatalogItemService {
	return &CatalogItemService{repo: repo, validate: validator.New()}
}

type CatalogItemInput struct {
	Name           string `json:"name" validate:"required"`
	SKU            string `json:"sku"`
	Unit           string `json:"unit"`
	UnitPriceCents int64  `json:"unit_price_cents" validate:"gte=0"`
}

func (s *CatalogItemService) CreateItem(ctx context.Context, orgID uuid.UUID, actor workflow.Actor, input CatalogItemInput) (*model.CatalogItem, error) {
	if actor.Role != model.RoleSuperAdmin && actor.Role != model.RoleStoreManager {
		return nil, &workflow.PermissionError{}
	}
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	unit := input.Unit
	if unit == "" {
		unit = "each"
	}

	item := &model.CatalogItem{
		OrganizationID: orgID,
		Name:           input.Name,
		SKU:            input.SKU,
		Unit:           unit,
		UnitPriceCents: input.UnitPriceCents,
	}
	if err := s.repo.Create(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *CatalogItemService) GetItem(ctx context.Context, orgID, id uuid.UUID) (*model.CatalogItem, error) {
	return s.repo.FindByID(ctx, orgID, id)
}

func (s *CatalogItemService) ListItems(ctx context.Context, orgID uuid.UUID, offset, limit int) ([]*model.CatalogItem, int64, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	return s.repo.FindByOrg(ctx, orgID, offset, limit)
}

func (s *CatalogItemService) UpdateItem(ctx context.Context, orgID uuid.UUID, actor workflow.Actor, id uuid.UUID, input CatalogItemInput) (*model.CatalogItem, error) {
	if actor.Role != model.RoleSuperAdmin && actor.Role != model.RoleStoreManager {
		return nil, &workflow.PermissionError{}
	}
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	item, err := s.repo.FindByID(ctx, orgID, id)
	if err != nil {
		return nil, err
	}

	item.Name = input.Name
	item.SKU = input.SKU
	if input.Unit != "" {
		item.Unit = input.Unit
	}
	item.UnitPriceCents = input.UnitPriceCents
	if err := s.repo.Update(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *CatalogItemService) DeleteItem(ctx context.Context, orgID uuid.UUID, actor workflow.Actor, id uuid.UUID) error {
	if actor.Role != model.RoleSuperAdmin && actor.Role != model.RoleStoreManager {
		return &workflow.PermissionError{}
	}
	return s.repo.Delete(ctx, orgID, id)
}
