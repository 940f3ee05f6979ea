// internal/repository/catalog_item.go
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

type CatalogItemRepositoryIface interface {
	Create(ctx context.Context, item *model.CatalogItem) error
	FindByID(ctx context.Context, orgID, id uuid.UUID) (*model.CatalogItem, error)
	FindByOrg(ctx context.Context, orgID uuid.UUID, offset, limit int) ([]*model.CatalogItem, int64, error)
	Update(ctx context.Context, item *model.CatalogItem) error
	Delete(ctx context.Context, orgID, id uuid.UUID) error
}

type CatalogItemRepository struct {
	db *gorm.DB
}

func NewCatalogItemRepository(db *gorm.DB) *CatalogItemRepository {
	return &CatalogItemRepository{db: db}
}

func (r *CatalogItemRepository) Create(ctx context.Context, item *model.CatalogItem) error {
	if item.OrganizationID == uuid.Nil {
		return domain.ErrNoOrgContext
	}
	if err := r.db.WithContext(ctx).Create(item).Error; err != nil {
		return fmt.Errorf("creating catalog item: %w", err)
	}
	return nil
}

func (r *CatalogItemRepository) FindByID(ctx context.Context, orgID, id uuid.UUID) (*model.CatalogItem, error) {
	var item model.CatalogItem
	result := r.db.WithContext(ctx).Where("id = ? AND organization_id = ?", id, orgID).First(&item)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domain.ErrItemNotFound
		}
		return nil, fmt.Errorf("finding catalog item: %w", result.Error)
	}
	return &item, nil
}

func (r *CatalogItemRepository) FindByOrg(ctx context.Context, orgID uuid.UUID, offset, limit int) ([]*model.CatalogItem, int64, error) {
	var items []*model.CatalogItem
	var count int64

	query := r.db.WithContext(ctx).Model(&model.CatalogItem{}).Where("organization_id = ?", orgID)

	if err := query.Count(&count).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count catalog items: %w", err)
	}

	result := query.Order("name ASC").Offset(offset).Limit(limit).Find(&items)
	if result.Error != nil {
		return nil, 0, fmt.Errorf("failed to find catalog items: %w", result.Error)
	}

	return items, count, nil
}

func (r *CatalogItemRepository) Update(ctx context.Context, item *model.CatalogItem) error {
	result := r.db.WithContext(ctx).Model(&model.CatalogItem{}).
		Where("id = ? AND organization_id = ?", item.ID, item.OrganizationID).
		Updates(map[string]interface{}{
			"name":             item.Name,
			"sku":              item.SKU,
			"unit":             item.Unit,
			"unit_price_cents": item.UnitPriceCents,
			"active":           item.Active,
		})
	if result.Error != nil {
		return fmt.Errorf("updating catalog item: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrItemNotFound
	}
	return nil
}

func (r *CatalogItemRepository) Delete(ctx context.Context, orgID, id uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND organization_id = ?", id, orgID).
		Delete(&model.CatalogItem{})
	if result.Error != nil {
		return fmt.Errorf("deleting catalog item: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrItemNotFound
	}
	return nil
}
