// internal/repository/expense_account.go
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

type ExpenseAccountRepositoryIface interface {
	Create(ctx context.Context, account *model.ExpenseAccount) error
	FindByID(ctx context.Context, orgID, id uuid.UUID) (*model.ExpenseAccount, error)
	FindByOrg(ctx context.Context, orgID uuid.UUID) ([]*model.ExpenseAccount, error)
	Update(ctx context.Context, account *model.ExpenseAccount) error
	Delete(ctx context.Context, orgID, id uuid.UUID) error
}

type ExpenseAccountRepository struct {
	db *gorm.DB
}

func NewExpenseAccountRepository(db *gorm.DB) *ExpenseAccountRepository {
	return &ExpenseAccountRepository{db: db}
}

func (r *ExpenseAccountRepository) Create(ctx context.Context, account *model.ExpenseAccount) error {
	if account.OrganizationID == uuid.Nil {
		return domain.ErrNoOrgContext
	}
	if err := r.db.WithContext(ctx).Create(account).Error; err != nil {
		return fmt.Errorf("creating expense account: %w", err)
	}
	return nil
}

func (r *ExpenseAccountRepository) FindByID(ctx context.Context, orgID, id uuid.UUID) (*model.ExpenseAccount, error) {
	var account model.ExpenseAccount
	result := r.db.WithContext(ctx).Where("id = ? AND organization_id = ?", id, orgID).First(&account)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domain.ErrAccountNotFound
		}
		return nil, fmt.Errorf("finding expense account: %w", result.Error)
	}
	return &account, nil
}

func (r *ExpenseAccountRepository) FindByOrg(ctx context.Context, orgID uuid.UUID) ([]*model.ExpenseAccount, error) {
	var accounts []*model.ExpenseAccount
	result := r.db.WithContext(ctx).
		Where("organization_id = ?", orgID).
		Order("name ASC").
		Find(&accounts)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to find expense accounts: %w", result.Error)
	}
	return accounts, nil
}

func (r *ExpenseAccountRepository) Update(ctx context.Context, account *model.ExpenseAccount) error {
	result := r.db.WithContext(ctx).Model(&model.ExpenseAccount{}).
		Where("id = ? AND organization_id = ?", account.ID, account.OrganizationID).
		Updates(map[string]interface{}{
			"name":           account.Name,
			"account_number": account.AccountNumber,
			"active":         account.Active,
		})
	if result.Error != nil {
		return fmt.Errorf("updating expense account: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrAccountNotFound
	}
	return nil
}

func (r *ExpenseAccountRepository) Delete(ctx context.Context, orgID, id uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND organization_id = ?", id, orgID).
		Delete(&model.ExpenseAccount{})
	if result.Error != nil {
		return fmt.Errorf("deleting expense account: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrAccountNotFound
	}
	return nil
}
