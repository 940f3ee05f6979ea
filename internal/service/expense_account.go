// internal/service/expense_account.go
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

type ExpenseAccountService struct {
	repo     repository.ExpenseAccountRepositoryIface
	validate *validator.Validate
}

func NewExpenseAccountService(repo repository.ExpenseAccountRepositoryIface) *ExpenseAccountService {
	return &ExpenseAccountService{repo: repo, validate: validator.New()}
}

type ExpenseAccountInput struct {
	Name          string `json:"name" validate:"required"`
	AccountNumber string `json:"account_number"`
}

func (s *ExpenseAccountService) CreateAccount(ctx context.Context, orgID uuid.UUID, actor workflow.Actor, input ExpenseAccountInput) (*model.ExpenseAccount, error) {
	if actor.Role != model.RoleSuperAdmin {
		return nil, &workflow.PermissionError{}
	}
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	account := &model.ExpenseAccount{
		OrganizationID: orgID,
		Name:           input.Name,
		AccountNumber:  input.AccountNumber,
	}
	if err := s.repo.Create(ctx, account); err != nil {
		return nil, err
	}
	return account, nil
}

func (s *ExpenseAccountService) GetAccount(ctx context.Context, orgID, id uuid.UUID) (*model.ExpenseAccount, error) {
	return s.repo.FindByID(ctx, orgID, id)
}

func (s *ExpenseAccountService) ListAccounts(ctx context.Context, orgID uuid.UUID) ([]*model.ExpenseAccount, error) {
	return s.repo.FindByOrg(ctx, orgID)
}

func (s *ExpenseAccountService) UpdateAccount(ctx context.Context, orgID uuid.UUID, actor workflow.Actor, id uuid.UUID, input ExpenseAccountInput) (*model.ExpenseAccount, error) {
	if actor.Role != model.RoleSuperAdmin {
		return nil, &workflow.PermissionError{}
	}
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	account, err := s.repo.FindByID(ctx, orgID, id)
	if err != nil {
		return nil, err
	}

	account.Name = input.Name
	account.AccountNumber = input.AccountNumber
	if err := s.repo.Update(ctx, account); err != nil {
		return nil, err
	}
	return account, nil
}

func (s *ExpenseAccountService) DeleteAccount(ctx context.Context, orgID uuid.UUID, actor workflow.Actor, id uuid.UUID) error {
	if actor.Role != model.RoleSuperAdmin {
		return &workflow.PermissionError{}
	}
	return s.repo.Delete(ctx, orgID, id)
}
