// internal/repository/organization.go
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

type OrganizationRepositoryIface interface {
	Create(ctx context.Context, org *model.Organization) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Organization, error)
	FindByUser(ctx context.Context, userID uuid.UUID) ([]model.Organization, error)
	Update(ctx context.Context, org *model.Organization) error
	Delete(ctx context.Context, id uuid.UUID) error

	CreateMember(ctx context.Context, member *model.OrganizationMember) error
	FindMember(ctx context.Context, orgID, userID uuid.UUID) (*model.OrganizationMember, error)
	FindMembers(ctx context.Context, orgID uuid.UUID) ([]*model.OrganizationMember, error)
	UpdateMemberRole(ctx context.Context, orgID, userID uuid.UUID, role model.Role) error
	DeleteMember(ctx context.Context, orgID, userID uuid.UUID) error
}

type OrganizationRepository struct {
	db *gorm.DB
}

func NewOrganizationRepository(db *gorm.DB) *OrganizationRepository {
	return &OrganizationRepository{db: db}
}

func (r *OrganizationRepository) Create(ctx context.Context, org *model.Organization) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Check if user already has a personal organization if this is a personal org
		if org.OrgType == model.OrgTypePersonal {
			var count int64
			if err := tx.Model(&model.Organization{}).
				Where("created_by_id = ? AND org_type = ?", org.CreatedByID, model.OrgTypePersonal).
				Count(&count).Error; err != nil {
				return fmt.Errorf("checking existing personal org: %w", err)
			}
			if count > 0 {
				return domain.ErrDuplicatePersonalOrg
			}
		}

		if err := tx.Create(org).Error; err != nil {
			return fmt.Errorf("creating organization: %w", err)
		}

		return nil
	})

	if err != nil {
		if errors.Is(err, domain.ErrDuplicatePersonalOrg) {
			return err
		}
		return fmt.Errorf("transaction failed: %w", err)
	}

	return nil
}

func (r *OrganizationRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Organization, error) {
	var org model.Organization
	if err := r.db.WithContext(ctx).First(&org, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrOrganizationNotFound
		}
		return nil, fmt.Errorf("finding organization: %w", err)
	}
	return &org, nil
}

func (r *OrganizationRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]model.Organization, error) {
	var orgs []model.Organization
	if err := r.db.WithContext(ctx).
		Joins("JOIN organization_members ON organizations.id = organization_members.organization_id").
		Where("organization_members.user_id = ?", userID).
		Find(&orgs).Error; err != nil {
		return nil, fmt.Errorf("finding user organizations: %w", err)
	}
	return orgs, nil
}

func (r *OrganizationRepository) Update(ctx context.Context, org *model.Organization) error {
	if err := r.db.WithContext(ctx).Save(org).Error; err != nil {
		return fmt.Errorf("updating organization: %w", err)
	}
	return nil
}

func (r *OrganizationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Delete memberships first
		if err := tx.Where("organization_id = ?", id).Delete(&model.OrganizationMember{}).Error; err != nil {
			return fmt.Errorf("deleting organization members: %w", err)
		}

		if err := tx.Delete(&model.Organization{}, "id = ?", id).Error; err != nil {
			return fmt.Errorf("deleting organization: %w", err)
		}

		return nil
	})

	if err != nil {
		return fmt.Errorf("transaction failed: %w", err)
	}

	return nil
}

// CreateMember adds a user to an organization. The membership must reference
// an existing organization; an orphaned membership is rejected at write time.
func (r *OrganizationRepository) CreateMember(ctx context.Context, member *model.OrganizationMember) error {
	if member.OrganizationID == uuid.Nil {
		return domain.ErrNoOrgContext
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&model.Organization{}).
			Where("id = ?", member.OrganizationID).
			Count(&count).Error; err != nil {
			return fmt.Errorf("checking organization: %w", err)
		}
		if count == 0 {
			return domain.ErrOrganizationNotFound
		}

		if err := tx.Model(&model.OrganizationMember{}).
			Where("organization_id = ? AND user_id = ?", member.OrganizationID, member.UserID).
			Count(&count).Error; err != nil {
			return fmt.Errorf("checking existing membership: %w", err)
		}
		if count > 0 {
			return domain.ErrMemberAlreadyExists
		}

		if err := tx.Create(member).Error; err != nil {
			return fmt.Errorf("creating membership: %w", err)
		}
		return nil
	})

	if err != nil {
		if errors.Is(err, domain.ErrOrganizationNotFound) || errors.Is(err, domain.ErrMemberAlreadyExists) {
			return err
		}
		return fmt.Errorf("transaction failed: %w", err)
	}

	return nil
}

func (r *OrganizationRepository) FindMember(ctx context.Context, orgID, userID uuid.UUID) (*model.OrganizationMember, error) {
	var member model.OrganizationMember
	result := r.db.WithContext(ctx).
		Where("organization_id = ? AND user_id = ?", orgID, userID).
		First(&member)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domain.ErrMemberNotFound
		}
		return nil, fmt.Errorf("finding membership: %w", result.Error)
	}
	return &member, nil
}

func (r *OrganizationRepository) FindMembers(ctx context.Context, orgID uuid.UUID) ([]*model.OrganizationMember, error) {
	var members []*model.OrganizationMember
	result := r.db.WithContext(ctx).
		Preload("User").
		Where("organization_id = ?", orgID).
		Find(&members)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to find organization members: %w", result.Error)
	}
	return members, nil
}

func (r *OrganizationRepository) UpdateMemberRole(ctx context.Context, orgID, userID uuid.UUID, role model.Role) error {
	result := r.db.WithContext(ctx).Model(&model.OrganizationMember{}).
		Where("organization_id = ? AND user_id = ?", orgID, userID).
		Update("role", role)
	if result.Error != nil {
		return fmt.Errorf("updating member role: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrMemberNotFound
	}
	return nil
}

func (r *OrganizationRepository) DeleteMember(ctx context.Context, orgID, userID uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Where("organization_id = ? AND user_id = ?", orgID, userID).
		Delete(&model.OrganizationMember{})
	if result.Error != nil {
		return fmt.Errorf("deleting membership: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrMemberNotFound
	}
	return nil
}
