// internal/service/organization.go
package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/procurehq/reqflow/internal/config"
	"github.com/procurehq/reqflow/internal/domain"
	"github.com/procurehq/reqflow/internal/email"
	"github.com/procurehq/reqflow/internal/email/mailer"
	"github.com/procurehq/reqflow/internal/model"
	"github.com/procurehq/reqflow/internal/repository"
	"github.com/procurehq/reqflow/internal/workflow"
)

type OrganizationService struct {
	repo        repository.OrganizationRepositoryIface
	userRepo    repository.UserRepositoryIface
	session     *SessionService
	emailSender email.Sender
	config      *config.Config
	validate    *validator.Validate
}

func NewOrganizationService(
	repo repository.OrganizationRepositoryIface,
	userRepo repository.UserRepositoryIface,
	session *SessionService,
	emailSender email.Sender,
	config *config.Config,
) *OrganizationService {
	return &OrganizationService{
		repo:        repo,
		userRepo:    userRepo,
		session:     session,
		emailSender: emailSender,
		config:      config,
		validate:    validator.New(),
	}
}

type CreateOrgInput struct {
	Name    string `json:"name" validate:"required"`
	OrgType string `json:"org_type" validate:"omitempty,oneof=enterprise team personal"`
}

// CreateOrganization creates an organization and makes the creator its
// first super_admin.
func (s *OrganizationService) CreateOrganization(ctx context.Context, creatorID uuid.UUID, input CreateOrgInput) (*model.Organization, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	orgType := model.OrganizationType(input.OrgType)
	if input.OrgType == "" {
		orgType = model.OrgTypeTeam
	}

	org := &model.Organization{
		Name:        input.Name,
		OrgType:     orgType,
		CreatedByID: creatorID,
	}

	if err := s.repo.Create(ctx, org); err != nil {
		return nil, err
	}

	member := &model.OrganizationMember{
		OrganizationID: org.ID,
		UserID:         creatorID,
		Role:           model.RoleSuperAdmin,
	}
	if err := s.repo.CreateMember(ctx, member); err != nil {
		return nil, fmt.Errorf("creating founding member: %w", err)
	}

	return org, nil
}

func (s *OrganizationService) GetOrganization(ctx context.Context, id uuid.UUID) (*model.Organization, error) {
	return s.repo.FindByID(ctx, id)
}

type InviteMemberInput struct {
	Email string `json:"email" validate:"required,email"`
	Role  string `json:"role" validate:"required"`
}

// InviteMember adds an existing user to the organization with the given
// role and notifies them by email. Only super_admins manage membership.
func (s *OrganizationService) InviteMember(ctx context.Context, orgID uuid.UUID, actor workflow.Actor, input InviteMemberInput) (*model.OrganizationMember, error) {
	if actor.Role != model.RoleSuperAdmin {
		return nil, &workflow.PermissionError{}
	}

	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	role, err := model.ParseRole(input.Role)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	org, err := s.repo.FindByID(ctx, orgID)
	if err != nil {
		return nil, err
	}

	user, err := s.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}

	member := &model.OrganizationMember{
		OrganizationID: orgID,
		UserID:         user.ID,
		Role:           role,
	}
	if err := s.repo.CreateMember(ctx, member); err != nil {
		return nil, err
	}

	if s.emailSender != nil {
		inviter, err := s.userRepo.FindByID(ctx, actor.ID)
		inviterName := "A teammate"
		if err == nil {
			inviterName = inviter.FirstName
		}
		data := mailer.InvitationTemplateData{
			FirstName:        user.FirstName,
			OrganizationName: org.Name,
			InviterName:      inviterName,
			Role:             string(role),
			AcceptLink:       fmt.Sprintf("%s/orgs/%s", s.config.BaseURL, orgID),
		}
		if err := mailer.SendOrgInvitationEmail(s.emailSender, user.Email, data); err != nil {
			// The membership exists either way; the invitee just misses the email.
			return member, nil
		}
	}

	return member, nil
}

func (s *OrganizationService) ListMembers(ctx context.Context, orgID uuid.UUID) ([]*model.OrganizationMember, error) {
	return s.repo.FindMembers(ctx, orgID)
}

// UpdateMemberRole changes a member's role and drops their cached
// membership so the change applies on their next request.
func (s *OrganizationService) UpdateMemberRole(ctx context.Context, orgID uuid.UUID, actor workflow.Actor, userID uuid.UUID, roleStr string) error {
	if actor.Role != model.RoleSuperAdmin {
		return &workflow.PermissionError{}
	}

	role, err := model.ParseRole(roleStr)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	if err := s.repo.UpdateMemberRole(ctx, orgID, userID, role); err != nil {
		return err
	}

	s.session.InvalidateMembership(ctx, orgID, userID)
	return nil
}

// RemoveMember removes a user from the organization.
func (s *OrganizationService) RemoveMember(ctx context.Context, orgID uuid.UUID, actor workflow.Actor, userID uuid.UUID) error {
	if actor.Role != model.RoleSuperAdmin {
		return &workflow.PermissionError{}
	}

	if actor.ID == userID {
		return fmt.Errorf("%w: cannot remove yourself", domain.ErrInvalidInput)
	}

	if err := s.repo.DeleteMember(ctx, orgID, userID); err != nil {
		if errors.Is(err, domain.ErrMemberNotFound) {
			return err
		}
		return fmt.Errorf("removing member: %w", err)
	}

	s.session.InvalidateMembership(ctx, orgID, userID)
	return nil
}
