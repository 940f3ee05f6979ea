// internal/service/user.go
package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/procurehq/reqflow/internal/auth"
	"github.com/procurehq/reqflow/internal/config"
	"github.com/procurehq/reqflow/internal/domain"
	"github.com/procurehq/reqflow/internal/email"
	"github.com/procurehq/reqflow/internal/email/mailer"
	"github.com/procurehq/reqflow/internal/model"
	"github.com/procurehq/reqflow/internal/repository"
)

type UserService struct {
	repo           repository.UserRepositoryIface
	orgRepo        repository.OrganizationRepositoryIface
	passwordHasher *auth.PasswordHasher
	tokenManager   *auth.TokenManager
	emailSender    email.Sender
	cacheService   *CacheService
	config         *config.Config
	validate       *validator.Validate
}

func NewUserService(
	repo repository.UserRepositoryIface,
	orgRepo repository.OrganizationRepositoryIface,
	passwordHasher *auth.PasswordHasher,
	tokenManager *auth.TokenManager,
	emailSender email.Sender,
	cacheService *CacheService,
	config *config.Config,
) *UserService {
	return &UserService{
		repo:           repo,
		orgRepo:        orgRepo,
		passwordHasher: passwordHasher,
		tokenManager:   tokenManager,
		emailSender:    emailSender,
		cacheService:   cacheService,
		config:         config,
		validate:       validator.New(),
	}
}

type SignupInput struct {
	Email           string `json:"email" validate:"required,email"`
	FirstName       string `json:"first_name" validate:"required"`
	LastName        string `json:"last_name"`
	Password        string `json:"password" validate:"required,min=8"`
	ConfirmPassword string `json:"confirm_password" validate:"required,min=8,eqfield=Password"`
}

type SignupOutput struct {
	User  *model.User `json:"user"`
	Token string      `json:"token"`
}

// Signup handles the complete user registration process. Every new user
// gets a personal organization so they can start drafting requisitions
// before joining a team.
func (s *UserService) Signup(ctx context.Context, input SignupInput) (*SignupOutput, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	hashedPassword, err := s.passwordHasher.Hash(input.Password)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	user := &model.User{
		Email:        input.Email,
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		PasswordHash: hashedPassword,
		Status:       model.UserStatusPending,
	}

	org := &model.Organization{
		Name:    "Personal",
		OrgType: model.OrgTypePersonal,
	}
	member := &model.OrganizationMember{
		Role: model.RoleSuperAdmin,
	}

	// User, organization and membership commit together. The duplicate
	// email check lives inside the same transaction so a racing signup
	// cannot slip between check and insert.
	if err := s.repo.CreateWithMembership(ctx, user, org, member); err != nil {
		return nil, err
	}

	// Stash the verification code; the link expires with the cache entry.
	verificationCode, err := generateVerificationCode()
	if err != nil {
		return nil, err
	}
	if err := s.cacheService.Set(ctx, verificationKey(user.ID), verificationCode); err != nil {
		return nil, fmt.Errorf("storing verification code: %w", err)
	}

	verificationLink := fmt.Sprintf(
		"%s/api/auth/signup/verify?code=%s&user=%s",
		s.config.BaseURL,
		verificationCode,
		user.ID.String(),
	)

	// The account is committed at this point, so a delivery failure is
	// logged rather than surfaced as a signup failure.
	if s.emailSender != nil {
		if err := mailer.SendVerificationEmail(s.emailSender, user.Email, user.FirstName, verificationLink); err != nil {
			slog.WarnContext(ctx, "Failed to send verification email", "user_id", user.ID, "error", err)
		}
	}

	token, err := s.tokenManager.Generate(user.ID.String(), user.Email)
	if err != nil {
		return nil, fmt.Errorf("generating token: %w", err)
	}

	return &SignupOutput{
		User:  user,
		Token: token,
	}, nil
}

type VerifyInput struct {
	UserID string `json:"user_id"`
	Code   string `json:"code"`
}

// VerifyEmail handles email verification
func (s *UserService) VerifyEmail(ctx context.Context, input VerifyInput) error {
	userID, err := uuid.Parse(input.UserID)
	if err != nil {
		return fmt.Errorf("%w: invalid user ID", domain.ErrInvalidInput)
	}

	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return err
	}

	if user.Status == model.UserStatusActive {
		return domain.ErrAlreadyVerified
	}

	var storedCode string
	if err := s.cacheService.Get(ctx, verificationKey(userID), &storedCode); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrInvalidCode
		}
		return fmt.Errorf("looking up verification code: %w", err)
	}

	if storedCode != input.Code {
		return domain.ErrInvalidCode
	}

	user.Status = model.UserStatusActive
	if err := s.repo.Update(ctx, user); err != nil {
		return fmt.Errorf("updating user: %w", err)
	}

	_ = s.cacheService.Delete(ctx, verificationKey(userID))

	return nil
}

type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginOutput struct {
	User  *model.User `json:"user"`
	Token string      `json:"token"`
}

// Authenticate verifies user credentials and returns a token
func (s *UserService) Authenticate(ctx context.Context, input LoginInput) (*LoginOutput, error) {
	user, err := s.repo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	verified, err := s.passwordHasher.Verify(input.Password, user.PasswordHash)
	if err != nil || !verified {
		return nil, domain.ErrInvalidCredentials
	}

	if user.Status == model.UserStatusLocked || user.Status == model.UserStatusSuspended {
		return nil, domain.ErrUnauthorized
	}

	token, err := s.tokenManager.Generate(user.ID.String(), user.Email)
	if err != nil {
		return nil, fmt.Errorf("generating token: %w", err)
	}

	return &LoginOutput{
		User:  user,
		Token: token,
	}, nil
}

// GetUser fetches a user by id
func (s *UserService) GetUser(ctx context.Context, id uuid.UUID) (*model.User, error) {
	return s.repo.FindByID(ctx, id)
}

// ListOrganizations returns every organization the user belongs to.
func (s *UserService) ListOrganizations(ctx context.Context, userID uuid.UUID) ([]model.Organization, error) {
	return s.orgRepo.FindByUser(ctx, userID)
}

func verificationKey(userID uuid.UUID) string {
	return "verify:" + userID.String()
}

func generateVerificationCode() (string, error) {
	code := make([]byte, 16)
	if _, err := rand.Read(code); err != nil {
		return "", fmt.Errorf("generating verification code: %w", err)
	}
	return hex.EncodeToString(code), nil
}
