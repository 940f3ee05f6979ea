package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/procurehq/reqflow/internal/auth"
	"github.com/procurehq/reqflow/internal/domain"
	"github.com/procurehq/reqflow/internal/mocks"
	"github.com/procurehq/reqflow/internal/model"
	"github.com/procurehq/reqflow/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newUserService(ctrl *gomock.Controller) (*service.UserService, *mocks.MockUserRepositoryIface) {
	userRepo := mocks.NewMockUserRepositoryIface(ctrl)
	orgRepo := mocks.NewMockOrganizationRepositoryIface(ctrl)
	cacheSvc := service.NewCacheService(service.CacheConfig{
		TTL:         time.Minute,
		CleanupFreq: time.Minute,
	})

	svc := service.NewUserService(
		userRepo,
		orgRepo,
		auth.NewPasswordHasher(),
		auth.NewTokenManager("test-secret", time.Hour),
		nil,
		cacheSvc,
		testConfig(),
	)
	return svc, userRepo
}

func TestSignupCommitsUserOrgAndMembershipTogether(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, userRepo := newUserService(ctrl)

	// All three signup rows go through a single repository call so they
	// commit or roll back as one unit.
	userRepo.EXPECT().
		CreateWithMembership(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, user *model.User, org *model.Organization, member *model.OrganizationMember) error {
			assert.Equal(t, "ada@example.com", user.Email)
			assert.Equal(t, model.UserStatusPending, user.Status)
			assert.NotEmpty(t, user.PasswordHash)
			assert.Equal(t, model.OrgTypePersonal, org.OrgType)
			assert.Equal(t, model.RoleSuperAdmin, member.Role)
			user.ID = uuid.New()
			org.ID = uuid.New()
			return nil
		})

	out, err := svc.Signup(context.Background(), service.SignupInput{
		Email:           "ada@example.com",
		FirstName:       "Ada",
		LastName:        "Lovelace",
		Password:        "correct-horse",
		ConfirmPassword: "correct-horse",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, out.Token)
	assert.Equal(t, "ada@example.com", out.User.Email)
}

func TestSignupDuplicateEmail(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, userRepo := newUserService(ctrl)

	userRepo.EXPECT().
		CreateWithMembership(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(domain.ErrEmailAlreadyExists)

	_, err := svc.Signup(context.Background(), service.SignupInput{
		Email:           "ada@example.com",
		FirstName:       "Ada",
		Password:        "correct-horse",
		ConfirmPassword: "correct-horse",
	})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}
