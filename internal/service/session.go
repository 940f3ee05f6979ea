// internal/service/session.go
package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/procurehq/reqflow/internal/model"
	"github.com/procurehq/reqflow/internal/repository"
	"github.com/procurehq/reqflow/internal/workflow"
)

// SessionService resolves the caller's actor for a request. The actor's
// role always comes from the membership row of the requested
// organization, never from the token or the request body.
type SessionService struct {
	orgRepo      repository.OrganizationRepositoryIface
	cacheService *CacheService
}

func NewSessionService(orgRepo repository.OrganizationRepositoryIface, cacheService *CacheService) *SessionService {
	return &SessionService{
		orgRepo:      orgRepo,
		cacheService: cacheService,
	}
}

func membershipKey(orgID, userID uuid.UUID) string {
	return fmt.Sprintf("membership:%s:%s", orgID, userID)
}

// ResolveActor returns the workflow actor for userID inside orgID. A user
// who is not a member of the organization gets domain.ErrMemberNotFound;
// callers translate that to a generic access denial so the response does
// not reveal whether the organization exists.
func (s *SessionService) ResolveActor(ctx context.Context, orgID, userID uuid.UUID) (workflow.Actor, error) {
	var roleStr string
	err := s.cacheService.GetOrSet(ctx, membershipKey(orgID, userID), &roleStr, func() (interface{}, error) {
		member, err := s.orgRepo.FindMember(ctx, orgID, userID)
		if err != nil {
			return nil, err
		}
		return string(member.Role), nil
	})
	if err != nil {
		return workflow.Actor{}, fmt.Errorf("resolving membership: %w", err)
	}

	role, err := model.ParseRole(roleStr)
	if err != nil {
		return workflow.Actor{}, fmt.Errorf("resolving membership: %w", err)
	}

	return workflow.Actor{ID: userID, Role: role}, nil
}

// InvalidateMembership drops the cached role after a role change or
// member removal so the next request sees the new permissions.
func (s *SessionService) InvalidateMembership(ctx context.Context, orgID, userID uuid.UUID) {
	_ = s.cacheService.Delete(ctx, membershipKey(orgID, userID))
}
