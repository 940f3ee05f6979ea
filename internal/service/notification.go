// internal/service/notification.go
package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/procurehq/reqflow/internal/model"
	"github.com/procurehq/reqflow/internal/repository"
)

type NotificationService struct {
	repo repository.NotificationRepositoryIface
}

func NewNotificationService(repo repository.NotificationRepositoryIface) *NotificationService {
	return &NotificationService{repo: repo}
}

func (s *NotificationService) List(ctx context.Context, orgID, userID uuid.UUID, unreadOnly bool, offset, limit int) ([]*model.Notification, int64, error) {
	if limit <= 0 || limit > 100 {
		limit = 25
	}
	return s.repo.FindByUser(ctx, orgID, userID, unreadOnly, offset, limit)
}

func (s *NotificationService) MarkRead(ctx context.Context, orgID, userID, id uuid.UUID) error {
	return s.repo.MarkRead(ctx, orgID, userID, id)
}
