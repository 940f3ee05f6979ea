// internal/repository/notification.go
package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/procurehq/reqflow/internal/domain"
	"github.com/procurehq/reqflow/internal/model"
	"gorm.io/gorm"
)

type NotificationRepositoryIface interface {
	Create(ctx context.Context, n *model.Notification) error
	FindByUser(ctx context.Context, orgID, userID uuid.UUID, unreadOnly bool, offset, limit int) ([]*model.Notification, int64, error)
	MarkRead(ctx context.Context, orgID, userID, id uuid.UUID) error
}

type NotificationRepository struct {
	db *gorm.DB
}

func NewNotificationRepository(db *gorm.DB) *NotificationRepository {
	return &NotificationRepository{db: db}
}

func (r *NotificationRepository) Create(ctx context.Context, n *model.Notification) error {
	if n.OrganizationID == uuid.Nil {
		return domain.ErrNoOrgContext
	}
	if err := r.db.WithContext(ctx).Create(n).Error; err != nil {
		return fmt.Errorf("creating notification: %w", err)
	}
	return nil
}

func (r *NotificationRepository) FindByUser(ctx context.Context, orgID, userID uuid.UUID, unreadOnly bool, offset, limit int) ([]*model.Notification, int64, error) {
	var notifications []*model.Notification
	var count int64

	query := r.db.WithContext(ctx).Model(&model.Notification{}).
		Where("organization_id = ? AND user_id = ?", orgID, userID)
	if unreadOnly {
		query = query.Where("read_at IS NULL")
	}

	if err := query.Count(&count).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count notifications: %w", err)
	}

	result := query.Order("created_at DESC").Offset(offset).Limit(limit).Find(&notifications)
	if result.Error != nil {
		return nil, 0, fmt.Errorf("failed to find notifications: %w", result.Error)
	}

	return notifications, count, nil
}

func (r *NotificationRepository) MarkRead(ctx context.Context, orgID, userID, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Model(&model.Notification{}).
		Where("id = ? AND organization_id = ? AND user_id = ? AND read_at IS NULL", id, orgID, userID).
		Update("read_at", time.Now().UTC())
	if result.Error != nil {
		return fmt.Errorf("marking notification read: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
