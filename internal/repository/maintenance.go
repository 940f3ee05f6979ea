// internal/repository/maintenance.go
package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/procurehq/reqflow/internal/model"
	"gorm.io/gorm"
)

// MaintenanceRepository backs the scheduled jobs. Unlike the request-path
// repositories it queries across organizations; it is never reachable
// from a request handler.
type MaintenanceRepository struct {
	db *gorm.DB
}

func NewMaintenanceRepository(db *gorm.DB) *MaintenanceRepository {
	return &MaintenanceRepository{db: db}
}

// FindAwaitingReview returns requisitions that have been sitting in
// pending or under_review since before the cutoff.
func (r *MaintenanceRepository) FindAwaitingReview(ctx context.Context, cutoff time.Time) ([]*model.Requisition, error) {
	var reqs []*model.Requisition
	result := r.db.WithContext(ctx).
		Where("status IN ?", []model.RequisitionStatus{model.StatusPending, model.StatusUnderReview}).
		Where("submitted_at < ?", cutoff).
		Order("submitted_at ASC").
		Find(&reqs)
	if result.Error != nil {
		return nil, fmt.Errorf("finding requisitions awaiting review: %w", result.Error)
	}
	return reqs, nil
}

// DeleteStaleDrafts removes drafts untouched since before the cutoff,
// along with their line items. Returns the number of drafts removed.
func (r *MaintenanceRepository) DeleteStaleDrafts(ctx context.Context, cutoff time.Time) (int64, error) {
	var deleted int64
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		sub := tx.Model(&model.Requisition{}).
			Select("id").
			Where("status = ? AND updated_at < ?", model.StatusDraft, cutoff)

		if err := tx.Where("requisition_id IN (?)", sub).Delete(&model.RequisitionItem{}).Error; err != nil {
			return fmt.Errorf("deleting stale draft items: %w", err)
		}

		result := tx.Where("status = ? AND updated_at < ?", model.StatusDraft, cutoff).
			Delete(&model.Requisition{})
		if result.Error != nil {
			return fmt.Errorf("deleting stale drafts: %w", result.Error)
		}
		deleted = result.RowsAffected
		return nil
	})
	return deleted, err
}
