package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/procurehq/reqflow/internal/domain"
	"github.com/procurehq/reqflow/internal/model"
	"github.com/procurehq/reqflow/internal/workflow"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	gdb, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 db,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		Logger:                 logger.Default.LogMode(logger.Silent),
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)

	return gdb, mock
}

func TestRequisitionRepository_ApplyTransition(t *testing.T) {
	orgID := uuid.New()
	reqID := uuid.New()
	approverID := uuid.New()
	now := time.Now().UTC()

	t.Run("Success", func(t *testing.T) {
		gdb, mock := newMockDB(t)
		repo := NewRequisitionRepository(gdb)

		changes := &workflow.Changes{
			Event:      workflow.EventApprove,
			FromStatus: model.StatusReviewed,
			Status:     model.StatusApproved,
			ApprovedAt: &now,
			ApproverID: &approverID,
		}

		// The update must carry the expected-status predicate so a row
		// that moved on is never overwritten.
		mock.ExpectExec(`UPDATE "requisitions" SET .+ WHERE id = \$\d+ AND organization_id = \$\d+ AND status = \$\d+`).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.ApplyTransition(context.Background(), orgID, reqID, changes)
		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("StaleStatus", func(t *testing.T) {
		gdb, mock := newMockDB(t)
		repo := NewRequisitionRepository(gdb)

		changes := &workflow.Changes{
			Event:      workflow.EventStartReview,
			FromStatus: model.StatusPending,
			Status:     model.StatusUnderReview,
			ReviewerID: &approverID,
		}

		// Zero matched rows means a concurrent transition already moved
		// the requisition out of pending.
		mock.ExpectExec(`UPDATE "requisitions" SET .+ WHERE id = \$\d+ AND organization_id = \$\d+ AND status = \$\d+`).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.ApplyTransition(context.Background(), orgID, reqID, changes)
		assert.ErrorIs(t, err, domain.ErrStaleStatus)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("WrongOrgMatchesNothing", func(t *testing.T) {
		gdb, mock := newMockDB(t)
		repo := NewRequisitionRepository(gdb)

		changes := &workflow.Changes{
			Event:      workflow.EventApprove,
			FromStatus: model.StatusReviewed,
			Status:     model.StatusApproved,
			ApprovedAt: &now,
			ApproverID: &approverID,
		}

		mock.ExpectExec(`UPDATE "requisitions"`).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.ApplyTransition(context.Background(), uuid.New(), reqID, changes)
		assert.ErrorIs(t, err, domain.ErrStaleStatus)
	})
}

func TestRequisitionRepository_Create_RequiresOrg(t *testing.T) {
	gdb, _ := newMockDB(t)
	repo := NewRequisitionRepository(gdb)

	err := repo.Create(context.Background(), &model.Requisition{
		Title:         "Workshop restock",
		SubmittedByID: uuid.New(),
	})
	assert.ErrorIs(t, err, domain.ErrNoOrgContext)
}

func TestRequisitionRepository_Delete_OnlyDrafts(t *testing.T) {
	gdb, mock := newMockDB(t)
	repo := NewRequisitionRepository(gdb)

	orgID := uuid.New()
	reqID := uuid.New()

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "requisition_items"`).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec(`DELETE FROM "requisitions" WHERE id = \$\d+ AND organization_id = \$\d+ AND status = \$\d+`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	err := repo.Delete(context.Background(), orgID, reqID)
	assert.ErrorIs(t, err, domain.ErrRequisitionNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
