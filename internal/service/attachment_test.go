package service_test

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/procurehq/reqflow/internal/mocks"
	"github.com/procurehq/reqflow/internal/model"
	"github.com/procurehq/reqflow/internal/service"
	"github.com/procurehq/reqflow/internal/workflow"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fakeObjectStore struct {
	uploaded []string
	deleted  []string
	failNext bool
}

func (f *fakeObjectStore) Upload(_ context.Context, orgID, requisitionID uuid.UUID, filename, _ string, _ io.Reader) (string, string, error) {
	key := orgID.String() + "/" + requisitionID.String() + "/" + filename
	f.uploaded = append(f.uploaded, key)
	return key, "https://bucket.s3.us-east-1.amazonaws.com/" + key, nil
}

func (f *fakeObjectStore) Delete(_ context.Context, key string) error {
	f.deleted = append(f.deleted, key)
	return nil
}

func TestAttachmentUpload(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	attachRepo := mocks.NewMockAttachmentRepositoryIface(ctrl)
	reqRepo := mocks.NewMockRequisitionRepositoryIface(ctrl)
	store := &fakeObjectStore{}
	svc := service.NewAttachmentService(attachRepo, reqRepo, store)

	orgID := uuid.New()
	actorID := uuid.New()
	reqID := uuid.New()

	t.Run("RecordsMetadata", func(t *testing.T) {
		reqRepo.EXPECT().
			FindByID(gomock.Any(), orgID, reqID).
			Return(&model.Requisition{ID: reqID, OrganizationID: orgID, Status: model.StatusPending}, nil)

		attachRepo.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, a *model.Attachment) error {
				assert.Equal(t, reqID, a.RequisitionID)
				assert.Equal(t, actorID, a.UploadedByID)
				assert.Equal(t, "quote.pdf", a.FileName)
				assert.NotEmpty(t, a.ObjectKey)
				return nil
			})

		actor := workflow.Actor{ID: actorID, Role: model.RoleSubmitter}
		attachment, err := svc.Upload(context.Background(), orgID, actor, reqID, service.UploadInput{
			FileName:    "quote.pdf",
			ContentType: "application/pdf",
			Size:        1024,
			Body:        strings.NewReader("pdf bytes"),
		})
		require.NoError(t, err)
		assert.Equal(t, "quote.pdf", attachment.FileName)
		assert.Len(t, store.uploaded, 1)
	})

	t.Run("RejectedOnClosedRequisition", func(t *testing.T) {
		reqRepo.EXPECT().
			FindByID(gomock.Any(), orgID, reqID).
			Return(&model.Requisition{ID: reqID, OrganizationID: orgID, Status: model.StatusCancelled}, nil)

		actor := workflow.Actor{ID: actorID, Role: model.RoleSubmitter}
		_, err := svc.Upload(context.Background(), orgID, actor, reqID, service.UploadInput{
			FileName: "late.pdf",
			Size:     10,
			Body:     strings.NewReader("x"),
		})
		assert.Error(t, err)
	})
}

func TestAttachmentDeleteRequiresUploaderOrAdmin(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	attachRepo := mocks.NewMockAttachmentRepositoryIface(ctrl)
	reqRepo := mocks.NewMockRequisitionRepositoryIface(ctrl)
	store := &fakeObjectStore{}
	svc := service.NewAttachmentService(attachRepo, reqRepo, store)

	orgID := uuid.New()
	uploaderID := uuid.New()
	otherID := uuid.New()
	reqID := uuid.New()
	attachmentID := uuid.New()

	existing := []*model.Attachment{{
		ID:            attachmentID,
		RequisitionID: reqID,
		UploadedByID:  uploaderID,
		FileName:      "quote.pdf",
		ObjectKey:     "key",
	}}

	reqRepo.EXPECT().FindByID(gomock.Any(), orgID, reqID).
		Return(&model.Requisition{ID: reqID, OrganizationID: orgID, Status: model.StatusPending}, nil).
		AnyTimes()
	attachRepo.EXPECT().FindByRequisition(gomock.Any(), orgID, reqID).Return(existing, nil).AnyTimes()

	t.Run("DeniedForOtherMember", func(t *testing.T) {
		actor := workflow.Actor{ID: otherID, Role: model.RoleReviewer}
		err := svc.Delete(context.Background(), orgID, actor, reqID, attachmentID)

		var permErr *workflow.PermissionError
		assert.ErrorAs(t, err, &permErr)
		assert.Empty(t, store.deleted)
	})

	t.Run("AllowedForUploader", func(t *testing.T) {
		attachRepo.EXPECT().Delete(gomock.Any(), orgID, attachmentID).Return(nil)

		actor := workflow.Actor{ID: uploaderID, Role: model.RoleSubmitter}
		err := svc.Delete(context.Background(), orgID, actor, reqID, attachmentID)
		require.NoError(t, err)
		assert.Equal(t, []string{"key"}, store.deleted)
	})
}
