// internal/service/attachment.go
package service

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"
	"github.com/procurehq/reqflow/internal/domain"
	"github.com/procurehq/reqflow/internal/model"
	"github.com/procurehq/reqflow/internal/repository"
	"github.com/procurehq/reqflow/internal/storage"
	"github.com/procurehq/reqflow/internal/workflow"
)

// maxAttachmentSize caps uploads at 25 MiB per file.
const maxAttachmentSize = 25 << 20

// AttachmentService stores requisition attachments in object storage and
// records their metadata. The object key embeds the organization so the
// bucket layout mirrors tenant boundaries.
type AttachmentService struct {
	repo    repository.AttachmentRepositoryIface
	reqRepo repository.RequisitionRepositoryIface
	store   storage.ObjectStore
}

func NewAttachmentService(repo repository.AttachmentRepositoryIface, reqRepo repository.RequisitionRepositoryIface, store storage.ObjectStore) *AttachmentService {
	return &AttachmentService{
		repo:    repo,
		reqRepo: reqRepo,
		store:   store,
	}
}

type UploadInput struct {
	FileName    string
	ContentType string
	Size        int64
	Body        io.Reader
}

func (s *AttachmentService) Upload(ctx context.Context, orgID uuid.UUID, actor workflow.Actor, requisitionID uuid.UUID, input UploadInput) (*model.Attachment, error) {
	if input.FileName == "" {
		return nil, fmt.Errorf("%w: file name is required", domain.ErrInvalidInput)
	}
	if input.Size > maxAttachmentSize {
		return nil, fmt.Errorf("%w: file exceeds %d bytes", domain.ErrInvalidInput, maxAttachmentSize)
	}

	req, err := s.reqRepo.FindByID(ctx, orgID, requisitionID)
	if err != nil {
		return nil, err
	}
	if req.Status.Terminal() {
		return nil, fmt.Errorf("%w: requisition is closed", domain.ErrInvalidInput)
	}

	key, url, err := s.store.Upload(ctx, orgID, requisitionID, input.FileName, input.ContentType, input.Body)
	if err != nil {
		return nil, fmt.Errorf("uploading attachment: %w", err)
	}

	attachment := &model.Attachment{
		RequisitionID: requisitionID,
		UploadedByID:  actor.ID,
		FileName:      input.FileName,
		ObjectKey:     key,
		URL:           url,
		SizeBytes:     input.Size,
	}
	if err := s.repo.Create(ctx, attachment); err != nil {
		// The object is orphaned if this cleanup fails; the bucket
		// lifecycle rule sweeps unreferenced keys.
		if delErr := s.store.Delete(ctx, key); delErr != nil {
			slog.Warn("failed to clean up orphaned object", "key", key, "error", delErr)
		}
		return nil, err
	}

	return attachment, nil
}

func (s *AttachmentService) List(ctx context.Context, orgID, requisitionID uuid.UUID) ([]*model.Attachment, error) {
	if _, err := s.reqRepo.FindByID(ctx, orgID, requisitionID); err != nil {
		return nil, err
	}
	return s.repo.FindByRequisition(ctx, orgID, requisitionID)
}

// Delete removes an attachment's metadata and its stored object. Only the
// uploader or a super_admin may delete.
func (s *AttachmentService) Delete(ctx context.Context, orgID uuid.UUID, actor workflow.Actor, requisitionID, id uuid.UUID) error {
	attachments, err := s.List(ctx, orgID, requisitionID)
	if err != nil {
		return err
	}

	var target *model.Attachment
	for _, a := range attachments {
		if a.ID == id {
			target = a
			break
		}
	}
	if target == nil {
		return domain.ErrNotFound
	}

	if target.UploadedByID != actor.ID && actor.Role != model.RoleSuperAdmin {
		return &workflow.PermissionError{}
	}

	if err := s.repo.Delete(ctx, orgID, id); err != nil {
		return err
	}
	if err := s.store.Delete(ctx, target.ObjectKey); err != nil {
		slog.Warn("failed to delete stored object", "key", target.ObjectKey, "error", err)
	}
	return nil
}
