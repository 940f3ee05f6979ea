// internal/handler/attachment.go
package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/procurehq/reqflow/internal/service"
)

// maxUploadMemory bounds how much of a multipart body is buffered in
// memory before spilling to disk.
const maxUploadMemory = 10 << 20

type AttachmentHandler struct {
	service *service.AttachmentService
}

func NewAttachmentHandler(service *service.AttachmentService) *AttachmentHandler {
	return &AttachmentHandler{service: service}
}

func (h *AttachmentHandler) Upload(w http.ResponseWriter, r *http.Request) {
	orgID, actor, ok := requestScope(r)
	if !ok {
		respondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	requisitionID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid requisition ID")
		return
	}

	if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid multipart payload")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Missing file field")
		return
	}
	defer file.Close()

	attachment, err := h.service.Upload(r.Context(), orgID, actor, requisitionID, service.UploadInput{
		FileName:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Size:        header.Size,
		Body:        file,
	})
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, attachment)
}

func (h *AttachmentHandler) List(w http.ResponseWriter, r *http.Request) {
	orgID, _, ok := requestScope(r)
	if !ok {
		respondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	requisitionID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid requisition ID")
		return
	}

	attachments, err := h.service.List(r.Context(), orgID, requisitionID)
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{"attachments": attachments})
}

func (h *AttachmentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	orgID, actor, ok := requestScope(r)
	if !ok {
		respondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	requisitionID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid requisition ID")
		return
	}

	attachmentID, err := uuid.Parse(chi.URLParam(r, "attachmentID"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid attachment ID")
		return
	}

	if err := h.service.Delete(r.Context(), orgID, actor, requisitionID, attachmentID); err != nil {
		respondWithServiceError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, BaseResponse{Ok: true})
}
