// internal/handler/requisition.go
package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/procurehq/reqflow/internal/model"
	"github.com/procurehq/reqflow/internal/service"
	"github.com/procurehq/reqflow/internal/workflow"
)

type RequisitionHandler struct {
	service *service.RequisitionService
}

func NewRequisitionHandler(service *service.RequisitionService) *RequisitionHandler {
	return &RequisitionHandler{service: service}
}

func (h *RequisitionHandler) Create(w http.ResponseWriter, r *http.Request) {
	orgID, actor, ok := requestScope(r)
	if !ok {
		respondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	var input service.DraftInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	req, err := h.service.CreateDraft(r.Context(), orgID, actor, input, r)
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, req)
}

type ListResponse struct {
	BaseResponse
	Requisitions []*model.Requisition `json:"requisitions"`
	Total        int64                `json:"total"`
}

func (h *RequisitionHandler) List(w http.ResponseWriter, r *http.Request) {
	orgID, _, ok := requestScope(r)
	if !ok {
		respondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	query := r.URL.Query()
	status := model.RequisitionStatus(query.Get("status"))
	offset, _ := strconv.Atoi(query.Get("offset"))
	limit, _ := strconv.Atoi(query.Get("limit"))

	reqs, total, err := h.service.ListRequisitions(r.Context(), orgID, status, offset, limit)
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, ListResponse{
		BaseResponse: BaseResponse{Ok: true},
		Requisitions: reqs,
		Total:        total,
	})
}

func (h *RequisitionHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	orgID, actor, ok := requestScope(r)
	if !ok {
		respondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	reqs, err := h.service.ListMine(r.Context(), orgID, actor)
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{"requisitions": reqs})
}

func (h *RequisitionHandler) Get(w http.ResponseWriter, r *http.Request) {
	orgID, _, ok := requestScope(r)
	if !ok {
		respondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid requisition ID")
		return
	}

	req, err := h.service.GetRequisition(r.Context(), orgID, id)
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, req)
}

func (h *RequisitionHandler) Update(w http.ResponseWriter, r *http.Request) {
	orgID, actor, ok := requestScope(r)
	if !ok {
		respondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid requisition ID")
		return
	}

	var input service.DraftInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	req, err := h.service.UpdateDraft(r.Context(), orgID, actor, id, input)
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, req)
}

func (h *RequisitionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	orgID, actor, ok := requestScope(r)
	if !ok {
		respondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid requisition ID")
		return
	}

	if err := h.service.DeleteDraft(r.Context(), orgID, actor, id, r); err != nil {
		respondWithServiceError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, BaseResponse{Ok: true})
}

type TransitionRequest struct {
	Event   string `json:"event"`
	Comment string `json:"comment"`
}

// Transition runs a workflow event against a requisition.
func (h *RequisitionHandler) Transition(w http.ResponseWriter, r *http.Request) {
	orgID, actor, ok := requestScope(r)
	if !ok {
		respondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid requisition ID")
		return
	}

	var body TransitionRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	event, ok := parseEvent(body.Event)
	if !ok {
		respondWithError(w, http.StatusBadRequest, "Unknown event")
		return
	}

	req, err := h.service.Transition(r.Context(), orgID, actor, id, event, workflow.TransitionInput{Comment: body.Comment}, r)
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, req)
}

// AllowedEvents lists the events the caller may run on the requisition.
func (h *RequisitionHandler) AllowedEvents(w http.ResponseWriter, r *http.Request) {
	orgID, actor, ok := requestScope(r)
	if !ok {
		respondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid requisition ID")
		return
	}

	events, err := h.service.AllowedEvents(r.Context(), orgID, actor, id)
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}
	if events == nil {
		events = []workflow.Event{}
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{"events": events})
}

// EditableFields lists the fields the caller may edit on the requisition.
func (h *RequisitionHandler) EditableFields(w http.ResponseWriter, r *http.Request) {
	orgID, actor, ok := requestScope(r)
	if !ok {
		respondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid requisition ID")
		return
	}

	fields, err := h.service.EditableFields(r.Context(), orgID, actor, id)
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}
	if fields == nil {
		fields = []string{}
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{"fields": fields})
}

func (h *RequisitionHandler) ListComments(w http.ResponseWriter, r *http.Request) {
	orgID, _, ok := requestScope(r)
	if !ok {
		respondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid requisition ID")
		return
	}

	comments, err := h.service.GetComments(r.Context(), orgID, id)
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{"comments": comments})
}

type CommentRequest struct {
	Body string `json:"body"`
}

func (h *RequisitionHandler) AddComment(w http.ResponseWriter, r *http.Request) {
	orgID, actor, ok := requestScope(r)
	if !ok {
		respondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid requisition ID")
		return
	}

	var body CommentRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	comment, err := h.service.AddComment(r.Context(), orgID, actor, id, body.Body)
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, comment)
}

func parseEvent(s string) (workflow.Event, bool) {
	for _, e := range workflow.Events {
		if string(e) == s {
			return e, true
		}
	}
	return "", false
}
