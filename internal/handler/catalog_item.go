// internal/handler/catalog_item.go
package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/procurehq/reqflow/internal/service"
)

type CatalogItemHandler struct {
	service *service.CatalogItemService
}

func NewCatalogItemHandler(service *service.CatalogItemService) *CatalogItemHandler {
	return &CatalogItemHandler{service: service}
}

func (h *CatalogItemHandler) Create(w http.ResponseWriter, r *http.Request) {
	orgID, actor, ok := requestScope(r)
	if !ok {
		respondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	var input service.CatalogItemInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	item, err := h.service.CreateItem(r.Context(), orgID, actor, input)
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, item)
}

func (h *CatalogItemHandler) List(w http.ResponseWriter, r *http.Request) {
	orgID, _, ok := requestScope(r)
	if !ok {
		respondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	query := r.URL.Query()
	offset, _ := strconv.Atoi(query.Get("offset"))
	limit, _ := strconv.Atoi(query.Get("limit"))

	items, total, err := h.service.ListItems(r.Context(), orgID, offset, limit)
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"items": items,
		"total": total,
	})
}

func (h *CatalogItemHandler) Get(w http.ResponseWriter, r *http.Request) {
	orgID, _, ok := requestScope(r)
	if !ok {
		respondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid item ID")
		return
	}

	item, err := h.service.GetItem(r.Context(), orgID, id)
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, item)
}

func (h *CatalogItemHandler) Update(w http.ResponseWriter, r *http.Request) {
	orgID, actor, ok := requestScope(r)
	if !ok {
		respondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid item ID")
		return
	}

	var input service.CatalogItemInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	item, err := h.service.UpdateItem(r.Context(), orgID, actor, id, input)
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, item)
}

func (h *CatalogItemHandler) Delete(w http.ResponseWriter, r *http.Request) {
	orgID, actor, ok := requestScope(r)
	if !ok {
		respondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid item ID")
		return
	}

	if err := h.service.DeleteItem(r.Context(), orgID, actor, id); err != nil {
		respondWithServiceError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, BaseResponse{Ok: true})
}
