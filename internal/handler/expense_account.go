// internal/handler/expense_account.go
package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/procurehq/reqflow/internal/service"
)

type ExpenseAccountHandler struct {
	service *service.ExpenseAccountService
}

func NewExpenseAccountHandler(service *service.ExpenseAccountService) *ExpenseAccountHandler {
	return &ExpenseAccountHandler{service: service}
}

func (h *ExpenseAccountHandler) Create(w http.ResponseWriter, r *http.Request) {
	orgID, actor, ok := requestScope(r)
	if !ok {
		respondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	var input service.ExpenseAccountInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	account, err := h.service.CreateAccount(r.Context(), orgID, actor, input)
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, account)
}

func (h *ExpenseAccountHandler) List(w http.ResponseWriter, r *http.Request) {
	orgID, _, ok := requestScope(r)
	if !ok {
		respondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	accounts, err := h.service.ListAccounts(r.Context(), orgID)
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{"expense_accounts": accounts})
}

func (h *ExpenseAccountHandler) Get(w http.ResponseWriter, r *http.Request) {
	orgID, _, ok := requestScope(r)
	if !ok {
		respondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid account ID")
		return
	}

	account, err := h.service.GetAccount(r.Context(), orgID, id)
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, account)
}

func (h *ExpenseAccountHandler) Update(w http.ResponseWriter, r *http.Request) {
	orgID, actor, ok := requestScope(r)
	if !ok {
		respondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid account ID")
		return
	}

	var input service.ExpenseAccountInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	account, err := h.service.UpdateAccount(r.Context(), orgID, actor, id, input)
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, account)
}

func (h *ExpenseAccountHandler) Delete(w http.ResponseWriter, r *http.Request) {
	orgID, actor, ok := requestScope(r)
	if !ok {
		respondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid account ID")
		return
	}

	if err := h.service.DeleteAccount(r.Context(), orgID, actor, id); err != nil {
		respondWithServiceError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, BaseResponse{Ok: true})
}
