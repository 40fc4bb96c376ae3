package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/lucilles-catering/crm-sync/internal/infra/http/middleware"
	"github.com/lucilles-catering/crm-sync/internal/usecase"
)

// DealHandler serves the workflow upsert: PUT /deals/{refNumber}.
type DealHandler struct {
	Service *usecase.SyncService
}

func NewDealHandler(service *usecase.SyncService) *DealHandler {
	return &DealHandler{Service: service}
}

func (h *DealHandler) Upsert(w http.ResponseWriter, r *http.Request) {
	refNumber := chi.URLParam(r, "refNumber")
	if refNumber == "" {
		writeJSON(w, http.StatusBadRequest, usecase.UpsertDealOutput{
			Success: false,
			Message: "refNumber is required",
		})
		return
	}

	var input usecase.UpsertDealInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeJSON(w, http.StatusBadRequest, usecase.UpsertDealOutput{
			Success: false,
			Message: "Invalid JSON",
		})
		return
	}

	output, err := h.Service.UpsertDeal(r.Context(), refNumber, input)
	if err != nil {
		writeSyncError(w, err)
		return
	}

	middleware.RecordDealUpserted()
	writeJSON(w, http.StatusOK, output)
}
