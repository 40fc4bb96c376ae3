package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/lucilles-catering/crm-sync/internal/infra/http/middleware"
	"github.com/lucilles-catering/crm-sync/internal/usecase"
)

// SyncHandler serves the dashboard's original query surface:
// GET /sync?action=getLeads|getDeals. The body is always JSON, either
// the record array or {"error": "..."}.
type SyncHandler struct {
	Service *usecase.SyncService
}

func NewSyncHandler(service *usecase.SyncService) *SyncHandler {
	return &SyncHandler{Service: service}
}

func (h *SyncHandler) Handle(w http.ResponseWriter, r *http.Request) {
	action := r.URL.Query().Get("action")

	switch action {
	case "getLeads":
		leads, err := h.Service.ListLeads(r.Context())
		if err != nil {
			writeSyncError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, leads)

	case "getDeals":
		deals, err := h.Service.ListDeals(r.Context())
		if err != nil {
			writeSyncError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, deals)

	default:
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid action parameter"})
	}
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

// writeSyncError maps engine error codes to HTTP statuses and keeps
// the {"error": message} payload the dashboard already parses.
func writeSyncError(w http.ResponseWriter, err error) {
	code := usecase.ErrCode(err)
	middleware.RecordStoreError(code)

	status := http.StatusInternalServerError
	switch code {
	case usecase.CodeStoreUnavailable:
		status = http.StatusServiceUnavailable
	case usecase.CodeMissingRef:
		status = http.StatusBadRequest
	}

	writeJSON(w, status, map[string]string{"error": err.Error()})
}
