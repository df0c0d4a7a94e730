package handlers

import (
	"net/http"

	"remitmatch/internal/services"

	"github.com/go-chi/chi/v5"
)

func (h *Handler) ApproveTransaction(w http.ResponseWriter, r *http.Request) {
	transactionID := chi.URLParam(r, "transactionID")
	moderatorID := r.URL.Query().Get("moderator_id")
	if moderatorID == "" {
		respondError(w, http.StatusBadRequest, "moderator_id is required")
		return
	}
	if err := h.lifecycle.Approve(r.Context(), transactionID, moderatorID); err != nil {
		if err == services.ErrAccessDenied {
			respondError(w, http.StatusForbidden, "access denied")
			return
		}
		respondError(w, http.StatusInternalServerError, "unable to approve transaction")
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "Transaction approved"})
}

func (h *Handler) RequestApproval(w http.ResponseWriter, r *http.Request) {
	transactionID := r.URL.Query().Get("transaction_id")
	matchID := r.URL.Query().Get("match_id")
	if transactionID == "" || matchID == "" {
		respondError(w, http.StatusBadRequest, "transaction_id and match_id are required")
		return
	}
	if err := h.lifecycle.RequestApproval(r.Context(), transactionID, matchID); err != nil {
		respondError(w, http.StatusInternalServerError, "unable to request approval")
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "Approval requested"})
}
