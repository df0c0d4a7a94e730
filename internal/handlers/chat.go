package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"remitmatch/internal/models"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type sendMessageRequest struct {
	TransactionID string `json:"transaction_id"`
	ReceiverID    string `json:"receiver_id"`
	Message       string `json:"message"`
}

func (h *Handler) SendMessage(w http.ResponseWriter, r *http.Request) {
	senderID := r.URL.Query().Get("sender_id")
	if senderID == "" {
		respondError(w, http.StatusBadRequest, "sender_id is required")
		return
	}
	var req sendMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid payload")
		return
	}
	message := models.ChatMessage{
		ID:            uuid.NewString(),
		TransactionID: req.TransactionID,
		SenderID:      senderID,
		ReceiverID:    req.ReceiverID,
		Message:       req.Message,
		Timestamp:     time.Now().UTC(),
	}
	if err := h.chat.Create(r.Context(), message); err != nil {
		respondError(w, http.StatusInternalServerError, "unable to send message")
		return
	}
	respondJSON(w, http.StatusCreated, message)
}

func (h *Handler) GetThread(w http.ResponseWriter, r *http.Request) {
	transactionID := chi.URLParam(r, "transactionID")
	messages, err := h.chat.ListByTransaction(r.Context(), transactionID, chatThreadLimit)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "unable to load messages")
		return
	}
	respondJSON(w, http.StatusOK, messages)
}
