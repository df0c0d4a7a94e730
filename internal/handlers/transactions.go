package handlers

import (
	"database/sql"
	"encoding/json"
	"net/http"
	"time"

	"remitmatch/internal/models"
	"remitmatch/internal/services"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type createTransactionRequest struct {
	Title            string          `json:"title"`
	Description      string          `json:"description"`
	Amount           decimal.Decimal `json:"amount"`
	Currency         string          `json:"currency"`
	FromCity         string          `json:"from_city"`
	ToCity           string          `json:"to_city"`
	RecipientName    string          `json:"recipient_name"`
	RecipientDetails string          `json:"recipient_details"`
}

func (h *Handler) CreateTransaction(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("user_id")
	if userID == "" {
		respondError(w, http.StatusBadRequest, "user_id is required")
		return
	}
	var req createTransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid payload")
		return
	}
	if _, err := h.users.GetByID(r.Context(), userID); err != nil {
		if err == sql.ErrNoRows {
			respondError(w, http.StatusNotFound, "user not found")
			return
		}
		respondError(w, http.StatusInternalServerError, "unable to verify user")
		return
	}
	transaction := models.Transaction{
		ID:               uuid.NewString(),
		UserID:           userID,
		Title:            req.Title,
		Description:      req.Description,
		Amount:           req.Amount,
		Currency:         req.Currency,
		FromCity:         req.FromCity,
		ToCity:           req.ToCity,
		RecipientName:    req.RecipientName,
		RecipientDetails: req.RecipientDetails,
		Status:           models.StatusActive,
		CreatedAt:        time.Now().UTC(),
	}
	if err := h.transactions.Create(r.Context(), transaction); err != nil {
		respondError(w, http.StatusInternalServerError, "unable to create transaction")
		return
	}
	respondJSON(w, http.StatusCreated, transaction)
}

func (h *Handler) ListTransactions(w http.ResponseWriter, r *http.Request) {
	city := r.URL.Query().Get("city")
	status := r.URL.Query().Get("status")
	transactions, err := h.transactions.List(r.Context(), city, status, listLimit)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "unable to load transactions")
		return
	}
	respondJSON(w, http.StatusOK, transactions)
}

func (h *Handler) ListUserTransactions(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")
	transactions, err := h.transactions.ListByUser(r.Context(), userID, listLimit)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "unable to load transactions")
		return
	}
	respondJSON(w, http.StatusOK, transactions)
}

func (h *Handler) GetTransaction(w http.ResponseWriter, r *http.Request) {
	transactionID := chi.URLParam(r, "transactionID")
	transaction, err := h.transactions.GetByID(r.Context(), transactionID)
	if err != nil {
		if err == sql.ErrNoRows {
			respondError(w, http.StatusNotFound, "transaction not found")
			return
		}
		respondError(w, http.StatusInternalServerError, "unable to load transaction")
		return
	}
	respondJSON(w, http.StatusOK, transaction)
}

func (h *Handler) FindMatches(w http.ResponseWriter, r *http.Request) {
	transactionID := chi.URLParam(r, "transactionID")
	matches, err := h.matcher.FindCandidates(r.Context(), transactionID)
	if err != nil {
		if err == services.ErrTransactionNotFound {
			respondError(w, http.StatusNotFound, "transaction not found")
			return
		}
		respondError(w, http.StatusInternalServerError, "unable to find matches")
		return
	}
	respondJSON(w, http.StatusOK, matches)
}

func (h *Handler) CreateMatch(w http.ResponseWriter, r *http.Request) {
	transactionID := chi.URLParam(r, "transactionID")
	matchID := chi.URLParam(r, "matchID")
	userID := r.URL.Query().Get("user_id")
	if userID == "" {
		respondError(w, http.StatusBadRequest, "user_id is required")
		return
	}
	if err := h.matcher.CreateMatch(r.Context(), transactionID, matchID, userID); err != nil {
		respondError(w, http.StatusInternalServerError, "unable to create match")
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "Match created successfully"})
}
