package handlers

import (
	"encoding/json"
	"net/http"

	"remitmatch/internal/services"

	"github.com/go-chi/chi/v5"
)

type createRatingRequest struct {
	RatedUserID   string `json:"rated_user_id"`
	TransactionID string `json:"transaction_id"`
	Rating        int    `json:"rating"`
	Comment       string `json:"comment"`
}

func (h *Handler) CreateRating(w http.ResponseWriter, r *http.Request) {
	raterID := r.URL.Query().Get("rater_id")
	if raterID == "" {
		respondError(w, http.StatusBadRequest, "rater_id is required")
		return
	}
	var req createRatingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid payload")
		return
	}
	rating, err := h.rater.Submit(r.Context(), services.SubmitRatingRequest{
		RaterID:       raterID,
		RatedUserID:   req.RatedUserID,
		TransactionID: req.TransactionID,
		Score:         req.Rating,
		Comment:       req.Comment,
	})
	if err != nil {
		respondError(w, http.StatusInternalServerError, "unable to submit rating")
		return
	}
	respondJSON(w, http.StatusCreated, rating)
}

func (h *Handler) ListUserRatings(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")
	ratings, err := h.ratings.ListByRatedUser(r.Context(), userID, listLimit)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "unable to load ratings")
		return
	}
	respondJSON(w, http.StatusOK, ratings)
}
