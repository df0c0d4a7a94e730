package handlers

import (
	"database/sql"
	"encoding/json"
	"net/http"
	"time"

	"remitmatch/internal/models"
	"remitmatch/internal/validator"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type createUserRequest struct {
	Username   string `json:"username"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	IDDocument string `json:"id_document"`
	City       string `json:"city"`
}

func (h *Handler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req createUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid payload")
		return
	}
	if err := validator.ValidateUsername(req.Username); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := validator.ValidateEmail(req.Email); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	exists, err := h.users.ExistsByUsernameOrEmail(r.Context(), req.Username, req.Email)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "unable to verify user")
		return
	}
	if exists {
		respondError(w, http.StatusBadRequest, "username or email already exists")
		return
	}
	user := models.User{
		ID:         uuid.NewString(),
		Username:   req.Username,
		Email:      req.Email,
		Phone:      req.Phone,
		IDDocument: req.IDDocument,
		City:       req.City,
		Rating:     5.0,
		Role:       models.RoleUser,
		CreatedAt:  time.Now().UTC(),
	}
	if err := h.users.Create(r.Context(), user); err != nil {
		if isUniqueViolation(err) {
			respondError(w, http.StatusBadRequest, "username or email already exists")
			return
		}
		respondError(w, http.StatusInternalServerError, "registration failed")
		return
	}
	respondJSON(w, http.StatusCreated, user)
}

func (h *Handler) GetUser(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")
	user, err := h.users.GetByID(r.Context(), userID)
	if err != nil {
		if err == sql.ErrNoRows {
			respondError(w, http.StatusNotFound, "user not found")
			return
		}
		respondError(w, http.StatusInternalServerError, "unable to load user")
		return
	}
	respondJSON(w, http.StatusOK, user)
}

func (h *Handler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.users.List(r.Context(), listLimit)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "unable to load users")
		return
	}
	respondJSON(w, http.StatusOK, users)
}
