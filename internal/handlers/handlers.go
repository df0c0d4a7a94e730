package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/lib/pq"
)

// Listing caps. Results beyond these are never returned; there is no
// pagination.
const (
	listLimit       = 100
	chatThreadLimit = 1000
)

func respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}

func isUniqueViolation(err error) bool {
	pgErr, ok := err.(*pq.Error)
	return ok && pgErr.Code == "23505"
}
