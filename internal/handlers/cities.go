package handlers

import (
	"net/http"

	"remitmatch/internal/cities"
)

func (h *Handler) GetCities(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string][]string{"cities": cities.All()})
}
