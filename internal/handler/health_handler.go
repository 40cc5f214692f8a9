package handler

import (
	"encoding/json"
	"net/http"

	"github.com/Belzex/recommenderSystem6/internal/dataset"
)

type HealthHandler struct {
	data *dataset.Dataset
}

func NewHealthHandler(data *dataset.Dataset) *HealthHandler {
	return &HealthHandler{data: data}
}

// @Summary Healthcheck
// @Tags health
// @Produce json
// @Success 200 {object} map[string]any
// @Router /health [get]
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{
		"status":  "ok",
		"users":   h.data.NumUsers(),
		"movies":  h.data.NumMovies(),
		"ratings": h.data.NumRatings(),
	})
}
