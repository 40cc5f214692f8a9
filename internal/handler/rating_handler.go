package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/Belzex/recommenderSystem6/internal/service"

	"github.com/go-chi/chi/v5"
)

type RatingHandler struct {
	svc *service.RatingService
}

func NewRatingHandler(s *service.RatingService) *RatingHandler { return &RatingHandler{svc: s} }

// @Summary Películas calificadas por el usuario
// @Tags ratings
// @Produce json
// @Param id path int true "userId"
// @Success 200 {object} map[string]any
// @Router /users/{id}/ratings [get]
func (h *RatingHandler) GetRatings(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	userID, _ := strconv.Atoi(chi.URLParam(r, "id"))

	rated, avg := h.svc.RatedMovies(userID)
	// avg nil = usuario sin ratings (promedio indefinido)
	_ = json.NewEncoder(w).Encode(map[string]any{
		"userId":        userID,
		"averageRating": avg,
		"movies":        rated,
	})
}
