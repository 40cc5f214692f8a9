package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/Belzex/recommenderSystem6/internal/service"

	"github.com/go-chi/chi/v5"
)

type MovieHandler struct {
	svc *service.MovieService
}

func NewMovieHandler(s *service.MovieService) *MovieHandler {
	return &MovieHandler{svc: s}
}

// @Summary Buscar en el catálogo
// @Tags movies
// @Produce json
// @Param q query string false "substring del título"
// @Param genre query string false "género (ej: Comedy)"
// @Param limit query int false "límite (default: 50)"
// @Param offset query int false "offset"
// @Success 200 {array} models.Movie
// @Router /movies [get]
func (h *MovieHandler) Search(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	q := r.URL.Query().Get("q")
	genre := r.URL.Query().Get("genre")
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))

	out := h.svc.Search(q, genre, limit, offset)
	_ = json.NewEncoder(w).Encode(out)
}

// @Summary Obtener película por id
// @Tags movies
// @Produce json
// @Param id path int true "movieId"
// @Success 200 {object} models.Movie
// @Failure 404 {object} map[string]string
// @Router /movies/{id} [get]
func (h *MovieHandler) GetMovie(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	id, _ := strconv.Atoi(chi.URLParam(r, "id"))

	m, ok := h.svc.GetMovie(id)
	if !ok {
		http.Error(w, "movie not found", http.StatusNotFound)
		return
	}
	_ = json.NewEncoder(w).Encode(m)
}
