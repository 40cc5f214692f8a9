package service

import (
	"strings"

	"github.com/Belzex/recommenderSystem6/internal/dataset"
	"github.com/Belzex/recommenderSystem6/internal/models"
)

// MovieService expone el catálogo cargado en memoria.
type MovieService struct {
	data *dataset.Dataset
}

func NewMovieService(data *dataset.Dataset) *MovieService {
	return &MovieService{data: data}
}

func (s *MovieService) GetMovie(id int) (models.Movie, bool) {
	return s.data.Movie(id)
}

// Search filtra el catálogo por substring de título y/o género, con
// paginación. q vacío = todo el catálogo.
func (s *MovieService) Search(q, genre string, limit, offset int) []models.Movie {
	if limit <= 0 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	q = strings.ToLower(q)

	var out []models.Movie
	skipped := 0
	for _, m := range s.data.Movies() {
		if q != "" && !strings.Contains(strings.ToLower(m.Title), q) {
			continue
		}
		if genre != "" && !strings.Contains(m.Genres, genre) {
			continue
		}
		if skipped < offset {
			skipped++
			continue
		}
		out = append(out, m)
		if len(out) >= limit {
			break
		}
	}
	return out
}
