package service

import (
	"math"

	"github.com/Belzex/recommenderSystem6/internal/dataset"
	"github.com/Belzex/recommenderSystem6/internal/models"
)

// RatingService expone la vista "películas que el usuario calificó".
// Solo lectura: los ratings son inmutables durante la vida del proceso.
type RatingService struct {
	data *dataset.Dataset
}

func NewRatingService(data *dataset.Dataset) *RatingService {
	return &RatingService{data: data}
}

// RatedMovies devuelve las películas calificadas por el usuario en
// orden de catálogo, junto con su promedio. El promedio viene como
// puntero: nil cuando el usuario no tiene ratings (el NaN no viaja
// por JSON).
func (s *RatingService) RatedMovies(userID int) ([]models.RatedMovie, *float64) {
	rated := s.data.RatedMovies(userID)

	out := make([]models.RatedMovie, 0, len(rated))
	for _, m := range s.data.Movies() {
		score, ok := rated[m.MovieID]
		if !ok {
			continue
		}
		out = append(out, models.RatedMovie{
			MovieID: m.MovieID,
			Title:   m.Title,
			Genres:  m.Genres,
			Rating:  score,
		})
	}

	avg := s.data.AverageRating(userID)
	if math.IsNaN(avg) {
		return out, nil
	}
	return out, &avg
}
