package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRatedMoviesCatalogOrderAndAverage(t *testing.T) {
	svc := NewRatingService(rankingData())

	rated, avg := svc.RatedMovies(1)
	require.Len(t, rated, 3)

	// orden de catálogo, con el join ya hecho
	assert.Equal(t, 1, rated[0].MovieID)
	assert.Equal(t, "M1", rated[0].Title)
	assert.Equal(t, 5.0, rated[0].Rating)
	assert.Equal(t, 3, rated[2].MovieID)

	require.NotNil(t, avg)
	assert.InDelta(t, 4.0, *avg, 1e-9)
}

func TestRatedMoviesUnknownUser(t *testing.T) {
	svc := NewRatingService(rankingData())

	rated, avg := svc.RatedMovies(99)
	assert.Empty(t, rated)
	// promedio indefinido viaja como nil, nunca como NaN
	assert.Nil(t, avg)
}
