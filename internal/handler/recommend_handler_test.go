package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Belzex/recommenderSystem6/internal/config"
	"github.com/Belzex/recommenderSystem6/internal/dataset"
	"github.com/Belzex/recommenderSystem6/internal/engine"
	"github.com/Belzex/recommenderSystem6/internal/models"
	"github.com/Belzex/recommenderSystem6/internal/service"
	"github.com/Belzex/recommenderSystem6/internal/simcache"

	"github.com/go-chi/chi/v5"
)

func testRouter(t *testing.T) *chi.Mux {
	t.Helper()

	d := dataset.FromRecords(
		[]models.Movie{
			{MovieID: 1, Title: "M1", Genres: "X"},
			{MovieID: 2, Title: "M2", Genres: "Y"},
		},
		[]models.User{{UserID: 1}, {UserID: 2}},
		[]models.Rating{
			{UserID: 1, MovieID: 1, Rating: 5},
			{UserID: 1, MovieID: 2, Rating: 3},
			{UserID: 2, MovieID: 1, Rating: 4},
			{UserID: 2, MovieID: 2, Rating: 1},
		},
	)
	c, err := simcache.Open(filepath.Join(t.TempDir(), "simusers.cache"))
	require.NoError(t, err)

	cfg := &config.Config{NeighborhoodSize: 10, TopN: 20, Workers: 2, RecCacheTTL: 60}
	recSvc := service.NewRecommendService(d, engine.New(d, c, 2), nil, cfg)
	ratingSvc := service.NewRatingService(d)

	recH := NewRecommendHandler(recSvc)
	ratingH := NewRatingHandler(ratingSvc)
	healthH := NewHealthHandler(d)

	r := chi.NewRouter()
	r.Get("/health", healthH.Health)
	r.Route("/users/{id}", func(r chi.Router) {
		r.Get("/ratings", ratingH.GetRatings)
		r.Get("/recommendations", recH.GetRecommendations)
	})
	return r
}

func TestGetRecommendationsEndpoint(t *testing.T) {
	r := testRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/users/1/recommendations?n=2", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var items []models.RecItem
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &items))
	assert.Len(t, items, 2)
	assert.NotEmpty(t, items[0].Title)
}

func TestGetRecommendationsUnknownUserStillRanks(t *testing.T) {
	r := testRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/users/99/recommendations", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var items []models.RecItem
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &items))
	require.Len(t, items, 2)
	assert.Equal(t, 0.0, items[0].Score)
}

func TestGetRatingsEndpoint(t *testing.T) {
	r := testRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/users/1/ratings", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		UserID        int                 `json:"userId"`
		AverageRating *float64            `json:"averageRating"`
		Movies        []models.RatedMovie `json:"movies"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, 1, body.UserID)
	require.NotNil(t, body.AverageRating)
	assert.InDelta(t, 4.0, *body.AverageRating, 1e-9)
	assert.Len(t, body.Movies, 2)
}

func TestHealthEndpoint(t *testing.T) {
	r := testRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)
}
