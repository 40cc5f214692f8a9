package engine

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Belzex/recommenderSystem6/internal/dataset"
	"github.com/Belzex/recommenderSystem6/internal/models"
	"github.com/Belzex/recommenderSystem6/internal/simcache"
)

func newCache(t *testing.T) *simcache.Cache {
	t.Helper()
	c, err := simcache.Open(filepath.Join(t.TempDir(), "simusers.cache"))
	require.NoError(t, err)
	return c
}

// dataset chico con similitudes conocidas a mano:
//
//	U1: M1=5 M2=3 M3=4         → avg 4
//	U2: M1=4 M2=2 M3=3 M4=4    → avg 3.25
//	U3: M1=1 M2=5              → avg 3
//
// U1 vs U2 sobre {M1,M2,M3}: desvíos proporcionales → sim cercana a 1
// U1 vs U3 sobre {M1,M2}: desvíos opuestos → sim = -1
func testData() *dataset.Dataset {
	return dataset.FromRecords(
		[]models.Movie{
			{MovieID: 1, Title: "M1", Genres: "X"},
			{MovieID: 2, Title: "M2", Genres: "X"},
			{MovieID: 3, Title: "M3", Genres: "X"},
			{MovieID: 4, Title: "M4", Genres: "X"},
		},
		[]models.User{{UserID: 1}, {UserID: 2}, {UserID: 3}},
		[]models.Rating{
			{UserID: 1, MovieID: 1, Rating: 5},
			{UserID: 1, MovieID: 2, Rating: 3},
			{UserID: 1, MovieID: 3, Rating: 4},
			{UserID: 2, MovieID: 1, Rating: 4},
			{UserID: 2, MovieID: 2, Rating: 2},
			{UserID: 2, MovieID: 3, Rating: 3},
			{UserID: 2, MovieID: 4, Rating: 4},
			{UserID: 3, MovieID: 1, Rating: 1},
			{UserID: 3, MovieID: 2, Rating: 5},
		},
	)
}

func TestComputeSimilarityOrderAndRange(t *testing.T) {
	e := New(testData(), newCache(t), 2)

	recs := e.ComputeSimilarity(1, 10)
	require.Len(t, recs, 2)

	// ordenado por similitud descendente
	assert.Equal(t, 2, recs[0].UserID)
	assert.Equal(t, 3, recs[1].UserID)
	assert.Greater(t, recs[0].Similarity, recs[1].Similarity)

	for _, r := range recs {
		assert.GreaterOrEqual(t, r.Similarity, -1.0)
		assert.LessOrEqual(t, r.Similarity, 1.0)
	}
	assert.InDelta(t, -1.0, recs[1].Similarity, 1e-9)
	assert.InDelta(t, 3.0, recs[1].RatingAvg, 1e-9)
}

func TestComputeSimilarityIsSymmetric(t *testing.T) {
	e := New(testData(), newCache(t), 4)

	recs1 := e.ComputeSimilarity(1, 10)
	recs2 := e.ComputeSimilarity(2, 10)

	var sim12, sim21 float64
	for _, r := range recs1 {
		if r.UserID == 2 {
			sim12 = r.Similarity
		}
	}
	for _, r := range recs2 {
		if r.UserID == 1 {
			sim21 = r.Similarity
		}
	}
	assert.InDelta(t, sim12, sim21, 1e-9)
}

func TestComputeSimilarityPersistsFullListAndTruncates(t *testing.T) {
	cache := newCache(t)
	e := New(testData(), cache, 2)

	top1 := e.ComputeSimilarity(1, 1)
	require.Len(t, top1, 1)

	// se persistió la lista completa, así que un k más grande se sirve
	// directo del cache
	stored, ok := cache.Lookup(1)
	require.True(t, ok)
	assert.Len(t, stored, 2)

	top2 := e.ComputeSimilarity(1, 2)
	assert.Len(t, top2, 2)
	assert.Equal(t, top1[0], top2[0])
}

func TestComputeSimilarityIdempotentAcrossRestart(t *testing.T) {
	path := filepath.Join(t.TempDir(), "simusers.cache")

	c1, err := simcache.Open(path)
	require.NoError(t, err)
	first := New(testData(), c1, 2).ComputeSimilarity(1, 10)

	// proceso nuevo: cache recargado desde disco
	c2, err := simcache.Open(path)
	require.NoError(t, err)
	second := New(testData(), c2, 2).ComputeSimilarity(1, 10)

	assert.Equal(t, first, second)
}

func TestNoRecordWithoutVariance(t *testing.T) {
	// escenario: U2 califica todo igual → denom2 = 0 → sin registro
	d := dataset.FromRecords(
		[]models.Movie{{MovieID: 1, Title: "M1"}, {MovieID: 2, Title: "M2"}},
		[]models.User{{UserID: 1}, {UserID: 2}},
		[]models.Rating{
			{UserID: 1, MovieID: 1, Rating: 5},
			{UserID: 1, MovieID: 2, Rating: 3},
			{UserID: 2, MovieID: 1, Rating: 4},
			{UserID: 2, MovieID: 2, Rating: 4},
		},
	)
	e := New(d, newCache(t), 2)

	recs := e.ComputeSimilarity(1, 10)
	assert.Empty(t, recs)
}

func TestUserWithoutRatingsHasNoNeighbors(t *testing.T) {
	d := dataset.FromRecords(
		[]models.Movie{{MovieID: 1}},
		[]models.User{{UserID: 1}, {UserID: 2}},
		[]models.Rating{{UserID: 2, MovieID: 1, Rating: 4}},
	)
	e := New(d, newCache(t), 2)

	assert.Empty(t, e.ComputeSimilarity(1, 10))
	// usuario que ni está en la relación Users
	assert.Empty(t, e.ComputeSimilarity(99, 10))
}

func TestPredictRatingEmptyNeighborhoodIsZero(t *testing.T) {
	e := New(testData(), newCache(t), 2)
	assert.Equal(t, 0.0, e.PredictRating(1, 4, nil))
	assert.Equal(t, 0.0, e.PredictRating(1, 4, []models.NeighborRecord{}))
}

func TestPredictRatingWeightedAverage(t *testing.T) {
	e := New(testData(), newCache(t), 2)
	neighbors := e.ComputeSimilarity(1, 10)

	// M4 solo lo calificó U2 (sim≈1, avg 3.25, r=4):
	// pred = 4 + sim·(4 − 3.25)/sim = 4.75
	assert.InDelta(t, 4.75, e.PredictRating(1, 4, neighbors), 1e-9)
}

func TestPredictRatingSkipsNeighborsWithoutRating(t *testing.T) {
	e := New(testData(), newCache(t), 2)

	// vecino inventado sin rating para M4: queda fuera, no aporta cero
	neighbors := []models.NeighborRecord{
		{UserID: 3, Similarity: 0.8, RatingAvg: 3.0},
	}
	assert.Equal(t, 0.0, e.PredictRating(1, 4, neighbors))
}
