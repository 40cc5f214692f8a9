package engine

import (
	"log"
	"math"
	"sort"
	"sync"

	"github.com/Belzex/recommenderSystem6/internal/dataset"
	"github.com/Belzex/recommenderSystem6/internal/models"
	"github.com/Belzex/recommenderSystem6/internal/simcache"
)

// Engine calcula similitudes Pearson y predicciones de rating sobre un
// snapshot del dataset. Cada Engine es dueño de su dataset y de su
// handle al cache de similitudes: nada se comparte entre instancias.
type Engine struct {
	data    *dataset.Dataset
	cache   *simcache.Cache
	workers int
}

func New(data *dataset.Dataset, cache *simcache.Cache, workers int) *Engine {
	if workers <= 0 {
		workers = 4
	}
	return &Engine{data: data, cache: cache, workers: workers}
}

// ComputeSimilarity devuelve los primeros k vecinos del usuario,
// ordenados por similitud descendente. Si el cache ya tiene al usuario
// se devuelve el prefijo tal cual, sin recalcular ni reescribir. Si no,
// se calcula Pearson contra todos los demás usuarios con un pool
// acotado de workers, se persiste la lista COMPLETA y recién entonces
// se trunca a k.
func (e *Engine) ComputeSimilarity(userID, k int) []models.NeighborRecord {
	if recs, ok := e.cache.Lookup(userID); ok {
		return prefix(recs, k)
	}

	avgU := e.data.AverageRating(userID)
	ratedU := e.data.RatedMovies(userID)
	others := e.data.UserIDs()

	// cada worker escribe su propio slot; un par sin similitud
	// definida deja el slot en nil
	slots := make([]*models.NeighborRecord, len(others))

	var wg sync.WaitGroup
	sem := make(chan struct{}, e.workers)
	for i, otherID := range others {
		if otherID == userID {
			continue
		}
		sem <- struct{}{}
		wg.Add(1)
		go func(i, otherID int) {
			defer wg.Done()
			defer func() { <-sem }()
			slots[i] = e.pairSimilarity(ratedU, avgU, otherID)
		}(i, otherID)
	}
	wg.Wait()

	neighbors := make([]models.NeighborRecord, 0, len(others))
	for _, rec := range slots {
		if rec != nil {
			neighbors = append(neighbors, *rec)
		}
	}
	// estable: empates quedan en orden de userId ascendente
	sort.SliceStable(neighbors, func(i, j int) bool {
		return neighbors[i].Similarity > neighbors[j].Similarity
	})

	// se persiste siempre, incluso si la lista quedó vacía y aunque
	// al caller solo le interese el prefijo
	if err := e.cache.Store(userID, neighbors); err != nil {
		log.Printf("[engine] error persistiendo vecindario de user=%d: %v", userID, err)
	}
	return prefix(neighbors, k)
}

// pairSimilarity calcula la correlación de Pearson entre el usuario
// objetivo y otherID sobre las películas que ambos calificaron.
// Devuelve nil cuando la similitud no está definida: sin varianza de
// alguno de los dos sobre el conjunto en común no hay registro.
func (e *Engine) pairSimilarity(ratedU map[int]float64, avgU float64, otherID int) *models.NeighborRecord {
	avgO := e.data.AverageRating(otherID)
	ratedO := e.data.RatedMovies(otherID)

	var num, den1, den2 float64
	for movieID, ru := range ratedU {
		ro, ok := ratedO[movieID]
		if !ok {
			continue
		}
		// un NaN acá contaminaría las tres sumas
		if math.IsNaN(ru) || math.IsNaN(ro) {
			continue
		}
		du := ru - avgU
		do := ro - avgO
		num += du * do
		den1 += du * du
		den2 += do * do
	}
	if den1 <= 0 || den2 <= 0 {
		return nil
	}
	return &models.NeighborRecord{
		UserID:     otherID,
		Similarity: num / math.Sqrt(den1*den2),
		RatingAvg:  avgO,
	}
}

// PredictRating predice el rating del usuario para una película como
// promedio ponderado de las desviaciones de sus vecinos:
//
//	pred = avgA + Σ sim·(r_vecino − avg_vecino) / Σ sim
//
// Un vecino sin rating para la película, o sin promedio definido, queda
// fuera de ambas sumas (ausente, no cero). Sin vecino usable el
// resultado es 0: "sin datos para personalizar".
func (e *Engine) PredictRating(userID, movieID int, neighbors []models.NeighborRecord) float64 {
	avgA := e.data.AverageRating(userID)

	var sum1, sum2 float64
	for _, n := range neighbors {
		r := e.data.RatingFor(n.UserID, movieID)
		if math.IsNaN(n.RatingAvg) || math.IsNaN(r) {
			continue
		}
		sum1 += n.Similarity * (r - n.RatingAvg)
		sum2 += n.Similarity
	}
	if sum2 == 0 || math.IsNaN(avgA) {
		return 0
	}
	return avgA + sum1/sum2
}

func prefix(recs []models.NeighborRecord, k int) []models.NeighborRecord {
	if k > 0 && len(recs) > k {
		return recs[:k]
	}
	return recs
}
