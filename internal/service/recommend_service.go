package service

import (
	"context"
	"fmt"
	"log"
	"sort"
	"sync"
	"time"

	"github.com/Belzex/recommenderSystem6/internal/cache"
	"github.com/Belzex/recommenderSystem6/internal/config"
	"github.com/Belzex/recommenderSystem6/internal/dataset"
	"github.com/Belzex/recommenderSystem6/internal/engine"
	"github.com/Belzex/recommenderSystem6/internal/models"
	"github.com/Belzex/recommenderSystem6/internal/repository"
)

const (
	MaxK = 50  // por seguridad, no deja pedir vecindarios de 1000
	MaxN = 200 // idem para el top-N
)

// RecommendService es el orquestador: vecindario vía engine, fan-out
// por película, ranking final. Historial en Mongo y cache Redis son
// opcionales y nunca rompen la respuesta.
type RecommendService struct {
	data     *dataset.Dataset
	engine   *engine.Engine
	recRepo  *repository.RecommendationRepository // nil = sin historial
	defaultK int
	defaultN int
	workers  int
	ttl      int
}

func NewRecommendService(
	data *dataset.Dataset,
	eng *engine.Engine,
	recRepo *repository.RecommendationRepository,
	cfg *config.Config,
) *RecommendService {
	s := &RecommendService{
		data:     data,
		engine:   eng,
		recRepo:  recRepo,
		defaultK: cfg.NeighborhoodSize,
		defaultN: cfg.TopN,
		workers:  cfg.Workers,
		ttl:      cfg.RecCacheTTL,
	}
	if s.defaultK <= 0 {
		s.defaultK = 10
	}
	if s.defaultN <= 0 {
		s.defaultN = 20
	}
	if s.workers <= 0 {
		s.workers = 4
	}
	return s
}

// RecRequest son los parámetros que sí cambian por request.
type RecRequest struct {
	UserID  int
	K       int  // tamaño del vecindario
	N       int  // top-N del ranking
	Refresh bool // si true, ignora el cache Redis
}

func cacheKey(req RecRequest) string {
	// cachea por usuario + k + n (refresh solo decide si usar el cache)
	return fmt.Sprintf("rec:user:%d:k:%d:n:%d", req.UserID, req.K, req.N)
}

// Recommend devuelve el top-N del catálogo para el usuario, ordenado
// por score predicho descendente. Siempre devuelve min(n, catálogo)
// filas: un usuario sin ratings recibe el catálogo entero con score 0
// en orden de catálogo, nunca una lista vacía ni un error.
func (s *RecommendService) Recommend(ctx context.Context, req RecRequest) []models.RecItem {
	// defaults y límites
	if req.K <= 0 {
		req.K = s.defaultK
	} else if req.K > MaxK {
		req.K = MaxK
	}
	if req.N <= 0 {
		req.N = s.defaultN
	} else if req.N > MaxN {
		req.N = MaxN
	}

	// 1) cache Redis (solo si refresh = false)
	var cached []models.RecItem
	if !req.Refresh {
		if ok, err := cache.GetJSON(ctx, cacheKey(req), &cached); err == nil && ok {
			return cached
		}
	}

	// 2) vecindario (el engine consulta su propio cache en disco)
	neighbors := s.engine.ComputeSimilarity(req.UserID, req.K)

	// 3) fan-out por película: cada worker escribe su propio slot; el
	// orden final lo decide el sort de abajo, no el orden de llegada
	movies := s.data.Movies()
	items := make([]models.RecItem, len(movies))

	var wg sync.WaitGroup
	sem := make(chan struct{}, s.workers)
	for i, m := range movies {
		sem <- struct{}{}
		wg.Add(1)
		go func(i int, m models.Movie) {
			defer wg.Done()
			defer func() { <-sem }()
			defer func() {
				// una predicción caída no tumba a las demás: la
				// película queda en el ranking con score 0
				if r := recover(); r != nil {
					log.Printf("[recommend] predicción user=%d movie=%d: %v", req.UserID, m.MovieID, r)
					items[i] = models.RecItem{MovieID: m.MovieID, Title: m.Title, Genres: m.Genres}
				}
			}()
			items[i] = models.RecItem{
				MovieID: m.MovieID,
				Title:   m.Title,
				Genres:  m.Genres,
				Score:   s.engine.PredictRating(req.UserID, m.MovieID, neighbors),
			}
		}(i, m)
	}
	wg.Wait()

	// 4) sort estable: los empates quedan en orden de catálogo
	sort.SliceStable(items, func(i, j int) bool { return items[i].Score > items[j].Score })
	if len(items) > req.N {
		items = items[:req.N]
	}

	// 5) historial en Mongo (no rompe la respuesta si falla)
	if s.recRepo != nil {
		hist := &models.Recommendation{
			UserID: req.UserID,
			Algo:   "user-knn-pearson",
			Params: map[string]any{
				"k":       req.K,
				"n":       req.N,
				"refresh": req.Refresh,
			},
			Items:     items,
			CreatedAt: time.Now(),
		}
		if err := s.recRepo.Insert(ctx, hist); err != nil {
			log.Printf("[recommend] error guardando historial en Mongo: %v", err)
		}
	}

	// 6) cachear en Redis
	if err := cache.SetJSON(ctx, cacheKey(req), items, s.ttl); err != nil {
		log.Printf("[recommend] error cacheando en Redis: %v", err)
	}

	return items
}

// Neighborhood expone el vecindario del usuario (para inspección y
// para el paso de progreso del WebSocket).
func (s *RecommendService) Neighborhood(userID, k int) []models.NeighborRecord {
	if k <= 0 {
		k = s.defaultK
	} else if k > MaxK {
		k = MaxK
	}
	return s.engine.ComputeSimilarity(userID, k)
}

// History lista el historial del usuario desde Mongo.
func (s *RecommendService) History(ctx context.Context, userID int, limit int64) ([]models.Recommendation, error) {
	if s.recRepo == nil {
		return nil, fmt.Errorf("historial deshabilitado (sin MONGO_URI)")
	}
	if limit <= 0 {
		limit = 20
	}
	return s.recRepo.FindByUser(ctx, userID, limit)
}
