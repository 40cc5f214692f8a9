package service

import (
	"github.com/Belzex/recommenderSystem6/internal/dataset"
	"github.com/Belzex/recommenderSystem6/internal/engine"
	"github.com/Belzex/recommenderSystem6/internal/models"
	"github.com/Belzex/recommenderSystem6/internal/simcache"
)

// AdminService es el mantenimiento del cache de vecindarios. El cache
// nunca se invalida solo cuando llegan ratings nuevos ("se calcula una
// vez, se confía para siempre"); el refresh de acá es la única vía de
// recálculo y es una acción explícita del operador.
type AdminService struct {
	data   *dataset.Dataset
	simc   *simcache.Cache
	engine *engine.Engine
}

func NewAdminService(data *dataset.Dataset, simc *simcache.Cache, eng *engine.Engine) *AdminService {
	return &AdminService{data: data, simc: simc, engine: eng}
}

// CacheSummary devuelve el estado global del cache y del dataset.
func (s *AdminService) CacheSummary() *models.CacheSummary {
	return &models.CacheSummary{
		UsersCached:  s.simc.Len(),
		SkippedLines: s.simc.Skipped(),
		TotalUsers:   s.data.NumUsers(),
		TotalMovies:  s.data.NumMovies(),
		TotalRatings: s.data.NumRatings(),
	}
}

// RefreshNeighborhood borra la entrada cacheada del usuario y la
// recalcula completa contra el dataset actual.
func (s *AdminService) RefreshNeighborhood(userID int) (*models.RefreshResult, error) {
	if err := s.simc.Invalidate(userID); err != nil {
		return nil, err
	}
	// k=0: interesa la lista completa, no un prefijo
	recs := s.engine.ComputeSimilarity(userID, 0)
	return &models.RefreshResult{UserID: userID, Neighbors: len(recs)}, nil
}
