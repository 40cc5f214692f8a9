package service

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Belzex/recommenderSystem6/internal/engine"
	"github.com/Belzex/recommenderSystem6/internal/simcache"
)

func TestCacheSummaryAndRefresh(t *testing.T) {
	d := rankingData()
	c, err := simcache.Open(filepath.Join(t.TempDir(), "simusers.cache"))
	require.NoError(t, err)
	eng := engine.New(d, c, 2)
	svc := NewAdminService(d, c, eng)

	sum := svc.CacheSummary()
	assert.Equal(t, 0, sum.UsersCached)
	assert.Equal(t, 2, sum.TotalUsers)
	assert.Equal(t, 4, sum.TotalMovies)

	// llena el cache
	eng.ComputeSimilarity(1, 10)
	assert.Equal(t, 1, svc.CacheSummary().UsersCached)

	// el refresh recalcula la lista completa y la deja cacheada
	res, err := svc.RefreshNeighborhood(1)
	require.NoError(t, err)
	assert.Equal(t, 1, res.UserID)
	assert.Equal(t, 1, res.Neighbors)
	assert.Equal(t, 1, svc.CacheSummary().UsersCached)
}
