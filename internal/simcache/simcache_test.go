package simcache

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Belzex/recommenderSystem6/internal/models"
)

func TestOpenMissingFileIsEmptyCache(t *testing.T) {
	c, err := Open(filepath.Join(t.TempDir(), "simusers.cache"))
	require.NoError(t, err)
	assert.Equal(t, 0, c.Len())

	_, ok := c.Lookup(1)
	assert.False(t, ok)
}

func TestStoreThenReopenRoundTrips(t *testing.T) {
	path := filepath.Join(t.TempDir(), "simusers.cache")

	c, err := Open(path)
	require.NoError(t, err)

	recs1 := []models.NeighborRecord{
		{UserID: 2, Similarity: 0.9, RatingAvg: 3.5},
		{UserID: 3, Similarity: -0.25, RatingAvg: 4.0},
	}
	require.NoError(t, c.Store(1, recs1))
	// también se cachean vecindarios vacíos
	require.NoError(t, c.Store(2, nil))

	// carga fresca, como en un reinicio del proceso
	c2, err := Open(path)
	require.NoError(t, err)
	assert.Equal(t, 2, c2.Len())

	got, ok := c2.Lookup(1)
	require.True(t, ok)
	assert.Equal(t, recs1, got)

	empty, ok := c2.Lookup(2)
	require.True(t, ok)
	assert.Empty(t, empty)
}

func TestOpenSkipsMalformedLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "simusers.cache")
	raw := "#simcache v1\n" +
		"1\t[{\"id\":2,\"similarity\":0.5,\"ratingAvg\":3}]\n" +
		"esto no es una línea válida\n" +
		"7\testo no es JSON\n"
	require.NoError(t, os.WriteFile(path, []byte(raw), 0o644))

	c, err := Open(path)
	require.NoError(t, err)

	assert.Equal(t, 1, c.Len())
	assert.Equal(t, 2, c.Skipped())

	got, ok := c.Lookup(1)
	require.True(t, ok)
	require.Len(t, got, 1)
	assert.Equal(t, 2, got[0].UserID)
}

func TestInvalidateRemovesAndPersists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "simusers.cache")

	c, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, c.Store(1, []models.NeighborRecord{{UserID: 2, Similarity: 1, RatingAvg: 4}}))
	require.NoError(t, c.Invalidate(1))

	_, ok := c.Lookup(1)
	assert.False(t, ok)

	c2, err := Open(path)
	require.NoError(t, err)
	_, ok = c2.Lookup(1)
	assert.False(t, ok)
}
