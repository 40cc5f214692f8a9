package simcache

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/Belzex/recommenderSystem6/internal/models"
)

// formato v1: una línea de cabecera y una línea por usuario
//
//	#simcache v1
//	<userId>\t<JSON de []models.NeighborRecord>
//
const header = "#simcache v1"

// Cache es el cache de vecindarios persistido en disco. Guarda la
// lista COMPLETA de vecinos de cada usuario (no solo el top-k) para
// poder servir pedidos futuros con k más grande sin recalcular.
// Una entrada presente es autoritativa: no se recalcula sola aunque
// lleguen ratings nuevos; solo el refresh administrativo la reemplaza.
type Cache struct {
	path string

	mu      sync.RWMutex
	entries map[int][]models.NeighborRecord
	skipped int
}

// Open carga el cache desde path. Archivo inexistente = cache vacío
// (primera corrida). Las líneas malformadas se saltan y se cuentan,
// no abortan la carga.
func Open(path string) (*Cache, error) {
	c := &Cache{path: path, entries: make(map[int][]models.NeighborRecord)}

	f, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		return c, nil
	}
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	// una línea trae la lista completa de vecinos de un usuario
	sc.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	for sc.Scan() {
		line := sc.Text()
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		id, recs, ok := parseLine(line)
		if !ok {
			c.skipped++
			continue
		}
		c.entries[id] = recs
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return c, nil
}

func parseLine(line string) (int, []models.NeighborRecord, bool) {
	idStr, rest, found := strings.Cut(line, "\t")
	if !found {
		return 0, nil, false
	}
	id, err := strconv.Atoi(idStr)
	if err != nil {
		return 0, nil, false
	}
	var recs []models.NeighborRecord
	if err := json.Unmarshal([]byte(rest), &recs); err != nil {
		return 0, nil, false
	}
	if recs == nil {
		recs = []models.NeighborRecord{}
	}
	return id, recs, true
}

// Lookup devuelve la lista completa de vecinos del usuario si está
// cacheada. La slice devuelta es la interna: solo lectura.
func (c *Cache) Lookup(userID int) ([]models.NeighborRecord, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	recs, ok := c.entries[userID]
	return recs, ok
}

// Store guarda la lista del usuario y reescribe el archivo entero.
// La reescritura va bajo el lock global de escritura: un store a la
// vez, aunque sean entradas de usuarios distintos.
func (c *Cache) Store(userID int, recs []models.NeighborRecord) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if recs == nil {
		// también se cachean vecindarios vacíos: "ya se calculó y no hay"
		recs = []models.NeighborRecord{}
	}
	c.entries[userID] = recs
	return c.writeLocked()
}

// Invalidate borra la entrada del usuario (para el refresh admin).
func (c *Cache) Invalidate(userID int) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.entries[userID]; !ok {
		return nil
	}
	delete(c.entries, userID)
	return c.writeLocked()
}

func (c *Cache) writeLocked() error {
	f, err := os.Create(c.path)
	if err != nil {
		return err
	}
	w := bufio.NewWriter(f)
	fmt.Fprintln(w, header)

	ids := make([]int, 0, len(c.entries))
	for id := range c.entries {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	for _, id := range ids {
		b, err := json.Marshal(c.entries[id])
		if err != nil {
			f.Close()
			return err
		}
		fmt.Fprintf(w, "%d\t%s\n", id, b)
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// Len es la cantidad de usuarios cacheados.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// Skipped es la cantidad de líneas malformadas saltadas al cargar.
func (c *Cache) Skipped() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.skipped
}
