package dataset

import (
	"fmt"
	"math"
	"path/filepath"
	"sort"

	"github.com/Belzex/recommenderSystem6/internal/models"
)

// Dataset es la vista en memoria de las tres relaciones MovieLens.
// Se construye una sola vez al inicio y es de solo lectura desde ahí:
// todos los workers pueden leerla en paralelo sin locks.
type Dataset struct {
	movies    []models.Movie // orden del archivo = orden de catálogo
	movieByID map[int]models.Movie
	users     map[int]models.User
	byUser    map[int]map[int]float64 // userId -> movieId -> rating
	avg       map[int]float64         // promedio por usuario (solo usuarios con ratings)
	userIDs   []int                   // ordenado ascendente
	ratings   int
}

// Load construye el dataset desde DATA_DIR. Un archivo faltante o
// ilegible es error de inicialización: sin datos el motor no puede
// responder nada.
func Load(dataDir string, maxMovies, maxRatings, maxUsers int) (*Dataset, error) {
	movies, err := loadMovies(filepath.Join(dataDir, "movies.dat"), maxMovies)
	if err != nil {
		return nil, fmt.Errorf("cargando movies.dat: %w", err)
	}
	users, err := loadUsers(filepath.Join(dataDir, "users.dat"), maxUsers)
	if err != nil {
		return nil, fmt.Errorf("cargando users.dat: %w", err)
	}
	ratings, err := loadRatings(filepath.Join(dataDir, "ratings.dat"), maxRatings)
	if err != nil {
		return nil, fmt.Errorf("cargando ratings.dat: %w", err)
	}
	return FromRecords(movies, users, ratings), nil
}

// FromRecords arma el dataset desde filas ya parseadas (lo usan Load y
// los tests). Los ratings cuyo usuario o película no existen en sus
// relaciones quedan fuera: es el join el que define qué cuenta.
func FromRecords(movies []models.Movie, users []models.User, ratings []models.Rating) *Dataset {
	d := &Dataset{
		movies:    movies,
		movieByID: make(map[int]models.Movie, len(movies)),
		users:     make(map[int]models.User, len(users)),
		byUser:    make(map[int]map[int]float64),
		avg:       make(map[int]float64),
	}
	for _, m := range movies {
		d.movieByID[m.MovieID] = m
	}
	for _, u := range users {
		d.users[u.UserID] = u
	}
	for _, r := range ratings {
		if _, ok := d.users[r.UserID]; !ok {
			continue
		}
		if _, ok := d.movieByID[r.MovieID]; !ok {
			continue
		}
		mm := d.byUser[r.UserID]
		if mm == nil {
			mm = make(map[int]float64)
			d.byUser[r.UserID] = mm
		}
		mm[r.MovieID] = r.Rating
		d.ratings++
	}
	for uid, mm := range d.byUser {
		var sum float64
		for _, v := range mm {
			sum += v
		}
		d.avg[uid] = sum / float64(len(mm))
	}
	d.userIDs = make([]int, 0, len(d.users))
	for uid := range d.users {
		d.userIDs = append(d.userIDs, uid)
	}
	sort.Ints(d.userIDs)
	return d
}

// RatedMovies devuelve movieId -> rating del usuario. El mapa es el
// interno: solo lectura. Usuario sin ratings (o inexistente) = nil.
func (d *Dataset) RatedMovies(userID int) map[int]float64 {
	return d.byUser[userID]
}

// AverageRating es el promedio de los ratings del usuario, o NaN si no
// tiene ninguno. El NaN es el centinela "no se puede usar": todo
// consumidor tiene que filtrarlo antes de sumar.
func (d *Dataset) AverageRating(userID int) float64 {
	if a, ok := d.avg[userID]; ok {
		return a
	}
	return math.NaN()
}

// RatingFor devuelve el rating del usuario para la película, o NaN si
// no la calificó.
func (d *Dataset) RatingFor(userID, movieID int) float64 {
	if r, ok := d.byUser[userID][movieID]; ok {
		return r
	}
	return math.NaN()
}

// Movies devuelve el catálogo en orden de archivo. Solo lectura.
func (d *Dataset) Movies() []models.Movie {
	return d.movies
}

func (d *Dataset) Movie(movieID int) (models.Movie, bool) {
	m, ok := d.movieByID[movieID]
	return m, ok
}

func (d *Dataset) User(userID int) (models.User, bool) {
	u, ok := d.users[userID]
	return u, ok
}

// UserIDs devuelve todos los usuarios de la relación Users, ordenados
// ascendente (el orden fija los desempates río abajo). Solo lectura.
func (d *Dataset) UserIDs() []int {
	return d.userIDs
}

func (d *Dataset) NumMovies() int  { return len(d.movies) }
func (d *Dataset) NumUsers() int   { return len(d.users) }
func (d *Dataset) NumRatings() int { return d.ratings }
