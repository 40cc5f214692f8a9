package models

// Rating es una fila de ratings.dat (UserID::MovieID::Rating::Timestamp).
// Se espera un (userId, movieId) único; inmutable una vez cargado.
type Rating struct {
	UserID    int     `json:"userId"`
	MovieID   int     `json:"movieId"`
	Rating    float64 `json:"rating"`
	Timestamp int64   `json:"timestamp"`
}

// RatedMovie es una fila de "películas que el usuario calificó",
// con los datos de la película ya unidos (el join con el catálogo).
type RatedMovie struct {
	MovieID int     `json:"movieId"`
	Title   string  `json:"title"`
	Genres  string  `json:"genres"`
	Rating  float64 `json:"rating"`
}
