package models

// Movie es una fila de movies.dat (MovieID::Title::Genres).
// El catálogo es inmutable: se carga una vez al inicio.
type Movie struct {
	MovieID int    `json:"movieId"`
	Title   string `json:"title"`
	Genres  string `json:"genres"` // tags separados por "|", tal como vienen en el archivo
}
