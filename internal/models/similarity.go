package models

// NeighborRecord es un vecino de un usuario: su similitud Pearson con
// el usuario objetivo y su rating promedio. Si la similitud no está
// definida para un par (sin varianza sobre las películas en común),
// simplemente no existe registro para ese par.
type NeighborRecord struct {
	UserID     int     `json:"id"`
	Similarity float64 `json:"similarity"` // siempre en [-1, 1]
	RatingAvg  float64 `json:"ratingAvg"`
}
