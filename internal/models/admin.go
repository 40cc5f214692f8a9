package models

// ----- CACHE SUMMARY -----

// CacheSummary es el resumen del cache de vecindarios para mantenimiento.
type CacheSummary struct {
	UsersCached  int `json:"usersCached"`
	SkippedLines int `json:"skippedLines"` // líneas malformadas saltadas al cargar
	TotalUsers   int `json:"totalUsers"`
	TotalMovies  int `json:"totalMovies"`
	TotalRatings int `json:"totalRatings"`
}

// ----- REFRESH -----

// RefreshResult es el resultado de recalcular el vecindario de un usuario.
type RefreshResult struct {
	UserID    int `json:"userId"`
	Neighbors int `json:"neighbors"` // tamaño de la lista completa recalculada
}
