package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// RecItem es una fila del ranking que se devuelve al front:
// la película con sus metadatos del catálogo y el score predicho.
type RecItem struct {
	MovieID int     `bson:"movieId" json:"movieId"`
	Title   string  `bson:"title"   json:"title"`
	Genres  string  `bson:"genres"  json:"genres"`
	Score   float64 `bson:"score"   json:"score"`
}

// Recommendation es el documento de historial que se guarda en Mongo
// cada vez que se calcula un ranking (si el historial está habilitado).
type Recommendation struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID    int                `bson:"userId"        json:"userId"`
	Algo      string             `bson:"algo"          json:"algo"`
	Params    any                `bson:"params"        json:"params"`
	Items     []RecItem          `bson:"items"         json:"items"`
	CreatedAt time.Time          `bson:"createdAt"     json:"createdAt"`
}
