package db

import (
	"context"
	"log"
	"time"

	"github.com/Belzex/recommenderSystem6/internal/config"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var mongoDB *mongo.Database

// InitMongo conecta la base del historial de recomendaciones. Mongo es
// opcional: sin MONGO_URI no se guarda historial. Pero si está
// configurado y no responde, es fatal: mejor enterarse al arrancar.
func InitMongo(cfg *config.Config) {
	if cfg.MongoURI == "" {
		log.Println("[mongo] sin MONGO_URI, historial deshabilitado")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.Fatalf("[mongo] error conectando: %v", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		log.Fatalf("[mongo] ping falló: %v", err)
	}

	mongoDB = client.Database(cfg.MongoDB)
	log.Printf("[mongo] conectado, DB=%s\n", cfg.MongoDB)
}

// Enabled indica si hay Mongo configurado.
func Enabled() bool {
	return mongoDB != nil
}

func DB() *mongo.Database {
	return mongoDB
}
