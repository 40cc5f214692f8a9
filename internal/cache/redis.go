package cache

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/Belzex/recommenderSystem6/internal/config"

	"github.com/redis/go-redis/v9"
)

var client *redis.Client

// InitRedis levanta el cache de respuestas. Redis es opcional: sin
// REDIS_ADDR (o si no responde) los helpers de abajo se vuelven no-op
// y el servicio calcula siempre.
func InitRedis(cfg *config.Config) {
	if cfg.RedisAddr == "" {
		log.Println("[redis] sin REDIS_ADDR, cache de respuestas deshabilitado")
		return
	}

	client = redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPass,
		DB:       0,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		log.Printf("[redis] no se pudo conectar (%v), cache deshabilitado", err)
		client = nil
		return
	}
	log.Println("[redis] OK")
}

// GetJSON lee una key, y si existe deserializa el JSON en dest.
func GetJSON(ctx context.Context, key string, dest any) (bool, error) {
	if client == nil {
		return false, nil
	}

	val, err := client.Get(ctx, key).Result()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	if err := json.Unmarshal([]byte(val), dest); err != nil {
		return false, err
	}
	return true, nil
}

// SetJSON serializa value a JSON y lo guarda con TTL en segundos.
func SetJSON(ctx context.Context, key string, value any, ttlSeconds int) error {
	if client == nil {
		return nil
	}

	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return client.Set(ctx, key, b, time.Duration(ttlSeconds)*time.Second).Err()
}
