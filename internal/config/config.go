package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	// datos MovieLens (movies.dat, ratings.dat, users.dat)
	DataDir   string
	CachePath string

	// límites de filas cargadas (0 = sin límite). En versiones viejas
	// esto era un truncado implícito del archivo; acá es configuración.
	MaxMovies  int
	MaxRatings int
	MaxUsers   int

	NeighborhoodSize int
	TopN             int
	Workers          int
	RecCacheTTL      int // segundos, cache Redis de respuestas

	HTTPPort  string
	RedisAddr string
	RedisPass string
	MongoURI  string // vacío = historial deshabilitado
	MongoDB   string

	JWTSecret     string
	AdminUser     string
	AdminPassHash string // hash bcrypt; vacío = login deshabilitado
}

func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		DataDir:          getEnv("DATA_DIR", "./data"),
		CachePath:        getEnv("SIM_CACHE_PATH", "./data/simusers.cache"),
		MaxMovies:        getEnvInt("MAX_MOVIES", 0),
		MaxRatings:       getEnvInt("MAX_RATINGS", 0),
		MaxUsers:         getEnvInt("MAX_USERS", 0),
		NeighborhoodSize: getEnvInt("NEIGHBORHOOD_SIZE", 10),
		TopN:             getEnvInt("TOP_N", 20),
		Workers:          getEnvInt("WORKERS", 4),
		RecCacheTTL:      getEnvInt("REC_CACHE_TTL", 3600),
		HTTPPort:         getEnv("HTTP_PORT", "8080"),
		RedisAddr:        getEnv("REDIS_ADDR", ""),
		RedisPass:        getEnv("REDIS_PASSWORD", ""),
		MongoURI:         getEnv("MONGO_URI", ""),
		MongoDB:          getEnv("MONGO_DB", "recommender6"),
		JWTSecret:        getEnv("JWT_SECRET", "super-secret"),
		AdminUser:        getEnv("ADMIN_USER", "admin"),
		AdminPassHash:    getEnv("ADMIN_PASSWORD_HASH", ""),
	}
}

func getEnv(key, def string) string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	return v
}

func getEnvInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("[config] %s=%q no es un entero, usando %d\n", key, v, def)
		return def
	}
	return n
}
